package handler

import (
	"context"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"

	"radar/internal/service"
	"radar/internal/storage"
)

var documentID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// HealthCheck reports whether the asset store is reachable.
//
// @Summary  Readiness probe
// @Tags     ops
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  errorPayload
// @Router   /health [get]
func HealthCheck(assets storage.AssetStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := assets.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
//
// @Summary  Liveness probe
// @Tags     ops
// @Success  200
// @Router   /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetDashboard returns stat cards, workflow progress and the activity feed.
//
// @Summary  Dashboard overview
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  service.Overview
// @Failure  500  {object}  errorPayload
// @Router   /api/dashboard [get]
func GetDashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Overview(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListDocuments searches the document library.
//
// @Summary  Search documents
// @Tags     documents
// @Produce  json
// @Param    q       query  string  false  "Case-insensitive text matched against title, type and submitter"
// @Param    status  query  string  false  "all, pending, in-review, approved, rejected or urgent"
// @Success  200  {object}  service.DocumentListResult
// @Failure  400  {object}  errorPayload
// @Failure  500  {object}  errorPayload
// @Router   /api/documents [get]
func ListDocuments(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Documents(c.UserContext(), service.DocumentQuery{
			Term:   c.Query("q"),
			Status: c.Query("status"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument returns one document by ID.
//
// @Summary  Get document
// @Tags     documents
// @Produce  json
// @Param    id  path  string  true  "Document ID"
// @Success  200  {object}  model.Document
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /api/documents/{id} [get]
func GetDocument(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !documentID.MatchString(id) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Document(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// ListActivities returns the activity feed.
//
// @Summary  Activity feed
// @Tags     dashboard
// @Produce  json
// @Param    kind  query  string  false  "review, approval, submission or comment"
// @Success  200  {array}   service.ActivityItem
// @Failure  400  {object}  errorPayload
// @Router   /api/activities [get]
func ListActivities(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Activities(c.UserContext(), c.Query("kind"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// ListNavigation returns the sidebar routes.
//
// @Summary  Navigation
// @Tags     dashboard
// @Produce  json
// @Success  200  {array}  model.NavItem
// @Router   /api/navigation [get]
func ListNavigation(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nav, err := svc.Navigation(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nav)
	}
}

// GetAsset serves an embedded image, or redirects to a presigned object URL.
//
// @Summary  Dashboard image
// @Tags     assets
// @Produce  image/svg+xml
// @Param    name  path  string  true  "Asset name without extension"
// @Success  200  {file}    binary
// @Success  302  {string}  string  "Redirect to a presigned object URL"
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /assets/{name} [get]
func GetAsset(assets storage.AssetStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := assets.Resolve(c.UserContext(), c.Params("name"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if a.Remote() {
			return c.Redirect(a.URL, fiber.StatusFound)
		}
		c.Set(fiber.HeaderContentType, a.ContentType)
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		return c.Send(a.Body)
	}
}
