package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"radar/internal/model"
	"radar/internal/service"
)

const layout = "layout"

// LibraryPage configures a rendering of the document library.
type LibraryPage struct {
	Heading string
	// Preset pins the status filter; the status query parameter is ignored.
	Preset model.DocumentStatus
	// FocusSearch autofocuses the search box.
	FocusSearch bool
}

// Section is a titled page without content of its own yet.
type Section struct {
	Title       string
	Description string
}

// pageData returns the bindings every page needs for the layout.
func pageData(c *fiber.Ctx, svc service.DashboardService, title string) (fiber.Map, error) {
	nav, err := svc.Navigation(c.UserContext())
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Title":  title,
		"Nav":    groupNav(nav),
		"Active": c.Path(),
	}, nil
}

// DashboardPage renders the overview page.
func DashboardPage(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, svc, "Dashboard")
		if err != nil {
			return writeServiceError(c, err)
		}
		ov, err := svc.Overview(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		data["Overview"] = ov
		return c.Render("dashboard", data, layout)
	}
}

// DocumentsPage renders the document library with search and status filter.
func DocumentsPage(svc service.DashboardService, page LibraryPage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, svc, page.Heading)
		if err != nil {
			return writeServiceError(c, err)
		}

		q := service.DocumentQuery{Term: c.Query("q"), Status: c.Query("status")}
		if page.Preset != "" {
			q.Status = string(page.Preset)
		}
		status := fiber.StatusOK
		res, err := svc.Documents(c.UserContext(), q)
		if errors.Is(err, service.ErrInvalidStatus) {
			// Unknown filter: show the unfiltered library with a notice instead of the JSON envelope.
			status = fiber.StatusBadRequest
			data["Notice"] = "Unknown status filter \"" + q.Status + "\". Showing all documents."
			q.Status = ""
			res, err = svc.Documents(c.UserContext(), q)
		}
		if err != nil {
			return writeServiceError(c, err)
		}

		data["Heading"] = page.Heading
		data["Action"] = c.Path()
		data["Preset"] = page.Preset != ""
		data["FocusSearch"] = page.FocusSearch
		data["Result"] = res
		return c.Status(status).Render("documents", data, layout)
	}
}

// SectionPage renders a placeholder section.
func SectionPage(svc service.DashboardService, s Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, svc, s.Title)
		if err != nil {
			return writeServiceError(c, err)
		}
		data["Description"] = s.Description
		return c.Render("section", data, layout)
	}
}
