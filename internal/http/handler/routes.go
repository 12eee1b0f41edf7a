package handler

import (
	"github.com/gofiber/fiber/v2"

	"radar/internal/model"
	"radar/internal/service"
	"radar/internal/storage"
)

var sections = map[string]Section{
	"/reviews":       {Title: "Reviews", Description: "Documents assigned to reviewers"},
	"/approvals":     {Title: "Approvals", Description: "Sign-off history and pending approvals"},
	"/team":          {Title: "Team", Description: "Reviewers and submitters"},
	"/analytics":     {Title: "Analytics", Description: "Review throughput and turnaround"},
	"/notifications": {Title: "Notifications", Description: "Alerts about your documents"},
	"/settings":      {Title: "Settings", Description: "Workspace preferences"},
}

// RegisterRoutes attaches pages, the JSON API, assets and probes to the provided Fiber app.
// Handlers stay thin; filtering and presentation live in the service.
func RegisterRoutes(app *fiber.App, assets storage.AssetStore, svc service.DashboardService) {
	app.Get("/health", HealthCheck(assets))
	app.Get("/healthz", LivenessProbe())

	app.Get("/assets/:name", GetAsset(assets))

	api := app.Group("/api")
	api.Get("/dashboard", GetDashboard(svc))
	api.Get("/documents", ListDocuments(svc))
	api.Get("/documents/:id", GetDocument(svc))
	api.Get("/activities", ListActivities(svc))
	api.Get("/navigation", ListNavigation(svc))

	app.Get("/", DashboardPage(svc))
	app.Get("/documents", DocumentsPage(svc, LibraryPage{Heading: "Documents"}))
	app.Get("/pending", DocumentsPage(svc, LibraryPage{Heading: "Pending Reviews", Preset: model.StatusPending}))
	app.Get("/urgent", DocumentsPage(svc, LibraryPage{Heading: "Urgent Items", Preset: model.StatusUrgent}))
	app.Get("/search", DocumentsPage(svc, LibraryPage{Heading: "Search", FocusSearch: true}))
	for path, s := range sections {
		app.Get(path, SectionPage(svc, s))
	}
}
