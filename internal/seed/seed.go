// Package seed holds the record tables the dashboard is started with.
// The tables are built once and handed to the record store; nothing writes to them afterwards.
package seed

import "radar/internal/model"

// Data is a complete set of dashboard records. A fixture must carry at least one document.
type Data struct {
	Documents  []model.Document      `yaml:"documents" validate:"min=1,dive"`
	Activities []model.Activity      `yaml:"activities" validate:"dive"`
	Stats      []model.Stat          `yaml:"stats" validate:"dive"`
	Workflow   []model.WorkflowStage `yaml:"workflow" validate:"dive"`
	Navigation []model.NavItem       `yaml:"navigation" validate:"dive"`
}

// Default returns the built-in record tables. Each call returns freshly allocated slices.
func Default() Data {
	return Data{
		Documents:  documents(),
		Activities: activities(),
		Stats:      stats(),
		Workflow:   workflow(),
		Navigation: navigation(),
	}
}

func documents() []model.Document {
	return []model.Document{
		{
			ID:            "DOC-001",
			Title:         "Technical Manual v2.1",
			Type:          "Technical Manual",
			Version:       "2.1",
			Status:        model.StatusPending,
			SubmittedBy:   "Alice Johnson",
			SubmittedDate: "2024-01-15",
			Size:          "2.4 MB",
		},
		{
			ID:            "DOC-002",
			Title:         "Safety Protocol Manual",
			Type:          "Safety Documentation",
			Version:       "1.5",
			Status:        model.StatusApproved,
			SubmittedBy:   "Bob Smith",
			SubmittedDate: "2024-01-10",
			ReviewedBy:    "Carol Davis",
			ReviewDate:    "2024-01-12",
			Size:          "1.8 MB",
		},
		{
			ID:            "DOC-003",
			Title:         "Engine Specifications",
			Type:          "Technical Specification",
			Version:       "3.0",
			Status:        model.StatusUrgent,
			SubmittedBy:   "David Wilson",
			SubmittedDate: "2024-01-14",
			Size:          "3.2 MB",
		},
		{
			ID:            "DOC-004",
			Title:         "Maintenance Procedures",
			Type:          "Operational Manual",
			Version:       "1.2",
			Status:        model.StatusInReview,
			SubmittedBy:   "Eve Brown",
			SubmittedDate: "2024-01-13",
			ReviewedBy:    "Frank Miller",
			Size:          "4.1 MB",
		},
		{
			ID:            "DOC-005",
			Title:         "Quality Assurance Guide",
			Type:          "Process Documentation",
			Version:       "2.0",
			Status:        model.StatusRejected,
			SubmittedBy:   "Grace Taylor",
			SubmittedDate: "2024-01-11",
			ReviewedBy:    "Henry Wilson",
			ReviewDate:    "2024-01-14",
			Size:          "1.5 MB",
		},
	}
}

func activities() []model.Activity {
	return []model.Activity{
		{
			ID:          "1",
			Kind:        model.KindSubmission,
			Title:       "New Document Submitted",
			Description: "Technical Manual v2.1 submitted for review",
			User:        model.ActivityUser{Name: "Alice Johnson", Initials: "AJ"},
			Timestamp:   "2 minutes ago",
			Status:      model.ActivityPending,
		},
		{
			ID:          "2",
			Kind:        model.KindApproval,
			Title:       "Document Approved",
			Description: "Safety Protocol Manual approved by Technical Lead",
			User:        model.ActivityUser{Name: "Bob Smith", Initials: "BS"},
			Timestamp:   "15 minutes ago",
			Status:      model.ActivityApproved,
		},
		{
			ID:          "3",
			Kind:        model.KindReview,
			Title:       "Review Assignment",
			Description: "You've been assigned to review Engine Specifications",
			User:        model.ActivityUser{Name: "Carol Davis", Initials: "CD"},
			Timestamp:   "1 hour ago",
			Status:      model.ActivityUrgent,
		},
		{
			ID:          "4",
			Kind:        model.KindComment,
			Title:       "New Comment Added",
			Description: "Feedback added to Maintenance Procedures document",
			User:        model.ActivityUser{Name: "David Wilson", Initials: "DW"},
			Timestamp:   "2 hours ago",
		},
	}
}

func stats() []model.Stat {
	return []model.Stat{
		{
			Title:       "Total Documents",
			Value:       "1,247",
			Description: "Active in system",
			Icon:        "file-text",
			Trend:       &model.Trend{Value: 12, IsPositive: true},
		},
		{
			Title:       "Pending Reviews",
			Value:       "23",
			Description: "Awaiting action",
			Icon:        "clock",
			Variant:     model.VariantWarning,
			Trend:       &model.Trend{Value: -8, IsPositive: false},
		},
		{
			Title:       "Completed This Week",
			Value:       "156",
			Description: "Reviews processed",
			Icon:        "check-circle",
			Variant:     model.VariantSuccess,
			Trend:       &model.Trend{Value: 24, IsPositive: true},
		},
		{
			Title:       "Active Reviewers",
			Value:       "42",
			Description: "Team members",
			Icon:        "users",
			Trend:       &model.Trend{Value: 5, IsPositive: true},
		},
	}
}

func workflow() []model.WorkflowStage {
	return []model.WorkflowStage{
		{Stage: "Document Submission", Progress: 100, Count: 45},
		{Stage: "Initial Review", Progress: 78, Count: 35},
		{Stage: "Technical Approval", Progress: 62, Count: 28},
		{Stage: "Final Sign-off", Progress: 45, Count: 20},
	}
}

func navigation() []model.NavItem {
	return []model.NavItem{
		{Title: "Dashboard", URL: "/", Icon: "home", Group: model.NavMain},
		{Title: "Documents", URL: "/documents", Icon: "file-text", Group: model.NavMain},
		{Title: "Reviews", URL: "/reviews", Icon: "clock", Group: model.NavMain},
		{Title: "Approvals", URL: "/approvals", Icon: "check-circle", Group: model.NavMain},
		{Title: "Team", URL: "/team", Icon: "users", Group: model.NavMain},
		{Title: "Analytics", URL: "/analytics", Icon: "bar-chart-3", Group: model.NavMain},
		{Title: "Pending Reviews", URL: "/pending", Icon: "clock", Group: model.NavWorkflow},
		{Title: "Urgent Items", URL: "/urgent", Icon: "alert-triangle", Group: model.NavWorkflow},
		{Title: "Search", URL: "/search", Icon: "search", Group: model.NavWorkflow},
		{Title: "Notifications", URL: "/notifications", Icon: "bell", Group: model.NavSystem},
		{Title: "Settings", URL: "/settings", Icon: "settings", Group: model.NavSystem},
	}
}
