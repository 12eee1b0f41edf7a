package model

// StatVariant selects the accent used by a stat card.
type StatVariant string

const (
	VariantDefault StatVariant = "default"
	VariantSuccess StatVariant = "success"
	VariantWarning StatVariant = "warning"
	VariantDanger  StatVariant = "danger"
)

// StatVariants lists every stat card variant.
func StatVariants() []StatVariant {
	return []StatVariant{VariantDefault, VariantSuccess, VariantWarning, VariantDanger}
}

func (v StatVariant) Valid() bool {
	switch v {
	case VariantDefault, VariantSuccess, VariantWarning, VariantDanger:
		return true
	}
	return false
}

// Trend is the week-over-week change shown under a stat value.
type Trend struct {
	Value      int  `json:"value" yaml:"value"`
	IsPositive bool `json:"is_positive" yaml:"is_positive"`
}

// Stat is a headline number on the dashboard.
// An empty Variant renders as VariantDefault.
type Stat struct {
	Title       string      `json:"title" yaml:"title" validate:"required"`
	Value       string      `json:"value" yaml:"value" validate:"required"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string      `json:"icon" yaml:"icon" validate:"required"`
	Variant     StatVariant `json:"variant,omitempty" yaml:"variant,omitempty" validate:"omitempty,statvariant"`
	Trend       *Trend      `json:"trend,omitempty" yaml:"trend,omitempty"`
}

// WorkflowStage is one bar of the workflow progress panel.
type WorkflowStage struct {
	Stage    string `json:"stage" yaml:"stage" validate:"required"`
	Progress int    `json:"progress" yaml:"progress" validate:"min=0,max=100"`
	Count    int    `json:"count" yaml:"count" validate:"min=0"`
}

// NavGroup is a sidebar section.
type NavGroup string

const (
	NavMain     NavGroup = "navigation"
	NavWorkflow NavGroup = "workflow"
	NavSystem   NavGroup = "system"
)

// NavGroups lists sidebar sections in display order.
func NavGroups() []NavGroup {
	return []NavGroup{NavMain, NavWorkflow, NavSystem}
}

// Label is the heading shown above the group in the sidebar.
func (g NavGroup) Label() string {
	switch g {
	case NavMain:
		return "Main Navigation"
	case NavWorkflow:
		return "Workflow"
	case NavSystem:
		return "System"
	}
	return string(g)
}

// NavItem is a named, navigable route.
type NavItem struct {
	Title string   `json:"title" yaml:"title" validate:"required"`
	URL   string   `json:"url" yaml:"url" validate:"required,startswith=/"`
	Icon  string   `json:"icon" yaml:"icon" validate:"required"`
	Group NavGroup `json:"group" yaml:"group" validate:"oneof=navigation workflow system"`
}
