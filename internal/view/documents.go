// Package view holds per-render view state for the dashboard pages.
package view

import (
	"radar/internal/filter"
	"radar/internal/model"
)

// StatusOption is one entry of the "Filter by Status" menu.
type StatusOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
	Count  int    `json:"count"`
}

var optionLabels = map[filter.StatusFilter]string{
	filter.All:                        "All Statuses",
	filter.Only(model.StatusPending):  "Pending",
	filter.Only(model.StatusInReview): "In Review",
	filter.Only(model.StatusApproved): "Approved",
	filter.Only(model.StatusRejected): "Rejected",
	filter.Only(model.StatusUrgent):   "Urgent",
}

// Documents is the document library's view model. The search term and status filter are
// changed only through the setters, and Visible recomputes the filtered sequence on every call.
// A Documents value belongs to a single render and is not safe for concurrent use.
type Documents struct {
	docs   []model.Document
	term   string
	status filter.StatusFilter
}

// NewDocuments returns a view over docs with an empty search term and the "all" filter.
func NewDocuments(docs []model.Document) *Documents {
	return &Documents{docs: docs, status: filter.All}
}

// SetSearchTerm replaces the free-text search term.
func (v *Documents) SetSearchTerm(term string) {
	v.term = term
}

// SetStatus replaces the status filter.
func (v *Documents) SetStatus(f filter.StatusFilter) {
	if f == "" {
		f = filter.All
	}
	v.status = f
}

// SetStatusFilter parses and applies a status filter value. On error the current filter is kept.
func (v *Documents) SetStatusFilter(value string) error {
	f, err := filter.ParseStatus(value)
	if err != nil {
		return err
	}
	v.status = f
	return nil
}

func (v *Documents) SearchTerm() string { return v.term }

func (v *Documents) Status() filter.StatusFilter { return v.status }

// Criteria returns the current search state.
func (v *Documents) Criteria() filter.Criteria {
	return filter.Criteria{Term: v.term, Status: v.status}
}

// Visible returns the documents matching the current search state, in original order.
func (v *Documents) Visible() []model.Document {
	return filter.Apply(v.docs, v.Criteria())
}

// Count returns how many documents are visible.
func (v *Documents) Count() int {
	return len(v.Visible())
}

// StatusOptions returns the menu entries with the current filter marked active.
// Counts come from counts; a nil map leaves every count at zero, and the "all" entry sums the rest.
func (v *Documents) StatusOptions(counts map[model.DocumentStatus]int) []StatusOption {
	opts := make([]StatusOption, 0, len(model.DocumentStatuses())+1)

	total := 0
	for _, n := range counts {
		total += n
	}
	opts = append(opts, StatusOption{
		Value:  string(filter.All),
		Label:  optionLabels[filter.All],
		Active: v.status.IsAll(),
		Count:  total,
	})

	for _, s := range model.DocumentStatuses() {
		f := filter.Only(s)
		opts = append(opts, StatusOption{
			Value:  string(s),
			Label:  optionLabels[f],
			Active: v.status == f,
			Count:  counts[s],
		})
	}
	return opts
}
