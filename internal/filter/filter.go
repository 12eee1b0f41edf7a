// Package filter narrows document and activity sequences for display.
// Every function here is pure: inputs are never modified and the same arguments always produce
// the same output, in the same relative order as the input.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"radar/internal/model"
)

// ErrInvalidStatusFilter is returned by ParseStatus for values that are neither "all" nor a status.
var ErrInvalidStatusFilter = errors.New("invalid status filter")

// StatusFilter is either All or exactly one document status.
// The zero value behaves as All.
type StatusFilter string

// All admits every status.
const All StatusFilter = "all"

// Only returns a filter admitting a single status.
func Only(s model.DocumentStatus) StatusFilter {
	return StatusFilter(s)
}

// ParseStatus accepts "all", "" or an exact, case-sensitive document status.
func ParseStatus(v string) (StatusFilter, error) {
	if v == "" || v == string(All) {
		return All, nil
	}
	s, err := model.ParseDocumentStatus(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, v)
	}
	return Only(s), nil
}

// IsAll reports whether f admits every status.
func (f StatusFilter) IsAll() bool {
	return f == "" || f == All
}

// Admits reports whether a document with status s passes the filter. Comparison is exact.
func (f StatusFilter) Admits(s model.DocumentStatus) bool {
	return f.IsAll() || StatusFilter(s) == f
}

func (f StatusFilter) String() string {
	if f.IsAll() {
		return string(All)
	}
	return string(f)
}

// Criteria combines a free-text search term with a status filter.
type Criteria struct {
	Term   string
	Status StatusFilter
}

// Matches reports whether doc satisfies both the search term and the status filter.
func Matches(doc model.Document, c Criteria) bool {
	return c.Status.Admits(doc.Status) && matchesTerm(doc, strings.ToLower(c.Term))
}

// Apply returns the documents satisfying c, in input order. The result is never nil.
func Apply(docs []model.Document, c Criteria) []model.Document {
	term := strings.ToLower(c.Term)
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if c.Status.Admits(d.Status) && matchesTerm(d, term) {
			out = append(out, d)
		}
	}
	return out
}

// matchesTerm expects term already lower-cased.
func matchesTerm(d model.Document, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Title), term) ||
		strings.Contains(strings.ToLower(d.Type), term) ||
		strings.Contains(strings.ToLower(d.SubmittedBy), term)
}

// ApplyActivities returns the activities of the given kind, or all of them when kind is empty.
func ApplyActivities(acts []model.Activity, kind model.ActivityKind) []model.Activity {
	out := make([]model.Activity, 0, len(acts))
	for _, a := range acts {
		if kind == "" || a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}
