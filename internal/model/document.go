package model

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned when a value is not one of the document review statuses.
var ErrInvalidStatus = errors.New("invalid document status")

// DocumentStatus is the review state of a tracked document.
type DocumentStatus string

const (
	StatusPending  DocumentStatus = "pending"
	StatusInReview DocumentStatus = "in-review"
	StatusApproved DocumentStatus = "approved"
	StatusRejected DocumentStatus = "rejected"
	StatusUrgent   DocumentStatus = "urgent"
)

// DocumentStatuses lists every document status in display order.
func DocumentStatuses() []DocumentStatus {
	return []DocumentStatus{
		StatusPending,
		StatusInReview,
		StatusApproved,
		StatusRejected,
		StatusUrgent,
	}
}

// Valid reports whether s is one of the enumerated statuses.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusApproved, StatusRejected, StatusUrgent:
		return true
	}
	return false
}

// ParseDocumentStatus converts an exact, case-sensitive status value.
func ParseDocumentStatus(v string) (DocumentStatus, error) {
	for _, s := range DocumentStatuses() {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
}

// Document is a single item tracked through the review workflow.
// ReviewedBy and ReviewDate stay empty until a review has happened; their absence is not an error.
type Document struct {
	ID            string         `json:"id" yaml:"id" validate:"required"`
	Title         string         `json:"title" yaml:"title" validate:"required"`
	Type          string         `json:"type" yaml:"type" validate:"required"`
	Version       string         `json:"version" yaml:"version" validate:"required"`
	Status        DocumentStatus `json:"status" yaml:"status" validate:"docstatus"`
	SubmittedBy   string         `json:"submitted_by" yaml:"submitted_by" validate:"required"`
	SubmittedDate string         `json:"submitted_date" yaml:"submitted_date" validate:"required"`
	ReviewedBy    string         `json:"reviewed_by,omitempty" yaml:"reviewed_by,omitempty"`
	ReviewDate    string         `json:"review_date,omitempty" yaml:"review_date,omitempty"`
	Size          string         `json:"size" yaml:"size" validate:"required"`
}

// HasReviewer reports whether a reviewer has been assigned.
func (d Document) HasReviewer() bool { return d.ReviewedBy != "" }

// HasReviewDate reports whether the review has concluded.
func (d Document) HasReviewDate() bool { return d.ReviewDate != "" }
