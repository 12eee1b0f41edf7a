package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidActivityKind   = errors.New("invalid activity kind")
	ErrInvalidActivityStatus = errors.New("invalid activity status")
)

// ActivityKind is the workflow event an activity entry describes.
type ActivityKind string

const (
	KindReview     ActivityKind = "review"
	KindApproval   ActivityKind = "approval"
	KindSubmission ActivityKind = "submission"
	KindComment    ActivityKind = "comment"
)

// ActivityKinds lists every activity kind.
func ActivityKinds() []ActivityKind {
	return []ActivityKind{KindReview, KindApproval, KindSubmission, KindComment}
}

func (k ActivityKind) Valid() bool {
	switch k {
	case KindReview, KindApproval, KindSubmission, KindComment:
		return true
	}
	return false
}

// ParseActivityKind converts an exact activity kind value.
func ParseActivityKind(v string) (ActivityKind, error) {
	for _, k := range ActivityKinds() {
		if string(k) == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidActivityKind, v)
}

// ActivityStatus is the optional outcome attached to an activity entry.
// It is a narrower set than DocumentStatus: there is no in-review activity.
type ActivityStatus string

const (
	ActivityPending  ActivityStatus = "pending"
	ActivityApproved ActivityStatus = "approved"
	ActivityRejected ActivityStatus = "rejected"
	ActivityUrgent   ActivityStatus = "urgent"
)

// ActivityStatuses lists every activity status.
func ActivityStatuses() []ActivityStatus {
	return []ActivityStatus{ActivityPending, ActivityApproved, ActivityRejected, ActivityUrgent}
}

func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityPending, ActivityApproved, ActivityRejected, ActivityUrgent:
		return true
	}
	return false
}

// ParseActivityStatus converts an exact activity status value.
func ParseActivityStatus(v string) (ActivityStatus, error) {
	for _, s := range ActivityStatuses() {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidActivityStatus, v)
}

// ActivityUser identifies who triggered an activity.
type ActivityUser struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Initials string `json:"initials" yaml:"initials" validate:"required,max=3"`
}

// Activity is a log entry in the dashboard's recent activity feed.
type Activity struct {
	ID          string         `json:"id" yaml:"id" validate:"required"`
	Kind        ActivityKind   `json:"type" yaml:"type" validate:"activitykind"`
	Title       string         `json:"title" yaml:"title" validate:"required"`
	Description string         `json:"description" yaml:"description"`
	User        ActivityUser   `json:"user" yaml:"user"`
	Timestamp   string         `json:"timestamp" yaml:"timestamp" validate:"required"`
	Status      ActivityStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,activitystatus"`
}

// HasStatus reports whether the activity carries an outcome badge.
func (a Activity) HasStatus() bool { return a.Status != "" }
