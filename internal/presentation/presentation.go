// Package presentation maps enumerated domain values to their visual treatment.
//
// Every mapping is a static, exhaustive switch over its enumeration. A value outside the
// enumeration yields ErrUnmapped instead of a silent default.
package presentation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"radar/internal/model"
)

// ErrUnmapped is returned for a value that has no presentation entry.
var ErrUnmapped = errors.New("no presentation mapping")

// Icon selectors.
const (
	IconClock         = "clock"
	IconEye           = "eye"
	IconCheckCircle   = "check-circle"
	IconAlertTriangle = "alert-triangle"
	IconFileText      = "file-text"
	IconUser          = "user"
)

// Badge is the rendered form of a status.
type Badge struct {
	Class string `json:"class"`
	Icon  string `json:"icon,omitempty"`
	Label string `json:"label"`
}

// Label capitalizes the first letter of v and replaces hyphens with spaces,
// so "in-review" becomes "In review".
func Label(v string) string {
	if v == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(v)
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(v[size:], "-", " ")
}

// DocumentBadge returns the badge for a document status.
func DocumentBadge(s model.DocumentStatus) (Badge, error) {
	switch s {
	case model.StatusPending:
		return Badge{Class: "badge-warning", Icon: IconClock, Label: Label(string(s))}, nil
	case model.StatusInReview:
		return Badge{Class: "badge-info", Icon: IconEye, Label: Label(string(s))}, nil
	case model.StatusApproved:
		return Badge{Class: "badge-success", Icon: IconCheckCircle, Label: Label(string(s))}, nil
	case model.StatusRejected:
		return Badge{Class: "badge-danger", Icon: IconAlertTriangle, Label: Label(string(s))}, nil
	case model.StatusUrgent:
		return Badge{Class: "badge-danger badge-pulse", Icon: IconAlertTriangle, Label: Label(string(s))}, nil
	}
	return Badge{}, fmt.Errorf("%w: document status %q", ErrUnmapped, s)
}

// ActivityKindIcon returns the icon drawn next to an activity entry.
func ActivityKindIcon(k model.ActivityKind) (string, error) {
	switch k {
	case model.KindSubmission:
		return IconFileText, nil
	case model.KindApproval:
		return IconCheckCircle, nil
	case model.KindReview:
		return IconClock, nil
	case model.KindComment:
		return IconUser, nil
	}
	return "", fmt.Errorf("%w: activity kind %q", ErrUnmapped, k)
}

// ActivityBadge returns the badge for an activity status.
// ok is false when the activity has no status, in which case no badge is drawn.
func ActivityBadge(s model.ActivityStatus) (b Badge, ok bool, err error) {
	switch s {
	case "":
		return Badge{}, false, nil
	case model.ActivityPending:
		return Badge{Class: "badge-warning", Label: Label(string(s))}, true, nil
	case model.ActivityApproved:
		return Badge{Class: "badge-success", Label: Label(string(s))}, true, nil
	case model.ActivityRejected:
		return Badge{Class: "badge-danger", Label: Label(string(s))}, true, nil
	case model.ActivityUrgent:
		return Badge{Class: "badge-danger badge-pulse", Icon: IconAlertTriangle, Label: Label(string(s))}, true, nil
	}
	return Badge{}, false, fmt.Errorf("%w: activity status %q", ErrUnmapped, s)
}

// StatStyle holds the classes of a stat card and its icon chip.
type StatStyle struct {
	Card string `json:"card"`
	Icon string `json:"icon"`
}

// StatVariantStyle returns the classes for a stat card variant. An empty variant is the default.
func StatVariantStyle(v model.StatVariant) (StatStyle, error) {
	switch v {
	case "", model.VariantDefault:
		return StatStyle{Card: "stat-default", Icon: "stat-icon-default"}, nil
	case model.VariantSuccess:
		return StatStyle{Card: "stat-success", Icon: "stat-icon-success"}, nil
	case model.VariantWarning:
		return StatStyle{Card: "stat-warning", Icon: "stat-icon-warning"}, nil
	case model.VariantDanger:
		return StatStyle{Card: "stat-danger", Icon: "stat-icon-danger"}, nil
	}
	return StatStyle{}, fmt.Errorf("%w: stat variant %q", ErrUnmapped, v)
}

// TrendView is a rendered week-over-week change.
type TrendView struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// Trend renders t as "+12%" or "-8%". The sign prefix follows IsPositive, not the value.
func Trend(t model.Trend) TrendView {
	if t.IsPositive {
		return TrendView{Text: "+" + strconv.Itoa(t.Value) + "%", Class: "trend-up"}
	}
	return TrendView{Text: strconv.Itoa(t.Value) + "%", Class: "trend-down"}
}
