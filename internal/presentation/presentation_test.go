package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/model"
)

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"in-review": "In review",
		"pending":   "Pending",
		"approved":  "Approved",
		"a-b-c":     "A b c",
		"":          "",
		"x":         "X",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}

func TestDocumentBadge_Exhaustive(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range model.DocumentStatuses() {
		b, err := DocumentBadge(s)
		require.NoError(t, err, s)
		assert.NotEmpty(t, b.Class, s)
		assert.NotEmpty(t, b.Icon, s)
		assert.NotEmpty(t, b.Label, s)
		seen[b.Class+"|"+b.Icon] = true
	}
	// rejected and urgent share an icon but urgent pulses.
	assert.Len(t, seen, len(model.DocumentStatuses()))
}

func TestDocumentBadge_Values(t *testing.T) {
	b, err := DocumentBadge(model.StatusInReview)
	require.NoError(t, err)
	assert.Equal(t, Badge{Class: "badge-info", Icon: IconEye, Label: "In review"}, b)

	b, err = DocumentBadge(model.StatusUrgent)
	require.NoError(t, err)
	assert.Equal(t, "badge-danger badge-pulse", b.Class)
	assert.Equal(t, IconAlertTriangle, b.Icon)
	assert.Equal(t, "Urgent", b.Label)
}

func TestDocumentBadge_Unmapped(t *testing.T) {
	_, err := DocumentBadge("archived")
	assert.ErrorIs(t, err, ErrUnmapped)
}

func TestActivityKindIcon_Exhaustive(t *testing.T) {
	want := map[model.ActivityKind]string{
		model.KindSubmission: IconFileText,
		model.KindApproval:   IconCheckCircle,
		model.KindReview:     IconClock,
		model.KindComment:    IconUser,
	}
	for _, k := range model.ActivityKinds() {
		icon, err := ActivityKindIcon(k)
		require.NoError(t, err, k)
		assert.Equal(t, want[k], icon, k)
	}

	_, err := ActivityKindIcon("upload")
	assert.ErrorIs(t, err, ErrUnmapped)
}

func TestActivityBadge(t *testing.T) {
	for _, s := range model.ActivityStatuses() {
		b, ok, err := ActivityBadge(s)
		require.NoError(t, err, s)
		assert.True(t, ok, s)
		assert.NotEmpty(t, b.Class, s)
		assert.Equal(t, Label(string(s)), b.Label)
	}

	b, ok, err := ActivityBadge(model.ActivityUrgent)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, IconAlertTriangle, b.Icon)

	b, ok, err = ActivityBadge(model.ActivityApproved)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, b.Icon)

	_, ok, err = ActivityBadge("")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ActivityBadge("in-review")
	assert.ErrorIs(t, err, ErrUnmapped)
}

func TestStatVariantStyle(t *testing.T) {
	for _, v := range model.StatVariants() {
		s, err := StatVariantStyle(v)
		require.NoError(t, err, v)
		assert.NotEmpty(t, s.Card)
		assert.NotEmpty(t, s.Icon)
	}

	def, err := StatVariantStyle("")
	require.NoError(t, err)
	explicit, err := StatVariantStyle(model.VariantDefault)
	require.NoError(t, err)
	assert.Equal(t, explicit, def)

	_, err = StatVariantStyle("info")
	assert.ErrorIs(t, err, ErrUnmapped)
}

func TestTrend(t *testing.T) {
	assert.Equal(t, TrendView{Text: "+12%", Class: "trend-up"}, Trend(model.Trend{Value: 12, IsPositive: true}))
	assert.Equal(t, TrendView{Text: "-8%", Class: "trend-down"}, Trend(model.Trend{Value: -8}))
	assert.Equal(t, TrendView{Text: "+0%", Class: "trend-up"}, Trend(model.Trend{IsPositive: true}))
}
