package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"radar/internal/filter"
	"radar/internal/model"
	"radar/internal/seed"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDocuments_Defaults(t *testing.T) {
	v := NewDocuments(seed.Default().Documents)

	assert.Equal(t, "", v.SearchTerm())
	assert.Equal(t, filter.All, v.Status())
	assert.Equal(t, 5, v.Count())
}

func TestDocuments_Setters(t *testing.T) {
	v := NewDocuments(seed.Default().Documents)

	v.SetSearchTerm("Engine")
	require.Len(t, v.Visible(), 1)
	assert.Equal(t, "DOC-003", v.Visible()[0].ID)

	v.SetSearchTerm("")
	require.NoError(t, v.SetStatusFilter("approved"))
	require.Len(t, v.Visible(), 1)
	assert.Equal(t, "DOC-002", v.Visible()[0].ID)

	// An invalid value leaves the previous filter in place.
	err := v.SetStatusFilter("Approved")
	assert.ErrorIs(t, err, filter.ErrInvalidStatusFilter)
	assert.Equal(t, filter.Only(model.StatusApproved), v.Status())

	v.SetStatus("")
	assert.Equal(t, filter.All, v.Status())
	assert.Equal(t, 5, v.Count())
}

func TestDocuments_RecomputesOnEveryChange(t *testing.T) {
	v := NewDocuments(seed.Default().Documents)

	counts := []int{}
	for _, term := range []string{"m", "ma", "man", "manu", "manual"} {
		v.SetSearchTerm(term)
		counts = append(counts, v.Count())
	}
	assert.Equal(t, []int{4, 3, 3, 3, 3}, counts)
}

func TestDocuments_StatusOptions(t *testing.T) {
	v := NewDocuments(seed.Default().Documents)
	require.NoError(t, v.SetStatusFilter("in-review"))

	counts := map[model.DocumentStatus]int{
		model.StatusPending:  2,
		model.StatusInReview: 1,
	}
	opts := v.StatusOptions(counts)
	require.Len(t, opts, 6)

	assert.Equal(t, StatusOption{Value: "all", Label: "All Statuses", Count: 3}, opts[0])
	assert.Equal(t, StatusOption{Value: "pending", Label: "Pending", Count: 2}, opts[1])
	assert.Equal(t, StatusOption{Value: "in-review", Label: "In Review", Active: true, Count: 1}, opts[2])
	assert.Equal(t, "Urgent", opts[5].Label)

	active := 0
	for _, o := range opts {
		if o.Active {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestDocuments_StatusOptionsNilCounts(t *testing.T) {
	opts := NewDocuments(nil).StatusOptions(nil)
	require.Len(t, opts, 6)
	assert.True(t, opts[0].Active)
	for _, o := range opts {
		assert.Zero(t, o.Count)
	}
}
