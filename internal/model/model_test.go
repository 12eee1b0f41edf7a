package model

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentStatus(t *testing.T) {
	for _, s := range DocumentStatuses() {
		got, err := ParseDocumentStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, in := range []string{"", "all", "Pending", "in review", "inreview", " approved"} {
		_, err := ParseDocumentStatus(in)
		assert.ErrorIs(t, err, ErrInvalidStatus, in)
	}
}

func TestParseActivityKind(t *testing.T) {
	assert.Len(t, ActivityKinds(), 4)
	for _, k := range ActivityKinds() {
		got, err := ParseActivityKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseActivityKind("upload")
	assert.ErrorIs(t, err, ErrInvalidActivityKind)
}

func TestParseActivityStatus(t *testing.T) {
	assert.Len(t, ActivityStatuses(), 4)
	for _, s := range ActivityStatuses() {
		assert.True(t, s.Valid())
	}

	_, err := ParseActivityStatus("in-review")
	assert.ErrorIs(t, err, ErrInvalidActivityStatus)
}

// Parsed values must not share memory with the input, which may be a reused request buffer.
func TestParse_ReturnsCanonicalValues(t *testing.T) {
	sameData := func(a, b string) bool { return unsafe.StringData(a) == unsafe.StringData(b) }

	for _, want := range DocumentStatuses() {
		in := string([]byte(want))
		got, err := ParseDocumentStatus(in)
		require.NoError(t, err)
		assert.True(t, sameData(string(want), string(got)), want)
		assert.False(t, sameData(in, string(got)), want)
	}
	for _, want := range ActivityKinds() {
		got, err := ParseActivityKind(string([]byte(want)))
		require.NoError(t, err)
		assert.True(t, sameData(string(want), string(got)), want)
	}
	for _, want := range ActivityStatuses() {
		got, err := ParseActivityStatus(string([]byte(want)))
		require.NoError(t, err)
		assert.True(t, sameData(string(want), string(got)), want)
	}
}

func TestDocumentOptionalFields(t *testing.T) {
	d := Document{ID: "DOC-001"}
	assert.False(t, d.HasReviewer())
	assert.False(t, d.HasReviewDate())

	d.ReviewedBy = "Frank Miller"
	assert.True(t, d.HasReviewer())
	assert.False(t, d.HasReviewDate())
}

func TestNavGroupLabel(t *testing.T) {
	assert.Equal(t, "Main Navigation", NavMain.Label())
	assert.Equal(t, "Workflow", NavWorkflow.Label())
	assert.Equal(t, "System", NavSystem.Label())
}

func TestStatVariantValid(t *testing.T) {
	for _, v := range StatVariants() {
		assert.True(t, v.Valid())
	}
	assert.False(t, StatVariant("info").Valid())
}
