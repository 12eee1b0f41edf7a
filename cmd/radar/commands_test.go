package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"radar/internal/model"
	"radar/internal/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDocumentsCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := run(t, "documents", "-q", "engine")
		require.NoError(t, err)
		assert.Contains(t, out, "DOC-003")
		assert.Contains(t, out, "Urgent")
		assert.Contains(t, out, "1 DOCUMENTS")
		assert.NotContains(t, out, "DOC-001")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "documents", "--status", "approved", "-o", "json")
		require.NoError(t, err)

		var res service.DocumentListResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "DOC-002", res.Items[0].ID)
		assert.Equal(t, "approved", res.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := run(t, "documents", "--status", "In Review")
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})

	t.Run("seed file", func(t *testing.T) {
		out, err := run(t, "--seed-file", "../../internal/seed/testdata/fixtures.yaml", "documents")
		require.NoError(t, err)
		assert.Contains(t, out, "QA-100")
		assert.NotContains(t, out, "DOC-001")
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := run(t, "documents", "-o", "xml")
		assert.ErrorContains(t, err, "unknown output format")
	})
}

func TestActivitiesCmd(t *testing.T) {
	out, err := run(t, "activities", "--kind", "approval")
	require.NoError(t, err)
	assert.Contains(t, out, "approval")
	assert.NotContains(t, out, "comment")

	_, err = run(t, "activities", "--kind", "like")
	assert.ErrorIs(t, err, service.ErrInvalidKind)
}

func TestRoutesCmd(t *testing.T) {
	out, err := run(t, "routes", "-o", "yaml")
	require.NoError(t, err)

	var nav []model.NavItem
	require.NoError(t, yaml.Unmarshal([]byte(out), &nav))
	require.Len(t, nav, 11)
	assert.Equal(t, "/", nav[0].URL)

	out, err = run(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "Main Navigation")
	assert.Contains(t, out, "/notifications")
}
