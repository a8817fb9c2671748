package rlspolicy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenantkit/tenantkit/pkg/rlspolicy"
)

const registryYAML = `
tables:
  - table: projects
    isolation: org
  - table: boards
    isolation: workspace
  - table: notes
    isolation: user
    user_column: author_id
  - table: plans
    isolation: public
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses a full declaration", func(t *testing.T) {
		t.Parallel()

		reg, err := rlspolicy.Parse([]byte(registryYAML))
		require.NoError(t, err)
		assert.Equal(t, 4, reg.Len())

		notes, ok := reg.Lookup("notes")
		require.True(t, ok)
		assert.Equal(t, rlspolicy.KindUser, notes.Kind)
		assert.Equal(t, "author_id", notes.UserColumn)
	})

	t.Run("fails on duplicate table in document", func(t *testing.T) {
		t.Parallel()

		_, err := rlspolicy.Parse([]byte("tables:\n  - {table: projects, isolation: org}\n  - {table: projects, isolation: user}\n"))
		assert.ErrorIs(t, err, rlspolicy.ErrDuplicateTable)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := rlspolicy.Parse([]byte("tables: ["))
		assert.Error(t, err)
	})

	t.Run("fails on unknown isolation kind", func(t *testing.T) {
		t.Parallel()

		_, err := rlspolicy.Parse([]byte("tables:\n  - {table: projects, isolation: global}\n"))
		assert.ErrorIs(t, err, rlspolicy.ErrInvalidEntry)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads registry from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rls.yaml")
		require.NoError(t, os.WriteFile(path, []byte(registryYAML), 0o600))

		reg, err := rlspolicy.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 4, reg.Len())
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()

		_, err := rlspolicy.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
