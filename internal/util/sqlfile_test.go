package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSQL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talent_match.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT * FROM get_benchmark_scores(@benchmark_employee_ids, @job_level, @role_name, @role_purpose);\n"), 0o644))

	sql, err := LoadSQL(path)
	require.NoError(t, err)
	assert.Contains(t, sql, "get_benchmark_scores")
	// trailing whitespace trimmed
	assert.NotContains(t, sql[len(sql)-1:], "\n")
}

func TestLoadSQLMissingFile(t *testing.T) {
	_, err := LoadSQL(filepath.Join(t.TempDir(), "nope.sql"))
	require.Error(t, err)
}

func TestLoadSQLEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.sql")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	_, err := LoadSQL(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
