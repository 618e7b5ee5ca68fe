package grounding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCountryKey(t *testing.T) {
	assert.Equal(t, "cuba", CountryKey("Cuba"))
	assert.Equal(t, "costa_rica", CountryKey(" Costa Rica "))
}

func TestLoadApprovedSourcesMergeOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "_common.txt", "UNFCCC reports\n\nPATPA\n")
	writeFile(t, dir, "cuba.txt", "CITMA portal\n")

	got := LoadApprovedSources(dir, "Cuba")
	assert.Equal(t, []string{"UNFCCC reports", "PATPA", "CITMA portal"}, got)
}

func TestLoadApprovedSourcesFallsBackToDefaults(t *testing.T) {
	got := LoadApprovedSources(t.TempDir(), "Cuba")
	assert.Equal(t, DefaultSources, got)

	// missing directory behaves the same
	got = LoadApprovedSources(filepath.Join(t.TempDir(), "nope"), "Cuba")
	assert.Equal(t, DefaultSources, got)
}

func TestLoadBundlePrefersSectionMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cuba_module_ghg.txt", "ghg extract")
	writeFile(t, dir, "cuba_overview.txt", "country extract")
	writeFile(t, dir, "ghana_module_ghg.txt", "other country")

	got := LoadBundle(dir, "Cuba", "module_ghg")
	assert.Contains(t, got, "ghg extract")
	assert.Contains(t, got, "[From cuba_module_ghg.txt]:")
	assert.NotContains(t, got, "country extract")
	assert.NotContains(t, got, "other country")
}

func TestLoadBundleFallsBackToCountryFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cuba_overview.txt", "country extract")

	got := LoadBundle(dir, "Cuba", "module_support")
	assert.Contains(t, got, "country extract")
}

func TestLoadBundleMissingIsEmptyNotError(t *testing.T) {
	assert.Equal(t, "", LoadBundle("", "Cuba", "module_ghg"))
	assert.Equal(t, "", LoadBundle(filepath.Join(t.TempDir(), "absent"), "Cuba", "module_ghg"))
	assert.Equal(t, "", LoadBundle(t.TempDir(), "Cuba", "module_ghg"))
}
