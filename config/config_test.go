package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
database:
  host: db.internal
  port: "3306"
  user: catalog
  dbname: catalog_db
paths:
  downloads_dir: `+filepath.Join(dir, "downloads")+`
  processed_dir: `+filepath.Join(dir, "processed")+`
  report_file: `+filepath.Join(dir, "reports", "report.json")+`
wikidata:
  endpoint: https://query.wikidata.org/sparql
  timeout: 30s
parts_catalog:
  base_url: https://777parts.com
  delay: 500ms
  manufacturers: [caterpillar, komatsu]
import:
  batch_size: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "catalog", cfg.Database.User)
	assert.Equal(t, 30*time.Second, cfg.Wikidata.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.PartsCatalog.Delay)
	assert.Equal(t, []string{"caterpillar", "komatsu"}, cfg.PartsCatalog.Manufacturers)
	assert.Equal(t, 50, cfg.Import.BatchSize)

	// Data directories are created up front.
	for _, d := range []string{cfg.Paths.DownloadsDir, cfg.Paths.ProcessedDir, filepath.Dir(cfg.Paths.ReportFile)} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLoad_EnvOverridesCredentials(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
database:
  host: localhost
  user: yaml_user
paths:
  downloads_dir: `+filepath.Join(dir, "downloads")+`
  processed_dir: `+filepath.Join(dir, "processed")+`
  report_file: `+filepath.Join(dir, "report.json")+`
`)

	t.Setenv("DB_HOST", "db.prod.internal")
	t.Setenv("DB_USER", "prod_user")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.prod.internal", cfg.Database.Host)
	assert.Equal(t, "prod_user", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_Defaults(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })

	path := writeConfig(t, "database:\n  host: localhost\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Wikidata.Timeout)
	assert.Equal(t, 10*time.Second, cfg.PartsCatalog.Timeout)
	assert.Equal(t, 2*time.Second, cfg.PartsCatalog.Delay)
	assert.Equal(t, 100, cfg.Import.BatchSize)
	assert.Equal(t, "data/downloads", cfg.Paths.DownloadsDir)
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, "wikidata:\n  timeout: soon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
