package scraper

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ooxo-pl/machines-data/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAll(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		assert.Equal(t, "TestBot/1.0", r.Header.Get("User-Agent"))
		queries = append(queries, r.URL.Query().Get("query"))
		io.WriteString(w, "machine,machineLabel\nhttp://www.wikidata.org/entity/Q1,320D\n")
	}))
	defer srv.Close()

	outDir := filepath.Join(t.TempDir(), "downloads")
	d := NewWikidataDownloader(config.WikidataConfig{
		Endpoint:  srv.URL,
		UserAgent: "TestBot/1.0",
	}, outDir, quietLogger())

	n := d.DownloadAll()
	assert.Equal(t, 4, n)
	require.Len(t, queries, 4)
	assert.Contains(t, queries[0], "wd:Q107099")

	for _, name := range []string{"excavators", "wheel_loaders", "dozers", "engines"} {
		data, err := os.ReadFile(filepath.Join(outDir, "wikidata_"+name+".csv"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "machineLabel")
	}
}

func TestDownloadAll_ServerErrorSkipsQuery(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "throttled", http.StatusTooManyRequests)
			return
		}
		io.WriteString(w, "machine,machineLabel\n")
	}))
	defer srv.Close()

	outDir := t.TempDir()
	d := NewWikidataDownloader(config.WikidataConfig{Endpoint: srv.URL}, outDir, quietLogger())

	n := d.DownloadAll()
	assert.Equal(t, 3, n)

	_, err := os.Stat(filepath.Join(outDir, "wikidata_excavators.csv"))
	assert.True(t, os.IsNotExist(err))
}
