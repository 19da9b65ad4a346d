package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovpkit/domain/core"
	"ovpkit/domain/histogram"
	"ovpkit/internal/profiling"
	"ovpkit/ports"
)

func sampleReport(t *testing.T) *RunReport {
	t.Helper()
	table, err := histogram.Compute([]histogram.Record{
		{AvgOVP: 3.5, Headcount: 49},
		{AvgOVP: 4.5, Headcount: 51},
	}, histogram.DefaultEdges())
	require.NoError(t, err)

	return &RunReport{
		RunID:     core.RunID("run-1"),
		InputFile: "titles.xlsx",
		Cleaning:  ports.CleaningStats{TotalRows: 3, Kept: 2, DroppedScore: 1},
		Table:     table,
		Summary:   profiling.Summary{Count: 2, WeightedMean: 4.01},
		Artifacts: []core.Artifact{
			{ID: core.NewID(), Kind: core.ArtifactHistogram, Path: "out.xlsx", Fingerprint: core.NewHash([]byte("x"))},
		},
		StartedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMarkdownContainsTables(t *testing.T) {
	md := sampleReport(t).Markdown()

	assert.Contains(t, md, "# OVP distribution report")
	assert.Contains(t, md, "| 3–4 | 3.50 | 49 | 49.0% |")
	assert.Contains(t, md, "In-range headcount: 100")
	assert.Contains(t, md, "`titles.xlsx`")
	assert.Contains(t, md, "histogram")
}

func TestHTMLRendersTables(t *testing.T) {
	out := string(sampleReport(t).HTML())

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "3–4")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "report.md")
	htmlPath := filepath.Join(dir, "report.html")

	require.NoError(t, sampleReport(t).Write(mdPath, htmlPath))

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.NotEmpty(t, md)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.NotEmpty(t, html)
}
