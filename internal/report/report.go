package report

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"ovpkit/domain/core"
	"ovpkit/domain/histogram"
	"ovpkit/internal/profiling"
	"ovpkit/ports"
)

// RunReport collects everything worth keeping about a single run.
type RunReport struct {
	RunID     core.RunID
	InputFile string
	Cleaning  ports.CleaningStats
	Table     *histogram.Table
	Summary   profiling.Summary
	Artifacts []core.Artifact
	StartedAt time.Time
}

// Markdown renders the report body.
func (r *RunReport) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# OVP distribution report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- Input: `%s`\n", r.InputFile)
	fmt.Fprintf(&b, "- Started: %s\n\n", r.StartedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "## Cleaning\n\n")
	fmt.Fprintf(&b, "| Rows | Kept | Dropped (score) | Dropped (headcount) |\n")
	fmt.Fprintf(&b, "|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n\n",
		r.Cleaning.TotalRows, r.Cleaning.Kept, r.Cleaning.DroppedScore, r.Cleaning.DroppedHeadcount)

	fmt.Fprintf(&b, "## Histogram\n\n")
	fmt.Fprintf(&b, "| Range | Midpoint | Headcount | Share |\n")
	fmt.Fprintf(&b, "|---|---:|---:|---:|\n")
	for _, bin := range r.Table.Bins {
		fmt.Fprintf(&b, "| %s | %.2f | %.0f | %.1f%% |\n",
			bin.Label, bin.Midpoint, bin.Headcount, bin.Share*100)
	}
	fmt.Fprintf(&b, "\nIn-range headcount: %.0f", r.Table.TotalHeadcount)
	if r.Table.OutOfRange > 0 {
		fmt.Fprintf(&b, " (out of range: %.0f)", r.Table.OutOfRange)
	}
	fmt.Fprintf(&b, "\n\n")

	fmt.Fprintf(&b, "## Score summary\n\n")
	fmt.Fprintf(&b, "| Titles | Weighted mean | Weighted stddev | Min | Median | Max |\n")
	fmt.Fprintf(&b, "|---:|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %.3f | %.3f | %.2f | %.2f | %.2f |\n\n",
		r.Summary.Count, r.Summary.WeightedMean, r.Summary.WeightedStdDev,
		r.Summary.Min, r.Summary.Median, r.Summary.Max)

	if len(r.Artifacts) > 0 {
		fmt.Fprintf(&b, "## Artifacts\n\n")
		fmt.Fprintf(&b, "| Kind | Path | Fingerprint |\n")
		fmt.Fprintf(&b, "|---|---|---|\n")
		for _, art := range r.Artifacts {
			fp := art.Fingerprint.String()
			if len(fp) > 12 {
				fp = fp[:12]
			}
			fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", art.Kind, art.Path, fp)
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}

// HTML renders the markdown body to a standalone HTML fragment.
func (r *RunReport) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(r.Markdown()))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

// Write saves the markdown and HTML renderings next to each other.
func (r *RunReport) Write(mdPath, htmlPath string) error {
	if err := os.WriteFile(mdPath, []byte(r.Markdown()), 0644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	if err := os.WriteFile(htmlPath, r.HTML(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	log.Printf("[Report] Run report saved: %s, %s", mdPath, htmlPath)
	return nil
}
