// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apiversions

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	mapset "github.com/deckarep/golang-set/v2"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	versionStyle = lipgloss.NewStyle().Bold(true)
	detailStyle  = lipgloss.NewStyle().Faint(true)
	oldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	veryOldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))  // red
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))  // magenta
)

// RenderOptions control the report output.
type RenderOptions struct {
	// Detailed lists every contributing file and resource type per identifier.
	Detailed bool
}

// Render writes the grouped summary followed by the non-empty classification
// buckets. It is purely advisory output and never returns an error for what
// the report contains.
func (r *Report) Render(w io.Writer, opts RenderOptions) {
	if r.Len() == 0 {
		fmt.Fprintln(w, "No resource declarations found.")
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("API versions (%d references)", r.Len())))
	for _, v := range r.Versions() {
		recs := r.byVersion[v]
		fmt.Fprintf(w, "  %s  %d reference(s)\n", versionStyle.Render(v), len(recs))
		if !opts.Detailed {
			continue
		}
		for _, rec := range recs {
			fmt.Fprintf(w, "    %s\n", detailStyle.Render(rec.ResourceType+"  "+rec.SourceFile))
		}
	}

	c := r.Classify()
	renderBucket(w, "Very old (more than 2 years)", c.VeryOld, veryOldStyle)
	renderBucket(w, "Old (1 to 2 years)", c.Old, oldStyle)
	renderBucket(w, "Preview", c.Preview, previewStyle)
}

func renderBucket(w io.Writer, title string, s mapset.Set[string], style lipgloss.Style) {
	if s.Cardinality() == 0 {
		return
	}
	fmt.Fprintln(w, headerStyle.Render(title))
	for _, v := range sortedDescending(s) {
		fmt.Fprintf(w, "  %s\n", style.Render(v))
	}
}

// RenderLatest writes one match/mismatch line per resolved resource type.
func RenderLatest(w io.Writer, results []LatestResult) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintln(w, headerStyle.Render("Latest API versions"))
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "  ?  %s: %v\n", res.ResourceType, res.Err)
		case res.UpToDate:
			fmt.Fprintf(w, "  =  %s (%s)\n", res.ResourceType, res.Latest)
		default:
			fmt.Fprintf(w, "  !  %s: latest is %s, referenced %v\n",
				res.ResourceType, oldStyle.Render(res.Latest), res.InUse)
		}
	}
}
