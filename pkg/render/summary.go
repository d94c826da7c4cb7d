package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/scoreline/pkg/imposition"
)

// Summary is the textual result of a calculation: document count, starts
// and scores as comma separated lists.
func Summary(l imposition.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Max Documents: %d\n", l.Count)
	fmt.Fprintf(&b, "Document Start Positions: %s\n", imposition.FormatList(l.Starts))
	fmt.Fprintf(&b, "Score Positions: %s\n", imposition.FormatList(l.Scores))
	return b.String()
}

// Title is a one-line description used for document metadata,
// e.g. "3 × 3.625 on 12, bifold".
func Title(l imposition.Layout) string {
	return fmt.Sprintf("%d × %g on %g, %s", l.Count, l.Params.DocLength, l.Params.PageLength, l.Scheme)
}
