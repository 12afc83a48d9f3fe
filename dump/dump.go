// Package dump writes the redirect table to the canonical
// "<from-name>\t<to-name>\n" sink described in SPEC_FULL.md §6, adapted
// from the teacher's internal/serialization package (same io.Writer-sink
// shape, different payload).
package dump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ritamzico/linkweight/linkgraph"
)

// WriteRedirects writes one line per redirect whose source is not declared
// and whose target is declared — the canonicalizing filter
// PageWeight::printRedirectsToFile applies (the PageRank original's
// printRedirectsToFile does not filter this way; see DESIGN.md's dump
// entry for why P2's shape is the one this sink reproduces).
func WriteRedirects(g *linkgraph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for id := linkgraph.PageId(1); int(id) <= g.NumPages(); id++ {
		if g.Declared(id) {
			continue
		}
		to, ok := g.RedirectTarget(id)
		if !ok || !g.Declared(to) {
			continue
		}
		fromName, _ := g.NameOf(id)
		toName, _ := g.NameOf(to)
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", fromName, toName); err != nil {
			return err
		}
	}

	return bw.Flush()
}
