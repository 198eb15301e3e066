package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/csirmaz-dd/innerdd/config"
	"github.com/csirmaz-dd/innerdd/polytope"
)

// triState mirrors the original's BOOL2 keyword semantics: 0 never, 1
// only on normal exit, 2 always (including partial results).
func shouldEmit(triState int, normalExit bool) bool {
	switch triState {
	case 0:
		return false
	case 1:
		return normalExit
	default:
		return true
	}
}

// DumpAndSave implements the end-of-run output step (spec §4.5,
// §9's "dump_and_save"): it writes vertices/facets to stdout when
// DumpVertices/DumpFacets call for it, and to the configured Save*
// files when SaveVertices/SaveFacets call for it, honoring the tri-state
// BOOL2 "never / on normal exit / always" convention, and the
// max-problem sign flip for vertex coordinates.
func DumpAndSave(store *polytope.Store, p config.Params, maximize bool, normalExit bool, stdout io.Writer) error {
	if shouldEmit(p.DumpVertices, normalExit) {
		if err := writeVertices(stdout, store, maximize, p.PrintAsFraction != 0); err != nil {
			return err
		}
	}
	if shouldEmit(p.DumpFacets, normalExit) {
		if err := writeFacets(stdout, store); err != nil {
			return err
		}
	}

	if shouldEmit(p.SaveVertices, normalExit) {
		path := p.SaveFile
		if p.SaveVertexFile != "" {
			path = p.SaveVertexFile
		}
		if path != "" {
			if err := writeVerticesToFile(path, store, maximize, p.PrintAsFraction != 0); err != nil {
				return err
			}
		}
	}
	if shouldEmit(p.SaveFacets, normalExit) {
		path := p.SaveFile
		if p.SaveFacetFile != "" {
			path = p.SaveFacetFile
		}
		if path != "" {
			if err := writeFacetsToFile(path, store); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeVertices(w io.Writer, store *polytope.Store, maximize, asFraction bool) error {
	ids := store.LiveVertexIDs()
	if _, err := fmt.Fprintln(w, FormatComment("%d vertices", countFinite(store, ids))); err != nil {
		return err
	}
	for _, vid := range ids {
		v, err := store.Vertex(vid)
		if err != nil {
			return err
		}
		if v.Ideal {
			continue
		}
		if _, err := fmt.Fprintln(w, FormatVertex(v.Coords, maximize, asFraction)); err != nil {
			return err
		}
	}
	return nil
}

func writeFacets(w io.Writer, store *polytope.Store) error {
	ids := store.LiveFacetIDs()
	final := 0
	for _, fid := range ids {
		if f, err := store.Facet(fid); err == nil && f.Status == polytope.FacetFinal {
			final++
		}
	}
	if _, err := fmt.Fprintln(w, FormatComment("%d facets", final)); err != nil {
		return err
	}
	for _, fid := range ids {
		f, err := store.Facet(fid)
		if err != nil {
			return err
		}
		if f.Status != polytope.FacetFinal {
			continue
		}
		if _, err := fmt.Fprintln(w, FormatFacet(f.Eqn)); err != nil {
			return err
		}
	}
	return nil
}

func countFinite(store *polytope.Store, ids []int) int {
	n := 0
	for _, vid := range ids {
		v, err := store.Vertex(vid)
		if err == nil && !v.Ideal {
			n++
		}
	}
	return n
}

func writeVerticesToFile(path string, store *polytope.Store, maximize, asFraction bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeVertices(f, store, maximize, asFraction)
}

func writeFacetsToFile(path string, store *polytope.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeFacets(f, store)
}
