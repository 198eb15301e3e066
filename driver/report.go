package driver

import (
	"fmt"
	"log"
	"time"

	"github.com/csirmaz-dd/innerdd/ddengine"
)

// Report renders progress and final-statistics lines through the
// standard library's log package, following gaissmai-bart/cmd/main.go's
// log.SetFlags(log.Lmicroseconds) + log.Printf idiom (SUPPLEMENTED
// FEATURE 9). Quiet suppresses everything but fatal output, matching
// ReportLevel 0.
type Report struct {
	Quiet bool
}

// NewReport configures the package-level logger the way the teacher's
// single CLI example does, then returns a Report bound to reportLevel.
func NewReport(reportLevel int) *Report {
	log.SetFlags(log.Lmicroseconds)
	return &Report{Quiet: reportLevel <= 0}
}

// Progress prints one "progress] elapsed <time>, vertices: N, facets
// final: N, pending: N" line through log.Printf (SUPPLEMENTED FEATURE 9).
func (r *Report) Progress(elapsed time.Duration, vertices, facetsFinal, pending int) {
	if r.Quiet {
		return
	}
	log.Printf("progress] elapsed %s, vertices: %d, facets final: %d, pending: %d",
		formatDuration(elapsed), vertices, facetsFinal, pending)
}

// Memory prints one allocation-generation line (SUPPLEMENTED FEATURE 4).
// RunLoop calls it on a progress tick, and only when the generation has
// advanced since the last report; with progress reports off it is never
// called.
func (r *Report) Memory(generation uint64, bytesEstimate int64) {
	if r.Quiet {
		return
	}
	log.Printf("memory] generation %d, allocated: %s", generation, formatCount(float64(bytesEstimate)))
}

// Final renders the end-of-run statistics block (SUPPLEMENTED FEATURE
// 3), modeled on dump_and_save's Statistics report.
func (r *Report) Final(stats ddengine.Statistics, elapsed time.Duration, outOfMemory bool) {
	if r.Quiet {
		return
	}
	log.Printf("statistics] elapsed: %s", formatDuration(elapsed))
	log.Printf("statistics] oracle calls: %d, avg per call: %s, total oracle time: %s",
		stats.OracleCalls, formatDuration(avgOracleTime(stats)), formatDuration(stats.OracleTime))
	log.Printf("statistics] vertices accepted: %d, facets created: %d, facets finalized: %d, facets deleted: %d",
		stats.VerticesAccepted, stats.FacetsCreated, stats.FacetsFinalized, stats.FacetsDeleted)
	log.Printf("statistics] ridge tests: %d, max per insertion: %d", stats.RidgeTests, stats.RidgeTestsMax)
	log.Printf("statistics] recalculation passes: %d, consistency passes: %d, instability warnings: %d",
		stats.RecalculationPasses, stats.ConsistencyPasses, stats.InstabilityWarnings)
	if stats.PostExtractVertices > 0 {
		log.Printf("statistics] post-extract vertices: %d", stats.PostExtractVertices)
	}
	if outOfMemory {
		log.Printf("statistics] (out of memory)")
	}
}

func avgOracleTime(stats ddengine.Statistics) time.Duration {
	if stats.OracleCalls == 0 {
		return 0
	}
	return stats.OracleTime / time.Duration(stats.OracleCalls)
}

// formatDuration renders d the way showtime() in the original program
// does: hundredths of a second below a minute, then m:ss, then h:mm:ss,
// then <days>dhh:mm:ss (for example 2d01:00:00).
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2f", d.Seconds())
	}
	total := int(d.Round(time.Second).Seconds())
	s := total % 60
	m := total / 60
	if m < 60 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	h := m / 60
	m %= 60
	if h < 24 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	days := h / 24
	h %= 24
	return fmt.Sprintf("%dd%02d:%02d:%02d", days, h, m, s)
}

// formatCount renders w the way readable() in the original program
// does: a plain number below 1000, then k/M/G/P suffixed, falling back
// to scientific notation with a P suffix past that.
func formatCount(w float64) string {
	if w < 0 {
		w = 0
	}
	for _, suffix := range []string{"", "k", "M", "G"} {
		if w < 1000.0 {
			return fmt.Sprintf("%.2f%s", w, suffix)
		}
		w *= 0.001
	}
	if w < 1000.0 {
		return fmt.Sprintf("%.2fP", w)
	}
	return fmt.Sprintf("%gP", w)
}
