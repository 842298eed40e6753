// internal/progress/progress.go
package progress

import (
	"fmt"
	"io"
	"time"

	"aptclust-core/cluster"

	"github.com/schollz/progressbar/v3"
)

// Reporter is the optional side channel for clustering progress: a bar over
// the filtered pool plus a final summary. It is purely observational and a
// disabled Reporter writes nothing.
type Reporter struct {
	w         io.Writer
	bar       *progressbar.ProgressBar
	clusters  int
	sequences int
	reads     int
}

// New returns a Reporter over total pool entries writing to w (normally
// stderr). A nil is never returned; pass enabled=false for a no-op.
func New(w io.Writer, total int, enabled bool) *Reporter {
	if !enabled {
		return &Reporter{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(250*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("clustering"),
	)
	return &Reporter{w: w, bar: bar}
}

// Cluster records one finalized cluster and advances the bar by its size.
func (r *Reporter) Cluster(c *cluster.Cluster) {
	r.clusters++
	r.sequences += len(c.Members)
	r.reads += c.TotalReads
	if r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("cluster %d: %d seqs, %d reads, %.2f rpm",
		c.Index, len(c.Members), c.TotalReads, c.TotalRPM))
	_ = r.bar.Add(len(c.Members))
}

// Finish clears the bar and prints the run summary. unclustered is the pool
// size left behind when the cluster cap stopped iteration early.
func (r *Reporter) Finish(unclustered int) {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	fmt.Fprintf(r.w, "%d clusters, %d sequences, %d reads\n", r.clusters, r.sequences, r.reads)
	if unclustered > 0 {
		fmt.Fprintf(r.w, "%d sequences left unclustered (cluster cap reached)\n", unclustered)
	}
}
