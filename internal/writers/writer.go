// internal/writers/writer.go
package writers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"syscall"

	"aptclust-core/cluster"
	"aptclust/pkg/api"
)

// Start spins up a writer goroutine consuming finalized clusters. Each
// cluster is rendered as soon as it arrives; nothing is buffered across
// clusters. The error channel yields exactly one value after the input
// channel is closed and the writer has flushed.
func Start(out io.Writer, format string, bufSize int) (chan<- cluster.Cluster, <-chan error) {
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan cluster.Cluster, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		var err error
		switch format {
		case "text":
			err = streamText(bw, in)
		case "jsonl":
			err = streamJSONL(bw, in)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		if err == nil {
			err = bw.Flush()
		} else {
			// drain so the producer never blocks on a dead writer
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}

// streamText writes the upstream-compatible record grammar: the member's
// original identifier extended with cluster index, rank within cluster, and
// edit distance from the seed.
func streamText(w io.Writer, in <-chan cluster.Cluster) error {
	for c := range in {
		for _, m := range c.Members {
			if _, err := fmt.Fprintf(w, ">%s-%d-%d-%d\n%s\n",
				m.Entry.Header, c.Index, m.Rank, m.Distance, m.Entry.Seq); err != nil {
				return err
			}
		}
	}
	return nil
}

func streamJSONL(w io.Writer, in <-chan cluster.Cluster) error {
	enc := json.NewEncoder(w)
	for c := range in {
		for _, m := range c.Members {
			v := api.ClusterMemberV1{
				ID:            m.Entry.Header,
				Cluster:       c.Index,
				RankInCluster: m.Rank,
				Distance:      m.Distance,
				Reads:         m.Entry.Reads,
				RPM:           m.Entry.RPM,
				Seq:           string(m.Entry.Seq),
			}
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe,
// as seen when a downstream consumer like `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
