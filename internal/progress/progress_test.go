// internal/progress/progress_test.go
package progress

import (
	"bytes"
	"testing"

	"aptclust-core/cluster"
	"aptclust-core/record"

	"github.com/stretchr/testify/assert"
)

func oneCluster() *cluster.Cluster {
	return &cluster.Cluster{
		Index: 1,
		Members: []cluster.Member{
			{Entry: record.Entry{Header: "1-10-100.00", Reads: 10, RPM: 100, Seq: []byte("AAAA")}, Rank: 1},
		},
		TotalReads: 10,
		TotalRPM:   100,
	}
}

func TestDisabledReporterWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 3, false)
	r.Cluster(oneCluster())
	r.Finish(2)
	assert.Zero(t, buf.Len())
}

func TestSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1, true)
	r.Cluster(oneCluster())
	r.Finish(0)
	assert.Contains(t, buf.String(), "1 clusters, 1 sequences, 10 reads")
	assert.NotContains(t, buf.String(), "left unclustered")
}

func TestTruncationNote(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 3, true)
	r.Cluster(oneCluster())
	r.Finish(2)
	assert.Contains(t, buf.String(), "2 sequences left unclustered")
}
