// internal/writers/writer_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"aptclust-core/cluster"
	"aptclust-core/record"
	"aptclust/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCluster() cluster.Cluster {
	return cluster.Cluster{
		Index: 2,
		Members: []cluster.Member{
			{Entry: record.Entry{Header: "4-90-360.00", Reads: 90, RPM: 360, Seq: []byte("ACGTACGT")}, Rank: 1, Distance: 0},
			{Entry: record.Entry{Header: "9(2)-12-48.00", Reads: 12, RPM: 48, Seq: []byte("ACGTACGA")}, Rank: 2, Distance: 1},
		},
		TotalReads: 102,
		TotalRPM:   408,
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := Start(&buf, "text", 0)
	in <- sampleCluster()
	close(in)
	require.NoError(t, <-errCh)

	want := ">4-90-360.00-2-1-0\nACGTACGT\n>9(2)-12-48.00-2-2-1\nACGTACGA\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONLFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := Start(&buf, "jsonl", 0)
	in <- sampleCluster()
	close(in)
	require.NoError(t, <-errCh)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var m api.ClusterMemberV1
	require.NoError(t, json.Unmarshal(lines[1], &m))
	assert.Equal(t, "9(2)-12-48.00", m.ID)
	assert.Equal(t, 2, m.Cluster)
	assert.Equal(t, 2, m.RankInCluster)
	assert.Equal(t, 1, m.Distance)
	assert.Equal(t, "ACGTACGA", m.Seq)
}

func TestUnknownFormat(t *testing.T) {
	in, errCh := Start(io.Discard, "tsv", 0)
	in <- sampleCluster()
	close(in)
	require.Error(t, <-errCh)
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	f.n--
	return len(p), nil
}

func TestWriteErrorDoesNotBlockProducer(t *testing.T) {
	in, errCh := Start(&failWriter{}, "text", 1)
	for i := 0; i < 64; i++ {
		in <- sampleCluster() // must not deadlock once the sink has failed
	}
	close(in)
	require.Error(t, <-errCh)
}
