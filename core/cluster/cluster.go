// core/cluster/cluster.go
package cluster

import "aptclust-core/record"

// Member is one entry inside a finalized cluster. Rank is the 1-based
// position in evaluation order; the seed is always rank 1 at distance 0.
type Member struct {
	Entry    record.Entry
	Rank     int
	Distance int
}

// Cluster is the result of one engine step. It is immutable once emitted;
// the engine keeps no history of past clusters.
type Cluster struct {
	Index      int
	Members    []Member
	TotalReads int
	TotalRPM   float64
}

// Size returns the member count, seed included.
func (c *Cluster) Size() int { return len(c.Members) }
