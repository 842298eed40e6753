// core/cluster/engine.go
package cluster

import (
	"sync"

	"aptclust-core/distance"
	"aptclust-core/record"
)

// DistanceFunc computes the distance between two sequences under a cap,
// returning (d, true) when d <= limit and (_, false) otherwise. It must be
// symmetric, zero iff the sequences are equal, and safe for concurrent use.
type DistanceFunc func(a, b []byte, limit int) (int, bool)

// Config holds clustering parameters.
type Config struct {
	Threshold   int          // max distance from the seed to join its cluster
	MaxClusters int          // stop after this many clusters (0 = unbounded)
	Threads     int          // workers for the candidate scan (<=1 = sequential)
	Distance    DistanceFunc // nil = distance.Bounded
}

// Engine runs greedy seed-and-sweep clustering over a pool of entries that
// is already sorted by descending reads. Each Step pops the most-abundant
// unclustered entry as a seed, joins every remaining entry within Threshold
// of it, and replaces the pool with the survivors. All engine state lives
// here; callers drive it with Step until it reports done.
type Engine struct {
	cfg  Config
	pool []record.Entry
	next int // index of the next cluster to emit, 1-based
}

// New creates an Engine over pool. The pool is owned by the engine from
// this point on.
func New(cfg Config, pool []record.Entry) *Engine {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Distance == nil {
		cfg.Distance = distance.Bounded
	}
	return &Engine{cfg: cfg, pool: pool, next: 1}
}

// Remaining reports how many entries are still unclustered.
func (e *Engine) Remaining() int { return len(e.pool) }

// Step emits the next cluster. ok is false once the pool is empty or the
// cluster cap has been reached; the engine stays done and every later call
// keeps returning (nil, false). Entries still pooled when the cap stops
// iteration are never emitted.
func (e *Engine) Step() (c *Cluster, ok bool) {
	if len(e.pool) == 0 {
		return nil, false
	}
	if e.cfg.MaxClusters > 0 && e.next > e.cfg.MaxClusters {
		return nil, false
	}

	seed := e.pool[0]
	rest := e.pool[1:]

	c = &Cluster{
		Index:      e.next,
		Members:    []Member{{Entry: seed, Rank: 1, Distance: 0}},
		TotalReads: seed.Reads,
		TotalRPM:   seed.RPM,
	}

	dists := e.scan(seed.Seq, rest)

	// Partition in pool order so both the member list and the next pool
	// preserve descending-abundance order regardless of thread count.
	kept := make([]record.Entry, 0, len(rest))
	for i, cand := range rest {
		if d := dists[i]; d >= 0 {
			c.Members = append(c.Members, Member{Entry: cand, Rank: len(c.Members) + 1, Distance: d})
			c.TotalReads += cand.Reads
			c.TotalRPM += cand.RPM
			continue
		}
		kept = append(kept, cand)
	}

	e.pool = kept
	e.next++
	return c, true
}

// scan computes the bounded distance from seed to every candidate. The
// result is index-aligned with rest: the distance when it is within
// Threshold, -1 otherwise. Workers own disjoint index ranges of the shared
// slice, so no locking is needed and the outcome is thread-count invariant.
func (e *Engine) scan(seed []byte, rest []record.Entry) []int {
	dists := make([]int, len(rest))
	workers := e.cfg.Threads
	if workers > len(rest) {
		workers = len(rest)
	}
	if workers <= 1 {
		e.scanRange(seed, rest, dists, 0, len(rest))
		return dists
	}

	var wg sync.WaitGroup
	chunk := (len(rest) + workers - 1) / workers
	for lo := 0; lo < len(rest); lo += chunk {
		hi := lo + chunk
		if hi > len(rest) {
			hi = len(rest)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			e.scanRange(seed, rest, dists, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return dists
}

func (e *Engine) scanRange(seed []byte, rest []record.Entry, dists []int, lo, hi int) {
	for i := lo; i < hi; i++ {
		if d, within := e.cfg.Distance(seed, rest[i].Seq, e.cfg.Threshold); within {
			dists[i] = d
		} else {
			dists[i] = -1
		}
	}
}
