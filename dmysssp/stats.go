package dmysssp

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pathcore/dmysssp/graph"
)

// StatsRecord is the observational companion to SSSP: it reports the same
// distances (not returned here, since callers that want them should call
// SSSP directly) alongside sizing, timing and distance-distribution
// summaries. Computing it never changes SSSP's behavior.
type StatsRecord struct {
	VertexCount      int
	EdgeCount        int
	Source           int
	K                int
	T                int
	Runtime          time.Duration
	ReachableCount   int
	UnreachableCount int
	MaxDistance      float64
	MeanDistance     float64
}

// SSSPStatistics runs SSSP and reports summary statistics about the run.
func SSSPStatistics(g *graph.Graph, source int, opts ...Option) (StatsRecord, error) {
	start := time.Now()
	dist, _, err := run(g, source, math.Inf(1), opts...)
	elapsed := time.Since(start)
	if err != nil {
		return StatsRecord{}, err
	}

	finite := make([]float64, 0, len(dist))
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			finite = append(finite, d)
		}
	}

	var maxD, meanD float64
	if len(finite) > 0 {
		maxD, _ = floats.Max(finite)
		meanD = stat.Mean(finite, nil)
	}

	return StatsRecord{
		VertexCount:      g.N(),
		EdgeCount:        g.NumEdges(),
		Source:           source,
		K:                pivotThreshold(g.N()),
		T:                partitionParam(g.N()),
		Runtime:          elapsed,
		ReachableCount:   len(finite),
		UnreachableCount: len(dist) - len(finite),
		MaxDistance:      maxD,
		MeanDistance:     meanD,
	}, nil
}
