package searcher

import (
	"sync/atomic"

	"ra/game"
)

// SearchMetric is a snapshot of one search invocation's counters.
type SearchMetric struct {
	CacheHits   int64
	CacheMisses int64

	TerminalNodes     int64
	HeuristicNodes    int64
	IntermediateNodes int64

	MaxDepth int64
	// NodesPerRound[r-1] counts nodes expanded in game round r.
	NodesPerRound [game.NumRounds]int64
}

// TotalNodes returns the total number of nodes the search visited.
func (m SearchMetric) TotalNodes() int64 {
	return m.TerminalNodes + m.HeuristicNodes + m.IntermediateNodes
}

// Collector accumulates search statistics. Implementations must be
// safe for concurrent use.
type Collector interface {
	CacheHit()
	CacheMiss()
	// TerminalNode records a leaf valued by actual final scores.
	TerminalNode(round int)
	// HeuristicNode records a leaf valued by the heuristic evaluator.
	HeuristicNode(round int)
	// IntermediateNode records an expanded interior node.
	IntermediateNode(round int)
	ObserveDepth(depth int)
	Metrics() SearchMetric
}

type collector struct {
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64

	terminalNodes     atomic.Int64
	heuristicNodes    atomic.Int64
	intermediateNodes atomic.Int64

	maxDepth      atomic.Int64
	nodesPerRound [game.NumRounds]atomic.Int64
}

// NewCollector returns a Collector backed by atomic counters.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) CacheHit() { c.cacheHits.Add(1) }

func (c *collector) CacheMiss() { c.cacheMisses.Add(1) }

func (c *collector) TerminalNode(round int) {
	c.terminalNodes.Add(1)
	c.countRound(round)
}

func (c *collector) HeuristicNode(round int) {
	c.heuristicNodes.Add(1)
	c.countRound(round)
}

func (c *collector) IntermediateNode(round int) {
	c.intermediateNodes.Add(1)
	c.countRound(round)
}

func (c *collector) countRound(round int) {
	if round >= 1 && round <= game.NumRounds {
		c.nodesPerRound[round-1].Add(1)
	}
}

func (c *collector) ObserveDepth(depth int) {
	for {
		current := c.maxDepth.Load()
		if int64(depth) <= current {
			return
		}
		if c.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (c *collector) Metrics() SearchMetric {
	m := SearchMetric{
		CacheHits:         c.cacheHits.Load(),
		CacheMisses:       c.cacheMisses.Load(),
		TerminalNodes:     c.terminalNodes.Load(),
		HeuristicNodes:    c.heuristicNodes.Load(),
		IntermediateNodes: c.intermediateNodes.Load(),
		MaxDepth:          c.maxDepth.Load(),
	}
	for i := range c.nodesPerRound {
		m.NodesPerRound[i] = c.nodesPerRound[i].Load()
	}
	return m
}

type dummyCollector struct{}

// NewDummyCollector returns a Collector that records nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) CacheHit()              {}
func (dummyCollector) CacheMiss()             {}
func (dummyCollector) TerminalNode(int)       {}
func (dummyCollector) HeuristicNode(int)      {}
func (dummyCollector) IntermediateNode(int)   {}
func (dummyCollector) ObserveDepth(int)       {}
func (dummyCollector) Metrics() SearchMetric { return SearchMetric{} }
