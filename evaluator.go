package imagegraph

import (
	"sync"
	"time"
)

// EvaluatePreview refreshes the whole graph toward a preview surface,
// producing an intermediate texture per node id for live display.
//
// Nodes are processed in full topological order, so blend chains of any
// depth layer correctly. Policy per node:
//
//   - Input nodes always produce a base output. An input node without an
//     assigned texture yields a surface-sized opaque black placeholder
//     (not cached, so a later assigned texture is picked up cleanly).
//   - A single-input node is processed only once its upstream intermediate
//     exists in this pass; otherwise it is left without an updated output
//     (no map entry, cache untouched).
//   - A blend node with both ports resolved runs its kernel; with exactly
//     one resolved port it passes that input through; with none it is
//     skipped.
func (g *Graph) EvaluatePreview(surfaceWidth, surfaceHeight int) map[string]*Texture {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]*Texture)
	for _, n := range g.topoOrder() {
		switch n.Kind {
		case KindInput:
			if n.source == nil {
				p := NewTexture(surfaceWidth, surfaceHeight)
				p.Fill(Black)
				out[n.ID] = p
				continue
			}
			out[n.ID] = n.Process()

		case KindBlend:
			a := g.resolveIntermediate(out, n.ID, 0)
			b := g.resolveIntermediate(out, n.ID, 1)
			if a == nil && b == nil {
				continue
			}
			out[n.ID] = n.Process(a, b)

		default:
			src := g.resolveIntermediate(out, n.ID, 0)
			if src == nil {
				continue
			}
			out[n.ID] = n.Process(src)
		}
	}
	return out
}

// resolveIntermediate looks up the intermediate feeding an input port in
// the current pass. Returns nil when the port is unconnected or the
// upstream node produced nothing.
func (g *Graph) resolveIntermediate(out map[string]*Texture, id string, port int) *Texture {
	c, ok := g.incoming(id, port)
	if !ok {
		return nil
	}
	return out[c.FromNode]
}

// topoOrder returns the nodes in dependency order (Kahn's algorithm),
// breaking ties by insertion order. Connect rejects cycles, so every node
// is normally emitted; should a cycle exist anyway its members are logged
// and omitted.
func (g *Graph) topoOrder() []*Node {
	indegree := make(map[string]int, len(g.nodes))
	for _, c := range g.conns {
		indegree[c.ToNode]++
	}

	var queue []*Node
	for _, n := range g.nodes {
		if indegree[n.ID] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]*Node, 0, len(g.nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, c := range g.conns {
			if c.FromNode != n.ID {
				continue
			}
			indegree[c.ToNode]--
			if indegree[c.ToNode] == 0 {
				queue = append(queue, g.index[c.ToNode])
			}
		}
	}

	if len(order) < len(g.nodes) {
		Logger().Warn("preview skipped nodes in a dependency cycle",
			"skipped", len(g.nodes)-len(order))
	}
	return order
}

// Previewer drives whole-graph preview refreshes on a coarse time-based
// throttle. It never cancels in-flight work; it only spaces out passes.
type Previewer struct {
	graph *Graph

	mu          sync.Mutex
	minInterval time.Duration
	last        time.Time
}

// NewPreviewer creates a previewer over the graph. minInterval is the
// minimum delay between two whole-graph passes; zero disables throttling.
func NewPreviewer(g *Graph, minInterval time.Duration) *Previewer {
	return &Previewer{graph: g, minInterval: minInterval}
}

// Refresh runs a preview pass unless one completed within the throttle
// window. The boolean reports whether a pass ran.
func (p *Previewer) Refresh(surfaceWidth, surfaceHeight int) (map[string]*Texture, bool) {
	p.mu.Lock()
	if p.minInterval > 0 && time.Since(p.last) < p.minInterval {
		p.mu.Unlock()
		return nil, false
	}
	p.last = time.Now()
	p.mu.Unlock()

	return p.graph.EvaluatePreview(surfaceWidth, surfaceHeight), true
}
