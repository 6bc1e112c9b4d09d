package imagegraph

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrCycle is returned by Connect when the requested edge would create a
// directed cycle (including self-loops). The graph stays unchanged.
var ErrCycle = errors.New("imagegraph: connection would create a cycle")

// Connection is a directed edge from one node's output port to another
// node's input port. An input port holds at most one incoming connection;
// fan-out from a single output port is unrestricted.
type Connection struct {
	FromNode string
	FromPort int
	ToNode   string
	ToPort   int
}

// Graph owns a set of nodes (insertion order preserved) and the directed
// connections between them, and drives demand-driven evaluation.
//
// Mutation and evaluation follow a single-writer, readers-wait discipline:
// the mutation APIs take the write lock, evaluation the read lock. Two
// concurrent evaluations that share a node are not safe (node caches are
// mutated); callers wanting concurrency must evaluate disjoint subgraphs.
type Graph struct {
	mu    sync.RWMutex
	nodes []*Node
	index map[string]*Node
	conns []Connection
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// AddNode creates a node of the given kind with default parameters and a
// fresh unique id, adds it to the graph and returns it.
func (g *Graph) AddNode(kind Kind) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := newNode(uuid.NewString(), kind)
	g.nodes = append(g.nodes, n)
	g.index[n.ID] = n
	return n
}

// RemoveNode removes the node with the given id and every connection that
// references it. Unknown ids are ignored.
func (g *Graph) RemoveNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; !ok {
		return
	}
	delete(g.index, id)
	for i, n := range g.nodes {
		if n.ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	kept := g.conns[:0]
	for _, c := range g.conns {
		if c.FromNode != id && c.ToNode != id {
			kept = append(kept, c)
		}
	}
	g.conns = kept
}

// Connect adds a directed edge from one node's output port to another
// node's input port. Unresolved node ids make Connect a silent no-op.
// An edge that would create a cycle (self-loops included) is rejected
// with ErrCycle and logged. Connecting to an occupied input port replaces
// the previous edge, matching editor rewire semantics.
func (g *Graph) Connect(fromID string, fromPort int, toID string, toPort int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[fromID]; !ok {
		return nil
	}
	if _, ok := g.index[toID]; !ok {
		return nil
	}
	if fromID == toID || g.reachable(toID, fromID) {
		Logger().Warn("rejected cyclic connection", "from", fromID, "to", toID)
		return ErrCycle
	}

	// At most one incoming edge per input port.
	kept := g.conns[:0]
	for _, c := range g.conns {
		if c.ToNode != toID || c.ToPort != toPort {
			kept = append(kept, c)
		}
	}
	g.conns = append(kept, Connection{
		FromNode: fromID,
		FromPort: fromPort,
		ToNode:   toID,
		ToPort:   toPort,
	})
	return nil
}

// Disconnect removes the connection matching the exact 4-tuple. A
// non-matching tuple is a silent no-op.
func (g *Graph) Disconnect(fromID string, fromPort int, toID string, toPort int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	want := Connection{FromNode: fromID, FromPort: fromPort, ToNode: toID, ToPort: toPort}
	for i, c := range g.conns {
		if c == want {
			g.conns = append(g.conns[:i], g.conns[i+1:]...)
			return
		}
	}
}

// Node returns the node with the given id, or nil if not found.
func (g *Graph) Node(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.index[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Connections returns a copy of all connections in insertion order.
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Connection, len(g.conns))
	copy(out, g.conns)
	return out
}

// Evaluate resolves the target node's upstream dependency graph and
// computes its output, materializing each upstream node exactly once per
// call. Returns nil for an unknown target id.
//
// The per-call memo means a diamond-shaped dependency recomputes its
// shared ancestor once, not once per branch. A residual cycle (only
// possible if invariants were bypassed) is logged and treated as a
// missing input rather than recursed into.
func (g *Graph) Evaluate(targetID string) *Texture {
	g.mu.RLock()
	defer g.mu.RUnlock()

	memo := make(map[string]*Texture)
	visiting := make(map[string]bool)

	var eval func(id string) *Texture
	eval = func(id string) *Texture {
		n, ok := g.index[id]
		if !ok {
			return nil
		}
		if out, done := memo[id]; done {
			return out
		}
		if visiting[id] {
			Logger().Warn("cycle detected during evaluation", "node", id)
			return nil
		}
		visiting[id] = true

		inputs := make([]*Texture, n.Kind.InputPorts())
		for port := range inputs {
			if c, ok := g.incoming(id, port); ok {
				inputs[port] = eval(c.FromNode)
			}
		}

		out := n.Process(inputs...)
		visiting[id] = false
		memo[id] = out
		return out
	}

	return eval(targetID)
}

// incoming returns the connection feeding the given input port, if any.
// Callers must hold at least the read lock.
func (g *Graph) incoming(id string, port int) (Connection, bool) {
	for _, c := range g.conns {
		if c.ToNode == id && c.ToPort == port {
			return c, true
		}
	}
	return Connection{}, false
}

// reachable reports whether a directed path from one node to another
// exists. Callers must hold the lock.
func (g *Graph) reachable(fromID, toID string) bool {
	if fromID == toID {
		return true
	}
	seen := map[string]bool{fromID: true}
	stack := []string{fromID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.conns {
			if c.FromNode != id || seen[c.ToNode] {
				continue
			}
			if c.ToNode == toID {
				return true
			}
			seen[c.ToNode] = true
			stack = append(stack, c.ToNode)
		}
	}
	return false
}
