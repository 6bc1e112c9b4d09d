package imagegraph

// Kind identifies a node's transform. The set is closed: processing is
// dispatched through a single switch rather than an open interface
// hierarchy.
type Kind int

const (
	// KindInput supplies a caller-provided texture. No input ports.
	KindInput Kind = iota
	// KindColorAdjust applies brightness/contrast/saturation/hue.
	KindColorAdjust
	// KindBlur applies a box blur.
	KindBlur
	// KindTileOffset remaps UVs with repeat addressing.
	KindTileOffset
	// KindBlend combines two upstream sources.
	KindBlend
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindColorAdjust:
		return "color-adjust"
	case KindBlur:
		return "blur"
	case KindTileOffset:
		return "tile-offset"
	case KindBlend:
		return "blend"
	default:
		return "unknown"
	}
}

// InputPorts returns the number of input ports for the kind. Input ports
// are numbered 0..InputPorts-1.
func (k Kind) InputPorts() int {
	switch k {
	case KindInput:
		return 0
	case KindBlend:
		return 2
	default:
		return 1
	}
}

// OutputPort returns the ordinal of the kind's single output port, which
// follows its input ports: 0 for input nodes, 1 for single-input nodes,
// 2 for blend nodes.
func (k Kind) OutputPort() int {
	return k.InputPorts()
}

// Node is a single transform stage in the graph: a stable identity, a
// kind, kind-specific parameters and a cached last-computed result.
//
// Only the parameter struct matching Kind is consulted by Process; the
// others are inert. Parameter mutation never invalidates the cache - a
// fresh result is only produced by the next Process call (pull-based).
//
// A Node's Process must not be invoked concurrently with another Process
// call on the same node (the cache field is mutated). Concurrent Process
// on distinct nodes with disjoint sources is safe.
type Node struct {
	// ID is a unique, stable identifier assigned by the graph.
	ID string
	// Kind selects the node's transform.
	Kind Kind

	// ColorAdjust holds parameters for KindColorAdjust nodes.
	ColorAdjust ColorAdjustParams
	// Blur holds parameters for KindBlur nodes.
	Blur BlurParams
	// TileOffset holds parameters for KindTileOffset nodes.
	TileOffset TileOffsetParams
	// Blend holds parameters for KindBlend nodes.
	Blend BlendParams

	source *Texture // KindInput payload, supplied by the caller
	cache  *Texture
}

// newNode creates a node with default parameters for its kind.
func newNode(id string, kind Kind) *Node {
	return &Node{
		ID:          id,
		Kind:        kind,
		ColorAdjust: DefaultColorAdjustParams(),
		Blur:        DefaultBlurParams(),
		TileOffset:  DefaultTileOffsetParams(),
		Blend:       DefaultBlendParams(),
	}
}

// SetSource assigns the texture an input node produces. Only meaningful
// for KindInput nodes.
func (n *Node) SetSource(t *Texture) {
	n.source = t
}

// Source returns the texture assigned to an input node, or nil.
func (n *Node) Source() *Texture {
	return n.source
}

// Preview returns the node's last successfully computed output, or nil if
// the node has never produced one.
func (n *Node) Preview() *Texture {
	return n.cache
}

// Process computes the node's output from its resolved inputs, caches it
// and returns it. The inputs slice carries one optional texture per input
// port, in port order; nil entries mark unresolved ports.
//
// Missing-input policy: if a required input is absent the node returns its
// cached output when one exists, otherwise a 1x1 opaque black placeholder.
// A valid cache is never overwritten by the placeholder. A blend node with
// exactly one resolved input passes that input through unmodified.
func (n *Node) Process(inputs ...*Texture) *Texture {
	switch n.Kind {
	case KindInput:
		if n.source == nil {
			return n.fallback()
		}
		n.cache = n.source
		return n.cache

	case KindBlend:
		a := inputAt(inputs, 0)
		b := inputAt(inputs, 1)
		switch {
		case a != nil && b != nil:
			n.cache = Dispatch(NewBlendKernel(a, b, n.Blend))
		case a != nil:
			n.cache = a
		case b != nil:
			n.cache = b
		default:
			return n.fallback()
		}
		return n.cache

	default:
		src := inputAt(inputs, 0)
		if src == nil {
			return n.fallback()
		}
		var k Kernel
		switch n.Kind {
		case KindColorAdjust:
			k = NewColorAdjustKernel(src, n.ColorAdjust)
		case KindBlur:
			k = NewBlurKernel(src, n.Blur)
		case KindTileOffset:
			k = NewTileOffsetKernel(src, n.TileOffset)
		default:
			return n.fallback()
		}
		n.cache = Dispatch(k)
		return n.cache
	}
}

// fallback returns the cached output when one exists, otherwise a fresh
// 1x1 opaque black placeholder. The placeholder is deliberately not
// cached so a later valid result is not shadowed by it.
func (n *Node) fallback() *Texture {
	if n.cache != nil {
		return n.cache
	}
	p := NewTexture(1, 1)
	p.Fill(Black)
	return p
}

// inputAt returns the i-th input if present and non-nil.
func inputAt(inputs []*Texture, i int) *Texture {
	if i < len(inputs) {
		return inputs[i]
	}
	return nil
}
