package imagegraph

// BlendMode selects the two-source blend operation.
type BlendMode int

const (
	// BlendMultiply multiplies the two sources per channel.
	BlendMultiply BlendMode = iota
	// BlendAdd sums the sources per channel, scaling the second source by
	// the blend strength and clamping the result to [0, 1].
	BlendAdd
)

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendMultiply:
		return "multiply"
	case BlendAdd:
		return "add"
	default:
		return "unknown"
	}
}

// BlendParams control the blend kernel. Strength scales the second source
// in BlendAdd mode and is ignored by BlendMultiply.
type BlendParams struct {
	Mode     BlendMode
	Strength float64
}

// DefaultBlendParams returns a multiply blend at full strength.
func DefaultBlendParams() BlendParams {
	return BlendParams{Mode: BlendMultiply, Strength: 1}
}

// BlendKernel combines two sources A and B. The output always takes A's
// dimensions and, regardless of mode, the output alpha is overwritten with
// A's alpha at each pixel.
//
// When B's dimensions differ from A's, B is resampled onto A's grid by
// nearest-neighbor UV lookup; the mismatch is reported once at Warn level
// when the kernel is created. This is a recoverable condition, never a
// failure.
type BlendKernel struct {
	a, b     *Texture
	params   BlendParams
	resample bool
}

// NewBlendKernel creates a blend kernel over sources a and b.
func NewBlendKernel(a, b *Texture, params BlendParams) *BlendKernel {
	resample := a.Width() != b.Width() || a.Height() != b.Height()
	if resample {
		Logger().Warn("blend sources differ in size, resampling second source",
			"a_width", a.Width(), "a_height", a.Height(),
			"b_width", b.Width(), "b_height", b.Height())
	}
	return &BlendKernel{a: a, b: b, params: params, resample: resample}
}

// Name implements Kernel.
func (k *BlendKernel) Name() string { return "blend-" + k.params.Mode.String() }

// Bounds implements Kernel.
func (k *BlendKernel) Bounds() (int, int) {
	return k.a.Width(), k.a.Height()
}

// Pixel implements Kernel.
func (k *BlendKernel) Pixel(x, y int) RGBA {
	ca := k.a.At(x, y)
	var cb RGBA
	if k.resample {
		u := (float64(x) + 0.5) / float64(k.a.Width())
		v := (float64(y) + 0.5) / float64(k.a.Height())
		cb = k.b.SampleUV(u, v)
	} else {
		cb = k.b.At(x, y)
	}

	var out RGBA
	switch k.params.Mode {
	case BlendAdd:
		s := k.params.Strength
		out = RGBA{
			R: Clamp01(ca.R + cb.R*s),
			G: Clamp01(ca.G + cb.G*s),
			B: Clamp01(ca.B + cb.B*s),
			A: Clamp01(ca.A + cb.A*s),
		}
	default: // BlendMultiply
		out = RGBA{
			R: ca.R * cb.R,
			G: ca.G * cb.G,
			B: ca.B * cb.B,
			A: ca.A * cb.A,
		}
	}

	// Alpha always comes from source A, whatever the mode computed.
	out.A = ca.A
	return out
}
