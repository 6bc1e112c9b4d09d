package imagegraph

import "testing"

func TestTileOffsetIdentity(t *testing.T) {
	src := NewTexture(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, RGBA{
				R: float64(x) / 3,
				G: float64(y) / 3,
				B: float64(x+y) / 6,
				A: float64(x*4+y) / 15,
			})
		}
	}

	dst := Dispatch(NewTileOffsetKernel(src, DefaultTileOffsetParams()))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := dst.At(x, y), src.At(x, y); !colorsClose(got, want) {
				t.Errorf("At(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestTileOffsetHalfOffsetSwaps(t *testing.T) {
	src := NewTexture(2, 1)
	src.Set(0, 0, Red)
	src.Set(1, 0, Blue)

	p := DefaultTileOffsetParams()
	p.OffsetX = 0.5
	dst := Dispatch(NewTileOffsetKernel(src, p))

	// u(0) = 0.25 -> 0.75 -> texel 1, u(1) = 0.75 -> 1.25 wraps to 0.25 -> texel 0
	if got := dst.At(0, 0); !colorsClose(got, Blue) {
		t.Errorf("At(0,0) = %+v, want blue", got)
	}
	if got := dst.At(1, 0); !colorsClose(got, Red) {
		t.Errorf("At(1,0) = %+v, want red", got)
	}
}

func TestTileOffsetTilingRepeats(t *testing.T) {
	// Tiling 2 on a 2x1 texture packs two repeats into the output row.
	src := NewTexture(2, 1)
	src.Set(0, 0, Red)
	src.Set(1, 0, Blue)

	p := DefaultTileOffsetParams()
	p.TilingX = 2
	out := NewTexture(2, 1)
	RunScalar(NewTileOffsetKernel(src, p), out)

	// u(0) = 0.25*2 = 0.5 -> texel 1, u(1) = 0.75*2 = 1.5 wraps to 0.5 -> texel 1
	if got := out.At(0, 0); !colorsClose(got, Blue) {
		t.Errorf("At(0,0) = %+v, want blue", got)
	}
	if got := out.At(1, 0); !colorsClose(got, Blue) {
		t.Errorf("At(1,0) = %+v, want blue", got)
	}
}

func TestTileOffsetNegativeOffsetWraps(t *testing.T) {
	src := NewTexture(2, 1)
	src.Set(0, 0, Red)
	src.Set(1, 0, Blue)

	p := DefaultTileOffsetParams()
	p.OffsetX = -0.5
	dst := Dispatch(NewTileOffsetKernel(src, p))

	// u(0) = 0.25 - 0.5 = -0.25 wraps to 0.75 -> texel 1
	if got := dst.At(0, 0); !colorsClose(got, Blue) {
		t.Errorf("At(0,0) = %+v, want blue (negative offset wraps)", got)
	}
}

func TestTileOffsetAlphaFromOriginalUV(t *testing.T) {
	// Per-pixel distinct alpha: the output alpha must stay the source
	// pixel's own alpha at the pre-remap UV for every pixel.
	src := NewTexture(2, 1)
	src.Set(0, 0, RGBA{R: 1, A: 0.1})
	src.Set(1, 0, RGBA{B: 1, A: 0.9})

	p := DefaultTileOffsetParams()
	p.OffsetX = 0.5 // swaps the two texels
	dst := Dispatch(NewTileOffsetKernel(src, p))

	got := dst.At(0, 0)
	if !closeTo(got.B, 1) {
		t.Errorf("At(0,0).B = %v, want remapped blue", got.B)
	}
	if !closeTo(got.A, 0.1) {
		t.Errorf("At(0,0).A = %v, want 0.1 (original UV alpha)", got.A)
	}

	got = dst.At(1, 0)
	if !closeTo(got.R, 1) {
		t.Errorf("At(1,0).R = %v, want remapped red", got.R)
	}
	if !closeTo(got.A, 0.9) {
		t.Errorf("At(1,0).A = %v, want 0.9 (original UV alpha)", got.A)
	}
}
