package imagegraph

import "testing"

func TestColorAdjustIdentity(t *testing.T) {
	src := NewTexture(3, 3)
	src.Set(0, 0, RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.8})
	src.Set(1, 1, Red)
	src.Set(2, 2, RGBA{R: 0.9, G: 0.1, B: 0.5, A: 0.3})

	k := NewColorAdjustKernel(src, DefaultColorAdjustParams())
	dst := NewTexture(3, 3)
	RunScalar(k, dst)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got, want := dst.At(x, y), src.At(x, y); !colorsClose(got, want) {
				t.Errorf("At(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestColorAdjustBrightness(t *testing.T) {
	src := solidTexture(1, 1, RGBA{R: 0.2, G: 0.3, B: 0.4, A: 1})
	p := DefaultColorAdjustParams()
	p.Brightness = 2

	got := NewColorAdjustKernel(src, p).Pixel(0, 0)
	want := RGBA{R: 0.4, G: 0.6, B: 0.8, A: 1}
	if !colorsClose(got, want) {
		t.Errorf("Pixel = %+v, want %+v", got, want)
	}
}

func TestColorAdjustContrast(t *testing.T) {
	src := solidTexture(1, 1, RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1})
	p := DefaultColorAdjustParams()
	p.Contrast = 2

	got := NewColorAdjustKernel(src, p).Pixel(0, 0)
	// (0.25-0.5)*2+0.5 = 0, (0.5-0.5)*2+0.5 = 0.5, (0.75-0.5)*2+0.5 = 1
	want := RGBA{R: 0, G: 0.5, B: 1, A: 1}
	if !colorsClose(got, want) {
		t.Errorf("Pixel = %+v, want %+v", got, want)
	}
}

func TestColorAdjustDesaturateToLuma(t *testing.T) {
	// A black/white checkerboard at saturation 0 becomes each pixel's own
	// luminance replicated across channels.
	src := NewTexture(2, 2)
	src.Set(0, 0, Black)
	src.Set(1, 0, White)
	src.Set(0, 1, White)
	src.Set(1, 1, Black)

	p := DefaultColorAdjustParams()
	p.Saturation = 0
	dst := Dispatch(NewColorAdjustKernel(src, p))

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			luma := src.At(x, y).Luminance()
			got := dst.At(x, y)
			if !closeTo(got.R, luma) || !closeTo(got.G, luma) || !closeTo(got.B, luma) {
				t.Errorf("At(%d,%d) = %+v, want achromatic %v", x, y, got, luma)
			}
			if !closeTo(got.A, src.At(x, y).A) {
				t.Errorf("At(%d,%d) alpha = %v, want %v", x, y, got.A, src.At(x, y).A)
			}
		}
	}
}

func TestColorAdjustHueShift(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		in   RGBA
		want RGBA
	}{
		{"red to green", 1.0 / 3, Red, Green},
		{"green to blue", 1.0 / 3, Green, Blue},
		{"full rotation", 1, Red, Red},
		{"negative wraps", -2.0 / 3, Red, Green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := solidTexture(1, 1, tt.in)
			p := DefaultColorAdjustParams()
			p.Hue = tt.hue

			got := NewColorAdjustKernel(src, p).Pixel(0, 0)
			if !colorsClose(got, tt.want) {
				t.Errorf("Pixel = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorAdjustPreservesAlpha(t *testing.T) {
	src := solidTexture(2, 2, RGBA{R: 0.5, G: 0.2, B: 0.9, A: 0.37})
	p := ColorAdjustParams{Brightness: 1.7, Contrast: 0.4, Saturation: 1.9, Hue: 0.62}

	dst := Dispatch(NewColorAdjustKernel(src, p))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.At(x, y).A; !closeTo(got, 0.37) {
				t.Errorf("At(%d,%d) alpha = %v, want 0.37", x, y, got)
			}
		}
	}
}

func TestColorAdjustNoIntermediateClamping(t *testing.T) {
	// brightness 2 on a bright pixel pushes channels above 1; the kernel
	// must not clamp them.
	src := solidTexture(1, 1, RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1})
	p := DefaultColorAdjustParams()
	p.Brightness = 2

	got := NewColorAdjustKernel(src, p).Pixel(0, 0)
	if got.R < 1.7 {
		t.Errorf("R = %v, want ~1.8 (unclamped)", got.R)
	}
}
