package imagegraph

import "testing"

// solidTexture creates a w x h texture filled with c.
func solidTexture(w, h int, c RGBA) *Texture {
	t := NewTexture(w, h)
	t.Fill(c)
	return t
}

func TestNewTextureClampsDimensions(t *testing.T) {
	tex := NewTexture(0, -3)
	if tex.Width() != 1 || tex.Height() != 1 {
		t.Errorf("dimensions = %dx%d, want 1x1", tex.Width(), tex.Height())
	}
}

func TestTextureSetAt(t *testing.T) {
	tex := NewTexture(4, 3)
	c := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	tex.Set(2, 1, c)

	if got := tex.At(2, 1); !colorsClose(got, c) {
		t.Errorf("At(2,1) = %+v, want %+v", got, c)
	}
	if got := tex.At(0, 0); !colorsClose(got, Transparent) {
		t.Errorf("At(0,0) = %+v, want transparent", got)
	}
}

func TestTextureOutOfBounds(t *testing.T) {
	tex := solidTexture(2, 2, White)

	// Out-of-bounds reads return transparent, writes are ignored.
	if got := tex.At(-1, 0); got != Transparent {
		t.Errorf("At(-1,0) = %+v, want transparent", got)
	}
	if got := tex.At(2, 0); got != Transparent {
		t.Errorf("At(2,0) = %+v, want transparent", got)
	}
	tex.Set(5, 5, Red)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := tex.At(x, y); !colorsClose(got, White) {
				t.Errorf("At(%d,%d) = %+v after OOB write, want white", x, y, got)
			}
		}
	}
}

func TestTextureUnclampedChannels(t *testing.T) {
	// Kernel intermediates may exceed [0,1]; the texture must keep them.
	tex := NewTexture(1, 1)
	c := RGBA{R: 1.8, G: -0.3, B: 0.5, A: 1}
	tex.Set(0, 0, c)
	if got := tex.At(0, 0); !colorsClose(got, c) {
		t.Errorf("At = %+v, want %+v (unclamped)", got, c)
	}
}

func TestTextureClone(t *testing.T) {
	tex := solidTexture(2, 2, Red)
	clone := tex.Clone()
	clone.Set(0, 0, Blue)

	if got := tex.At(0, 0); !colorsClose(got, Red) {
		t.Errorf("clone mutation leaked into source: %+v", got)
	}
	if got := clone.At(1, 1); !colorsClose(got, Red) {
		t.Errorf("clone At(1,1) = %+v, want red", got)
	}
}

func TestSampleUVClamps(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.Set(0, 0, Red)
	tex.Set(1, 0, Blue)

	tests := []struct {
		name string
		u, v float64
		want RGBA
	}{
		{"first texel", 0.25, 0.5, Red},
		{"second texel", 0.75, 0.5, Blue},
		{"clamped left", -1, 0.5, Red},
		{"clamped right", 2, 0.5, Blue},
		{"clamped top", 0.25, -3, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.SampleUV(tt.u, tt.v); !colorsClose(got, tt.want) {
				t.Errorf("SampleUV(%v,%v) = %+v, want %+v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestSampleUVWrapRepeats(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.Set(0, 0, Red)
	tex.Set(1, 0, Blue)

	tests := []struct {
		name string
		u    float64
		want RGBA
	}{
		{"in range", 0.25, Red},
		{"wrapped once", 1.25, Red},
		{"wrapped twice", 2.75, Blue},
		{"negative", -0.25, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.SampleUVWrap(tt.u, 0.5); !colorsClose(got, tt.want) {
				t.Errorf("SampleUVWrap(%v) = %+v, want %+v", tt.u, got, tt.want)
			}
		})
	}
}

func TestToImageClamps(t *testing.T) {
	tex := NewTexture(1, 1)
	tex.Set(0, 0, RGBA{R: 2, G: -1, B: 0.5, A: 1})

	img := tex.ToImage()
	i := img.PixOffset(0, 0)
	if img.Pix[i+0] != 255 || img.Pix[i+1] != 0 {
		t.Errorf("clamped pixel = (%d,%d), want (255,0)", img.Pix[i+0], img.Pix[i+1])
	}
	if img.Pix[i+2] < 127 || img.Pix[i+2] > 128 {
		t.Errorf("blue channel = %d, want ~127", img.Pix[i+2])
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	tex := NewTexture(3, 2)
	tex.Set(0, 0, Red)
	tex.Set(2, 1, RGBA{R: 0, G: 1, B: 0, A: 0.5})

	back := FromImage(tex.ToImage())
	if back.Width() != 3 || back.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", back.Width(), back.Height())
	}
	got := back.At(2, 1)
	// 8-bit quantization allows roughly 1/255 of error.
	if got.G < 0.99 || got.A < 0.49 || got.A > 0.51 {
		t.Errorf("At(2,1) = %+v, want green at half alpha", got)
	}
}
