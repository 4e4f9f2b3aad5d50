package croquis

import "testing"

func TestSelectGrayscale(t *testing.T) {
	tests := []struct {
		caps Capabilities
		want string
	}{
		{Capabilities{ColorFilter: true, PixelAccess: true}, "filter"},
		{Capabilities{ColorFilter: true}, "filter"},
		{Capabilities{PixelAccess: true}, "luma"},
		{Capabilities{}, "none"},
	}
	for _, tt := range tests {
		if got := SelectGrayscale(tt.caps).Name(); got != tt.want {
			t.Errorf("SelectGrayscale(%+v) = %q, want %q", tt.caps, got, tt.want)
		}
	}
}

func colorSample() *Pixmap {
	pm := NewPixmap(4, 1)
	pm.SetPixel(0, 0, RGB(1, 0, 0))
	pm.SetPixel(1, 0, RGB(0, 1, 0))
	pm.SetPixel(2, 0, RGB(0, 0, 1))
	pm.SetPixel(3, 0, RGBA{R: 1, G: 0.5, B: 0.25, A: 0.5})
	return pm
}

func TestGrayscaleStrategies(t *testing.T) {
	wantLuma := []uint8{54, 182, 18}
	for _, s := range []GrayscaleStrategy{FilterGrayscale{}, LumaGrayscale{}} {
		t.Run(s.Name(), func(t *testing.T) {
			src := colorSample()
			orig := src.Clone()
			out := s.Apply(src)

			if !src.Equal(orig) {
				t.Fatal("Apply modified its source")
			}
			for x, want := range wantLuma {
				p := px(out, x, 0)
				if p[0] != p[1] || p[1] != p[2] {
					t.Errorf("pixel %d = %v, not gray", x, p)
				}
				if d := int(p[0]) - int(want); d < -1 || d > 1 {
					t.Errorf("pixel %d luma = %d, want %d (±1)", x, p[0], want)
				}
			}
			half := px(out, 3, 0)
			if half[3] != 128 || half[0] > half[3] {
				t.Errorf("translucent pixel = %v, want alpha 128 and gray <= alpha", half)
			}
		})
	}
}

func TestLumaTruncates(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGB(0, 0, 1)) // 0.0722*255 = 18.41
	if got := px(LumaGrayscale{}.Apply(pm), 0, 0)[0]; got != 18 {
		t.Errorf("luma = %d, want 18", got)
	}
}

func TestNoGrayscaleCopies(t *testing.T) {
	src := colorSample()
	out := NoGrayscale{}.Apply(src)
	if !out.Equal(src) {
		t.Error("NoGrayscale changed pixels")
	}
	out.Clear(Black)
	if out.Equal(src) {
		t.Error("NoGrayscale returned shared memory")
	}
}
