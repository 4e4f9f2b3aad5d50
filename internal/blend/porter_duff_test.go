package blend

import "testing"

type px struct{ r, g, b, a byte }

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  px
		dst  px
		want px
	}{
		{"opaque source replaces", px{0, 0, 0, 255}, px{255, 255, 255, 255}, px{0, 0, 0, 255}},
		{"transparent source keeps", px{0, 0, 0, 0}, px{10, 20, 30, 255}, px{10, 20, 30, 255}},
		{"half black over white", px{0, 0, 0, 128}, px{255, 255, 255, 255}, px{127, 127, 127, 255}},
		{"onto transparent", px{50, 60, 70, 100}, px{0, 0, 0, 0}, px{50, 60, 70, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SourceOver(tt.src.r, tt.src.g, tt.src.b, tt.src.a, tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			if got := (px{r, g, b, a}); got != tt.want {
				t.Errorf("SourceOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDestinationOut(t *testing.T) {
	tests := []struct {
		name string
		sa   byte
		dst  px
		want px
	}{
		{"full erase", 255, px{255, 255, 255, 255}, px{0, 0, 0, 0}},
		{"no coverage", 0, px{255, 255, 255, 255}, px{255, 255, 255, 255}},
		{"half erase", 128, px{255, 255, 255, 255}, px{127, 127, 127, 127}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := DestinationOut(tt.sa, tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			if got := (px{r, g, b, a}); got != tt.want {
				t.Errorf("DestinationOut(%d) = %v, want %v", tt.sa, got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	r, g, b, a := Scale(200, 100, 50, 255, 255)
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("Scale(alpha=255) = (%d,%d,%d,%d), want unchanged", r, g, b, a)
	}
	r, g, b, a = Scale(200, 100, 50, 255, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Scale(alpha=0) = (%d,%d,%d,%d), want zero", r, g, b, a)
	}
}
