package blend

import "testing"

// TestMultiplyWhiteIsIdentity checks every opaque background against white
// and transparent ink.
func TestMultiplyWhiteIsIdentity(t *testing.T) {
	for d := 0; d < 256; d++ {
		v := byte(d)
		r, g, b, a := Multiply(255, 255, 255, 255, v, 255-v, v/2, 255)
		if r != v || g != 255-v || b != v/2 || a != 255 {
			t.Fatalf("Multiply(white, %d) = (%d,%d,%d,%d), want destination", d, r, g, b, a)
		}
		r, g, b, a = Multiply(0, 0, 0, 0, v, 255-v, v/2, 255)
		if r != v || g != 255-v || b != v/2 || a != 255 {
			t.Fatalf("Multiply(transparent, %d) = (%d,%d,%d,%d), want destination", d, r, g, b, a)
		}
	}
}

// TestMultiplyWhitePartialAlpha covers half-erased white ink over an opaque backdrop.
func TestMultiplyWhitePartialAlpha(t *testing.T) {
	for _, sa := range []byte{1, 64, 128, 200, 254} {
		r, g, b, a := Multiply(sa, sa, sa, sa, 90, 140, 210, 255)
		if r != 90 || g != 140 || b != 210 || a != 255 {
			t.Errorf("Multiply(white@%d) = (%d,%d,%d,%d), want (90,140,210,255)", sa, r, g, b, a)
		}
	}
}

func TestMultiplyDarkens(t *testing.T) {
	tests := []struct {
		name string
		src  px
		dst  px
		want px
	}{
		{"black ink", px{0, 0, 0, 255}, px{200, 150, 100, 255}, px{0, 0, 0, 255}},
		{"gray ink on white", px{128, 128, 128, 255}, px{255, 255, 255, 255}, px{128, 128, 128, 255}},
		{"gray ink on gray", px{128, 128, 128, 255}, px{128, 128, 128, 255}, px{64, 64, 64, 255}},
		{"onto transparent", px{10, 20, 30, 255}, px{0, 0, 0, 0}, px{10, 20, 30, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := Multiply(tt.src.r, tt.src.g, tt.src.b, tt.src.a, tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			if got := (px{r, g, b, a}); got != tt.want {
				t.Errorf("Multiply() = %v, want %v", got, tt.want)
			}
		})
	}
}
