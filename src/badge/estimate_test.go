package badge

import (
	"math"
	"testing"
)

// fixedMeasurer reports the same extent for any text.
type fixedMeasurer struct {
	width, height float64
	calls         int
}

func (m *fixedMeasurer) Measure(string, Font) (float64, float64) {
	m.calls++
	return m.width, m.height
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   float64
		scale   float64
		want    Size
	}{
		{"single digit", "1", 7, 1, Size{20, 20}},
		{"single digit scaled", "7", 7, 2, Size{40, 40}},
		{"single emoji", "👍🏽", 14, 1, Size{20, 20}},
		{"two digits", "12", 14, 1, Size{31, 20}},
		{"overflow label", "99+", 18, 1, Size{36, 20}},
		{"overflow label scaled", "99+", 18, 2, Size{72, 40}},
		{"default scale", "99+", 18, 0.95, Size{34.2, 19}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fixedMeasurer{width: tt.width, height: 14}
			got, ok := Estimate(tt.content, DefaultFont, tt.scale, m)
			if !ok {
				t.Fatalf("Estimate(%q) reported blank", tt.content)
			}
			if !approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("Estimate(%q, scale %g) = %v, want %v", tt.content, tt.scale, got, tt.want)
			}
		})
	}
}

func TestEstimateSkipsMeasuringShortLabels(t *testing.T) {
	m := &fixedMeasurer{width: 100}
	Estimate("8", DefaultFont, 1, m)
	if m.calls != 0 {
		t.Errorf("single character label was measured %d times", m.calls)
	}
}

func TestEstimateBlank(t *testing.T) {
	for _, content := range []string{"", " ", "\t\n"} {
		m := &fixedMeasurer{width: 10}
		if size, ok := Estimate(content, DefaultFont, 1, m); ok {
			t.Errorf("Estimate(%q) = %v, true; want blank", content, size)
		}
	}
}

func TestEstimateScalesLinearly(t *testing.T) {
	m := &fixedMeasurer{width: 21}
	base, _ := Estimate("1234", DefaultFont, 1, m)
	for _, s := range []float64{0.5, 0.95, 1.5, 3} {
		got, _ := Estimate("1234", DefaultFont, s, m)
		if !approx(got.Width, base.Width*s) || !approx(got.Height, base.Height*s) {
			t.Errorf("scale %g: got %v, want %v", s, got, Size{base.Width * s, base.Height * s})
		}
	}
}

func TestTextFontSize(t *testing.T) {
	tests := []struct {
		content string
		scale   float64
		want    float64
	}{
		{"1", 1, 16.2},
		{"99+", 1, 13.5},
		{"12", 2, 27},
		{"5", 0.95, 15.39},
	}
	for _, tt := range tests {
		if got := TextFontSize(tt.content, tt.scale); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("TextFontSize(%q, %g) = %g, want %g", tt.content, tt.scale, got, tt.want)
		}
	}
}

func TestFrameLineWidth(t *testing.T) {
	tests := []struct {
		scale float64
		want  float64
	}{
		{0.5, 2},
		{0.95, 2},
		{1, 2},
		{1.2, 2.3},
		{2, 2.5},
	}
	for _, tt := range tests {
		if got := FrameLineWidth(tt.scale); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FrameLineWidth(%g) = %g, want %g", tt.scale, got, tt.want)
		}
	}
}

func TestContentLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"7", 1},
		{"99+", 3},
		{"e\u0301", 1},
		{"👍🏽", 1},
		{"🇩🇪", 1},
		{"new", 3},
	}
	for _, tt := range tests {
		if got := ContentLength(tt.in); got != tt.want {
			t.Errorf("ContentLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	for in, want := range map[string]bool{
		"":       true,
		"   ":    true,
		"\n\t":   true,
		"\u3000": true,
		"0":      false,
		" 1 ":    false,
	} {
		if got := IsBlank(in); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", in, got, want)
		}
	}
}
