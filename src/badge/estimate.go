package badge

// Estimate derives the preferred size for content. It returns false for blank
// content, in which case the caller keeps whatever size it had.
//
// Labels shorter than two characters get a square badge. Longer labels are
// padded by a fixed margin plus one unit per character.
func Estimate(content string, font Font, scale float64, m Measurer) (Size, bool) {
	if IsBlank(content) {
		return Size{}, false
	}

	n := ContentLength(content)
	if n < 2 {
		return Size{Width: baseSide * scale, Height: baseSide * scale}, true
	}

	w, _ := m.Measure(content, font)
	return Size{
		Width:  (basePadding + w + float64(n)) * scale,
		Height: baseSide * scale,
	}, true
}

// TextFontSize returns the point size used to draw content at scale.
// Single characters are drawn 20% larger.
func TextFontSize(content string, scale float64) float64 {
	size := baseTextSize * scale
	if ContentLength(content) < 2 {
		size += size * singleCharBoost
	}
	return size
}

// FrameLineWidth returns the frame stroke width at scale.
func FrameLineWidth(scale float64) float64 {
	w := frameLineWidth
	if scale > 1 {
		w += scale * frameScaleBoost
	}
	return w
}
