package badge

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// SVGSurface records drawing calls as an SVG document. Fonts used for text
// are embedded as base64 @font-face rules so the output renders the same
// everywhere.
type SVGSurface struct {
	fonts *FontLibrary
	size  Size

	defs     strings.Builder
	body     strings.Builder
	embedded map[string]bool

	open   int   // currently open clip groups
	stack  []int // open count at each Save
	nextID int
}

// NewSVGSurface returns an empty document of the given size.
func NewSVGSurface(lib *FontLibrary, size Size) *SVGSurface {
	return &SVGSurface{
		fonts:    lib,
		size:     size,
		embedded: make(map[string]bool),
	}
}

// Measure reports the extent of text set in f, using the surface's font library.
func (s *SVGSurface) Measure(text string, f Font) (float64, float64) {
	return s.fonts.Measure(text, f)
}

// Save pushes the current clip depth.
func (s *SVGSurface) Save() {
	s.stack = append(s.stack, s.open)
}

// Restore closes clip groups opened since the matching Save.
func (s *SVGSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	target := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	for s.open > target {
		s.body.WriteString(`</g>`)
		s.open--
	}
}

// FillPath emits sh as a filled path.
func (s *SVGSurface) FillPath(sh Shape, c color.NRGBA) error {
	fmt.Fprintf(&s.body, `<path d="%s" fill="%s"%s/>`, pathData(sh), hexColor(c), opacityAttr("fill-opacity", c))
	return nil
}

// ClipPath defines sh as a clip path and opens a group clipped to it.
func (s *SVGSurface) ClipPath(sh Shape) error {
	id := s.id("clip")
	fmt.Fprintf(&s.defs, `<clipPath id="%s"><path d="%s"/></clipPath>`, id, pathData(sh))
	fmt.Fprintf(&s.body, `<g clip-path="url(#%s)">`, id)
	s.open++
	return nil
}

// FillLinearGradient defines g and paints area with it.
func (s *SVGSurface) FillLinearGradient(g LinearGradient, area Rect) error {
	id := s.id("shine")
	fmt.Fprintf(&s.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
		id, num(g.From.X), num(g.From.Y), num(g.To.X), num(g.To.Y))
	for _, stop := range g.Stops {
		fmt.Fprintf(&s.defs, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			num(stop.Offset), hexColor(stop.Color), num(float64(stop.Color.A)/255))
	}
	s.defs.WriteString(`</linearGradient>`)
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="url(#%s)"/>`,
		num(area.X), num(area.Y), num(area.Width), num(area.Height), id)
	return nil
}

// StrokePath emits the outline of sh with the given stroke width.
func (s *SVGSurface) StrokePath(sh Shape, width float64, c color.NRGBA) error {
	fmt.Fprintf(&s.body, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`,
		pathData(sh), hexColor(c), num(width), opacityAttr("stroke-opacity", c))
	return nil
}

// DrawText emits text with its top-left corner at at, embedding the font on
// first use.
func (s *SVGSurface) DrawText(text string, f Font, c color.NRGBA, at Point) error {
	m, err := s.fonts.Resolve(f.Family)
	if err != nil {
		return fmt.Errorf("resolving font %s: %w", f.Family, err)
	}
	if !s.embedded[m.Name()] {
		fmt.Fprintf(&s.defs, `<style type="text/css">%s</style>`, fontFaceCSS(m.Name(), m.Data()))
		s.embedded[m.Name()] = true
	}

	family := fmt.Sprintf("'%s',Verdana,Geneva,sans-serif", m.Name())
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s"%s>%s</text>`,
		num(at.X), num(at.Y+m.Ascent(f.Size)), xmlEscape(family), num(f.Size),
		hexColor(c), opacityAttr("fill-opacity", c), xmlEscape(text))
	return nil
}

// Bytes returns the finished document. Groups left open by an unbalanced
// Save are closed.
func (s *SVGSurface) Bytes() []byte {
	var out strings.Builder
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(s.size.Width), num(s.size.Height), num(s.size.Width), num(s.size.Height))
	if s.defs.Len() > 0 {
		out.WriteString(`<defs>`)
		out.WriteString(s.defs.String())
		out.WriteString(`</defs>`)
	}
	out.WriteString(s.body.String())
	out.WriteString(strings.Repeat(`</g>`, s.open))
	out.WriteString(`</svg>`)
	return []byte(out.String())
}

func (s *SVGSurface) id(prefix string) string {
	s.nextID++
	return prefix + strconv.Itoa(s.nextID)
}

// pathData converts a shape to SVG path commands. Each corner is an
// elliptical-arc command; the straight edges are the implicit lines between
// consecutive arcs.
func pathData(sh Shape) string {
	var d strings.Builder
	for i, a := range sh.Arcs() {
		start, end := a.StartPoint(), a.EndPoint()
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		large := 0
		if a.Sweep() > math.Pi {
			large = 1
		}
		r := num(math.Abs(a.Radius))
		fmt.Fprintf(&d, "%s%s %s A%s %s 0 %d 1 %s %s ",
			cmd, num(start.X), num(start.Y), r, r, large, num(end.X), num(end.Y))
	}
	d.WriteString("Z")
	return d.String()
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacityAttr(name string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(float64(c.A)/255))
}

// fontFaceCSS returns a CSS @font-face rule with the font embedded as base64.
func fontFaceCSS(name string, data []byte) string {
	format := detectFontFormat(data)
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(
		`@font-face{font-family:'%s';src:url(data:font/%s;base64,%s) format('%s')}`,
		name, format, encoded, formatName(format),
	)
}

// detectFontFormat checks the first 4 bytes to determine TTF vs OTF.
func detectFontFormat(data []byte) string {
	if len(data) < 4 {
		return "ttf"
	}
	// OTF magic: "OTTO"
	if data[0] == 0x4F && data[1] == 0x54 && data[2] == 0x54 && data[3] == 0x4F {
		return "otf"
	}
	return "ttf"
}

func formatName(format string) string {
	if format == "otf" {
		return "opentype"
	}
	return "truetype"
}

// xmlEscape escapes special XML characters in badge text. Runes outside the
// XML 1.0 character range are dropped.
func xmlEscape(s string) string {
	s = strings.Map(xmlChar, s)
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF, r >= 0xE000 && r <= 0xFFFD, r >= 0x10000 && r <= unicode.MaxRune:
		return r
	}
	return -1
}
