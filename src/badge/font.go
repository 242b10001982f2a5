package badge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sofmeright/badgekit/src/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrUnknownFont is returned when a font family is neither builtin nor loaded.
var ErrUnknownFont = errors.New("unknown font")

// FontMetrics measures text set in one typeface at any size.
type FontMetrics struct {
	name   string // family name from the font's name table
	data   []byte // raw TTF/OTF bytes, kept for SVG embedding
	parsed *sfnt.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// LoadFont parses a TTF/OTF. name is used when the font has no family name.
func LoadFont(name string, data []byte) (*FontMetrics, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}

	familyName := name
	buf := &sfnt.Buffer{}
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		familyName = n
	}

	return &FontMetrics{
		name:   familyName,
		data:   data,
		parsed: f,
		faces:  make(map[float64]font.Face),
	}, nil
}

// LoadBuiltinFont loads an embedded font by config name.
func LoadBuiltinFont(name string) (*FontMetrics, error) {
	data, err := fonts.Data(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownFont, err)
	}
	return LoadFont(name, data)
}

// LoadFontFile loads a TTF/OTF from a filesystem path.
func LoadFontFile(path string) (*FontMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadFont(name, data)
}

// Name returns the font family name.
func (m *FontMetrics) Name() string { return m.name }

// Data returns the raw font bytes.
func (m *FontMetrics) Data() []byte { return m.data }

// Measure returns the advance width of text (kerning applied) and the line
// height at size points, both in pixels at 72 DPI.
func (m *FontMetrics) Measure(text string, size float64) (width, height float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(size)
	if err != nil {
		return 0, 0
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, float64(face.Metrics().Height) / 64
}

// Ascent returns the distance from the top of the line box to the baseline.
func (m *FontMetrics) Ascent(size float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(size)
	if err != nil {
		return 0
	}
	return float64(face.Metrics().Ascent) / 64
}

// face returns the cached face at size. Faces are not safe for concurrent
// use, so callers hold m.mu for as long as they use the face.
func (m *FontMetrics) face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s at %g: %w", m.name, size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Close releases the cached faces.
func (m *FontMetrics) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for size, face := range m.faces {
		errs = append(errs, face.Close())
		delete(m.faces, size)
	}
	return errors.Join(errs...)
}

// FontLibrary resolves font families to metrics. Builtin families are loaded
// on first use; others must be added with Add. It implements Measurer.
type FontLibrary struct {
	mu       sync.Mutex
	fonts    map[string]*FontMetrics
	fallback string
}

// NewFontLibrary returns a library whose unknown families fall back to the
// builtin default font.
func NewFontLibrary() *FontLibrary {
	return &FontLibrary{
		fonts:    make(map[string]*FontMetrics),
		fallback: fonts.DefaultFont,
	}
}

// Add registers m under family, replacing any previous entry.
func (l *FontLibrary) Add(family string, m *FontMetrics) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fonts[family] = m
}

// Lookup returns the metrics for family, loading builtin fonts on demand.
func (l *FontLibrary) Lookup(family string) (*FontMetrics, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.fonts[family]; ok {
		return m, nil
	}
	m, err := LoadBuiltinFont(family)
	if err != nil {
		return nil, err
	}
	l.fonts[family] = m
	return m, nil
}

// Resolve is like Lookup but falls back to the default font for unknown
// families.
func (l *FontLibrary) Resolve(family string) (*FontMetrics, error) {
	m, err := l.Lookup(family)
	if errors.Is(err, ErrUnknownFont) && family != l.fallback {
		Logger().Debug("badge: font fallback", "family", family, "fallback", l.fallback)
		return l.Lookup(l.fallback)
	}
	return m, err
}

// Measure implements Measurer.
func (l *FontLibrary) Measure(text string, f Font) (width, height float64) {
	m, err := l.Resolve(f.Family)
	if err != nil {
		return 0, 0
	}
	return m.Measure(text, f.Size)
}

// Close releases every loaded font's faces.
func (l *FontLibrary) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	for _, m := range l.fonts {
		errs = append(errs, m.Close())
	}
	return errors.Join(errs...)
}
