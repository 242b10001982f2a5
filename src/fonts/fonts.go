// Package fonts provides the builtin TTF fonts shared across badgekit packages.
package fonts

import (
	"fmt"
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Builtin maps config names to font data.
var Builtin = map[string][]byte{
	"go-regular":   goregular.TTF,
	"go-medium":    gomedium.TTF,
	"go-bold":      gobold.TTF,
	"go-italic":    goitalic.TTF,
	"go-mono":      gomono.TTF,
	"go-mono-bold": gomonobold.TTF,
	"go-smallcaps": gosmallcaps.TTF,
}

// DefaultFont is the config name of the default builtin font.
const DefaultFont = "go-regular"

// Data returns the TTF bytes of a builtin font.
func Data(name string) ([]byte, error) {
	data, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("no built-in font %q (available: %v)", name, Names())
	}
	return data, nil
}

// Names returns sorted list of available built-in font names.
func Names() []string {
	names := make([]string, 0, len(Builtin))
	for k := range Builtin {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
