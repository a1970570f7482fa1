// Package designer holds the sock customization model: the fixed Pantone
// palette, size bands, the Customization record with its mutation rules,
// and the volatile session store behind the designer API.
package designer

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

// Color is one selectable Pantone swatch. PMS is the identity key.
type Color struct {
	PMS    string `yaml:"pms" json:"pms"`
	Name   string `yaml:"name" json:"name"`
	RGB    string `yaml:"rgb" json:"rgb"`
	Family string `yaml:"family" json:"family"`
	Coated bool   `yaml:"coated" json:"coated"`
}

// Palette is the immutable set of selectable colors.
type Palette struct {
	colors      []Color
	byPMS       map[string]Color
	familyOrder []string
}

type paletteFile struct {
	Colors []Color `yaml:"colors"`
}

var (
	loadOnce sync.Once
	loaded   *Palette
	loadErr  error
)

// LoadPalette parses the embedded palette file. The result is cached; the
// palette never changes at runtime.
func LoadPalette() (*Palette, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parsePalette(paletteYAML)
	})
	return loaded, loadErr
}

func parsePalette(raw []byte) (*Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	if len(file.Colors) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}

	p := &Palette{
		colors: file.Colors,
		byPMS:  make(map[string]Color, len(file.Colors)),
	}
	seenFamily := make(map[string]bool)
	for _, c := range file.Colors {
		if c.PMS == "" || c.RGB == "" || c.Family == "" {
			return nil, fmt.Errorf("palette entry %q is incomplete", c.PMS)
		}
		if _, dup := p.byPMS[c.PMS]; dup {
			return nil, fmt.Errorf("duplicate palette entry %q", c.PMS)
		}
		p.byPMS[c.PMS] = c
		if !seenFamily[c.Family] {
			seenFamily[c.Family] = true
			p.familyOrder = append(p.familyOrder, c.Family)
		}
	}
	return p, nil
}

// Colors returns all palette entries in file order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// ByPMS looks up a color by its PMS code.
func (p *Palette) ByPMS(pms string) (Color, bool) {
	c, ok := p.byPMS[pms]
	return c, ok
}

// Families returns the color family names in first-seen order.
func (p *Palette) Families() []string {
	out := make([]string, len(p.familyOrder))
	copy(out, p.familyOrder)
	return out
}

// Default swatches for a fresh customization.
const (
	DefaultSockColor     = "PMS Cool Gray 1 C"
	DefaultClubNameColor = "PMS Black C"
	DefaultGripColor     = "PMS Red 032 C"
)
