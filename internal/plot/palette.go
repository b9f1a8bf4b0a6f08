package plot

import colorful "github.com/lucasb-eyer/go-colorful"

// Set2 is the ColorBrewer qualitative scheme used for station colors.
var Set2 = []string{
	"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3",
	"#a6d854", "#ffd92f", "#e5c494", "#b3b3b3",
}

// Opacity levels for points.
const (
	OpacityNormal = 0.7
	OpacityFaded  = 0.1
)

// Palette is an ordinal color scale. Keys outside the domain are appended to
// it on first use.
type Palette struct {
	scheme []string
	index  map[string]int
	domain []string
}

func NewPalette(scheme []string) *Palette {
	if len(scheme) == 0 {
		scheme = Set2
	}
	return &Palette{scheme: scheme, index: map[string]int{}}
}

// SetDomain replaces the domain; colors are reassigned in key order.
func (p *Palette) SetDomain(keys []string) {
	p.index = make(map[string]int, len(keys))
	p.domain = p.domain[:0]
	for _, k := range keys {
		if _, ok := p.index[k]; ok {
			continue
		}
		p.index[k] = len(p.domain)
		p.domain = append(p.domain, k)
	}
}

func (p *Palette) Domain() []string {
	out := make([]string, len(p.domain))
	copy(out, p.domain)
	return out
}

func (p *Palette) Color(key string) string {
	i, ok := p.index[key]
	if !ok {
		i = len(p.domain)
		p.index[key] = i
		p.domain = append(p.domain, key)
	}
	return p.scheme[i%len(p.scheme)]
}

// Blend composites fg over bg at the given opacity and returns a hex color.
// Unparseable colors are returned unchanged.
func Blend(fg, bg string, opacity float64) string {
	c, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return b.BlendRgb(c, opacity).Clamped().Hex()
}
