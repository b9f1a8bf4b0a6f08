package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a grid of terminal cells. Each cell holds a 2x4 braille
// micro-pixel mask plus a color; text stamped on top replaces the glyph.
type Canvas struct {
	w, h  int
	mask  [][]uint8
	color [][]string
	text  [][]rune
	bold  [][]bool
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h}
	c.mask = make([][]uint8, h)
	c.color = make([][]string, h)
	c.text = make([][]rune, h)
	c.bold = make([][]bool, h)
	for i := 0; i < h; i++ {
		c.mask[i] = make([]uint8, w)
		c.color[i] = make([]string, w)
		c.text[i] = make([]rune, w)
		c.bold[i] = make([]bool, w)
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// MicroSize is the micro-pixel resolution of the canvas.
func (c *Canvas) MicroSize() (int, int) { return c.w * 2, c.h * 4 }

// SetPixel sets a micro-pixel (2x4 per cell) and paints its cell.
func (c *Canvas) SetPixel(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	c.color[cy][cx] = color
}

// Disk fills micro-pixels within r of (mx, my). A radius under one pixel
// still sets the center so shrinking points stay visible until they vanish.
func (c *Canvas) Disk(mx, my, r float64, color string) {
	if math.IsNaN(mx) || math.IsNaN(my) || r <= 0 {
		return
	}
	cx, cy := int(math.Round(mx)), int(math.Round(my))
	c.SetPixel(cx, cy, color)
	ri := int(math.Ceil(r))
	lim := r*r + 0.25
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= lim {
				c.SetPixel(cx+dx, cy+dy, color)
			}
		}
	}
}

// Text stamps s at cell (x, y), clipped to the canvas.
func (c *Canvas) Text(x, y int, s string, color string, bold bool) {
	if y < 0 || y >= c.h {
		return
	}
	for _, r := range s {
		if x >= c.w {
			return
		}
		if x >= 0 {
			c.text[y][x] = r
			c.color[y][x] = color
			c.bold[y][x] = bold
		}
		x++
	}
}

func (c *Canvas) glyph(x, y int) rune {
	if r := c.text[y][x]; r != 0 {
		return r
	}
	if m := c.mask[y][x]; m != 0 {
		return rune(0x2800 + int(m))
	}
	return ' '
}

// PlainLines renders the glyphs without styling.
func (c *Canvas) PlainLines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			row[x] = c.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Lines renders each row, styling runs of cells that share a color.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.color[y][x] == c.color[y][start] && c.bold[y][x] == c.bold[y][start] {
				continue
			}
			run := make([]rune, 0, x-start)
			for i := start; i < x; i++ {
				run = append(run, c.glyph(i, y))
			}
			b.WriteString(c.style(start, y).Render(string(run)))
			start = x
		}
		out[y] = b.String()
	}
	return out
}

func (c *Canvas) style(x, y int) lipgloss.Style {
	s := lipgloss.NewStyle()
	if col := c.color[y][x]; col != "" {
		s = s.Foreground(lipgloss.Color(col))
	}
	if c.bold[y][x] {
		s = s.Bold(true)
	}
	return s
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
