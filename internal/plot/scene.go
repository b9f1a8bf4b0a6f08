package plot

import (
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDuration is how long points take to move, enter and leave.
const DefaultDuration = time.Second

// Mark is one datum bound to the plot. X and Y are normalized to [0,1] with
// Y growing upward; Ref points back into the caller's data slice.
type Mark struct {
	Key   string
	X, Y  float64
	Color string
	Ref   int
}

// Point is a mark as it should be drawn at the current instant.
type Point struct {
	Mark
	ID      string
	Radius  float64 // 1 is full size, 0 is gone
	Exiting bool
}

type sprite struct {
	Mark
	id           string
	fromColor    string
	fromX, fromY float64
	fromR, toR   float64
	exiting      bool
}

// Scene keeps marks joined by key across redraws and interpolates between
// the previous and the current binding.
type Scene struct {
	clock    clockwork.Clock
	duration time.Duration
	start    time.Time
	sprites  []sprite
}

func NewScene(clock clockwork.Clock, duration time.Duration) *Scene {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if duration < 0 {
		duration = 0
	}
	return &Scene{clock: clock, duration: duration}
}

func (s *Scene) Duration() time.Duration { return s.duration }

// Join binds marks to the scene. Marks whose key was already bound move and
// recolor from where they are now; new keys appear in place; keys no longer present shrink
// away. Repeated keys get an occurrence suffix so every mark is kept.
func (s *Scene) Join(marks []Mark) {
	now := s.clock.Now()
	t := s.progressAt(now)

	current := make(map[string]sprite, len(s.sprites))
	for _, sp := range s.sprites {
		x, y, r := sp.at(t)
		if sp.exiting && r <= 0 {
			continue
		}
		sp.X, sp.Y = x, y
		sp.Color = sp.colorAt(t)
		sp.fromR = r
		current[sp.id] = sp
	}

	next := make([]sprite, 0, len(marks)+len(current))
	bound := make(map[string]bool, len(marks))
	seen := make(map[string]int, len(marks))
	for _, m := range marks {
		id := m.Key
		if n := seen[m.Key]; n > 0 {
			id = fmt.Sprintf("%s#%d", m.Key, n)
		}
		seen[m.Key]++
		bound[id] = true

		sp := sprite{Mark: m, id: id, fromX: m.X, fromY: m.Y, fromR: 1, toR: 1}
		if cur, ok := current[id]; ok {
			sp.fromX, sp.fromY, sp.fromR = cur.X, cur.Y, cur.fromR
			sp.fromColor = cur.Color
		}
		next = append(next, sp)
	}
	if s.duration > 0 {
		for _, sp := range s.sprites {
			cur, ok := current[sp.id]
			if !ok || bound[sp.id] {
				continue
			}
			cur.fromX, cur.fromY = cur.X, cur.Y
			cur.fromColor = cur.Color
			cur.toR = 0
			cur.exiting = true
			next = append(next, cur)
		}
	}
	s.sprites = next
	s.start = now
}

// Frame returns the points to draw now, in bind order with exiting points last.
func (s *Scene) Frame() []Point {
	t := s.progressAt(s.clock.Now())
	out := make([]Point, 0, len(s.sprites))
	for _, sp := range s.sprites {
		x, y, r := sp.at(t)
		if r <= 0 {
			continue
		}
		m := sp.Mark
		m.X, m.Y = x, y
		m.Color = sp.colorAt(t)
		out = append(out, Point{Mark: m, ID: sp.id, Radius: r, Exiting: sp.exiting})
	}
	return out
}

// Animating reports whether a transition is still running.
func (s *Scene) Animating() bool {
	return s.duration > 0 && s.clock.Since(s.start) < s.duration
}

func (s *Scene) progressAt(now time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	el := now.Sub(s.start)
	if el >= s.duration {
		return 1
	}
	if el <= 0 {
		return 0
	}
	return easeCubicInOut(float64(el) / float64(s.duration))
}

func (sp sprite) at(t float64) (x, y, r float64) {
	return lerp(sp.fromX, sp.X, t), lerp(sp.fromY, sp.Y, t), lerp(sp.fromR, sp.toR, t)
}

// colorAt fades from the previous color to the bound one alongside the move.
func (sp sprite) colorAt(t float64) string {
	if sp.fromColor == "" || sp.fromColor == sp.Color || t >= 1 {
		return sp.Color
	}
	return Blend(sp.Color, sp.fromColor, t)
}

func lerp(a, b, t float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	return a + (b-a)*t
}

func easeCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
