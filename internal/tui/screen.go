// Package tui drives a simulation inside the terminal with Bubble Tea.
package tui

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rps-arena/internal/core"
)

type cell struct {
	r     rune
	color color.RGBA
}

// Screen is a character-cell Surface. The whole arena is scaled onto the
// available columns and rows.
type Screen struct {
	cols  int
	rows  int
	half  core.Vec2
	cells []cell

	glyphs []rune
	styles map[color.RGBA]lipgloss.Style
}

var blank = cell{r: ' '}

// spriteColor is used for textured entities, which carry no fill color.
var spriteColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}

// NewScreen creates a screen for an arena with the given half extent.
func NewScreen(cols, rows int, half core.Vec2) *Screen {
	s := &Screen{half: half, styles: map[color.RGBA]lipgloss.Style{}}
	s.Resize(cols, rows)
	return s
}

// Resize changes the number of cells and clears the buffer.
func (s *Screen) Resize(cols, rows int) {
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear()
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.cols }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.rows }

// HalfExtent returns half the arena size in arena units.
func (s *Screen) HalfExtent() core.Vec2 { return s.half }

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// FillRect paints every cell the box touches with a block glyph.
func (s *Screen) FillRect(center, dim core.Vec2, c color.RGBA) {
	s.paint(center, dim, cell{r: '█', color: c})
}

// DrawSprite paints the glyph registered for tex.
func (s *Screen) DrawSprite(center, dim core.Vec2, tex core.TextureID) {
	r := '?'
	if int(tex) >= 0 && int(tex) < len(s.glyphs) {
		r = s.glyphs[tex]
	}
	s.paint(center, dim, cell{r: r, color: spriteColor})
}

// Present is a no-op; the model renders the buffer in View.
func (s *Screen) Present() {}

// LoadTexture registers a glyph for a texture path. Files are not read; the
// glyph is picked from the file name.
func (s *Screen) LoadTexture(path string) (core.TextureID, error) {
	if path == "" {
		return 0, fmt.Errorf("tui: empty texture path")
	}
	s.glyphs = append(s.glyphs, glyphFor(path))
	return core.TextureID(len(s.glyphs) - 1), nil
}

func glyphFor(path string) rune {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	switch {
	case strings.Contains(name, "rock"):
		return '●'
	case strings.Contains(name, "paper"):
		return '▤'
	case strings.Contains(name, "scissors"):
		return '✂'
	}
	for _, r := range strings.ToUpper(name) {
		return r
	}
	return '?'
}

// Cell returns the rune at column x and row y.
func (s *Screen) Cell(x, y int) rune {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return 0
	}
	return s.cells[y*s.cols+x].r
}

func (s *Screen) paint(center, dim core.Vec2, c cell) {
	if s.half.X <= 0 || s.half.Y <= 0 {
		return
	}
	x0, x1 := span((center.X-dim.X/2+s.half.X)/(2*s.half.X)*float64(s.cols), (center.X+dim.X/2+s.half.X)/(2*s.half.X)*float64(s.cols))
	y0, y1 := span((s.half.Y-center.Y-dim.Y/2)/(2*s.half.Y)*float64(s.rows), (s.half.Y-center.Y+dim.Y/2)/(2*s.half.Y)*float64(s.rows))
	for y := max(y0, 0); y <= min(y1, s.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, s.cols-1); x++ {
			s.cells[y*s.cols+x] = c
		}
	}
}

// span converts a continuous cell interval [lo, hi) into the inclusive range
// of cells it touches. Empty intervals still cover the cell under lo.
func span(lo, hi float64) (int, int) {
	first := int(math.Floor(lo))
	last := int(math.Ceil(hi)) - 1
	return first, max(last, first)
}

// Plain returns the buffer without styling.
func (s *Screen) Plain() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows)
	for y := range s.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.cols {
			sb.WriteRune(s.cells[y*s.cols+x].r)
		}
	}
	return sb.String()
}

// Render converts the buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (s *Screen) Render() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows*2 + s.rows)
	for y := range s.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		row := s.cells[y*s.cols : (y+1)*s.cols]
		x := 0
		for x < len(row) {
			start := row[x].color
			var run strings.Builder
			for x < len(row) && row[x].color == start {
				run.WriteRune(row[x].r)
				x++
			}
			sb.WriteString(s.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

func (s *Screen) style(c color.RGBA) lipgloss.Style {
	if c.A == 0 {
		return lipgloss.NewStyle()
	}
	st, ok := s.styles[c]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		s.styles[c] = st
	}
	return st
}
