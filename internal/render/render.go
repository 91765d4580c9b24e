package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

type Glyphs struct {
	Mine, Flag, Covered, Empty string
}

var (
	Emoji = Glyphs{Mine: "💣", Flag: "🚩", Covered: "🟪", Empty: "⬜"}
	ASCII = Glyphs{Mine: "*", Flag: "F", Covered: "#", Empty: "."}
)

func GlyphsByName(name string) (Glyphs, bool) {
	switch strings.ToLower(name) {
	case "", "emoji":
		return Emoji, true
	case "ascii":
		return ASCII, true
	default:
		return Glyphs{}, false
	}
}

// classic minesweeper palette, indexed by mine count
var numberColors = [9]lipgloss.Color{
	"", "12", "2", "9", "4", "1", "6", "0", "8",
}

type Renderer struct {
	glyphs Glyphs
	color  bool
}

func New(glyphs Glyphs) *Renderer {
	return &Renderer{glyphs: glyphs}
}

// WithColor returns a copy of r that colours mine counts for terminals.
func (r Renderer) WithColor() *Renderer {
	r.color = true
	return &r
}

func (r *Renderer) Glyph(c Cell) string {
	switch c.Kind {
	case Mine:
		return r.glyphs.Mine
	case Flagged:
		return r.glyphs.Flag
	case Empty:
		return r.glyphs.Empty
	case Number:
		s := strconv.Itoa(c.Count)
		if r.color {
			s = lipgloss.NewStyle().
				Bold(true).
				Foreground(numberColors[c.Count]).
				Render(s)
		}
		return s
	default:
		return r.glyphs.Covered
	}
}

// Render writes one newline-terminated row per y, one glyph per x.
func (r *Renderer) Render(w io.Writer, b Board) error {
	bw := bufio.NewWriter(w)
	for y := range b.Height() {
		for x := range b.Width() {
			if _, err := bw.WriteString(r.Glyph(Classify(b, mines.Position{X: x, Y: y}))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (r *Renderer) String(b Board) string {
	var sb strings.Builder
	r.Render(&sb, b)
	return sb.String()
}
