package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-fixpoint/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	convergedNotice = "Generation to generation no change, game ending\n"

	RendererText  = "text"
	RendererBlock = "block"
)

// Renderer is the display hook. It is called once per generation, in order,
// starting with the seed at generation 0. The grid is only valid for the
// duration of the call.
type Renderer interface {
	Render(generation int, g *Grid) error
}

// ConvergenceNotifier is implemented by renderers that announce the fixed
// point. Run calls it once, before rendering the final generation.
type ConvergenceNotifier interface {
	NotifyConverged(generation int) error
}

// RendererNames lists the names NewRenderer accepts
func RendererNames() []string {
	return []string{RendererText, RendererBlock}
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(generation int, g *Grid) error

// Render calls f
func (f RendererFunc) Render(generation int, g *Grid) error {
	return f(generation, g)
}

// NewRenderer picks a renderer by name
func NewRenderer(name string, out io.Writer) (Renderer, error) {
	switch strings.ToLower(name) {
	case RendererText, "":
		return &TextRenderer{Out: out}, nil
	case RendererBlock:
		return &BlockRenderer{Out: out}, nil
	default:
		return nil, errors.Errorf("[NewRenderer] unknown renderer: %+v", name)
	}
}

// TextRenderer prints a generation header and one bracketed row per line
type TextRenderer struct {
	Out io.Writer
}

// Render writes the header and rows for one generation
func (r *TextRenderer) Render(generation int, g *Grid) error {
	if _, err := fmt.Fprintf(r.Out, "State at generation = %d\n%s", generation, g); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] write failed")
	}
	return nil
}

// NotifyConverged prints the end-of-game notice ahead of the final generation
func (r *TextRenderer) NotifyConverged(int) error {
	if _, err := io.WriteString(r.Out, convergedNotice); err != nil {
		return errors.Wrap(err, "[TextRenderer.NotifyConverged] write failed")
	}
	return nil
}

// BlockRenderer draws the grid with block glyphs for terminals
type BlockRenderer struct {
	Out io.Writer
}

// Render draws one generation under a population header
func (r *BlockRenderer) Render(generation int, g *Grid) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Gen: %d | Living: %d\n", generation, g.CountLivingCells())
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] == rules.Alive {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrap(err, "[BlockRenderer.Render] write failed")
	}
	return nil
}
