package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/workout/pkg/glyph"
)

var sections = []struct {
	kind  glyph.Kind
	title string
}{
	{glyph.KindStatus, "Days"},
	{glyph.KindExercise, "Exercises"},
	{glyph.KindType, "Types"},
}

type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	for _, s := range sections {
		k.Key(ctx, glyph.DefaultGlyphs(), s.kind, s.title)
	}
	return nil
}

func (k *Key) Key(ctx context.Context, glyfs []glyph.Glyph, kind glyph.Kind, title string) {
	out := k.Out
	if out == nil {
		out = color.Output
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		if v.Kind == kind {
			tbl.AddRow(v.Key, v.Symbol, v.Meaning)
		}
	}

	_, _ = fmt.Fprintln(out, glyph.Bold(glyph.Underline("\n"+title)))
	_, _ = fmt.Fprintln(out, tbl)
}
