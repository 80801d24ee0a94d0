package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tonemill/tonemill/internal/colour"
)

// renderPreview prints a swatch listing of the generated palette, one
// block per base colour followed by its variants in generation order.
func renderPreview(w io.Writer, entries []colour.Entry) {
	for _, entry := range entries {
		fmt.Fprintf(w, "%s %s %s\n", swatch(entry.Hue), entry.Name, entry.Hue)
		for _, kind := range colour.Kinds {
			variants, ok := entry.ForKind(kind).Get()
			if !ok {
				continue
			}
			for _, v := range variants {
				fmt.Fprintf(w, "  %s %-24s %s\n", swatch(v.Value), v.Name, v.Value)
			}
		}
		fmt.Fprintln(w)
	}
}

// swatch renders a truecolor block for a formatted colour value. Values
// that fail to parse (e.g. an empty hue) render as blank space.
func swatch(value string) string {
	hcl, err := colour.ParseHCL(value)
	if err != nil {
		return "      "
	}
	r, g, b, ok := hcl.RGB255()
	if !ok {
		return "      "
	}
	return color.BgRGB(int(r), int(g), int(b)).Sprint("      ")
}
