package output

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/tonemill/tonemill/internal/colour"
	"github.com/tonemill/tonemill/internal/util"
)

//go:embed *.tmpl
var templates embed.FS

// cssVar is one named variable in a style-sheet output.
type cssVar struct {
	Name  string
	Value string
}

// varData holds the template data for the style-sheet serialisers.
type varData struct {
	Vars []cssVar
}

// flattenVars produces the flat variable list for style-sheet outputs:
// one variable per base hue plus one per generated variant, in
// generation order.
func flattenVars(entries []colour.Entry) []cssVar {
	vars := make([]cssVar, 0, len(entries))
	for _, entry := range entries {
		if entry.Hue != "" {
			vars = append(vars, cssVar{Name: util.SanitiseName(entry.Name), Value: entry.Hue})
		}
		for _, kind := range colour.Kinds {
			variants, ok := entry.ForKind(kind).Get()
			if !ok {
				continue
			}
			for _, v := range variants {
				vars = append(vars, cssVar{Name: util.SanitiseName(v.Name), Value: v.Value})
			}
		}
	}
	return vars
}

// renderTemplate executes one embedded template over the flattened
// variable list.
func renderTemplate(name string, entries []colour.Entry) ([]byte, error) {
	tmplContent, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, varData{Vars: flattenVars(entries)}); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// CSS renders the palette as CSS custom properties on :root.
type CSS struct{}

// Name returns the serialiser name.
func (CSS) Name() string {
	return "css"
}

// Description returns the serialiser description.
func (CSS) Description() string {
	return "CSS custom properties on :root, one per base hue and variant"
}

// DefaultFileName returns the default output file name.
func (CSS) DefaultFileName() string {
	return "variables.css"
}

// Render serialises the entries as a CSS file.
func (CSS) Render(entries []colour.Entry) ([]byte, error) {
	return renderTemplate("variables.css.tmpl", entries)
}

// SCSS renders the palette as SCSS variables.
type SCSS struct{}

// Name returns the serialiser name.
func (SCSS) Name() string {
	return "scss"
}

// Description returns the serialiser description.
func (SCSS) Description() string {
	return "SCSS variables, one per base hue and variant"
}

// DefaultFileName returns the default output file name.
func (SCSS) DefaultFileName() string {
	return "_palette.scss"
}

// Render serialises the entries as an SCSS partial.
func (SCSS) Render(entries []colour.Entry) ([]byte, error) {
	return renderTemplate("palette.scss.tmpl", entries)
}
