package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/tonemill/tonemill/internal/colour"
	"github.com/tonemill/tonemill/internal/output"
	"github.com/tonemill/tonemill/internal/prompt"
	"github.com/tonemill/tonemill/internal/util"
)

// defaultSteps is the variant count per kind when neither --steps nor
// --step-size is given.
const defaultSteps = 10

// generateOptions holds the generate command flags.
type generateOptions struct {
	inputPath  string
	colours    []string
	mode       string
	steps      int
	stepSize   float64
	kinds      []string
	format     string
	outputPath string
	preview    bool
	verbose    bool
}

// newGenerateCmd builds the generate subcommand.
func newGenerateCmd(registry *output.Registry) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate tint, shade and tone variants from base colours",
		Long: `Generate perceptually uniform colour variants from a set of named base
colours. Base colours come from a JSON file (an object mapping names to
colour values) and/or repeated --colour specifications; later --colour
values override file entries with the same name.

Each base colour is blended toward white (tints), black (shades) and
neutral grey (tones) in the HCL colour space, in evenly spaced steps.
Variants that collapse onto a reference colour, the base colour or an
already generated shade are dropped.

When neither --input nor --colour is given and the session is a
terminal, an interactive prompt collects the parameters instead.

Examples:
  # Three variants per kind from a palette file, as JSON on stdout
  tonemill generate --input colours.json --steps 3

  # Pure manual, rendered as CSS custom properties
  tonemill generate \
    --colour red=#ff0000 \
    --colour sky='rgb(0, 128, 255)' \
    --format css --output variables.css

  # Fixed mix step size instead of a count, hsl notation
  tonemill generate -i colours.json --step-size 0.2 --mode hsl

  # Only tints and shades, with a terminal preview
  tonemill generate -i colours.json --variants tint,shade --preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, registry, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.inputPath, "input", "i", "", "Path to a JSON file mapping colour names to values")
	f.StringArrayVarP(&opts.colours, "colour", "c", nil, "Base colour (name=value, repeatable)")
	f.StringVarP(&opts.mode, "mode", "m", "hex", "Output notation (hex, rgb, hsl)")
	f.IntVarP(&opts.steps, "steps", "n", 0, fmt.Sprintf("Number of variants per kind (1-%d)", colour.MaxSteps))
	f.Float64Var(&opts.stepSize, "step-size", 0, "Mix step size in (0, 1); alternative to --steps")
	f.StringSliceVar(&opts.kinds, "variants", []string{"tint", "shade", "tone"}, "Variant kinds (comma-separated)")
	f.StringVarP(&opts.format, "format", "f", "json", "Output format ("+strings.Join(registry.List(), ", ")+")")
	f.StringVarP(&opts.outputPath, "output", "o", "", "Output file (default: stdout)")
	f.BoolVar(&opts.preview, "preview", false, "Show a colour preview of the generated palette")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	cmd.MarkFlagsMutuallyExclusive("steps", "step-size")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, registry *output.Registry, opts *generateOptions) error {
	logger := newLogger(opts.verbose)

	// An explicit zero must be rejected, not mistaken for "unset".
	stepsSet := cmd.Flags().Changed("steps")
	sizeSet := cmd.Flags().Changed("step-size")

	if opts.inputPath == "" && len(opts.colours) == 0 {
		if !prompt.IsInteractive() {
			return fmt.Errorf("no base colours supplied: use --input or --colour")
		}
		answers, err := prompt.Run(registry.List())
		if err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		opts.inputPath = answers.InputPath
		opts.kinds = answers.Kinds
		opts.steps = answers.Steps
		stepsSet = true
		opts.mode = answers.Mode
		opts.format = answers.Format
		opts.outputPath = answers.OutputPath
	}

	mode, err := colour.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	kinds, err := colour.ParseKinds(opts.kinds)
	if err != nil {
		return err
	}

	// Resolve the count/size pair; the flags are mutually exclusive so
	// at most one is set.
	var (
		steps    int
		stepSize float64
	)
	switch {
	case sizeSet:
		stepSize = opts.stepSize
		if stepSize <= 0 || stepSize >= 1 {
			return fmt.Errorf("step size must be within (0, 1) exclusive, got %g", stepSize)
		}
		steps = colour.StepsForSize(stepSize)
	case stepsSet:
		steps = opts.steps
		stepSize = colour.SizeForSteps(steps)
	default:
		steps = defaultSteps
		stepSize = colour.SizeForSteps(steps)
	}
	if err := colour.ValidateParams(steps, stepSize); err != nil {
		return err
	}

	raw, err := collectColours(opts)
	if err != nil {
		return err
	}
	logger.Debug("collected base colours", "count", len(raw))

	// Whole-batch precondition: one bad value rejects everything.
	bases, err := colour.ParseAll(raw)
	if err != nil {
		return err
	}

	genOpts := colour.Options{
		Kinds:    kinds,
		Steps:    steps,
		StepSize: stepSize,
		Mode:     mode,
	}
	entries := make([]colour.Entry, 0, len(bases))
	for _, base := range bases {
		logger.Debug("generating variants", "base", base.Name, "steps", steps, "step_size", stepSize)
		entries = append(entries, colour.Generate(base, genOpts))
	}

	if opts.preview {
		renderPreview(cmd.OutOrStdout(), entries)
	}

	serialiser, ok := registry.Get(opts.format)
	if !ok {
		return fmt.Errorf("unknown output format: %s (available: %s)", opts.format, strings.Join(registry.List(), ", "))
	}
	data, err := serialiser.Render(entries)
	if err != nil {
		return fmt.Errorf("failed to render %s output: %w", serialiser.Name(), err)
	}

	if opts.outputPath == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return err
		}
		if !bytes.HasSuffix(data, []byte("\n")) {
			fmt.Fprintln(out)
		}
		return nil
	}

	if err := writeFile(opts.outputPath, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.outputPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%d bytes)\n", opts.outputPath, len(data))
	return nil
}

// newLogger builds the run logger; verbose enables debug tracing.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonemill",
		Level:  level,
		Output: os.Stderr,
	})
}

// collectColours assembles the raw base colours from the input file and
// --colour overrides, preserving input order. Overrides replace file
// entries with the same name in place.
func collectColours(opts *generateOptions) ([]colour.RawColour, error) {
	var raw []colour.RawColour
	index := make(map[string]int)

	if opts.inputPath != "" {
		path, err := util.ExpandHome(opts.inputPath)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path) // #nosec G304 - user-specified input file, intended to be read
		if err != nil {
			return nil, fmt.Errorf("failed to read colours file: %w", err)
		}

		// Decoding into an ordered map keeps the document's key order,
		// which fixes the output order.
		om := orderedmap.New[string, string]()
		if err := json.Unmarshal(data, om); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			index[pair.Key] = len(raw)
			raw = append(raw, colour.RawColour{Name: pair.Key, Value: pair.Value})
		}
	}

	for _, spec := range opts.colours {
		name, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid colour '%s': expected 'name=value'", spec)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			return nil, fmt.Errorf("invalid colour '%s': empty name", spec)
		}

		if i, exists := index[name]; exists {
			raw[i].Value = value
		} else {
			index[name] = len(raw)
			raw = append(raw, colour.RawColour{Name: name, Value: value})
		}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no base colours provided")
	}
	return raw, nil
}

// writeFile writes content to a file, creating directories as needed.
func writeFile(path string, content []byte) error {
	path, err := util.ExpandHome(path)
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Keep the previous output around if there was one.
	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := os.Rename(path, backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "  ⚠ Could not create backup: %v\n", err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
