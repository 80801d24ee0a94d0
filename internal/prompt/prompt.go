// Package prompt implements the interactive question flow used when
// generate is invoked on a terminal without enough flags.
package prompt

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/tonemill/tonemill/internal/colour"
)

// Answers holds the values collected from the interactive flow.
type Answers struct {
	InputPath  string
	Kinds      []string
	Steps      int
	Mode       string
	Format     string
	OutputPath string
}

// IsInteractive reports whether both stdin and stdout are terminals.
// The prompt flow is only offered when this holds; otherwise missing
// flags are a hard error.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Run walks the user through the generation parameters. The formats
// argument lists the registered serialiser names for the format select.
func Run(formats []string) (Answers, error) {
	var answers Answers

	input := survey.Input{
		Message: "Path to the base colours JSON file:",
		Help:    "A JSON object mapping colour names to values, e.g. {\"red\": \"#ff0000\"}",
	}
	if err := survey.AskOne(&input, &answers.InputPath, survey.WithValidator(survey.Required)); err != nil {
		return Answers{}, err
	}

	kinds := survey.MultiSelect{
		Message: "Variant kinds to generate:",
		Options: []string{string(colour.KindTint), string(colour.KindShade), string(colour.KindTone)},
		Default: []string{string(colour.KindTint), string(colour.KindShade), string(colour.KindTone)},
	}
	if err := survey.AskOne(&kinds, &answers.Kinds, survey.WithValidator(survey.MinItems(1))); err != nil {
		return Answers{}, err
	}

	steps := survey.Input{
		Message: "Number of variants per kind:",
		Default: "10",
	}
	var stepsRaw string
	if err := survey.AskOne(&steps, &stepsRaw, survey.WithValidator(validateSteps)); err != nil {
		return Answers{}, err
	}
	// Validator already accepted the value.
	answers.Steps, _ = strconv.Atoi(stepsRaw)

	mode := survey.Select{
		Message: "Output notation:",
		Options: []string{string(colour.ModeHex), string(colour.ModeRGB), string(colour.ModeHSL)},
		Default: string(colour.ModeHex),
	}
	if err := survey.AskOne(&mode, &answers.Mode); err != nil {
		return Answers{}, err
	}

	format := survey.Select{
		Message: "Output format:",
		Options: formats,
		Default: "json",
	}
	if err := survey.AskOne(&format, &answers.Format); err != nil {
		return Answers{}, err
	}

	outputPath := survey.Input{
		Message: "Output file (leave empty for stdout):",
	}
	if err := survey.AskOne(&outputPath, &answers.OutputPath); err != nil {
		return Answers{}, err
	}

	return answers, nil
}

// validateSteps checks a step count answer before it is accepted.
func validateSteps(ans interface{}) error {
	raw, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a number")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("'%s' is not a number", raw)
	}
	if n < 1 || n > colour.MaxSteps {
		return fmt.Errorf("must be between 1 and %d", colour.MaxSteps)
	}
	return nil
}
