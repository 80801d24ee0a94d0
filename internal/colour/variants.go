package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Kind identifies a family of derived colour variants.
type Kind string

const (
	// KindTint blends toward white.
	KindTint Kind = "tint"
	// KindShade blends toward black.
	KindShade Kind = "shade"
	// KindTone blends toward neutral mid-grey.
	KindTone Kind = "tone"
)

// Kinds lists all variant kinds in their canonical generation order.
var Kinds = []Kind{KindTint, KindShade, KindTone}

// references holds the fixed blend targets for each kind in HCL.
var references = map[Kind]HCL{
	KindTint:  {H: 0, C: 0, L: 1},
	KindShade: {H: 0, C: 0, L: 0},
	KindTone:  {H: 0, C: 0, L: 0.5},
}

// MaxSteps is the upper bound on the number of variants per kind.
const MaxSteps = 100

// ParseKinds parses kind names into a set of Kinds in canonical order.
// Duplicates are collapsed; an empty or unknown name is an error.
func ParseKinds(names []string) ([]Kind, error) {
	requested := make(map[Kind]bool, len(names))
	for _, name := range names {
		switch kind := Kind(strings.ToLower(strings.TrimSpace(name))); kind {
		case KindTint, KindShade, KindTone:
			requested[kind] = true
		default:
			return nil, fmt.Errorf("unknown variant kind '%s' (supported: tint, shade, tone)", name)
		}
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("at least one variant kind is required")
	}

	kinds := make([]Kind, 0, len(requested))
	for _, kind := range Kinds {
		if requested[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// RawColour is a named colour value as supplied by the user, not yet
// validated against any notation.
type RawColour struct {
	Name  string
	Value string
}

// BaseColour is a named colour that has been converted into HCL.
type BaseColour struct {
	Name   string
	Raw    string
	Colour HCL
}

// BatchFailure records a single base colour that failed to parse.
type BatchFailure struct {
	Name string
	Err  error
}

// BatchError rejects an entire set of base colours because at least one
// value was unparseable. No palette is generated for any of them.
type BatchError struct {
	Failures []BatchFailure
}

func (e *BatchError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = fmt.Sprintf("%s (%v)", f.Name, f.Err)
	}
	return fmt.Sprintf("invalid base colours: %s", strings.Join(names, "; "))
}

// ParseAll converts every raw colour into HCL, preserving input order.
// A single unparseable value rejects the whole batch with a *BatchError
// before any generation begins.
func ParseAll(raw []RawColour) ([]BaseColour, error) {
	bases := make([]BaseColour, 0, len(raw))
	var batchErr BatchError

	for _, rc := range raw {
		hcl, err := ParseHCL(rc.Value)
		if err != nil {
			batchErr.Failures = append(batchErr.Failures, BatchFailure{Name: rc.Name, Err: err})
			continue
		}
		bases = append(bases, BaseColour{Name: rc.Name, Raw: rc.Value, Colour: hcl})
	}

	if len(batchErr.Failures) > 0 {
		return nil, &batchErr
	}
	return bases, nil
}

// SizeForSteps derives the mix step size from a requested variant count.
func SizeForSteps(steps int) float64 {
	return 1.0 / float64(steps+1)
}

// StepsForSize derives the variant count implied by a mix step size.
func StepsForSize(size float64) int {
	return int(math.Floor(1.0 / size))
}

// ValidateParams checks the generation parameters before any work is
// done. Out-of-range values are rejected, never clamped.
func ValidateParams(steps int, stepSize float64) error {
	if steps < 1 || steps > MaxSteps {
		return fmt.Errorf("step count must be between 1 and %d, got %d", MaxSteps, steps)
	}
	if stepSize <= 0 || stepSize >= 1 {
		return fmt.Errorf("step size must be within (0, 1) exclusive, got %g", stepSize)
	}
	// The smallest acceptable size is the one a maximum step count
	// derives; anything finer implies more than MaxSteps variants.
	// Compared against the derived size rather than via StepsForSize so
	// the count-derived boundary size 1/(MaxSteps+1) is itself valid.
	if stepSize < SizeForSteps(MaxSteps) {
		return fmt.Errorf("step size %g implies %d variants, exceeding the limit of %d", stepSize, StepsForSize(stepSize), MaxSteps)
	}
	return nil
}

// Options configures variant generation for one base colour.
type Options struct {
	Kinds    []Kind
	Steps    int
	StepSize float64
	Mode     Mode
}

// Variant is a single derived colour: a generated name paired with its
// formatted value in the requested output notation.
type Variant struct {
	Name  string
	Value string
}

// Entry holds the generated variants for one base colour. A kind that
// produced no usable variants is None so serialisers can omit it.
type Entry struct {
	Name   string
	Hue    string
	Tints  mo.Option[[]Variant]
	Shades mo.Option[[]Variant]
	Tones  mo.Option[[]Variant]
}

// ForKind returns the variant sequence for the given kind.
func (e Entry) ForKind(kind Kind) mo.Option[[]Variant] {
	switch kind {
	case KindTint:
		return e.Tints
	case KindShade:
		return e.Shades
	case KindTone:
		return e.Tones
	}
	return mo.None[[]Variant]()
}

// Generate derives the requested variants for one base colour. It
// assumes Options has already passed ValidateParams; generation itself
// never fails, degenerate candidates are simply dropped.
func Generate(base BaseColour, opts Options) Entry {
	// The base hue may be empty if formatting degenerates; serialisers
	// omit it in that case.
	hue, _ := Format(base.Colour, opts.Mode)

	// Candidates equal to a raw reference colour or the base hue are
	// never emitted.
	reserved := make(map[string]struct{}, len(references)+1)
	for _, ref := range references {
		if s, ok := Format(ref, opts.Mode); ok {
			reserved[s] = struct{}{}
		}
	}
	if hue != "" {
		reserved[hue] = struct{}{}
	}

	collected := make(map[Kind][]Variant, len(opts.Kinds))
	for i := 1; i <= opts.Steps; i++ {
		f := roundFraction(opts.StepSize * float64(i))
		if f >= 1 {
			// Fully past the reference colour. Remaining indices are
			// evaluated anyway since the bound is cheap and kinds stay
			// independent of each other.
			continue
		}
		for _, kind := range opts.Kinds {
			value, ok := Format(base.Colour.Blend(references[kind], f), opts.Mode)
			if !ok {
				continue
			}
			if isDuplicate(value, reserved, collected[KindShade]) {
				continue
			}
			name := fmt.Sprintf("%s-%s-%s", base.Name, kind, formatPercent(f))
			collected[kind] = append(collected[kind], Variant{Name: name, Value: value})
		}
	}

	return Entry{
		Name:   base.Name,
		Hue:    hue,
		Tints:  optional(collected[KindTint]),
		Shades: optional(collected[KindShade]),
		Tones:  optional(collected[KindTone]),
	}
}

// isDuplicate reports whether a candidate value collides with a
// reserved colour or a variant already accepted into the shade
// sequence. Only shades take part in the cross-kind check: shades are
// the usual source of near-black collisions, and tint/tone collisions
// are allowed to pass through.
func isDuplicate(value string, reserved map[string]struct{}, shades []Variant) bool {
	if _, ok := reserved[value]; ok {
		return true
	}
	for _, v := range shades {
		if v.Value == value {
			return true
		}
	}
	return false
}

// roundFraction rounds a mix fraction to two decimal places. Rounding
// happens before the >= 1 cutoff and before naming, so the acceptance
// boundary always matches the displayed percentage.
func roundFraction(f float64) float64 {
	return math.Round(f*100) / 100
}

// formatPercent renders a mix fraction as a percentage with trailing
// zeros trimmed, e.g. 0.25 -> "25".
func formatPercent(f float64) string {
	return strconv.FormatFloat(math.Round(f*10000)/100, 'f', -1, 64)
}

// optional wraps a variant sequence, mapping empty to None.
func optional(variants []Variant) mo.Option[[]Variant] {
	if len(variants) == 0 {
		return mo.None[[]Variant]()
	}
	return mo.Some(variants)
}
