package colour

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func mustBase(t *testing.T, name, value string) BaseColour {
	t.Helper()
	hcl, err := ParseHCL(value)
	if err != nil {
		t.Fatalf("ParseHCL(%q) error = %v", value, err)
	}
	return BaseColour{Name: name, Raw: value, Colour: hcl}
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Kind
		wantErr bool
	}{
		{name: "all", input: []string{"tint", "shade", "tone"}, want: []Kind{KindTint, KindShade, KindTone}},
		{name: "canonical order restored", input: []string{"tone", "tint"}, want: []Kind{KindTint, KindTone}},
		{name: "duplicates collapsed", input: []string{"shade", "shade"}, want: []Kind{KindShade}},
		{name: "case insensitive", input: []string{"TINT"}, want: []Kind{KindTint}},
		{name: "unknown", input: []string{"hue"}, wantErr: true},
		{name: "empty", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKinds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKinds(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKinds(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name     string
		steps    int
		stepSize float64
		wantErr  bool
	}{
		{name: "typical", steps: 3, stepSize: 0.25},
		{name: "minimum steps", steps: 1, stepSize: 0.5},
		{name: "maximum steps with derived size", steps: 100, stepSize: SizeForSteps(100)},
		{name: "size just finer than the derived minimum", steps: 100, stepSize: 0.009, wantErr: true},
		{name: "zero steps", steps: 0, stepSize: 0.25, wantErr: true},
		{name: "too many steps", steps: 101, stepSize: 0.25, wantErr: true},
		{name: "zero step size", steps: 3, stepSize: 0, wantErr: true},
		{name: "step size of one", steps: 3, stepSize: 1, wantErr: true},
		{name: "negative step size", steps: 3, stepSize: -0.1, wantErr: true},
		{name: "step size implying too many variants", steps: 3, stepSize: 0.005, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParams(tt.steps, tt.stepSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateParams(%d, %g) error = %v, wantErr %v", tt.steps, tt.stepSize, err, tt.wantErr)
			}
		})
	}
}

func TestStepConversions(t *testing.T) {
	if got := SizeForSteps(3); got != 0.25 {
		t.Errorf("SizeForSteps(3) = %g, want 0.25", got)
	}
	if got := StepsForSize(0.25); got != 4 {
		t.Errorf("StepsForSize(0.25) = %d, want 4", got)
	}
	if got := StepsForSize(0.005); got != 200 {
		t.Errorf("StepsForSize(0.005) = %d, want 200", got)
	}
}

// The mix fraction at the last step index must stay below 1 for every
// valid step count when the size is derived from the count.
func TestLastFractionBelowOne(t *testing.T) {
	for steps := 1; steps <= MaxSteps; steps++ {
		size := SizeForSteps(steps)
		f := roundFraction(size * float64(steps))
		if f >= 1 {
			t.Errorf("steps=%d: fraction at last index = %g, want < 1", steps, f)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{fraction: 0.25, want: "25"},
		{fraction: 0.5, want: "50"},
		{fraction: 0.75, want: "75"},
		{fraction: 0.13, want: "13"},
		{fraction: 0.99, want: "99"},
		{fraction: 0.01, want: "1"},
	}

	for _, tt := range tests {
		if got := formatPercent(tt.fraction); got != tt.want {
			t.Errorf("formatPercent(%g) = %s, want %s", tt.fraction, got, tt.want)
		}
	}
}

func TestParseAllPreservesOrder(t *testing.T) {
	raw := []RawColour{
		{Name: "red", Value: "#ff0000"},
		{Name: "sky", Value: "rgb(0, 128, 255)"},
		{Name: "mint", Value: "hsl(150, 100%, 50%)"},
	}

	bases, err := ParseAll(raw)
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(bases) != 3 {
		t.Fatalf("ParseAll() returned %d colours, want 3", len(bases))
	}
	for i, rc := range raw {
		if bases[i].Name != rc.Name {
			t.Errorf("bases[%d].Name = %s, want %s", i, bases[i].Name, rc.Name)
		}
	}
}

func TestParseAllRejectsWholeBatch(t *testing.T) {
	raw := []RawColour{
		{Name: "red", Value: "#ff0000"},
		{Name: "broken", Value: "not-a-colour"},
		{Name: "blue", Value: "#0000ff"},
	}

	bases, err := ParseAll(raw)
	if err == nil {
		t.Fatal("ParseAll() expected error, got none")
	}
	if bases != nil {
		t.Errorf("ParseAll() returned %d colours on failure, want none", len(bases))
	}

	var batchErr *BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("ParseAll() error type = %T, want *BatchError", err)
	}
	if len(batchErr.Failures) != 1 {
		t.Fatalf("BatchError has %d failures, want 1", len(batchErr.Failures))
	}
	if batchErr.Failures[0].Name != "broken" {
		t.Errorf("failure name = %s, want broken", batchErr.Failures[0].Name)
	}
}

func TestGenerateRedEndToEnd(t *testing.T) {
	base := mustBase(t, "red", "#ff0000")
	entry := Generate(base, Options{
		Kinds:    []Kind{KindTint, KindShade, KindTone},
		Steps:    3,
		StepSize: SizeForSteps(3),
		Mode:     ModeHex,
	})

	if entry.Hue != "#ff0000" {
		t.Errorf("Hue = %s, want #ff0000", entry.Hue)
	}

	wantNames := map[Kind][]string{
		KindTint:  {"red-tint-25", "red-tint-50", "red-tint-75"},
		KindShade: {"red-shade-25", "red-shade-50", "red-shade-75"},
		KindTone:  {"red-tone-25", "red-tone-50", "red-tone-75"},
	}

	for kind, names := range wantNames {
		variants, ok := entry.ForKind(kind).Get()
		if !ok {
			t.Fatalf("kind %s produced no variants", kind)
		}
		if len(variants) != len(names) {
			t.Fatalf("kind %s produced %d variants, want %d", kind, len(variants), len(names))
		}
		for i, v := range variants {
			if v.Name != names[i] {
				t.Errorf("kind %s variant %d name = %s, want %s", kind, i, v.Name, names[i])
			}
			if v.Value == "" {
				t.Errorf("kind %s variant %s has empty value", kind, v.Name)
			}
			if v.Value == entry.Hue {
				t.Errorf("kind %s variant %s equals the base hue", kind, v.Name)
			}
			if _, err := ParseHCL(v.Value); err != nil {
				t.Errorf("kind %s variant %s value %q does not parse back: %v", kind, v.Name, v.Value, err)
			}
		}
	}
}

func TestGenerateSkipsFractionsAtOrAboveOne(t *testing.T) {
	base := mustBase(t, "red", "#ff0000")
	entry := Generate(base, Options{
		Kinds:    []Kind{KindTint, KindShade, KindTone},
		Steps:    3,
		StepSize: 0.5,
		Mode:     ModeHex,
	})

	// Fractions are 0.5, 1.0 and 1.5; only the first yields candidates.
	for _, kind := range Kinds {
		variants, ok := entry.ForKind(kind).Get()
		if !ok {
			t.Fatalf("kind %s produced no variants", kind)
		}
		if len(variants) != 1 {
			t.Errorf("kind %s produced %d variants, want 1", kind, len(variants))
		}
		wantName := "red-" + string(kind) + "-50"
		if variants[0].Name != wantName {
			t.Errorf("kind %s variant name = %s, want %s", kind, variants[0].Name, wantName)
		}
	}
}

func TestGenerateOmitsUnrequestedKinds(t *testing.T) {
	base := mustBase(t, "red", "#ff0000")
	entry := Generate(base, Options{
		Kinds:    []Kind{KindTint},
		Steps:    3,
		StepSize: SizeForSteps(3),
		Mode:     ModeHex,
	})

	if entry.Tints.IsAbsent() {
		t.Error("tints absent, want present")
	}
	if entry.Shades.IsPresent() {
		t.Error("shades present, want absent")
	}
	if entry.Tones.IsPresent() {
		t.Error("tones present, want absent")
	}
}

func TestGenerateIdempotent(t *testing.T) {
	base := mustBase(t, "teal", "#008080")
	opts := Options{
		Kinds:    []Kind{KindTint, KindShade, KindTone},
		Steps:    10,
		StepSize: SizeForSteps(10),
		Mode:     ModeRGB,
	}

	first := Generate(base, opts)
	second := Generate(base, opts)
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate() is not deterministic for identical inputs")
	}
}

func TestGenerateDegenerateBase(t *testing.T) {
	base := BaseColour{Name: "void", Raw: "", Colour: HCL{H: math.NaN(), C: 0, L: 0.5}}
	entry := Generate(base, Options{
		Kinds:    []Kind{KindTint, KindShade, KindTone},
		Steps:    3,
		StepSize: SizeForSteps(3),
		Mode:     ModeHex,
	})

	if entry.Hue != "" {
		t.Errorf("Hue = %q, want empty for degenerate base", entry.Hue)
	}
	for _, kind := range Kinds {
		if entry.ForKind(kind).IsPresent() {
			t.Errorf("kind %s present for degenerate base, want absent", kind)
		}
	}
}

// The cross-kind collision check is deliberately narrow: only values
// already accepted as shades suppress a candidate. A candidate equal to
// an accepted tint or tone passes through.
func TestIsDuplicateOnlyConsultsShades(t *testing.T) {
	reserved := map[string]struct{}{
		"#ffffff": {}, // white reference
		"#000000": {}, // black reference
		"#777777": {}, // grey reference
		"#ff0000": {}, // base hue
	}
	shades := []Variant{{Name: "red-shade-25", Value: "#b80000"}}

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "matches accepted shade", value: "#b80000", want: true},
		{name: "matches white reference", value: "#ffffff", want: true},
		{name: "matches base hue", value: "#ff0000", want: true},
		{name: "matches an accepted tint value", value: "#ff8080", want: false},
		{name: "fresh value", value: "#123456", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicate(tt.value, reserved, shades); got != tt.want {
				t.Errorf("isDuplicate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGenerateGreyBaseKeepsKindsIndependent(t *testing.T) {
	base := mustBase(t, "ash", "#808080")
	entry := Generate(base, Options{
		Kinds:    []Kind{KindTint, KindShade, KindTone},
		Steps:    3,
		StepSize: SizeForSteps(3),
		Mode:     ModeHex,
	})

	// An achromatic base pushes every kind through the grey axis; tints
	// and tones must still be collected independently of each other.
	if entry.Tints.IsAbsent() {
		t.Error("tints absent for grey base")
	}
	if entry.Shades.IsAbsent() {
		t.Error("shades absent for grey base")
	}
	tones, ok := entry.Tones.Get()
	if !ok {
		t.Fatal("tones absent for grey base")
	}
	shades, _ := entry.Shades.Get()
	for _, tone := range tones {
		for _, shade := range shades {
			if tone.Value == shade.Value {
				t.Errorf("tone %s duplicates accepted shade value %s", tone.Name, shade.Value)
			}
		}
	}
}
