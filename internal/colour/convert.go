// Package colour implements the tonemill core: conversion of textual
// colours into the HCL perceptually uniform space and derivation of
// tint, shade and tone variants from them.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects the textual notation used when rendering colours.
type Mode string

const (
	ModeHex Mode = "hex"
	ModeRGB Mode = "rgb"
	ModeHSL Mode = "hsl"
)

// Modes lists all supported output notations.
var Modes = []Mode{ModeHex, ModeRGB, ModeHSL}

// ParseMode parses a notation name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case ModeHex:
		return ModeHex, nil
	case ModeRGB:
		return ModeRGB, nil
	case ModeHSL:
		return ModeHSL, nil
	}
	return "", fmt.Errorf("unknown output mode '%s' (supported: hex, rgb, hsl)", name)
}

// HCL is a colour in the CIE L*C*h° space: hue in degrees, chroma >= 0
// and lightness in [0, 1]. Linear interpolation between two HCL colours
// approximates a visually uniform blend.
type HCL struct {
	H float64
	C float64
	L float64
}

// ParseError reports a colour value that could not be parsed in any
// supported notation.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognised colour '%s': %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseHCL parses a textual colour into the HCL space.
// Supported notations: hex (#rgb, #rrggbb, with or without the hash),
// rgb(r, g, b) and hsl(h, s%, l%).
func ParseHCL(input string) (HCL, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	var (
		col colorful.Color
		err error
	)
	switch {
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		col, err = parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		col, err = parseHSLFunc(s)
	default:
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		col, err = colorful.Hex(s)
	}
	if err != nil {
		return HCL{}, &ParseError{Input: input, Err: err}
	}

	h, c, l := col.Hcl()
	return HCL{H: h, C: c, L: l}, nil
}

// Format renders an HCL colour in the requested notation. The second
// return value is false when the colour has degenerated to something
// unrenderable (NaN channel after heavy extrapolation); callers should
// skip such values rather than treat them as errors.
func Format(c HCL, mode Mode) (string, bool) {
	if math.IsNaN(c.H) || math.IsNaN(c.C) || math.IsNaN(c.L) {
		return "", false
	}

	col := colorful.Hcl(c.H, c.C, c.L).Clamped()
	switch mode {
	case ModeHex:
		return col.Hex(), true
	case ModeRGB:
		r, g, b := col.RGB255()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), true
	case ModeHSL:
		h, s, l := col.Hsl()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
			int(math.Round(h))%360, int(math.Round(s*100)), int(math.Round(l*100))), true
	}
	return "", false
}

// RGB255 returns the clamped 8-bit RGB channels of the colour. ok is
// false for degenerate colours, mirroring Format.
func (c HCL) RGB255() (r, g, b uint8, ok bool) {
	if math.IsNaN(c.H) || math.IsNaN(c.C) || math.IsNaN(c.L) {
		return 0, 0, 0, false
	}
	r, g, b = colorful.Hcl(c.H, c.C, c.L).Clamped().RGB255()
	return r, g, b, true
}

// Blend interpolates from c toward ref by fraction t in the HCL space.
// t = 0 yields c, t = 1 yields ref.
func (c HCL) Blend(ref HCL, t float64) HCL {
	blended := colorful.Hcl(c.H, c.C, c.L).BlendHcl(colorful.Hcl(ref.H, ref.C, ref.L), t)
	h, ch, l := blended.Hcl()
	return HCL{H: h, C: ch, L: l}
}

// parseRGBFunc parses an "rgb(r, g, b)" functional notation string.
func parseRGBFunc(s string) (colorful.Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}

	var channels [3]float64
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid component '%s': %w", strings.TrimSpace(part), err)
		}
		if v < 0 || v > 255 {
			return colorful.Color{}, fmt.Errorf("component %d out of range [0, 255]", v)
		}
		channels[i] = float64(v) / 255.0
	}

	return colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// parseHSLFunc parses an "hsl(h, s%, l%)" functional notation string.
func parseHSLFunc(s string) (colorful.Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "hsl("), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hue '%s': %w", strings.TrimSpace(parts[0]), err)
	}

	var pct [2]float64
	for i, part := range parts[1:] {
		trimmed := strings.TrimSpace(part)
		if !strings.HasSuffix(trimmed, "%") {
			return colorful.Color{}, fmt.Errorf("component '%s' must be a percentage", trimmed)
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "%"), 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid component '%s': %w", trimmed, err)
		}
		if v < 0 || v > 100 {
			return colorful.Color{}, fmt.Errorf("component %g%% out of range [0%%, 100%%]", v)
		}
		pct[i] = v / 100.0
	}

	return colorful.Hsl(math.Mod(math.Mod(h, 360)+360, 360), pct[0], pct[1]), nil
}
