// Tonemill - a perceptual tint, shade and tone generator
//
// Tonemill derives perceptually uniform colour variants from a set of
// named base colours and renders them as JSON, CSS custom properties
// or SCSS variables.
package main

import (
	"os"

	"github.com/tonemill/tonemill/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
