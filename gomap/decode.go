// Package gomap converts between Go values and ir nodes.
package gomap

import (
	"fmt"

	"github.com/fixcik/yexp/encode"
	"github.com/fixcik/yexp/ir"
)

// Decode stores node in the value pointed to by p, following the rules and
// `yaml` struct tags of gopkg.in/yaml.v3.
func Decode(node *ir.Node, p any) error {
	if err := encode.ToYAML(node).Decode(p); err != nil {
		return fmt.Errorf("could not decode into %T: %w", p, err)
	}
	return nil
}
