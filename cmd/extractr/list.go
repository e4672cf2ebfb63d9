package main

import (
	"fmt"

	"github.com/Tylerbryy/extractr/yaml"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names := yaml.BuiltinNames()
	descs := yaml.BuiltinDescriptions()

	for _, name := range names {
		fmt.Fprintf(deps.Stdout, "%-12s %s\n", name, descs[name])
	}

	return nil
}
