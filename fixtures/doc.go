// Package fixtures holds golden end-to-end scenarios exercising the
// full parse -> style -> layout pipeline. Scenarios live in golden.yaml,
// loaded with gopkg.in/yaml.v3.
package fixtures

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed golden.yaml
var goldenYAML []byte

// Viewport is a scenario's viewport dimensions in px.
type Viewport struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Expect holds the assertions a scenario's driver checks against the
// resulting layout box tree. RootKind and RootChildren are always
// asserted (an omitted root_children means zero children). The numeric
// fields are asserted only when non-zero; scenarios that don't need them
// leave them at their YAML-omitted zero value, which is why
// golden_test.go checks each field separately rather than comparing the
// whole Expect struct.
type Expect struct {
	RootKind        string  `yaml:"root_kind"`
	RootChildren    int     `yaml:"root_children"`
	RootWidth       float32 `yaml:"root_width"`
	RootMarginRight float32 `yaml:"root_margin_right"`
	RootHeight      float32 `yaml:"root_height"`
}

// Scenario is one named golden fixture.
type Scenario struct {
	Name     string   `yaml:"name"`
	HTML     string   `yaml:"html"`
	CSS      string   `yaml:"css"`
	Viewport Viewport `yaml:"viewport"`
	Expect   Expect   `yaml:"expect"`
}

type goldenFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load parses golden.yaml and returns its scenarios in file order.
func Load() ([]Scenario, error) {
	var doc goldenFile
	if err := yaml.Unmarshal(goldenYAML, &doc); err != nil {
		return nil, err
	}
	return doc.Scenarios, nil
}
