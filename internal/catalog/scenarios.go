package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

// Scenario names a preset bundle of options (§4.H, SC option).
type Scenario struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Options string `yaml:"options"` // comma-separated option string, same grammar as NEWGAMEWITHOPTIONS
}

var Scenarios []Scenario
var scenariosByKey map[string]Scenario

func init() {
	if err := yaml.Unmarshal(scenariosYAML, &Scenarios); err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded scenarios.yaml: %v", err))
	}
	scenariosByKey = make(map[string]Scenario, len(Scenarios))
	for _, s := range Scenarios {
		scenariosByKey[s.Key] = s
	}
}

func LookupScenario(key string) (Scenario, bool) {
	s, ok := scenariosByKey[key]
	return s, ok
}

// RegisterScenario lets an embedder add a scenario at runtime (§6's
// programmatic entry point `RegisterScenario`), e.g. from a plugin.
func RegisterScenario(s Scenario) {
	Scenarios = append(Scenarios, s)
	scenariosByKey[s.Key] = s
}
