// Package catalog holds the read-only, version-gated option and
// scenario tables (§4.H). Both tables are embedded YAML, loaded once at
// package init; the option table is never mutated afterward, while
// RegisterScenario can append to the scenario table at run time.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed options.yaml
var optionsYAML []byte

// OptionType is the closed set of value shapes an option can take.
type OptionType string

const (
	TypeBool   OptionType = "BOOL"
	TypeInt    OptionType = "INT"
	TypeString OptionType = "STRING"
	TypeEnum   OptionType = "ENUM"
)

// Option is one row of the option catalog.
type Option struct {
	Key                 string     `yaml:"key"`
	Name                string     `yaml:"name"`
	Type                OptionType `yaml:"type"`
	Min                 int        `yaml:"min"`
	Max                 int        `yaml:"max"`
	Default             any        `yaml:"default"`
	MinVersion          int        `yaml:"minVersion"`
	LastModifiedVersion int        `yaml:"lastModifiedVersion"`
	Flags               []string   `yaml:"flags"`
}

func (o Option) HasFlag(flag string) bool {
	for _, f := range o.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

var Options []Option
var optionsByKey map[string]Option

func init() {
	if err := yaml.Unmarshal(optionsYAML, &Options); err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded options.yaml: %v", err))
	}
	optionsByKey = make(map[string]Option, len(Options))
	for _, o := range Options {
		optionsByKey[o.Key] = o
	}
}

func Lookup(key string) (Option, bool) {
	o, ok := optionsByKey[key]
	return o, ok
}

// EffectiveMinVersion computes the minimum client protocol version that
// can join a game with the given resolved option values (key -> value),
// per §4.H's compatibility rule: an option whose legal range widened in
// a later version contributes that later version only when the chosen
// value falls in the widened part of the range.
func EffectiveMinVersion(values map[string]int) int {
	min := 1000
	for key, val := range values {
		opt, ok := optionsByKey[key]
		if !ok {
			continue
		}
		v := opt.MinVersion
		if key == "PL" && val > 4 {
			v = 1108 // 5-6 player support
		}
		if v > min {
			min = v
		}
	}
	return min
}

// ParseOptionString parses the wire grammar used by NEWGAMEWITHOPTIONS
// and JOINGAME's option string: comma-separated KEY=VALUE pairs, where
// a BOOL value is "t"/"f" and an INT value is optionally prefixed with
// "t" (true/enabled) before the digits, e.g. "PL=4,VP=t10,BC=t3".
func ParseOptionString(s string) map[string]string {
	out := map[string]string{}
	if s == "" {
		return out
	}
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := kv[0], kv[1]
		if len(val) > 0 && (val[0] == 't' || val[0] == 'f') {
			if _, err := strconv.Atoi(val[1:]); err == nil {
				val = val[1:]
			} else if val == "t" {
				val = "true"
			} else if val == "f" {
				val = "false"
			}
		}
		out[key] = val
	}
	return out
}
