package game

import "strconv"

// ResolveOptions converts the parsed KEY=VALUE option string (see
// catalog.ParseOptionString) into the typed Options the game engine
// enforces. Unknown keys are ignored; malformed values leave the
// DefaultOptions value in place rather than failing the whole game
// creation.
func ResolveOptions(values map[string]string) Options {
	o := DefaultOptions()
	if v, ok := values["PL"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			o.MaxPlayers = n
		}
	}
	o.Use6Player = boolOpt(values, "PLB")
	o.SpecialBuildOnly5or6 = boolOpt(values, "PLP")
	o.SeaBoard = boolOpt(values, "SBL")
	o.RobberCantReturnDesert = boolOpt(values, "RD")
	if v, ok := values["N7"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			o.NoSevensFirstRounds = n
		}
	}
	o.NoSevensUntilCity = boolOpt(values, "N7C")
	if v, ok := values["BC"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			o.BreakClumps = n
		}
	}
	o.NoTrading = boolOpt(values, "NT")
	if v, ok := values["VP"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			o.VictoryPoints = n
		}
	}
	o.ScenarioKey = values["SC"]
	o.FogHexes = boolOpt(values, "_SC_FOG")
	o.ClothTradeVillages = boolOpt(values, "_SC_CLVI")
	o.PirateIslandsFortresses = boolOpt(values, "_SC_PIRI")
	o.FullyObservable = boolOpt(values, "_PLAY_FO")
	o.VPFullyObservable = boolOpt(values, "_PLAY_VPO")
	if o.MaxPlayers > 4 {
		o.Use6Player = true
	}
	return o
}

func boolOpt(values map[string]string, key string) bool {
	v, ok := values[key]
	if !ok {
		return false
	}
	return v == "true" || v == "1" || v == "t"
}
