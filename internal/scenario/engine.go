// Package scenario wraps a gopher-lua VM exposing the handful of rule
// hooks that vary by scenario (_SC_PIRI's fleet patrol, _SC_WOND's
// per-stage wonder costs) using an embed-scripts-then-call-global
// bridge; it is the server's only Lua integration, scoped to scenario
// data tables rather than full combat formulas.
package scenario

import (
	"embed"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

//go:embed scripts/*.lua
var scriptFS embed.FS

// Engine is single-goroutine: callers run it under the owning game's
// lock, same as every other scenario rule.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

func NewEngine(log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	e := &Engine{vm: vm, log: log}

	entries, err := scriptFS.ReadDir("scripts")
	if err != nil {
		vm.Close()
		return nil, fmt.Errorf("read embedded scripts: %w", err)
	}
	for _, entry := range entries {
		data, err := scriptFS.ReadFile("scripts/" + entry.Name())
		if err != nil {
			vm.Close()
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if err := vm.DoString(string(data)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		e.log.Debug("loaded scenario script", zap.String("file", entry.Name()))
	}
	return e, nil
}

func (e *Engine) Close() { e.vm.Close() }

// PirateRoute calls Lua pirate_route(hexes), reordering a ring of water
// hex IDs into the fleet's patrol loop.
func (e *Engine) PirateRoute(hexes []int) []int {
	fn := e.vm.GetGlobal("pirate_route")
	if fn == lua.LNil {
		return hexes
	}
	t := e.vm.NewTable()
	for i, h := range hexes {
		t.RawSetInt(i+1, lua.LNumber(h))
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, t); err != nil {
		e.log.Error("lua pirate_route error", zap.Error(err))
		return hexes
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	rt, ok := result.(*lua.LTable)
	if !ok {
		return hexes
	}
	var out []int
	rt.ForEach(func(_, v lua.LValue) {
		out = append(out, int(lua.LVAsNumber(v)))
	})
	return out
}

// PirateAdvanceSteps calls Lua pirate_advance_steps(diceTotal).
func (e *Engine) PirateAdvanceSteps(diceTotal int) int {
	fn := e.vm.GetGlobal("pirate_advance_steps")
	if fn == lua.LNil {
		return 1
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(diceTotal)); err != nil {
		e.log.Error("lua pirate_advance_steps error", zap.Error(err))
		return 1
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return int(lua.LVAsNumber(result))
}

// WonderStageCost holds one stage's resource cost for the _SC_WOND
// scenario, resolved via Lua wonder_stage_cost(wonder, stage).
type WonderStageCost struct {
	Clay, Ore, Sheep, Wheat, Wood int
	RequiredPlayers               int
	Defined                       bool
}

func (e *Engine) WonderStageCost(wonder, stage int) WonderStageCost {
	fn := e.vm.GetGlobal("wonder_stage_cost")
	if fn == lua.LNil {
		return WonderStageCost{}
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(wonder), lua.LNumber(stage)); err != nil {
		e.log.Error("lua wonder_stage_cost error", zap.Error(err))
		return WonderStageCost{}
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	if result == lua.LNil {
		return WonderStageCost{}
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		return WonderStageCost{}
	}
	return WonderStageCost{
		Clay:            lInt(rt, "clay"),
		Ore:             lInt(rt, "ore"),
		Sheep:           lInt(rt, "sheep"),
		Wheat:           lInt(rt, "wheat"),
		Wood:            lInt(rt, "wood"),
		RequiredPlayers: lInt(rt, "required_players"),
		Defined:         true,
	}
}

func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}
