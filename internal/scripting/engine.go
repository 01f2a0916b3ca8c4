package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// defaultFoodScore is used when no script defines calc_food_score or the
// call fails.
const defaultFoodScore = 1

// Engine wraps a single gopher-lua VM holding the game's tunable formulas.
// Game loop goroutine only.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every .lua file under
// scriptsDir/core, then scriptsDir/score. Missing directories are skipped,
// so an empty scriptsDir yields an engine running on built-in defaults.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	for _, sub := range []string{"core", "score"} {
		if err := e.loadDir(filepath.Join(scriptsDir, sub)); err != nil {
			e.vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

// NewEngineFromSource builds an engine from inline Lua source.
func NewEngineFromSource(src string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoString(src); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load inline script: %w", err)
	}
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ScoreContext is what calc_food_score sees about the eat.
type ScoreContext struct {
	Length int    // segments before growth
	Score  int    // score before this food
	Steps  uint64 // movement ticks so far
}

// FoodScore calls calc_food_score(ctx) and returns the points for one
// food. Missing functions, errors and negative results fall back to 1.
func (e *Engine) FoodScore(ctx ScoreContext) int {
	fn := e.vm.GetGlobal("calc_food_score")
	if fn == lua.LNil {
		return defaultFoodScore
	}

	t := e.vm.NewTable()
	t.RawSetString("length", lua.LNumber(ctx.Length))
	t.RawSetString("score", lua.LNumber(ctx.Score))
	t.RawSetString("steps", lua.LNumber(ctx.Steps))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua calc_food_score error", zap.Error(err))
		return defaultFoodScore
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok || n < 0 {
		e.log.Error("lua calc_food_score returned invalid value", zap.String("value", result.String()))
		return defaultFoodScore
	}
	return int(n)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
