package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestFoodScoreFromScript(t *testing.T) {
	e, err := NewEngineFromSource(`
function calc_food_score(ctx)
  return ctx.length * 2 + ctx.score
end`, zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngineFromSource: %v", err)
	}
	defer e.Close()

	if got := e.FoodScore(ScoreContext{Length: 3, Score: 4}); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}

func TestFoodScoreDefaults(t *testing.T) {
	cases := map[string]string{
		"missing":  `x = 1`,
		"error":    `function calc_food_score(ctx) error("boom") end`,
		"negative": `function calc_food_score(ctx) return -5 end`,
		"string":   `function calc_food_score(ctx) return "lots" end`,
	}
	for name, src := range cases {
		e, err := NewEngineFromSource(src, zap.NewNop())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := e.FoodScore(ScoreContext{Length: 2}); got != defaultFoodScore {
			t.Errorf("%s: expected default %d, got %d", name, defaultFoodScore, got)
		}
		e.Close()
	}
}

func TestNewEngineLoadsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "score"), 0755); err != nil {
		t.Fatal(err)
	}
	script := "function calc_food_score(ctx) return 7 end\n"
	if err := os.WriteFile(filepath.Join(dir, "score", "food.lua"), []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	if got := e.FoodScore(ScoreContext{Length: 2}); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestNewEngineMissingDirUsesDefaults(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	if got := e.FoodScore(ScoreContext{}); got != defaultFoodScore {
		t.Errorf("expected default, got %d", got)
	}
}

func TestNewEngineBadScript(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "core"), 0755)
	os.WriteFile(filepath.Join(dir, "core", "bad.lua"), []byte("function ("), 0644)
	if _, err := NewEngine(dir, zap.NewNop()); err == nil {
		t.Error("expected syntax error")
	}
}
