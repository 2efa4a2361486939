package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sheikhrachel/gol-fixpoint/model"
	"github.com/sheikhrachel/gol-fixpoint/utils"
)

func noEnv(string) string { return "" }

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"), noEnv, zerolog.Nop())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Renderer != utils.DefaultConfig().Renderer {
		t.Fatalf("renderer = %q", config.Renderer)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"random_density": 3}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadConfig(path, noEnv, zerolog.Nop()); err == nil {
		t.Fatal("invalid config accepted")
	}
}

func TestLoadSeedsDefaults(t *testing.T) {
	seeds, err := loadSeeds(utils.DefaultConfig())
	if err != nil {
		t.Fatalf("loadSeeds: %v", err)
	}
	var names []string
	for _, s := range seeds {
		names = append(names, s.name)
	}
	if got := strings.Join(names, ","); got != "pattern1,block,glider" {
		t.Fatalf("seeds = %s", got)
	}
}

func TestLoadSeedsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("11\n10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	config := utils.DefaultConfig()
	config.PatternFile = path
	seeds, err := loadSeeds(config)
	if err != nil {
		t.Fatalf("loadSeeds: %v", err)
	}
	if len(seeds) != 1 || seeds[0].grid.CountLivingCells() != 3 {
		t.Fatalf("unexpected seeds: %+v", seeds)
	}

	if err := os.WriteFile(path, []byte("11\n1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadSeeds(config); !errors.Is(err, model.ErrInvalidGrid) {
		t.Fatalf("ragged seed file err = %v, want ErrInvalidGrid", err)
	}
}

func TestLoadSeedsRandom(t *testing.T) {
	config := utils.DefaultConfig()
	config.Patterns = nil
	config.RandomWidth, config.RandomHeight = 6, 4
	seeds, err := loadSeeds(config)
	if err != nil {
		t.Fatalf("loadSeeds: %v", err)
	}
	if len(seeds) != 1 || seeds[0].grid.Height() != 4 || seeds[0].grid.Width() != 6 {
		t.Fatalf("unexpected seeds: %+v", seeds)
	}
}

func TestRunSeedPrintsEveryGeneration(t *testing.T) {
	g, err := model.LoadPattern("block")
	if err != nil {
		t.Fatalf("LoadPattern: %v", err)
	}
	var out bytes.Buffer
	res, err := runSeed(context.Background(), seed{name: "block", grid: g}, utils.DefaultConfig(),
		model.NewGridPool(), &out, zerolog.Nop())
	if err != nil {
		t.Fatalf("runSeed: %v", err)
	}
	if !res.Converged || res.Generation != 2 {
		t.Fatalf("result = %+v", res)
	}
	text := out.String()
	if !strings.HasPrefix(text, "Demonstrating block\nRunning Game of Life\n") {
		t.Fatalf("missing banner:\n%s", text)
	}
	notice := strings.Index(text, "Generation to generation no change, game ending\n")
	if notice < 0 || notice > strings.Index(text, "State at generation = 2") {
		t.Fatalf("fixed point notice missing or after the final generation:\n%s", text)
	}
	for _, header := range []string{"State at generation = 0", "State at generation = 1", "State at generation = 2"} {
		if !strings.Contains(text, header) {
			t.Fatalf("missing %q in:\n%s", header, text)
		}
	}
}

func TestLoadConfigAcceptsMixedCaseRenderer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"renderer": "Block"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	config, err := loadConfig(path, noEnv, zerolog.Nop())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if _, err := model.NewRenderer(config.Renderer, &bytes.Buffer{}); err != nil {
		t.Fatalf("NewRenderer(%q): %v", config.Renderer, err)
	}
}
