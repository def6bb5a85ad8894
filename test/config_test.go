package test

import (
	"testing"

	"github.com/hexgov/crossveto/gov"
	"github.com/hexgov/crossveto/integration"
)

// These tests guard the run presets: operators rely on a preset name
// meaning the same thing across releases.

func TestDefaultPreset_hasReasonableDefaults(t *testing.T) {
	cfg := integration.DefaultPreset()

	if cfg.Name != "default" {
		t.Fatalf("Name = %q, want 'default'", cfg.Name)
	}
	if cfg.CacheMB <= 0 || cfg.CacheMB > 10000 {
		t.Fatalf("CacheMB = %d, want value between 1 and 10000", cfg.CacheMB)
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		t.Fatalf("Verbosity = %d, want 0..5", cfg.Verbosity)
	}
	if _, err := gov.RulesByName(cfg.RulesName); err != nil {
		t.Fatalf("RulesName %q does not resolve: %v", cfg.RulesName, err)
	}
}

func TestLitePreset_overridesDefaults(t *testing.T) {
	defaultCfg := integration.DefaultPreset()
	liteCfg := integration.LitePreset()

	if liteCfg.Name != "lite" {
		t.Fatalf("Name = %q, want 'lite'", liteCfg.Name)
	}
	if liteCfg.CacheMB >= defaultCfg.CacheMB {
		t.Fatalf("Lite CacheMB (%d) should be smaller than default (%d)", liteCfg.CacheMB, defaultCfg.CacheMB)
	}
	if liteCfg.Verbosity > defaultCfg.Verbosity {
		t.Fatalf("Lite Verbosity (%d) should not exceed default (%d)", liteCfg.Verbosity, defaultCfg.Verbosity)
	}
	if liteCfg.RulesName == defaultCfg.RulesName {
		t.Fatal("lite preset should not run under the default network rules")
	}
}

func TestFakePreset_matchesFakenetRules(t *testing.T) {
	cfg := integration.FakePreset()

	if cfg.Name != "fake" {
		t.Fatalf("Name = %q, want 'fake'", cfg.Name)
	}
	rules, err := gov.RulesByName(cfg.RulesName)
	if err != nil {
		t.Fatalf("RulesName %q does not resolve: %v", cfg.RulesName, err)
	}
	if !rules.RequireEndedResults {
		t.Fatal("fake preset must run under the strict results policy")
	}
	if cfg.Verbosity != 5 {
		t.Fatalf("Verbosity = %d, want 5 (debug) for the fake preset", cfg.Verbosity)
	}
}

func TestGetPresetByName(t *testing.T) {
	for _, name := range []string{"default", "lite", "fake"} {
		cfg, err := integration.GetPresetByName(name)
		if err != nil {
			t.Fatalf("GetPresetByName(%q): %v", name, err)
		}
		if cfg.Name != name {
			t.Fatalf("GetPresetByName(%q).Name = %q", name, cfg.Name)
		}
	}
	if _, err := integration.GetPresetByName("archive"); err == nil {
		t.Fatal("expected error for unknown preset name")
	}
}
