// Package integration provides run presets and assembly helpers for the
// veto daemon. Presets bundle resource and logging settings into named
// profiles so operators pick one profile instead of tweaking flags; the
// Loopback helper assembles a complete two-domain governance pair inside
// one process for fakenet runs and end-to-end tests.
package integration

import "fmt"

// PresetConfig captures the tunables that vary across run profiles. Fields
// that are fixed per network (domain ids, trust binding) live in gov.Rules
// instead.
type PresetConfig struct {
	Name      string // profile identifier surfaced in logs and config dumps
	CacheMB   int    // memory allocated to database caching
	Verbosity int    // logrus level (0=panic .. 5=debug)
	RulesName string // gov rules preset this profile runs under
}

// DefaultPreset returns the balanced baseline profile.
func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:      "default",
		CacheMB:   256,
		Verbosity: 4,
		RulesName: "main",
	}
}

// LitePreset returns a profile for low-resource environments: smaller
// cache, quieter logs, testnet rules.
func LitePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "lite"
	cfg.CacheMB = 64
	cfg.Verbosity = 3
	cfg.RulesName = "test"
	return cfg
}

// FakePreset returns the profile for the in-process two-domain loopback:
// verbose logs, in-memory state, fakenet rules (strict results policy).
func FakePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "fake"
	cfg.CacheMB = 16
	cfg.Verbosity = 5
	cfg.RulesName = "fake"
	return cfg
}

// GetPresetByName maps a profile name to its PresetConfig.
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "default":
		return DefaultPreset(), nil
	case "lite":
		return LitePreset(), nil
	case "fake":
		return FakePreset(), nil
	default:
		return PresetConfig{}, fmt.Errorf("integration: unknown preset %q", name)
	}
}
