package launcher

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/hexgov/crossveto/gov"
	"github.com/hexgov/crossveto/integration"
)

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	Node    NodeConfig
	Gov     gov.Rules
	Preset  integration.PresetConfig
	Binding BindingConfig
	Logging LoggingConfig

	// BaseFee is charged by the in-process router per bridged message.
	BaseFee uint64
}

type NodeConfig struct {
	DataDir string
	CacheMB int
}

// BindingConfig carries the endpoint trust binding material. The binding
// itself is set-once inside the aggregator; these are just the addresses
// handed to the first Configure call.
type BindingConfig struct {
	Self        common.Address
	Bridge      common.Address
	Counterpart common.Address
}

type LoggingConfig struct {
	Verbosity int
	JSON      bool
	SentryDSN string
}

// MakeConfig merges the chosen preset with CLI flag overrides.
func MakeConfig(ctx *cli.Context) (Config, error) {
	preset, err := integration.GetPresetByName(ctx.GlobalString("preset"))
	if err != nil {
		return Config{}, err
	}

	rulesName := preset.RulesName
	if name := ctx.GlobalString("network"); name != "" {
		rulesName = name
	}
	rules, err := gov.RulesByName(rulesName)
	if err != nil {
		return Config{}, err
	}

	verbosity := preset.Verbosity
	if ctx.GlobalIsSet("log.verbosity") {
		verbosity = ctx.GlobalInt("log.verbosity")
	}
	if verbosity < 0 || verbosity > 5 {
		return Config{}, fmt.Errorf("log.verbosity %d out of range 0..5", verbosity)
	}

	cacheMB := preset.CacheMB
	if ctx.GlobalIsSet("cache") {
		cacheMB = ctx.GlobalInt("cache")
	}

	cfg := Config{
		Node: NodeConfig{
			DataDir: ctx.GlobalString("datadir"),
			CacheMB: cacheMB,
		},
		Gov:    rules,
		Preset: preset,
		Binding: BindingConfig{
			Self:        common.HexToAddress(ctx.GlobalString("self")),
			Bridge:      common.HexToAddress(ctx.GlobalString("binding.bridge")),
			Counterpart: common.HexToAddress(ctx.GlobalString("binding.counterpart")),
		},
		Logging: LoggingConfig{
			Verbosity: verbosity,
			JSON:      ctx.GlobalBool("log.json"),
			SentryDSN: ctx.GlobalString("sentry.dsn"),
		},
		BaseFee: ctx.GlobalUint64("bridge.basefee"),
	}
	return cfg, nil
}
