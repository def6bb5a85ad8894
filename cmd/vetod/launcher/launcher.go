// Package launcher wires the veto daemon together: flags to config,
// config to logging, storage, the bridge router and the aggregator.
package launcher

import (
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/hexgov/crossveto/flags"
)

var app = flags.NewApp()

func init() {
	app.Flags = append(app.Flags, flags.NodeFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)
	app.Flags = append(app.Flags, flags.LoggingFlags()...)
	app.Action = vetodMain
}

// Launch parses the command line and runs the daemon until interrupted.
func Launch(args []string) error {
	return app.Run(args)
}

func vetodMain(ctx *cli.Context) error {
	cfg, err := MakeConfig(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Logging); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"preset": cfg.Preset.Name,
		"rules":  cfg.Gov.String(),
	}).Info("starting vetod")

	return runNode(cfg)
}

func setupLogging(cfg LoggingConfig) error {
	logrus.SetLevel(logrus.AllLevels[cfg.Verbosity])
	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return err
		}
		logrus.AddHook(hook)
	}
	return nil
}
