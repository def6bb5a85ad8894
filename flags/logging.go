package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// LoggingFlags configures the logrus backend and optional crash reporting.
func LoggingFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=panic,1=fatal,2=error,3=warn,4=info,5=debug)",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "log.json",
			Usage: "Emit logs as JSON instead of text",
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Sentry DSN for crash reporting (disabled when empty)",
		},
	}
}
