package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the vetod CLI application skeleton. Commands and the main
// action are attached by the launcher.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "vetod"
	app.Usage = "Cross-domain veto aggregation daemon"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}
