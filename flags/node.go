package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// NodeFlags holds knobs for the local daemon instance: where state lives
// and which run preset shapes it.
func NodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "datadir",
			Usage: "Data directory for aggregator state",
			Value: "~/.vetod",
		},
		cli.StringFlag{
			Name:  "preset",
			Usage: "Run preset (default|lite|fake)",
			Value: "default",
		},
		cli.IntFlag{
			Name:  "cache",
			Usage: "Megabytes of memory allocated to database caching",
			Value: 256,
		},
	}
}
