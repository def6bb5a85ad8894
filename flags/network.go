package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// NetworkFlags covers governance network selection and the endpoint trust
// binding. The binding flags are consumed once: after the first successful
// configuration they are ignored, matching the set-once binding semantics.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Governance network rules to run under (main|test|fake); defaults to the preset's network",
		},
		cli.StringFlag{
			Name:  "binding.counterpart",
			Usage: "Counterpart aggregator address on the home domain (hex)",
		},
		cli.StringFlag{
			Name:  "binding.bridge",
			Usage: "Local bridge endpoint address (hex)",
		},
		cli.StringFlag{
			Name:  "self",
			Usage: "This aggregator's address on the remote domain (hex)",
		},
		cli.Uint64Flag{
			Name:  "bridge.basefee",
			Usage: "Base delivery fee charged per outbound message",
			Value: 0,
		},
	}
}
