// Package cli provides the command-line interface for swipe-geometry.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/devicelab-dev/swipe-geometry/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"SWIPE_VERBOSE"},
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Directory for report.json and junit-report.xml",
		Value:   "reports",
		EnvVars: []string{"SWIPE_OUTPUT"},
	},
	&cli.IntFlag{
		Name:    "driver-host-port",
		Usage:   "UIAutomator2 server host port",
		Value:   7001,
		EnvVars: []string{"SWIPE_DRIVER_HOST_PORT"},
	},
	&cli.StringFlag{
		Name:    "socket",
		Usage:   "UIAutomator2 server unix socket (overrides --driver-host-port)",
		EnvVars: []string{"SWIPE_SOCKET"},
	},
}

// NewApp builds the CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "swipe-geometry",
		Usage:   "Compute swipe gesture coordinates inside a view",
		Version: Version,
		Description: `swipe-geometry computes where a directional swipe starts and ends
given a view rectangle and the screen it sits on.

Examples:
  # Single swipe
  swipe-geometry compute --direction up --view 1000,2000,2000,1000 --screen 4000,5000

  # Evaluate plan files and write a report
  swipe-geometry plan plans/

  # Play plans on a device through UIAutomator2
  swipe-geometry --driver-host-port 7001 dispatch plans/feed.yaml`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			computeCommand,
			planCommand,
			dispatchCommand,
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the logger for a command from the global flags.
func newLogger(c *cli.Context) *zap.Logger {
	log, err := logger.New(c.Bool("verbose"))
	if err != nil {
		return logger.Nop()
	}
	return log
}
