package main

import "github.com/urfave/cli/v3"

var (
	configFile string
	logLevel   string
	logFormat  string
	debug      bool
)

// deviceOptions selects the device a command configures for.
type deviceOptions struct {
	target  string
	profile string
	strict  bool
}

const (
	outputPretty = "pretty"
	outputJSON   = "json"
)

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: user config dir)",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func deviceFlags(o *deviceOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target",
			Aliases:     []string{"t"},
			Usage:       "GPU target name (g71, g76, g78, bifrost, ...)",
			Destination: &o.target,
		},
		&cli.StringFlag{
			Name:        "profile",
			Aliases:     []string{"p"},
			Usage:       "device profile file (.yaml or .json)",
			Destination: &o.profile,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "fail instead of falling back when a texture export is impossible",
			Destination: &o.strict,
		},
	}
}

func outputFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "output format (pretty, json)",
		Value:       outputPretty,
		Destination: dst,
		Validator: func(v string) error {
			if v != outputPretty && v != outputJSON {
				return cli.Exit("output must be pretty or json", 1)
			}
			return nil
		},
	}
}
