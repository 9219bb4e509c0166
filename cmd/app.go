// Package cmd implements the CLI application reporting on an account history.
package cmd

import (
	"flag"

	"github.com/etnz/tradereport/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	for _, p := range shortcuts {
		c.Register(&periodicCmd{period: p}, "reports")
	}
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&versionCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to "+config.DefaultFile+" when present)")
var commissionField = flag.String("commission-field", "", "Column holding the commission amounts, overrides the commission_field setting")
var currency = flag.String("currency", "", "ISO code of the account currency, overrides the currency setting")

// Verbose turns on debug logs.
var Verbose = flag.Bool("v", false, "Verbose output, with debug logs")

// loadConfig loads the configuration, then applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *commissionField != "" {
		cfg.CommissionField = *commissionField
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	// flags may have broken a valid configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
