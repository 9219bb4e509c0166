package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tradereport/version"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// checkTimeout bounds the lookup of the latest release.
const checkTimeout = 5 * time.Second

type versionCmd struct {
	check bool
	// checker is replaced in tests.
	checker *version.Checker
}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print the version and look for updates" }
func (*versionCmd) Usage() string {
	return `tradereport version [-check]

  Prints the version of tradereport. When the check_updates setting is on, or
  with -check, also looks up the latest release and tells when an update is
  available. A failed lookup is not an error.
`
}

func (c *versionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Look up the latest release even when the check_updates setting is off")
}

func (c *versionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	log, err := newLogger(cfg.LogLevel, *Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer log.Sync()

	fmt.Printf("tradereport %s\n", version.Version)
	if !cfg.CheckUpdates && !c.check {
		return subcommands.ExitSuccess
	}

	checker := c.checker
	if checker == nil {
		checker = version.NewChecker()
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if latest, ok := checker.UpdateAvailable(ctx, version.Version); ok {
		fmt.Printf("Update available: %s\n", latest)
	} else {
		log.Debug("no update available", zap.String("url", checker.URL))
	}
	return subcommands.ExitSuccess
}
