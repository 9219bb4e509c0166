package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/tradereport/config"
)

// ExtensionPrefix prefixes the executables run as extra commands:
// `tradereport hello` runs `tradereport-hello` when found in PATH.
const ExtensionPrefix = "tradereport-"

// RunExtension attempts to find and execute an external tradereport-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension gets the settings, flags applied, as TRADEREPORT_ variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath(ExtensionPrefix + subcommand)
	if err != nil {
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the environment variables describing cfg.
func extensionEnv(cfg *config.Config) []string {
	env := func(name, value string) string { return config.EnvPrefix + "_" + name + "=" + value }
	return []string{
		env("COMMISSION_FIELD", cfg.CommissionField),
		env("CURRENCY", cfg.Currency),
		env("PERIOD", cfg.Period),
		env("OUTPUT_DIR", cfg.OutputDir),
		env("LOG_LEVEL", cfg.LogLevel),
		env("CHECK_UPDATES", strconv.FormatBool(cfg.CheckUpdates)),
		env("WORKERS", strconv.Itoa(cfg.Workers)),
	}
}
