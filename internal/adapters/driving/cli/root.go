// Package cli implements the cobra command surface for Fortuna.
// Services and stores are injected by main via the Set* functions
// before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Nubicola/fortuna/internal/core/ports/driven"
	"github.com/Nubicola/fortuna/internal/core/ports/driving"
	"github.com/Nubicola/fortuna/internal/logger"
)

// version is set from main at build time.
var version = "dev"

// Injected collaborators.
var (
	scanService    driving.Scanner
	scannerFactory func() (driving.Scanner, error)
	configStore    driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "fortuna",
	Short: "Part of Fortune conjunction finder",
	Long: `Fortuna calculates the astrological Part of Fortune for an observer
location and reports when it is in close zodiacal conjunction with the
Sun, Moon, Mercury, Venus, Mars, Jupiter or Saturn over a time range.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetScanService injects a ready scanner. Used by tests; main prefers
// SetScannerFactory so the ephemeris data files are only required when a
// scan actually runs.
func SetScanService(s driving.Scanner) {
	scanService = s
}

// SetScannerFactory injects a deferred scanner constructor. The factory
// runs once per scan invocation; a construction failure (e.g. missing
// ephemeris data files) surfaces as the scan's error.
func SetScannerFactory(f func() (driving.Scanner, error)) {
	scannerFactory = f
}

// SetConfigStore injects the configuration store used by the config command.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
