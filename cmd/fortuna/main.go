// Command fortuna scans a time range for conjunctions between the
// astrological Part of Fortune and the seven classical bodies.
package main

import (
	"fmt"
	"os"

	"github.com/Nubicola/fortuna/internal/adapters/driven/config/file"
	"github.com/Nubicola/fortuna/internal/adapters/driven/ephemeris/vsop87"
	"github.com/Nubicola/fortuna/internal/adapters/driven/houses"
	"github.com/Nubicola/fortuna/internal/adapters/driving/cli"
	"github.com/Nubicola/fortuna/internal/core/ports/driving"
	"github.com/Nubicola/fortuna/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore(os.Getenv("FORTUNA_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	cli.SetVersion(version)
	cli.SetConfigStore(cfg)

	// Scanner construction is deferred so config and version commands work
	// without the ephemeris data files installed.
	cli.SetScannerFactory(func() (driving.Scanner, error) {
		dataDir := cfg.GetString(file.KeyEphemerisPath)
		if dataDir == "" {
			dataDir = os.Getenv("VSOP87")
		}
		if dataDir == "" {
			return nil, fmt.Errorf("ephemeris data path not configured: set %s or the VSOP87 environment variable", file.KeyEphemerisPath)
		}

		eph, err := vsop87.New(dataDir)
		if err != nil {
			return nil, err
		}

		system := houses.SystemEqual
		if s := cfg.GetString(file.KeyHouseSystem); s != "" {
			system = s[0]
		}
		hc, err := houses.New(system)
		if err != nil {
			return nil, err
		}

		return services.NewScanService(eph, hc), nil
	})

	return cli.Execute()
}
