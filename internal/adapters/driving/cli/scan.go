package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nubicola/fortuna/internal/adapters/driven/config/file"
	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/logger"
)

var (
	scanLat       float64
	scanLon       float64
	scanStartDate string
	scanStartTime string
	scanDuration  int
	scanExact     string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a time range for Part of Fortune conjunctions",
	Long: `Walks the requested time range in one-minute steps, derives the Part of
Fortune from the Sun, Moon and Ascendant at each step, and prints a line
for every tracked body sharing its zodiac sign within the orb threshold.

All times are UTC. Wide mode (default) reports separations up to 6 degrees;
exact mode (--exact Y) reports only separations up to 1 degree.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Float64Var(&scanLat, "lat", 51.5072, "observer latitude (North positive, South negative)")
	scanCmd.Flags().Float64Var(&scanLon, "lon", -0.1276, "observer longitude (East positive, West negative)")
	scanCmd.Flags().StringVar(&scanStartDate, "start_date", "", "starting date in YYYY-MM-DD format (default: today, UTC)")
	scanCmd.Flags().StringVar(&scanStartTime, "start_time", "00:00", "starting time in HH:MM format (UTC)")
	scanCmd.Flags().IntVar(&scanDuration, "duration", 1, "duration of the scan in full days")
	scanCmd.Flags().StringVar(&scanExact, "exact", "N", "Y for exact conjunctions only (<=1 degree), N for wide orb (<=6 degrees)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	applyObserverDefaults(cmd)

	startDate := scanStartDate
	if startDate == "" {
		startDate = time.Now().UTC().Format("2006-01-02")
	}

	printParameterEcho(cmd, startDate)

	start, err := time.ParseInLocation("2006-01-02 15:04", startDate+" "+scanStartTime, time.UTC)
	if err != nil {
		// Diagnose and bail without scanning; bad input is not a crash.
		cmd.Printf("Error parsing date/time: %v. Ensure correct YYYY-MM-DD and HH:MM format.\n", err)
		return nil
	}

	mode := domain.OrbWide
	switch strings.ToUpper(scanExact) {
	case "Y":
		mode = domain.OrbExact
	case "N":
	default:
		return fmt.Errorf("%w: --exact must be Y or N, got %q", domain.ErrInvalidInput, scanExact)
	}

	scanner := scanService
	if scanner == nil {
		if scannerFactory == nil {
			return errors.New("scan service not configured")
		}
		scanner, err = scannerFactory()
		if err != nil {
			return fmt.Errorf("initialising scanner: %w", err)
		}
	}

	req := domain.ScanRequest{
		Start:    start,
		End:      start.AddDate(0, 0, scanDuration),
		Observer: domain.Observer{Latitude: scanLat, Longitude: scanLon},
		Mode:     mode,
	}

	steps, err := scanner.Scan(cmd.Context(), req, func(c domain.Conjunction) {
		cmd.Println(formatConjunction(c))
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	logger.Debug("scan covered %d steps", steps)
	return nil
}

// applyObserverDefaults substitutes the config-file observer location for
// any --lat/--lon flag the user left untouched.
func applyObserverDefaults(cmd *cobra.Command) {
	if configStore == nil {
		return
	}
	if _, ok := configStore.Get(file.KeyObserverLatitude); ok && !cmd.Flags().Changed("lat") {
		scanLat = configStore.GetFloat(file.KeyObserverLatitude)
	}
	if _, ok := configStore.Get(file.KeyObserverLongitude); ok && !cmd.Flags().Changed("lon") {
		scanLon = configStore.GetFloat(file.KeyObserverLongitude)
	}
}

// printParameterEcho prints the received parameters block before scanning.
func printParameterEcho(cmd *cobra.Command, startDate string) {
	cmd.Println("--- Parameters Received ---")
	cmd.Printf("Latitude: %v\n", scanLat)
	cmd.Printf("Longitude: %v\n", scanLon)
	cmd.Printf("Starting Date: %s\n", startDate)
	cmd.Printf("Starting Time: %s\n", scanStartTime)
	cmd.Printf("Duration (days): %d\n", scanDuration)
	cmd.Printf("Only Exact Conjunctions: %s\n", scanExact)
	cmd.Println("---------------------------")
}

// formatConjunction renders one conjunction event as a report line, all
// degrees given within-sign to two decimals.
func formatConjunction(c domain.Conjunction) string {
	return fmt.Sprintf(
		"Date: %s, S: %.2f deg %s, M: %.2f deg %s F: %.2f deg %s House %d, Planet %s %.2f deg %s",
		c.At.Format("01/02/06 15:04"),
		domain.WithinSign(c.Sun.Longitude), domain.SignOf(c.Sun.Longitude),
		domain.WithinSign(c.Moon.Longitude), domain.SignOf(c.Moon.Longitude),
		domain.WithinSign(c.Fortune), domain.SignOf(c.Fortune), c.FortuneHouse,
		c.Body.Name, domain.WithinSign(c.Body.Longitude), domain.SignOf(c.Body.Longitude),
	)
}
