// Command genfixture generates deterministic sounding fixtures for the
// analysis and rendering test suites. It runs the actual analysis engine over
// a canonical severe-weather profile under a frozen clock, so the transformed
// output always matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genfixture \
//	  -profile-out data/mock/sounding_240426_oun.json \
//	  -analysis-out data/mock/sounding_240426_oun_analysis.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/sounding-analysis/internal/sounding"
	"github.com/jonboulle/clockwork"
)

// canonicalProfile is an idealized Southern Plains supercell sounding modeled
// on the 2024-04-26 00Z Norman, OK launch: a moist boundary layer under a
// capping inversion with strong veering flow aloft.
var canonicalProfile = sounding.Profile{
	{Pressure: 1000, Height: 100, Temperature: 25, Dewpoint: 21, WindDirection: 160, WindSpeed: 15},
	{Pressure: 950, Height: 550, Temperature: 22, Dewpoint: 19, WindDirection: 180, WindSpeed: 25},
	{Pressure: 900, Height: 990, Temperature: 19, Dewpoint: 17, WindDirection: 190, WindSpeed: 30},
	{Pressure: 850, Height: 1450, Temperature: 17, Dewpoint: 14, WindDirection: 200, WindSpeed: 35},
	{Pressure: 800, Height: 1950, Temperature: 14, Dewpoint: 11, WindDirection: 210, WindSpeed: 40},
	{Pressure: 700, Height: 3050, Temperature: 8, Dewpoint: 2, WindDirection: 220, WindSpeed: 45},
	{Pressure: 600, Height: 4300, Temperature: -1, Dewpoint: -8, WindDirection: 230, WindSpeed: 50},
	{Pressure: 500, Height: 5750, Temperature: -12, Dewpoint: -20, WindDirection: 240, WindSpeed: 55},
	{Pressure: 400, Height: 7400, Temperature: -25, Dewpoint: -35, WindDirection: 250, WindSpeed: 60},
	{Pressure: 300, Height: 9400, Temperature: -42, Dewpoint: -55, WindDirection: 250, WindSpeed: 70},
	{Pressure: 250, Height: 10600, Temperature: -52, Dewpoint: -65, WindDirection: 255, WindSpeed: 75},
	{Pressure: 200, Height: 12100, Temperature: -60, Dewpoint: -75, WindDirection: 260, WindSpeed: 80},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	profileOut := flag.String("profile-out", "", "output path for the raw profile JSON fixture")
	analysisOut := flag.String("analysis-out", "", "output path for the analysis JSON fixture")
	flag.Parse()

	if *profileOut == "" || *analysisOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -profile-out, -analysis-out")
	}

	// Freeze the clock for a reproducible generated_at timestamp.
	sounding.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.April, 26, 18, 0, 0, 0, time.UTC),
	))
	defer sounding.SetClock(nil)

	result, err := sounding.Analyze(canonicalProfile)
	if err != nil {
		return fmt.Errorf("analyzing canonical profile: %w", err)
	}

	if err := writeJSON(*profileOut, canonicalProfile); err != nil {
		return fmt.Errorf("writing profile fixture: %w", err)
	}
	log.Printf("wrote profile fixture: %s (%d levels)", *profileOut, len(canonicalProfile))

	if err := writeJSON(*analysisOut, result); err != nil {
		return fmt.Errorf("writing analysis fixture: %w", err)
	}
	log.Printf("wrote analysis fixture: %s", *analysisOut)

	printStats(result)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func printStats(r *sounding.AnalysisResult) {
	log.Printf("SBCAPE=%.0f SBCIN=%.0f MLCAPE=%.0f MUCAPE=%.0f",
		r.SurfaceBased.CAPE, r.SurfaceBased.CIN, r.MixedLayer.CAPE, r.MostUnstable.CAPE)
	log.Printf("SRH 0-1km=%.0f 0-3km=%.0f  STP=%.2f SCP=%.2f", r.SRH01, r.SRH03, r.STP, r.SCP)
}
