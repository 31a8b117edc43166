// Command inspect analyzes a sounding profile JSON file and prints every
// derived field in a human-checkable layout. Useful for eyeballing a profile
// before it goes through the pipeline, or for comparing output against an
// upstream implementation.
//
// Usage:
//
//	go run ./cmd/inspect -profile data/mock/sounding_240426_oun.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/sounding-analysis/internal/sounding"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "inspect:", err)
		os.Exit(1)
	}
}

func run() error {
	profilePath := flag.String("profile", "", "path to a profile JSON file (array of levels)")
	flag.Parse()

	if *profilePath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -profile")
	}

	data, err := os.ReadFile(*profilePath)
	if err != nil {
		return err
	}

	var profile sounding.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("decoding profile: %w", err)
	}

	result, err := sounding.Analyze(profile)
	if err != nil {
		return fmt.Errorf("analyzing profile: %w", err)
	}

	printReport(profile, result)
	return nil
}

func printReport(profile sounding.Profile, r *sounding.AnalysisResult) {
	fmt.Printf("profile: %d levels, %.0f–%.0f hPa\n\n",
		len(profile), profile.Surface().Pressure, profile.Top().Pressure)

	fmt.Println("parcel energies (J/kg):")
	printEnergy("  surface-based", r.SurfaceBased)
	printEnergy("  mixed-layer  ", r.MixedLayer)
	printEnergy("  most-unstable", r.MostUnstable)

	fmt.Printf("\nLCL: %.1f hPa, %.0f m AGL\n", r.LCL.Pressure, r.LCL.Height)

	fmt.Printf("\nkinematics:\n")
	fmt.Printf("  shear 0-1 km: %.1f/%.1f m/s   0-6 km: %.1f/%.1f m/s\n",
		r.Shear01.U, r.Shear01.V, r.Shear06.U, r.Shear06.V)
	fmt.Printf("  SRH   0-1 km: %.0f m²/s²      0-3 km: %.0f m²/s²\n", r.SRH01, r.SRH03)
	fmt.Printf("  storm motion: right %.1f/%.1f  left %.1f/%.1f m/s\n",
		r.StormRightMover.U, r.StormRightMover.V, r.StormLeftMover.U, r.StormLeftMover.V)

	fmt.Printf("\ndiagnostics:\n")
	fmt.Printf("  lapse rate 0-3 km: %.2f °C/km   3-6 km: %.2f °C/km\n", r.LapseRate03, r.LapseRate36)
	fmt.Printf("  precipitable water: %.2f in\n", r.PrecipitableWater)

	fmt.Printf("\ncomposites: STP=%.2f SCP=%.2f\n", r.STP, r.SCP)
}

func printEnergy(label string, e sounding.EnergyResult) {
	line := fmt.Sprintf("%s  CAPE=%6.0f  CIN=%6.0f", label, e.CAPE, e.CIN)
	if e.LFC != nil {
		line += fmt.Sprintf("  LFC=%.1f hPa", e.LFC.Pressure)
	}
	if e.EL != nil {
		line += fmt.Sprintf("  EL=%.1f hPa", e.EL.Pressure)
	}
	fmt.Println(line)
}
