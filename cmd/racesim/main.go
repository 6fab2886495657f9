// Command racesim runs a headless kart race on the race engine with simulated
// drivers and exports the final standings as an XLSX sheet.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"kartrace/internal/app/results"
	"kartrace/internal/bot"
	"kartrace/internal/config"
	"kartrace/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	logger := newStdLogger(log.New(os.Stderr, "racesim ", log.LstdFlags), envBool("RACESIM_DEBUG"))

	configPath := envString("RACESIM_CONFIG", "data/race_config.json")
	if err := config.LoadRaceConfig(configPath); err != nil {
		log.Fatalf("Error loading race config: %v", err)
	}
	if err := bot.LoadIdentities(envString("RACESIM_BOTS", "data/bot_identities.json")); err != nil {
		logger.Warn("Bot identities not loaded, using generated names: %v", err)
	}
	cfg := config.GetRaceConfig()
	if laps := envInt("RACESIM_LAPS", 0); laps > 0 {
		cfg.TotalLaps = laps
	}

	opts := Options{
		Drivers:  envInt("RACESIM_DRIVERS", 4),
		Seed:     int64(envInt("RACESIM_SEED", int(time.Now().UnixNano()))),
		FreezeAt: envFloat("RACESIM_FREEZE_AT", 10),

		BotPowerUps: envBool("RACESIM_BOT_POWERUPS"),
	}

	sim, err := NewSimulation(*cfg, opts, logger)
	if err != nil {
		log.Fatal(err)
	}

	standings, err := sim.Run()
	if err != nil {
		log.Fatalf("Race failed: %v", err)
	}
	printStandings(os.Stdout, standings)

	output := envString("RACESIM_OUTPUT", "race_results.xlsx")
	if output == "-" {
		return
	}
	if err := writeResults(output, standings, cfg.TotalLaps); err != nil {
		log.Fatalf("Error writing results: %v", err)
	}
	log.Printf("Results written to %s", output)
}

// writeResults exports the standings to an XLSX file at path.
func writeResults(path string, standings []domain.ProgressState, totalLaps int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := results.WriteSheet(f, standings, totalLaps); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func printStandings(w io.Writer, standings []domain.ProgressState) {
	fmt.Fprintf(w, "%-4s %-12s %-10s %-10s\n", "Pos", "Name", "Time", "Best Lap")
	for _, p := range standings {
		total := "DNF"
		if p.Finished {
			total = domain.FormatRaceTime(p.TotalRaceTime)
		}
		fmt.Fprintf(w, "%-4d %-12s %-10s %-10s\n", p.CurrentPosition, p.DisplayName, total, domain.FormatRaceTime(p.BestLapTime))
	}
}

func envString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if i, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return i
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
