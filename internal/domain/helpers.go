package domain

import "fmt"

// FormatRaceTime renders seconds as mm:ss.cc, the format shown on the race HUD.
func FormatRaceTime(t float64) string {
	if t < 0 {
		t = 0
	}
	whole := int(t)
	minutes := whole / 60
	seconds := whole % 60
	centis := int(t*100) % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

// CountFinished returns the number of finished competitors.
func CountFinished(states []*ProgressState) int {
	n := 0
	for _, s := range states {
		if s.Finished {
			n++
		}
	}
	return n
}

// DisplayLap clamps the current lap to the range a HUD shows, 1..totalLaps.
func DisplayLap(p *ProgressState, totalLaps int) int {
	lap := p.CurrentLap
	if lap > totalLaps {
		lap = totalLaps
	}
	if lap < 1 {
		lap = 1
	}
	return lap
}
