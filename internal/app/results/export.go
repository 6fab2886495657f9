// Package results renders final race standings as an XLSX protocol sheet.
package results

import (
	"fmt"
	"io"

	"kartrace/internal/domain"

	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the only sheet in an exported workbook.
const SheetName = "Results"

const (
	statusFinished = "FINISHED"
	statusRacing   = "DNF"
	noLapTime      = "–"
)

var baseHeader = []interface{}{"Pos", "Name", "Laps", "Best Lap", "Total Time", "Status"}

// WriteSheet writes standings, already ordered by position, as an XLSX workbook to w.
// One row per competitor follows the header; lap columns run from 1 to totalLaps.
func WriteSheet(w io.Writer, standings []domain.ProgressState, totalLaps int) error {
	f, err := Build(standings, totalLaps)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write results workbook: %w", err)
	}
	return nil
}

// Build assembles the results workbook without writing it.
func Build(standings []domain.ProgressState, totalLaps int) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename results sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"1c399e"},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Color: "ffffff",
			Bold:  true,
		},
	})
	bestLapStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"3cb03a"},
		},
	})

	header := append([]interface{}{}, baseHeader...)
	for lap := 1; lap <= totalLaps; lap++ {
		header = append(header, fmt.Sprintf("Lap %d", lap))
	}
	if err := setRow(f, 1, header); err != nil {
		f.Close()
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(SheetName, "A1", last, headerStyle)
	f.SetColWidth(SheetName, "B", "B", 20)

	for i, p := range standings {
		rowNum := i + 2
		if err := setRow(f, rowNum, row(p, totalLaps)); err != nil {
			f.Close()
			return nil, err
		}
		if p.BestLapTime > 0 {
			cell, _ := excelize.CoordinatesToCellName(4, rowNum)
			f.SetCellStyle(SheetName, cell, cell, bestLapStyle)
		}
	}
	return f, nil
}

func row(p domain.ProgressState, totalLaps int) []interface{} {
	best := noLapTime
	if p.BestLapTime > 0 {
		best = domain.FormatRaceTime(p.BestLapTime)
	}
	total := noLapTime
	status := statusRacing
	if p.Finished {
		total = domain.FormatRaceTime(p.TotalRaceTime)
		status = statusFinished
	}

	out := []interface{}{p.CurrentPosition, p.DisplayName, p.LapsCompleted(), best, total, status}
	for lap := 0; lap < totalLaps; lap++ {
		if lap < len(p.LapTimes) {
			out = append(out, domain.FormatRaceTime(p.LapTimes[lap]))
			continue
		}
		out = append(out, noLapTime)
	}
	return out
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write results row %d: %w", rowNum, err)
	}
	return nil
}
