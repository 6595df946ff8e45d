// Package export renders session results as an Excel workbook for admin
// download.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

const sheetName = "Sessions"

var headers = []string{
	"Session ID", "Candidate", "Email", "Status",
	"Listening", "Reading", "Writing", "Speaking", "Overall", "Level",
	"Started", "Completed",
}

// WriteSessions writes one row per session to w as an .xlsx workbook.
func WriteSessions(w io.Writer, sessions []*store.Session) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheetName, "A1", last, headerStyle)
	}

	for i, s := range sessions {
		row := i + 2
		values := []any{
			s.ID, s.CandidateName, s.CandidateEmail, s.Status,
			bandCell(s.ListeningBand), bandCell(s.ReadingBand),
			bandCell(s.WritingBand), bandCell(s.SpeakingBand),
			bandCell(s.OverallBand), levelCell(s.OverallBand),
			s.StartedAt.Format("2006-01-02 15:04"),
			timeCell(s),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("cell %d/%d: %w", row, col, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "C", 24)
	f.SetColWidth(sheetName, "K", "L", 18)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func bandCell(b *float64) any {
	if b == nil {
		return ""
	}
	return *b
}

func levelCell(b *float64) string {
	if b == nil {
		return ""
	}
	return scoring.Descriptor(*b)
}

func timeCell(s *store.Session) string {
	if s.CompletedAt == nil {
		return ""
	}
	return s.CompletedAt.Format("2006-01-02 15:04")
}
