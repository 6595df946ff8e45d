package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

func fptr(v float64) *float64 { return &v }

func TestWriteSessions(t *testing.T) {
	done := time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)
	sessions := []*store.Session{
		{
			ID:             "a1b2",
			CandidateName:  "Dilnoza",
			CandidateEmail: "dilnoza@example.com",
			Status:         store.StatusCompleted,
			ListeningBand:  fptr(7.0),
			ReadingBand:    fptr(6.5),
			WritingBand:    fptr(6.0),
			SpeakingBand:   fptr(6.5),
			OverallBand:    fptr(6.5),
			StartedAt:      done.Add(-3 * time.Hour),
			CompletedAt:    &done,
		},
		{
			ID:            "c3d4",
			CandidateName: "Bekzod",
			Status:        store.StatusInProgress,
			StartedAt:     done,
		},
	}

	var buf bytes.Buffer
	if err := WriteSessions(&buf, sessions); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Session ID" {
		t.Errorf("header = %q", rows[0][0])
	}
	if rows[1][1] != "Dilnoza" {
		t.Errorf("candidate = %q", rows[1][1])
	}

	overall, err := f.GetCellValue(sheetName, "I2")
	if err != nil || overall != "6.5" {
		t.Errorf("overall cell = %q (err %v)", overall, err)
	}

	// An unfinished session has blank band cells, not zeros.
	if got, _ := f.GetCellValue(sheetName, "I3"); got != "" {
		t.Errorf("in-progress overall = %q, want empty", got)
	}
}

func TestWriteSessions_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSessions(&buf, nil); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook produced no bytes")
	}
}
