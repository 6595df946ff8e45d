// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
)

// TestSession is the model entity for the TestSession schema.
type TestSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CandidateName holds the value of the "candidate_name" field.
	CandidateName string `json:"candidate_name,omitempty"`
	// CandidateEmail holds the value of the "candidate_email" field.
	CandidateEmail string `json:"candidate_email,omitempty"`
	// listening, reading, writing, speaking, or completed
	CurrentSection string `json:"current_section,omitempty"`
	// WritingCompleted holds the value of the "writing_completed" field.
	WritingCompleted bool `json:"writing_completed,omitempty"`
	// SpeakingCompleted holds the value of the "speaking_completed" field.
	SpeakingCompleted bool `json:"speaking_completed,omitempty"`
	// in_progress, completed, or expired
	Status string `json:"status,omitempty"`
	// Listening test assigned at session start
	ListeningTestID int `json:"listening_test_id,omitempty"`
	// Reading test assigned at session start
	ReadingTestID int `json:"reading_test_id,omitempty"`
	// ListeningBand holds the value of the "listening_band" field.
	ListeningBand *float64 `json:"listening_band,omitempty"`
	// ReadingBand holds the value of the "reading_band" field.
	ReadingBand *float64 `json:"reading_band,omitempty"`
	// WritingBand holds the value of the "writing_band" field.
	WritingBand *float64 `json:"writing_band,omitempty"`
	// SpeakingBand holds the value of the "speaking_band" field.
	SpeakingBand *float64 `json:"speaking_band,omitempty"`
	// OverallBand holds the value of the "overall_band" field.
	OverallBand *float64 `json:"overall_band,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Bumped on every write; the sweeper expires idle sessions
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testsession.FieldWritingCompleted, testsession.FieldSpeakingCompleted:
			values[i] = new(sql.NullBool)
		case testsession.FieldListeningBand, testsession.FieldReadingBand, testsession.FieldWritingBand, testsession.FieldSpeakingBand, testsession.FieldOverallBand:
			values[i] = new(sql.NullFloat64)
		case testsession.FieldListeningTestID, testsession.FieldReadingTestID:
			values[i] = new(sql.NullInt64)
		case testsession.FieldID, testsession.FieldCandidateName, testsession.FieldCandidateEmail, testsession.FieldCurrentSection, testsession.FieldStatus:
			values[i] = new(sql.NullString)
		case testsession.FieldStartedAt, testsession.FieldCompletedAt, testsession.FieldLastActivityAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestSession fields.
func (_m *TestSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case testsession.FieldCandidateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_name", values[i])
			} else if value.Valid {
				_m.CandidateName = value.String
			}
		case testsession.FieldCandidateEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_email", values[i])
			} else if value.Valid {
				_m.CandidateEmail = value.String
			}
		case testsession.FieldCurrentSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_section", values[i])
			} else if value.Valid {
				_m.CurrentSection = value.String
			}
		case testsession.FieldWritingCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field writing_completed", values[i])
			} else if value.Valid {
				_m.WritingCompleted = value.Bool
			}
		case testsession.FieldSpeakingCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field speaking_completed", values[i])
			} else if value.Valid {
				_m.SpeakingCompleted = value.Bool
			}
		case testsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case testsession.FieldListeningTestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field listening_test_id", values[i])
			} else if value.Valid {
				_m.ListeningTestID = int(value.Int64)
			}
		case testsession.FieldReadingTestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_test_id", values[i])
			} else if value.Valid {
				_m.ReadingTestID = int(value.Int64)
			}
		case testsession.FieldListeningBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field listening_band", values[i])
			} else if value.Valid {
				_m.ListeningBand = new(float64)
				*_m.ListeningBand = value.Float64
			}
		case testsession.FieldReadingBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_band", values[i])
			} else if value.Valid {
				_m.ReadingBand = new(float64)
				*_m.ReadingBand = value.Float64
			}
		case testsession.FieldWritingBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field writing_band", values[i])
			} else if value.Valid {
				_m.WritingBand = new(float64)
				*_m.WritingBand = value.Float64
			}
		case testsession.FieldSpeakingBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field speaking_band", values[i])
			} else if value.Valid {
				_m.SpeakingBand = new(float64)
				*_m.SpeakingBand = value.Float64
			}
		case testsession.FieldOverallBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_band", values[i])
			} else if value.Valid {
				_m.OverallBand = new(float64)
				*_m.OverallBand = value.Float64
			}
		case testsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case testsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case testsession.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestSession.
// This includes values selected through modifiers, order, etc.
func (_m *TestSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestSession.
// Note that you need to call TestSession.Unwrap() before calling this method if this TestSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestSession) Update() *TestSessionUpdateOne {
	return NewTestSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestSession) Unwrap() *TestSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestSession) String() string {
	var builder strings.Builder
	builder.WriteString("TestSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("candidate_name=")
	builder.WriteString(_m.CandidateName)
	builder.WriteString(", ")
	builder.WriteString("candidate_email=")
	builder.WriteString(_m.CandidateEmail)
	builder.WriteString(", ")
	builder.WriteString("current_section=")
	builder.WriteString(_m.CurrentSection)
	builder.WriteString(", ")
	builder.WriteString("writing_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.WritingCompleted))
	builder.WriteString(", ")
	builder.WriteString("speaking_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeakingCompleted))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("listening_test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ListeningTestID))
	builder.WriteString(", ")
	builder.WriteString("reading_test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadingTestID))
	builder.WriteString(", ")
	if v := _m.ListeningBand; v != nil {
		builder.WriteString("listening_band=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReadingBand; v != nil {
		builder.WriteString("reading_band=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WritingBand; v != nil {
		builder.WriteString("writing_band=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SpeakingBand; v != nil {
		builder.WriteString("speaking_band=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OverallBand; v != nil {
		builder.WriteString("overall_band=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestSessions is a parsable slice of TestSession.
type TestSessions []*TestSession
