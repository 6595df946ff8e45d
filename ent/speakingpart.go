// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
)

// SpeakingPart is the model entity for the SpeakingPart schema.
type SpeakingPart struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PartNumber holds the value of the "part_number" field.
	PartNumber int `json:"part_number,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Questions holds the value of the "questions" field.
	Questions []string `json:"questions,omitempty"`
	// Preparation time before speaking (part 2 only)
	PrepSeconds int `json:"prep_seconds,omitempty"`
	// Expected speaking duration
	SpeakSeconds int `json:"speak_seconds,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpeakingPart) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case speakingpart.FieldQuestions:
			values[i] = new([]byte)
		case speakingpart.FieldActive:
			values[i] = new(sql.NullBool)
		case speakingpart.FieldID, speakingpart.FieldPartNumber, speakingpart.FieldPrepSeconds, speakingpart.FieldSpeakSeconds:
			values[i] = new(sql.NullInt64)
		case speakingpart.FieldTopic:
			values[i] = new(sql.NullString)
		case speakingpart.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpeakingPart fields.
func (_m *SpeakingPart) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case speakingpart.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case speakingpart.FieldPartNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field part_number", values[i])
			} else if value.Valid {
				_m.PartNumber = int(value.Int64)
			}
		case speakingpart.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case speakingpart.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case speakingpart.FieldPrepSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prep_seconds", values[i])
			} else if value.Valid {
				_m.PrepSeconds = int(value.Int64)
			}
		case speakingpart.FieldSpeakSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field speak_seconds", values[i])
			} else if value.Valid {
				_m.SpeakSeconds = int(value.Int64)
			}
		case speakingpart.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case speakingpart.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpeakingPart.
// This includes values selected through modifiers, order, etc.
func (_m *SpeakingPart) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SpeakingPart.
// Note that you need to call SpeakingPart.Unwrap() before calling this method if this SpeakingPart
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpeakingPart) Update() *SpeakingPartUpdateOne {
	return NewSpeakingPartClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpeakingPart entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpeakingPart) Unwrap() *SpeakingPart {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpeakingPart is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpeakingPart) String() string {
	var builder strings.Builder
	builder.WriteString("SpeakingPart(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("part_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartNumber))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("prep_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrepSeconds))
	builder.WriteString(", ")
	builder.WriteString("speak_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeakSeconds))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SpeakingParts is a parsable slice of SpeakingPart.
type SpeakingParts []*SpeakingPart
