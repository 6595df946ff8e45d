// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
)

// ListeningTest is the model entity for the ListeningTest schema.
type ListeningTest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Uploaded audio this test plays
	AudioAssetID int `json:"audio_asset_id,omitempty"`
	// Sections holds the value of the "sections" field.
	Sections []schema.ListeningSection `json:"sections,omitempty"`
	// Only active tests are assigned to new sessions
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ListeningTest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listeningtest.FieldSections:
			values[i] = new([]byte)
		case listeningtest.FieldActive:
			values[i] = new(sql.NullBool)
		case listeningtest.FieldID, listeningtest.FieldAudioAssetID:
			values[i] = new(sql.NullInt64)
		case listeningtest.FieldTitle, listeningtest.FieldDescription:
			values[i] = new(sql.NullString)
		case listeningtest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ListeningTest fields.
func (_m *ListeningTest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listeningtest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case listeningtest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case listeningtest.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case listeningtest.FieldAudioAssetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audio_asset_id", values[i])
			} else if value.Valid {
				_m.AudioAssetID = int(value.Int64)
			}
		case listeningtest.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case listeningtest.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case listeningtest.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ListeningTest.
// This includes values selected through modifiers, order, etc.
func (_m *ListeningTest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ListeningTest.
// Note that you need to call ListeningTest.Unwrap() before calling this method if this ListeningTest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ListeningTest) Update() *ListeningTestUpdateOne {
	return NewListeningTestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ListeningTest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ListeningTest) Unwrap() *ListeningTest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ListeningTest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ListeningTest) String() string {
	var builder strings.Builder
	builder.WriteString("ListeningTest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("audio_asset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioAssetID))
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ListeningTests is a parsable slice of ListeningTest.
type ListeningTests []*ListeningTest
