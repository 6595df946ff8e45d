// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

// WritingTask is the model entity for the WritingTask schema.
type WritingTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskNumber holds the value of the "task_number" field.
	TaskNumber int `json:"task_number,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// 0 means the standard minimum for the task number
	MinWords int `json:"min_words,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WritingTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case writingtask.FieldActive:
			values[i] = new(sql.NullBool)
		case writingtask.FieldID, writingtask.FieldTaskNumber, writingtask.FieldMinWords:
			values[i] = new(sql.NullInt64)
		case writingtask.FieldPrompt:
			values[i] = new(sql.NullString)
		case writingtask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WritingTask fields.
func (_m *WritingTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case writingtask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case writingtask.FieldTaskNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_number", values[i])
			} else if value.Valid {
				_m.TaskNumber = int(value.Int64)
			}
		case writingtask.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case writingtask.FieldMinWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_words", values[i])
			} else if value.Valid {
				_m.MinWords = int(value.Int64)
			}
		case writingtask.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case writingtask.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WritingTask.
// This includes values selected through modifiers, order, etc.
func (_m *WritingTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WritingTask.
// Note that you need to call WritingTask.Unwrap() before calling this method if this WritingTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WritingTask) Update() *WritingTaskUpdateOne {
	return NewWritingTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WritingTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WritingTask) Unwrap() *WritingTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WritingTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WritingTask) String() string {
	var builder strings.Builder
	builder.WriteString("WritingTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskNumber))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("min_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinWords))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WritingTasks is a parsable slice of WritingTask.
type WritingTasks []*WritingTask
