// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
)

// AudioAsset is the model entity for the AudioAsset schema.
type AudioAsset struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Original upload name
	FileName string `json:"file_name,omitempty"`
	// UUID-based name on disk
	StoredName string `json:"stored_name,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt   time.Time `json:"uploaded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AudioAsset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audioasset.FieldID, audioasset.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case audioasset.FieldFileName, audioasset.FieldStoredName, audioasset.FieldContentType:
			values[i] = new(sql.NullString)
		case audioasset.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AudioAsset fields.
func (_m *AudioAsset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audioasset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case audioasset.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case audioasset.FieldStoredName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stored_name", values[i])
			} else if value.Valid {
				_m.StoredName = value.String
			}
		case audioasset.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case audioasset.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = value.Int64
			}
		case audioasset.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AudioAsset.
// This includes values selected through modifiers, order, etc.
func (_m *AudioAsset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AudioAsset.
// Note that you need to call AudioAsset.Unwrap() before calling this method if this AudioAsset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AudioAsset) Update() *AudioAssetUpdateOne {
	return NewAudioAssetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AudioAsset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AudioAsset) Unwrap() *AudioAsset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AudioAsset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AudioAsset) String() string {
	var builder strings.Builder
	builder.WriteString("AudioAsset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("stored_name=")
	builder.WriteString(_m.StoredName)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AudioAssets is a parsable slice of AudioAsset.
type AudioAssets []*AudioAsset
