// Code generated by ent, DO NOT EDIT.

package speakingpart

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the speakingpart type in the database.
	Label = "speaking_part"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPartNumber holds the string denoting the part_number field in the database.
	FieldPartNumber = "part_number"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldPrepSeconds holds the string denoting the prep_seconds field in the database.
	FieldPrepSeconds = "prep_seconds"
	// FieldSpeakSeconds holds the string denoting the speak_seconds field in the database.
	FieldSpeakSeconds = "speak_seconds"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the speakingpart in the database.
	Table = "speaking_parts"
)

// Columns holds all SQL columns for speakingpart fields.
var Columns = []string{
	FieldID,
	FieldPartNumber,
	FieldTopic,
	FieldQuestions,
	FieldPrepSeconds,
	FieldSpeakSeconds,
	FieldActive,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PartNumberValidator is a validator for the "part_number" field. It is called by the builders before save.
	PartNumberValidator func(int) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultPrepSeconds holds the default value on creation for the "prep_seconds" field.
	DefaultPrepSeconds int
	// DefaultSpeakSeconds holds the default value on creation for the "speak_seconds" field.
	DefaultSpeakSeconds int
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SpeakingPart queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPartNumber orders the results by the part_number field.
func ByPartNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartNumber, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPrepSeconds orders the results by the prep_seconds field.
func ByPrepSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrepSeconds, opts...).ToFunc()
}

// BySpeakSeconds orders the results by the speak_seconds field.
func BySpeakSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakSeconds, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
