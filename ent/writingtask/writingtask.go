// Code generated by ent, DO NOT EDIT.

package writingtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the writingtask type in the database.
	Label = "writing_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskNumber holds the string denoting the task_number field in the database.
	FieldTaskNumber = "task_number"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldMinWords holds the string denoting the min_words field in the database.
	FieldMinWords = "min_words"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the writingtask in the database.
	Table = "writing_tasks"
)

// Columns holds all SQL columns for writingtask fields.
var Columns = []string{
	FieldID,
	FieldTaskNumber,
	FieldPrompt,
	FieldMinWords,
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
	// TaskNumberValidator is a validator for the "task_number" field. It is called by the builders before save.
	TaskNumberValidator func(int) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultMinWords holds the default value on creation for the "min_words" field.
	DefaultMinWords int
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WritingTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskNumber orders the results by the task_number field.
func ByTaskNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskNumber, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByMinWords orders the results by the min_words field.
func ByMinWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinWords, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
