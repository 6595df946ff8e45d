// Code generated by ent, DO NOT EDIT.

package testsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testsession type in the database.
	Label = "test_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCandidateName holds the string denoting the candidate_name field in the database.
	FieldCandidateName = "candidate_name"
	// FieldCandidateEmail holds the string denoting the candidate_email field in the database.
	FieldCandidateEmail = "candidate_email"
	// FieldCurrentSection holds the string denoting the current_section field in the database.
	FieldCurrentSection = "current_section"
	// FieldWritingCompleted holds the string denoting the writing_completed field in the database.
	FieldWritingCompleted = "writing_completed"
	// FieldSpeakingCompleted holds the string denoting the speaking_completed field in the database.
	FieldSpeakingCompleted = "speaking_completed"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldListeningTestID holds the string denoting the listening_test_id field in the database.
	FieldListeningTestID = "listening_test_id"
	// FieldReadingTestID holds the string denoting the reading_test_id field in the database.
	FieldReadingTestID = "reading_test_id"
	// FieldListeningBand holds the string denoting the listening_band field in the database.
	FieldListeningBand = "listening_band"
	// FieldReadingBand holds the string denoting the reading_band field in the database.
	FieldReadingBand = "reading_band"
	// FieldWritingBand holds the string denoting the writing_band field in the database.
	FieldWritingBand = "writing_band"
	// FieldSpeakingBand holds the string denoting the speaking_band field in the database.
	FieldSpeakingBand = "speaking_band"
	// FieldOverallBand holds the string denoting the overall_band field in the database.
	FieldOverallBand = "overall_band"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// Table holds the table name of the testsession in the database.
	Table = "test_sessions"
)

// Columns holds all SQL columns for testsession fields.
var Columns = []string{
	FieldID,
	FieldCandidateName,
	FieldCandidateEmail,
	FieldCurrentSection,
	FieldWritingCompleted,
	FieldSpeakingCompleted,
	FieldStatus,
	FieldListeningTestID,
	FieldReadingTestID,
	FieldListeningBand,
	FieldReadingBand,
	FieldWritingBand,
	FieldSpeakingBand,
	FieldOverallBand,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastActivityAt,
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
	// CandidateNameValidator is a validator for the "candidate_name" field. It is called by the builders before save.
	CandidateNameValidator func(string) error
	// DefaultCandidateEmail holds the default value on creation for the "candidate_email" field.
	DefaultCandidateEmail string
	// DefaultCurrentSection holds the default value on creation for the "current_section" field.
	DefaultCurrentSection string
	// DefaultWritingCompleted holds the default value on creation for the "writing_completed" field.
	DefaultWritingCompleted bool
	// DefaultSpeakingCompleted holds the default value on creation for the "speaking_completed" field.
	DefaultSpeakingCompleted bool
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the TestSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCandidateName orders the results by the candidate_name field.
func ByCandidateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateName, opts...).ToFunc()
}

// ByCandidateEmail orders the results by the candidate_email field.
func ByCandidateEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateEmail, opts...).ToFunc()
}

// ByCurrentSection orders the results by the current_section field.
func ByCurrentSection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentSection, opts...).ToFunc()
}

// ByWritingCompleted orders the results by the writing_completed field.
func ByWritingCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWritingCompleted, opts...).ToFunc()
}

// BySpeakingCompleted orders the results by the speaking_completed field.
func BySpeakingCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakingCompleted, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByListeningTestID orders the results by the listening_test_id field.
func ByListeningTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListeningTestID, opts...).ToFunc()
}

// ByReadingTestID orders the results by the reading_test_id field.
func ByReadingTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingTestID, opts...).ToFunc()
}

// ByListeningBand orders the results by the listening_band field.
func ByListeningBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListeningBand, opts...).ToFunc()
}

// ByReadingBand orders the results by the reading_band field.
func ByReadingBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingBand, opts...).ToFunc()
}

// ByWritingBand orders the results by the writing_band field.
func ByWritingBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWritingBand, opts...).ToFunc()
}

// BySpeakingBand orders the results by the speaking_band field.
func BySpeakingBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakingBand, opts...).ToFunc()
}

// ByOverallBand orders the results by the overall_band field.
func ByOverallBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallBand, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}
