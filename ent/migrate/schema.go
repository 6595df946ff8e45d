// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerRecordsColumns holds the columns for the "answer_records" table.
	AnswerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "received_at", Type: field.TypeTime},
	}
	// AnswerRecordsTable holds the schema information for the "answer_records" table.
	AnswerRecordsTable = &schema.Table{
		Name:       "answer_records",
		Columns:    AnswerRecordsColumns,
		PrimaryKey: []*schema.Column{AnswerRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerrecord_session_id_question_id_section",
				Unique:  true,
				Columns: []*schema.Column{AnswerRecordsColumns[1], AnswerRecordsColumns[2], AnswerRecordsColumns[3]},
			},
			{
				Name:    "answerrecord_session_id_section",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[1], AnswerRecordsColumns[3]},
			},
		},
	}
	// AudioAssetsColumns holds the columns for the "audio_assets" table.
	AudioAssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "stored_name", Type: field.TypeString, Unique: true},
		{Name: "content_type", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// AudioAssetsTable holds the schema information for the "audio_assets" table.
	AudioAssetsTable = &schema.Table{
		Name:       "audio_assets",
		Columns:    AudioAssetsColumns,
		PrimaryKey: []*schema.Column{AudioAssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "audioasset_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{AudioAssetsColumns[5]},
			},
		},
	}
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "task_ref", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "band", Type: field.TypeFloat64},
		{Name: "criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "model", Type: field.TypeString, Default: ""},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_session_id_section",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[3], EvaluationEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ListeningTestsColumns holds the columns for the "listening_tests" table.
	ListeningTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "audio_asset_id", Type: field.TypeInt, Nullable: true},
		{Name: "sections", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ListeningTestsTable holds the schema information for the "listening_tests" table.
	ListeningTestsTable = &schema.Table{
		Name:       "listening_tests",
		Columns:    ListeningTestsColumns,
		PrimaryKey: []*schema.Column{ListeningTestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "listeningtest_active",
				Unique:  false,
				Columns: []*schema.Column{ListeningTestsColumns[5]},
			},
		},
	}
	// ReadingTestsColumns holds the columns for the "reading_tests" table.
	ReadingTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "passages", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReadingTestsTable holds the schema information for the "reading_tests" table.
	ReadingTestsTable = &schema.Table{
		Name:       "reading_tests",
		Columns:    ReadingTestsColumns,
		PrimaryKey: []*schema.Column{ReadingTestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readingtest_active",
				Unique:  false,
				Columns: []*schema.Column{ReadingTestsColumns[4]},
			},
		},
	}
	// SpeakingPartsColumns holds the columns for the "speaking_parts" table.
	SpeakingPartsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "part_number", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "prep_seconds", Type: field.TypeInt, Default: 0},
		{Name: "speak_seconds", Type: field.TypeInt, Default: 120},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SpeakingPartsTable holds the schema information for the "speaking_parts" table.
	SpeakingPartsTable = &schema.Table{
		Name:       "speaking_parts",
		Columns:    SpeakingPartsColumns,
		PrimaryKey: []*schema.Column{SpeakingPartsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "speakingpart_part_number_active",
				Unique:  false,
				Columns: []*schema.Column{SpeakingPartsColumns[1], SpeakingPartsColumns[6]},
			},
		},
	}
	// TestSessionsColumns holds the columns for the "test_sessions" table.
	TestSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "candidate_name", Type: field.TypeString},
		{Name: "candidate_email", Type: field.TypeString, Default: ""},
		{Name: "current_section", Type: field.TypeString, Default: "listening"},
		{Name: "writing_completed", Type: field.TypeBool, Default: false},
		{Name: "speaking_completed", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeString, Default: "in_progress"},
		{Name: "listening_test_id", Type: field.TypeInt, Nullable: true},
		{Name: "reading_test_id", Type: field.TypeInt, Nullable: true},
		{Name: "listening_band", Type: field.TypeFloat64, Nullable: true},
		{Name: "reading_band", Type: field.TypeFloat64, Nullable: true},
		{Name: "writing_band", Type: field.TypeFloat64, Nullable: true},
		{Name: "speaking_band", Type: field.TypeFloat64, Nullable: true},
		{Name: "overall_band", Type: field.TypeFloat64, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime},
	}
	// TestSessionsTable holds the schema information for the "test_sessions" table.
	TestSessionsTable = &schema.Table{
		Name:       "test_sessions",
		Columns:    TestSessionsColumns,
		PrimaryKey: []*schema.Column{TestSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testsession_status",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[6]},
			},
			{
				Name:    "testsession_current_section",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[3]},
			},
			{
				Name:    "testsession_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[16]},
			},
		},
	}
	// WritingTasksColumns holds the columns for the "writing_tasks" table.
	WritingTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_number", Type: field.TypeInt},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "min_words", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WritingTasksTable holds the schema information for the "writing_tasks" table.
	WritingTasksTable = &schema.Table{
		Name:       "writing_tasks",
		Columns:    WritingTasksColumns,
		PrimaryKey: []*schema.Column{WritingTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "writingtask_task_number_active",
				Unique:  false,
				Columns: []*schema.Column{WritingTasksColumns[1], WritingTasksColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerRecordsTable,
		AudioAssetsTable,
		EvaluationEventsTable,
		LlmRequestEventsTable,
		ListeningTestsTable,
		ReadingTestsTable,
		SpeakingPartsTable,
		TestSessionsTable,
		WritingTasksTable,
	}
)

func init() {
}
