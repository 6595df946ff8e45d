package store

import (
	"context"
	"errors"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
)

// Session status values.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusExpired    = "expired"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStaleSection is returned when a conditional section update
	// matched no row: the session moved on, finished, or expired since
	// the caller read it.
	ErrStaleSection = errors.New("session section changed concurrently")

	// ErrDuplicateKey is returned when an append hits a unique
	// idempotency key that already exists.
	ErrDuplicateKey = errors.New("idempotency key already used")
)

// Session is a candidate's test attempt as stored.
type Session struct {
	ID                string
	CandidateName     string
	CandidateEmail    string
	CurrentSection    section.Section
	WritingCompleted  bool
	SpeakingCompleted bool
	Status            string
	ListeningTestID   int
	ReadingTestID     int
	ListeningBand     *float64
	ReadingBand       *float64
	WritingBand       *float64
	SpeakingBand      *float64
	OverallBand       *float64
	StartedAt         time.Time
	CompletedAt       *time.Time
	LastActivityAt    time.Time
}

// NewSession carries the fields needed to create a session.
type NewSession struct {
	CandidateName   string
	CandidateEmail  string
	ListeningTestID int
	ReadingTestID   int
}

// SectionAdvance describes a conditional section transition. The update
// only applies while the session is in_progress at From; a mismatch
// returns ErrStaleSection.
type SectionAdvance struct {
	From         section.Section
	To           section.Section
	MarkWriting  bool
	MarkSpeaking bool
	OverallBand  *float64 // set when To is completed and all bands exist
}

// SessionQuery filters session listings.
type SessionQuery struct {
	Status string // empty = all
	Limit  int    // 0 = unlimited
}

// SessionRepo is the single write path for test sessions.
type SessionRepo interface {
	Create(ctx context.Context, data NewSession) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context, q SessionQuery) ([]*Session, error)

	// Advance applies a conditional forward transition.
	Advance(ctx context.Context, id string, adv SectionAdvance) error

	// SetSectionBand records a section band and bumps activity.
	SetSectionBand(ctx context.Context, id string, sec section.Section, band float64) error

	// SetOverallBand records the overall band once all sections have one.
	SetOverallBand(ctx context.Context, id string, band float64) error

	// Touch bumps last_activity_at so the idle sweep does not expire a
	// session the candidate is actively working in.
	Touch(ctx context.Context, id string) error

	// ExpireIdle marks in_progress sessions with no activity since cutoff
	// as expired. Returns the number of sessions expired.
	ExpireIdle(ctx context.Context, cutoff time.Time) (int, error)

	// CountByStatus returns session counts keyed by status.
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// Answer is one stored answer record.
type Answer struct {
	SessionID     string
	QuestionID    string
	Section       section.Section
	Answer        string
	TimeSpentSecs int
	ReceivedAt    time.Time
}

// AnswerRepo stores answer records with upsert semantics on
// (session, question, section).
type AnswerRepo interface {
	Upsert(ctx context.Context, a Answer) error
	BySession(ctx context.Context, sessionID string, sec section.Section) ([]*Answer, error)
}

// Evaluation is one stored AI evaluation result.
type Evaluation struct {
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	Section        section.Section
	TaskRef        string
	IdempotencyKey string
	Band           float64
	Criteria       map[string]float64
	Feedback       string
	Model          string
}

// EvaluationRepo appends and reads AI evaluation events.
type EvaluationRepo interface {
	Append(ctx context.Context, e Evaluation) error
	ByKey(ctx context.Context, idempotencyKey string) (*Evaluation, error)
	BySession(ctx context.Context, sessionID string) ([]*Evaluation, error)
}

// QueryOpts configures event queries with pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request record.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates request counts and token totals per purpose.
type LLMUsage struct {
	Purpose      string `json:"purpose"`
	Calls        int    `json:"calls"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	AvgLatencyMs int64  `json:"avg_latency_ms"`
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]*LLMUsage, error)
}

// ListeningTest is authored listening content. The JSON tags double as
// the admin API wire format.
type ListeningTest struct {
	ID           int                       `json:"id"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	AudioAssetID int                       `json:"audio_asset_id"`
	Sections     []schema.ListeningSection `json:"sections"`
	Active       bool                      `json:"active"`
	CreatedAt    time.Time                 `json:"created_at"`
}

// ReadingTest is authored reading content.
type ReadingTest struct {
	ID          int                     `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Passages    []schema.ReadingPassage `json:"passages"`
	Active      bool                    `json:"active"`
	CreatedAt   time.Time               `json:"created_at"`
}

// WritingTask is an authored writing prompt.
type WritingTask struct {
	ID         int       `json:"id"`
	TaskNumber int       `json:"task_number"`
	Prompt     string    `json:"prompt"`
	MinWords   int       `json:"min_words"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// SpeakingPart is an authored speaking prompt set.
type SpeakingPart struct {
	ID           int       `json:"id"`
	PartNumber   int       `json:"part_number"`
	Topic        string    `json:"topic"`
	Questions    []string  `json:"questions"`
	PrepSeconds  int       `json:"prep_seconds"`
	SpeakSeconds int       `json:"speak_seconds"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ContentRepo manages authored test content (admin CRUD).
type ContentRepo interface {
	CreateListeningTest(ctx context.Context, t ListeningTest) (*ListeningTest, error)
	ListListeningTests(ctx context.Context) ([]*ListeningTest, error)
	GetListeningTest(ctx context.Context, id int) (*ListeningTest, error)
	ActiveListeningTest(ctx context.Context) (*ListeningTest, error)

	CreateReadingTest(ctx context.Context, t ReadingTest) (*ReadingTest, error)
	ListReadingTests(ctx context.Context) ([]*ReadingTest, error)
	GetReadingTest(ctx context.Context, id int) (*ReadingTest, error)
	ActiveReadingTest(ctx context.Context) (*ReadingTest, error)

	CreateWritingTask(ctx context.Context, t WritingTask) (*WritingTask, error)
	ListWritingTasks(ctx context.Context) ([]*WritingTask, error)
	GetWritingTask(ctx context.Context, id int) (*WritingTask, error)

	CreateSpeakingPart(ctx context.Context, p SpeakingPart) (*SpeakingPart, error)
	ListSpeakingParts(ctx context.Context) ([]*SpeakingPart, error)
	GetSpeakingPart(ctx context.Context, id int) (*SpeakingPart, error)

	// SetActive flips the active flag on a content row. kind is one of
	// "listening", "reading", "writing", "speaking".
	SetActive(ctx context.Context, kind string, id int, active bool) error
}

// AudioAsset is stored audio metadata; bytes live on disk. StoredName is
// deliberately absent from the wire format.
type AudioAsset struct {
	ID          int       `json:"id"`
	FileName    string    `json:"file_name"`
	StoredName  string    `json:"-"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// AudioRepo manages uploaded audio metadata.
type AudioRepo interface {
	Create(ctx context.Context, a AudioAsset) (*AudioAsset, error)
	List(ctx context.Context) ([]*AudioAsset, error)
	Get(ctx context.Context, id int) (*AudioAsset, error)
}
