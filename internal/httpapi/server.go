// Package httpapi exposes the candidate test flow and the admin console
// over HTTP. Handlers translate between JSON and the session, evaluation,
// and content services; no business rules live here.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/audio"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/evaluation"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/session"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

// SessionService is the slice of the session service the API uses.
type SessionService interface {
	Start(ctx context.Context, req session.StartRequest) (*store.Session, error)
	Get(ctx context.Context, id string) (*store.Session, error)
	List(ctx context.Context, q store.SessionQuery) ([]*store.Session, error)
	SubmitAnswer(ctx context.Context, sub session.AnswerSubmission) error
	SubmitAnswers(ctx context.Context, sessionID string, sec section.Section, items []session.AnswerItem) error
	CompleteSection(ctx context.Context, id string, from section.Section) (*store.Session, error)
	Results(ctx context.Context, id string) (*session.Results, error)
	RecordWritingBand(ctx context.Context, sessionID string, band float64) error
	RecordSpeakingBand(ctx context.Context, sessionID string, band float64) error
}

// Evaluator scores writing and speaking submissions.
type Evaluator interface {
	EvaluateWriting(ctx context.Context, req evaluation.WritingRequest) (*evaluation.Result, error)
	EvaluateSpeaking(ctx context.Context, req evaluation.SpeakingRequest) (*evaluation.Result, error)
}

// Server holds the API dependencies.
type Server struct {
	adminToken  string
	logRequests bool

	sessions   SessionService
	evaluator  Evaluator
	content    store.ContentRepo
	audioMeta  store.AudioRepo
	audioFiles *audio.Store

	sessionRepo store.SessionRepo // stats
	events      store.EventRepo   // stats
}

// Options carries the dependencies for NewServer.
type Options struct {
	AdminToken  string
	LogRequests bool
	Sessions    SessionService
	Evaluator   Evaluator
	Content     store.ContentRepo
	AudioMeta   store.AudioRepo
	AudioFiles  *audio.Store
	SessionRepo store.SessionRepo
	Events      store.EventRepo
}

func NewServer(opts Options) *Server {
	return &Server{
		adminToken:  opts.AdminToken,
		logRequests: opts.LogRequests,
		sessions:    opts.Sessions,
		evaluator:   opts.Evaluator,
		content:     opts.Content,
		audioMeta:   opts.AudioMeta,
		audioFiles:  opts.AudioFiles,
		sessionRepo: opts.SessionRepo,
		events:      opts.Events,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.logRequests {
		r.Use(gin.Logger())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	test := r.Group("/api/test")
	{
		test.POST("/sessions", s.startSession)
		test.GET("/sessions/:id", s.getSession)
		test.GET("/sessions/:id/sections/:name", s.sectionContent)
		test.POST("/sessions/:id/complete-section", s.completeSection)
		test.POST("/sessions/:id/answers", s.submitAnswers)
		test.GET("/sessions/:id/results", s.results)
		test.POST("/submit-answer", s.submitAnswer)
	}

	ai := r.Group("/api/ai")
	{
		ai.POST("/evaluate/writing", s.evaluateWriting)
		ai.POST("/evaluate/speaking", s.evaluateSpeaking)
	}

	r.GET("/api/audio/:id", s.streamAudio)

	admin := r.Group("/api/admin", s.requireAdmin)
	{
		admin.GET("/stats", s.adminStats)
		admin.GET("/sessions", s.adminSessions)
		admin.PATCH("/sessions/:id/bands", s.setSessionBand)
		admin.GET("/export", s.adminExport)

		admin.GET("/listening-tests", s.listListeningTests)
		admin.POST("/listening-tests", s.createListeningTest)
		admin.GET("/reading-tests", s.listReadingTests)
		admin.POST("/reading-tests", s.createReadingTest)
		admin.GET("/writing-tasks", s.listWritingTasks)
		admin.POST("/writing-tasks", s.createWritingTask)
		admin.GET("/speaking-parts", s.listSpeakingParts)
		admin.POST("/speaking-parts", s.createSpeakingPart)
		admin.PATCH("/content/:kind/:id/active", s.setContentActive)

		admin.GET("/audio", s.listAudio)
		admin.POST("/audio", s.uploadAudio)
		admin.GET("/audio/:id/file", s.streamAudio)
	}

	return r
}

// writeError maps service errors onto HTTP status codes. Conflicts carry
// enough context for the client to resync (e.g. the session's actual
// section).
func writeError(c *gin.Context, err error) {
	var wrong *session.ErrWrongSection
	if errors.As(err, &wrong) {
		c.JSON(http.StatusConflict, gin.H{
			"error":           wrong.Error(),
			"current_section": wrong.Current,
		})
		return
	}

	var short *scoring.ErrTooShort
	if errors.As(err, &short) {
		c.JSON(http.StatusBadRequest, gin.H{"error": short.Error()})
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, session.ErrNotActive),
		errors.Is(err, session.ErrNotCompleted),
		errors.Is(err, session.ErrSectionIncomplete),
		errors.Is(err, evaluation.ErrInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNoActiveContent):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, evaluation.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "evaluation service unavailable"})
	case errors.Is(err, audio.ErrUnsupportedType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, audio.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
