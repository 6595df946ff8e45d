package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/evaluation"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/session"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

type startSessionRequest struct {
	CandidateName  string `json:"candidate_name" binding:"required"`
	CandidateEmail string `json:"candidate_email"`
}

func (s *Server) startSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sess, err := s.sessions.Start(c.Request.Context(), session.StartRequest{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewSession(sess))
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewSession(sess))
}

// sectionContent serves the material for one section, but only the
// section the session is currently on. Requests for earlier or later
// sections get a conflict carrying the session's actual position.
func (s *Server) sectionContent(c *gin.Context) {
	sec, err := section.Parse(c.Param("name"))
	if err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	sess, err := s.sessions.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if sess.Status != store.StatusInProgress {
		writeError(c, session.ErrNotActive)
		return
	}
	if !section.CanEnter(sec, sess.CurrentSection) {
		writeError(c, &session.ErrWrongSection{Requested: sec, Current: sess.CurrentSection})
		return
	}

	switch sec {
	case section.Listening:
		t, err := s.content.GetListeningTest(ctx, sess.ListeningTestID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, viewListening(t))
	case section.Reading:
		t, err := s.content.GetReadingTest(ctx, sess.ReadingTestID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, viewReading(t))
	case section.Writing:
		tasks, err := s.activeWritingTasks(c)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks})
	case section.Speaking:
		parts, err := s.activeSpeakingParts(c)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"parts": parts})
	default:
		badRequest(c, fmt.Errorf("section %q has no content", sec))
	}
}

type completeSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

func (s *Server) completeSection(c *gin.Context) {
	var req completeSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sec, err := section.Parse(req.Section)
	if err != nil {
		badRequest(c, err)
		return
	}

	sess, err := s.sessions.CompleteSection(c.Request.Context(), c.Param("id"), sec)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewSession(sess))
}

type submitAnswerRequest struct {
	SessionID        string `json:"session_id" binding:"required"`
	QuestionID       string `json:"question_id" binding:"required"`
	Section          string `json:"section" binding:"required"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sec, err := section.Parse(req.Section)
	if err != nil {
		badRequest(c, err)
		return
	}

	err = s.sessions.SubmitAnswer(c.Request.Context(), session.AnswerSubmission{
		SessionID:     req.SessionID,
		QuestionID:    req.QuestionID,
		Section:       sec,
		Answer:        req.Answer,
		TimeSpentSecs: req.TimeSpentSeconds,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type answerItemRequest struct {
	QuestionID       string `json:"question_id" binding:"required"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type submitAnswersRequest struct {
	Section string              `json:"section" binding:"required"`
	Answers []answerItemRequest `json:"answers" binding:"required"`
}

// submitAnswers flushes a batch of answers in one request, used by the
// client's periodic autosave.
func (s *Server) submitAnswers(c *gin.Context) {
	var req submitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sec, err := section.Parse(req.Section)
	if err != nil {
		badRequest(c, err)
		return
	}

	items := make([]session.AnswerItem, 0, len(req.Answers))
	for _, a := range req.Answers {
		items = append(items, session.AnswerItem{
			QuestionID:    a.QuestionID,
			Answer:        a.Answer,
			TimeSpentSecs: a.TimeSpentSeconds,
		})
	}

	if err := s.sessions.SubmitAnswers(c.Request.Context(), c.Param("id"), sec, items); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) results(c *gin.Context) {
	res, err := s.sessions.Results(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	evals := make([]gin.H, 0, len(res.Evaluations))
	for _, e := range res.Evaluations {
		evals = append(evals, gin.H{
			"section":  e.Section,
			"task_ref": e.TaskRef,
			"band":     e.Band,
			"criteria": e.Criteria,
			"feedback": e.Feedback,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"session":     viewSession(res.Session),
		"descriptor":  res.Descriptor,
		"evaluations": evals,
	})
}

type evaluateWritingRequest struct {
	SessionID      string `json:"session_id" binding:"required"`
	TaskNumber     int    `json:"task_number" binding:"required"`
	Essay          string `json:"essay" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (s *Server) evaluateWriting(c *gin.Context) {
	var req evaluateWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.TaskNumber != 1 && req.TaskNumber != 2 {
		badRequest(c, fmt.Errorf("task_number must be 1 or 2"))
		return
	}
	ctx := c.Request.Context()

	if err := s.requireSection(c, req.SessionID, section.Writing); err != nil {
		return
	}

	task, err := s.writingTask(c, req.TaskNumber)
	if err != nil {
		writeError(c, err)
		return
	}

	taskRef := fmt.Sprintf("task-%d", req.TaskNumber)
	res, err := s.evaluator.EvaluateWriting(ctx, evaluation.WritingRequest{
		SessionID:      req.SessionID,
		TaskRef:        taskRef,
		TaskNumber:     req.TaskNumber,
		Prompt:         task.Prompt,
		Essay:          req.Essay,
		MinWords:       task.MinWords,
		IdempotencyKey: submissionKey(req.IdempotencyKey, req.SessionID, taskRef, req.Essay),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView{
		Band:     res.Band,
		Criteria: res.Criteria,
		Feedback: res.Feedback,
		Replayed: res.Replayed,
	})
}

type evaluateSpeakingRequest struct {
	SessionID      string `json:"session_id" binding:"required"`
	PartNumber     int    `json:"part_number" binding:"required"`
	Transcript     string `json:"transcript" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (s *Server) evaluateSpeaking(c *gin.Context) {
	var req evaluateSpeakingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.PartNumber < 1 || req.PartNumber > 3 {
		badRequest(c, fmt.Errorf("part_number must be 1, 2, or 3"))
		return
	}

	if err := s.requireSection(c, req.SessionID, section.Speaking); err != nil {
		return
	}

	part, err := s.speakingPart(c, req.PartNumber)
	if err != nil {
		writeError(c, err)
		return
	}

	partRef := fmt.Sprintf("part-%d", req.PartNumber)
	res, err := s.evaluator.EvaluateSpeaking(c.Request.Context(), evaluation.SpeakingRequest{
		SessionID:      req.SessionID,
		PartRef:        partRef,
		PartNumber:     req.PartNumber,
		Topic:          part.Topic,
		Questions:      part.Questions,
		Transcript:     req.Transcript,
		IdempotencyKey: submissionKey(req.IdempotencyKey, req.SessionID, partRef, req.Transcript),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView{
		Band:     res.Band,
		Criteria: res.Criteria,
		Feedback: res.Feedback,
		Replayed: res.Replayed,
	})
}

func (s *Server) streamAudio(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid audio id"))
		return
	}

	meta, err := s.audioMeta.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	f, err := s.audioFiles.Open(meta.StoredName)
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	c.DataFromReader(http.StatusOK, meta.SizeBytes, meta.ContentType, f, nil)
}

// requireSection verifies the session is in progress and currently at
// target, writing the error response itself on failure.
func (s *Server) requireSection(c *gin.Context, sessionID string, target section.Section) error {
	sess, err := s.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return err
	}
	if sess.Status != store.StatusInProgress {
		writeError(c, session.ErrNotActive)
		return session.ErrNotActive
	}
	if !section.CanEnter(target, sess.CurrentSection) {
		werr := &session.ErrWrongSection{Requested: target, Current: sess.CurrentSection}
		writeError(c, werr)
		return werr
	}
	return nil
}

func (s *Server) writingTask(c *gin.Context, taskNumber int) (*store.WritingTask, error) {
	tasks, err := s.content.ListWritingTasks(c.Request.Context())
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.Active && t.TaskNumber == taskNumber {
			return t, nil
		}
	}
	return nil, session.ErrNoActiveContent
}

func (s *Server) speakingPart(c *gin.Context, partNumber int) (*store.SpeakingPart, error) {
	parts, err := s.content.ListSpeakingParts(c.Request.Context())
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		if p.Active && p.PartNumber == partNumber {
			return p, nil
		}
	}
	return nil, session.ErrNoActiveContent
}

func (s *Server) activeWritingTasks(c *gin.Context) ([]writingTaskView, error) {
	tasks, err := s.content.ListWritingTasks(c.Request.Context())
	if err != nil {
		return nil, err
	}
	var out []writingTaskView
	for _, t := range tasks {
		if !t.Active {
			continue
		}
		out = append(out, writingTaskView{
			ID:         t.ID,
			TaskNumber: t.TaskNumber,
			Prompt:     t.Prompt,
			MinWords:   t.MinWords,
		})
	}
	return out, nil
}

func (s *Server) activeSpeakingParts(c *gin.Context) ([]speakingPartView, error) {
	parts, err := s.content.ListSpeakingParts(c.Request.Context())
	if err != nil {
		return nil, err
	}
	var out []speakingPartView
	for _, p := range parts {
		if !p.Active {
			continue
		}
		out = append(out, speakingPartView{
			ID:           p.ID,
			PartNumber:   p.PartNumber,
			Topic:        p.Topic,
			Questions:    p.Questions,
			PrepSeconds:  p.PrepSeconds,
			SpeakSeconds: p.SpeakSeconds,
		})
	}
	return out, nil
}

// submissionKey returns the client-provided idempotency key, or derives a
// stable one from the submission itself so a double-click dedupes even
// without client cooperation.
func submissionKey(provided, sessionID, ref, body string) string {
	if provided != "" {
		return provided
	}
	sum := sha256.Sum256([]byte(sessionID + "\x00" + ref + "\x00" + body))
	return hex.EncodeToString(sum[:])
}
