package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/export"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

// requireAdmin authenticates admin requests with a bearer token compared
// in constant time. An empty configured token disables the admin API.
func (s *Server) requireAdmin(c *gin.Context) {
	if s.adminToken == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin API disabled"})
		return
	}

	got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(got), []byte(s.adminToken)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
		return
	}
	c.Next()
}

func (s *Server) adminStats(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := s.sessionRepo.CountByStatus(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	usage, err := s.events.LLMUsageByPurpose(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions":  counts,
		"llm_usage": usage,
	})
}

func (s *Server) adminSessions(c *gin.Context) {
	q := store.SessionQuery{Status: c.Query("status")}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			badRequest(c, fmt.Errorf("invalid limit"))
			return
		}
		q.Limit = n
	}

	sessions, err := s.sessions.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	views := make([]sessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, viewSession(sess))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": views})
}

type setBandRequest struct {
	Section string   `json:"section" binding:"required"`
	Band    *float64 `json:"band" binding:"required"`
}

// setSessionBand re-scores a writing or speaking submission after manual
// review. Listening and reading are graded from the answer key and cannot
// be overridden.
func (s *Server) setSessionBand(c *gin.Context) {
	var req setBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !scoring.Valid(*req.Band) {
		badRequest(c, fmt.Errorf("band must be between 0 and 9 in half steps"))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	var err error
	switch section.Section(req.Section) {
	case section.Writing:
		err = s.sessions.RecordWritingBand(ctx, id, *req.Band)
	case section.Speaking:
		err = s.sessions.RecordSpeakingBand(ctx, id, *req.Band)
	default:
		badRequest(c, fmt.Errorf("section must be writing or speaking"))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) adminExport(c *gin.Context) {
	sessions, err := s.sessions.List(c.Request.Context(), store.SessionQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	name := fmt.Sprintf("sessions-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.WriteSessions(c.Writer, sessions); err != nil {
		// Headers already went out; record the failure on the context.
		_ = c.Error(err)
	}
}

func (s *Server) listListeningTests(c *gin.Context) {
	tests, err := s.content.ListListeningTests(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

func (s *Server) createListeningTest(c *gin.Context) {
	var t store.ListeningTest
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, err)
		return
	}
	if t.Title == "" {
		badRequest(c, fmt.Errorf("title required"))
		return
	}

	created, err := s.content.CreateListeningTest(c.Request.Context(), t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) listReadingTests(c *gin.Context) {
	tests, err := s.content.ListReadingTests(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

func (s *Server) createReadingTest(c *gin.Context) {
	var t store.ReadingTest
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, err)
		return
	}
	if t.Title == "" {
		badRequest(c, fmt.Errorf("title required"))
		return
	}

	created, err := s.content.CreateReadingTest(c.Request.Context(), t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) listWritingTasks(c *gin.Context) {
	tasks, err := s.content.ListWritingTasks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) createWritingTask(c *gin.Context) {
	var t store.WritingTask
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, err)
		return
	}
	if t.TaskNumber != 1 && t.TaskNumber != 2 {
		badRequest(c, fmt.Errorf("task_number must be 1 or 2"))
		return
	}
	if t.Prompt == "" {
		badRequest(c, fmt.Errorf("prompt required"))
		return
	}

	created, err := s.content.CreateWritingTask(c.Request.Context(), t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) listSpeakingParts(c *gin.Context) {
	parts, err := s.content.ListSpeakingParts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parts": parts})
}

func (s *Server) createSpeakingPart(c *gin.Context) {
	var p store.SpeakingPart
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if p.PartNumber < 1 || p.PartNumber > 3 {
		badRequest(c, fmt.Errorf("part_number must be 1, 2, or 3"))
		return
	}

	created, err := s.content.CreateSpeakingPart(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

var contentKinds = map[string]bool{
	"listening": true,
	"reading":   true,
	"writing":   true,
	"speaking":  true,
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (s *Server) setContentActive(c *gin.Context) {
	kind := c.Param("kind")
	if !contentKinds[kind] {
		badRequest(c, fmt.Errorf("unknown content kind %q", kind))
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid id"))
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.content.SetActive(c.Request.Context(), kind, id, *req.Active); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAudio(c *gin.Context) {
	assets, err := s.audioMeta.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func (s *Server) uploadAudio(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, fmt.Errorf("file field required"))
		return
	}

	src, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	storedName, size, err := s.audioFiles.Save(src, contentType)
	if err != nil {
		writeError(c, err)
		return
	}

	asset, err := s.audioMeta.Create(c.Request.Context(), store.AudioAsset{
		FileName:    fh.Filename,
		StoredName:  storedName,
		ContentType: contentType,
		SizeBytes:   size,
	})
	if err != nil {
		s.audioFiles.Remove(storedName)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}
