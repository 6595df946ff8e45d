package httpapi

import (
	"fmt"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

// sectionState is one row of the candidate's progress view.
type sectionState struct {
	Name  section.Section `json:"name"`
	State string          `json:"state"` // done, current, locked
}

// sessionView is the candidate-facing session representation.
type sessionView struct {
	ID             string          `json:"id"`
	CandidateName  string          `json:"candidate_name"`
	CurrentSection section.Section `json:"current_section"`
	Status         string          `json:"status"`
	Sections       []sectionState  `json:"sections"`
	ListeningBand  *float64        `json:"listening_band,omitempty"`
	ReadingBand    *float64        `json:"reading_band,omitempty"`
	WritingBand    *float64        `json:"writing_band,omitempty"`
	SpeakingBand   *float64        `json:"speaking_band,omitempty"`
	OverallBand    *float64        `json:"overall_band,omitempty"`
	StartedAt      time.Time       `json:"started_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
}

func viewSession(s *store.Session) sessionView {
	states := make([]sectionState, 0, len(section.All()))
	for _, sec := range section.All() {
		state := "locked"
		switch {
		case s.CurrentSection == section.Completed, section.Before(sec, s.CurrentSection):
			state = "done"
		case sec == s.CurrentSection:
			state = "current"
		}
		states = append(states, sectionState{Name: sec, State: state})
	}

	return sessionView{
		ID:             s.ID,
		CandidateName:  s.CandidateName,
		CurrentSection: s.CurrentSection,
		Status:         s.Status,
		Sections:       states,
		ListeningBand:  s.ListeningBand,
		ReadingBand:    s.ReadingBand,
		WritingBand:    s.WritingBand,
		SpeakingBand:   s.SpeakingBand,
		OverallBand:    s.OverallBand,
		StartedAt:      s.StartedAt,
		CompletedAt:    s.CompletedAt,
	}
}

// questionView is a question with the answer key stripped.
type questionView struct {
	ID      string   `json:"id"`
	Number  int      `json:"number"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

func viewQuestions(qs []schema.Question) []questionView {
	out := make([]questionView, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionView{
			ID:      q.ID,
			Number:  q.Number,
			Type:    q.Type,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return out
}

type listeningSectionView struct {
	Title        string         `json:"title"`
	Instructions string         `json:"instructions"`
	Questions    []questionView `json:"questions"`
}

type listeningContentView struct {
	Title    string                 `json:"title"`
	AudioURL string                 `json:"audio_url,omitempty"`
	Sections []listeningSectionView `json:"sections"`
}

func viewListening(t *store.ListeningTest) listeningContentView {
	v := listeningContentView{Title: t.Title}
	if t.AudioAssetID != 0 {
		v.AudioURL = fmt.Sprintf("/api/audio/%d", t.AudioAssetID)
	}
	for _, sec := range t.Sections {
		v.Sections = append(v.Sections, listeningSectionView{
			Title:        sec.Title,
			Instructions: sec.Instructions,
			Questions:    viewQuestions(sec.Questions),
		})
	}
	return v
}

type passageView struct {
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Questions []questionView `json:"questions"`
}

type readingContentView struct {
	Title    string        `json:"title"`
	Passages []passageView `json:"passages"`
}

func viewReading(t *store.ReadingTest) readingContentView {
	v := readingContentView{Title: t.Title}
	for _, p := range t.Passages {
		v.Passages = append(v.Passages, passageView{
			Title:     p.Title,
			Body:      p.Body,
			Questions: viewQuestions(p.Questions),
		})
	}
	return v
}

type writingTaskView struct {
	ID         int    `json:"id"`
	TaskNumber int    `json:"task_number"`
	Prompt     string `json:"prompt"`
	MinWords   int    `json:"min_words"`
}

type speakingPartView struct {
	ID           int      `json:"id"`
	PartNumber   int      `json:"part_number"`
	Topic        string   `json:"topic"`
	Questions    []string `json:"questions"`
	PrepSeconds  int      `json:"prep_seconds"`
	SpeakSeconds int      `json:"speak_seconds"`
}

// evaluationView is the response for an AI evaluation call.
type evaluationView struct {
	Band     float64            `json:"band"`
	Criteria map[string]float64 `json:"criteria"`
	Feedback string             `json:"feedback"`
	Replayed bool               `json:"replayed"`
}
