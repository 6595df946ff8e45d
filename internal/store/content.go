package store

import (
	"context"
	"fmt"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/readingtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) CreateListeningTest(ctx context.Context, t ListeningTest) (*ListeningTest, error) {
	builder := r.client.ListeningTest.Create().
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetSections(t.Sections).
		SetActive(t.Active)
	if t.AudioAssetID != 0 {
		builder = builder.SetAudioAssetID(t.AudioAssetID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create listening test: %w", err)
	}
	return listeningFromEnt(row), nil
}

func (r *contentRepo) ListListeningTests(ctx context.Context) ([]*ListeningTest, error) {
	rows, err := r.client.ListeningTest.Query().
		Order(ent.Desc(listeningtest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listening tests: %w", err)
	}
	out := make([]*ListeningTest, len(rows))
	for i, row := range rows {
		out[i] = listeningFromEnt(row)
	}
	return out, nil
}

func (r *contentRepo) GetListeningTest(ctx context.Context, id int) (*ListeningTest, error) {
	row, err := r.client.ListeningTest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get listening test: %w", err)
	}
	return listeningFromEnt(row), nil
}

func (r *contentRepo) ActiveListeningTest(ctx context.Context) (*ListeningTest, error) {
	row, err := r.client.ListeningTest.Query().
		Where(listeningtest.Active(true)).
		Order(ent.Desc(listeningtest.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query active listening test: %w", err)
	}
	return listeningFromEnt(row), nil
}

func (r *contentRepo) CreateReadingTest(ctx context.Context, t ReadingTest) (*ReadingTest, error) {
	row, err := r.client.ReadingTest.Create().
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetPassages(t.Passages).
		SetActive(t.Active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create reading test: %w", err)
	}
	return readingFromEnt(row), nil
}

func (r *contentRepo) ListReadingTests(ctx context.Context) ([]*ReadingTest, error) {
	rows, err := r.client.ReadingTest.Query().
		Order(ent.Desc(readingtest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reading tests: %w", err)
	}
	out := make([]*ReadingTest, len(rows))
	for i, row := range rows {
		out[i] = readingFromEnt(row)
	}
	return out, nil
}

func (r *contentRepo) GetReadingTest(ctx context.Context, id int) (*ReadingTest, error) {
	row, err := r.client.ReadingTest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reading test: %w", err)
	}
	return readingFromEnt(row), nil
}

func (r *contentRepo) ActiveReadingTest(ctx context.Context) (*ReadingTest, error) {
	row, err := r.client.ReadingTest.Query().
		Where(readingtest.Active(true)).
		Order(ent.Desc(readingtest.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query active reading test: %w", err)
	}
	return readingFromEnt(row), nil
}

func (r *contentRepo) CreateWritingTask(ctx context.Context, t WritingTask) (*WritingTask, error) {
	row, err := r.client.WritingTask.Create().
		SetTaskNumber(t.TaskNumber).
		SetPrompt(t.Prompt).
		SetMinWords(t.MinWords).
		SetActive(t.Active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create writing task: %w", err)
	}
	return writingFromEnt(row), nil
}

func (r *contentRepo) ListWritingTasks(ctx context.Context) ([]*WritingTask, error) {
	rows, err := r.client.WritingTask.Query().
		Order(ent.Asc(writingtask.FieldTaskNumber), ent.Desc(writingtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list writing tasks: %w", err)
	}
	out := make([]*WritingTask, len(rows))
	for i, row := range rows {
		out[i] = writingFromEnt(row)
	}
	return out, nil
}

func (r *contentRepo) GetWritingTask(ctx context.Context, id int) (*WritingTask, error) {
	row, err := r.client.WritingTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get writing task: %w", err)
	}
	return writingFromEnt(row), nil
}

func (r *contentRepo) CreateSpeakingPart(ctx context.Context, p SpeakingPart) (*SpeakingPart, error) {
	row, err := r.client.SpeakingPart.Create().
		SetPartNumber(p.PartNumber).
		SetTopic(p.Topic).
		SetQuestions(p.Questions).
		SetPrepSeconds(p.PrepSeconds).
		SetSpeakSeconds(p.SpeakSeconds).
		SetActive(p.Active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speaking part: %w", err)
	}
	return speakingFromEnt(row), nil
}

func (r *contentRepo) ListSpeakingParts(ctx context.Context) ([]*SpeakingPart, error) {
	rows, err := r.client.SpeakingPart.Query().
		Order(ent.Asc(speakingpart.FieldPartNumber), ent.Desc(speakingpart.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speaking parts: %w", err)
	}
	out := make([]*SpeakingPart, len(rows))
	for i, row := range rows {
		out[i] = speakingFromEnt(row)
	}
	return out, nil
}

func (r *contentRepo) GetSpeakingPart(ctx context.Context, id int) (*SpeakingPart, error) {
	row, err := r.client.SpeakingPart.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get speaking part: %w", err)
	}
	return speakingFromEnt(row), nil
}

func (r *contentRepo) SetActive(ctx context.Context, kind string, id int, active bool) error {
	var (
		n   int
		err error
	)
	switch kind {
	case "listening":
		n, err = r.client.ListeningTest.Update().
			Where(listeningtest.ID(id)).SetActive(active).Save(ctx)
	case "reading":
		n, err = r.client.ReadingTest.Update().
			Where(readingtest.ID(id)).SetActive(active).Save(ctx)
	case "writing":
		n, err = r.client.WritingTask.Update().
			Where(writingtask.ID(id)).SetActive(active).Save(ctx)
	case "speaking":
		n, err = r.client.SpeakingPart.Update().
			Where(speakingpart.ID(id)).SetActive(active).Save(ctx)
	default:
		return fmt.Errorf("unknown content kind %q", kind)
	}
	if err != nil {
		return fmt.Errorf("set %s active: %w", kind, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func listeningFromEnt(row *ent.ListeningTest) *ListeningTest {
	return &ListeningTest{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		AudioAssetID: row.AudioAssetID,
		Sections:     row.Sections,
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
	}
}

func readingFromEnt(row *ent.ReadingTest) *ReadingTest {
	return &ReadingTest{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Passages:    row.Passages,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
	}
}

func writingFromEnt(row *ent.WritingTask) *WritingTask {
	return &WritingTask{
		ID:         row.ID,
		TaskNumber: row.TaskNumber,
		Prompt:     row.Prompt,
		MinWords:   row.MinWords,
		Active:     row.Active,
		CreatedAt:  row.CreatedAt,
	}
}

func speakingFromEnt(row *ent.SpeakingPart) *SpeakingPart {
	return &SpeakingPart{
		ID:           row.ID,
		PartNumber:   row.PartNumber,
		Topic:        row.Topic,
		Questions:    row.Questions,
		PrepSeconds:  row.PrepSeconds,
		SpeakSeconds: row.SpeakSeconds,
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
	}
}
