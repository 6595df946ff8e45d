// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/answerrecord"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/evaluationevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/llmrequestevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/readingtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerRecord    = "AnswerRecord"
	TypeAudioAsset      = "AudioAsset"
	TypeEvaluationEvent = "EvaluationEvent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeListeningTest   = "ListeningTest"
	TypeReadingTest     = "ReadingTest"
	TypeSpeakingPart    = "SpeakingPart"
	TypeTestSession     = "TestSession"
	TypeWritingTask     = "WritingTask"
)

// AnswerRecordMutation represents an operation that mutates the AnswerRecord nodes in the graph.
type AnswerRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	session_id         *string
	question_id        *string
	section            *string
	answer             *string
	time_spent_secs    *int
	addtime_spent_secs *int
	received_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AnswerRecord, error)
	predicates         []predicate.AnswerRecord
}

var _ ent.Mutation = (*AnswerRecordMutation)(nil)

// answerrecordOption allows management of the mutation configuration using functional options.
type answerrecordOption func(*AnswerRecordMutation)

// newAnswerRecordMutation creates new mutation for the AnswerRecord entity.
func newAnswerRecordMutation(c config, op Op, opts ...answerrecordOption) *AnswerRecordMutation {
	m := &AnswerRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerRecordID sets the ID field of the mutation.
func withAnswerRecordID(id int) answerrecordOption {
	return func(m *AnswerRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerRecord
		)
		m.oldValue = func(ctx context.Context) (*AnswerRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerRecord sets the old AnswerRecord of the mutation.
func withAnswerRecord(node *AnswerRecord) answerrecordOption {
	return func(m *AnswerRecordMutation) {
		m.oldValue = func(context.Context) (*AnswerRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AnswerRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerRecordMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerRecordMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerRecordMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetSection sets the "section" field.
func (m *AnswerRecordMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *AnswerRecordMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *AnswerRecordMutation) ResetSection() {
	m.section = nil
}

// SetAnswer sets the "answer" field.
func (m *AnswerRecordMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *AnswerRecordMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *AnswerRecordMutation) ResetAnswer() {
	m.answer = nil
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *AnswerRecordMutation) SetTimeSpentSecs(i int) {
	m.time_spent_secs = &i
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *AnswerRecordMutation) TimeSpentSecs() (r int, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldTimeSpentSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (m *AnswerRecordMutation) AddTimeSpentSecs(i int) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += i
	} else {
		m.addtime_spent_secs = &i
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *AnswerRecordMutation) AddedTimeSpentSecs() (r int, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *AnswerRecordMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *AnswerRecordMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *AnswerRecordMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *AnswerRecordMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the AnswerRecordMutation builder.
func (m *AnswerRecordMutation) Where(ps ...predicate.AnswerRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerRecord).
func (m *AnswerRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, answerrecord.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, answerrecord.FieldQuestionID)
	}
	if m.section != nil {
		fields = append(fields, answerrecord.FieldSection)
	}
	if m.answer != nil {
		fields = append(fields, answerrecord.FieldAnswer)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, answerrecord.FieldTimeSpentSecs)
	}
	if m.received_at != nil {
		fields = append(fields, answerrecord.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerrecord.FieldSessionID:
		return m.SessionID()
	case answerrecord.FieldQuestionID:
		return m.QuestionID()
	case answerrecord.FieldSection:
		return m.Section()
	case answerrecord.FieldAnswer:
		return m.Answer()
	case answerrecord.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	case answerrecord.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case answerrecord.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answerrecord.FieldSection:
		return m.OldSection(ctx)
	case answerrecord.FieldAnswer:
		return m.OldAnswer(ctx)
	case answerrecord.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	case answerrecord.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answerrecord.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answerrecord.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case answerrecord.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case answerrecord.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	case answerrecord.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtime_spent_secs != nil {
		fields = append(fields, answerrecord.FieldTimeSpentSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerrecord.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerrecord.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerRecordMutation) ResetField(name string) error {
	switch name {
	case answerrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answerrecord.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answerrecord.FieldSection:
		m.ResetSection()
		return nil
	case answerrecord.FieldAnswer:
		m.ResetAnswer()
		return nil
	case answerrecord.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	case answerrecord.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerRecord edge %s", name)
}

// AudioAssetMutation represents an operation that mutates the AudioAsset nodes in the graph.
type AudioAssetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	file_name     *string
	stored_name   *string
	content_type  *string
	size_bytes    *int64
	addsize_bytes *int64
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AudioAsset, error)
	predicates    []predicate.AudioAsset
}

var _ ent.Mutation = (*AudioAssetMutation)(nil)

// audioassetOption allows management of the mutation configuration using functional options.
type audioassetOption func(*AudioAssetMutation)

// newAudioAssetMutation creates new mutation for the AudioAsset entity.
func newAudioAssetMutation(c config, op Op, opts ...audioassetOption) *AudioAssetMutation {
	m := &AudioAssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAudioAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAudioAssetID sets the ID field of the mutation.
func withAudioAssetID(id int) audioassetOption {
	return func(m *AudioAssetMutation) {
		var (
			err   error
			once  sync.Once
			value *AudioAsset
		)
		m.oldValue = func(ctx context.Context) (*AudioAsset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AudioAsset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudioAsset sets the old AudioAsset of the mutation.
func withAudioAsset(node *AudioAsset) audioassetOption {
	return func(m *AudioAssetMutation) {
		m.oldValue = func(context.Context) (*AudioAsset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AudioAssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AudioAssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AudioAssetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AudioAssetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AudioAsset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileName sets the "file_name" field.
func (m *AudioAssetMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *AudioAssetMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *AudioAssetMutation) ResetFileName() {
	m.file_name = nil
}

// SetStoredName sets the "stored_name" field.
func (m *AudioAssetMutation) SetStoredName(s string) {
	m.stored_name = &s
}

// StoredName returns the value of the "stored_name" field in the mutation.
func (m *AudioAssetMutation) StoredName() (r string, exists bool) {
	v := m.stored_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredName returns the old "stored_name" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldStoredName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredName: %w", err)
	}
	return oldValue.StoredName, nil
}

// ResetStoredName resets all changes to the "stored_name" field.
func (m *AudioAssetMutation) ResetStoredName() {
	m.stored_name = nil
}

// SetContentType sets the "content_type" field.
func (m *AudioAssetMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *AudioAssetMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *AudioAssetMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AudioAssetMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AudioAssetMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AudioAssetMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AudioAssetMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AudioAssetMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *AudioAssetMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *AudioAssetMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *AudioAssetMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// Where appends a list predicates to the AudioAssetMutation builder.
func (m *AudioAssetMutation) Where(ps ...predicate.AudioAsset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AudioAssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AudioAssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AudioAsset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AudioAssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AudioAssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AudioAsset).
func (m *AudioAssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AudioAssetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.file_name != nil {
		fields = append(fields, audioasset.FieldFileName)
	}
	if m.stored_name != nil {
		fields = append(fields, audioasset.FieldStoredName)
	}
	if m.content_type != nil {
		fields = append(fields, audioasset.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, audioasset.FieldSizeBytes)
	}
	if m.uploaded_at != nil {
		fields = append(fields, audioasset.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AudioAssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audioasset.FieldFileName:
		return m.FileName()
	case audioasset.FieldStoredName:
		return m.StoredName()
	case audioasset.FieldContentType:
		return m.ContentType()
	case audioasset.FieldSizeBytes:
		return m.SizeBytes()
	case audioasset.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AudioAssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audioasset.FieldFileName:
		return m.OldFileName(ctx)
	case audioasset.FieldStoredName:
		return m.OldStoredName(ctx)
	case audioasset.FieldContentType:
		return m.OldContentType(ctx)
	case audioasset.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case audioasset.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AudioAsset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudioAssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audioasset.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case audioasset.FieldStoredName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredName(v)
		return nil
	case audioasset.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case audioasset.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case audioasset.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AudioAsset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AudioAssetMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, audioasset.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AudioAssetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audioasset.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudioAssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audioasset.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown AudioAsset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AudioAssetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AudioAssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AudioAssetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AudioAsset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AudioAssetMutation) ResetField(name string) error {
	switch name {
	case audioasset.FieldFileName:
		m.ResetFileName()
		return nil
	case audioasset.FieldStoredName:
		m.ResetStoredName()
		return nil
	case audioasset.FieldContentType:
		m.ResetContentType()
		return nil
	case audioasset.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case audioasset.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown AudioAsset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AudioAssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AudioAssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AudioAssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AudioAssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AudioAssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AudioAssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AudioAssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AudioAsset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AudioAssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AudioAsset edge %s", name)
}

// EvaluationEventMutation represents an operation that mutates the EvaluationEvent nodes in the graph.
type EvaluationEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	session_id      *string
	section         *string
	task_ref        *string
	idempotency_key *string
	band            *float64
	addband         *float64
	criteria        *map[string]float64
	feedback        *string
	model           *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*EvaluationEvent, error)
	predicates      []predicate.EvaluationEvent
}

var _ ent.Mutation = (*EvaluationEventMutation)(nil)

// evaluationeventOption allows management of the mutation configuration using functional options.
type evaluationeventOption func(*EvaluationEventMutation)

// newEvaluationEventMutation creates new mutation for the EvaluationEvent entity.
func newEvaluationEventMutation(c config, op Op, opts ...evaluationeventOption) *EvaluationEventMutation {
	m := &EvaluationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationEventID sets the ID field of the mutation.
func withEvaluationEventID(id int) evaluationeventOption {
	return func(m *EvaluationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationEvent
		)
		m.oldValue = func(ctx context.Context) (*EvaluationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationEvent sets the old EvaluationEvent of the mutation.
func withEvaluationEvent(node *EvaluationEvent) evaluationeventOption {
	return func(m *EvaluationEventMutation) {
		m.oldValue = func(context.Context) (*EvaluationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *EvaluationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EvaluationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EvaluationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EvaluationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EvaluationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvaluationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvaluationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvaluationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *EvaluationEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EvaluationEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EvaluationEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSection sets the "section" field.
func (m *EvaluationEventMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *EvaluationEventMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *EvaluationEventMutation) ResetSection() {
	m.section = nil
}

// SetTaskRef sets the "task_ref" field.
func (m *EvaluationEventMutation) SetTaskRef(s string) {
	m.task_ref = &s
}

// TaskRef returns the value of the "task_ref" field in the mutation.
func (m *EvaluationEventMutation) TaskRef() (r string, exists bool) {
	v := m.task_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskRef returns the old "task_ref" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldTaskRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskRef: %w", err)
	}
	return oldValue.TaskRef, nil
}

// ResetTaskRef resets all changes to the "task_ref" field.
func (m *EvaluationEventMutation) ResetTaskRef() {
	m.task_ref = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *EvaluationEventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *EvaluationEventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *EvaluationEventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetBand sets the "band" field.
func (m *EvaluationEventMutation) SetBand(f float64) {
	m.band = &f
	m.addband = nil
}

// Band returns the value of the "band" field in the mutation.
func (m *EvaluationEventMutation) Band() (r float64, exists bool) {
	v := m.band
	if v == nil {
		return
	}
	return *v, true
}

// OldBand returns the old "band" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBand: %w", err)
	}
	return oldValue.Band, nil
}

// AddBand adds f to the "band" field.
func (m *EvaluationEventMutation) AddBand(f float64) {
	if m.addband != nil {
		*m.addband += f
	} else {
		m.addband = &f
	}
}

// AddedBand returns the value that was added to the "band" field in this mutation.
func (m *EvaluationEventMutation) AddedBand() (r float64, exists bool) {
	v := m.addband
	if v == nil {
		return
	}
	return *v, true
}

// ResetBand resets all changes to the "band" field.
func (m *EvaluationEventMutation) ResetBand() {
	m.band = nil
	m.addband = nil
}

// SetCriteria sets the "criteria" field.
func (m *EvaluationEventMutation) SetCriteria(value map[string]float64) {
	m.criteria = &value
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *EvaluationEventMutation) Criteria() (r map[string]float64, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldCriteria(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// ClearCriteria clears the value of the "criteria" field.
func (m *EvaluationEventMutation) ClearCriteria() {
	m.criteria = nil
	m.clearedFields[evaluationevent.FieldCriteria] = struct{}{}
}

// CriteriaCleared returns if the "criteria" field was cleared in this mutation.
func (m *EvaluationEventMutation) CriteriaCleared() bool {
	_, ok := m.clearedFields[evaluationevent.FieldCriteria]
	return ok
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *EvaluationEventMutation) ResetCriteria() {
	m.criteria = nil
	delete(m.clearedFields, evaluationevent.FieldCriteria)
}

// SetFeedback sets the "feedback" field.
func (m *EvaluationEventMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *EvaluationEventMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *EvaluationEventMutation) ResetFeedback() {
	m.feedback = nil
}

// SetModel sets the "model" field.
func (m *EvaluationEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *EvaluationEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the EvaluationEvent entity.
// If the EvaluationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *EvaluationEventMutation) ResetModel() {
	m.model = nil
}

// Where appends a list predicates to the EvaluationEventMutation builder.
func (m *EvaluationEventMutation) Where(ps ...predicate.EvaluationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationEvent).
func (m *EvaluationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, evaluationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, evaluationevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, evaluationevent.FieldSessionID)
	}
	if m.section != nil {
		fields = append(fields, evaluationevent.FieldSection)
	}
	if m.task_ref != nil {
		fields = append(fields, evaluationevent.FieldTaskRef)
	}
	if m.idempotency_key != nil {
		fields = append(fields, evaluationevent.FieldIdempotencyKey)
	}
	if m.band != nil {
		fields = append(fields, evaluationevent.FieldBand)
	}
	if m.criteria != nil {
		fields = append(fields, evaluationevent.FieldCriteria)
	}
	if m.feedback != nil {
		fields = append(fields, evaluationevent.FieldFeedback)
	}
	if m.model != nil {
		fields = append(fields, evaluationevent.FieldModel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.Sequence()
	case evaluationevent.FieldTimestamp:
		return m.Timestamp()
	case evaluationevent.FieldSessionID:
		return m.SessionID()
	case evaluationevent.FieldSection:
		return m.Section()
	case evaluationevent.FieldTaskRef:
		return m.TaskRef()
	case evaluationevent.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case evaluationevent.FieldBand:
		return m.Band()
	case evaluationevent.FieldCriteria:
		return m.Criteria()
	case evaluationevent.FieldFeedback:
		return m.Feedback()
	case evaluationevent.FieldModel:
		return m.Model()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.OldSequence(ctx)
	case evaluationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case evaluationevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case evaluationevent.FieldSection:
		return m.OldSection(ctx)
	case evaluationevent.FieldTaskRef:
		return m.OldTaskRef(ctx)
	case evaluationevent.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case evaluationevent.FieldBand:
		return m.OldBand(ctx)
	case evaluationevent.FieldCriteria:
		return m.OldCriteria(ctx)
	case evaluationevent.FieldFeedback:
		return m.OldFeedback(ctx)
	case evaluationevent.FieldModel:
		return m.OldModel(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case evaluationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case evaluationevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case evaluationevent.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case evaluationevent.FieldTaskRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskRef(v)
		return nil
	case evaluationevent.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case evaluationevent.FieldBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBand(v)
		return nil
	case evaluationevent.FieldCriteria:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case evaluationevent.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case evaluationevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, evaluationevent.FieldSequence)
	}
	if m.addband != nil {
		fields = append(fields, evaluationevent.FieldBand)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationevent.FieldSequence:
		return m.AddedSequence()
	case evaluationevent.FieldBand:
		return m.AddedBand()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case evaluationevent.FieldBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBand(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationevent.FieldCriteria) {
		fields = append(fields, evaluationevent.FieldCriteria)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationEventMutation) ClearField(name string) error {
	switch name {
	case evaluationevent.FieldCriteria:
		m.ClearCriteria()
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationEventMutation) ResetField(name string) error {
	switch name {
	case evaluationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case evaluationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case evaluationevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case evaluationevent.FieldSection:
		m.ResetSection()
		return nil
	case evaluationevent.FieldTaskRef:
		m.ResetTaskRef()
		return nil
	case evaluationevent.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case evaluationevent.FieldBand:
		m.ResetBand()
		return nil
	case evaluationevent.FieldCriteria:
		m.ResetCriteria()
		return nil
	case evaluationevent.FieldFeedback:
		m.ResetFeedback()
		return nil
	case evaluationevent.FieldModel:
		m.ResetModel()
		return nil
	}
	return fmt.Errorf("unknown EvaluationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvaluationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvaluationEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// ListeningTestMutation represents an operation that mutates the ListeningTest nodes in the graph.
type ListeningTestMutation struct {
	config
	op                Op
	typ               string
	id                *int
	title             *string
	description       *string
	audio_asset_id    *int
	addaudio_asset_id *int
	sections          *[]schema.ListeningSection
	appendsections    []schema.ListeningSection
	active            *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ListeningTest, error)
	predicates        []predicate.ListeningTest
}

var _ ent.Mutation = (*ListeningTestMutation)(nil)

// listeningtestOption allows management of the mutation configuration using functional options.
type listeningtestOption func(*ListeningTestMutation)

// newListeningTestMutation creates new mutation for the ListeningTest entity.
func newListeningTestMutation(c config, op Op, opts ...listeningtestOption) *ListeningTestMutation {
	m := &ListeningTestMutation{
		config:        c,
		op:            op,
		typ:           TypeListeningTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListeningTestID sets the ID field of the mutation.
func withListeningTestID(id int) listeningtestOption {
	return func(m *ListeningTestMutation) {
		var (
			err   error
			once  sync.Once
			value *ListeningTest
		)
		m.oldValue = func(ctx context.Context) (*ListeningTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ListeningTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListeningTest sets the old ListeningTest of the mutation.
func withListeningTest(node *ListeningTest) listeningtestOption {
	return func(m *ListeningTestMutation) {
		m.oldValue = func(context.Context) (*ListeningTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListeningTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListeningTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListeningTestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListeningTestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ListeningTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ListeningTestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ListeningTestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ListeningTest entity.
// If the ListeningTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListeningTestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ListeningTestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ListeningTestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ListeningTestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ListeningTest entity.
// If the ListeningTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListeningTestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ListeningTestMutation) ResetDescription() {
	m.description = nil
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (m *ListeningTestMutation) SetAudioAssetID(i int) {
	m.audio_asset_id = &i
	m.addaudio_asset_id = nil
}

// AudioAssetID returns the value of the "audio_asset_id" field in the mutation.
func (m *ListeningTestMutation) AudioAssetID() (r int, exists bool) {
	v := m.audio_asset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioAssetID returns the old "audio_asset_id" field's value of the ListeningTest entity.
// If the ListeningTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListeningTestMutation) OldAudioAssetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioAssetID: %w", err)
	}
	return oldValue.AudioAssetID, nil
}

// AddAudioAssetID adds i to the "audio_asset_id" field.
func (m *ListeningTestMutation) AddAudioAssetID(i int) {
	if m.addaudio_asset_id != nil {
		*m.addaudio_asset_id += i
	} else {
		m.addaudio_asset_id = &i
	}
}

// AddedAudioAssetID returns the value that was added to the "audio_asset_id" field in this mutation.
func (m *ListeningTestMutation) AddedAudioAssetID() (r int, exists bool) {
	v := m.addaudio_asset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAudioAssetID clears the value of the "audio_asset_id" field.
func (m *ListeningTestMutation) ClearAudioAssetID() {
	m.audio_asset_id = nil
	m.addaudio_asset_id = nil
	m.clearedFields[listeningtest.FieldAudioAssetID] = struct{}{}
}

// AudioAssetIDCleared returns if the "audio_asset_id" field was cleared in this mutation.
func (m *ListeningTestMutation) AudioAssetIDCleared() bool {
	_, ok := m.clearedFields[listeningtest.FieldAudioAssetID]
	return ok
}

// ResetAudioAssetID resets all changes to the "audio_asset_id" field.
func (m *ListeningTestMutation) ResetAudioAssetID() {
	m.audio_asset_id = nil
	m.addaudio_asset_id = nil
	delete(m.clearedFields, listeningtest.FieldAudioAssetID)
}

// SetSections sets the "sections" field.
func (m *ListeningTestMutation) SetSections(ss []schema.ListeningSection) {
	m.sections = &ss
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *ListeningTestMutation) Sections() (r []schema.ListeningSection, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the ListeningTest entity.
// If the ListeningTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListeningTestMutation) OldSections(ctx context.Context) (v []schema.ListeningSection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds ss to the "sections" field.
func (m *ListeningTestMutation) AppendSections(ss []schema.ListeningSection) {
	m.appendsections = append(m.appendsections, ss...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *ListeningTestMutation) AppendedSections() ([]schema.ListeningSection, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ResetSections resets all changes to the "sections" field.
func (m *ListeningTestMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
}

// SetActive sets the "active" field.
func (m *ListeningTestMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ListeningTestMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ListeningTest entity.
// If the ListeningTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListeningTestMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ListeningTestMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ListeningTestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListeningTestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ListeningTest entity.
// If the ListeningTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListeningTestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ListeningTestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ListeningTestMutation builder.
func (m *ListeningTestMutation) Where(ps ...predicate.ListeningTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListeningTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListeningTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ListeningTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListeningTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListeningTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ListeningTest).
func (m *ListeningTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListeningTestMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.title != nil {
		fields = append(fields, listeningtest.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, listeningtest.FieldDescription)
	}
	if m.audio_asset_id != nil {
		fields = append(fields, listeningtest.FieldAudioAssetID)
	}
	if m.sections != nil {
		fields = append(fields, listeningtest.FieldSections)
	}
	if m.active != nil {
		fields = append(fields, listeningtest.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, listeningtest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListeningTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listeningtest.FieldTitle:
		return m.Title()
	case listeningtest.FieldDescription:
		return m.Description()
	case listeningtest.FieldAudioAssetID:
		return m.AudioAssetID()
	case listeningtest.FieldSections:
		return m.Sections()
	case listeningtest.FieldActive:
		return m.Active()
	case listeningtest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListeningTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listeningtest.FieldTitle:
		return m.OldTitle(ctx)
	case listeningtest.FieldDescription:
		return m.OldDescription(ctx)
	case listeningtest.FieldAudioAssetID:
		return m.OldAudioAssetID(ctx)
	case listeningtest.FieldSections:
		return m.OldSections(ctx)
	case listeningtest.FieldActive:
		return m.OldActive(ctx)
	case listeningtest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ListeningTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListeningTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listeningtest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case listeningtest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case listeningtest.FieldAudioAssetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioAssetID(v)
		return nil
	case listeningtest.FieldSections:
		v, ok := value.([]schema.ListeningSection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case listeningtest.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case listeningtest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ListeningTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListeningTestMutation) AddedFields() []string {
	var fields []string
	if m.addaudio_asset_id != nil {
		fields = append(fields, listeningtest.FieldAudioAssetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListeningTestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listeningtest.FieldAudioAssetID:
		return m.AddedAudioAssetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListeningTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listeningtest.FieldAudioAssetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAudioAssetID(v)
		return nil
	}
	return fmt.Errorf("unknown ListeningTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListeningTestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listeningtest.FieldAudioAssetID) {
		fields = append(fields, listeningtest.FieldAudioAssetID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListeningTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListeningTestMutation) ClearField(name string) error {
	switch name {
	case listeningtest.FieldAudioAssetID:
		m.ClearAudioAssetID()
		return nil
	}
	return fmt.Errorf("unknown ListeningTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListeningTestMutation) ResetField(name string) error {
	switch name {
	case listeningtest.FieldTitle:
		m.ResetTitle()
		return nil
	case listeningtest.FieldDescription:
		m.ResetDescription()
		return nil
	case listeningtest.FieldAudioAssetID:
		m.ResetAudioAssetID()
		return nil
	case listeningtest.FieldSections:
		m.ResetSections()
		return nil
	case listeningtest.FieldActive:
		m.ResetActive()
		return nil
	case listeningtest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ListeningTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListeningTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListeningTestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListeningTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListeningTestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListeningTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListeningTestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListeningTestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ListeningTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListeningTestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ListeningTest edge %s", name)
}

// ReadingTestMutation represents an operation that mutates the ReadingTest nodes in the graph.
type ReadingTestMutation struct {
	config
	op             Op
	typ            string
	id             *int
	title          *string
	description    *string
	passages       *[]schema.ReadingPassage
	appendpassages []schema.ReadingPassage
	active         *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ReadingTest, error)
	predicates     []predicate.ReadingTest
}

var _ ent.Mutation = (*ReadingTestMutation)(nil)

// readingtestOption allows management of the mutation configuration using functional options.
type readingtestOption func(*ReadingTestMutation)

// newReadingTestMutation creates new mutation for the ReadingTest entity.
func newReadingTestMutation(c config, op Op, opts ...readingtestOption) *ReadingTestMutation {
	m := &ReadingTestMutation{
		config:        c,
		op:            op,
		typ:           TypeReadingTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReadingTestID sets the ID field of the mutation.
func withReadingTestID(id int) readingtestOption {
	return func(m *ReadingTestMutation) {
		var (
			err   error
			once  sync.Once
			value *ReadingTest
		)
		m.oldValue = func(ctx context.Context) (*ReadingTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReadingTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReadingTest sets the old ReadingTest of the mutation.
func withReadingTest(node *ReadingTest) readingtestOption {
	return func(m *ReadingTestMutation) {
		m.oldValue = func(context.Context) (*ReadingTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReadingTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReadingTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReadingTestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReadingTestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReadingTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ReadingTestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReadingTestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ReadingTest entity.
// If the ReadingTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingTestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReadingTestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ReadingTestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ReadingTestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ReadingTest entity.
// If the ReadingTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingTestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ReadingTestMutation) ResetDescription() {
	m.description = nil
}

// SetPassages sets the "passages" field.
func (m *ReadingTestMutation) SetPassages(sp []schema.ReadingPassage) {
	m.passages = &sp
	m.appendpassages = nil
}

// Passages returns the value of the "passages" field in the mutation.
func (m *ReadingTestMutation) Passages() (r []schema.ReadingPassage, exists bool) {
	v := m.passages
	if v == nil {
		return
	}
	return *v, true
}

// OldPassages returns the old "passages" field's value of the ReadingTest entity.
// If the ReadingTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingTestMutation) OldPassages(ctx context.Context) (v []schema.ReadingPassage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassages: %w", err)
	}
	return oldValue.Passages, nil
}

// AppendPassages adds sp to the "passages" field.
func (m *ReadingTestMutation) AppendPassages(sp []schema.ReadingPassage) {
	m.appendpassages = append(m.appendpassages, sp...)
}

// AppendedPassages returns the list of values that were appended to the "passages" field in this mutation.
func (m *ReadingTestMutation) AppendedPassages() ([]schema.ReadingPassage, bool) {
	if len(m.appendpassages) == 0 {
		return nil, false
	}
	return m.appendpassages, true
}

// ResetPassages resets all changes to the "passages" field.
func (m *ReadingTestMutation) ResetPassages() {
	m.passages = nil
	m.appendpassages = nil
}

// SetActive sets the "active" field.
func (m *ReadingTestMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ReadingTestMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ReadingTest entity.
// If the ReadingTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingTestMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ReadingTestMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReadingTestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReadingTestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReadingTest entity.
// If the ReadingTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingTestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReadingTestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReadingTestMutation builder.
func (m *ReadingTestMutation) Where(ps ...predicate.ReadingTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReadingTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReadingTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReadingTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReadingTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReadingTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReadingTest).
func (m *ReadingTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReadingTestMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.title != nil {
		fields = append(fields, readingtest.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, readingtest.FieldDescription)
	}
	if m.passages != nil {
		fields = append(fields, readingtest.FieldPassages)
	}
	if m.active != nil {
		fields = append(fields, readingtest.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, readingtest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReadingTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case readingtest.FieldTitle:
		return m.Title()
	case readingtest.FieldDescription:
		return m.Description()
	case readingtest.FieldPassages:
		return m.Passages()
	case readingtest.FieldActive:
		return m.Active()
	case readingtest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReadingTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case readingtest.FieldTitle:
		return m.OldTitle(ctx)
	case readingtest.FieldDescription:
		return m.OldDescription(ctx)
	case readingtest.FieldPassages:
		return m.OldPassages(ctx)
	case readingtest.FieldActive:
		return m.OldActive(ctx)
	case readingtest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReadingTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadingTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case readingtest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case readingtest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case readingtest.FieldPassages:
		v, ok := value.([]schema.ReadingPassage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassages(v)
		return nil
	case readingtest.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case readingtest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReadingTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReadingTestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReadingTestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadingTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReadingTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReadingTestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReadingTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReadingTestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReadingTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReadingTestMutation) ResetField(name string) error {
	switch name {
	case readingtest.FieldTitle:
		m.ResetTitle()
		return nil
	case readingtest.FieldDescription:
		m.ResetDescription()
		return nil
	case readingtest.FieldPassages:
		m.ResetPassages()
		return nil
	case readingtest.FieldActive:
		m.ResetActive()
		return nil
	case readingtest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReadingTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReadingTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReadingTestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReadingTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReadingTestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReadingTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReadingTestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReadingTestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReadingTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReadingTestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReadingTest edge %s", name)
}

// SpeakingPartMutation represents an operation that mutates the SpeakingPart nodes in the graph.
type SpeakingPartMutation struct {
	config
	op               Op
	typ              string
	id               *int
	part_number      *int
	addpart_number   *int
	topic            *string
	questions        *[]string
	appendquestions  []string
	prep_seconds     *int
	addprep_seconds  *int
	speak_seconds    *int
	addspeak_seconds *int
	active           *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SpeakingPart, error)
	predicates       []predicate.SpeakingPart
}

var _ ent.Mutation = (*SpeakingPartMutation)(nil)

// speakingpartOption allows management of the mutation configuration using functional options.
type speakingpartOption func(*SpeakingPartMutation)

// newSpeakingPartMutation creates new mutation for the SpeakingPart entity.
func newSpeakingPartMutation(c config, op Op, opts ...speakingpartOption) *SpeakingPartMutation {
	m := &SpeakingPartMutation{
		config:        c,
		op:            op,
		typ:           TypeSpeakingPart,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpeakingPartID sets the ID field of the mutation.
func withSpeakingPartID(id int) speakingpartOption {
	return func(m *SpeakingPartMutation) {
		var (
			err   error
			once  sync.Once
			value *SpeakingPart
		)
		m.oldValue = func(ctx context.Context) (*SpeakingPart, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpeakingPart.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpeakingPart sets the old SpeakingPart of the mutation.
func withSpeakingPart(node *SpeakingPart) speakingpartOption {
	return func(m *SpeakingPartMutation) {
		m.oldValue = func(context.Context) (*SpeakingPart, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpeakingPartMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpeakingPartMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpeakingPartMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpeakingPartMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpeakingPart.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPartNumber sets the "part_number" field.
func (m *SpeakingPartMutation) SetPartNumber(i int) {
	m.part_number = &i
	m.addpart_number = nil
}

// PartNumber returns the value of the "part_number" field in the mutation.
func (m *SpeakingPartMutation) PartNumber() (r int, exists bool) {
	v := m.part_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPartNumber returns the old "part_number" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldPartNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartNumber: %w", err)
	}
	return oldValue.PartNumber, nil
}

// AddPartNumber adds i to the "part_number" field.
func (m *SpeakingPartMutation) AddPartNumber(i int) {
	if m.addpart_number != nil {
		*m.addpart_number += i
	} else {
		m.addpart_number = &i
	}
}

// AddedPartNumber returns the value that was added to the "part_number" field in this mutation.
func (m *SpeakingPartMutation) AddedPartNumber() (r int, exists bool) {
	v := m.addpart_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartNumber resets all changes to the "part_number" field.
func (m *SpeakingPartMutation) ResetPartNumber() {
	m.part_number = nil
	m.addpart_number = nil
}

// SetTopic sets the "topic" field.
func (m *SpeakingPartMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *SpeakingPartMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *SpeakingPartMutation) ResetTopic() {
	m.topic = nil
}

// SetQuestions sets the "questions" field.
func (m *SpeakingPartMutation) SetQuestions(s []string) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *SpeakingPartMutation) Questions() (r []string, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *SpeakingPartMutation) AppendQuestions(s []string) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *SpeakingPartMutation) AppendedQuestions() ([]string, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *SpeakingPartMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetPrepSeconds sets the "prep_seconds" field.
func (m *SpeakingPartMutation) SetPrepSeconds(i int) {
	m.prep_seconds = &i
	m.addprep_seconds = nil
}

// PrepSeconds returns the value of the "prep_seconds" field in the mutation.
func (m *SpeakingPartMutation) PrepSeconds() (r int, exists bool) {
	v := m.prep_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldPrepSeconds returns the old "prep_seconds" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldPrepSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrepSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrepSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrepSeconds: %w", err)
	}
	return oldValue.PrepSeconds, nil
}

// AddPrepSeconds adds i to the "prep_seconds" field.
func (m *SpeakingPartMutation) AddPrepSeconds(i int) {
	if m.addprep_seconds != nil {
		*m.addprep_seconds += i
	} else {
		m.addprep_seconds = &i
	}
}

// AddedPrepSeconds returns the value that was added to the "prep_seconds" field in this mutation.
func (m *SpeakingPartMutation) AddedPrepSeconds() (r int, exists bool) {
	v := m.addprep_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrepSeconds resets all changes to the "prep_seconds" field.
func (m *SpeakingPartMutation) ResetPrepSeconds() {
	m.prep_seconds = nil
	m.addprep_seconds = nil
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (m *SpeakingPartMutation) SetSpeakSeconds(i int) {
	m.speak_seconds = &i
	m.addspeak_seconds = nil
}

// SpeakSeconds returns the value of the "speak_seconds" field in the mutation.
func (m *SpeakingPartMutation) SpeakSeconds() (r int, exists bool) {
	v := m.speak_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakSeconds returns the old "speak_seconds" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldSpeakSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakSeconds: %w", err)
	}
	return oldValue.SpeakSeconds, nil
}

// AddSpeakSeconds adds i to the "speak_seconds" field.
func (m *SpeakingPartMutation) AddSpeakSeconds(i int) {
	if m.addspeak_seconds != nil {
		*m.addspeak_seconds += i
	} else {
		m.addspeak_seconds = &i
	}
}

// AddedSpeakSeconds returns the value that was added to the "speak_seconds" field in this mutation.
func (m *SpeakingPartMutation) AddedSpeakSeconds() (r int, exists bool) {
	v := m.addspeak_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpeakSeconds resets all changes to the "speak_seconds" field.
func (m *SpeakingPartMutation) ResetSpeakSeconds() {
	m.speak_seconds = nil
	m.addspeak_seconds = nil
}

// SetActive sets the "active" field.
func (m *SpeakingPartMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SpeakingPartMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SpeakingPartMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SpeakingPartMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpeakingPartMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpeakingPart entity.
// If the SpeakingPart object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpeakingPartMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpeakingPartMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SpeakingPartMutation builder.
func (m *SpeakingPartMutation) Where(ps ...predicate.SpeakingPart) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpeakingPartMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpeakingPartMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpeakingPart, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpeakingPartMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpeakingPartMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpeakingPart).
func (m *SpeakingPartMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpeakingPartMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.part_number != nil {
		fields = append(fields, speakingpart.FieldPartNumber)
	}
	if m.topic != nil {
		fields = append(fields, speakingpart.FieldTopic)
	}
	if m.questions != nil {
		fields = append(fields, speakingpart.FieldQuestions)
	}
	if m.prep_seconds != nil {
		fields = append(fields, speakingpart.FieldPrepSeconds)
	}
	if m.speak_seconds != nil {
		fields = append(fields, speakingpart.FieldSpeakSeconds)
	}
	if m.active != nil {
		fields = append(fields, speakingpart.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, speakingpart.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpeakingPartMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case speakingpart.FieldPartNumber:
		return m.PartNumber()
	case speakingpart.FieldTopic:
		return m.Topic()
	case speakingpart.FieldQuestions:
		return m.Questions()
	case speakingpart.FieldPrepSeconds:
		return m.PrepSeconds()
	case speakingpart.FieldSpeakSeconds:
		return m.SpeakSeconds()
	case speakingpart.FieldActive:
		return m.Active()
	case speakingpart.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpeakingPartMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case speakingpart.FieldPartNumber:
		return m.OldPartNumber(ctx)
	case speakingpart.FieldTopic:
		return m.OldTopic(ctx)
	case speakingpart.FieldQuestions:
		return m.OldQuestions(ctx)
	case speakingpart.FieldPrepSeconds:
		return m.OldPrepSeconds(ctx)
	case speakingpart.FieldSpeakSeconds:
		return m.OldSpeakSeconds(ctx)
	case speakingpart.FieldActive:
		return m.OldActive(ctx)
	case speakingpart.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpeakingPart field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpeakingPartMutation) SetField(name string, value ent.Value) error {
	switch name {
	case speakingpart.FieldPartNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartNumber(v)
		return nil
	case speakingpart.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case speakingpart.FieldQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case speakingpart.FieldPrepSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrepSeconds(v)
		return nil
	case speakingpart.FieldSpeakSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakSeconds(v)
		return nil
	case speakingpart.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case speakingpart.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpeakingPart field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpeakingPartMutation) AddedFields() []string {
	var fields []string
	if m.addpart_number != nil {
		fields = append(fields, speakingpart.FieldPartNumber)
	}
	if m.addprep_seconds != nil {
		fields = append(fields, speakingpart.FieldPrepSeconds)
	}
	if m.addspeak_seconds != nil {
		fields = append(fields, speakingpart.FieldSpeakSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpeakingPartMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case speakingpart.FieldPartNumber:
		return m.AddedPartNumber()
	case speakingpart.FieldPrepSeconds:
		return m.AddedPrepSeconds()
	case speakingpart.FieldSpeakSeconds:
		return m.AddedSpeakSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpeakingPartMutation) AddField(name string, value ent.Value) error {
	switch name {
	case speakingpart.FieldPartNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartNumber(v)
		return nil
	case speakingpart.FieldPrepSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrepSeconds(v)
		return nil
	case speakingpart.FieldSpeakSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeakSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown SpeakingPart numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpeakingPartMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpeakingPartMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpeakingPartMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SpeakingPart nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpeakingPartMutation) ResetField(name string) error {
	switch name {
	case speakingpart.FieldPartNumber:
		m.ResetPartNumber()
		return nil
	case speakingpart.FieldTopic:
		m.ResetTopic()
		return nil
	case speakingpart.FieldQuestions:
		m.ResetQuestions()
		return nil
	case speakingpart.FieldPrepSeconds:
		m.ResetPrepSeconds()
		return nil
	case speakingpart.FieldSpeakSeconds:
		m.ResetSpeakSeconds()
		return nil
	case speakingpart.FieldActive:
		m.ResetActive()
		return nil
	case speakingpart.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpeakingPart field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpeakingPartMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpeakingPartMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpeakingPartMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpeakingPartMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpeakingPartMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpeakingPartMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpeakingPartMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SpeakingPart unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpeakingPartMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SpeakingPart edge %s", name)
}

// TestSessionMutation represents an operation that mutates the TestSession nodes in the graph.
type TestSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	candidate_name       *string
	candidate_email      *string
	current_section      *string
	writing_completed    *bool
	speaking_completed   *bool
	status               *string
	listening_test_id    *int
	addlistening_test_id *int
	reading_test_id      *int
	addreading_test_id   *int
	listening_band       *float64
	addlistening_band    *float64
	reading_band         *float64
	addreading_band      *float64
	writing_band         *float64
	addwriting_band      *float64
	speaking_band        *float64
	addspeaking_band     *float64
	overall_band         *float64
	addoverall_band      *float64
	started_at           *time.Time
	completed_at         *time.Time
	last_activity_at     *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TestSession, error)
	predicates           []predicate.TestSession
}

var _ ent.Mutation = (*TestSessionMutation)(nil)

// testsessionOption allows management of the mutation configuration using functional options.
type testsessionOption func(*TestSessionMutation)

// newTestSessionMutation creates new mutation for the TestSession entity.
func newTestSessionMutation(c config, op Op, opts ...testsessionOption) *TestSessionMutation {
	m := &TestSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeTestSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestSessionID sets the ID field of the mutation.
func withTestSessionID(id string) testsessionOption {
	return func(m *TestSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *TestSession
		)
		m.oldValue = func(ctx context.Context) (*TestSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestSession sets the old TestSession of the mutation.
func withTestSession(node *TestSession) testsessionOption {
	return func(m *TestSessionMutation) {
		m.oldValue = func(context.Context) (*TestSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestSession entities.
func (m *TestSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCandidateName sets the "candidate_name" field.
func (m *TestSessionMutation) SetCandidateName(s string) {
	m.candidate_name = &s
}

// CandidateName returns the value of the "candidate_name" field in the mutation.
func (m *TestSessionMutation) CandidateName() (r string, exists bool) {
	v := m.candidate_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateName returns the old "candidate_name" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldCandidateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateName: %w", err)
	}
	return oldValue.CandidateName, nil
}

// ResetCandidateName resets all changes to the "candidate_name" field.
func (m *TestSessionMutation) ResetCandidateName() {
	m.candidate_name = nil
}

// SetCandidateEmail sets the "candidate_email" field.
func (m *TestSessionMutation) SetCandidateEmail(s string) {
	m.candidate_email = &s
}

// CandidateEmail returns the value of the "candidate_email" field in the mutation.
func (m *TestSessionMutation) CandidateEmail() (r string, exists bool) {
	v := m.candidate_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateEmail returns the old "candidate_email" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldCandidateEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateEmail: %w", err)
	}
	return oldValue.CandidateEmail, nil
}

// ResetCandidateEmail resets all changes to the "candidate_email" field.
func (m *TestSessionMutation) ResetCandidateEmail() {
	m.candidate_email = nil
}

// SetCurrentSection sets the "current_section" field.
func (m *TestSessionMutation) SetCurrentSection(s string) {
	m.current_section = &s
}

// CurrentSection returns the value of the "current_section" field in the mutation.
func (m *TestSessionMutation) CurrentSection() (r string, exists bool) {
	v := m.current_section
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSection returns the old "current_section" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldCurrentSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSection: %w", err)
	}
	return oldValue.CurrentSection, nil
}

// ResetCurrentSection resets all changes to the "current_section" field.
func (m *TestSessionMutation) ResetCurrentSection() {
	m.current_section = nil
}

// SetWritingCompleted sets the "writing_completed" field.
func (m *TestSessionMutation) SetWritingCompleted(b bool) {
	m.writing_completed = &b
}

// WritingCompleted returns the value of the "writing_completed" field in the mutation.
func (m *TestSessionMutation) WritingCompleted() (r bool, exists bool) {
	v := m.writing_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldWritingCompleted returns the old "writing_completed" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldWritingCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWritingCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWritingCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWritingCompleted: %w", err)
	}
	return oldValue.WritingCompleted, nil
}

// ResetWritingCompleted resets all changes to the "writing_completed" field.
func (m *TestSessionMutation) ResetWritingCompleted() {
	m.writing_completed = nil
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (m *TestSessionMutation) SetSpeakingCompleted(b bool) {
	m.speaking_completed = &b
}

// SpeakingCompleted returns the value of the "speaking_completed" field in the mutation.
func (m *TestSessionMutation) SpeakingCompleted() (r bool, exists bool) {
	v := m.speaking_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakingCompleted returns the old "speaking_completed" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldSpeakingCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakingCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakingCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakingCompleted: %w", err)
	}
	return oldValue.SpeakingCompleted, nil
}

// ResetSpeakingCompleted resets all changes to the "speaking_completed" field.
func (m *TestSessionMutation) ResetSpeakingCompleted() {
	m.speaking_completed = nil
}

// SetStatus sets the "status" field.
func (m *TestSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TestSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TestSessionMutation) ResetStatus() {
	m.status = nil
}

// SetListeningTestID sets the "listening_test_id" field.
func (m *TestSessionMutation) SetListeningTestID(i int) {
	m.listening_test_id = &i
	m.addlistening_test_id = nil
}

// ListeningTestID returns the value of the "listening_test_id" field in the mutation.
func (m *TestSessionMutation) ListeningTestID() (r int, exists bool) {
	v := m.listening_test_id
	if v == nil {
		return
	}
	return *v, true
}

// OldListeningTestID returns the old "listening_test_id" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldListeningTestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListeningTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListeningTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListeningTestID: %w", err)
	}
	return oldValue.ListeningTestID, nil
}

// AddListeningTestID adds i to the "listening_test_id" field.
func (m *TestSessionMutation) AddListeningTestID(i int) {
	if m.addlistening_test_id != nil {
		*m.addlistening_test_id += i
	} else {
		m.addlistening_test_id = &i
	}
}

// AddedListeningTestID returns the value that was added to the "listening_test_id" field in this mutation.
func (m *TestSessionMutation) AddedListeningTestID() (r int, exists bool) {
	v := m.addlistening_test_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearListeningTestID clears the value of the "listening_test_id" field.
func (m *TestSessionMutation) ClearListeningTestID() {
	m.listening_test_id = nil
	m.addlistening_test_id = nil
	m.clearedFields[testsession.FieldListeningTestID] = struct{}{}
}

// ListeningTestIDCleared returns if the "listening_test_id" field was cleared in this mutation.
func (m *TestSessionMutation) ListeningTestIDCleared() bool {
	_, ok := m.clearedFields[testsession.FieldListeningTestID]
	return ok
}

// ResetListeningTestID resets all changes to the "listening_test_id" field.
func (m *TestSessionMutation) ResetListeningTestID() {
	m.listening_test_id = nil
	m.addlistening_test_id = nil
	delete(m.clearedFields, testsession.FieldListeningTestID)
}

// SetReadingTestID sets the "reading_test_id" field.
func (m *TestSessionMutation) SetReadingTestID(i int) {
	m.reading_test_id = &i
	m.addreading_test_id = nil
}

// ReadingTestID returns the value of the "reading_test_id" field in the mutation.
func (m *TestSessionMutation) ReadingTestID() (r int, exists bool) {
	v := m.reading_test_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingTestID returns the old "reading_test_id" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldReadingTestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingTestID: %w", err)
	}
	return oldValue.ReadingTestID, nil
}

// AddReadingTestID adds i to the "reading_test_id" field.
func (m *TestSessionMutation) AddReadingTestID(i int) {
	if m.addreading_test_id != nil {
		*m.addreading_test_id += i
	} else {
		m.addreading_test_id = &i
	}
}

// AddedReadingTestID returns the value that was added to the "reading_test_id" field in this mutation.
func (m *TestSessionMutation) AddedReadingTestID() (r int, exists bool) {
	v := m.addreading_test_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearReadingTestID clears the value of the "reading_test_id" field.
func (m *TestSessionMutation) ClearReadingTestID() {
	m.reading_test_id = nil
	m.addreading_test_id = nil
	m.clearedFields[testsession.FieldReadingTestID] = struct{}{}
}

// ReadingTestIDCleared returns if the "reading_test_id" field was cleared in this mutation.
func (m *TestSessionMutation) ReadingTestIDCleared() bool {
	_, ok := m.clearedFields[testsession.FieldReadingTestID]
	return ok
}

// ResetReadingTestID resets all changes to the "reading_test_id" field.
func (m *TestSessionMutation) ResetReadingTestID() {
	m.reading_test_id = nil
	m.addreading_test_id = nil
	delete(m.clearedFields, testsession.FieldReadingTestID)
}

// SetListeningBand sets the "listening_band" field.
func (m *TestSessionMutation) SetListeningBand(f float64) {
	m.listening_band = &f
	m.addlistening_band = nil
}

// ListeningBand returns the value of the "listening_band" field in the mutation.
func (m *TestSessionMutation) ListeningBand() (r float64, exists bool) {
	v := m.listening_band
	if v == nil {
		return
	}
	return *v, true
}

// OldListeningBand returns the old "listening_band" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldListeningBand(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListeningBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListeningBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListeningBand: %w", err)
	}
	return oldValue.ListeningBand, nil
}

// AddListeningBand adds f to the "listening_band" field.
func (m *TestSessionMutation) AddListeningBand(f float64) {
	if m.addlistening_band != nil {
		*m.addlistening_band += f
	} else {
		m.addlistening_band = &f
	}
}

// AddedListeningBand returns the value that was added to the "listening_band" field in this mutation.
func (m *TestSessionMutation) AddedListeningBand() (r float64, exists bool) {
	v := m.addlistening_band
	if v == nil {
		return
	}
	return *v, true
}

// ClearListeningBand clears the value of the "listening_band" field.
func (m *TestSessionMutation) ClearListeningBand() {
	m.listening_band = nil
	m.addlistening_band = nil
	m.clearedFields[testsession.FieldListeningBand] = struct{}{}
}

// ListeningBandCleared returns if the "listening_band" field was cleared in this mutation.
func (m *TestSessionMutation) ListeningBandCleared() bool {
	_, ok := m.clearedFields[testsession.FieldListeningBand]
	return ok
}

// ResetListeningBand resets all changes to the "listening_band" field.
func (m *TestSessionMutation) ResetListeningBand() {
	m.listening_band = nil
	m.addlistening_band = nil
	delete(m.clearedFields, testsession.FieldListeningBand)
}

// SetReadingBand sets the "reading_band" field.
func (m *TestSessionMutation) SetReadingBand(f float64) {
	m.reading_band = &f
	m.addreading_band = nil
}

// ReadingBand returns the value of the "reading_band" field in the mutation.
func (m *TestSessionMutation) ReadingBand() (r float64, exists bool) {
	v := m.reading_band
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingBand returns the old "reading_band" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldReadingBand(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingBand: %w", err)
	}
	return oldValue.ReadingBand, nil
}

// AddReadingBand adds f to the "reading_band" field.
func (m *TestSessionMutation) AddReadingBand(f float64) {
	if m.addreading_band != nil {
		*m.addreading_band += f
	} else {
		m.addreading_band = &f
	}
}

// AddedReadingBand returns the value that was added to the "reading_band" field in this mutation.
func (m *TestSessionMutation) AddedReadingBand() (r float64, exists bool) {
	v := m.addreading_band
	if v == nil {
		return
	}
	return *v, true
}

// ClearReadingBand clears the value of the "reading_band" field.
func (m *TestSessionMutation) ClearReadingBand() {
	m.reading_band = nil
	m.addreading_band = nil
	m.clearedFields[testsession.FieldReadingBand] = struct{}{}
}

// ReadingBandCleared returns if the "reading_band" field was cleared in this mutation.
func (m *TestSessionMutation) ReadingBandCleared() bool {
	_, ok := m.clearedFields[testsession.FieldReadingBand]
	return ok
}

// ResetReadingBand resets all changes to the "reading_band" field.
func (m *TestSessionMutation) ResetReadingBand() {
	m.reading_band = nil
	m.addreading_band = nil
	delete(m.clearedFields, testsession.FieldReadingBand)
}

// SetWritingBand sets the "writing_band" field.
func (m *TestSessionMutation) SetWritingBand(f float64) {
	m.writing_band = &f
	m.addwriting_band = nil
}

// WritingBand returns the value of the "writing_band" field in the mutation.
func (m *TestSessionMutation) WritingBand() (r float64, exists bool) {
	v := m.writing_band
	if v == nil {
		return
	}
	return *v, true
}

// OldWritingBand returns the old "writing_band" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldWritingBand(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWritingBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWritingBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWritingBand: %w", err)
	}
	return oldValue.WritingBand, nil
}

// AddWritingBand adds f to the "writing_band" field.
func (m *TestSessionMutation) AddWritingBand(f float64) {
	if m.addwriting_band != nil {
		*m.addwriting_band += f
	} else {
		m.addwriting_band = &f
	}
}

// AddedWritingBand returns the value that was added to the "writing_band" field in this mutation.
func (m *TestSessionMutation) AddedWritingBand() (r float64, exists bool) {
	v := m.addwriting_band
	if v == nil {
		return
	}
	return *v, true
}

// ClearWritingBand clears the value of the "writing_band" field.
func (m *TestSessionMutation) ClearWritingBand() {
	m.writing_band = nil
	m.addwriting_band = nil
	m.clearedFields[testsession.FieldWritingBand] = struct{}{}
}

// WritingBandCleared returns if the "writing_band" field was cleared in this mutation.
func (m *TestSessionMutation) WritingBandCleared() bool {
	_, ok := m.clearedFields[testsession.FieldWritingBand]
	return ok
}

// ResetWritingBand resets all changes to the "writing_band" field.
func (m *TestSessionMutation) ResetWritingBand() {
	m.writing_band = nil
	m.addwriting_band = nil
	delete(m.clearedFields, testsession.FieldWritingBand)
}

// SetSpeakingBand sets the "speaking_band" field.
func (m *TestSessionMutation) SetSpeakingBand(f float64) {
	m.speaking_band = &f
	m.addspeaking_band = nil
}

// SpeakingBand returns the value of the "speaking_band" field in the mutation.
func (m *TestSessionMutation) SpeakingBand() (r float64, exists bool) {
	v := m.speaking_band
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakingBand returns the old "speaking_band" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldSpeakingBand(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakingBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakingBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakingBand: %w", err)
	}
	return oldValue.SpeakingBand, nil
}

// AddSpeakingBand adds f to the "speaking_band" field.
func (m *TestSessionMutation) AddSpeakingBand(f float64) {
	if m.addspeaking_band != nil {
		*m.addspeaking_band += f
	} else {
		m.addspeaking_band = &f
	}
}

// AddedSpeakingBand returns the value that was added to the "speaking_band" field in this mutation.
func (m *TestSessionMutation) AddedSpeakingBand() (r float64, exists bool) {
	v := m.addspeaking_band
	if v == nil {
		return
	}
	return *v, true
}

// ClearSpeakingBand clears the value of the "speaking_band" field.
func (m *TestSessionMutation) ClearSpeakingBand() {
	m.speaking_band = nil
	m.addspeaking_band = nil
	m.clearedFields[testsession.FieldSpeakingBand] = struct{}{}
}

// SpeakingBandCleared returns if the "speaking_band" field was cleared in this mutation.
func (m *TestSessionMutation) SpeakingBandCleared() bool {
	_, ok := m.clearedFields[testsession.FieldSpeakingBand]
	return ok
}

// ResetSpeakingBand resets all changes to the "speaking_band" field.
func (m *TestSessionMutation) ResetSpeakingBand() {
	m.speaking_band = nil
	m.addspeaking_band = nil
	delete(m.clearedFields, testsession.FieldSpeakingBand)
}

// SetOverallBand sets the "overall_band" field.
func (m *TestSessionMutation) SetOverallBand(f float64) {
	m.overall_band = &f
	m.addoverall_band = nil
}

// OverallBand returns the value of the "overall_band" field in the mutation.
func (m *TestSessionMutation) OverallBand() (r float64, exists bool) {
	v := m.overall_band
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallBand returns the old "overall_band" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldOverallBand(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallBand: %w", err)
	}
	return oldValue.OverallBand, nil
}

// AddOverallBand adds f to the "overall_band" field.
func (m *TestSessionMutation) AddOverallBand(f float64) {
	if m.addoverall_band != nil {
		*m.addoverall_band += f
	} else {
		m.addoverall_band = &f
	}
}

// AddedOverallBand returns the value that was added to the "overall_band" field in this mutation.
func (m *TestSessionMutation) AddedOverallBand() (r float64, exists bool) {
	v := m.addoverall_band
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallBand clears the value of the "overall_band" field.
func (m *TestSessionMutation) ClearOverallBand() {
	m.overall_band = nil
	m.addoverall_band = nil
	m.clearedFields[testsession.FieldOverallBand] = struct{}{}
}

// OverallBandCleared returns if the "overall_band" field was cleared in this mutation.
func (m *TestSessionMutation) OverallBandCleared() bool {
	_, ok := m.clearedFields[testsession.FieldOverallBand]
	return ok
}

// ResetOverallBand resets all changes to the "overall_band" field.
func (m *TestSessionMutation) ResetOverallBand() {
	m.overall_band = nil
	m.addoverall_band = nil
	delete(m.clearedFields, testsession.FieldOverallBand)
}

// SetStartedAt sets the "started_at" field.
func (m *TestSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TestSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TestSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TestSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TestSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TestSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[testsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TestSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[testsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TestSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, testsession.FieldCompletedAt)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *TestSessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *TestSessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *TestSessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// Where appends a list predicates to the TestSessionMutation builder.
func (m *TestSessionMutation) Where(ps ...predicate.TestSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestSession).
func (m *TestSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.candidate_name != nil {
		fields = append(fields, testsession.FieldCandidateName)
	}
	if m.candidate_email != nil {
		fields = append(fields, testsession.FieldCandidateEmail)
	}
	if m.current_section != nil {
		fields = append(fields, testsession.FieldCurrentSection)
	}
	if m.writing_completed != nil {
		fields = append(fields, testsession.FieldWritingCompleted)
	}
	if m.speaking_completed != nil {
		fields = append(fields, testsession.FieldSpeakingCompleted)
	}
	if m.status != nil {
		fields = append(fields, testsession.FieldStatus)
	}
	if m.listening_test_id != nil {
		fields = append(fields, testsession.FieldListeningTestID)
	}
	if m.reading_test_id != nil {
		fields = append(fields, testsession.FieldReadingTestID)
	}
	if m.listening_band != nil {
		fields = append(fields, testsession.FieldListeningBand)
	}
	if m.reading_band != nil {
		fields = append(fields, testsession.FieldReadingBand)
	}
	if m.writing_band != nil {
		fields = append(fields, testsession.FieldWritingBand)
	}
	if m.speaking_band != nil {
		fields = append(fields, testsession.FieldSpeakingBand)
	}
	if m.overall_band != nil {
		fields = append(fields, testsession.FieldOverallBand)
	}
	if m.started_at != nil {
		fields = append(fields, testsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, testsession.FieldCompletedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, testsession.FieldLastActivityAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testsession.FieldCandidateName:
		return m.CandidateName()
	case testsession.FieldCandidateEmail:
		return m.CandidateEmail()
	case testsession.FieldCurrentSection:
		return m.CurrentSection()
	case testsession.FieldWritingCompleted:
		return m.WritingCompleted()
	case testsession.FieldSpeakingCompleted:
		return m.SpeakingCompleted()
	case testsession.FieldStatus:
		return m.Status()
	case testsession.FieldListeningTestID:
		return m.ListeningTestID()
	case testsession.FieldReadingTestID:
		return m.ReadingTestID()
	case testsession.FieldListeningBand:
		return m.ListeningBand()
	case testsession.FieldReadingBand:
		return m.ReadingBand()
	case testsession.FieldWritingBand:
		return m.WritingBand()
	case testsession.FieldSpeakingBand:
		return m.SpeakingBand()
	case testsession.FieldOverallBand:
		return m.OverallBand()
	case testsession.FieldStartedAt:
		return m.StartedAt()
	case testsession.FieldCompletedAt:
		return m.CompletedAt()
	case testsession.FieldLastActivityAt:
		return m.LastActivityAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testsession.FieldCandidateName:
		return m.OldCandidateName(ctx)
	case testsession.FieldCandidateEmail:
		return m.OldCandidateEmail(ctx)
	case testsession.FieldCurrentSection:
		return m.OldCurrentSection(ctx)
	case testsession.FieldWritingCompleted:
		return m.OldWritingCompleted(ctx)
	case testsession.FieldSpeakingCompleted:
		return m.OldSpeakingCompleted(ctx)
	case testsession.FieldStatus:
		return m.OldStatus(ctx)
	case testsession.FieldListeningTestID:
		return m.OldListeningTestID(ctx)
	case testsession.FieldReadingTestID:
		return m.OldReadingTestID(ctx)
	case testsession.FieldListeningBand:
		return m.OldListeningBand(ctx)
	case testsession.FieldReadingBand:
		return m.OldReadingBand(ctx)
	case testsession.FieldWritingBand:
		return m.OldWritingBand(ctx)
	case testsession.FieldSpeakingBand:
		return m.OldSpeakingBand(ctx)
	case testsession.FieldOverallBand:
		return m.OldOverallBand(ctx)
	case testsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case testsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case testsession.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testsession.FieldCandidateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateName(v)
		return nil
	case testsession.FieldCandidateEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateEmail(v)
		return nil
	case testsession.FieldCurrentSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSection(v)
		return nil
	case testsession.FieldWritingCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWritingCompleted(v)
		return nil
	case testsession.FieldSpeakingCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakingCompleted(v)
		return nil
	case testsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case testsession.FieldListeningTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListeningTestID(v)
		return nil
	case testsession.FieldReadingTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingTestID(v)
		return nil
	case testsession.FieldListeningBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListeningBand(v)
		return nil
	case testsession.FieldReadingBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingBand(v)
		return nil
	case testsession.FieldWritingBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWritingBand(v)
		return nil
	case testsession.FieldSpeakingBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakingBand(v)
		return nil
	case testsession.FieldOverallBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallBand(v)
		return nil
	case testsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case testsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case testsession.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestSessionMutation) AddedFields() []string {
	var fields []string
	if m.addlistening_test_id != nil {
		fields = append(fields, testsession.FieldListeningTestID)
	}
	if m.addreading_test_id != nil {
		fields = append(fields, testsession.FieldReadingTestID)
	}
	if m.addlistening_band != nil {
		fields = append(fields, testsession.FieldListeningBand)
	}
	if m.addreading_band != nil {
		fields = append(fields, testsession.FieldReadingBand)
	}
	if m.addwriting_band != nil {
		fields = append(fields, testsession.FieldWritingBand)
	}
	if m.addspeaking_band != nil {
		fields = append(fields, testsession.FieldSpeakingBand)
	}
	if m.addoverall_band != nil {
		fields = append(fields, testsession.FieldOverallBand)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testsession.FieldListeningTestID:
		return m.AddedListeningTestID()
	case testsession.FieldReadingTestID:
		return m.AddedReadingTestID()
	case testsession.FieldListeningBand:
		return m.AddedListeningBand()
	case testsession.FieldReadingBand:
		return m.AddedReadingBand()
	case testsession.FieldWritingBand:
		return m.AddedWritingBand()
	case testsession.FieldSpeakingBand:
		return m.AddedSpeakingBand()
	case testsession.FieldOverallBand:
		return m.AddedOverallBand()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testsession.FieldListeningTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListeningTestID(v)
		return nil
	case testsession.FieldReadingTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadingTestID(v)
		return nil
	case testsession.FieldListeningBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListeningBand(v)
		return nil
	case testsession.FieldReadingBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadingBand(v)
		return nil
	case testsession.FieldWritingBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWritingBand(v)
		return nil
	case testsession.FieldSpeakingBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeakingBand(v)
		return nil
	case testsession.FieldOverallBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallBand(v)
		return nil
	}
	return fmt.Errorf("unknown TestSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testsession.FieldListeningTestID) {
		fields = append(fields, testsession.FieldListeningTestID)
	}
	if m.FieldCleared(testsession.FieldReadingTestID) {
		fields = append(fields, testsession.FieldReadingTestID)
	}
	if m.FieldCleared(testsession.FieldListeningBand) {
		fields = append(fields, testsession.FieldListeningBand)
	}
	if m.FieldCleared(testsession.FieldReadingBand) {
		fields = append(fields, testsession.FieldReadingBand)
	}
	if m.FieldCleared(testsession.FieldWritingBand) {
		fields = append(fields, testsession.FieldWritingBand)
	}
	if m.FieldCleared(testsession.FieldSpeakingBand) {
		fields = append(fields, testsession.FieldSpeakingBand)
	}
	if m.FieldCleared(testsession.FieldOverallBand) {
		fields = append(fields, testsession.FieldOverallBand)
	}
	if m.FieldCleared(testsession.FieldCompletedAt) {
		fields = append(fields, testsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestSessionMutation) ClearField(name string) error {
	switch name {
	case testsession.FieldListeningTestID:
		m.ClearListeningTestID()
		return nil
	case testsession.FieldReadingTestID:
		m.ClearReadingTestID()
		return nil
	case testsession.FieldListeningBand:
		m.ClearListeningBand()
		return nil
	case testsession.FieldReadingBand:
		m.ClearReadingBand()
		return nil
	case testsession.FieldWritingBand:
		m.ClearWritingBand()
		return nil
	case testsession.FieldSpeakingBand:
		m.ClearSpeakingBand()
		return nil
	case testsession.FieldOverallBand:
		m.ClearOverallBand()
		return nil
	case testsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TestSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestSessionMutation) ResetField(name string) error {
	switch name {
	case testsession.FieldCandidateName:
		m.ResetCandidateName()
		return nil
	case testsession.FieldCandidateEmail:
		m.ResetCandidateEmail()
		return nil
	case testsession.FieldCurrentSection:
		m.ResetCurrentSection()
		return nil
	case testsession.FieldWritingCompleted:
		m.ResetWritingCompleted()
		return nil
	case testsession.FieldSpeakingCompleted:
		m.ResetSpeakingCompleted()
		return nil
	case testsession.FieldStatus:
		m.ResetStatus()
		return nil
	case testsession.FieldListeningTestID:
		m.ResetListeningTestID()
		return nil
	case testsession.FieldReadingTestID:
		m.ResetReadingTestID()
		return nil
	case testsession.FieldListeningBand:
		m.ResetListeningBand()
		return nil
	case testsession.FieldReadingBand:
		m.ResetReadingBand()
		return nil
	case testsession.FieldWritingBand:
		m.ResetWritingBand()
		return nil
	case testsession.FieldSpeakingBand:
		m.ResetSpeakingBand()
		return nil
	case testsession.FieldOverallBand:
		m.ResetOverallBand()
		return nil
	case testsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case testsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case testsession.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown TestSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TestSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TestSession edge %s", name)
}

// WritingTaskMutation represents an operation that mutates the WritingTask nodes in the graph.
type WritingTaskMutation struct {
	config
	op             Op
	typ            string
	id             *int
	task_number    *int
	addtask_number *int
	prompt         *string
	min_words      *int
	addmin_words   *int
	active         *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*WritingTask, error)
	predicates     []predicate.WritingTask
}

var _ ent.Mutation = (*WritingTaskMutation)(nil)

// writingtaskOption allows management of the mutation configuration using functional options.
type writingtaskOption func(*WritingTaskMutation)

// newWritingTaskMutation creates new mutation for the WritingTask entity.
func newWritingTaskMutation(c config, op Op, opts ...writingtaskOption) *WritingTaskMutation {
	m := &WritingTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeWritingTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWritingTaskID sets the ID field of the mutation.
func withWritingTaskID(id int) writingtaskOption {
	return func(m *WritingTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *WritingTask
		)
		m.oldValue = func(ctx context.Context) (*WritingTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WritingTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWritingTask sets the old WritingTask of the mutation.
func withWritingTask(node *WritingTask) writingtaskOption {
	return func(m *WritingTaskMutation) {
		m.oldValue = func(context.Context) (*WritingTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WritingTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WritingTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WritingTaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WritingTaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WritingTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskNumber sets the "task_number" field.
func (m *WritingTaskMutation) SetTaskNumber(i int) {
	m.task_number = &i
	m.addtask_number = nil
}

// TaskNumber returns the value of the "task_number" field in the mutation.
func (m *WritingTaskMutation) TaskNumber() (r int, exists bool) {
	v := m.task_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskNumber returns the old "task_number" field's value of the WritingTask entity.
// If the WritingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingTaskMutation) OldTaskNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskNumber: %w", err)
	}
	return oldValue.TaskNumber, nil
}

// AddTaskNumber adds i to the "task_number" field.
func (m *WritingTaskMutation) AddTaskNumber(i int) {
	if m.addtask_number != nil {
		*m.addtask_number += i
	} else {
		m.addtask_number = &i
	}
}

// AddedTaskNumber returns the value that was added to the "task_number" field in this mutation.
func (m *WritingTaskMutation) AddedTaskNumber() (r int, exists bool) {
	v := m.addtask_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskNumber resets all changes to the "task_number" field.
func (m *WritingTaskMutation) ResetTaskNumber() {
	m.task_number = nil
	m.addtask_number = nil
}

// SetPrompt sets the "prompt" field.
func (m *WritingTaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *WritingTaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the WritingTask entity.
// If the WritingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingTaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *WritingTaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetMinWords sets the "min_words" field.
func (m *WritingTaskMutation) SetMinWords(i int) {
	m.min_words = &i
	m.addmin_words = nil
}

// MinWords returns the value of the "min_words" field in the mutation.
func (m *WritingTaskMutation) MinWords() (r int, exists bool) {
	v := m.min_words
	if v == nil {
		return
	}
	return *v, true
}

// OldMinWords returns the old "min_words" field's value of the WritingTask entity.
// If the WritingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingTaskMutation) OldMinWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinWords: %w", err)
	}
	return oldValue.MinWords, nil
}

// AddMinWords adds i to the "min_words" field.
func (m *WritingTaskMutation) AddMinWords(i int) {
	if m.addmin_words != nil {
		*m.addmin_words += i
	} else {
		m.addmin_words = &i
	}
}

// AddedMinWords returns the value that was added to the "min_words" field in this mutation.
func (m *WritingTaskMutation) AddedMinWords() (r int, exists bool) {
	v := m.addmin_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinWords resets all changes to the "min_words" field.
func (m *WritingTaskMutation) ResetMinWords() {
	m.min_words = nil
	m.addmin_words = nil
}

// SetActive sets the "active" field.
func (m *WritingTaskMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WritingTaskMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the WritingTask entity.
// If the WritingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingTaskMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WritingTaskMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WritingTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WritingTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WritingTask entity.
// If the WritingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WritingTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WritingTaskMutation builder.
func (m *WritingTaskMutation) Where(ps ...predicate.WritingTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WritingTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WritingTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WritingTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WritingTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WritingTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WritingTask).
func (m *WritingTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WritingTaskMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task_number != nil {
		fields = append(fields, writingtask.FieldTaskNumber)
	}
	if m.prompt != nil {
		fields = append(fields, writingtask.FieldPrompt)
	}
	if m.min_words != nil {
		fields = append(fields, writingtask.FieldMinWords)
	}
	if m.active != nil {
		fields = append(fields, writingtask.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, writingtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WritingTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case writingtask.FieldTaskNumber:
		return m.TaskNumber()
	case writingtask.FieldPrompt:
		return m.Prompt()
	case writingtask.FieldMinWords:
		return m.MinWords()
	case writingtask.FieldActive:
		return m.Active()
	case writingtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WritingTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case writingtask.FieldTaskNumber:
		return m.OldTaskNumber(ctx)
	case writingtask.FieldPrompt:
		return m.OldPrompt(ctx)
	case writingtask.FieldMinWords:
		return m.OldMinWords(ctx)
	case writingtask.FieldActive:
		return m.OldActive(ctx)
	case writingtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WritingTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WritingTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case writingtask.FieldTaskNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskNumber(v)
		return nil
	case writingtask.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case writingtask.FieldMinWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinWords(v)
		return nil
	case writingtask.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case writingtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WritingTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WritingTaskMutation) AddedFields() []string {
	var fields []string
	if m.addtask_number != nil {
		fields = append(fields, writingtask.FieldTaskNumber)
	}
	if m.addmin_words != nil {
		fields = append(fields, writingtask.FieldMinWords)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WritingTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case writingtask.FieldTaskNumber:
		return m.AddedTaskNumber()
	case writingtask.FieldMinWords:
		return m.AddedMinWords()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WritingTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case writingtask.FieldTaskNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskNumber(v)
		return nil
	case writingtask.FieldMinWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinWords(v)
		return nil
	}
	return fmt.Errorf("unknown WritingTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WritingTaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WritingTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WritingTaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WritingTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WritingTaskMutation) ResetField(name string) error {
	switch name {
	case writingtask.FieldTaskNumber:
		m.ResetTaskNumber()
		return nil
	case writingtask.FieldPrompt:
		m.ResetPrompt()
		return nil
	case writingtask.FieldMinWords:
		m.ResetMinWords()
		return nil
	case writingtask.FieldActive:
		m.ResetActive()
		return nil
	case writingtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WritingTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WritingTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WritingTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WritingTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WritingTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WritingTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WritingTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WritingTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WritingTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WritingTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WritingTask edge %s", name)
}
