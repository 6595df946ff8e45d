// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
)

// TestSessionCreate is the builder for creating a TestSession entity.
type TestSessionCreate struct {
	config
	mutation *TestSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCandidateName sets the "candidate_name" field.
func (_c *TestSessionCreate) SetCandidateName(v string) *TestSessionCreate {
	_c.mutation.SetCandidateName(v)
	return _c
}

// SetCandidateEmail sets the "candidate_email" field.
func (_c *TestSessionCreate) SetCandidateEmail(v string) *TestSessionCreate {
	_c.mutation.SetCandidateEmail(v)
	return _c
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCandidateEmail(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetCandidateEmail(*v)
	}
	return _c
}

// SetCurrentSection sets the "current_section" field.
func (_c *TestSessionCreate) SetCurrentSection(v string) *TestSessionCreate {
	_c.mutation.SetCurrentSection(v)
	return _c
}

// SetNillableCurrentSection sets the "current_section" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCurrentSection(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetCurrentSection(*v)
	}
	return _c
}

// SetWritingCompleted sets the "writing_completed" field.
func (_c *TestSessionCreate) SetWritingCompleted(v bool) *TestSessionCreate {
	_c.mutation.SetWritingCompleted(v)
	return _c
}

// SetNillableWritingCompleted sets the "writing_completed" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableWritingCompleted(v *bool) *TestSessionCreate {
	if v != nil {
		_c.SetWritingCompleted(*v)
	}
	return _c
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (_c *TestSessionCreate) SetSpeakingCompleted(v bool) *TestSessionCreate {
	_c.mutation.SetSpeakingCompleted(v)
	return _c
}

// SetNillableSpeakingCompleted sets the "speaking_completed" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableSpeakingCompleted(v *bool) *TestSessionCreate {
	if v != nil {
		_c.SetSpeakingCompleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TestSessionCreate) SetStatus(v string) *TestSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableStatus(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetListeningTestID sets the "listening_test_id" field.
func (_c *TestSessionCreate) SetListeningTestID(v int) *TestSessionCreate {
	_c.mutation.SetListeningTestID(v)
	return _c
}

// SetNillableListeningTestID sets the "listening_test_id" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableListeningTestID(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetListeningTestID(*v)
	}
	return _c
}

// SetReadingTestID sets the "reading_test_id" field.
func (_c *TestSessionCreate) SetReadingTestID(v int) *TestSessionCreate {
	_c.mutation.SetReadingTestID(v)
	return _c
}

// SetNillableReadingTestID sets the "reading_test_id" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableReadingTestID(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetReadingTestID(*v)
	}
	return _c
}

// SetListeningBand sets the "listening_band" field.
func (_c *TestSessionCreate) SetListeningBand(v float64) *TestSessionCreate {
	_c.mutation.SetListeningBand(v)
	return _c
}

// SetNillableListeningBand sets the "listening_band" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableListeningBand(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetListeningBand(*v)
	}
	return _c
}

// SetReadingBand sets the "reading_band" field.
func (_c *TestSessionCreate) SetReadingBand(v float64) *TestSessionCreate {
	_c.mutation.SetReadingBand(v)
	return _c
}

// SetNillableReadingBand sets the "reading_band" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableReadingBand(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetReadingBand(*v)
	}
	return _c
}

// SetWritingBand sets the "writing_band" field.
func (_c *TestSessionCreate) SetWritingBand(v float64) *TestSessionCreate {
	_c.mutation.SetWritingBand(v)
	return _c
}

// SetNillableWritingBand sets the "writing_band" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableWritingBand(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetWritingBand(*v)
	}
	return _c
}

// SetSpeakingBand sets the "speaking_band" field.
func (_c *TestSessionCreate) SetSpeakingBand(v float64) *TestSessionCreate {
	_c.mutation.SetSpeakingBand(v)
	return _c
}

// SetNillableSpeakingBand sets the "speaking_band" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableSpeakingBand(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetSpeakingBand(*v)
	}
	return _c
}

// SetOverallBand sets the "overall_band" field.
func (_c *TestSessionCreate) SetOverallBand(v float64) *TestSessionCreate {
	_c.mutation.SetOverallBand(v)
	return _c
}

// SetNillableOverallBand sets the "overall_band" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableOverallBand(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetOverallBand(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TestSessionCreate) SetStartedAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableStartedAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TestSessionCreate) SetCompletedAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCompletedAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *TestSessionCreate) SetLastActivityAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableLastActivityAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestSessionCreate) SetID(v string) *TestSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableID(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TestSessionMutation object of the builder.
func (_c *TestSessionCreate) Mutation() *TestSessionMutation {
	return _c.mutation
}

// Save creates the TestSession in the database.
func (_c *TestSessionCreate) Save(ctx context.Context) (*TestSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestSessionCreate) SaveX(ctx context.Context) *TestSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestSessionCreate) defaults() {
	if _, ok := _c.mutation.CandidateEmail(); !ok {
		v := testsession.DefaultCandidateEmail
		_c.mutation.SetCandidateEmail(v)
	}
	if _, ok := _c.mutation.CurrentSection(); !ok {
		v := testsession.DefaultCurrentSection
		_c.mutation.SetCurrentSection(v)
	}
	if _, ok := _c.mutation.WritingCompleted(); !ok {
		v := testsession.DefaultWritingCompleted
		_c.mutation.SetWritingCompleted(v)
	}
	if _, ok := _c.mutation.SpeakingCompleted(); !ok {
		v := testsession.DefaultSpeakingCompleted
		_c.mutation.SetSpeakingCompleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := testsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := testsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := testsession.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestSessionCreate) check() error {
	if _, ok := _c.mutation.CandidateName(); !ok {
		return &ValidationError{Name: "candidate_name", err: errors.New(`ent: missing required field "TestSession.candidate_name"`)}
	}
	if v, ok := _c.mutation.CandidateName(); ok {
		if err := testsession.CandidateNameValidator(v); err != nil {
			return &ValidationError{Name: "candidate_name", err: fmt.Errorf(`ent: validator failed for field "TestSession.candidate_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CandidateEmail(); !ok {
		return &ValidationError{Name: "candidate_email", err: errors.New(`ent: missing required field "TestSession.candidate_email"`)}
	}
	if _, ok := _c.mutation.CurrentSection(); !ok {
		return &ValidationError{Name: "current_section", err: errors.New(`ent: missing required field "TestSession.current_section"`)}
	}
	if _, ok := _c.mutation.WritingCompleted(); !ok {
		return &ValidationError{Name: "writing_completed", err: errors.New(`ent: missing required field "TestSession.writing_completed"`)}
	}
	if _, ok := _c.mutation.SpeakingCompleted(); !ok {
		return &ValidationError{Name: "speaking_completed", err: errors.New(`ent: missing required field "TestSession.speaking_completed"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TestSession.status"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TestSession.started_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "TestSession.last_activity_at"`)}
	}
	return nil
}

func (_c *TestSessionCreate) sqlSave(ctx context.Context) (*TestSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TestSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestSessionCreate) createSpec() (*TestSession, *sqlgraph.CreateSpec) {
	var (
		_node = &TestSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testsession.Table, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CandidateName(); ok {
		_spec.SetField(testsession.FieldCandidateName, field.TypeString, value)
		_node.CandidateName = value
	}
	if value, ok := _c.mutation.CandidateEmail(); ok {
		_spec.SetField(testsession.FieldCandidateEmail, field.TypeString, value)
		_node.CandidateEmail = value
	}
	if value, ok := _c.mutation.CurrentSection(); ok {
		_spec.SetField(testsession.FieldCurrentSection, field.TypeString, value)
		_node.CurrentSection = value
	}
	if value, ok := _c.mutation.WritingCompleted(); ok {
		_spec.SetField(testsession.FieldWritingCompleted, field.TypeBool, value)
		_node.WritingCompleted = value
	}
	if value, ok := _c.mutation.SpeakingCompleted(); ok {
		_spec.SetField(testsession.FieldSpeakingCompleted, field.TypeBool, value)
		_node.SpeakingCompleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(testsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ListeningTestID(); ok {
		_spec.SetField(testsession.FieldListeningTestID, field.TypeInt, value)
		_node.ListeningTestID = value
	}
	if value, ok := _c.mutation.ReadingTestID(); ok {
		_spec.SetField(testsession.FieldReadingTestID, field.TypeInt, value)
		_node.ReadingTestID = value
	}
	if value, ok := _c.mutation.ListeningBand(); ok {
		_spec.SetField(testsession.FieldListeningBand, field.TypeFloat64, value)
		_node.ListeningBand = &value
	}
	if value, ok := _c.mutation.ReadingBand(); ok {
		_spec.SetField(testsession.FieldReadingBand, field.TypeFloat64, value)
		_node.ReadingBand = &value
	}
	if value, ok := _c.mutation.WritingBand(); ok {
		_spec.SetField(testsession.FieldWritingBand, field.TypeFloat64, value)
		_node.WritingBand = &value
	}
	if value, ok := _c.mutation.SpeakingBand(); ok {
		_spec.SetField(testsession.FieldSpeakingBand, field.TypeFloat64, value)
		_node.SpeakingBand = &value
	}
	if value, ok := _c.mutation.OverallBand(); ok {
		_spec.SetField(testsession.FieldOverallBand, field.TypeFloat64, value)
		_node.OverallBand = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(testsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(testsession.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestSession.Create().
//		SetCandidateName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestSessionUpsert) {
//			SetCandidateName(v+v).
//		}).
//		Exec(ctx)
func (_c *TestSessionCreate) OnConflict(opts ...sql.ConflictOption) *TestSessionUpsertOne {
	_c.conflict = opts
	return &TestSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestSessionCreate) OnConflictColumns(columns ...string) *TestSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestSessionUpsertOne{
		create: _c,
	}
}

type (
	// TestSessionUpsertOne is the builder for "upsert"-ing
	//  one TestSession node.
	TestSessionUpsertOne struct {
		create *TestSessionCreate
	}

	// TestSessionUpsert is the "OnConflict" setter.
	TestSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetCandidateName sets the "candidate_name" field.
func (u *TestSessionUpsert) SetCandidateName(v string) *TestSessionUpsert {
	u.Set(testsession.FieldCandidateName, v)
	return u
}

// UpdateCandidateName sets the "candidate_name" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateCandidateName() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldCandidateName)
	return u
}

// SetCandidateEmail sets the "candidate_email" field.
func (u *TestSessionUpsert) SetCandidateEmail(v string) *TestSessionUpsert {
	u.Set(testsession.FieldCandidateEmail, v)
	return u
}

// UpdateCandidateEmail sets the "candidate_email" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateCandidateEmail() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldCandidateEmail)
	return u
}

// SetCurrentSection sets the "current_section" field.
func (u *TestSessionUpsert) SetCurrentSection(v string) *TestSessionUpsert {
	u.Set(testsession.FieldCurrentSection, v)
	return u
}

// UpdateCurrentSection sets the "current_section" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateCurrentSection() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldCurrentSection)
	return u
}

// SetWritingCompleted sets the "writing_completed" field.
func (u *TestSessionUpsert) SetWritingCompleted(v bool) *TestSessionUpsert {
	u.Set(testsession.FieldWritingCompleted, v)
	return u
}

// UpdateWritingCompleted sets the "writing_completed" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateWritingCompleted() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldWritingCompleted)
	return u
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (u *TestSessionUpsert) SetSpeakingCompleted(v bool) *TestSessionUpsert {
	u.Set(testsession.FieldSpeakingCompleted, v)
	return u
}

// UpdateSpeakingCompleted sets the "speaking_completed" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateSpeakingCompleted() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldSpeakingCompleted)
	return u
}

// SetStatus sets the "status" field.
func (u *TestSessionUpsert) SetStatus(v string) *TestSessionUpsert {
	u.Set(testsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateStatus() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldStatus)
	return u
}

// SetListeningTestID sets the "listening_test_id" field.
func (u *TestSessionUpsert) SetListeningTestID(v int) *TestSessionUpsert {
	u.Set(testsession.FieldListeningTestID, v)
	return u
}

// UpdateListeningTestID sets the "listening_test_id" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateListeningTestID() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldListeningTestID)
	return u
}

// AddListeningTestID adds v to the "listening_test_id" field.
func (u *TestSessionUpsert) AddListeningTestID(v int) *TestSessionUpsert {
	u.Add(testsession.FieldListeningTestID, v)
	return u
}

// ClearListeningTestID clears the value of the "listening_test_id" field.
func (u *TestSessionUpsert) ClearListeningTestID() *TestSessionUpsert {
	u.SetNull(testsession.FieldListeningTestID)
	return u
}

// SetReadingTestID sets the "reading_test_id" field.
func (u *TestSessionUpsert) SetReadingTestID(v int) *TestSessionUpsert {
	u.Set(testsession.FieldReadingTestID, v)
	return u
}

// UpdateReadingTestID sets the "reading_test_id" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateReadingTestID() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldReadingTestID)
	return u
}

// AddReadingTestID adds v to the "reading_test_id" field.
func (u *TestSessionUpsert) AddReadingTestID(v int) *TestSessionUpsert {
	u.Add(testsession.FieldReadingTestID, v)
	return u
}

// ClearReadingTestID clears the value of the "reading_test_id" field.
func (u *TestSessionUpsert) ClearReadingTestID() *TestSessionUpsert {
	u.SetNull(testsession.FieldReadingTestID)
	return u
}

// SetListeningBand sets the "listening_band" field.
func (u *TestSessionUpsert) SetListeningBand(v float64) *TestSessionUpsert {
	u.Set(testsession.FieldListeningBand, v)
	return u
}

// UpdateListeningBand sets the "listening_band" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateListeningBand() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldListeningBand)
	return u
}

// AddListeningBand adds v to the "listening_band" field.
func (u *TestSessionUpsert) AddListeningBand(v float64) *TestSessionUpsert {
	u.Add(testsession.FieldListeningBand, v)
	return u
}

// ClearListeningBand clears the value of the "listening_band" field.
func (u *TestSessionUpsert) ClearListeningBand() *TestSessionUpsert {
	u.SetNull(testsession.FieldListeningBand)
	return u
}

// SetReadingBand sets the "reading_band" field.
func (u *TestSessionUpsert) SetReadingBand(v float64) *TestSessionUpsert {
	u.Set(testsession.FieldReadingBand, v)
	return u
}

// UpdateReadingBand sets the "reading_band" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateReadingBand() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldReadingBand)
	return u
}

// AddReadingBand adds v to the "reading_band" field.
func (u *TestSessionUpsert) AddReadingBand(v float64) *TestSessionUpsert {
	u.Add(testsession.FieldReadingBand, v)
	return u
}

// ClearReadingBand clears the value of the "reading_band" field.
func (u *TestSessionUpsert) ClearReadingBand() *TestSessionUpsert {
	u.SetNull(testsession.FieldReadingBand)
	return u
}

// SetWritingBand sets the "writing_band" field.
func (u *TestSessionUpsert) SetWritingBand(v float64) *TestSessionUpsert {
	u.Set(testsession.FieldWritingBand, v)
	return u
}

// UpdateWritingBand sets the "writing_band" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateWritingBand() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldWritingBand)
	return u
}

// AddWritingBand adds v to the "writing_band" field.
func (u *TestSessionUpsert) AddWritingBand(v float64) *TestSessionUpsert {
	u.Add(testsession.FieldWritingBand, v)
	return u
}

// ClearWritingBand clears the value of the "writing_band" field.
func (u *TestSessionUpsert) ClearWritingBand() *TestSessionUpsert {
	u.SetNull(testsession.FieldWritingBand)
	return u
}

// SetSpeakingBand sets the "speaking_band" field.
func (u *TestSessionUpsert) SetSpeakingBand(v float64) *TestSessionUpsert {
	u.Set(testsession.FieldSpeakingBand, v)
	return u
}

// UpdateSpeakingBand sets the "speaking_band" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateSpeakingBand() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldSpeakingBand)
	return u
}

// AddSpeakingBand adds v to the "speaking_band" field.
func (u *TestSessionUpsert) AddSpeakingBand(v float64) *TestSessionUpsert {
	u.Add(testsession.FieldSpeakingBand, v)
	return u
}

// ClearSpeakingBand clears the value of the "speaking_band" field.
func (u *TestSessionUpsert) ClearSpeakingBand() *TestSessionUpsert {
	u.SetNull(testsession.FieldSpeakingBand)
	return u
}

// SetOverallBand sets the "overall_band" field.
func (u *TestSessionUpsert) SetOverallBand(v float64) *TestSessionUpsert {
	u.Set(testsession.FieldOverallBand, v)
	return u
}

// UpdateOverallBand sets the "overall_band" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateOverallBand() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldOverallBand)
	return u
}

// AddOverallBand adds v to the "overall_band" field.
func (u *TestSessionUpsert) AddOverallBand(v float64) *TestSessionUpsert {
	u.Add(testsession.FieldOverallBand, v)
	return u
}

// ClearOverallBand clears the value of the "overall_band" field.
func (u *TestSessionUpsert) ClearOverallBand() *TestSessionUpsert {
	u.SetNull(testsession.FieldOverallBand)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TestSessionUpsert) SetCompletedAt(v time.Time) *TestSessionUpsert {
	u.Set(testsession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateCompletedAt() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TestSessionUpsert) ClearCompletedAt() *TestSessionUpsert {
	u.SetNull(testsession.FieldCompletedAt)
	return u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *TestSessionUpsert) SetLastActivityAt(v time.Time) *TestSessionUpsert {
	u.Set(testsession.FieldLastActivityAt, v)
	return u
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *TestSessionUpsert) UpdateLastActivityAt() *TestSessionUpsert {
	u.SetExcluded(testsession.FieldLastActivityAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TestSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestSessionUpsertOne) UpdateNewValues() *TestSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(testsession.FieldID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(testsession.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestSessionUpsertOne) Ignore() *TestSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestSessionUpsertOne) DoNothing() *TestSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestSessionCreate.OnConflict
// documentation for more info.
func (u *TestSessionUpsertOne) Update(set func(*TestSessionUpsert)) *TestSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateName sets the "candidate_name" field.
func (u *TestSessionUpsertOne) SetCandidateName(v string) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCandidateName(v)
	})
}

// UpdateCandidateName sets the "candidate_name" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateCandidateName() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCandidateName()
	})
}

// SetCandidateEmail sets the "candidate_email" field.
func (u *TestSessionUpsertOne) SetCandidateEmail(v string) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCandidateEmail(v)
	})
}

// UpdateCandidateEmail sets the "candidate_email" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateCandidateEmail() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCandidateEmail()
	})
}

// SetCurrentSection sets the "current_section" field.
func (u *TestSessionUpsertOne) SetCurrentSection(v string) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCurrentSection(v)
	})
}

// UpdateCurrentSection sets the "current_section" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateCurrentSection() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCurrentSection()
	})
}

// SetWritingCompleted sets the "writing_completed" field.
func (u *TestSessionUpsertOne) SetWritingCompleted(v bool) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetWritingCompleted(v)
	})
}

// UpdateWritingCompleted sets the "writing_completed" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateWritingCompleted() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateWritingCompleted()
	})
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (u *TestSessionUpsertOne) SetSpeakingCompleted(v bool) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetSpeakingCompleted(v)
	})
}

// UpdateSpeakingCompleted sets the "speaking_completed" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateSpeakingCompleted() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateSpeakingCompleted()
	})
}

// SetStatus sets the "status" field.
func (u *TestSessionUpsertOne) SetStatus(v string) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateStatus() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetListeningTestID sets the "listening_test_id" field.
func (u *TestSessionUpsertOne) SetListeningTestID(v int) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetListeningTestID(v)
	})
}

// AddListeningTestID adds v to the "listening_test_id" field.
func (u *TestSessionUpsertOne) AddListeningTestID(v int) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddListeningTestID(v)
	})
}

// UpdateListeningTestID sets the "listening_test_id" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateListeningTestID() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateListeningTestID()
	})
}

// ClearListeningTestID clears the value of the "listening_test_id" field.
func (u *TestSessionUpsertOne) ClearListeningTestID() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearListeningTestID()
	})
}

// SetReadingTestID sets the "reading_test_id" field.
func (u *TestSessionUpsertOne) SetReadingTestID(v int) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetReadingTestID(v)
	})
}

// AddReadingTestID adds v to the "reading_test_id" field.
func (u *TestSessionUpsertOne) AddReadingTestID(v int) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddReadingTestID(v)
	})
}

// UpdateReadingTestID sets the "reading_test_id" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateReadingTestID() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateReadingTestID()
	})
}

// ClearReadingTestID clears the value of the "reading_test_id" field.
func (u *TestSessionUpsertOne) ClearReadingTestID() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearReadingTestID()
	})
}

// SetListeningBand sets the "listening_band" field.
func (u *TestSessionUpsertOne) SetListeningBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetListeningBand(v)
	})
}

// AddListeningBand adds v to the "listening_band" field.
func (u *TestSessionUpsertOne) AddListeningBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddListeningBand(v)
	})
}

// UpdateListeningBand sets the "listening_band" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateListeningBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateListeningBand()
	})
}

// ClearListeningBand clears the value of the "listening_band" field.
func (u *TestSessionUpsertOne) ClearListeningBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearListeningBand()
	})
}

// SetReadingBand sets the "reading_band" field.
func (u *TestSessionUpsertOne) SetReadingBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetReadingBand(v)
	})
}

// AddReadingBand adds v to the "reading_band" field.
func (u *TestSessionUpsertOne) AddReadingBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddReadingBand(v)
	})
}

// UpdateReadingBand sets the "reading_band" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateReadingBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateReadingBand()
	})
}

// ClearReadingBand clears the value of the "reading_band" field.
func (u *TestSessionUpsertOne) ClearReadingBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearReadingBand()
	})
}

// SetWritingBand sets the "writing_band" field.
func (u *TestSessionUpsertOne) SetWritingBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetWritingBand(v)
	})
}

// AddWritingBand adds v to the "writing_band" field.
func (u *TestSessionUpsertOne) AddWritingBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddWritingBand(v)
	})
}

// UpdateWritingBand sets the "writing_band" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateWritingBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateWritingBand()
	})
}

// ClearWritingBand clears the value of the "writing_band" field.
func (u *TestSessionUpsertOne) ClearWritingBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearWritingBand()
	})
}

// SetSpeakingBand sets the "speaking_band" field.
func (u *TestSessionUpsertOne) SetSpeakingBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetSpeakingBand(v)
	})
}

// AddSpeakingBand adds v to the "speaking_band" field.
func (u *TestSessionUpsertOne) AddSpeakingBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddSpeakingBand(v)
	})
}

// UpdateSpeakingBand sets the "speaking_band" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateSpeakingBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateSpeakingBand()
	})
}

// ClearSpeakingBand clears the value of the "speaking_band" field.
func (u *TestSessionUpsertOne) ClearSpeakingBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearSpeakingBand()
	})
}

// SetOverallBand sets the "overall_band" field.
func (u *TestSessionUpsertOne) SetOverallBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetOverallBand(v)
	})
}

// AddOverallBand adds v to the "overall_band" field.
func (u *TestSessionUpsertOne) AddOverallBand(v float64) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddOverallBand(v)
	})
}

// UpdateOverallBand sets the "overall_band" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateOverallBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateOverallBand()
	})
}

// ClearOverallBand clears the value of the "overall_band" field.
func (u *TestSessionUpsertOne) ClearOverallBand() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearOverallBand()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TestSessionUpsertOne) SetCompletedAt(v time.Time) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateCompletedAt() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TestSessionUpsertOne) ClearCompletedAt() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *TestSessionUpsertOne) SetLastActivityAt(v time.Time) *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *TestSessionUpsertOne) UpdateLastActivityAt() *TestSessionUpsertOne {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateLastActivityAt()
	})
}

// Exec executes the query.
func (u *TestSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TestSessionUpsertOne.ID is not supported by MySQL driver. Use TestSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestSessionCreateBulk is the builder for creating many TestSession entities in bulk.
type TestSessionCreateBulk struct {
	config
	err      error
	builders []*TestSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the TestSession entities in the database.
func (_c *TestSessionCreateBulk) Save(ctx context.Context) ([]*TestSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestSessionCreateBulk) SaveX(ctx context.Context) []*TestSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestSessionUpsert) {
//			SetCandidateName(v+v).
//		}).
//		Exec(ctx)
func (_c *TestSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestSessionUpsertBulk {
	_c.conflict = opts
	return &TestSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestSessionCreateBulk) OnConflictColumns(columns ...string) *TestSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestSessionUpsertBulk{
		create: _c,
	}
}

// TestSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of TestSession nodes.
type TestSessionUpsertBulk struct {
	create *TestSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TestSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestSessionUpsertBulk) UpdateNewValues() *TestSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(testsession.FieldID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(testsession.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestSessionUpsertBulk) Ignore() *TestSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestSessionUpsertBulk) DoNothing() *TestSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestSessionCreateBulk.OnConflict
// documentation for more info.
func (u *TestSessionUpsertBulk) Update(set func(*TestSessionUpsert)) *TestSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCandidateName sets the "candidate_name" field.
func (u *TestSessionUpsertBulk) SetCandidateName(v string) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCandidateName(v)
	})
}

// UpdateCandidateName sets the "candidate_name" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateCandidateName() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCandidateName()
	})
}

// SetCandidateEmail sets the "candidate_email" field.
func (u *TestSessionUpsertBulk) SetCandidateEmail(v string) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCandidateEmail(v)
	})
}

// UpdateCandidateEmail sets the "candidate_email" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateCandidateEmail() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCandidateEmail()
	})
}

// SetCurrentSection sets the "current_section" field.
func (u *TestSessionUpsertBulk) SetCurrentSection(v string) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCurrentSection(v)
	})
}

// UpdateCurrentSection sets the "current_section" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateCurrentSection() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCurrentSection()
	})
}

// SetWritingCompleted sets the "writing_completed" field.
func (u *TestSessionUpsertBulk) SetWritingCompleted(v bool) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetWritingCompleted(v)
	})
}

// UpdateWritingCompleted sets the "writing_completed" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateWritingCompleted() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateWritingCompleted()
	})
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (u *TestSessionUpsertBulk) SetSpeakingCompleted(v bool) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetSpeakingCompleted(v)
	})
}

// UpdateSpeakingCompleted sets the "speaking_completed" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateSpeakingCompleted() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateSpeakingCompleted()
	})
}

// SetStatus sets the "status" field.
func (u *TestSessionUpsertBulk) SetStatus(v string) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateStatus() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetListeningTestID sets the "listening_test_id" field.
func (u *TestSessionUpsertBulk) SetListeningTestID(v int) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetListeningTestID(v)
	})
}

// AddListeningTestID adds v to the "listening_test_id" field.
func (u *TestSessionUpsertBulk) AddListeningTestID(v int) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddListeningTestID(v)
	})
}

// UpdateListeningTestID sets the "listening_test_id" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateListeningTestID() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateListeningTestID()
	})
}

// ClearListeningTestID clears the value of the "listening_test_id" field.
func (u *TestSessionUpsertBulk) ClearListeningTestID() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearListeningTestID()
	})
}

// SetReadingTestID sets the "reading_test_id" field.
func (u *TestSessionUpsertBulk) SetReadingTestID(v int) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetReadingTestID(v)
	})
}

// AddReadingTestID adds v to the "reading_test_id" field.
func (u *TestSessionUpsertBulk) AddReadingTestID(v int) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddReadingTestID(v)
	})
}

// UpdateReadingTestID sets the "reading_test_id" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateReadingTestID() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateReadingTestID()
	})
}

// ClearReadingTestID clears the value of the "reading_test_id" field.
func (u *TestSessionUpsertBulk) ClearReadingTestID() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearReadingTestID()
	})
}

// SetListeningBand sets the "listening_band" field.
func (u *TestSessionUpsertBulk) SetListeningBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetListeningBand(v)
	})
}

// AddListeningBand adds v to the "listening_band" field.
func (u *TestSessionUpsertBulk) AddListeningBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddListeningBand(v)
	})
}

// UpdateListeningBand sets the "listening_band" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateListeningBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateListeningBand()
	})
}

// ClearListeningBand clears the value of the "listening_band" field.
func (u *TestSessionUpsertBulk) ClearListeningBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearListeningBand()
	})
}

// SetReadingBand sets the "reading_band" field.
func (u *TestSessionUpsertBulk) SetReadingBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetReadingBand(v)
	})
}

// AddReadingBand adds v to the "reading_band" field.
func (u *TestSessionUpsertBulk) AddReadingBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddReadingBand(v)
	})
}

// UpdateReadingBand sets the "reading_band" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateReadingBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateReadingBand()
	})
}

// ClearReadingBand clears the value of the "reading_band" field.
func (u *TestSessionUpsertBulk) ClearReadingBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearReadingBand()
	})
}

// SetWritingBand sets the "writing_band" field.
func (u *TestSessionUpsertBulk) SetWritingBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetWritingBand(v)
	})
}

// AddWritingBand adds v to the "writing_band" field.
func (u *TestSessionUpsertBulk) AddWritingBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddWritingBand(v)
	})
}

// UpdateWritingBand sets the "writing_band" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateWritingBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateWritingBand()
	})
}

// ClearWritingBand clears the value of the "writing_band" field.
func (u *TestSessionUpsertBulk) ClearWritingBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearWritingBand()
	})
}

// SetSpeakingBand sets the "speaking_band" field.
func (u *TestSessionUpsertBulk) SetSpeakingBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetSpeakingBand(v)
	})
}

// AddSpeakingBand adds v to the "speaking_band" field.
func (u *TestSessionUpsertBulk) AddSpeakingBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddSpeakingBand(v)
	})
}

// UpdateSpeakingBand sets the "speaking_band" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateSpeakingBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateSpeakingBand()
	})
}

// ClearSpeakingBand clears the value of the "speaking_band" field.
func (u *TestSessionUpsertBulk) ClearSpeakingBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearSpeakingBand()
	})
}

// SetOverallBand sets the "overall_band" field.
func (u *TestSessionUpsertBulk) SetOverallBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetOverallBand(v)
	})
}

// AddOverallBand adds v to the "overall_band" field.
func (u *TestSessionUpsertBulk) AddOverallBand(v float64) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.AddOverallBand(v)
	})
}

// UpdateOverallBand sets the "overall_band" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateOverallBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateOverallBand()
	})
}

// ClearOverallBand clears the value of the "overall_band" field.
func (u *TestSessionUpsertBulk) ClearOverallBand() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearOverallBand()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TestSessionUpsertBulk) SetCompletedAt(v time.Time) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateCompletedAt() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TestSessionUpsertBulk) ClearCompletedAt() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *TestSessionUpsertBulk) SetLastActivityAt(v time.Time) *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *TestSessionUpsertBulk) UpdateLastActivityAt() *TestSessionUpsertBulk {
	return u.Update(func(s *TestSessionUpsert) {
		s.UpdateLastActivityAt()
	})
}

// Exec executes the query.
func (u *TestSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TestSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
