// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
)

// TestSessionUpdate is the builder for updating TestSession entities.
type TestSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TestSessionMutation
}

// Where appends a list predicates to the TestSessionUpdate builder.
func (_u *TestSessionUpdate) Where(ps ...predicate.TestSession) *TestSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *TestSessionUpdate) SetCandidateName(v string) *TestSessionUpdate {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCandidateName(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetCandidateEmail sets the "candidate_email" field.
func (_u *TestSessionUpdate) SetCandidateEmail(v string) *TestSessionUpdate {
	_u.mutation.SetCandidateEmail(v)
	return _u
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCandidateEmail(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetCandidateEmail(*v)
	}
	return _u
}

// SetCurrentSection sets the "current_section" field.
func (_u *TestSessionUpdate) SetCurrentSection(v string) *TestSessionUpdate {
	_u.mutation.SetCurrentSection(v)
	return _u
}

// SetNillableCurrentSection sets the "current_section" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCurrentSection(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetCurrentSection(*v)
	}
	return _u
}

// SetWritingCompleted sets the "writing_completed" field.
func (_u *TestSessionUpdate) SetWritingCompleted(v bool) *TestSessionUpdate {
	_u.mutation.SetWritingCompleted(v)
	return _u
}

// SetNillableWritingCompleted sets the "writing_completed" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableWritingCompleted(v *bool) *TestSessionUpdate {
	if v != nil {
		_u.SetWritingCompleted(*v)
	}
	return _u
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (_u *TestSessionUpdate) SetSpeakingCompleted(v bool) *TestSessionUpdate {
	_u.mutation.SetSpeakingCompleted(v)
	return _u
}

// SetNillableSpeakingCompleted sets the "speaking_completed" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableSpeakingCompleted(v *bool) *TestSessionUpdate {
	if v != nil {
		_u.SetSpeakingCompleted(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestSessionUpdate) SetStatus(v string) *TestSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableStatus(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetListeningTestID sets the "listening_test_id" field.
func (_u *TestSessionUpdate) SetListeningTestID(v int) *TestSessionUpdate {
	_u.mutation.ResetListeningTestID()
	_u.mutation.SetListeningTestID(v)
	return _u
}

// SetNillableListeningTestID sets the "listening_test_id" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableListeningTestID(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetListeningTestID(*v)
	}
	return _u
}

// AddListeningTestID adds value to the "listening_test_id" field.
func (_u *TestSessionUpdate) AddListeningTestID(v int) *TestSessionUpdate {
	_u.mutation.AddListeningTestID(v)
	return _u
}

// ClearListeningTestID clears the value of the "listening_test_id" field.
func (_u *TestSessionUpdate) ClearListeningTestID() *TestSessionUpdate {
	_u.mutation.ClearListeningTestID()
	return _u
}

// SetReadingTestID sets the "reading_test_id" field.
func (_u *TestSessionUpdate) SetReadingTestID(v int) *TestSessionUpdate {
	_u.mutation.ResetReadingTestID()
	_u.mutation.SetReadingTestID(v)
	return _u
}

// SetNillableReadingTestID sets the "reading_test_id" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableReadingTestID(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetReadingTestID(*v)
	}
	return _u
}

// AddReadingTestID adds value to the "reading_test_id" field.
func (_u *TestSessionUpdate) AddReadingTestID(v int) *TestSessionUpdate {
	_u.mutation.AddReadingTestID(v)
	return _u
}

// ClearReadingTestID clears the value of the "reading_test_id" field.
func (_u *TestSessionUpdate) ClearReadingTestID() *TestSessionUpdate {
	_u.mutation.ClearReadingTestID()
	return _u
}

// SetListeningBand sets the "listening_band" field.
func (_u *TestSessionUpdate) SetListeningBand(v float64) *TestSessionUpdate {
	_u.mutation.ResetListeningBand()
	_u.mutation.SetListeningBand(v)
	return _u
}

// SetNillableListeningBand sets the "listening_band" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableListeningBand(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetListeningBand(*v)
	}
	return _u
}

// AddListeningBand adds value to the "listening_band" field.
func (_u *TestSessionUpdate) AddListeningBand(v float64) *TestSessionUpdate {
	_u.mutation.AddListeningBand(v)
	return _u
}

// ClearListeningBand clears the value of the "listening_band" field.
func (_u *TestSessionUpdate) ClearListeningBand() *TestSessionUpdate {
	_u.mutation.ClearListeningBand()
	return _u
}

// SetReadingBand sets the "reading_band" field.
func (_u *TestSessionUpdate) SetReadingBand(v float64) *TestSessionUpdate {
	_u.mutation.ResetReadingBand()
	_u.mutation.SetReadingBand(v)
	return _u
}

// SetNillableReadingBand sets the "reading_band" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableReadingBand(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetReadingBand(*v)
	}
	return _u
}

// AddReadingBand adds value to the "reading_band" field.
func (_u *TestSessionUpdate) AddReadingBand(v float64) *TestSessionUpdate {
	_u.mutation.AddReadingBand(v)
	return _u
}

// ClearReadingBand clears the value of the "reading_band" field.
func (_u *TestSessionUpdate) ClearReadingBand() *TestSessionUpdate {
	_u.mutation.ClearReadingBand()
	return _u
}

// SetWritingBand sets the "writing_band" field.
func (_u *TestSessionUpdate) SetWritingBand(v float64) *TestSessionUpdate {
	_u.mutation.ResetWritingBand()
	_u.mutation.SetWritingBand(v)
	return _u
}

// SetNillableWritingBand sets the "writing_band" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableWritingBand(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetWritingBand(*v)
	}
	return _u
}

// AddWritingBand adds value to the "writing_band" field.
func (_u *TestSessionUpdate) AddWritingBand(v float64) *TestSessionUpdate {
	_u.mutation.AddWritingBand(v)
	return _u
}

// ClearWritingBand clears the value of the "writing_band" field.
func (_u *TestSessionUpdate) ClearWritingBand() *TestSessionUpdate {
	_u.mutation.ClearWritingBand()
	return _u
}

// SetSpeakingBand sets the "speaking_band" field.
func (_u *TestSessionUpdate) SetSpeakingBand(v float64) *TestSessionUpdate {
	_u.mutation.ResetSpeakingBand()
	_u.mutation.SetSpeakingBand(v)
	return _u
}

// SetNillableSpeakingBand sets the "speaking_band" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableSpeakingBand(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetSpeakingBand(*v)
	}
	return _u
}

// AddSpeakingBand adds value to the "speaking_band" field.
func (_u *TestSessionUpdate) AddSpeakingBand(v float64) *TestSessionUpdate {
	_u.mutation.AddSpeakingBand(v)
	return _u
}

// ClearSpeakingBand clears the value of the "speaking_band" field.
func (_u *TestSessionUpdate) ClearSpeakingBand() *TestSessionUpdate {
	_u.mutation.ClearSpeakingBand()
	return _u
}

// SetOverallBand sets the "overall_band" field.
func (_u *TestSessionUpdate) SetOverallBand(v float64) *TestSessionUpdate {
	_u.mutation.ResetOverallBand()
	_u.mutation.SetOverallBand(v)
	return _u
}

// SetNillableOverallBand sets the "overall_band" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableOverallBand(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetOverallBand(*v)
	}
	return _u
}

// AddOverallBand adds value to the "overall_band" field.
func (_u *TestSessionUpdate) AddOverallBand(v float64) *TestSessionUpdate {
	_u.mutation.AddOverallBand(v)
	return _u
}

// ClearOverallBand clears the value of the "overall_band" field.
func (_u *TestSessionUpdate) ClearOverallBand() *TestSessionUpdate {
	_u.mutation.ClearOverallBand()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestSessionUpdate) SetCompletedAt(v time.Time) *TestSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCompletedAt(v *time.Time) *TestSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TestSessionUpdate) ClearCompletedAt() *TestSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *TestSessionUpdate) SetLastActivityAt(v time.Time) *TestSessionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableLastActivityAt(v *time.Time) *TestSessionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// Mutation returns the TestSessionMutation object of the builder.
func (_u *TestSessionUpdate) Mutation() *TestSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestSessionUpdate) check() error {
	if v, ok := _u.mutation.CandidateName(); ok {
		if err := testsession.CandidateNameValidator(v); err != nil {
			return &ValidationError{Name: "candidate_name", err: fmt.Errorf(`ent: validator failed for field "TestSession.candidate_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TestSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testsession.Table, testsession.Columns, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(testsession.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateEmail(); ok {
		_spec.SetField(testsession.FieldCandidateEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentSection(); ok {
		_spec.SetField(testsession.FieldCurrentSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.WritingCompleted(); ok {
		_spec.SetField(testsession.FieldWritingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpeakingCompleted(); ok {
		_spec.SetField(testsession.FieldSpeakingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ListeningTestID(); ok {
		_spec.SetField(testsession.FieldListeningTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedListeningTestID(); ok {
		_spec.AddField(testsession.FieldListeningTestID, field.TypeInt, value)
	}
	if _u.mutation.ListeningTestIDCleared() {
		_spec.ClearField(testsession.FieldListeningTestID, field.TypeInt)
	}
	if value, ok := _u.mutation.ReadingTestID(); ok {
		_spec.SetField(testsession.FieldReadingTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingTestID(); ok {
		_spec.AddField(testsession.FieldReadingTestID, field.TypeInt, value)
	}
	if _u.mutation.ReadingTestIDCleared() {
		_spec.ClearField(testsession.FieldReadingTestID, field.TypeInt)
	}
	if value, ok := _u.mutation.ListeningBand(); ok {
		_spec.SetField(testsession.FieldListeningBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedListeningBand(); ok {
		_spec.AddField(testsession.FieldListeningBand, field.TypeFloat64, value)
	}
	if _u.mutation.ListeningBandCleared() {
		_spec.ClearField(testsession.FieldListeningBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReadingBand(); ok {
		_spec.SetField(testsession.FieldReadingBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadingBand(); ok {
		_spec.AddField(testsession.FieldReadingBand, field.TypeFloat64, value)
	}
	if _u.mutation.ReadingBandCleared() {
		_spec.ClearField(testsession.FieldReadingBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WritingBand(); ok {
		_spec.SetField(testsession.FieldWritingBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWritingBand(); ok {
		_spec.AddField(testsession.FieldWritingBand, field.TypeFloat64, value)
	}
	if _u.mutation.WritingBandCleared() {
		_spec.ClearField(testsession.FieldWritingBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SpeakingBand(); ok {
		_spec.SetField(testsession.FieldSpeakingBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeakingBand(); ok {
		_spec.AddField(testsession.FieldSpeakingBand, field.TypeFloat64, value)
	}
	if _u.mutation.SpeakingBandCleared() {
		_spec.ClearField(testsession.FieldSpeakingBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OverallBand(); ok {
		_spec.SetField(testsession.FieldOverallBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallBand(); ok {
		_spec.AddField(testsession.FieldOverallBand, field.TypeFloat64, value)
	}
	if _u.mutation.OverallBandCleared() {
		_spec.ClearField(testsession.FieldOverallBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(testsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(testsession.FieldLastActivityAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestSessionUpdateOne is the builder for updating a single TestSession entity.
type TestSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestSessionMutation
}

// SetCandidateName sets the "candidate_name" field.
func (_u *TestSessionUpdateOne) SetCandidateName(v string) *TestSessionUpdateOne {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCandidateName(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetCandidateEmail sets the "candidate_email" field.
func (_u *TestSessionUpdateOne) SetCandidateEmail(v string) *TestSessionUpdateOne {
	_u.mutation.SetCandidateEmail(v)
	return _u
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCandidateEmail(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCandidateEmail(*v)
	}
	return _u
}

// SetCurrentSection sets the "current_section" field.
func (_u *TestSessionUpdateOne) SetCurrentSection(v string) *TestSessionUpdateOne {
	_u.mutation.SetCurrentSection(v)
	return _u
}

// SetNillableCurrentSection sets the "current_section" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCurrentSection(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCurrentSection(*v)
	}
	return _u
}

// SetWritingCompleted sets the "writing_completed" field.
func (_u *TestSessionUpdateOne) SetWritingCompleted(v bool) *TestSessionUpdateOne {
	_u.mutation.SetWritingCompleted(v)
	return _u
}

// SetNillableWritingCompleted sets the "writing_completed" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableWritingCompleted(v *bool) *TestSessionUpdateOne {
	if v != nil {
		_u.SetWritingCompleted(*v)
	}
	return _u
}

// SetSpeakingCompleted sets the "speaking_completed" field.
func (_u *TestSessionUpdateOne) SetSpeakingCompleted(v bool) *TestSessionUpdateOne {
	_u.mutation.SetSpeakingCompleted(v)
	return _u
}

// SetNillableSpeakingCompleted sets the "speaking_completed" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableSpeakingCompleted(v *bool) *TestSessionUpdateOne {
	if v != nil {
		_u.SetSpeakingCompleted(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestSessionUpdateOne) SetStatus(v string) *TestSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableStatus(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetListeningTestID sets the "listening_test_id" field.
func (_u *TestSessionUpdateOne) SetListeningTestID(v int) *TestSessionUpdateOne {
	_u.mutation.ResetListeningTestID()
	_u.mutation.SetListeningTestID(v)
	return _u
}

// SetNillableListeningTestID sets the "listening_test_id" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableListeningTestID(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetListeningTestID(*v)
	}
	return _u
}

// AddListeningTestID adds value to the "listening_test_id" field.
func (_u *TestSessionUpdateOne) AddListeningTestID(v int) *TestSessionUpdateOne {
	_u.mutation.AddListeningTestID(v)
	return _u
}

// ClearListeningTestID clears the value of the "listening_test_id" field.
func (_u *TestSessionUpdateOne) ClearListeningTestID() *TestSessionUpdateOne {
	_u.mutation.ClearListeningTestID()
	return _u
}

// SetReadingTestID sets the "reading_test_id" field.
func (_u *TestSessionUpdateOne) SetReadingTestID(v int) *TestSessionUpdateOne {
	_u.mutation.ResetReadingTestID()
	_u.mutation.SetReadingTestID(v)
	return _u
}

// SetNillableReadingTestID sets the "reading_test_id" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableReadingTestID(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetReadingTestID(*v)
	}
	return _u
}

// AddReadingTestID adds value to the "reading_test_id" field.
func (_u *TestSessionUpdateOne) AddReadingTestID(v int) *TestSessionUpdateOne {
	_u.mutation.AddReadingTestID(v)
	return _u
}

// ClearReadingTestID clears the value of the "reading_test_id" field.
func (_u *TestSessionUpdateOne) ClearReadingTestID() *TestSessionUpdateOne {
	_u.mutation.ClearReadingTestID()
	return _u
}

// SetListeningBand sets the "listening_band" field.
func (_u *TestSessionUpdateOne) SetListeningBand(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetListeningBand()
	_u.mutation.SetListeningBand(v)
	return _u
}

// SetNillableListeningBand sets the "listening_band" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableListeningBand(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetListeningBand(*v)
	}
	return _u
}

// AddListeningBand adds value to the "listening_band" field.
func (_u *TestSessionUpdateOne) AddListeningBand(v float64) *TestSessionUpdateOne {
	_u.mutation.AddListeningBand(v)
	return _u
}

// ClearListeningBand clears the value of the "listening_band" field.
func (_u *TestSessionUpdateOne) ClearListeningBand() *TestSessionUpdateOne {
	_u.mutation.ClearListeningBand()
	return _u
}

// SetReadingBand sets the "reading_band" field.
func (_u *TestSessionUpdateOne) SetReadingBand(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetReadingBand()
	_u.mutation.SetReadingBand(v)
	return _u
}

// SetNillableReadingBand sets the "reading_band" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableReadingBand(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetReadingBand(*v)
	}
	return _u
}

// AddReadingBand adds value to the "reading_band" field.
func (_u *TestSessionUpdateOne) AddReadingBand(v float64) *TestSessionUpdateOne {
	_u.mutation.AddReadingBand(v)
	return _u
}

// ClearReadingBand clears the value of the "reading_band" field.
func (_u *TestSessionUpdateOne) ClearReadingBand() *TestSessionUpdateOne {
	_u.mutation.ClearReadingBand()
	return _u
}

// SetWritingBand sets the "writing_band" field.
func (_u *TestSessionUpdateOne) SetWritingBand(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetWritingBand()
	_u.mutation.SetWritingBand(v)
	return _u
}

// SetNillableWritingBand sets the "writing_band" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableWritingBand(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetWritingBand(*v)
	}
	return _u
}

// AddWritingBand adds value to the "writing_band" field.
func (_u *TestSessionUpdateOne) AddWritingBand(v float64) *TestSessionUpdateOne {
	_u.mutation.AddWritingBand(v)
	return _u
}

// ClearWritingBand clears the value of the "writing_band" field.
func (_u *TestSessionUpdateOne) ClearWritingBand() *TestSessionUpdateOne {
	_u.mutation.ClearWritingBand()
	return _u
}

// SetSpeakingBand sets the "speaking_band" field.
func (_u *TestSessionUpdateOne) SetSpeakingBand(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetSpeakingBand()
	_u.mutation.SetSpeakingBand(v)
	return _u
}

// SetNillableSpeakingBand sets the "speaking_band" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableSpeakingBand(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetSpeakingBand(*v)
	}
	return _u
}

// AddSpeakingBand adds value to the "speaking_band" field.
func (_u *TestSessionUpdateOne) AddSpeakingBand(v float64) *TestSessionUpdateOne {
	_u.mutation.AddSpeakingBand(v)
	return _u
}

// ClearSpeakingBand clears the value of the "speaking_band" field.
func (_u *TestSessionUpdateOne) ClearSpeakingBand() *TestSessionUpdateOne {
	_u.mutation.ClearSpeakingBand()
	return _u
}

// SetOverallBand sets the "overall_band" field.
func (_u *TestSessionUpdateOne) SetOverallBand(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetOverallBand()
	_u.mutation.SetOverallBand(v)
	return _u
}

// SetNillableOverallBand sets the "overall_band" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableOverallBand(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetOverallBand(*v)
	}
	return _u
}

// AddOverallBand adds value to the "overall_band" field.
func (_u *TestSessionUpdateOne) AddOverallBand(v float64) *TestSessionUpdateOne {
	_u.mutation.AddOverallBand(v)
	return _u
}

// ClearOverallBand clears the value of the "overall_band" field.
func (_u *TestSessionUpdateOne) ClearOverallBand() *TestSessionUpdateOne {
	_u.mutation.ClearOverallBand()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestSessionUpdateOne) SetCompletedAt(v time.Time) *TestSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TestSessionUpdateOne) ClearCompletedAt() *TestSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *TestSessionUpdateOne) SetLastActivityAt(v time.Time) *TestSessionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableLastActivityAt(v *time.Time) *TestSessionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// Mutation returns the TestSessionMutation object of the builder.
func (_u *TestSessionUpdateOne) Mutation() *TestSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestSessionUpdate builder.
func (_u *TestSessionUpdateOne) Where(ps ...predicate.TestSession) *TestSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestSessionUpdateOne) Select(field string, fields ...string) *TestSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestSession entity.
func (_u *TestSessionUpdateOne) Save(ctx context.Context) (*TestSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestSessionUpdateOne) SaveX(ctx context.Context) *TestSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestSessionUpdateOne) check() error {
	if v, ok := _u.mutation.CandidateName(); ok {
		if err := testsession.CandidateNameValidator(v); err != nil {
			return &ValidationError{Name: "candidate_name", err: fmt.Errorf(`ent: validator failed for field "TestSession.candidate_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TestSessionUpdateOne) sqlSave(ctx context.Context) (_node *TestSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testsession.Table, testsession.Columns, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testsession.FieldID)
		for _, f := range fields {
			if !testsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(testsession.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateEmail(); ok {
		_spec.SetField(testsession.FieldCandidateEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentSection(); ok {
		_spec.SetField(testsession.FieldCurrentSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.WritingCompleted(); ok {
		_spec.SetField(testsession.FieldWritingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpeakingCompleted(); ok {
		_spec.SetField(testsession.FieldSpeakingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ListeningTestID(); ok {
		_spec.SetField(testsession.FieldListeningTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedListeningTestID(); ok {
		_spec.AddField(testsession.FieldListeningTestID, field.TypeInt, value)
	}
	if _u.mutation.ListeningTestIDCleared() {
		_spec.ClearField(testsession.FieldListeningTestID, field.TypeInt)
	}
	if value, ok := _u.mutation.ReadingTestID(); ok {
		_spec.SetField(testsession.FieldReadingTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingTestID(); ok {
		_spec.AddField(testsession.FieldReadingTestID, field.TypeInt, value)
	}
	if _u.mutation.ReadingTestIDCleared() {
		_spec.ClearField(testsession.FieldReadingTestID, field.TypeInt)
	}
	if value, ok := _u.mutation.ListeningBand(); ok {
		_spec.SetField(testsession.FieldListeningBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedListeningBand(); ok {
		_spec.AddField(testsession.FieldListeningBand, field.TypeFloat64, value)
	}
	if _u.mutation.ListeningBandCleared() {
		_spec.ClearField(testsession.FieldListeningBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReadingBand(); ok {
		_spec.SetField(testsession.FieldReadingBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadingBand(); ok {
		_spec.AddField(testsession.FieldReadingBand, field.TypeFloat64, value)
	}
	if _u.mutation.ReadingBandCleared() {
		_spec.ClearField(testsession.FieldReadingBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WritingBand(); ok {
		_spec.SetField(testsession.FieldWritingBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWritingBand(); ok {
		_spec.AddField(testsession.FieldWritingBand, field.TypeFloat64, value)
	}
	if _u.mutation.WritingBandCleared() {
		_spec.ClearField(testsession.FieldWritingBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SpeakingBand(); ok {
		_spec.SetField(testsession.FieldSpeakingBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeakingBand(); ok {
		_spec.AddField(testsession.FieldSpeakingBand, field.TypeFloat64, value)
	}
	if _u.mutation.SpeakingBandCleared() {
		_spec.ClearField(testsession.FieldSpeakingBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.OverallBand(); ok {
		_spec.SetField(testsession.FieldOverallBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallBand(); ok {
		_spec.AddField(testsession.FieldOverallBand, field.TypeFloat64, value)
	}
	if _u.mutation.OverallBandCleared() {
		_spec.ClearField(testsession.FieldOverallBand, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(testsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(testsession.FieldLastActivityAt, field.TypeTime, value)
	}
	_node = &TestSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
