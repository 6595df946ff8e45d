// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSessionID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSection, v))
}

// TaskRef applies equality check predicate on the "task_ref" field. It's identical to TaskRefEQ.
func TaskRef(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTaskRef, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldIdempotencyKey, v))
}

// Band applies equality check predicate on the "band" field. It's identical to BandEQ.
func Band(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldBand, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldFeedback, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldModel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldSection, v))
}

// TaskRefEQ applies the EQ predicate on the "task_ref" field.
func TaskRefEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldTaskRef, v))
}

// TaskRefNEQ applies the NEQ predicate on the "task_ref" field.
func TaskRefNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldTaskRef, v))
}

// TaskRefIn applies the In predicate on the "task_ref" field.
func TaskRefIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldTaskRef, vs...))
}

// TaskRefNotIn applies the NotIn predicate on the "task_ref" field.
func TaskRefNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldTaskRef, vs...))
}

// TaskRefGT applies the GT predicate on the "task_ref" field.
func TaskRefGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldTaskRef, v))
}

// TaskRefGTE applies the GTE predicate on the "task_ref" field.
func TaskRefGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldTaskRef, v))
}

// TaskRefLT applies the LT predicate on the "task_ref" field.
func TaskRefLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldTaskRef, v))
}

// TaskRefLTE applies the LTE predicate on the "task_ref" field.
func TaskRefLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldTaskRef, v))
}

// TaskRefContains applies the Contains predicate on the "task_ref" field.
func TaskRefContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldTaskRef, v))
}

// TaskRefHasPrefix applies the HasPrefix predicate on the "task_ref" field.
func TaskRefHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldTaskRef, v))
}

// TaskRefHasSuffix applies the HasSuffix predicate on the "task_ref" field.
func TaskRefHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldTaskRef, v))
}

// TaskRefEqualFold applies the EqualFold predicate on the "task_ref" field.
func TaskRefEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldTaskRef, v))
}

// TaskRefContainsFold applies the ContainsFold predicate on the "task_ref" field.
func TaskRefContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldTaskRef, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// BandEQ applies the EQ predicate on the "band" field.
func BandEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldBand, v))
}

// BandNEQ applies the NEQ predicate on the "band" field.
func BandNEQ(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldBand, v))
}

// BandIn applies the In predicate on the "band" field.
func BandIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldBand, vs...))
}

// BandNotIn applies the NotIn predicate on the "band" field.
func BandNotIn(vs ...float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldBand, vs...))
}

// BandGT applies the GT predicate on the "band" field.
func BandGT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldBand, v))
}

// BandGTE applies the GTE predicate on the "band" field.
func BandGTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldBand, v))
}

// BandLT applies the LT predicate on the "band" field.
func BandLT(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldBand, v))
}

// BandLTE applies the LTE predicate on the "band" field.
func BandLTE(v float64) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldBand, v))
}

// CriteriaIsNil applies the IsNil predicate on the "criteria" field.
func CriteriaIsNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIsNull(FieldCriteria))
}

// CriteriaNotNil applies the NotNil predicate on the "criteria" field.
func CriteriaNotNil() predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotNull(FieldCriteria))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.FieldContainsFold(FieldModel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationEvent) predicate.EvaluationEvent {
	return predicate.EvaluationEvent(sql.NotPredicates(p))
}
