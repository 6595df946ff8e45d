// Code generated by ent, DO NOT EDIT.

package speakingpart

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLTE(FieldID, id))
}

// PartNumber applies equality check predicate on the "part_number" field. It's identical to PartNumberEQ.
func PartNumber(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldPartNumber, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldTopic, v))
}

// PrepSeconds applies equality check predicate on the "prep_seconds" field. It's identical to PrepSecondsEQ.
func PrepSeconds(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldPrepSeconds, v))
}

// SpeakSeconds applies equality check predicate on the "speak_seconds" field. It's identical to SpeakSecondsEQ.
func SpeakSeconds(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldSpeakSeconds, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldCreatedAt, v))
}

// PartNumberEQ applies the EQ predicate on the "part_number" field.
func PartNumberEQ(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldPartNumber, v))
}

// PartNumberNEQ applies the NEQ predicate on the "part_number" field.
func PartNumberNEQ(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldPartNumber, v))
}

// PartNumberIn applies the In predicate on the "part_number" field.
func PartNumberIn(vs ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldIn(FieldPartNumber, vs...))
}

// PartNumberNotIn applies the NotIn predicate on the "part_number" field.
func PartNumberNotIn(vs ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNotIn(FieldPartNumber, vs...))
}

// PartNumberGT applies the GT predicate on the "part_number" field.
func PartNumberGT(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGT(FieldPartNumber, v))
}

// PartNumberGTE applies the GTE predicate on the "part_number" field.
func PartNumberGTE(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGTE(FieldPartNumber, v))
}

// PartNumberLT applies the LT predicate on the "part_number" field.
func PartNumberLT(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLT(FieldPartNumber, v))
}

// PartNumberLTE applies the LTE predicate on the "part_number" field.
func PartNumberLTE(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLTE(FieldPartNumber, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldContainsFold(FieldTopic, v))
}

// PrepSecondsEQ applies the EQ predicate on the "prep_seconds" field.
func PrepSecondsEQ(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldPrepSeconds, v))
}

// PrepSecondsNEQ applies the NEQ predicate on the "prep_seconds" field.
func PrepSecondsNEQ(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldPrepSeconds, v))
}

// PrepSecondsIn applies the In predicate on the "prep_seconds" field.
func PrepSecondsIn(vs ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldIn(FieldPrepSeconds, vs...))
}

// PrepSecondsNotIn applies the NotIn predicate on the "prep_seconds" field.
func PrepSecondsNotIn(vs ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNotIn(FieldPrepSeconds, vs...))
}

// PrepSecondsGT applies the GT predicate on the "prep_seconds" field.
func PrepSecondsGT(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGT(FieldPrepSeconds, v))
}

// PrepSecondsGTE applies the GTE predicate on the "prep_seconds" field.
func PrepSecondsGTE(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGTE(FieldPrepSeconds, v))
}

// PrepSecondsLT applies the LT predicate on the "prep_seconds" field.
func PrepSecondsLT(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLT(FieldPrepSeconds, v))
}

// PrepSecondsLTE applies the LTE predicate on the "prep_seconds" field.
func PrepSecondsLTE(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLTE(FieldPrepSeconds, v))
}

// SpeakSecondsEQ applies the EQ predicate on the "speak_seconds" field.
func SpeakSecondsEQ(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldSpeakSeconds, v))
}

// SpeakSecondsNEQ applies the NEQ predicate on the "speak_seconds" field.
func SpeakSecondsNEQ(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldSpeakSeconds, v))
}

// SpeakSecondsIn applies the In predicate on the "speak_seconds" field.
func SpeakSecondsIn(vs ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldIn(FieldSpeakSeconds, vs...))
}

// SpeakSecondsNotIn applies the NotIn predicate on the "speak_seconds" field.
func SpeakSecondsNotIn(vs ...int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNotIn(FieldSpeakSeconds, vs...))
}

// SpeakSecondsGT applies the GT predicate on the "speak_seconds" field.
func SpeakSecondsGT(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGT(FieldSpeakSeconds, v))
}

// SpeakSecondsGTE applies the GTE predicate on the "speak_seconds" field.
func SpeakSecondsGTE(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGTE(FieldSpeakSeconds, v))
}

// SpeakSecondsLT applies the LT predicate on the "speak_seconds" field.
func SpeakSecondsLT(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLT(FieldSpeakSeconds, v))
}

// SpeakSecondsLTE applies the LTE predicate on the "speak_seconds" field.
func SpeakSecondsLTE(v int) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLTE(FieldSpeakSeconds, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpeakingPart) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpeakingPart) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpeakingPart) predicate.SpeakingPart {
	return predicate.SpeakingPart(sql.NotPredicates(p))
}
