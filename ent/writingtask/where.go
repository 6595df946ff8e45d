// Code generated by ent, DO NOT EDIT.

package writingtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLTE(FieldID, id))
}

// TaskNumber applies equality check predicate on the "task_number" field. It's identical to TaskNumberEQ.
func TaskNumber(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldTaskNumber, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldPrompt, v))
}

// MinWords applies equality check predicate on the "min_words" field. It's identical to MinWordsEQ.
func MinWords(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldMinWords, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskNumberEQ applies the EQ predicate on the "task_number" field.
func TaskNumberEQ(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldTaskNumber, v))
}

// TaskNumberNEQ applies the NEQ predicate on the "task_number" field.
func TaskNumberNEQ(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNEQ(FieldTaskNumber, v))
}

// TaskNumberIn applies the In predicate on the "task_number" field.
func TaskNumberIn(vs ...int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldIn(FieldTaskNumber, vs...))
}

// TaskNumberNotIn applies the NotIn predicate on the "task_number" field.
func TaskNumberNotIn(vs ...int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNotIn(FieldTaskNumber, vs...))
}

// TaskNumberGT applies the GT predicate on the "task_number" field.
func TaskNumberGT(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGT(FieldTaskNumber, v))
}

// TaskNumberGTE applies the GTE predicate on the "task_number" field.
func TaskNumberGTE(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGTE(FieldTaskNumber, v))
}

// TaskNumberLT applies the LT predicate on the "task_number" field.
func TaskNumberLT(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLT(FieldTaskNumber, v))
}

// TaskNumberLTE applies the LTE predicate on the "task_number" field.
func TaskNumberLTE(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLTE(FieldTaskNumber, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldContainsFold(FieldPrompt, v))
}

// MinWordsEQ applies the EQ predicate on the "min_words" field.
func MinWordsEQ(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldMinWords, v))
}

// MinWordsNEQ applies the NEQ predicate on the "min_words" field.
func MinWordsNEQ(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNEQ(FieldMinWords, v))
}

// MinWordsIn applies the In predicate on the "min_words" field.
func MinWordsIn(vs ...int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldIn(FieldMinWords, vs...))
}

// MinWordsNotIn applies the NotIn predicate on the "min_words" field.
func MinWordsNotIn(vs ...int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNotIn(FieldMinWords, vs...))
}

// MinWordsGT applies the GT predicate on the "min_words" field.
func MinWordsGT(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGT(FieldMinWords, v))
}

// MinWordsGTE applies the GTE predicate on the "min_words" field.
func MinWordsGTE(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGTE(FieldMinWords, v))
}

// MinWordsLT applies the LT predicate on the "min_words" field.
func MinWordsLT(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLT(FieldMinWords, v))
}

// MinWordsLTE applies the LTE predicate on the "min_words" field.
func MinWordsLTE(v int) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLTE(FieldMinWords, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WritingTask {
	return predicate.WritingTask(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WritingTask) predicate.WritingTask {
	return predicate.WritingTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WritingTask) predicate.WritingTask {
	return predicate.WritingTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WritingTask) predicate.WritingTask {
	return predicate.WritingTask(sql.NotPredicates(p))
}
