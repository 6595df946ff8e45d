// Code generated by ent, DO NOT EDIT.

package listeningtest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldDescription, v))
}

// AudioAssetID applies equality check predicate on the "audio_asset_id" field. It's identical to AudioAssetIDEQ.
func AudioAssetID(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldAudioAssetID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldContainsFold(FieldDescription, v))
}

// AudioAssetIDEQ applies the EQ predicate on the "audio_asset_id" field.
func AudioAssetIDEQ(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldAudioAssetID, v))
}

// AudioAssetIDNEQ applies the NEQ predicate on the "audio_asset_id" field.
func AudioAssetIDNEQ(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNEQ(FieldAudioAssetID, v))
}

// AudioAssetIDIn applies the In predicate on the "audio_asset_id" field.
func AudioAssetIDIn(vs ...int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldIn(FieldAudioAssetID, vs...))
}

// AudioAssetIDNotIn applies the NotIn predicate on the "audio_asset_id" field.
func AudioAssetIDNotIn(vs ...int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNotIn(FieldAudioAssetID, vs...))
}

// AudioAssetIDGT applies the GT predicate on the "audio_asset_id" field.
func AudioAssetIDGT(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGT(FieldAudioAssetID, v))
}

// AudioAssetIDGTE applies the GTE predicate on the "audio_asset_id" field.
func AudioAssetIDGTE(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGTE(FieldAudioAssetID, v))
}

// AudioAssetIDLT applies the LT predicate on the "audio_asset_id" field.
func AudioAssetIDLT(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLT(FieldAudioAssetID, v))
}

// AudioAssetIDLTE applies the LTE predicate on the "audio_asset_id" field.
func AudioAssetIDLTE(v int) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLTE(FieldAudioAssetID, v))
}

// AudioAssetIDIsNil applies the IsNil predicate on the "audio_asset_id" field.
func AudioAssetIDIsNil() predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldIsNull(FieldAudioAssetID))
}

// AudioAssetIDNotNil applies the NotNil predicate on the "audio_asset_id" field.
func AudioAssetIDNotNil() predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNotNull(FieldAudioAssetID))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ListeningTest {
	return predicate.ListeningTest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ListeningTest) predicate.ListeningTest {
	return predicate.ListeningTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ListeningTest) predicate.ListeningTest {
	return predicate.ListeningTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ListeningTest) predicate.ListeningTest {
	return predicate.ListeningTest(sql.NotPredicates(p))
}
