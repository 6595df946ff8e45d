// Code generated by ent, DO NOT EDIT.

package audioasset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldID, id))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldFileName, v))
}

// StoredName applies equality check predicate on the "stored_name" field. It's identical to StoredNameEQ.
func StoredName(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldStoredName, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldContentType, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldSizeBytes, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldUploadedAt, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldFileName, v))
}

// StoredNameEQ applies the EQ predicate on the "stored_name" field.
func StoredNameEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldStoredName, v))
}

// StoredNameNEQ applies the NEQ predicate on the "stored_name" field.
func StoredNameNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldStoredName, v))
}

// StoredNameIn applies the In predicate on the "stored_name" field.
func StoredNameIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldStoredName, vs...))
}

// StoredNameNotIn applies the NotIn predicate on the "stored_name" field.
func StoredNameNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldStoredName, vs...))
}

// StoredNameGT applies the GT predicate on the "stored_name" field.
func StoredNameGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldStoredName, v))
}

// StoredNameGTE applies the GTE predicate on the "stored_name" field.
func StoredNameGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldStoredName, v))
}

// StoredNameLT applies the LT predicate on the "stored_name" field.
func StoredNameLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldStoredName, v))
}

// StoredNameLTE applies the LTE predicate on the "stored_name" field.
func StoredNameLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldStoredName, v))
}

// StoredNameContains applies the Contains predicate on the "stored_name" field.
func StoredNameContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldStoredName, v))
}

// StoredNameHasPrefix applies the HasPrefix predicate on the "stored_name" field.
func StoredNameHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldStoredName, v))
}

// StoredNameHasSuffix applies the HasSuffix predicate on the "stored_name" field.
func StoredNameHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldStoredName, v))
}

// StoredNameEqualFold applies the EqualFold predicate on the "stored_name" field.
func StoredNameEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldStoredName, v))
}

// StoredNameContainsFold applies the ContainsFold predicate on the "stored_name" field.
func StoredNameContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldStoredName, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldContentType, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldSizeBytes, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldUploadedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AudioAsset) predicate.AudioAsset {
	return predicate.AudioAsset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AudioAsset) predicate.AudioAsset {
	return predicate.AudioAsset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AudioAsset) predicate.AudioAsset {
	return predicate.AudioAsset(sql.NotPredicates(p))
}
