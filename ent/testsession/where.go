// Code generated by ent, DO NOT EDIT.

package testsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldID, id))
}

// CandidateName applies equality check predicate on the "candidate_name" field. It's identical to CandidateNameEQ.
func CandidateName(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateEmail applies equality check predicate on the "candidate_email" field. It's identical to CandidateEmailEQ.
func CandidateEmail(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCandidateEmail, v))
}

// CurrentSection applies equality check predicate on the "current_section" field. It's identical to CurrentSectionEQ.
func CurrentSection(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCurrentSection, v))
}

// WritingCompleted applies equality check predicate on the "writing_completed" field. It's identical to WritingCompletedEQ.
func WritingCompleted(v bool) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldWritingCompleted, v))
}

// SpeakingCompleted applies equality check predicate on the "speaking_completed" field. It's identical to SpeakingCompletedEQ.
func SpeakingCompleted(v bool) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldSpeakingCompleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStatus, v))
}

// ListeningTestID applies equality check predicate on the "listening_test_id" field. It's identical to ListeningTestIDEQ.
func ListeningTestID(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldListeningTestID, v))
}

// ReadingTestID applies equality check predicate on the "reading_test_id" field. It's identical to ReadingTestIDEQ.
func ReadingTestID(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingTestID, v))
}

// ListeningBand applies equality check predicate on the "listening_band" field. It's identical to ListeningBandEQ.
func ListeningBand(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldListeningBand, v))
}

// ReadingBand applies equality check predicate on the "reading_band" field. It's identical to ReadingBandEQ.
func ReadingBand(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingBand, v))
}

// WritingBand applies equality check predicate on the "writing_band" field. It's identical to WritingBandEQ.
func WritingBand(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldWritingBand, v))
}

// SpeakingBand applies equality check predicate on the "speaking_band" field. It's identical to SpeakingBandEQ.
func SpeakingBand(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldSpeakingBand, v))
}

// OverallBand applies equality check predicate on the "overall_band" field. It's identical to OverallBandEQ.
func OverallBand(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldOverallBand, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCompletedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// CandidateNameEQ applies the EQ predicate on the "candidate_name" field.
func CandidateNameEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateNameNEQ applies the NEQ predicate on the "candidate_name" field.
func CandidateNameNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCandidateName, v))
}

// CandidateNameIn applies the In predicate on the "candidate_name" field.
func CandidateNameIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCandidateName, vs...))
}

// CandidateNameNotIn applies the NotIn predicate on the "candidate_name" field.
func CandidateNameNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCandidateName, vs...))
}

// CandidateNameGT applies the GT predicate on the "candidate_name" field.
func CandidateNameGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCandidateName, v))
}

// CandidateNameGTE applies the GTE predicate on the "candidate_name" field.
func CandidateNameGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCandidateName, v))
}

// CandidateNameLT applies the LT predicate on the "candidate_name" field.
func CandidateNameLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCandidateName, v))
}

// CandidateNameLTE applies the LTE predicate on the "candidate_name" field.
func CandidateNameLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCandidateName, v))
}

// CandidateNameContains applies the Contains predicate on the "candidate_name" field.
func CandidateNameContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldCandidateName, v))
}

// CandidateNameHasPrefix applies the HasPrefix predicate on the "candidate_name" field.
func CandidateNameHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldCandidateName, v))
}

// CandidateNameHasSuffix applies the HasSuffix predicate on the "candidate_name" field.
func CandidateNameHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldCandidateName, v))
}

// CandidateNameEqualFold applies the EqualFold predicate on the "candidate_name" field.
func CandidateNameEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldCandidateName, v))
}

// CandidateNameContainsFold applies the ContainsFold predicate on the "candidate_name" field.
func CandidateNameContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldCandidateName, v))
}

// CandidateEmailEQ applies the EQ predicate on the "candidate_email" field.
func CandidateEmailEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCandidateEmail, v))
}

// CandidateEmailNEQ applies the NEQ predicate on the "candidate_email" field.
func CandidateEmailNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCandidateEmail, v))
}

// CandidateEmailIn applies the In predicate on the "candidate_email" field.
func CandidateEmailIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCandidateEmail, vs...))
}

// CandidateEmailNotIn applies the NotIn predicate on the "candidate_email" field.
func CandidateEmailNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCandidateEmail, vs...))
}

// CandidateEmailGT applies the GT predicate on the "candidate_email" field.
func CandidateEmailGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCandidateEmail, v))
}

// CandidateEmailGTE applies the GTE predicate on the "candidate_email" field.
func CandidateEmailGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCandidateEmail, v))
}

// CandidateEmailLT applies the LT predicate on the "candidate_email" field.
func CandidateEmailLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCandidateEmail, v))
}

// CandidateEmailLTE applies the LTE predicate on the "candidate_email" field.
func CandidateEmailLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCandidateEmail, v))
}

// CandidateEmailContains applies the Contains predicate on the "candidate_email" field.
func CandidateEmailContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldCandidateEmail, v))
}

// CandidateEmailHasPrefix applies the HasPrefix predicate on the "candidate_email" field.
func CandidateEmailHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldCandidateEmail, v))
}

// CandidateEmailHasSuffix applies the HasSuffix predicate on the "candidate_email" field.
func CandidateEmailHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldCandidateEmail, v))
}

// CandidateEmailEqualFold applies the EqualFold predicate on the "candidate_email" field.
func CandidateEmailEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldCandidateEmail, v))
}

// CandidateEmailContainsFold applies the ContainsFold predicate on the "candidate_email" field.
func CandidateEmailContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldCandidateEmail, v))
}

// CurrentSectionEQ applies the EQ predicate on the "current_section" field.
func CurrentSectionEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCurrentSection, v))
}

// CurrentSectionNEQ applies the NEQ predicate on the "current_section" field.
func CurrentSectionNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCurrentSection, v))
}

// CurrentSectionIn applies the In predicate on the "current_section" field.
func CurrentSectionIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCurrentSection, vs...))
}

// CurrentSectionNotIn applies the NotIn predicate on the "current_section" field.
func CurrentSectionNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCurrentSection, vs...))
}

// CurrentSectionGT applies the GT predicate on the "current_section" field.
func CurrentSectionGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCurrentSection, v))
}

// CurrentSectionGTE applies the GTE predicate on the "current_section" field.
func CurrentSectionGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCurrentSection, v))
}

// CurrentSectionLT applies the LT predicate on the "current_section" field.
func CurrentSectionLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCurrentSection, v))
}

// CurrentSectionLTE applies the LTE predicate on the "current_section" field.
func CurrentSectionLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCurrentSection, v))
}

// CurrentSectionContains applies the Contains predicate on the "current_section" field.
func CurrentSectionContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldCurrentSection, v))
}

// CurrentSectionHasPrefix applies the HasPrefix predicate on the "current_section" field.
func CurrentSectionHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldCurrentSection, v))
}

// CurrentSectionHasSuffix applies the HasSuffix predicate on the "current_section" field.
func CurrentSectionHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldCurrentSection, v))
}

// CurrentSectionEqualFold applies the EqualFold predicate on the "current_section" field.
func CurrentSectionEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldCurrentSection, v))
}

// CurrentSectionContainsFold applies the ContainsFold predicate on the "current_section" field.
func CurrentSectionContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldCurrentSection, v))
}

// WritingCompletedEQ applies the EQ predicate on the "writing_completed" field.
func WritingCompletedEQ(v bool) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldWritingCompleted, v))
}

// WritingCompletedNEQ applies the NEQ predicate on the "writing_completed" field.
func WritingCompletedNEQ(v bool) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldWritingCompleted, v))
}

// SpeakingCompletedEQ applies the EQ predicate on the "speaking_completed" field.
func SpeakingCompletedEQ(v bool) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldSpeakingCompleted, v))
}

// SpeakingCompletedNEQ applies the NEQ predicate on the "speaking_completed" field.
func SpeakingCompletedNEQ(v bool) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldSpeakingCompleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldStatus, v))
}

// ListeningTestIDEQ applies the EQ predicate on the "listening_test_id" field.
func ListeningTestIDEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldListeningTestID, v))
}

// ListeningTestIDNEQ applies the NEQ predicate on the "listening_test_id" field.
func ListeningTestIDNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldListeningTestID, v))
}

// ListeningTestIDIn applies the In predicate on the "listening_test_id" field.
func ListeningTestIDIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldListeningTestID, vs...))
}

// ListeningTestIDNotIn applies the NotIn predicate on the "listening_test_id" field.
func ListeningTestIDNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldListeningTestID, vs...))
}

// ListeningTestIDGT applies the GT predicate on the "listening_test_id" field.
func ListeningTestIDGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldListeningTestID, v))
}

// ListeningTestIDGTE applies the GTE predicate on the "listening_test_id" field.
func ListeningTestIDGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldListeningTestID, v))
}

// ListeningTestIDLT applies the LT predicate on the "listening_test_id" field.
func ListeningTestIDLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldListeningTestID, v))
}

// ListeningTestIDLTE applies the LTE predicate on the "listening_test_id" field.
func ListeningTestIDLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldListeningTestID, v))
}

// ListeningTestIDIsNil applies the IsNil predicate on the "listening_test_id" field.
func ListeningTestIDIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldListeningTestID))
}

// ListeningTestIDNotNil applies the NotNil predicate on the "listening_test_id" field.
func ListeningTestIDNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldListeningTestID))
}

// ReadingTestIDEQ applies the EQ predicate on the "reading_test_id" field.
func ReadingTestIDEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingTestID, v))
}

// ReadingTestIDNEQ applies the NEQ predicate on the "reading_test_id" field.
func ReadingTestIDNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldReadingTestID, v))
}

// ReadingTestIDIn applies the In predicate on the "reading_test_id" field.
func ReadingTestIDIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldReadingTestID, vs...))
}

// ReadingTestIDNotIn applies the NotIn predicate on the "reading_test_id" field.
func ReadingTestIDNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldReadingTestID, vs...))
}

// ReadingTestIDGT applies the GT predicate on the "reading_test_id" field.
func ReadingTestIDGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldReadingTestID, v))
}

// ReadingTestIDGTE applies the GTE predicate on the "reading_test_id" field.
func ReadingTestIDGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldReadingTestID, v))
}

// ReadingTestIDLT applies the LT predicate on the "reading_test_id" field.
func ReadingTestIDLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldReadingTestID, v))
}

// ReadingTestIDLTE applies the LTE predicate on the "reading_test_id" field.
func ReadingTestIDLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldReadingTestID, v))
}

// ReadingTestIDIsNil applies the IsNil predicate on the "reading_test_id" field.
func ReadingTestIDIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldReadingTestID))
}

// ReadingTestIDNotNil applies the NotNil predicate on the "reading_test_id" field.
func ReadingTestIDNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldReadingTestID))
}

// ListeningBandEQ applies the EQ predicate on the "listening_band" field.
func ListeningBandEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldListeningBand, v))
}

// ListeningBandNEQ applies the NEQ predicate on the "listening_band" field.
func ListeningBandNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldListeningBand, v))
}

// ListeningBandIn applies the In predicate on the "listening_band" field.
func ListeningBandIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldListeningBand, vs...))
}

// ListeningBandNotIn applies the NotIn predicate on the "listening_band" field.
func ListeningBandNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldListeningBand, vs...))
}

// ListeningBandGT applies the GT predicate on the "listening_band" field.
func ListeningBandGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldListeningBand, v))
}

// ListeningBandGTE applies the GTE predicate on the "listening_band" field.
func ListeningBandGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldListeningBand, v))
}

// ListeningBandLT applies the LT predicate on the "listening_band" field.
func ListeningBandLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldListeningBand, v))
}

// ListeningBandLTE applies the LTE predicate on the "listening_band" field.
func ListeningBandLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldListeningBand, v))
}

// ListeningBandIsNil applies the IsNil predicate on the "listening_band" field.
func ListeningBandIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldListeningBand))
}

// ListeningBandNotNil applies the NotNil predicate on the "listening_band" field.
func ListeningBandNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldListeningBand))
}

// ReadingBandEQ applies the EQ predicate on the "reading_band" field.
func ReadingBandEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingBand, v))
}

// ReadingBandNEQ applies the NEQ predicate on the "reading_band" field.
func ReadingBandNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldReadingBand, v))
}

// ReadingBandIn applies the In predicate on the "reading_band" field.
func ReadingBandIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldReadingBand, vs...))
}

// ReadingBandNotIn applies the NotIn predicate on the "reading_band" field.
func ReadingBandNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldReadingBand, vs...))
}

// ReadingBandGT applies the GT predicate on the "reading_band" field.
func ReadingBandGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldReadingBand, v))
}

// ReadingBandGTE applies the GTE predicate on the "reading_band" field.
func ReadingBandGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldReadingBand, v))
}

// ReadingBandLT applies the LT predicate on the "reading_band" field.
func ReadingBandLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldReadingBand, v))
}

// ReadingBandLTE applies the LTE predicate on the "reading_band" field.
func ReadingBandLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldReadingBand, v))
}

// ReadingBandIsNil applies the IsNil predicate on the "reading_band" field.
func ReadingBandIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldReadingBand))
}

// ReadingBandNotNil applies the NotNil predicate on the "reading_band" field.
func ReadingBandNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldReadingBand))
}

// WritingBandEQ applies the EQ predicate on the "writing_band" field.
func WritingBandEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldWritingBand, v))
}

// WritingBandNEQ applies the NEQ predicate on the "writing_band" field.
func WritingBandNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldWritingBand, v))
}

// WritingBandIn applies the In predicate on the "writing_band" field.
func WritingBandIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldWritingBand, vs...))
}

// WritingBandNotIn applies the NotIn predicate on the "writing_band" field.
func WritingBandNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldWritingBand, vs...))
}

// WritingBandGT applies the GT predicate on the "writing_band" field.
func WritingBandGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldWritingBand, v))
}

// WritingBandGTE applies the GTE predicate on the "writing_band" field.
func WritingBandGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldWritingBand, v))
}

// WritingBandLT applies the LT predicate on the "writing_band" field.
func WritingBandLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldWritingBand, v))
}

// WritingBandLTE applies the LTE predicate on the "writing_band" field.
func WritingBandLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldWritingBand, v))
}

// WritingBandIsNil applies the IsNil predicate on the "writing_band" field.
func WritingBandIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldWritingBand))
}

// WritingBandNotNil applies the NotNil predicate on the "writing_band" field.
func WritingBandNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldWritingBand))
}

// SpeakingBandEQ applies the EQ predicate on the "speaking_band" field.
func SpeakingBandEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldSpeakingBand, v))
}

// SpeakingBandNEQ applies the NEQ predicate on the "speaking_band" field.
func SpeakingBandNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldSpeakingBand, v))
}

// SpeakingBandIn applies the In predicate on the "speaking_band" field.
func SpeakingBandIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldSpeakingBand, vs...))
}

// SpeakingBandNotIn applies the NotIn predicate on the "speaking_band" field.
func SpeakingBandNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldSpeakingBand, vs...))
}

// SpeakingBandGT applies the GT predicate on the "speaking_band" field.
func SpeakingBandGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldSpeakingBand, v))
}

// SpeakingBandGTE applies the GTE predicate on the "speaking_band" field.
func SpeakingBandGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldSpeakingBand, v))
}

// SpeakingBandLT applies the LT predicate on the "speaking_band" field.
func SpeakingBandLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldSpeakingBand, v))
}

// SpeakingBandLTE applies the LTE predicate on the "speaking_band" field.
func SpeakingBandLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldSpeakingBand, v))
}

// SpeakingBandIsNil applies the IsNil predicate on the "speaking_band" field.
func SpeakingBandIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldSpeakingBand))
}

// SpeakingBandNotNil applies the NotNil predicate on the "speaking_band" field.
func SpeakingBandNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldSpeakingBand))
}

// OverallBandEQ applies the EQ predicate on the "overall_band" field.
func OverallBandEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldOverallBand, v))
}

// OverallBandNEQ applies the NEQ predicate on the "overall_band" field.
func OverallBandNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldOverallBand, v))
}

// OverallBandIn applies the In predicate on the "overall_band" field.
func OverallBandIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldOverallBand, vs...))
}

// OverallBandNotIn applies the NotIn predicate on the "overall_band" field.
func OverallBandNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldOverallBand, vs...))
}

// OverallBandGT applies the GT predicate on the "overall_band" field.
func OverallBandGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldOverallBand, v))
}

// OverallBandGTE applies the GTE predicate on the "overall_band" field.
func OverallBandGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldOverallBand, v))
}

// OverallBandLT applies the LT predicate on the "overall_band" field.
func OverallBandLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldOverallBand, v))
}

// OverallBandLTE applies the LTE predicate on the "overall_band" field.
func OverallBandLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldOverallBand, v))
}

// OverallBandIsNil applies the IsNil predicate on the "overall_band" field.
func OverallBandIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldOverallBand))
}

// OverallBandNotNil applies the NotNil predicate on the "overall_band" field.
func OverallBandNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldOverallBand))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldCompletedAt))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldLastActivityAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.NotPredicates(p))
}
