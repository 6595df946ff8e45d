// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/answerrecord"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/evaluationevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/llmrequestevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/readingtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerrecordFields := schema.AnswerRecord{}.Fields()
	_ = answerrecordFields
	// answerrecordDescSessionID is the schema descriptor for session_id field.
	answerrecordDescSessionID := answerrecordFields[0].Descriptor()
	// answerrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerrecord.SessionIDValidator = answerrecordDescSessionID.Validators[0].(func(string) error)
	// answerrecordDescQuestionID is the schema descriptor for question_id field.
	answerrecordDescQuestionID := answerrecordFields[1].Descriptor()
	// answerrecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerrecord.QuestionIDValidator = answerrecordDescQuestionID.Validators[0].(func(string) error)
	// answerrecordDescSection is the schema descriptor for section field.
	answerrecordDescSection := answerrecordFields[2].Descriptor()
	// answerrecord.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	answerrecord.SectionValidator = answerrecordDescSection.Validators[0].(func(string) error)
	// answerrecordDescAnswer is the schema descriptor for answer field.
	answerrecordDescAnswer := answerrecordFields[3].Descriptor()
	// answerrecord.DefaultAnswer holds the default value on creation for the answer field.
	answerrecord.DefaultAnswer = answerrecordDescAnswer.Default.(string)
	// answerrecordDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	answerrecordDescTimeSpentSecs := answerrecordFields[4].Descriptor()
	// answerrecord.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	answerrecord.DefaultTimeSpentSecs = answerrecordDescTimeSpentSecs.Default.(int)
	// answerrecordDescReceivedAt is the schema descriptor for received_at field.
	answerrecordDescReceivedAt := answerrecordFields[5].Descriptor()
	// answerrecord.DefaultReceivedAt holds the default value on creation for the received_at field.
	answerrecord.DefaultReceivedAt = answerrecordDescReceivedAt.Default.(func() time.Time)
	// answerrecord.UpdateDefaultReceivedAt holds the default value on update for the received_at field.
	answerrecord.UpdateDefaultReceivedAt = answerrecordDescReceivedAt.UpdateDefault.(func() time.Time)
	audioassetFields := schema.AudioAsset{}.Fields()
	_ = audioassetFields
	// audioassetDescFileName is the schema descriptor for file_name field.
	audioassetDescFileName := audioassetFields[0].Descriptor()
	// audioasset.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	audioasset.FileNameValidator = audioassetDescFileName.Validators[0].(func(string) error)
	// audioassetDescStoredName is the schema descriptor for stored_name field.
	audioassetDescStoredName := audioassetFields[1].Descriptor()
	// audioasset.StoredNameValidator is a validator for the "stored_name" field. It is called by the builders before save.
	audioasset.StoredNameValidator = audioassetDescStoredName.Validators[0].(func(string) error)
	// audioassetDescContentType is the schema descriptor for content_type field.
	audioassetDescContentType := audioassetFields[2].Descriptor()
	// audioasset.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	audioasset.ContentTypeValidator = audioassetDescContentType.Validators[0].(func(string) error)
	// audioassetDescUploadedAt is the schema descriptor for uploaded_at field.
	audioassetDescUploadedAt := audioassetFields[4].Descriptor()
	// audioasset.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	audioasset.DefaultUploadedAt = audioassetDescUploadedAt.Default.(func() time.Time)
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescSessionID is the schema descriptor for session_id field.
	evaluationeventDescSessionID := evaluationeventFields[0].Descriptor()
	// evaluationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	evaluationevent.SessionIDValidator = evaluationeventDescSessionID.Validators[0].(func(string) error)
	// evaluationeventDescSection is the schema descriptor for section field.
	evaluationeventDescSection := evaluationeventFields[1].Descriptor()
	// evaluationevent.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	evaluationevent.SectionValidator = evaluationeventDescSection.Validators[0].(func(string) error)
	// evaluationeventDescTaskRef is the schema descriptor for task_ref field.
	evaluationeventDescTaskRef := evaluationeventFields[2].Descriptor()
	// evaluationevent.TaskRefValidator is a validator for the "task_ref" field. It is called by the builders before save.
	evaluationevent.TaskRefValidator = evaluationeventDescTaskRef.Validators[0].(func(string) error)
	// evaluationeventDescIdempotencyKey is the schema descriptor for idempotency_key field.
	evaluationeventDescIdempotencyKey := evaluationeventFields[3].Descriptor()
	// evaluationevent.IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	evaluationevent.IdempotencyKeyValidator = evaluationeventDescIdempotencyKey.Validators[0].(func(string) error)
	// evaluationeventDescFeedback is the schema descriptor for feedback field.
	evaluationeventDescFeedback := evaluationeventFields[6].Descriptor()
	// evaluationevent.DefaultFeedback holds the default value on creation for the feedback field.
	evaluationevent.DefaultFeedback = evaluationeventDescFeedback.Default.(string)
	// evaluationeventDescModel is the schema descriptor for model field.
	evaluationeventDescModel := evaluationeventFields[7].Descriptor()
	// evaluationevent.DefaultModel holds the default value on creation for the model field.
	evaluationevent.DefaultModel = evaluationeventDescModel.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	listeningtestFields := schema.ListeningTest{}.Fields()
	_ = listeningtestFields
	// listeningtestDescTitle is the schema descriptor for title field.
	listeningtestDescTitle := listeningtestFields[0].Descriptor()
	// listeningtest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	listeningtest.TitleValidator = listeningtestDescTitle.Validators[0].(func(string) error)
	// listeningtestDescDescription is the schema descriptor for description field.
	listeningtestDescDescription := listeningtestFields[1].Descriptor()
	// listeningtest.DefaultDescription holds the default value on creation for the description field.
	listeningtest.DefaultDescription = listeningtestDescDescription.Default.(string)
	// listeningtestDescActive is the schema descriptor for active field.
	listeningtestDescActive := listeningtestFields[4].Descriptor()
	// listeningtest.DefaultActive holds the default value on creation for the active field.
	listeningtest.DefaultActive = listeningtestDescActive.Default.(bool)
	// listeningtestDescCreatedAt is the schema descriptor for created_at field.
	listeningtestDescCreatedAt := listeningtestFields[5].Descriptor()
	// listeningtest.DefaultCreatedAt holds the default value on creation for the created_at field.
	listeningtest.DefaultCreatedAt = listeningtestDescCreatedAt.Default.(func() time.Time)
	readingtestFields := schema.ReadingTest{}.Fields()
	_ = readingtestFields
	// readingtestDescTitle is the schema descriptor for title field.
	readingtestDescTitle := readingtestFields[0].Descriptor()
	// readingtest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	readingtest.TitleValidator = readingtestDescTitle.Validators[0].(func(string) error)
	// readingtestDescDescription is the schema descriptor for description field.
	readingtestDescDescription := readingtestFields[1].Descriptor()
	// readingtest.DefaultDescription holds the default value on creation for the description field.
	readingtest.DefaultDescription = readingtestDescDescription.Default.(string)
	// readingtestDescActive is the schema descriptor for active field.
	readingtestDescActive := readingtestFields[3].Descriptor()
	// readingtest.DefaultActive holds the default value on creation for the active field.
	readingtest.DefaultActive = readingtestDescActive.Default.(bool)
	// readingtestDescCreatedAt is the schema descriptor for created_at field.
	readingtestDescCreatedAt := readingtestFields[4].Descriptor()
	// readingtest.DefaultCreatedAt holds the default value on creation for the created_at field.
	readingtest.DefaultCreatedAt = readingtestDescCreatedAt.Default.(func() time.Time)
	speakingpartFields := schema.SpeakingPart{}.Fields()
	_ = speakingpartFields
	// speakingpartDescPartNumber is the schema descriptor for part_number field.
	speakingpartDescPartNumber := speakingpartFields[0].Descriptor()
	// speakingpart.PartNumberValidator is a validator for the "part_number" field. It is called by the builders before save.
	speakingpart.PartNumberValidator = speakingpartDescPartNumber.Validators[0].(func(int) error)
	// speakingpartDescTopic is the schema descriptor for topic field.
	speakingpartDescTopic := speakingpartFields[1].Descriptor()
	// speakingpart.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	speakingpart.TopicValidator = speakingpartDescTopic.Validators[0].(func(string) error)
	// speakingpartDescPrepSeconds is the schema descriptor for prep_seconds field.
	speakingpartDescPrepSeconds := speakingpartFields[3].Descriptor()
	// speakingpart.DefaultPrepSeconds holds the default value on creation for the prep_seconds field.
	speakingpart.DefaultPrepSeconds = speakingpartDescPrepSeconds.Default.(int)
	// speakingpartDescSpeakSeconds is the schema descriptor for speak_seconds field.
	speakingpartDescSpeakSeconds := speakingpartFields[4].Descriptor()
	// speakingpart.DefaultSpeakSeconds holds the default value on creation for the speak_seconds field.
	speakingpart.DefaultSpeakSeconds = speakingpartDescSpeakSeconds.Default.(int)
	// speakingpartDescActive is the schema descriptor for active field.
	speakingpartDescActive := speakingpartFields[5].Descriptor()
	// speakingpart.DefaultActive holds the default value on creation for the active field.
	speakingpart.DefaultActive = speakingpartDescActive.Default.(bool)
	// speakingpartDescCreatedAt is the schema descriptor for created_at field.
	speakingpartDescCreatedAt := speakingpartFields[6].Descriptor()
	// speakingpart.DefaultCreatedAt holds the default value on creation for the created_at field.
	speakingpart.DefaultCreatedAt = speakingpartDescCreatedAt.Default.(func() time.Time)
	testsessionFields := schema.TestSession{}.Fields()
	_ = testsessionFields
	// testsessionDescCandidateName is the schema descriptor for candidate_name field.
	testsessionDescCandidateName := testsessionFields[1].Descriptor()
	// testsession.CandidateNameValidator is a validator for the "candidate_name" field. It is called by the builders before save.
	testsession.CandidateNameValidator = testsessionDescCandidateName.Validators[0].(func(string) error)
	// testsessionDescCandidateEmail is the schema descriptor for candidate_email field.
	testsessionDescCandidateEmail := testsessionFields[2].Descriptor()
	// testsession.DefaultCandidateEmail holds the default value on creation for the candidate_email field.
	testsession.DefaultCandidateEmail = testsessionDescCandidateEmail.Default.(string)
	// testsessionDescCurrentSection is the schema descriptor for current_section field.
	testsessionDescCurrentSection := testsessionFields[3].Descriptor()
	// testsession.DefaultCurrentSection holds the default value on creation for the current_section field.
	testsession.DefaultCurrentSection = testsessionDescCurrentSection.Default.(string)
	// testsessionDescWritingCompleted is the schema descriptor for writing_completed field.
	testsessionDescWritingCompleted := testsessionFields[4].Descriptor()
	// testsession.DefaultWritingCompleted holds the default value on creation for the writing_completed field.
	testsession.DefaultWritingCompleted = testsessionDescWritingCompleted.Default.(bool)
	// testsessionDescSpeakingCompleted is the schema descriptor for speaking_completed field.
	testsessionDescSpeakingCompleted := testsessionFields[5].Descriptor()
	// testsession.DefaultSpeakingCompleted holds the default value on creation for the speaking_completed field.
	testsession.DefaultSpeakingCompleted = testsessionDescSpeakingCompleted.Default.(bool)
	// testsessionDescStatus is the schema descriptor for status field.
	testsessionDescStatus := testsessionFields[6].Descriptor()
	// testsession.DefaultStatus holds the default value on creation for the status field.
	testsession.DefaultStatus = testsessionDescStatus.Default.(string)
	// testsessionDescStartedAt is the schema descriptor for started_at field.
	testsessionDescStartedAt := testsessionFields[14].Descriptor()
	// testsession.DefaultStartedAt holds the default value on creation for the started_at field.
	testsession.DefaultStartedAt = testsessionDescStartedAt.Default.(func() time.Time)
	// testsessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	testsessionDescLastActivityAt := testsessionFields[16].Descriptor()
	// testsession.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	testsession.DefaultLastActivityAt = testsessionDescLastActivityAt.Default.(func() time.Time)
	// testsessionDescID is the schema descriptor for id field.
	testsessionDescID := testsessionFields[0].Descriptor()
	// testsession.DefaultID holds the default value on creation for the id field.
	testsession.DefaultID = testsessionDescID.Default.(func() string)
	writingtaskFields := schema.WritingTask{}.Fields()
	_ = writingtaskFields
	// writingtaskDescTaskNumber is the schema descriptor for task_number field.
	writingtaskDescTaskNumber := writingtaskFields[0].Descriptor()
	// writingtask.TaskNumberValidator is a validator for the "task_number" field. It is called by the builders before save.
	writingtask.TaskNumberValidator = writingtaskDescTaskNumber.Validators[0].(func(int) error)
	// writingtaskDescPrompt is the schema descriptor for prompt field.
	writingtaskDescPrompt := writingtaskFields[1].Descriptor()
	// writingtask.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	writingtask.PromptValidator = writingtaskDescPrompt.Validators[0].(func(string) error)
	// writingtaskDescMinWords is the schema descriptor for min_words field.
	writingtaskDescMinWords := writingtaskFields[2].Descriptor()
	// writingtask.DefaultMinWords holds the default value on creation for the min_words field.
	writingtask.DefaultMinWords = writingtaskDescMinWords.Default.(int)
	// writingtaskDescActive is the schema descriptor for active field.
	writingtaskDescActive := writingtaskFields[3].Descriptor()
	// writingtask.DefaultActive holds the default value on creation for the active field.
	writingtask.DefaultActive = writingtaskDescActive.Default.(bool)
	// writingtaskDescCreatedAt is the schema descriptor for created_at field.
	writingtaskDescCreatedAt := writingtaskFields[4].Descriptor()
	// writingtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	writingtask.DefaultCreatedAt = writingtaskDescCreatedAt.Default.(func() time.Time)
}
