// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerRecord is the predicate function for answerrecord builders.
type AnswerRecord func(*sql.Selector)

// AudioAsset is the predicate function for audioasset builders.
type AudioAsset func(*sql.Selector)

// EvaluationEvent is the predicate function for evaluationevent builders.
type EvaluationEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ListeningTest is the predicate function for listeningtest builders.
type ListeningTest func(*sql.Selector)

// ReadingTest is the predicate function for readingtest builders.
type ReadingTest func(*sql.Selector)

// SpeakingPart is the predicate function for speakingpart builders.
type SpeakingPart func(*sql.Selector)

// TestSession is the predicate function for testsession builders.
type TestSession func(*sql.Selector)

// WritingTask is the predicate function for writingtask builders.
type WritingTask func(*sql.Selector)
