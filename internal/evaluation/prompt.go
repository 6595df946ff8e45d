package evaluation

import (
	"fmt"
	"strings"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
)

const writingSystem = `You are an experienced IELTS examiner marking Academic Writing.
Score strictly against the public band descriptors. Award each criterion
a band from 0 to 9 in half-point steps. Do not reward length beyond the
minimum; penalize memorized or off-topic responses. Feedback must be
specific to this essay, not generic advice.`

const speakingSystem = `You are an experienced IELTS examiner marking Speaking from a
transcript. Score strictly against the public band descriptors, a band
from 0 to 9 in half-point steps per criterion. Pronunciation can only be
judged from spelling and disfluency markers in the transcript; when the
transcript gives no evidence, score pronunciation in line with the other
criteria. Feedback must be specific to this performance.`

func buildWritingPrompt(req WritingRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Writing Task %d.\n\n", req.TaskNumber)
	fmt.Fprintf(&b, "Task prompt:\n%s\n\n", req.Prompt)
	fmt.Fprintf(&b, "Candidate essay (%d words):\n%s\n", scoring.WordCount(req.Essay), req.Essay)

	min := req.MinWords
	if min == 0 {
		min = scoring.MinWords(req.TaskNumber)
	}
	fmt.Fprintf(&b, "\nThe required minimum is %d words.\n", min)

	return b.String()
}

func buildSpeakingPrompt(req SpeakingRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Speaking Part %d. Topic: %s\n\n", req.PartNumber, req.Topic)
	if len(req.Questions) > 0 {
		b.WriteString("Questions asked:\n")
		for _, q := range req.Questions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Candidate transcript:\n%s\n", req.Transcript)

	return b.String()
}
