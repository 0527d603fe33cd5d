package genai

import (
	"fmt"

	"studyflow/internal/domain"
)

// Fallback suppliers: deterministic, offline placeholder results used when
// extraction fails on endpoints that promise a well-shaped 200. There is no
// retry of the upstream call anywhere; substitution is the only resilience
// mechanism.

// FallbackChapters returns a minimal schema-valid chapter list.
func FallbackChapters() []domain.Chapter {
	return []domain.Chapter{
		{ID: 1, Title: "Chapter 1", Description: "Fallback chapter", Difficulty: "Medium", EstimatedStudyHours: 3},
		{ID: 2, Title: "Chapter 2", Description: "Fallback chapter", Difficulty: "Medium", EstimatedStudyHours: 4},
	}
}

// FallbackTopicsByChapter yields one placeholder topic list per requested
// chapter, templated from the chapter name.
func FallbackTopicsByChapter(chapters []string) map[string][]string {
	topicsByChapter := make(map[string][]string, len(chapters))
	for _, chapter := range chapters {
		topicsByChapter[chapter] = []string{
			fmt.Sprintf("Introduction to %s", chapter),
			fmt.Sprintf("Key concepts in %s", chapter),
			fmt.Sprintf("Applications of %s", chapter),
		}
	}
	return topicsByChapter
}

// FallbackExplanation returns placeholder text for each explanation style.
func FallbackExplanation() domain.ConceptExplanation {
	return domain.ConceptExplanation{
		Conceptual: "Sorry, I couldn't generate a conceptual explanation at this time.",
		Visual:     "Sorry, I couldn't generate a visual explanation at this time.",
		Analogical: "Sorry, I couldn't generate analogies at this time.",
		StepByStep: "Sorry, I couldn't generate step-by-step instructions at this time.",
	}
}
