package domain

import "time"

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	ID                    string   `json:"id"`
	Question              string   `json:"question"`
	Options               []string `json:"options"`
	CorrectAnswer         string   `json:"correctAnswer"`
	Explanation           string   `json:"explanation"`
	Difficulty            string   `json:"difficulty"`
	ConceptTested         string   `json:"conceptTested"`
	RecommendedStudyTopic string   `json:"recommendedStudyTopic"`
}

// Quiz groups generated questions for one exam chapter.
type Quiz struct {
	ID         string
	ExamID     string
	UserID     string
	Subject    string
	Chapter    string
	Difficulty string
	Questions  []QuizQuestion
	CreatedAt  time.Time
}

// QuizAnswer is one answered question within an attempt.
type QuizAnswer struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	ConceptTested string `json:"conceptTested,omitempty"`
}

// QuizAttempt is one completed run through a quiz.
type QuizAttempt struct {
	ID          string
	QuizID      string
	UserID      string
	Score       int
	Answers     []QuizAnswer
	CompletedAt time.Time
}

// StudyRecommendation is the AI-generated advice produced from one quiz
// submission, persisted per user and exam.
type StudyRecommendation struct {
	OverallAssessment string   `json:"overallAssessment"`
	WeakAreas         []string `json:"weakAreas"`
	StudyPlan         string   `json:"studyPlan"`
	StudyTechniques   []string `json:"studyTechniques"`
	PracticeExercises []string `json:"practiceExercises"`
}
