package dto

import "studyflow/internal/domain"

// StudyPlanRequest asks for a (re)generated study plan for one exam.
// @Description Request body for generating a study plan
type StudyPlanRequest struct {
	ExamID string `json:"examId" validate:"required"`
}

// StudyPlanResponse is the generated study graph. Unlike the other
// generation endpoints the payload is not wrapped in a named key.
type StudyPlanResponse struct {
	Nodes []domain.StudyNode `json:"nodes"`
	Edges []domain.StudyEdge `json:"edges"`
}

// ChaptersRequest identifies the syllabus whose chapter list is wanted.
// Board and grade fall back to curriculum defaults when empty.
type ChaptersRequest struct {
	Subject string `json:"subject" query:"subject" validate:"required"`
	Board   string `json:"board" query:"board"`
	Grade   string `json:"grade" query:"grade"`
}

// ChaptersResponse wraps a generated chapter list.
type ChaptersResponse struct {
	Chapters []domain.Chapter `json:"chapters"`
}

// TopicsRequest identifies one chapter for a detailed topic breakdown.
type TopicsRequest struct {
	Subject string `json:"subject" query:"subject" validate:"required"`
	Chapter string `json:"chapter" query:"chapter" validate:"required"`
	Board   string `json:"board" query:"board"`
	Grade   string `json:"grade" query:"grade"`
}

// AllTopicsRequest asks for topic lists for several chapters in one call.
type AllTopicsRequest struct {
	Subject  string   `json:"subject" validate:"required"`
	Chapters []string `json:"chapters" validate:"required"`
	Board    string   `json:"board"`
	Grade    string   `json:"grade"`
}

// AllTopicsResponse wraps the per-chapter topic lists.
type AllTopicsResponse struct {
	TopicsByChapter map[string][]string `json:"topicsByChapter"`
}

// ChapterFlowRequest asks for a chapter dependency graph with study
// insights for one subject.
type ChapterFlowRequest struct {
	Subject    string `json:"subject" validate:"required"`
	ExamType   string `json:"examType"`
	ClassLevel string `json:"classLevel"`
}

// ChapterFlowResponse wraps the generated chapter flow.
type ChapterFlowResponse struct {
	FlowData domain.StudyFlow `json:"flowData"`
}

// ExplainConceptRequest asks for multi-style explanations of a concept.
type ExplainConceptRequest struct {
	Question  string `json:"question" validate:"required"`
	Interests string `json:"interests"`
}

// TaskInsightsResponse carries free-text prioritization advice over the
// user's open tasks.
type TaskInsightsResponse struct {
	Insights string `json:"insights"`
}
