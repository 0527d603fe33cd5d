package genai

import (
	"fmt"
	"strings"

	"studyflow/internal/domain"
)

// Curriculum defaults applied when the caller leaves board or grade unset.
const (
	DefaultBoard = "CBSE"
	DefaultGrade = "12"
)

// PlanRequest carries the parameters of one study-plan generation call.
// It is transient; nothing here is persisted.
type PlanRequest struct {
	ExamTitle string
	Subject   string
	Date      string
	Board     string
	ClassName string
}

// StudyPlanPrompt asks for a full study graph for an upcoming exam.
func StudyPlanPrompt(req PlanRequest) string {
	return fmt.Sprintf(`Act as an educational expert and create a detailed study plan for a %sth grade %s student preparing for %s exam in %s scheduled on %s.

The response should be in the following JSON format without any markdown formatting:
{
  "nodes": [
    {
      "id": "unique_id",
      "type": "topic|subtopic",
      "label": "Topic name",
      "description": "Brief description",
      "estimatedHours": number
    }
  ],
  "edges": [
    {
      "id": "unique_id",
      "source": "source_node_id",
      "target": "target_node_id"
    }
  ]
}

Important: Return ONLY the JSON without any markdown formatting, explanation, or code blocks.
Ensure topics are organized in a logical learning sequence.`,
		req.ClassName, req.Board, req.ExamTitle, req.Subject, req.Date)
}

// ChaptersPrompt asks for the chapter list of a subject.
func ChaptersPrompt(subject, board, grade string) string {
	return fmt.Sprintf(`Act as an educational expert for %s board, class %s.

Provide a JSON response with chapters and their topics for the subject: %s.

Format:
[
    {
        "id": 1,
        "title": "Chapter Title",
        "description": "Brief description",
        "difficulty": "Easy/Medium/Hard",
        "estimatedStudyHours": 5,
        "topics": ["Topic 1", "Topic 2", "Topic 3"]
    }
]

Provide only the JSON without additional text.`, board, grade, subject)
}

// TopicsPrompt asks for a detailed topic breakdown of one chapter,
// including a renderable learning-path graph.
func TopicsPrompt(subject, chapter, board, grade string) string {
	return fmt.Sprintf(`Act as an educational expert for %s board, class %s.

Please provide a detailed study plan for the chapter "%s" in the subject "%s".

Format your response as a JSON object with the following structure:
{
    "topics": [
        {
            "id": 1,
            "title": "Topic Title",
            "description": "Detailed description of what this topic covers",
            "keyPoints": ["Key point 1", "Key point 2"],
            "difficulty": "Easy/Medium/Hard",
            "estimatedStudyHours": 2,
            "priority": "High/Medium/Low",
            "prerequisites": ["Topic X", "Topic Y"]
        }
    ],
    "flowData": {
        "nodes": [
            { "id": "1", "position": { "x": 0, "y": 0 }, "data": { "label": "Topic 1" } }
        ],
        "edges": [
            { "id": "e1-2", "source": "1", "target": "2" }
        ]
    },
    "recommendedResources": [
        {
            "title": "Resource Title",
            "type": "Video/Book/Article",
            "description": "Brief description of the resource"
        }
    ]
}

Provide only the JSON object without any additional text or explanation.
For the flowData, create a logical learning path that shows the optimal order to study the topics.`,
		board, grade, chapter, subject)
}

// AllTopicsPrompt asks for topic lists for several chapters at once.
func AllTopicsPrompt(subject string, chapters []string, board, grade string) string {
	var list strings.Builder
	for _, chapter := range chapters {
		fmt.Fprintf(&list, "- %s\n", chapter)
	}
	return fmt.Sprintf(`Act as an educational expert for %s board, class %s.

Please provide topics for the following chapters in the subject "%s":
%s
Format your response as a JSON object with the following structure:
{
    "topicsByChapter": {
        "Chapter 1 Title": ["Topic 1", "Topic 2", "Topic 3"],
        "Chapter 2 Title": ["Topic 1", "Topic 2", "Topic 3"]
    }
}

Provide only the JSON object without any additional text or explanation.`,
		board, grade, subject, list.String())
}

// ChapterFlowPrompt asks for a chapter dependency graph with per-chapter
// study insights and an overall strategy section.
func ChapterFlowPrompt(subject, examType, classLevel string) string {
	if classLevel == "" {
		classLevel = "high school"
	}
	examClause := ""
	if examType != "" {
		examClause = fmt.Sprintf(" for %s exam", examType)
	}
	return fmt.Sprintf(`Act as an educational expert and create a detailed study flow for a %s student studying the subject "%s"%s.

Generate a structured learning path with chapters, their dependencies, and study insights.
The response should be in the following JSON format:
{
  "nodes": [
    {
      "id": "unique_id",
      "type": "topic",
      "label": "Chapter name",
      "description": "Brief description of what this chapter covers",
      "estimatedHours": number,
      "difficulty": "easy|medium|hard",
      "studyInsights": {
        "bestPractices": ["Practice tip 1", "Practice tip 2"],
        "commonMistakes": ["Common mistake 1", "Common mistake 2"],
        "studyTechniques": ["Technique 1", "Technique 2"],
        "resourceRecommendations": ["Resource 1", "Resource 2"]
      }
    }
  ],
  "edges": [
    {
      "id": "unique_id",
      "source": "source_node_id",
      "target": "target_node_id"
    }
  ],
  "overallStudyStrategy": {
    "recommendedApproach": "Brief description of overall approach",
    "timeManagement": "Tips for managing study time",
    "examPreparation": "Specific advice for exam preparation",
    "practiceRecommendations": "Recommendations for practice"
  }
}

Important guidelines:
1. Return ONLY the JSON without any markdown formatting
2. Generate exactly 5-7 chapters (nodes) that are essential for the subject
3. Ensure chapters are organized in a logical learning sequence
4. Create edges that connect chapters in the recommended study order
5. Some chapters may have multiple prerequisites (multiple incoming edges)
6. Use the standard curriculum for %s %s
7. Include detailed study insights for each chapter and an overall study strategy section`,
		classLevel, subject, examClause, classLevel, subject)
}

// QuizPrompt asks for multiple-choice questions on one chapter.
func QuizPrompt(subject, chapter, difficulty string, questionCount int) string {
	return fmt.Sprintf(`Create a quiz for a student studying %s, specifically on the chapter "%s".

Generate %d multiple-choice questions with varying difficulty levels.
The overall difficulty should be: %s (easy/medium/hard).

Format your response as a JSON object with the following structure:
{
  "questions": [
    {
      "id": "1",
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "Option A",
      "explanation": "Detailed explanation of why this is the correct answer",
      "difficulty": "easy/medium/hard",
      "conceptTested": "The specific concept this question tests",
      "recommendedStudyTopic": "What to study if the student gets this wrong"
    }
  ]
}

Ensure questions test different aspects of the chapter and cover key concepts.
Provide clear explanations for each correct answer.`,
		subject, chapter, questionCount, difficulty)
}

// RecommendationPrompt asks for personalized study advice from a scored
// quiz submission.
func RecommendationPrompt(subject, chapter string, score, correct, total int, weakConcepts []string) string {
	var concepts strings.Builder
	for i, concept := range weakConcepts {
		fmt.Fprintf(&concepts, "%d. %s\n", i+1, concept)
	}
	return fmt.Sprintf(`I'm analyzing a student's quiz results on %s, chapter "%s".

The student scored %d%% (%d out of %d correct).

The student struggled with these concepts:
%s
Based on this performance, provide:

1. A personalized study plan focusing on weak areas
2. Specific topics to review in depth
3. Recommended study techniques for these concepts
4. Suggested practice exercises

Format your response as a JSON object with these keys:
{
  "overallAssessment": "Brief assessment of performance",
  "weakAreas": ["List of weak areas"],
  "studyPlan": "Detailed study plan",
  "studyTechniques": ["List of recommended techniques"],
  "practiceExercises": ["List of suggested exercises"]
}`,
		subject, chapter, score, correct, total, concepts.String())
}

// ExplainConceptPrompt asks for four explanation styles of one concept.
func ExplainConceptPrompt(question, interests string) string {
	interestLine := ""
	analogyClause := ""
	if interests != "" {
		interestLine = fmt.Sprintf("The student is interested in: %s\n\n", interests)
		analogyClause = fmt.Sprintf(", ideally connecting to the student's interests in %s", interests)
	}
	return fmt.Sprintf(`I need you to explain the following concept in multiple ways to help a student understand it better:

CONCEPT: %s

%sPlease provide four different explanations:

1. CONCEPTUAL: A clear, straightforward explanation of the concept focusing on the fundamental principles.

2. VISUAL: Describe how this concept could be visualized with a diagram or image.

3. ANALOGICAL: Create analogies that make this concept relatable%s.

4. STEP_BY_STEP: Break down the concept into sequential steps that are easy to follow.

Format your response as JSON with these keys: conceptual, visual, analogical, stepByStep.`,
		question, interestLine, analogyClause)
}

// TaskInsightsPrompt asks for free-text prioritization advice over the
// user's open tasks. This is the one feature with no structured output.
func TaskInsightsPrompt(tasks []domain.Task) string {
	var descriptions strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&descriptions, "- Task: %s, Due: %s, Description: %s\n",
			task.Title, task.DueDate.Format("2006-01-02"), task.Description)
	}
	return fmt.Sprintf(`Act as an academic advisor. Analyze the following academic tasks and provide insights:
1. Identify which tasks are urgent.
2. Suggest how to prioritize them.
3. Recommend any study techniques or tools that can help.
4. If tasks are overdue, suggest how to handle them.

Tasks:
%s`, descriptions.String())
}
