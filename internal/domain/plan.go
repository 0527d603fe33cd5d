package domain

import "time"

// Node types used in generated study graphs.
const (
	NodeTypeTopic    = "topic"
	NodeTypeSubtopic = "subtopic"
)

// Position is a 2-D layout coordinate consumed directly by the graph UI.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StudyInsights carries per-chapter study advice generated alongside a
// chapter-flow graph.
type StudyInsights struct {
	BestPractices           []string `json:"bestPractices,omitempty"`
	CommonMistakes          []string `json:"commonMistakes,omitempty"`
	StudyTechniques         []string `json:"studyTechniques,omitempty"`
	ResourceRecommendations []string `json:"resourceRecommendations,omitempty"`
}

// StudyNode is one topic or subtopic in a study graph. The model assigns
// ids; uniqueness is best effort only.
type StudyNode struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"`
	Label          string         `json:"label"`
	Description    string         `json:"description"`
	EstimatedHours float64        `json:"estimatedHours"`
	Position       Position       `json:"position"`
	Difficulty     string         `json:"difficulty,omitempty"`
	StudyInsights  *StudyInsights `json:"studyInsights,omitempty"`
}

// StudyEdge is a directed prerequisite edge between two nodes.
type StudyEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// StudyPlan is a study graph owned by one exam. It is created once (or
// regenerated on demand) and always replaced wholesale, never patched.
type StudyPlan struct {
	ID        string      `json:"id,omitempty"`
	ExamID    string      `json:"examId,omitempty"`
	Nodes     []StudyNode `json:"nodes"`
	Edges     []StudyEdge `json:"edges"`
	CreatedAt time.Time   `json:"createdAt,omitempty"`
}

// OverallStudyStrategy is the free-form strategy section of a chapter flow.
type OverallStudyStrategy struct {
	RecommendedApproach     string `json:"recommendedApproach,omitempty"`
	TimeManagement          string `json:"timeManagement,omitempty"`
	ExamPreparation         string `json:"examPreparation,omitempty"`
	PracticeRecommendations string `json:"practiceRecommendations,omitempty"`
}

// StudyFlow is the chapter-flow variant of a study graph: the same node and
// edge shapes plus overall strategy advice.
type StudyFlow struct {
	Nodes                []StudyNode           `json:"nodes"`
	Edges                []StudyEdge           `json:"edges"`
	OverallStudyStrategy *OverallStudyStrategy `json:"overallStudyStrategy,omitempty"`
}

// NormalizeGraph repairs a freshly decoded node/edge set so downstream
// consumers can rely on its shape: negative time estimates are clamped to
// zero, missing node types default to topic, and edges referencing an
// absent node id are dropped. Node and edge order is preserved.
func NormalizeGraph(nodes []StudyNode, edges []StudyEdge) ([]StudyNode, []StudyEdge) {
	ids := make(map[string]bool, len(nodes))
	for i := range nodes {
		if nodes[i].EstimatedHours < 0 {
			nodes[i].EstimatedHours = 0
		}
		if nodes[i].Type != NodeTypeTopic && nodes[i].Type != NodeTypeSubtopic {
			nodes[i].Type = NodeTypeTopic
		}
		ids[nodes[i].ID] = true
	}

	kept := make([]StudyEdge, 0, len(edges))
	for _, e := range edges {
		if ids[e.Source] && ids[e.Target] {
			kept = append(kept, e)
		}
	}
	return nodes, kept
}
