package domain

// Chapter is one syllabus chapter in a generated chapter list.
type Chapter struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Difficulty          string   `json:"difficulty"`
	EstimatedStudyHours float64  `json:"estimatedStudyHours"`
	Topics              []string `json:"topics,omitempty"`
}

// Topic is one entry of a per-chapter topic breakdown.
type Topic struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	KeyPoints           []string `json:"keyPoints,omitempty"`
	Difficulty          string   `json:"difficulty"`
	EstimatedStudyHours float64  `json:"estimatedStudyHours"`
	Priority            string   `json:"priority,omitempty"`
	Prerequisites       []string `json:"prerequisites,omitempty"`
}

// FlowNode is the minimal node shape of a topic-breakdown flow, as consumed
// by the graph UI: id, position and a label.
type FlowNode struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	Data     struct {
		Label string `json:"label"`
	} `json:"data"`
}

// FlowData is the renderable learning-path graph of a topic breakdown.
type FlowData struct {
	Nodes []FlowNode  `json:"nodes"`
	Edges []StudyEdge `json:"edges"`
}

// RecommendedResource is a suggested study resource for a chapter.
type RecommendedResource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TopicBreakdown is the full response of the topic-breakdown feature.
type TopicBreakdown struct {
	Topics               []Topic               `json:"topics"`
	FlowData             *FlowData             `json:"flowData,omitempty"`
	RecommendedResources []RecommendedResource `json:"recommendedResources,omitempty"`
}

// ConceptExplanation holds the four explanation styles of the
// explain-concept feature.
type ConceptExplanation struct {
	Conceptual string `json:"conceptual"`
	Analogical string `json:"analogical"`
	Visual     string `json:"visual"`
	StepByStep string `json:"stepByStep"`
}
