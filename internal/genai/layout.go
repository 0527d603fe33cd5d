package genai

import "studyflow/internal/domain"

// Grid constants chosen for legibility in the consuming graph UI. They are
// fixed, not derived from node count or label length.
const (
	layoutBaseX    = 150
	layoutBaseY    = 100
	layoutColumns  = 3
	columnSpacing  = 300
	rowSpacing     = 200
)

// AssignPositions places each node on a fixed grid as a pure function of
// its index: three columns left to right, then the next row. Identical
// input ordering always yields identical positions; any finer on-screen
// layout is the UI's concern.
func AssignPositions(nodes []domain.StudyNode) {
	for i := range nodes {
		nodes[i].Position = GridPosition(i)
	}
}

// GridPosition returns the layout coordinate for a node index.
func GridPosition(index int) domain.Position {
	return domain.Position{
		X: float64(layoutBaseX + (index%layoutColumns)*columnSpacing),
		Y: float64(layoutBaseY + (index/layoutColumns)*rowSpacing),
	}
}

// AssignFlowPositions applies the same grid rule to the minimal flow-node
// shape used by topic breakdowns.
func AssignFlowPositions(nodes []domain.FlowNode) {
	for i := range nodes {
		nodes[i].Position = GridPosition(i)
	}
}
