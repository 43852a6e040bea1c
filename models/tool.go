package models

// ToolStatus is the domain level recorded for a learning tool.
type ToolStatus string

const (
	StatusLearning     ToolStatus = "LEARNING"
	StatusBasic        ToolStatus = "BASIC"
	StatusIntermediate ToolStatus = "INTERMEDIATE"
	StatusMastered     ToolStatus = "MASTERED"
)

// Tool category labels as they appear in the admin form's select box.
const (
	CategoryLanguages   = "LENGUAJES & FRONTEND"
	CategoryFrameworks  = "BACKEND FRAMEWORKS"
	CategoryPersistence = "DATOS & PERSISTENCIA"
	CategoryTooling     = "HERRAMIENTAS & CONCEPTOS"
)

// LearningTool is a skill/tool record owned by the backend. Tools with status
// LEARNING feed the "currently learning" display; everything else is bucketed
// into the public tech-stack categories.
type LearningTool struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Status   ToolStatus `json:"status"`
	Progress int        `json:"progress"`
}
