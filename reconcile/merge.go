package reconcile

import (
	"strings"

	"github.com/TianMHDev/portfolio-panel/models"
)

// Bucket index used when no category title matches a tool's category label.
// Points at "HERRAMIENTAS & CONCEPTOS" in the seed stack.
const fallbackBucket = 3

// MergeProjects combines the seed list with remote records. A remote project
// is appended only when no entry so far (seed or already appended) carries an
// identical title; the comparison is exact and case-sensitive, and the seed
// entry wins on collision.
func MergeProjects(seedList, remote []models.Project) []models.Project {
	combined := append([]models.Project(nil), seedList...)
	for _, rp := range remote {
		present := false
		for _, p := range combined {
			if p.Title == rp.Title {
				present = true
				break
			}
		}
		if !present {
			combined = append(combined, rp)
		}
	}
	return combined
}

// BucketTools distributes every tool whose status is not LEARNING into the
// stack categories, in place. A tool lands in the first category whose title
// contains its category label as a case-insensitive substring (an empty label
// therefore matches the first category), falling back to fallbackBucket.
// Labels already present are skipped, so re-running the merge on the same
// inputs never duplicates an entry.
func BucketTools(stack []models.TechCategory, tools []models.LearningTool) {
	if len(stack) == 0 {
		return
	}

	for _, tool := range tools {
		if tool.Status == models.StatusLearning {
			continue
		}

		idx := -1
		for i, category := range stack {
			if strings.Contains(strings.ToUpper(category.Title), strings.ToUpper(tool.Category)) {
				idx = i
				break
			}
		}
		if idx == -1 {
			idx = fallbackBucket
			if idx >= len(stack) {
				idx = len(stack) - 1
			}
		}

		label := tool.Name + levelSuffix(tool.Status)

		duplicate := false
		for _, skill := range stack[idx].Skills {
			if skill == label {
				duplicate = true
				break
			}
		}
		if !duplicate {
			stack[idx].Skills = append(stack[idx].Skills, label)
		}
	}
}

// LearningNames returns the names of tools still in LEARNING status, in input
// order.
func LearningNames(tools []models.LearningTool) []string {
	var names []string
	for _, tool := range tools {
		if tool.Status == models.StatusLearning {
			names = append(names, tool.Name)
		}
	}
	return names
}

func levelSuffix(status models.ToolStatus) string {
	switch status {
	case models.StatusBasic:
		return " (Básico)"
	case models.StatusIntermediate:
		return " (Intermedio)"
	case models.StatusMastered:
		return " (Dominado)"
	default:
		return ""
	}
}
