package catalog

import "strings"

// Department is the coarse two-bucket classification used when the keyword
// classifier is vague or resolves a category missing from reference data.
type Department string

const (
	DepartmentTechnical    Department = Department(SkillGroupTechnical)
	DepartmentSoftServices Department = Department(SkillGroupSoftServices)
)

// technicalSignals are the words that push a report into the technical
// bucket; everything else falls to soft services, which absorbs the generic
// cleaning/arrangement chatter that dominates vague reports.
var technicalSignals = []string{
	"power", "electric", "wiring", "hvac", "cooling",
	"leak", "pipe", "plumb", "wifi", "network", "internet",
	"lift", "elevator", "machine", "equipment", "repair", "broken",
}

// FallbackDepartment buckets free text into technical vs soft services.
// It is deliberately crude: the fine-grained classifier has already failed
// by the time this runs, and every ticket must still land in a skill group.
func FallbackDepartment(text string) Department {
	normalized := strings.ToLower(text)
	for _, signal := range technicalSignals {
		if strings.Contains(normalized, signal) {
			return DepartmentTechnical
		}
	}
	return DepartmentSoftServices
}
