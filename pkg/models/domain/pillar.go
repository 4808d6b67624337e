package domain

type Pillar struct {
	Label string
	ID    string
}

// Pillars is the fixed traversal order used when generating and creating workloads.
var Pillars = []Pillar{
	{Label: "SEC", ID: "security"},
	{Label: "REL", ID: "reliability"},
	{Label: "OPS", ID: "operationalExcellence"},
	{Label: "PERF", ID: "performance"},
	{Label: "COST", ID: "costOptimization"},
	{Label: "SUS", ID: "sustainability"},
}

func PillarIDs() []string {
	ids := make([]string, 0, len(Pillars))
	for _, p := range Pillars {
		ids = append(ids, p.ID)
	}
	return ids
}
