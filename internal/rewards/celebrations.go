package rewards

import "sort"

// Celebrations records which milestones have already been shown.
type Celebrations struct {
	Baseline    bool         `json:"baseline"`
	Levels      map[int]bool `json:"levels"`
	TargetWords bool         `json:"targetWords"`
}

// Progress is the achievement state a participant has reached.
type Progress struct {
	BaselineEstablished bool
	MasteredLevels      []int
	TargetWordsComplete bool
}

// Pending returns milestones reached but not yet celebrated.
func (c Celebrations) Pending(p Progress) []Milestone {
	var out []Milestone
	if p.BaselineEstablished && !c.Baseline {
		out = append(out, Milestone{Type: MilestoneBaseline})
	}
	levels := append([]int(nil), p.MasteredLevels...)
	sort.Ints(levels)
	for _, l := range levels {
		if !c.Levels[l] {
			out = append(out, Milestone{Type: MilestoneMastery, Level: l})
		}
	}
	if p.TargetWordsComplete && !c.TargetWords {
		out = append(out, Milestone{Type: MilestoneTargetWords})
	}
	return out
}

// Dismiss marks m as celebrated.
func (c *Celebrations) Dismiss(m Milestone) {
	switch m.Type {
	case MilestoneBaseline:
		c.Baseline = true
	case MilestoneMastery:
		if c.Levels == nil {
			c.Levels = make(map[int]bool)
		}
		c.Levels[m.Level] = true
	case MilestoneTargetWords:
		c.TargetWords = true
	}
}
