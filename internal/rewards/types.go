package rewards

// MilestoneType identifies the category of a celebrated achievement.
type MilestoneType string

const (
	MilestoneBaseline    MilestoneType = "baseline"
	MilestoneMastery     MilestoneType = "mastery"
	MilestoneTargetWords MilestoneType = "target-words"
)

// DisplayName returns a human-readable label for the milestone type.
func (t MilestoneType) DisplayName() string {
	switch t {
	case MilestoneBaseline:
		return "Baseline Established"
	case MilestoneMastery:
		return "Level Mastered"
	case MilestoneTargetWords:
		return "All Target Words Learned"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the milestone type.
func (t MilestoneType) Icon() string {
	switch t {
	case MilestoneBaseline:
		return "📊"
	case MilestoneMastery:
		return "🏆"
	case MilestoneTargetWords:
		return "🎉"
	default:
		return "⭐"
	}
}

// Milestone is one achievement awaiting celebration.
type Milestone struct {
	Type  MilestoneType
	Level int
}
