package entity

// DecisionDiff partitions changed fields between two versions of a decision.
// Major changes require a full overwrite downstream; minor changes a patch.
// Both lists are sorted alphabetically by field name.
type DecisionDiff struct {
	Major []string `json:"major"`
	Minor []string `json:"minor"`
}

// Empty reports whether the two versions were structurally identical.
func (d DecisionDiff) Empty() bool {
	return len(d.Major) == 0 && len(d.Minor) == 0
}
