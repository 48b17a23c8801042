package roadmap

import "roadmap-backend/internal/personas"

// Gap lists the skills still to learn, by priority tier.
type Gap struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// FilterUnselected keeps, per tier, the catalog skills the user has
// not selected yet.
func FilterUnselected(sp personas.SkillPriorities, selected []string) Gap {
	selectedSet := toSet(selected)
	return Gap{
		High:   unselectedNames(sp.High, selectedSet, nil),
		Medium: unselectedNames(sp.Medium, selectedSet, nil),
		Low:    unselectedNames(sp.Low, selectedSet, nil),
	}
}

// FilterByWeakAxes narrows the gap to skills relevant to the axes the
// user is weak on. A skill with no axis tags counts as always
// relevant. No weak axes means nothing is flagged through this path.
func FilterByWeakAxes(sp personas.SkillPriorities, selected []string, weakAxes []string) Gap {
	if len(weakAxes) == 0 {
		return Gap{High: []string{}, Medium: []string{}, Low: []string{}}
	}
	selectedSet := toSet(selected)
	weakSet := toSet(weakAxes)
	return Gap{
		High:   unselectedNames(sp.High, selectedSet, weakSet),
		Medium: unselectedNames(sp.Medium, selectedSet, weakSet),
		Low:    unselectedNames(sp.Low, selectedSet, weakSet),
	}
}

// SkillsToLearn picks the gap view to show: the full unselected list
// when overall skill breadth itself is weak, otherwise only skills
// tied to weak axes.
func SkillsToLearn(sp personas.SkillPriorities, selected []string, weakAxes []string) Gap {
	for _, axis := range weakAxes {
		if axis == skillsAxis {
			return FilterUnselected(sp, selected)
		}
	}
	return FilterByWeakAxes(sp, selected, weakAxes)
}

func unselectedNames(list personas.SkillList, selected, weakAxes map[string]bool) []string {
	out := []string{}
	for _, entry := range list {
		if entry.Name == "" || selected[entry.Name] {
			continue
		}
		if weakAxes != nil && len(entry.Axes) > 0 && !intersects(entry.Axes, weakAxes) {
			continue
		}
		out = append(out, entry.Name)
	}
	return out
}

func toSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

func intersects(vals []string, set map[string]bool) bool {
	for _, v := range vals {
		if set[v] {
			return true
		}
	}
	return false
}
