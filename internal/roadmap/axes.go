package roadmap

import (
	"math"
	"sort"

	"roadmap-backend/internal/personas"
	"roadmap-backend/internal/quiz"
)

const (
	// skillsAxis is the synthetic breadth axis every radar chart has.
	skillsAxis = "skills"
	// axisBaseCap reserves headroom above the skill-derived base score
	// for quiz answer bonuses.
	axisBaseCap = 60
	// defaultBaseline stands in for axes the persona author left out of
	// the baseline map.
	defaultBaseline = 50
)

// UserAxisScores computes the user's 0-100 score per competency axis
// from the skills they selected, the persona's tagged skill catalog,
// and the persona's quiz bonus mappings. The result is recomputed in
// full on every call.
func UserAxisScores(r quiz.Responses, selected []string, catalog []personas.SkillEntry, th personas.Thresholds) map[string]int {
	scores := map[string]int{}

	selectedSet := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedSet[s] = true
	}

	total := len(catalog)
	if total < 1 {
		total = 1
	}
	// The breadth ratio counts every selection, catalog member or not;
	// the clamp below bounds over-selection.
	scores[skillsAxis] = roundRatio(len(selected), total, 100)

	// Per-axis base from tagged skills.
	taggedTotal := map[string]int{}
	taggedSelected := map[string]int{}
	for _, entry := range catalog {
		for _, axis := range entry.Axes {
			if axis == skillsAxis {
				continue
			}
			taggedTotal[axis]++
			if selectedSet[entry.Name] {
				taggedSelected[axis]++
			}
		}
	}
	for axis, n := range taggedTotal {
		scores[axis] = roundRatio(taggedSelected[axis], n, axisBaseCap)
	}

	// Quiz answer bonuses, creating axes at a zero base if needed.
	for questionID, mapping := range th.QuizMapping {
		answer, ok := r.Answer(questionID)
		if !ok {
			continue
		}
		bonus, ok := mapping.Values[answer]
		if !ok {
			continue
		}
		scores[mapping.Axis] += bonus
	}

	for axis, score := range scores {
		scores[axis] = clamp(score, 0, 100)
	}
	return scores
}

func roundRatio(num, den, scale int) int {
	return int(math.Round(float64(num) / float64(den) * float64(scale)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BaselineScores returns the persona's average learner score per axis.
// The values are taken as authored; only absence is defaulted.
func BaselineScores(th personas.Thresholds) map[string]int {
	out := make(map[string]int, len(th.AverageBaseline))
	for axis, score := range th.AverageBaseline {
		out[axis] = score
	}
	return out
}

// IdentifyWeakAxes returns the axes where the user scores below the
// baseline, sorted for stable output. An axis missing from one side
// defaults to 0 for the user and 50 for the baseline.
func IdentifyWeakAxes(userScores, baselineScores map[string]int) []string {
	seen := map[string]bool{}
	var weak []string
	consider := func(axis string) {
		if seen[axis] {
			return
		}
		seen[axis] = true
		user := userScores[axis]
		baseline, ok := baselineScores[axis]
		if !ok {
			baseline = defaultBaseline
		}
		if user < baseline {
			weak = append(weak, axis)
		}
	}
	for axis := range userScores {
		consider(axis)
	}
	for axis := range baselineScores {
		consider(axis)
	}
	sort.Strings(weak)
	return weak
}
