package roadmap

import (
	"math"
	"sort"
)

// MatchScore is the weighted skill match against a role category.
type MatchScore struct {
	MatchScore    int `json:"matchScore"`
	WeightedScore int `json:"weightedScore"`
	TotalWeight   int `json:"totalWeight"`
}

// CalculateMatchScore scores the user's skills against a category
// using the HIGH=3 MEDIUM=2 LOW=1 weight table.
func CalculateMatchScore(userSkills []string, category string) MatchScore {
	priorities := SkillsWithPriorities(category)
	if len(priorities) == 0 {
		return MatchScore{}
	}

	userSet := toSet(userSkills)
	var weighted, total int
	for skill, priority := range priorities {
		w := priority.Weight()
		total += w
		if userSet[skill] {
			weighted += w
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(weighted) / float64(total) * 100))
	}
	return MatchScore{MatchScore: score, WeightedScore: weighted, TotalWeight: total}
}

// SkillGapAnalysis reports which category skills the user has and is
// missing, by priority.
type SkillGapAnalysis struct {
	ExistingSkills    []string `json:"existingSkills"`
	MissingSkills     Gap      `json:"missingSkills"`
	TotalSkillsNeeded int      `json:"totalSkillsNeeded"`
	SkillsAcquired    int      `json:"skillsAcquired"`
}

func AnalyzeSkillGaps(userSkills []string, category string) SkillGapAnalysis {
	priorities := SkillsWithPriorities(category)
	userSet := toSet(userSkills)

	analysis := SkillGapAnalysis{
		ExistingSkills:    []string{},
		MissingSkills:     Gap{High: []string{}, Medium: []string{}, Low: []string{}},
		TotalSkillsNeeded: len(priorities),
	}

	for _, skill := range AllSkillsForCategory(category) {
		if userSet[skill] {
			analysis.ExistingSkills = append(analysis.ExistingSkills, skill)
			continue
		}
		switch priorities[skill] {
		case PriorityHigh:
			analysis.MissingSkills.High = append(analysis.MissingSkills.High, skill)
		case PriorityMedium:
			analysis.MissingSkills.Medium = append(analysis.MissingSkills.Medium, skill)
		default:
			analysis.MissingSkills.Low = append(analysis.MissingSkills.Low, skill)
		}
	}
	analysis.SkillsAcquired = len(analysis.ExistingSkills)
	return analysis
}

// PrioritizedSkill is one skill annotated with its weight for display.
type PrioritizedSkill struct {
	Skill    string   `json:"skill"`
	Priority Priority `json:"priority"`
	Weight   int      `json:"weight"`
}

// PrioritizeSkills sorts skills by descending weight. The sort is
// stable, so ties keep their input order.
func PrioritizeSkills(skills []string, category string) []PrioritizedSkill {
	priorities := SkillsWithPriorities(category)
	out := make([]PrioritizedSkill, 0, len(skills))
	for _, skill := range skills {
		priority, ok := priorities[skill]
		if !ok {
			priority = PriorityLow
		}
		out = append(out, PrioritizedSkill{Skill: skill, Priority: priority, Weight: priority.Weight()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

// TopSkillsToLearn returns up to count missing skills, highest
// priority first.
func TopSkillsToLearn(missing Gap, count int) []string {
	out := make([]string, 0, count)
	for _, tier := range [][]string{missing.High, missing.Medium, missing.Low} {
		if len(out) >= count {
			break
		}
		out = append(out, tier...)
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// Timeline estimates how long closing the gap takes and the weekly
// effort needed to hit the user's chosen timeline.
type Timeline struct {
	EstimatedMonths    int `json:"estimatedMonths"`
	EffortPerWeek      int `json:"effortPerWeek"`
	TotalSkillsToLearn int `json:"totalSkillsToLearn"`
}

const (
	weeksPerHighSkill   = 4
	weeksPerMediumSkill = 2
	weeksPerLowSkill    = 1
	maxEffortPerWeek    = 20
)

var timelineMonths = map[string]float64{
	"3-6 months":     5,
	"6-9 months":     7.5,
	"9-12 months":    10,
	"12-18 months":   15,
	"18+ months":     20,
	"just_exploring": 0,
}

// CalculateTimeline applies weeks-per-skill by priority, an experience
// speedup, and the user's chosen timeline to produce an estimate.
func CalculateTimeline(userSkills []string, category, userTimeline string, yearsExperience float64) Timeline {
	gaps := AnalyzeSkillGaps(userSkills, category)

	totalWeeks := float64(len(gaps.MissingSkills.High)*weeksPerHighSkill +
		len(gaps.MissingSkills.Medium)*weeksPerMediumSkill +
		len(gaps.MissingSkills.Low)*weeksPerLowSkill)

	switch {
	case yearsExperience > 5:
		totalWeeks *= 0.7
	case yearsExperience > 2:
		totalWeeks *= 0.9
	}

	estimatedMonths := int(math.Ceil(totalWeeks / 4))

	targetMonths, ok := timelineMonths[userTimeline]
	if !ok || targetMonths == 0 {
		targetMonths = float64(estimatedMonths)
	}

	effort := 0
	if targetMonths > 0 {
		effort = int(math.Ceil(totalWeeks * 10 / (targetMonths * 4)))
	}
	if effort > maxEffortPerWeek {
		effort = maxEffortPerWeek
	}

	return Timeline{
		EstimatedMonths:    estimatedMonths,
		EffortPerWeek:      effort,
		TotalSkillsToLearn: len(gaps.MissingSkills.High) + len(gaps.MissingSkills.Medium) + len(gaps.MissingSkills.Low),
	}
}
