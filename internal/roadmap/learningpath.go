package roadmap

import (
	"math"
	"regexp"
	"strconv"

	"roadmap-backend/internal/personas"
	"roadmap-backend/internal/quiz"
)

const (
	// dsaFoundationCeiling is the self-rated problem solving level at or
	// below which a full foundation phase is prepended.
	dsaFoundationCeiling = 10
	// dsaEmphasisCeiling is the level at or below which DSA is only
	// emphasized inside the first existing phase.
	dsaEmphasisCeiling = 50

	beginnerCoverage     = 0.4
	intermediateCoverage = 0.85
)

const foundationPhaseTitle = "Foundation: Data Structures & Algorithms Basics"

func foundationPhase() personas.Phase {
	return personas.Phase{
		Title:       foundationPhaseTitle,
		Duration:    "4-6 weeks",
		Description: "Master fundamental DSA concepts needed for interviews",
		KeyTopics: []string{
			"Arrays and Strings",
			"Linked Lists",
			"Stacks and Queues",
			"Trees and Graphs",
			"Basic Sorting and Searching",
		},
		WhatYouLearn: []personas.LearningPoint{
			{Title: "Arrays & Strings", Description: "Master array manipulation and string processing"},
			{Title: "Data Structures", Description: "Understand lists, trees, graphs fundamentally"},
			{Title: "Time & Space Complexity", Description: "Learn Big O notation and optimization"},
			{Title: "Basic Algorithms", Description: "Sorting, searching, and graph traversal"},
		},
		Target: personas.Target{
			Metric:      "50 LeetCode Problems",
			Description: "Solve easy to medium DSA problems",
		},
		WhyItMatters: []string{
			"DSA is the foundation of coding interviews",
			"Companies test problem-solving ability heavily",
			"Strong fundamentals accelerate learning",
		},
	}
}

// ComposePhases derives the displayed learning phases from the persona
// phases and the user's self-rated DSA and system design levels. The
// input slice is never mutated; all adjustments happen on deep copies.
// An empty phase list stays empty, including the foundation phase.
func ComposePhases(personaPhases []personas.Phase, r quiz.Responses, targetRole personas.Role) []personas.Phase {
	if len(personaPhases) == 0 {
		return []personas.Phase{}
	}

	phases := clonePhases(personaPhases)

	ps := r.ProblemSolvingLevel()
	if ps <= dsaFoundationCeiling {
		phases = append([]personas.Phase{foundationPhase()}, phases...)
	} else if ps <= dsaEmphasisCeiling {
		phases[0].KeyTopics = append([]string{"Data Structures & Algorithms"}, phases[0].KeyTopics...)
	}

	switch r.SystemDesign {
	case "multiple":
		phases[0].KeyTopics = append([]string{"System Design Basics"}, phases[0].KeyTopics...)
	case "not-yet":
		if len(phases) > 1 {
			phases[1].Description = "Learn system design fundamentals for " + string(targetRole)
		}
	}

	renumber(phases)
	return phases
}

// FilterPhasesByCoverage drops early phases the user has already
// outgrown. Coverage is the selected share of the persona's skill
// catalog; the first phase only shows below 40%, the second below
// 85%, and later phases always show.
func FilterPhasesByCoverage(phases []personas.Phase, selected []string, catalog []personas.SkillEntry) []personas.Phase {
	total := len(catalog)
	if total < 1 {
		total = 1
	}
	coverage := float64(len(selected)) / float64(total)

	out := []personas.Phase{}
	for i, ph := range phases {
		switch {
		case i == 0 && coverage >= beginnerCoverage:
			continue
		case i == 1 && coverage >= intermediateCoverage:
			continue
		}
		out = append(out, ph)
	}
	renumber(out)
	return out
}

type PathSummary struct {
	TotalPhases     int      `json:"totalPhases"`
	EstimatedWeeks  int      `json:"estimatedWeeks"`
	EstimatedMonths int      `json:"estimatedMonths"`
	PhaseTitles     []string `json:"phaseTitles"`
}

var durationWeeks = regexp.MustCompile(`(\d+)`)

// Summarize totals the phase durations for the hero section. Each
// duration contributes its first number, read as weeks.
func Summarize(phases []personas.Phase) PathSummary {
	s := PathSummary{PhaseTitles: make([]string, 0, len(phases))}
	for _, ph := range phases {
		s.PhaseTitles = append(s.PhaseTitles, ph.Title)
		if m := durationWeeks.FindString(ph.Duration); m != "" {
			if weeks, err := strconv.Atoi(m); err == nil {
				s.EstimatedWeeks += weeks
			}
		}
	}
	s.TotalPhases = len(phases)
	s.EstimatedMonths = int(math.Ceil(float64(s.EstimatedWeeks) / 4))
	return s
}

func clonePhases(in []personas.Phase) []personas.Phase {
	out := make([]personas.Phase, len(in))
	for i, ph := range in {
		cp := ph
		cp.KeyTopics = append([]string(nil), ph.KeyTopics...)
		cp.WhatYouLearn = append([]personas.LearningPoint(nil), ph.WhatYouLearn...)
		cp.WhyItMatters = append([]string(nil), ph.WhyItMatters...)
		out[i] = cp
	}
	return out
}

func renumber(phases []personas.Phase) {
	for i := range phases {
		phases[i].PhaseNumber = i + 1
	}
}
