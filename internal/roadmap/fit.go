package roadmap

import (
	"fmt"
	"sort"
	"strings"

	"roadmap-backend/internal/personas"
)

// FitResult is the readiness verdict for one target company type.
type FitResult struct {
	Level       string   `json:"level"`
	Color       string   `json:"color"`
	Message     string   `json:"message"`
	WhyFeasible []string `json:"whyFeasible"`
	WhatYouNeed []string `json:"whatYouNeed"`
}

// CompanyTypes lists the target tabs in display order.
var CompanyTypes = []string{"high-growth", "unicorns", "service", "big-tech"}

type fitTier string

const (
	tierEasy        fitTier = "easy"
	tierDoable      fitTier = "doable"
	tierChallenging fitTier = "challenging"
	tierStretch     fitTier = "stretch"
)

type tierConfig struct {
	label   string
	color   string
	message string
}

var fitTiers = map[fitTier]tierConfig{
	tierEasy: {
		label:   "Great Fit",
		color:   "green",
		message: "This transition is very achievable with your current background.",
	},
	tierDoable: {
		label:   "Good Fit",
		color:   "green",
		message: "This is achievable with some focused preparation.",
	},
	tierChallenging: {
		label:   "Stretch Goal",
		color:   "orange",
		message: "This requires significant preparation but is definitely achievable.",
	},
	tierStretch: {
		label:   "Ambitious Goal",
		color:   "orange",
		message: "This is a big career jump - plan for 6+ months of dedicated prep.",
	},
}

var whyFeasibleTemplates = map[fitTier][]string{
	tierEasy: {
		"Your current experience directly transfers to this company type",
		"The interview bar aligns well with your skill level",
		"Many engineers make this transition successfully",
	},
	tierDoable: {
		"Your technical foundation is solid for this transition",
		"With focused preparation, you can bridge the gaps",
		"Your experience level is appropriate for roles at these companies",
	},
	tierChallenging: {
		"Your fundamentals are in place - it's about leveling up",
		"Many successful engineers have made this jump before you",
		"The gap is bridgeable with dedicated effort",
	},
	tierStretch: {
		"Your determination to aim high is valuable",
		"This goal is achievable with a structured long-term plan",
		"Consider building intermediate experience to strengthen your profile",
	},
}

type axisAdvice struct {
	weak     string
	veryWeak string
}

var axisImprovement = map[string]axisAdvice{
	"algorithms": {
		weak:     "Your DSA skills need strengthening - aim for consistent LeetCode practice",
		veryWeak: "DSA is a critical gap - prioritize solving 100+ problems across patterns",
	},
	"systemDesign": {
		weak:     "Build system design knowledge through case studies and mock interviews",
		veryWeak: "System design is essential for this level - deep dive into architecture patterns",
	},
	"database": {
		weak:     "Strengthen your database fundamentals - schema design and query optimization",
		veryWeak: "Database skills need significant work - focus on both SQL and NoSQL patterns",
	},
	"devops": {
		weak:     "Expand your DevOps knowledge - CI/CD, containers, and cloud basics",
		veryWeak: "DevOps exposure is limited - hands-on projects will help bridge this gap",
	},
	"skills": {
		weak:     "Broaden your skill coverage - you're missing some foundational areas",
		veryWeak: "Your skill breadth is narrow - focus on building a stronger foundation",
	},
}

var targetCompanyRequirements = map[string][]string{
	"service": {
		"Polish your communication skills for client-facing roles",
		"Be prepared for aptitude tests in the hiring process",
	},
	"high-growth": {
		"Demonstrate ownership and end-to-end delivery capability",
		"Show you can thrive in fast-paced, ambiguous environments",
	},
	"unicorns": {
		"Strong DSA fundamentals are non-negotiable",
		"Referrals significantly improve your chances - start networking",
	},
	"big-tech": {
		"DSA mastery is the primary filter - no shortcuts here",
		"System design depth is expected at mid+ levels",
		"Behavioral preparation matters - STAR method responses",
	},
}

const (
	maxAxisNeeds  = 2
	maxTotalNeeds = 4
	veryWeakGap   = 20
	weakGap       = 5
)

// companySelectivity ranks company types by hiring bar. Freshers and
// service-company engineers face the same bar on transitions.
var companySelectivity = map[string]int{
	"fresher":     1,
	"service":     1,
	"high-growth": 2,
	"unicorns":    3,
	"big-tech":    4,
}

// Fit computes the readiness verdict for one target company type. The
// tier is derived from how many axes the user already meets the
// baseline on; the color is green iff at least half of the shared
// axes are at or above baseline. Experience at a company type with an
// equal or higher hiring bar than the target eases the tier one step,
// never across the color boundary. A nil company still yields a full
// axis-derived result.
func Fit(currentCompanyType, targetCompanyType string, userScores, baselineScores map[string]int, axes []personas.RadarAxis, company *personas.CompanyInsight) FitResult {
	tier := fitTierFor(userScores, baselineScores)
	if companySelectivity[currentCompanyType] >= companySelectivity[targetCompanyType] {
		tier = easeWithinColor(tier)
	}
	cfg := fitTiers[tier]

	result := FitResult{
		Level:       cfg.label,
		Color:       cfg.color,
		Message:     cfg.message,
		WhyFeasible: append([]string(nil), whyFeasibleTemplates[tier]...),
		WhatYouNeed: []string{},
	}

	result.WhyFeasible = append(result.WhyFeasible, strongAxisReasons(userScores, baselineScores, axes)...)
	if company != nil {
		if line := companyContext(*company); line != "" {
			result.WhyFeasible = append(result.WhyFeasible, line)
		}
	}

	weak := IdentifyWeakAxes(userScores, baselineScores)
	if len(weak) == 0 {
		return result
	}

	if company != nil && len(company.WhatYouNeed[string(tier)]) > 0 {
		result.WhatYouNeed = append(result.WhatYouNeed, company.WhatYouNeed[string(tier)]...)
		return result
	}

	result.WhatYouNeed = generatedNeeds(userScores, baselineScores, targetCompanyType)
	return result
}

// fitTierFor buckets the at-or-above-baseline ratio over the axes
// present in both score sets. Zero shared axes means nothing to
// compare against, read as on-track.
func fitTierFor(userScores, baselineScores map[string]int) fitTier {
	shared, atOrAbove := 0, 0
	for axis, baseline := range baselineScores {
		user, ok := userScores[axis]
		if !ok {
			continue
		}
		shared++
		if user >= baseline {
			atOrAbove++
		}
	}
	if shared == 0 {
		return tierDoable
	}
	switch {
	case atOrAbove == shared:
		return tierEasy
	case atOrAbove*2 >= shared:
		return tierDoable
	case atOrAbove*4 >= shared:
		return tierChallenging
	default:
		return tierStretch
	}
}

// easeWithinColor moves one tier up inside the same color band, so the
// at-or-above-baseline color rule stays authoritative.
func easeWithinColor(t fitTier) fitTier {
	switch t {
	case tierDoable:
		return tierEasy
	case tierStretch:
		return tierChallenging
	default:
		return t
	}
}

func strongAxisReasons(userScores, baselineScores map[string]int, axes []personas.RadarAxis) []string {
	var strong []string
	for axis, baseline := range baselineScores {
		if user, ok := userScores[axis]; ok && user >= baseline {
			strong = append(strong, axis)
		}
	}
	sort.Strings(strong)

	var reasons []string
	for _, axis := range strong {
		if len(reasons) == maxAxisNeeds {
			break
		}
		reasons = append(reasons, fmt.Sprintf("Your %s is already at or above the average learner", axisLabel(axis, axes)))
	}
	return reasons
}

func companyContext(c personas.CompanyInsight) string {
	switch {
	case c.CompanySize != "" && c.ExpectedSalary != "":
		return fmt.Sprintf("Typical company size is %s with expected compensation around %s", c.CompanySize, c.ExpectedSalary)
	case c.CompanySize != "":
		return fmt.Sprintf("Typical company size is %s", c.CompanySize)
	case c.ExpectedSalary != "":
		return fmt.Sprintf("Expected compensation is around %s", c.ExpectedSalary)
	default:
		return ""
	}
}

func generatedNeeds(userScores, baselineScores map[string]int, targetCompanyType string) []string {
	var veryWeak, weak []string
	axes := make([]string, 0, len(baselineScores))
	for axis := range baselineScores {
		axes = append(axes, axis)
	}
	sort.Strings(axes)
	for _, axis := range axes {
		gap := baselineScores[axis] - userScores[axis]
		switch {
		case gap > veryWeakGap:
			veryWeak = append(veryWeak, axis)
		case gap > weakGap:
			weak = append(weak, axis)
		}
	}

	needs := []string{}
	for _, axis := range veryWeak {
		if len(needs) == maxAxisNeeds {
			break
		}
		if advice, ok := axisImprovement[axis]; ok {
			needs = append(needs, advice.veryWeak)
		}
	}
	for _, axis := range weak {
		if len(needs) == maxAxisNeeds {
			break
		}
		if advice, ok := axisImprovement[axis]; ok {
			needs = append(needs, advice.weak)
		}
	}

	for _, req := range targetCompanyRequirements[targetCompanyType] {
		if len(needs) == maxTotalNeeds {
			break
		}
		needs = append(needs, req)
	}

	if len(needs) == 0 {
		needs = append(needs,
			"Continue building depth in your current skill areas",
			"Focus on interview preparation and mock practice",
		)
	}
	return needs
}

func axisLabel(axis string, axes []personas.RadarAxis) string {
	for _, a := range axes {
		if a.Key == axis {
			if a.Label != "" {
				return a.Label
			}
			break
		}
	}
	return axis
}

// AllFits computes the fit verdict for every target company type.
func AllFits(currentCompanyType string, userScores, baselineScores map[string]int, axes []personas.RadarAxis, insights map[string]personas.CompanyInsight) map[string]FitResult {
	out := make(map[string]FitResult, len(CompanyTypes))
	for _, target := range CompanyTypes {
		var company *personas.CompanyInsight
		if c, ok := insights[target]; ok {
			company = &c
		}
		out[target] = Fit(currentCompanyType, target, userScores, baselineScores, axes, company)
	}
	return out
}

// NormalizeCompanyType maps the free-form current role and background
// quiz answers to one of the company type keys. Unrecognized input
// reads as no prior industry experience.
func NormalizeCompanyType(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "fresher"
	}
	if mapped, ok := companyTypeAliases[s]; ok {
		return mapped
	}
	return "fresher"
}

var companyTypeAliases = map[string]string{
	"swe-product": "high-growth",
	"swe-service": "service",
	"devops":      "high-growth",
	"qa":          "service",

	"sales-marketing": "fresher",
	"operations":      "fresher",
	"design":          "fresher",
	"finance":         "fresher",
	"other":           "fresher",

	"fresher":         "fresher",
	"student":         "fresher",
	"no experience":   "fresher",
	"service":         "service",
	"service company": "service",
	"it services":     "service",
	"consulting":      "service",
	"startup":         "high-growth",
	"high-growth":     "high-growth",
	"high growth":     "high-growth",
	"early stage":     "high-growth",
	"unicorn":         "unicorns",
	"unicorns":        "unicorns",
	"product company": "unicorns",
	"product":         "unicorns",
	"big-tech":        "big-tech",
	"big tech":        "big-tech",
	"faang":           "big-tech",
	"maang":           "big-tech",
	"google":          "big-tech",
	"amazon":          "big-tech",
	"microsoft":       "big-tech",
	"meta":            "big-tech",
}
