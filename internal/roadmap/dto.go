package roadmap

import "roadmap-backend/internal/personas"

// View is the full derived roadmap served to the page. Everything in
// it is recomputed from (responses, persona) on each request.
type View struct {
	PersonaFile string        `json:"personaFile"`
	Meta        personas.Meta `json:"meta"`
	Hero        personas.Hero `json:"hero"`

	AxisScores AxisScores           `json:"axisScores"`
	RadarAxes  []personas.RadarAxis `json:"radarAxes"`

	WeakAxes      []string             `json:"weakAxes"`
	SkillsToLearn Gap                  `json:"skillsToLearn"`
	FullGap       Gap                  `json:"fullGap"`
	Fits          map[string]FitResult `json:"fits"`

	LearningPath []personas.Phase   `json:"learningPath"`
	PathSummary  PathSummary        `json:"pathSummary"`
	Projects     []personas.Project `json:"projects"`

	Match    MatchScore       `json:"match"`
	Gaps     SkillGapAnalysis `json:"gaps"`
	Timeline Timeline         `json:"timeline"`
}

// AxisScores pairs the user and baseline score sets for the radar
// chart.
type AxisScores struct {
	User     map[string]int `json:"user"`
	Baseline map[string]int `json:"baseline"`
}
