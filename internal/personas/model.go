package personas

import "encoding/json"

// Persona is one pre-authored career roadmap document. Documents are
// hand-edited JSON, so the decoders below tolerate the shape drift
// that shows up in older files.
type Persona struct {
	Meta            Meta                      `json:"meta"`
	Hero            Hero                      `json:"hero"`
	SkillMap        SkillMap                  `json:"skillMap"`
	CompanyInsights map[string]CompanyInsight `json:"companyInsights"`
	LearningPath    LearningPath              `json:"learningPath"`
	Projects        []Project                 `json:"projects"`
}

type Meta struct {
	PersonaID string `json:"personaId"`
	RoleLabel string `json:"roleLabel"`
	Level     string `json:"level"`
	UserType  string `json:"userType"`
}

type Hero struct {
	Title           string `json:"title"`
	SkillsToLearn   int    `json:"skillsToLearn"`
	EstimatedEffort string `json:"estimatedEffort"`
	VideoURL        string `json:"videoUrl"`
}

// LearningPath wraps the ordered phase list. Older documents store the
// phases as a bare top-level array instead of under "phases".
type LearningPath struct {
	Phases []Phase `json:"phases"`
}

func (lp *LearningPath) UnmarshalJSON(data []byte) error {
	var phases []Phase
	if err := json.Unmarshal(data, &phases); err == nil {
		lp.Phases = phases
		return nil
	}
	type plain LearningPath
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*lp = LearningPath(p)
	return nil
}

type SkillMap struct {
	SkillPriorities SkillPriorities `json:"skillPriorities"`
	RadarAxes       []RadarAxis     `json:"radarAxes"`
	Thresholds      Thresholds      `json:"thresholds"`
}

type SkillPriorities struct {
	High   SkillList `json:"high"`
	Medium SkillList `json:"medium"`
	Low    SkillList `json:"low"`
}

// SkillEntry names one skill and the radar axes it contributes to.
type SkillEntry struct {
	Name string   `json:"name"`
	Axes []string `json:"axes,omitempty"`
}

// SkillList accepts both bare skill names and {name, axes} objects.
// Entries that decode to neither are skipped rather than failing the
// whole document.
type SkillList []SkillEntry

func (l *SkillList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SkillList, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			if name != "" {
				out = append(out, SkillEntry{Name: name})
			}
			continue
		}
		var entry SkillEntry
		if err := json.Unmarshal(item, &entry); err == nil && entry.Name != "" {
			out = append(out, entry)
		}
	}
	*l = out
	return nil
}

type RadarAxis struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Thresholds struct {
	AverageBaseline map[string]int         `json:"averageBaseline"`
	QuizMapping     map[string]QuizMapping `json:"quizMapping"`
}

// QuizMapping adds a bonus to one axis based on the answer to one
// quiz question.
type QuizMapping struct {
	Axis   string         `json:"axis"`
	Values map[string]int `json:"values"`
}

type Phase struct {
	PhaseNumber  int             `json:"phaseNumber"`
	Title        string          `json:"title"`
	Duration     string          `json:"duration"`
	Description  string          `json:"description"`
	KeyTopics    []string        `json:"keyTopics"`
	WhatYouLearn []LearningPoint `json:"whatYouLearn"`
	Target       Target          `json:"target"`
	WhyItMatters []string        `json:"whyItMatters"`
	VideoURL     string          `json:"videoUrl,omitempty"`
}

type LearningPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Target accepts both a structured {metric, description} object and a
// bare string, which older documents use for the metric alone.
type Target struct {
	Metric      string `json:"metric"`
	Description string `json:"description"`
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Metric = s
		t.Description = ""
		return nil
	}
	type plain Target
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Target(p)
	return nil
}

type CompanyInsight struct {
	CompanySize    string              `json:"companySize"`
	ExpectedSalary string              `json:"expectedSalary"`
	Companies      []string            `json:"companies"`
	Rounds         []Round             `json:"rounds"`
	WhatYouNeed    map[string][]string `json:"whatYouNeed"`
}

// Round accepts both a structured {name, focus} object and a bare
// string naming the round.
type Round struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
}

func (r *Round) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Name = s
		r.Focus = ""
		return nil
	}
	type plain Round
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Round(p)
	return nil
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Difficulty  string   `json:"difficulty"`
}

// AllSkills returns every skill across the three priority tiers, high
// first, preserving document order within each tier.
func (p Persona) AllSkills() []SkillEntry {
	sp := p.SkillMap.SkillPriorities
	out := make([]SkillEntry, 0, len(sp.High)+len(sp.Medium)+len(sp.Low))
	out = append(out, sp.High...)
	out = append(out, sp.Medium...)
	out = append(out, sp.Low...)
	return out
}
