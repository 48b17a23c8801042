package quiz

import "strconv"

// Responses captures everything a user answered in the onboarding quiz.
// The typed fields cover answers the pipeline reads directly; anything
// else lands in Answers keyed by question id.
type Responses struct {
	Background        string            `json:"background,omitempty"`
	YearsOfExperience string            `json:"yearsOfExperience,omitempty"`
	TargetRole        string            `json:"targetRole,omitempty"`
	CurrentRole       string            `json:"currentRole,omitempty"`
	CurrentSkills     []string          `json:"currentSkills,omitempty"`
	ProblemSolving    *int              `json:"problemSolving,omitempty"`
	SystemDesign      string            `json:"systemDesign,omitempty"`
	Timeline          string            `json:"timeline,omitempty"`
	Answers           map[string]string `json:"answers,omitempty"`
}

// Answer resolves a question id against the typed fields first, then
// the free-form Answers map. ok is false for absent or empty answers.
func (r Responses) Answer(key string) (string, bool) {
	var v string
	switch key {
	case "background":
		v = r.Background
	case "yearsOfExperience":
		v = r.YearsOfExperience
	case "targetRole":
		v = r.TargetRole
	case "currentRole":
		v = r.CurrentRole
	case "systemDesign":
		v = r.SystemDesign
	case "timeline":
		v = r.Timeline
	case "problemSolving":
		if r.ProblemSolving != nil {
			v = strconv.Itoa(*r.ProblemSolving)
		}
	default:
		v = r.Answers[key]
	}
	if v == "" {
		return "", false
	}
	return v, true
}

// ProblemSolvingLevel returns the self-rated comfort on a 0-100 scale,
// treating an unanswered question as zero comfort.
func (r Responses) ProblemSolvingLevel() int {
	if r.ProblemSolving == nil {
		return 0
	}
	return *r.ProblemSolving
}

func (r Responses) Clone() Responses {
	out := r
	if r.CurrentSkills != nil {
		out.CurrentSkills = append([]string(nil), r.CurrentSkills...)
	}
	if r.ProblemSolving != nil {
		v := *r.ProblemSolving
		out.ProblemSolving = &v
	}
	if r.Answers != nil {
		out.Answers = make(map[string]string, len(r.Answers))
		for k, v := range r.Answers {
			out.Answers[k] = v
		}
	}
	return out
}
