package quiz

import "strconv"

// EventKind enumerates the mutations a quiz session accepts.
type EventKind string

const (
	// EventSetAnswer records a single answer by question id.
	EventSetAnswer EventKind = "set_answer"
	// EventSelectSkills replaces the selected skill set.
	EventSelectSkills EventKind = "select_skills"
	// EventReset clears the session back to a blank slate.
	EventReset EventKind = "reset"
)

type Event struct {
	Kind   EventKind `json:"kind"`
	Key    string    `json:"key,omitempty"`
	Value  string    `json:"value,omitempty"`
	Skills []string  `json:"skills,omitempty"`
}

// Apply folds one event into a copy of the responses. The input value
// is never mutated, so callers can replay event sequences safely.
func Apply(r Responses, ev Event) Responses {
	switch ev.Kind {
	case EventReset:
		return Responses{}
	case EventSelectSkills:
		out := r.Clone()
		out.CurrentSkills = append([]string(nil), ev.Skills...)
		return out
	case EventSetAnswer:
		out := r.Clone()
		switch ev.Key {
		case "background":
			out.Background = ev.Value
		case "yearsOfExperience":
			out.YearsOfExperience = ev.Value
		case "targetRole":
			out.TargetRole = ev.Value
		case "currentRole":
			out.CurrentRole = ev.Value
		case "systemDesign":
			out.SystemDesign = ev.Value
		case "timeline":
			out.Timeline = ev.Value
		case "problemSolving":
			if n, err := strconv.Atoi(ev.Value); err == nil {
				out.ProblemSolving = &n
			}
		default:
			if out.Answers == nil {
				out.Answers = map[string]string{}
			}
			out.Answers[ev.Key] = ev.Value
		}
		return out
	default:
		return r.Clone()
	}
}
