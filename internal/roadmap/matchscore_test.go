package roadmap

import (
	"reflect"
	"testing"

	"roadmap-backend/internal/personas"
)

func TestCalculateMatchScore(t *testing.T) {
	got := CalculateMatchScore([]string{"Python", "Git"}, "Backend Engineering")
	if got.TotalWeight == 0 {
		t.Fatal("known category must have weight")
	}
	// Python and Git are both HIGH priority: weight 3 each.
	if got.WeightedScore != 6 {
		t.Fatalf("expected weighted score 6, got %d", got.WeightedScore)
	}
	if got.MatchScore < 1 || got.MatchScore > 100 {
		t.Fatalf("match score out of range: %d", got.MatchScore)
	}
}

func TestCalculateMatchScoreUnknownCategory(t *testing.T) {
	got := CalculateMatchScore([]string{"Python"}, "Underwater Basket Weaving")
	if got.MatchScore != 0 || got.TotalWeight != 0 {
		t.Fatalf("unknown category should zero out, got %+v", got)
	}
}

func TestAnalyzeSkillGaps(t *testing.T) {
	got := AnalyzeSkillGaps([]string{"Python", "Docker", "Knitting"}, "Backend Engineering")

	if !reflect.DeepEqual(got.ExistingSkills, []string{"Python", "Docker"}) {
		t.Fatalf("irrelevant skills must not count, got %v", got.ExistingSkills)
	}
	if got.SkillsAcquired != 2 {
		t.Fatalf("expected 2 acquired, got %d", got.SkillsAcquired)
	}
	for _, s := range got.MissingSkills.High {
		if s == "Python" {
			t.Fatal("acquired skill listed as missing")
		}
	}
	total := len(got.MissingSkills.High) + len(got.MissingSkills.Medium) + len(got.MissingSkills.Low)
	if total+got.SkillsAcquired != got.TotalSkillsNeeded {
		t.Fatalf("missing plus acquired should cover the catalog: %d + %d != %d", total, got.SkillsAcquired, got.TotalSkillsNeeded)
	}
}

func TestPrioritizeSkillsStableSort(t *testing.T) {
	got := PrioritizeSkills([]string{"Docker", "Python", "Serverless", "Git"}, "Backend Engineering")

	want := []string{"Python", "Git", "Docker", "Serverless"}
	for i, p := range got {
		if p.Skill != want[i] {
			t.Fatalf("position %d: got %s, want %s (full: %+v)", i, p.Skill, want[i], got)
		}
	}
	// Python and Git are both HIGH; their relative input order holds.
	if got[0].Weight != 3 || got[2].Weight != 2 || got[3].Weight != 1 {
		t.Fatalf("unexpected weights %+v", got)
	}
}

func TestTopSkillsToLearn(t *testing.T) {
	missing := Gap{
		High:   []string{"System Design"},
		Medium: []string{"Docker", "Kubernetes"},
		Low:    []string{"Serverless"},
	}
	got := TopSkillsToLearn(missing, 3)
	want := []string{"System Design", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCalculateTimelineExperienceSpeedup(t *testing.T) {
	none := CalculateTimeline(nil, "Backend Engineering", "", 0)
	senior := CalculateTimeline(nil, "Backend Engineering", "", 8)

	if senior.EstimatedMonths >= none.EstimatedMonths {
		t.Fatalf("experience should shorten the estimate: %d vs %d", senior.EstimatedMonths, none.EstimatedMonths)
	}
	if none.TotalSkillsToLearn != len(AllSkillsForCategory("Backend Engineering")) {
		t.Fatalf("with no skills everything is missing, got %d", none.TotalSkillsToLearn)
	}
}

func TestCalculateTimelineEffortCap(t *testing.T) {
	got := CalculateTimeline(nil, "Backend Engineering", "3-6 months", 0)
	if got.EffortPerWeek > maxEffortPerWeek {
		t.Fatalf("effort must cap at %d, got %d", maxEffortPerWeek, got.EffortPerWeek)
	}
	if got.EffortPerWeek == 0 {
		t.Fatal("aggressive timeline should demand effort")
	}
}

func TestCategoryForRole(t *testing.T) {
	cases := map[personas.Role]string{
		personas.RoleBackend:   "Backend Engineering",
		personas.RoleFrontend:  "Frontend Engineering",
		personas.RoleFullstack: "Software Engineering",
		personas.RoleDevOps:    "DevOps & Cloud Computing",
		personas.RoleData:      "Data Science",
	}
	for role, want := range cases {
		if got := CategoryForRole(role); got != want {
			t.Errorf("CategoryForRole(%s) = %s, want %s", role, got, want)
		}
	}
}
