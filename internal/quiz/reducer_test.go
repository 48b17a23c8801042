package quiz

import (
	"reflect"
	"testing"
)

func TestApplySetAnswerTypedField(t *testing.T) {
	r := Responses{Background: "tech"}
	got := Apply(r, Event{Kind: EventSetAnswer, Key: "yearsOfExperience", Value: "6"})

	if got.YearsOfExperience != "6" {
		t.Fatalf("expected years set, got %+v", got)
	}
	if r.YearsOfExperience != "" {
		t.Fatal("input responses were mutated")
	}
}

func TestApplySetAnswerProblemSolving(t *testing.T) {
	got := Apply(Responses{}, Event{Kind: EventSetAnswer, Key: "problemSolving", Value: "45"})
	if got.ProblemSolvingLevel() != 45 {
		t.Fatalf("expected 45, got %d", got.ProblemSolvingLevel())
	}

	got = Apply(got, Event{Kind: EventSetAnswer, Key: "problemSolving", Value: "not-a-number"})
	if got.ProblemSolvingLevel() != 45 {
		t.Fatalf("unparseable value should leave rating untouched, got %d", got.ProblemSolvingLevel())
	}
}

func TestApplySetAnswerFreeForm(t *testing.T) {
	got := Apply(Responses{}, Event{Kind: EventSetAnswer, Key: "currentBackground", Value: "startup"})
	if v, ok := got.Answer("currentBackground"); !ok || v != "startup" {
		t.Fatalf("expected free-form answer recorded, got %q ok=%v", v, ok)
	}
}

func TestApplySelectSkillsCopiesSlice(t *testing.T) {
	skills := []string{"Go", "Postgres"}
	got := Apply(Responses{}, Event{Kind: EventSelectSkills, Skills: skills})

	skills[0] = "mutated"
	if got.CurrentSkills[0] != "Go" {
		t.Fatal("selected skills alias the event slice")
	}
}

func TestApplyReset(t *testing.T) {
	r := Responses{Background: "tech", CurrentSkills: []string{"Go"}}
	got := Apply(r, Event{Kind: EventReset})
	if !reflect.DeepEqual(got, Responses{}) {
		t.Fatalf("expected blank responses, got %+v", got)
	}
}

func TestAnswerResolvesTypedAndMapFields(t *testing.T) {
	r := Responses{
		SystemDesign: "multiple",
		Answers:      map[string]string{"companyType": "startup"},
	}

	if v, ok := r.Answer("systemDesign"); !ok || v != "multiple" {
		t.Fatalf("typed field lookup failed: %q ok=%v", v, ok)
	}
	if v, ok := r.Answer("companyType"); !ok || v != "startup" {
		t.Fatalf("map lookup failed: %q ok=%v", v, ok)
	}
	if _, ok := r.Answer("timeline"); ok {
		t.Fatal("empty answer should report ok=false")
	}
}
