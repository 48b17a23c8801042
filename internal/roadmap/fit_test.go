package roadmap

import (
	"testing"

	"roadmap-backend/internal/personas"
)

func TestFitColorHalfBoundary(t *testing.T) {
	// 2 of 4 shared axes at or above baseline: exactly half is green.
	user := map[string]int{"a": 60, "b": 60, "c": 10, "d": 10}
	baseline := map[string]int{"a": 50, "b": 50, "c": 50, "d": 50}

	res := Fit("fresher", "big-tech", user, baseline, nil, nil)
	if res.Color != "green" {
		t.Fatalf("half of axes at baseline should be green, got %s", res.Color)
	}
	if res.Level != "Good Fit" {
		t.Fatalf("expected Good Fit, got %s", res.Level)
	}
}

func TestFitColorBelowHalfBoundary(t *testing.T) {
	// 1 of 4 shared axes at or above baseline: below half is orange.
	user := map[string]int{"a": 60, "b": 10, "c": 10, "d": 10}
	baseline := map[string]int{"a": 50, "b": 50, "c": 50, "d": 50}

	res := Fit("fresher", "big-tech", user, baseline, nil, nil)
	if res.Color != "orange" {
		t.Fatalf("below half should be orange, got %s", res.Color)
	}
	if res.Level != "Stretch Goal" {
		t.Fatalf("expected Stretch Goal, got %s", res.Level)
	}
}

func TestFitStrongerBackgroundEasesTier(t *testing.T) {
	// 2 of 4 at baseline reads Good Fit for a fresher; a big-tech
	// background targeting a lower hiring bar eases it to Great Fit.
	user := map[string]int{"a": 60, "b": 60, "c": 10, "d": 10}
	baseline := map[string]int{"a": 50, "b": 50, "c": 50, "d": 50}

	res := Fit("big-tech", "service", user, baseline, nil, nil)
	if res.Level != "Great Fit" || res.Color != "green" {
		t.Fatalf("expected Great Fit green, got %s/%s", res.Level, res.Color)
	}
}

func TestFitBackgroundNeverFlipsColor(t *testing.T) {
	// All axes below baseline: the background eases one tier but the
	// gap verdict stays orange.
	user := map[string]int{"a": 10, "b": 10, "c": 10, "d": 10}
	baseline := map[string]int{"a": 50, "b": 50, "c": 50, "d": 50}

	res := Fit("big-tech", "service", user, baseline, nil, nil)
	if res.Color != "orange" {
		t.Fatalf("weak axes must stay orange, got %s", res.Color)
	}
	if res.Level != "Stretch Goal" {
		t.Fatalf("expected one-step ease to Stretch Goal, got %s", res.Level)
	}
}

func TestFitAllAxesStrong(t *testing.T) {
	user := map[string]int{"a": 60, "b": 70}
	baseline := map[string]int{"a": 50, "b": 50}

	res := Fit("fresher", "service", user, baseline, nil, nil)
	if res.Level != "Great Fit" || res.Color != "green" {
		t.Fatalf("all axes strong should be Great Fit green, got %s/%s", res.Level, res.Color)
	}
	if len(res.WhatYouNeed) != 0 {
		t.Fatalf("no weak axes means empty needs, got %v", res.WhatYouNeed)
	}
	if len(res.WhyFeasible) == 0 {
		t.Fatal("expected feasibility reasons")
	}
}

func TestFitNoSharedAxes(t *testing.T) {
	res := Fit("fresher", "high-growth", map[string]int{}, map[string]int{}, nil, nil)
	if res.Level != "Good Fit" || res.Color != "green" {
		t.Fatalf("no shared axes should read as Good Fit green, got %s/%s", res.Level, res.Color)
	}
}

func TestFitNilCompanyStillComputes(t *testing.T) {
	user := map[string]int{"algorithms": 10}
	baseline := map[string]int{"algorithms": 50}

	res := Fit("fresher", "big-tech", user, baseline, nil, nil)
	if len(res.WhatYouNeed) == 0 {
		t.Fatal("weak axes should produce needs even without company data")
	}
}

func TestFitUsesPersonaNeedsWhenPresent(t *testing.T) {
	user := map[string]int{"algorithms": 10}
	baseline := map[string]int{"algorithms": 50}
	company := &personas.CompanyInsight{
		WhatYouNeed: map[string][]string{
			"stretch": {"Target a referral before applying"},
		},
	}

	res := Fit("fresher", "big-tech", user, baseline, nil, company)
	if len(res.WhatYouNeed) != 1 || res.WhatYouNeed[0] != "Target a referral before applying" {
		t.Fatalf("persona guidance should win, got %v", res.WhatYouNeed)
	}
}

func TestFitGeneratedNeedsCapped(t *testing.T) {
	user := map[string]int{"algorithms": 5, "systemDesign": 5, "database": 5, "skills": 5}
	baseline := map[string]int{"algorithms": 70, "systemDesign": 70, "database": 70, "skills": 70}

	res := Fit("fresher", "big-tech", user, baseline, nil, nil)
	if len(res.WhatYouNeed) > maxTotalNeeds {
		t.Fatalf("needs must cap at %d, got %d", maxTotalNeeds, len(res.WhatYouNeed))
	}
}

func TestFitStrongAxisReasonUsesLabel(t *testing.T) {
	user := map[string]int{"database": 60, "algorithms": 10}
	baseline := map[string]int{"database": 50, "algorithms": 50}
	axes := []personas.RadarAxis{{Key: "database", Label: "Databases"}}

	res := Fit("fresher", "service", user, baseline, axes, nil)
	found := false
	for _, reason := range res.WhyFeasible {
		if reason == "Your Databases is already at or above the average learner" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected labeled strong-axis reason, got %v", res.WhyFeasible)
	}
}

func TestAllFitsCoversEveryCompanyType(t *testing.T) {
	fits := AllFits("fresher", map[string]int{"a": 60}, map[string]int{"a": 50}, nil, nil)
	for _, target := range CompanyTypes {
		if _, ok := fits[target]; !ok {
			t.Fatalf("missing fit for %s", target)
		}
	}
}

func TestNormalizeCompanyType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "fresher"},
		{"swe-product", "high-growth"},
		{"swe-service", "service"},
		{"devops", "high-growth"},
		{"qa", "service"},
		{"sales-marketing", "fresher"},
		{"Startup", "high-growth"},
		{"FAANG", "big-tech"},
		{"product company", "unicorns"},
		{"IT Services", "service"},
		{"astronaut", "fresher"},
	}
	for _, tc := range cases {
		if got := NormalizeCompanyType(tc.in); got != tc.want {
			t.Errorf("NormalizeCompanyType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
