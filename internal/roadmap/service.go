package roadmap

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"roadmap-backend/internal/personas"
	"roadmap-backend/internal/quiz"
	"roadmap-backend/internal/shared/cache"
	"roadmap-backend/internal/shared/util"
)

const viewCacheTTL = 10 * time.Minute

// Service assembles the full roadmap view for a set of quiz
// responses.
type Service struct {
	personas *personas.Service
	redis    *cache.Cache
}

func NewService(p *personas.Service, redis *cache.Cache) *Service {
	return &Service{personas: p, redis: redis}
}

// Build derives everything the roadmap page shows. Identical
// responses hit the cache; the derivation itself is pure, so the
// cache is an optimization only.
func (s *Service) Build(ctx context.Context, r quiz.Responses) (View, error) {
	cacheKey := viewCacheKey(r)

	var cached View
	if s.redis.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	key, persona, err := s.personas.LoadFromQuiz(ctx, r)
	if err != nil {
		return View{}, err
	}

	catalog := persona.AllSkills()
	th := persona.SkillMap.Thresholds

	userScores := UserAxisScores(r, r.CurrentSkills, catalog, th)
	baseline := BaselineScores(th)
	weak := IdentifyWeakAxes(userScores, baseline)

	// Coverage filtering runs on the persona's own phases so the
	// foundation phase added for weak DSA users is never dropped.
	kept := FilterPhasesByCoverage(persona.LearningPath.Phases, r.CurrentSkills, catalog)
	path := ComposePhases(kept, r, key.Role)

	category := CategoryForRole(key.Role)

	view := View{
		PersonaFile: key.Filename(),
		Meta:        persona.Meta,
		Hero:        persona.Hero,
		AxisScores:  AxisScores{User: userScores, Baseline: baseline},
		RadarAxes:   persona.SkillMap.RadarAxes,

		WeakAxes:      weak,
		SkillsToLearn: SkillsToLearn(persona.SkillMap.SkillPriorities, r.CurrentSkills, weak),
		FullGap:       FilterUnselected(persona.SkillMap.SkillPriorities, r.CurrentSkills),
		Fits:          AllFits(currentCompanyType(r), userScores, baseline, persona.SkillMap.RadarAxes, persona.CompanyInsights),

		LearningPath: path,
		PathSummary:  Summarize(path),
		Projects:     persona.Projects,

		Match:    CalculateMatchScore(r.CurrentSkills, category),
		Gaps:     AnalyzeSkillGaps(r.CurrentSkills, category),
		Timeline: CalculateTimeline(r.CurrentSkills, category, r.Timeline, yearsExperience(r)),
	}

	s.redis.SetJSON(ctx, cacheKey, view, viewCacheTTL)
	return view, nil
}

// currentCompanyType reads the tech current role answer first, then
// the non-tech background answer.
func currentCompanyType(r quiz.Responses) string {
	if r.CurrentRole != "" {
		return NormalizeCompanyType(r.CurrentRole)
	}
	if v, ok := r.Answer("currentBackground"); ok {
		return NormalizeCompanyType(v)
	}
	return NormalizeCompanyType("")
}

// yearsExperience extracts a numeric experience value from bucket
// answers like "2-5" or "8+".
func yearsExperience(r quiz.Responses) float64 {
	s := strings.TrimSpace(r.YearsOfExperience)
	if s == "" {
		return 0
	}
	if i := strings.IndexAny(s, "-+"); i > 0 {
		s = s[:i]
	}
	years, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return years
}

func viewCacheKey(r quiz.Responses) string {
	raw, err := json.Marshal(r)
	if err != nil {
		return "roadmap:invalid"
	}
	return "roadmap:" + util.HashKey(string(raw))
}
