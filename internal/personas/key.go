package personas

import (
	"fmt"
	"strconv"
	"strings"

	"roadmap-backend/internal/quiz"
)

type Level string

const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

type UserType string

const (
	UserTypeTech    UserType = "tech"
	UserTypeNonTech UserType = "nontech"
)

type Role string

const (
	RoleBackend   Role = "backend"
	RoleFrontend  Role = "frontend"
	RoleFullstack Role = "fullstack"
	RoleDevOps    Role = "devops"
	RoleData      Role = "data"
)

// Key identifies one persona document. Its three parts combine into
// the filename the catalog is stored under.
type Key struct {
	Level    Level
	UserType UserType
	Role     Role
}

func (k Key) Filename() string {
	return fmt.Sprintf("%s_%s_%s.json", k.Level, k.UserType, k.Role)
}

// FallbackFilename is the catch-all persona served when the resolved
// document is missing or unreadable.
const FallbackFilename = "mid_tech_backend.json"

// Resolve maps quiz responses to a persona key. Every input resolves
// to some key; unrecognized answers fall back to the broadest bucket
// on each axis.
func Resolve(r quiz.Responses) Key {
	return Key{
		Level:    normalizeLevel(r.YearsOfExperience),
		UserType: normalizeBackground(r.Background),
		Role:     normalizeRole(r.TargetRole),
	}
}

func normalizeBackground(raw string) UserType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "non-tech", "nontech", "non tech":
		return UserTypeNonTech
	default:
		return UserTypeTech
	}
}

var (
	entryTokens = map[string]bool{
		"0-2": true, "0": true, "1": true, "2": true,
		"entry": true, "junior": true, "fresher": true,
	}
	midTokens = map[string]bool{
		"2-5": true, "3": true, "4": true, "5": true,
		"mid": true, "intermediate": true,
	}
	seniorTokens = map[string]bool{
		"5-8": true, "8+": true, "8": true, "9": true, "10": true,
		"senior": true, "expert": true,
	}
)

func normalizeLevel(raw string) Level {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return LevelEntry
	}
	switch {
	case entryTokens[s]:
		return LevelEntry
	case midTokens[s]:
		return LevelMid
	case seniorTokens[s]:
		return LevelSenior
	}
	if n, ok := strings.CutSuffix(s, "+"); ok {
		if years, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil && years >= 8 {
			return LevelSenior
		}
	}
	if years, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case years <= 2:
			return LevelEntry
		case years <= 5:
			return LevelMid
		default:
			return LevelSenior
		}
	}
	return LevelMid
}

var roleSynonyms = map[string]Role{
	"backend engineer":          RoleBackend,
	"backend developer":         RoleBackend,
	"server engineer":           RoleBackend,
	"frontend engineer":         RoleFrontend,
	"frontend developer":        RoleFrontend,
	"react developer":           RoleFrontend,
	"ui engineer":               RoleFrontend,
	"ux engineer":               RoleFrontend,
	"full stack engineer":       RoleFullstack,
	"full stack developer":      RoleFullstack,
	"fullstack engineer":        RoleFullstack,
	"fullstack developer":       RoleFullstack,
	"full-stack engineer":       RoleFullstack,
	"full-stack developer":      RoleFullstack,
	"mern":                      RoleFullstack,
	"mean":                      RoleFullstack,
	"mern developer":            RoleFullstack,
	"mean developer":            RoleFullstack,
	"devops engineer":           RoleDevOps,
	"sre":                       RoleDevOps,
	"site reliability":          RoleDevOps,
	"site reliability engineer": RoleDevOps,
	"infrastructure":            RoleDevOps,
	"platform engineer":         RoleDevOps,
	"cloud engineer":            RoleDevOps,
	"data engineer":             RoleData,
	"data scientist":            RoleData,
	"analytics":                 RoleData,
	"big data":                  RoleData,
	"ml engineer":               RoleData,
	"machine learning":          RoleData,
}

func normalizeRole(raw string) Role {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return RoleBackend
	}
	if role, ok := roleSynonyms[s]; ok {
		return role
	}
	switch {
	case strings.Contains(s, "backend"), strings.Contains(s, "server"):
		return RoleBackend
	case strings.Contains(s, "frontend"), strings.Contains(s, "react"), strings.Contains(s, "ui"):
		return RoleFrontend
	case strings.Contains(s, "fullstack"), strings.Contains(s, "full stack"), strings.Contains(s, "full-stack"):
		return RoleFullstack
	case strings.Contains(s, "devops"), strings.Contains(s, "sre"), strings.Contains(s, "platform"), strings.Contains(s, "infra"):
		return RoleDevOps
	case strings.Contains(s, "data"), strings.Contains(s, "ml"), strings.Contains(s, "analytics"):
		return RoleData
	default:
		return RoleBackend
	}
}

var validFilenames = buildValidFilenames()

func buildValidFilenames() map[string]bool {
	out := map[string]bool{}
	for _, lvl := range []Level{LevelEntry, LevelMid, LevelSenior} {
		for _, ut := range []UserType{UserTypeTech, UserTypeNonTech} {
			for _, role := range []Role{RoleBackend, RoleFrontend, RoleFullstack, RoleDevOps, RoleData} {
				out[Key{lvl, ut, role}.Filename()] = true
			}
		}
	}
	return out
}

// IsValidFilename reports whether name is one of the known persona
// documents. Handlers use it to reject arbitrary object keys.
func IsValidFilename(name string) bool {
	return validFilenames[name]
}
