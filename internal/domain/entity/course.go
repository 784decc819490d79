package entity

import "time"

// Skill is the minimum skill level a course expects.
type Skill string

const (
	SkillBeginner     Skill = "beginner"
	SkillIntermediate Skill = "intermediate"
	SkillAdvanced     Skill = "advanced"
)

// IsValid checks if the Skill is a valid value.
func (s Skill) IsValid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// Course belongs to exactly one bootcamp.
type Course struct {
	ID                   string
	Title                string
	Description          string
	Weeks                string
	Tuition              float64
	MinimumSkill         Skill
	ScholarshipAvailable bool
	BootcampID           string // Foreign key to the owning bootcamp.
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Bootcamp is only filled when the parent was populated.
	Bootcamp *BootcampSummary
}
