package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Common validation errors for Skill
var (
	ErrEmptySkillID    = errors.New("skill ID cannot be empty")
	ErrEmptySkillName  = errors.New("skill name cannot be empty")
	ErrSkillNameTooLong = errors.New("skill name must be at most 100 characters long")
)

var titleCaser = cases.Title(language.Und)

// Skill is a globally shared skill definition. Skills are not owned by any
// single user: many users reference the same skill in their offered/wanted
// sets and in swap requests. Names are unique case-insensitively and stored
// title-cased.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSkill creates a new Skill with a normalized name and category. New
// skills are auto-approved; admins can revoke approval later.
// Returns an error if validation fails after normalization.
func NewSkill(name, category, description string) (*Skill, error) {
	skill := &Skill{
		ID:          uuid.New(),
		Name:        NormalizeSkillName(name),
		Category:    NormalizeSkillName(category),
		Description: description,
		IsApproved:  true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := skill.Validate(); err != nil {
		return nil, err
	}

	return skill, nil
}

// Validate checks if the Skill has valid data.
func (s *Skill) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySkillID
	}

	if s.Name == "" {
		return ErrEmptySkillName
	}
	if len(s.Name) > 100 {
		return ErrSkillNameTooLong
	}

	return nil
}

// NormalizeSkillName trims surrounding whitespace and title-cases the value.
// Both skill names and categories go through the same normalization, so
// "  guitar  " and "GUITAR" map to the same stored form "Guitar".
func NormalizeSkillName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}
