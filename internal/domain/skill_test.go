package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims_whitespace", "  guitar  ", "Guitar"},
		{"title_cases_upper", "GUITAR", "Guitar"},
		{"title_cases_mixed", "gUiTaR", "Guitar"},
		{"multi_word", "web development", "Web Development"},
		{"empty_string", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkillName(tc.input))
		})
	}
}

func TestNewSkill(t *testing.T) {
	t.Run("normalizes_name_and_category", func(t *testing.T) {
		skill, err := NewSkill("  spanish COOKING ", "food", "tapas and more")
		require.NoError(t, err)
		assert.Equal(t, "Spanish Cooking", skill.Name)
		assert.Equal(t, "Food", skill.Category)
		assert.Equal(t, "tapas and more", skill.Description)
		assert.True(t, skill.IsApproved)
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := NewSkill("   ", "music", "")
		assert.ErrorIs(t, err, ErrEmptySkillName)
	})

	t.Run("name_too_long", func(t *testing.T) {
		_, err := NewSkill(strings.Repeat("a", 101), "", "")
		assert.ErrorIs(t, err, ErrSkillNameTooLong)
	})
}
