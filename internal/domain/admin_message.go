package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessageID      = errors.New("admin message ID cannot be empty")
	ErrEmptyMessageTitle   = errors.New("admin message title cannot be empty")
	ErrEmptyMessageContent = errors.New("admin message content cannot be empty")
)

// AdminMessage is a platform-wide broadcast authored by an administrator.
// It has no relationship to users, skills, or swaps.
type AdminMessage struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAdminMessage creates a new AdminMessage.
func NewAdminMessage(title, content string, isActive bool) (*AdminMessage, error) {
	msg := &AdminMessage{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return msg, nil
}

// Validate checks if the AdminMessage has valid data.
func (m *AdminMessage) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMessageID
	}
	if m.Title == "" {
		return ErrEmptyMessageTitle
	}
	if m.Content == "" {
		return ErrEmptyMessageContent
	}
	return nil
}
