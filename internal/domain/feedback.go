package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Feedback
var (
	ErrEmptyFeedbackID     = errors.New("feedback ID cannot be empty")
	ErrEmptyFeedbackSwapID = errors.New("feedback swap request ID cannot be empty")
	ErrEmptyGiverID        = errors.New("feedback giver ID cannot be empty")
	ErrEmptyReceiverID     = errors.New("feedback receiver ID cannot be empty")
	ErrGiverIsReceiver     = errors.New("feedback giver and receiver must be distinct")
	ErrRatingOutOfRange    = errors.New("rating must be between 1 and 5")
)

// Feedback is an append-only rating attached to a swap request. Giver and
// receiver must be the two parties of the referenced request; records are
// never updated or deleted.
type Feedback struct {
	ID            uuid.UUID `json:"id"`
	SwapRequestID uuid.UUID `json:"swap_request_id"`
	GiverID       uuid.UUID `json:"giver_id"`
	ReceiverID    uuid.UUID `json:"receiver_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewFeedback creates a new Feedback record for the given swap request.
// Returns an error if validation fails. Verifying that giver and receiver
// are parties of the request requires a lookup and is the feedback service's
// responsibility.
func NewFeedback(swapRequestID, giverID, receiverID uuid.UUID, rating int, comment string) (*Feedback, error) {
	fb := &Feedback{
		ID:            uuid.New(),
		SwapRequestID: swapRequestID,
		GiverID:       giverID,
		ReceiverID:    receiverID,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     time.Now().UTC(),
	}

	if err := fb.Validate(); err != nil {
		return nil, err
	}

	return fb, nil
}

// Validate checks if the Feedback has valid data.
func (f *Feedback) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFeedbackID
	}
	if f.SwapRequestID == uuid.Nil {
		return ErrEmptyFeedbackSwapID
	}
	if f.GiverID == uuid.Nil {
		return ErrEmptyGiverID
	}
	if f.ReceiverID == uuid.Nil {
		return ErrEmptyReceiverID
	}
	if f.GiverID == f.ReceiverID {
		return ErrGiverIsReceiver
	}
	if f.Rating < 1 || f.Rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}
