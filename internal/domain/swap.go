package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

// Possible swap request status values. Pending is the sole initial state;
// the other four are terminal in the strict state machine.
const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// SwapActor identifies which party of a swap request is performing an action.
type SwapActor int

// Actor roles relative to a swap request.
const (
	ActorNone SwapActor = iota
	ActorRequester
	ActorRequested
	ActorEither
)

// Common validation errors for SwapRequest
var (
	ErrEmptySwapID          = errors.New("swap request ID cannot be empty")
	ErrEmptyRequesterID     = errors.New("requester ID cannot be empty")
	ErrEmptyRequestedID     = errors.New("requested user ID cannot be empty")
	ErrEmptySkillOfferedID  = errors.New("offered skill ID cannot be empty")
	ErrEmptySkillWantedID   = errors.New("wanted skill ID cannot be empty")
	ErrSameParties          = errors.New("requester and requested user must be distinct")
	ErrInvalidSwapStatus    = errors.New("invalid swap request status")
)

// SwapRequest is a proposal by the requester to teach SkillOffered in
// exchange for learning SkillWanted from the requested user. Users and
// skills are referenced by id only; deleting a skill does not cascade to
// requests referencing it.
type SwapRequest struct {
	ID             uuid.UUID  `json:"id"`
	RequesterID    uuid.UUID  `json:"requester_id"`
	RequestedID    uuid.UUID  `json:"requested_id"`
	SkillOfferedID uuid.UUID  `json:"skill_offered_id"`
	SkillWantedID  uuid.UUID  `json:"skill_wanted_id"`
	Message        string     `json:"message,omitempty"`
	Status         SwapStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewSwapRequest creates a new pending SwapRequest between the given parties.
// Returns an error if validation fails. Business-rule checks (skill
// ownership, duplicate pending tuples) belong to the swap service; this
// constructor enforces only structural validity.
func NewSwapRequest(requesterID, requestedID, skillOfferedID, skillWantedID uuid.UUID, message string) (*SwapRequest, error) {
	req := &SwapRequest{
		ID:             uuid.New(),
		RequesterID:    requesterID,
		RequestedID:    requestedID,
		SkillOfferedID: skillOfferedID,
		SkillWantedID:  skillWantedID,
		Message:        message,
		Status:         SwapStatusPending,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks if the SwapRequest has valid data.
func (r *SwapRequest) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptySwapID
	}
	if r.RequesterID == uuid.Nil {
		return ErrEmptyRequesterID
	}
	if r.RequestedID == uuid.Nil {
		return ErrEmptyRequestedID
	}
	if r.RequesterID == r.RequestedID {
		return ErrSameParties
	}
	if r.SkillOfferedID == uuid.Nil {
		return ErrEmptySkillOfferedID
	}
	if r.SkillWantedID == uuid.Nil {
		return ErrEmptySkillWantedID
	}
	if !IsValidSwapStatus(r.Status) {
		return ErrInvalidSwapStatus
	}
	return nil
}

// IsParty reports whether the given user is one of the two parties of the
// request.
func (r *SwapRequest) IsParty(userID uuid.UUID) bool {
	return r.RequesterID == userID || r.RequestedID == userID
}

// ActorRole returns the role the given user holds on this request, or
// ActorNone for a stranger.
func (r *SwapRequest) ActorRole(userID uuid.UUID) SwapActor {
	switch userID {
	case r.RequesterID:
		return ActorRequester
	case r.RequestedID:
		return ActorRequested
	default:
		return ActorNone
	}
}

// IsValidSwapStatus checks if the given status is a valid SwapStatus.
func IsValidSwapStatus(status SwapStatus) bool {
	switch status {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected,
		SwapStatusCompleted, SwapStatusCancelled:
		return true
	default:
		return false
	}
}

// transitionSources lists, per target status, the source states a transition
// may legally leave. Completion is reachable from accepted or directly from
// pending, so a swap arranged informally can still be closed out.
var transitionSources = map[SwapStatus][]SwapStatus{
	SwapStatusAccepted:  {SwapStatusPending},
	SwapStatusRejected:  {SwapStatusPending},
	SwapStatusCancelled: {SwapStatusPending},
	SwapStatusCompleted: {SwapStatusPending, SwapStatusAccepted},
}

// transitionActors names, per target status, which party may apply the
// transition.
var transitionActors = map[SwapStatus]SwapActor{
	SwapStatusAccepted:  ActorRequested,
	SwapStatusRejected:  ActorRequested,
	SwapStatusCancelled: ActorRequester,
	SwapStatusCompleted: ActorEither,
}

// TransitionActor returns the party authorized to move a request into the
// target status. The second return value is false for statuses that are not
// valid transition targets (pending cannot be re-entered).
func TransitionActor(target SwapStatus) (SwapActor, bool) {
	actor, ok := transitionActors[target]
	return actor, ok
}

// CanTransition reports whether the strict state machine permits moving from
// the current status to the target status.
func CanTransition(from, to SwapStatus) bool {
	for _, src := range transitionSources[to] {
		if src == from {
			return true
		}
	}
	return false
}

// SwapPatch describes a partial update to a swap request. Nil fields are
// left untouched.
type SwapPatch struct {
	Status  *SwapStatus `json:"status,omitempty"`
	Message *string     `json:"message,omitempty"`
}
