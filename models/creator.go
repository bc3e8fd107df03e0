package models

import "time"

// CreatorRequestStatus tracks the moderation state of a creator
// application. Approved and rejected are terminal.
type CreatorRequestStatus string

const (
	CreatorRequestPending  CreatorRequestStatus = "pending"
	CreatorRequestApproved CreatorRequestStatus = "approved"
	CreatorRequestRejected CreatorRequestStatus = "rejected"
)

// Terminal reports whether the status can no longer change.
func (s CreatorRequestStatus) Terminal() bool {
	return s == CreatorRequestApproved || s == CreatorRequestRejected
}

// CreatorRequest is a user application for the creator role.
// Transitions out of pending are performed only by admins through the
// approve/reject endpoints.
type CreatorRequest struct {
	ID        int64                `json:"id"`
	UserID    int64                `json:"user_id"`
	Username  string               `json:"username"`
	Status    CreatorRequestStatus `json:"status"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
}
