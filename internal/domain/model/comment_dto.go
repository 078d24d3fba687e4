package model

import "time"

// CreateCommentDTO carries the submitted comment payload. CreatedAt may be
// present in the wire format but is always discarded: the server observes
// its own creation instant.
type CreateCommentDTO struct {
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"createdAt"`
}
