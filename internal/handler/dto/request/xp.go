package request

import "github.com/google/uuid"

type AwardXPRequest struct {
	Action   string     `json:"action" binding:"required"`
	SourceID *uuid.UUID `json:"source_id"`
}
