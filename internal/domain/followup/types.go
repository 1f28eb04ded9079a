package followup

import (
	"errors"
	"time"
)

var ErrInvalidStatus = errors.New("invalid follow-up status")

// DefaultDuplicateWindow is how long a sent follow-up blocks another one for the same pair.
const DefaultDuplicateWindow = 24 * time.Hour

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
	StatusCanceled   Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusSent, StatusFailed, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsOutstanding reports whether a message in this state still blocks a new one for the pair.
func (s Status) IsOutstanding() bool {
	return s == StatusPending || s == StatusProcessing
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCanceled
	case StatusProcessing:
		return next == StatusSent || next == StatusFailed
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
