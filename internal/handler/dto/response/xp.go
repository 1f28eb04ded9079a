package response

import (
	"time"

	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type XPEntryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Action    string     `json:"action"`
	Points    int32      `json:"points"`
	SourceID  *uuid.UUID `json:"source_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type XPSummaryResponse struct {
	Total          int64             `json:"total"`
	Level          int64             `json:"level"`
	CurrentLevelXP int64             `json:"current_level_xp"`
	NextLevelXP    int64             `json:"next_level_xp"`
	Progress       float64           `json:"progress"`
	Recent         []XPEntryResponse `json:"recent"`
}

type AwardXPResponse struct {
	Action  string `json:"action"`
	Points  int32  `json:"points"`
	Awarded bool   `json:"awarded"`
	Total   int64  `json:"total"`
}

func FromXPSummaryView(v *queries.XPSummaryView) *XPSummaryResponse {
	res := XPSummaryResponse{Recent: []XPEntryResponse{}}
	_ = copier.Copy(&res, v)
	if res.Recent == nil {
		res.Recent = []XPEntryResponse{}
	}
	return &res
}

func FromAwardResult(r *commands.AwardResult) *AwardXPResponse {
	return &AwardXPResponse{
		Action:  r.Action.String(),
		Points:  r.Points,
		Awarded: r.Awarded,
		Total:   r.Total,
	}
}
