package response

import (
	"time"

	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"
	"smartbus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RedeemResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{Accepted: r.Accepted, Message: r.Message}
}

type TicketResponse struct {
	ID             uuid.UUID  `json:"id"`
	Token          string     `json:"token"`
	RouteID        string     `json:"routeId"`
	RouteName      string     `json:"routeName"`
	TicketTypeID   int32      `json:"ticketTypeId"`
	TicketTypeName string     `json:"ticketTypeName"`
	PolicyKind     string     `json:"policyKind"`
	IssuedAt       time.Time  `json:"issuedAt"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	RemainingUses  *int32     `json:"remainingUses,omitempty"`
	IsActive       bool       `json:"isActive"`
	Price          int64      `json:"price"`
}

func FromTicketViews(views []queries.TicketView) ([]TicketResponse, error) {
	res := make([]TicketResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, errs.Wrap(err, "map ticket views")
	}
	if res == nil {
		res = []TicketResponse{}
	}
	return res, nil
}
