package response

import (
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type FareResponse struct {
	TicketTypeID int32  `json:"ticketTypeId"`
	TicketName   string `json:"ticketName"`
	Price        int64  `json:"price"`
	PolicyKind   string `json:"policyKind"`
	DurationDays *int32 `json:"durationDays,omitempty"`
	MaxUses      *int32 `json:"maxUses,omitempty"`
	IsUnlimited  bool   `json:"isUnlimited"`
}

type RouteFaresResponse struct {
	RouteID   string         `json:"routeId"`
	RouteName string         `json:"routeName"`
	Fares     []FareResponse `json:"fares"`
}

func FromRouteFaresView(v *queries.RouteFaresView) (*RouteFaresResponse, error) {
	res := &RouteFaresResponse{Fares: []FareResponse{}}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "map route fares")
	}
	if res.Fares == nil {
		res.Fares = []FareResponse{}
	}
	return res, nil
}
