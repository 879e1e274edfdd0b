package queries

import (
	"context"

	"smartbus/internal/infra"
	"smartbus/internal/pkg/errs"
)

var ErrRouteNotFound = errs.New("route not found")

type FareReadStore interface {
	RouteName(ctx context.Context, routeID string) (string, error)
	ListByRoute(ctx context.Context, routeID string) ([]FareView, error)
}

type FareQueries interface {
	ListByRoute(ctx context.Context, routeID string) (*RouteFaresView, error)
}

type fareQueriesImpl struct {
	store FareReadStore
}

func NewFareQueries(store FareReadStore) FareQueries {
	return &fareQueriesImpl{store: store}
}

func (q *fareQueriesImpl) ListByRoute(ctx context.Context, routeID string) (*RouteFaresView, error) {
	name, err := q.store.RouteName(ctx, routeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	fares, err := q.store.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if fares == nil {
		fares = []FareView{}
	}
	return &RouteFaresView{RouteID: routeID, RouteName: name, Fares: fares}, nil
}
