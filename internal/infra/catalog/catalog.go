// Package catalog loads fare tables from YAML seed files into Postgres.
package catalog

import (
	"context"
	"io"
	"strings"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/user"
	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/pgconv"

	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errs.New("invalid catalog file")

type Route struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type TicketType struct {
	ID           int32  `yaml:"id"`
	Name         string `yaml:"name"`
	DurationDays *int32 `yaml:"duration_days"`
	MaxUses      *int32 `yaml:"max_uses"`
	Unlimited    bool   `yaml:"unlimited"`
}

type Price struct {
	RouteID      string `yaml:"route"`
	TicketTypeID int32  `yaml:"ticket_type"`
	// Name defaults to the ticket type name.
	Name     string `yaml:"name"`
	Amount   int64  `yaml:"price"`
	Inactive bool   `yaml:"inactive"`
}

type Rider struct {
	ID       int64  `yaml:"id"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
}

type Catalog struct {
	Routes      []Route      `yaml:"routes"`
	TicketTypes []TicketType `yaml:"ticket_types"`
	Prices      []Price      `yaml:"prices"`
	Riders      []Rider      `yaml:"riders"`
}

type Summary struct {
	Routes      int
	TicketTypes int
	Prices      int
	Riders      int
}

// Parse decodes and validates a catalog. Unknown keys are rejected so a
// typo never silently drops a price.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errs.Is(err, io.EOF) {
			return nil, errs.Mark(errs.New("catalog file is empty"), ErrInvalidCatalog)
		}
		return nil, errs.Mark(errs.Wrap(err, "decode catalog"), ErrInvalidCatalog)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every row with the domain constructors and that prices
// only reference routes and ticket types defined in the same file.
func (c *Catalog) Validate() error {
	routes := make(map[string]bool, len(c.Routes))
	for _, r := range c.Routes {
		id := strings.TrimSpace(r.ID)
		if id == "" || strings.TrimSpace(r.Name) == "" {
			return invalid("route %q needs an id and a name", r.ID)
		}
		if routes[id] {
			return invalid("route %q defined twice", id)
		}
		routes[id] = true
	}

	types := make(map[int32]string, len(c.TicketTypes))
	for _, t := range c.TicketTypes {
		if _, err := fare.NewTicketType(t.ID, t.Name, t.DurationDays, t.MaxUses, t.Unlimited); err != nil {
			return errs.Mark(errs.Wrapf(err, "ticket type %d", t.ID), ErrInvalidCatalog)
		}
		if _, ok := types[t.ID]; ok {
			return invalid("ticket type %d defined twice", t.ID)
		}
		types[t.ID] = t.Name
	}

	for i, p := range c.Prices {
		if !routes[p.RouteID] {
			return invalid("price %d: unknown route %q", i, p.RouteID)
		}
		name, ok := types[p.TicketTypeID]
		if !ok {
			return invalid("price %d: unknown ticket type %d", i, p.TicketTypeID)
		}
		if p.Amount < 0 {
			return invalid("price %d: negative amount", i)
		}
		if strings.TrimSpace(p.Name) == "" {
			c.Prices[i].Name = name
		}
	}

	for _, r := range c.Riders {
		if _, err := user.NewRider(r.ID, r.FullName, r.Email); err != nil {
			return errs.Mark(errs.Wrapf(err, "rider %d", r.ID), ErrInvalidCatalog)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), ErrInvalidCatalog)
}

type WriteQueries interface {
	UpsertRoute(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRouteParams) error
	UpsertTicketType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertTicketTypeParams) error
	UpsertRoutePrice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoutePriceParams) error
	UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) error
}

type Importer struct {
	queries WriteQueries
}

func NewImporter(queries WriteQueries) *Importer {
	return &Importer{queries: queries}
}

// Import upserts the catalog through db. Callers pass a transaction so a
// failed row leaves the previous fare table untouched.
func (i *Importer) Import(ctx context.Context, db sqlc.DBTX, c *Catalog) (Summary, error) {
	var s Summary
	for _, r := range c.Routes {
		if err := i.queries.UpsertRoute(ctx, db, sqlc.UpsertRouteParams{ID: strings.TrimSpace(r.ID), RouteName: r.Name}); err != nil {
			return s, infra.WrapRepoErr("failed to upsert route", err)
		}
		s.Routes++
	}
	for _, t := range c.TicketTypes {
		err := i.queries.UpsertTicketType(ctx, db, sqlc.UpsertTicketTypeParams{
			ID:           t.ID,
			Name:         t.Name,
			DurationDays: pgconv.Int32PtrToPgtype(t.DurationDays),
			MaxUses:      pgconv.Int32PtrToPgtype(t.MaxUses),
			IsUnlimited:  t.Unlimited,
		})
		if err != nil {
			return s, infra.WrapRepoErr("failed to upsert ticket type", err)
		}
		s.TicketTypes++
	}
	for _, p := range c.Prices {
		err := i.queries.UpsertRoutePrice(ctx, db, sqlc.UpsertRoutePriceParams{
			RouteID:      p.RouteID,
			TicketTypeID: p.TicketTypeID,
			TicketName:   p.Name,
			Price:        p.Amount,
			IsActive:     !p.Inactive,
		})
		if err != nil {
			return s, infra.WrapRepoErr("failed to upsert route price", err)
		}
		s.Prices++
	}
	for _, r := range c.Riders {
		err := i.queries.UpsertUser(ctx, db, sqlc.UpsertUserParams{
			ID:       r.ID,
			FullName: r.FullName,
			Email:    pgconv.StringPtrToPgtype(emptyToNil(r.Email)),
		})
		if err != nil {
			return s, infra.WrapRepoErr("failed to upsert rider", err)
		}
		s.Riders++
	}
	return s, nil
}

func emptyToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
