//go:build unit || e2e

// Package memstore is an in-memory unit of work for use case tests. A
// failed Within call rolls every table back to its state before the call.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/outbox"
	"smartbus/internal/domain/payment"
	"smartbus/internal/domain/ticket"
	"smartbus/internal/domain/user"
	"smartbus/internal/infra"
	"smartbus/internal/pkg/ptr"
	"smartbus/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type priceKey struct {
	routeID      string
	ticketTypeID int32
}

type orderRow struct {
	status      payment.Status
	snapshot    payment.PurchaseSnapshot
	amount      fare.Money
	checkoutURL string
	createdAt   time.Time
	paidAt      *time.Time
}

type ticketRow struct {
	id           uuid.UUID
	token        string
	userID       int64
	routeID      string
	ticketTypeID int32
	kind         fare.PolicyKind
	issuedAt     time.Time
	expiresAt    *time.Time
	remaining    *int32
	active       bool
	price        fare.Money
}

type OutboxRow struct {
	Event     outbox.Event
	Status    string
	ClaimedAt time.Time
	Published *time.Time
}

type tables struct {
	routes  map[string]string
	types   map[int32]*fare.TicketType
	prices  map[priceKey]fare.Quote
	riders  map[int64]*user.Rider
	tickets map[string]ticketRow
	logs    []ticket.UsageLog
	orders  map[payment.OrderCode]orderRow
	items   map[payment.OrderCode][]payment.Item
	outbox  []OutboxRow
}

func (t tables) clone() tables {
	c := tables{
		routes:  maps.Clone(t.routes),
		types:   maps.Clone(t.types),
		prices:  maps.Clone(t.prices),
		riders:  maps.Clone(t.riders),
		tickets: maps.Clone(t.tickets),
		logs:    slices.Clone(t.logs),
		orders:  maps.Clone(t.orders),
		items:   make(map[payment.OrderCode][]payment.Item, len(t.items)),
		outbox:  slices.Clone(t.outbox),
	}
	for k, v := range t.items {
		c.items[k] = slices.Clone(v)
	}
	return c
}

// Store serializes transactions with one mutex, which is stricter than
// Postgres but keeps every test deterministic.
type Store struct {
	mu sync.Mutex
	t  tables

	// Hooks run inside the transaction and may return an error to abort it.
	BeforeCreateTicket func(t *ticket.Ticket) error
	BeforeOpenOrder    func(o *payment.Order) error
	BeforeSaveTicket   func(t *ticket.Ticket) error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{t: tables{
		routes:  map[string]string{},
		types:   map[int32]*fare.TicketType{},
		prices:  map[priceKey]fare.Quote{},
		riders:  map[int64]*user.Rider{},
		tickets: map[string]ticketRow{},
		orders:  map[payment.OrderCode]orderRow{},
		items:   map[payment.OrderCode][]payment.Item{},
	}}
}

// ---- seeding ----

func (s *Store) AddRoute(id, name string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.routes[id] = name
	return s
}

func (s *Store) AddTicketType(tt *fare.TicketType) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.types[tt.ID()] = tt
	return s
}

func (s *Store) SetPrice(routeID string, ticketTypeID int32, price fare.Money) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := ""
	if tt, ok := s.t.types[ticketTypeID]; ok {
		name = tt.Name()
	}
	s.t.prices[priceKey{routeID, ticketTypeID}] = fare.Quote{
		RouteID:      routeID,
		RouteName:    s.t.routes[routeID],
		TicketTypeID: ticketTypeID,
		TicketName:   name,
		Price:        price,
	}
	return s
}

func (s *Store) RemovePrice(routeID string, ticketTypeID int32) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.t.prices, priceKey{routeID, ticketTypeID})
	return s
}

func (s *Store) AddRider(r *user.Rider) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.riders[r.ID()] = r
	return s
}

func (s *Store) AddTicket(t *ticket.Ticket) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.tickets[t.Token()] = rowFromTicket(t)
	return s
}

// ---- inspection ----

func (s *Store) Ticket(token string) (*ticket.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.t.tickets[token]
	if !ok {
		return nil, false
	}
	return row.toDomain(), true
}

func (s *Store) TicketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.t.tickets)
}

func (s *Store) UsageLogs() []ticket.UsageLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.t.logs)
}

func (s *Store) Order(code payment.OrderCode) (*payment.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.t.orders[code]
	if !ok {
		return nil, false
	}
	return row.toDomain(code), true
}

func (s *Store) Orders() []*payment.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*payment.Order, 0, len(s.t.orders))
	for code, row := range s.t.orders {
		out = append(out, row.toDomain(code))
	}
	return out
}

func (s *Store) Items(code payment.OrderCode) []payment.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.t.items[code])
}

func (s *Store) Outbox() []OutboxRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.t.outbox)
}

func (s *Store) EventsOfType(typ outbox.Type) []outbox.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []outbox.Event
	for _, r := range s.t.outbox {
		if r.Event.Type == typ {
			out = append(out, r.Event)
		}
	}
	return out
}

// ---- UnitOfWork ----

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.t.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.t = saved
		return err
	}
	return nil
}

// CommandReads outside a transaction take the lock per call.
func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// FareCatalog and UserDirectory adapters for use cases that read outside
// a transaction.
func (s *Store) PriceFor(ctx context.Context, routeID string, ticketTypeID int32) (fare.Quote, error) {
	return s.CommandReads().PriceFor(ctx, routeID, ticketTypeID)
}

func (s *Store) PolicyFor(ctx context.Context, ticketTypeID int32) (*fare.TicketType, error) {
	return s.CommandReads().PolicyFor(ctx, ticketTypeID)
}

func (s *Store) RiderByID(ctx context.Context, id int64) (*user.Rider, error) {
	return s.CommandReads().RiderByID(ctx, id)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

type memTx struct {
	s *Store
}

func (tx *memTx) Tickets() shared.TicketRepository             { return &ticketRepo{s: tx.s} }
func (tx *memTx) PaymentOrders() shared.PaymentOrderRepository { return &orderRepo{s: tx.s} }
func (tx *memTx) Outbox() shared.OutboxRepository              { return &outboxRepo{s: tx.s} }
func (tx *memTx) Reads() shared.CommandReads                   { return &reads{s: tx.s} }

// ---- reads ----

type reads struct {
	s    *Store
	lock bool
}

func (r *reads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) PriceFor(_ context.Context, routeID string, ticketTypeID int32) (fare.Quote, error) {
	defer r.guard()()
	q, ok := r.s.t.prices[priceKey{routeID, ticketTypeID}]
	if !ok {
		return fare.Quote{}, notFound("price not found")
	}
	return q, nil
}

func (r *reads) PolicyFor(_ context.Context, ticketTypeID int32) (*fare.TicketType, error) {
	defer r.guard()()
	tt, ok := r.s.t.types[ticketTypeID]
	if !ok {
		return nil, notFound("ticket type not found")
	}
	return tt, nil
}

func (r *reads) RiderByID(_ context.Context, id int64) (*user.Rider, error) {
	defer r.guard()()
	rider, ok := r.s.t.riders[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return rider, nil
}

func (r *reads) OrderByCode(_ context.Context, code payment.OrderCode) (*payment.Order, error) {
	defer r.guard()()
	row, ok := r.s.t.orders[code]
	if !ok {
		return nil, notFound("payment order not found")
	}
	return row.toDomain(code), nil
}

func (r *reads) OrderItems(_ context.Context, code payment.OrderCode) ([]payment.Item, error) {
	defer r.guard()()
	return slices.Clone(r.s.t.items[code]), nil
}

func (r *reads) Confirmations(_ context.Context, code payment.OrderCode) ([]payment.Confirmation, error) {
	defer r.guard()()
	var out []payment.Confirmation
	for _, it := range r.s.t.items[code] {
		if it.TicketID == nil {
			continue
		}
		for _, row := range r.s.t.tickets {
			if row.id != *it.TicketID {
				continue
			}
			name := ""
			if tt, ok := r.s.t.types[row.ticketTypeID]; ok {
				name = tt.Name()
			}
			out = append(out, payment.Confirmation{
				LineNo:         it.LineNo,
				TicketToken:    row.token,
				TicketTypeName: name,
				RouteName:      r.s.t.routes[row.routeID],
			})
		}
	}
	return out, nil
}

// ---- tickets ----

type ticketRepo struct {
	s *Store
}

func (r *ticketRepo) Create(_ context.Context, t *ticket.Ticket) error {
	if r.s.BeforeCreateTicket != nil {
		if err := r.s.BeforeCreateTicket(t); err != nil {
			return err
		}
	}
	r.s.t.tickets[t.Token()] = rowFromTicket(t)
	return nil
}

func (r *ticketRepo) FindByTokenForUpdate(_ context.Context, token string) (*ticket.Ticket, error) {
	row, ok := r.s.t.tickets[token]
	if !ok {
		return nil, notFound("ticket not found")
	}
	return row.toDomain(), nil
}

func (r *ticketRepo) SaveRedemption(_ context.Context, t *ticket.Ticket, previousRemaining *int32) error {
	if r.s.BeforeSaveTicket != nil {
		if err := r.s.BeforeSaveTicket(t); err != nil {
			return err
		}
	}
	row, ok := r.s.t.tickets[t.Token()]
	if !ok {
		return notFound("ticket not found")
	}
	if !equalInt32(row.remaining, previousRemaining) {
		return infra.WrapRepoErr("ticket changed concurrently", nil, infra.KindConflict)
	}
	row.active = t.IsActive()
	row.remaining = copyInt32(t.RemainingUses())
	r.s.t.tickets[t.Token()] = row
	return nil
}

func (r *ticketRepo) AppendUsageLog(_ context.Context, entry ticket.UsageLog) error {
	r.s.t.logs = append(r.s.t.logs, entry)
	return nil
}

// ---- payment orders ----

type orderRepo struct {
	s *Store
}

func (r *orderRepo) Open(_ context.Context, o *payment.Order) error {
	if r.s.BeforeOpenOrder != nil {
		if err := r.s.BeforeOpenOrder(o); err != nil {
			return err
		}
	}
	if _, exists := r.s.t.orders[o.Code()]; exists {
		return infra.WrapRepoErr("payment order exists", nil, infra.KindDuplicateKey)
	}
	r.s.t.orders[o.Code()] = orderRow{
		status:    o.Status(),
		snapshot:  o.Snapshot(),
		amount:    o.Amount(),
		createdAt: o.CreatedAt(),
	}
	r.s.t.items[o.Code()] = payment.ItemsFromSnapshot(o.Code(), o.Snapshot())
	return nil
}

func (r *orderRepo) AttachCheckoutURL(_ context.Context, code payment.OrderCode, url string) error {
	row, ok := r.s.t.orders[code]
	if !ok {
		return notFound("payment order not found")
	}
	row.checkoutURL = url
	r.s.t.orders[code] = row
	return nil
}

func (r *orderRepo) MarkPaid(_ context.Context, code payment.OrderCode, paidAt time.Time) (bool, error) {
	row, ok := r.s.t.orders[code]
	if !ok {
		return false, notFound("payment order not found")
	}
	if row.status == payment.StatusPaid {
		return false, nil
	}
	row.status = payment.StatusPaid
	row.paidAt = ptr.Of(paidAt)
	r.s.t.orders[code] = row
	return true, nil
}

func (r *orderRepo) ItemForUpdate(_ context.Context, code payment.OrderCode, lineNo int32) (*payment.Item, error) {
	for _, it := range r.s.t.items[code] {
		if it.LineNo == lineNo {
			return &it, nil
		}
	}
	return nil, notFound("payment order item not found")
}

func (r *orderRepo) MarkItemFulfilled(_ context.Context, code payment.OrderCode, lineNo int32, ticketID uuid.UUID) (bool, error) {
	items := r.s.t.items[code]
	for i := range items {
		if items[i].LineNo != lineNo {
			continue
		}
		if items[i].TicketID != nil {
			return false, nil
		}
		items[i].TicketID = ptr.Of(ticketID)
		items[i].LastError = nil
		return true, nil
	}
	return false, nil
}

func (r *orderRepo) RecordItemError(_ context.Context, code payment.OrderCode, lineNo int32, reason string) error {
	items := r.s.t.items[code]
	for i := range items {
		if items[i].LineNo == lineNo {
			items[i].LastError = ptr.Of(reason)
		}
	}
	return nil
}

// ---- outbox ----

type outboxRepo struct {
	s *Store
}

func (r *outboxRepo) Append(_ context.Context, ev outbox.Event) error {
	r.s.t.outbox = append(r.s.t.outbox, OutboxRow{Event: ev, Status: "new"})
	return nil
}

func (r *outboxRepo) Claim(_ context.Context, limit int32, now time.Time, lease time.Duration) ([]outbox.Event, error) {
	var out []outbox.Event
	staleBefore := now.Add(-lease)
	for i := range r.s.t.outbox {
		if int32(len(out)) >= limit {
			break
		}
		row := &r.s.t.outbox[i]
		stale := row.Status == "processing" && row.ClaimedAt.Before(staleBefore)
		if row.Status != "new" && !stale {
			continue
		}
		row.Status = "processing"
		row.ClaimedAt = now
		out = append(out, row.Event)
	}
	return out, nil
}

func (r *outboxRepo) MarkPublished(_ context.Context, ids []uuid.UUID, at time.Time) error {
	for i := range r.s.t.outbox {
		if slices.Contains(ids, r.s.t.outbox[i].Event.ID) {
			r.s.t.outbox[i].Status = "published"
			r.s.t.outbox[i].Published = ptr.Of(at)
		}
	}
	return nil
}

func (r *outboxRepo) Release(_ context.Context, ids []uuid.UUID) error {
	for i := range r.s.t.outbox {
		if slices.Contains(ids, r.s.t.outbox[i].Event.ID) {
			r.s.t.outbox[i].Status = "new"
		}
	}
	return nil
}

// ---- row mapping ----

func rowFromTicket(t *ticket.Ticket) ticketRow {
	return ticketRow{
		id:           t.ID(),
		token:        t.Token(),
		userID:       t.UserID(),
		routeID:      t.RouteID(),
		ticketTypeID: t.TicketTypeID(),
		kind:         t.PolicyKind(),
		issuedAt:     t.IssuedAt(),
		expiresAt:    t.ExpiresAt(),
		remaining:    copyInt32(t.RemainingUses()),
		active:       t.IsActive(),
		price:        t.Price(),
	}
}

func (r ticketRow) toDomain() *ticket.Ticket {
	return ticket.Reconstruct(r.id, r.token, r.userID, r.routeID, r.ticketTypeID, r.kind,
		r.issuedAt, r.expiresAt, copyInt32(r.remaining), r.active, r.price)
}

func (r orderRow) toDomain(code payment.OrderCode) *payment.Order {
	return payment.ReconstructOrder(code, r.status, r.snapshot, r.amount, r.checkoutURL, r.createdAt, r.paidAt)
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	return ptr.Of(*v)
}

func equalInt32(a, b *int32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
