package fare

// Quote is the active catalog price of a ticket type on a route.
type Quote struct {
	RouteID      string
	RouteName    string
	TicketTypeID int32
	TicketName   string
	Price        Money
}
