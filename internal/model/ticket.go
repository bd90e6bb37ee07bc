package model

// Ticket is a purchased festival pass.
type Ticket struct {
	ID            int64  // ticket.ticket_id
	Type          string // ticket.ticket_type
	PurchaserName string // ticket.purchaser_name
	PurchaserAge  int    // ticket.purchaser_age
}
