// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPendingPayment marks a draft kept in sync with the cart while a
	// digital-wallet payment is in progress.
	StatusPendingPayment OrderStatus = "pending_payment"
	// StatusPending is a confirmed order waiting for the kitchen.
	StatusPending OrderStatus = "pending"
	// StatusPreparing is an order the kitchen has started.
	StatusPreparing OrderStatus = "preparing"
	// StatusEnRoute is a delivery order handed to a courier.
	StatusEnRoute OrderStatus = "en_route"
	// StatusCompleted is a finished order. Terminal.
	StatusCompleted OrderStatus = "completed"
	// StatusCancelled is an aborted order. Terminal.
	StatusCancelled OrderStatus = "cancelled"
)

// rank orders the forward progression of the state machine. Terminal and
// unknown states have no rank.
var statusRank = map[OrderStatus]int{
	StatusPendingPayment: 0,
	StatusPending:        1,
	StatusPreparing:      2,
	StatusEnRoute:        3,
	StatusCompleted:      4,
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusPending, StatusPreparing, StatusEnRoute, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the forward transition s -> next is
// allowed. Transitions are monotonic: an order never returns to an earlier
// state. Cancellation is handled separately, see Order.CancelableBy.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() || next == StatusCancelled {
		return false
	}

	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}

	return nxt > cur
}

// FulfillmentType governs service-fee rules and the required detail field.
type FulfillmentType string

const (
	// FulfillmentTable is dine-in: detail holds the claimed table numbers.
	FulfillmentTable FulfillmentType = "table"
	// FulfillmentTakeout is pick-up at the counter: no service fee.
	FulfillmentTakeout FulfillmentType = "takeout"
	// FulfillmentDelivery is courier delivery: detail holds the address.
	FulfillmentDelivery FulfillmentType = "delivery"
)

// IsValid checks if the fulfillment type is a known value.
func (t FulfillmentType) IsValid() bool {
	switch t {
	case FulfillmentTable, FulfillmentTakeout, FulfillmentDelivery:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTerminal PaymentMethod = "terminal"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentWallet   PaymentMethod = "digital-wallet"
)

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentTerminal, PaymentTransfer, PaymentWallet:
		return true
	default:
		return false
	}
}

// OrderItem is a single priced line within an order. Price is the final
// per-unit price produced by the pricing calculator, customization included.
type OrderItem struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Customization string  `json:"customization,omitempty"`
}

// LineTotal returns price x quantity for the line.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is a persisted customer order. Total is never stored independently:
// callers mutate the components and call Recompute.
type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name"`
	Items          []OrderItem     `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	ServiceFee     float64         `json:"service_fee"`
	Commission     float64         `json:"commission"`
	Total          float64         `json:"total"`
	Type           FulfillmentType `json:"type"`
	Detail         string          `json:"detail"` // Table numbers or delivery address, free text.
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	Status         OrderStatus     `json:"status"`
	ProofOfPayment string          `json:"proof_of_payment,omitempty"`
	TransferTo     string          `json:"transfer_to,omitempty"` // Destination account for transfer payments.
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Recompute refreshes Subtotal from the line items and Total from its three
// components, maintaining total = subtotal + serviceFee + commission.
func (o *Order) Recompute() {
	var subtotal float64
	for _, item := range o.Items {
		subtotal += item.LineTotal()
	}
	o.Subtotal = subtotal
	o.Total = o.Subtotal + o.ServiceFee + o.Commission
}

// IsActive reports whether the order still occupies kitchen or table
// resources.
func (o *Order) IsActive() bool {
	switch o.Status {
	case StatusPending, StatusPreparing, StatusEnRoute:
		return true
	default:
		return false
	}
}

// CancelableBy reports whether the given role may cancel the order in its
// current state. Customers may only abandon an order the kitchen has not
// taken yet; admins may cancel anything that is not already terminal.
func (o *Order) CancelableBy(role Role) bool {
	if o.Status.IsTerminal() {
		return false
	}

	if role == RoleAdmin {
		return true
	}

	return o.Status == StatusPending
}
