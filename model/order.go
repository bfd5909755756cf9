package model

// OrderStatus is the closed order state set, using the server's single-letter
// wire codes.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "n"
	OrderStatusPaid     OrderStatus = "p"
	OrderStatusExpired  OrderStatus = "e"
	OrderStatusCanceled OrderStatus = "c"
)

type Order struct {
	Code             string          `json:"code" validate:"required"`
	Status           OrderStatus     `json:"status" validate:"oneof=n p e c"`
	Secret           string          `json:"secret"`
	Email            string          `json:"email"`
	CheckInAttention bool            `json:"checkin_attention"`
	RequireApproval  bool            `json:"require_approval"`
	Positions        []OrderPosition `json:"positions" validate:"dive"`
}

// OrderPosition is one admittable ticket inside an order. Secret is the value
// scanned at the door.
type OrderPosition struct {
	ID                 int64  `json:"id" validate:"required"`
	OrderCode          string `json:"order"`
	PositionID         int    `json:"positionid"`
	ItemID             int64  `json:"item"`
	VariationID        *int64 `json:"variation"`
	Price              string `json:"price"`
	AttendeeName       string `json:"attendee_name"`
	AttendeeEmail      string `json:"attendee_email"`
	Secret             string `json:"secret" validate:"required"`
	PseudonymizationID string `json:"pseudonymization_id"`
}
