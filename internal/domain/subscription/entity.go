package subscription

import "tripalert-gateway/internal/domain/trip"

// Subscription mirrors the backend's wire shape. The gateway relays
// these verbatim; the struct exists for documentation and for tests
// that decode relayed bodies.
type Subscription struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	OriginID        int32  `json:"origin_id"`
	OriginCode      string `json:"origin_code"`
	Origin          string `json:"origin,omitempty"`
	DestinationID   int32  `json:"destination_id"`
	DestinationCode string `json:"destination_code"`
	Destination     string `json:"destination,omitempty"`

	// Offset-qualified ISO-8601 instant: notify for trips departing at
	// or after this moment. Always carries an explicit UTC offset.
	DateTime string `json:"date_time"`

	IsActive  bool        `json:"is_active"`
	Trips     []trip.Trip `json:"trips,omitempty"`
	CreatedAt int64       `json:"created_at"`
	UpdatedAt int64       `json:"updated_at"`
}
