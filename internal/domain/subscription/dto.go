package subscription

// CreateRequest is what the UI submits. The caller either pre-encodes
// date_time or sends the raw date (and optional time) form fields and
// lets the gateway encode them. user_id and email are accepted but
// always overwritten from the validated session before forwarding.
// The gateway forwards the body as a generic object, so this struct
// documents the wire shape rather than driving validation.
type CreateRequest struct {
	OriginID        int32  `json:"origin_id"`
	OriginCode      string `json:"origin_code"`
	Origin          string `json:"origin,omitempty"`
	DestinationID   int32  `json:"destination_id"`
	DestinationCode string `json:"destination_code"`
	Destination     string `json:"destination,omitempty"`

	DateTime string `json:"date_time,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
}

// UpdateRequest carries partial updates, e.g. toggling is_active. The
// body forwards as-is, so only the shape is documented here.
type UpdateRequest struct {
	IsActive *bool `json:"is_active,omitempty"`
}
