package trip

// CreateRequest is the administrative trip-creation payload. The
// gateway forwards it untouched; the struct documents the wire shape
// the backend expects rather than driving validation.
type CreateRequest struct {
	SubscriptionID   string  `json:"subscription_id"`
	RouteCode        string  `json:"route_code"`
	RouteName        string  `json:"route_name"`
	DepartureStation string  `json:"departure_station"`
	ArrivalStation   string  `json:"arrival_station"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	TravelTime       string  `json:"travel_time,omitempty"`
	AvailableSeats   int     `json:"available_seats"`
	Price            float64 `json:"price"`
}
