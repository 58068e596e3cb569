package trip

// Trip is a concrete bus departure an administrator matched against a
// subscription. Immutable after creation; departure precedes arrival.
type Trip struct {
	ID               string  `json:"id"`
	SubscriptionID   string  `json:"subscription_id"`
	RouteCode        string  `json:"route_code"`
	RouteName        string  `json:"route_name"`
	DepartureStation string  `json:"departure_station"`
	ArrivalStation   string  `json:"arrival_station"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	TravelTime       string  `json:"travel_time"`
	AvailableSeats   int     `json:"available_seats"`
	Price            float64 `json:"price"`
	CreatedAt        int64   `json:"created_at"`
	UpdatedAt        int64   `json:"updated_at"`
}
