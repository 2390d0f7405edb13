package model

type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Price       Rupiah `json:"price"`
	Capacity    int    `json:"capacity,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Categories  string `json:"categories,omitempty"`

	// Set on the /users/events listing only.
	RegistrationStatus string `json:"registration_status,omitempty"`
	PaymentStatus      string `json:"payment_status,omitempty"`
}

type Registration struct {
	ID      int `json:"id"`
	EventID int `json:"event_id,omitempty"`
}
