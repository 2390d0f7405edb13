package model

type Sale struct {
	EventTitle  string `json:"event_title"`
	UserName    string `json:"user_name"`
	AmountPaid  Rupiah `json:"amount_paid"`
	PaymentDate string `json:"payment_date"`
}

type SalesReport struct {
	Total Rupiah `json:"total"`
	Count int    `json:"count"`
	Sales []Sale `json:"sales"`
}

// Average is the mean sale amount, zero when there are no sales.
func (r *SalesReport) Average() Rupiah {
	if r == nil || r.Count == 0 {
		return 0
	}
	return r.Total / Rupiah(r.Count)
}

type EventReport struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	Capacity        int    `json:"capacity"`
	RegisteredUsers int    `json:"registered_users"`
	TotalRevenue    Rupiah `json:"total_revenue"`
}
