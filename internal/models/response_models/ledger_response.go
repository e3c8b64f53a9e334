package response_models

type LedgerEntryResponse struct {
	PaymentID   string  `json:"paymentId"`
	BookingID   string  `json:"bookingId"`
	BookingType string  `json:"bookingType"`
	Status      string  `json:"status"`
	TotalPaid   float64 `json:"totalPaid"`
	Provider    string  `json:"provider"`
	Location    string  `json:"location"`
	Date        int64   `json:"date"`
}
