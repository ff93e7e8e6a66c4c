package models

// Booking mirrors the BOOKING table (package bookings). Package capacity is
// unmodeled, so no inventory changes on this path.
type Booking struct {
	ID            string  `json:"Booking_ID"`
	UserID        string  `json:"User_ID"`
	PackageID     string  `json:"Package_ID"`
	BookingDate   string  `json:"Booking_Date"`
	TravelDate    string  `json:"Travel_Date"`
	Travelers     int     `json:"Number_Of_Travelers"`
	TotalAmount   float64 `json:"Total_Amount"`
	PaymentStatus string  `json:"Payment_Status"`
}

// BookingDetail is a listed package booking joined with package display fields.
type BookingDetail struct {
	Booking
	PackageName string `json:"Package_Name"`
	Location    string `json:"Location"`
	ImageURL    string `json:"Image_URL,omitempty"`
}

// Payment mirrors the PAYMENT table. Rows are updated, never created, when a
// package booking is cancelled.
type Payment struct {
	BookingID     string  `json:"Booking_ID"`
	Amount        float64 `json:"Amount,omitempty"`
	PaymentStatus string  `json:"Payment_Status"`
}
