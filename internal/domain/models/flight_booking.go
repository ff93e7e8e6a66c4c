package models

// Payment status values shared by flight and package bookings.
const (
	PaymentPending   = "Pending"
	PaymentRefunded  = "Refunded"
	PaymentCancelled = "Cancelled"
)

// FlightBooking mirrors the FLIGHT_BOOKING table.
type FlightBooking struct {
	ID             string  `json:"Booking_ID"`
	UserID         string  `json:"User_ID"`
	OutboundID     string  `json:"Outbound_Flight_ID"`
	ReturnID       string  `json:"Return_Flight_ID,omitempty"`
	BookingDate    string  `json:"Booking_Date"`
	PassengerCount int     `json:"Number_Of_Passengers"`
	TotalAmount    float64 `json:"Total_Amount"`
	PaymentStatus  string  `json:"Payment_Status"`
}

// Passenger mirrors the FLIGHT_PASSENGER table. Rows are inserted in the
// order given by the client; passport numbers are not deduplicated.
type Passenger struct {
	ID             string `json:"Passenger_ID,omitempty"`
	BookingID      string `json:"Booking_ID,omitempty"`
	Title          string `json:"title"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
}

// FlightBookingDetail is the joined row returned when listing a user's
// flight bookings, including display fields for both legs.
type FlightBookingDetail struct {
	FlightBooking
	OutboundFlightNumber string  `json:"Outbound_Flight_Number"`
	OutboundDeparture    string  `json:"Outbound_Departure_Time"`
	OutboundArrival      string  `json:"Outbound_Arrival_Time"`
	OutboundFromCity     string  `json:"Outbound_Departure_City"`
	OutboundToCity       string  `json:"Outbound_Arrival_City"`
	OutboundAirline      string  `json:"Outbound_Airline"`
	ReturnFlightNumber   *string `json:"Return_Flight_Number,omitempty"`
	ReturnDeparture      *string `json:"Return_Departure_Time,omitempty"`
	ReturnArrival        *string `json:"Return_Arrival_Time,omitempty"`
	ReturnFromCity       *string `json:"Return_Departure_City,omitempty"`
	ReturnToCity         *string `json:"Return_Arrival_City,omitempty"`
	ReturnAirline        *string `json:"Return_Airline,omitempty"`
}
