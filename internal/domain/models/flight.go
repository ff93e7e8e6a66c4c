package models

import "time"

// Flight mirrors the FLIGHT table. AvailableSeats is mutated only by the
// booking engine's conditional decrement.
type Flight struct {
	ID               string    `json:"Flight_ID"`
	FlightNumber     string    `json:"Flight_Number"`
	AirlineID        string    `json:"Airline_ID,omitempty"`
	DepartureAirport string    `json:"Departure_Airport,omitempty"`
	ArrivalAirport   string    `json:"Arrival_Airport,omitempty"`
	DepartureTime    time.Time `json:"Departure_Time"`
	ArrivalTime      time.Time `json:"Arrival_Time"`
	BasePrice        float64   `json:"Base_Price"`
	AvailableSeats   int       `json:"Available_Seats"`
}

// FlightCandidate is a search result row with joined airline and airport
// display fields, matching the legacy API payload.
type FlightCandidate struct {
	Flight
	AirlineName   string `json:"Airline_Name"`
	AirlineLogo   string `json:"Logo_URL,omitempty"`
	DepartureCode string `json:"Departure_Code"`
	DepartureCity string `json:"Departure_City"`
	ArrivalCode   string `json:"Arrival_Code"`
	ArrivalCity   string `json:"Arrival_City"`
}

// FlightSearch carries the validated query for candidate lookups.
type FlightSearch struct {
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    string // YYYY-MM-DD
	Passengers       int
}

// Airport mirrors the AIRPORT table.
type Airport struct {
	Code    string `json:"Airport_Code"`
	Name    string `json:"Name"`
	City    string `json:"City"`
	Country string `json:"Country"`
}
