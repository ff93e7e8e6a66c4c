package models

// Destination mirrors the DESTINATION table.
type Destination struct {
	ID          string `json:"Destination_ID"`
	Name        string `json:"Name"`
	Location    string `json:"Location"`
	Description string `json:"Description,omitempty"`
	ImageURL    string `json:"Image_URL,omitempty"`
}

// Package mirrors the PACKAGE table.
type Package struct {
	ID            string  `json:"Package_ID"`
	Name          string  `json:"Package_Name"`
	Location      string  `json:"Location"`
	Description   string  `json:"Description,omitempty"`
	Price         float64 `json:"Price"`
	Duration      string  `json:"Duration,omitempty"`
	ImageURL      string  `json:"Image_URL,omitempty"`
	DestinationID string  `json:"Destination_ID,omitempty"`
}
