package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Identifier prefixes and digit widths as stored across the schema.
const (
	UserIDPrefix      = "U"
	FlightBookingIDP  = "FB"
	PassengerIDPrefix = "FP"
	BookingIDPrefix   = "BK"
	ReviewIDPrefix    = "REV"
	WishlistIDPrefix  = "WL"
)

// NewID builds a human-readable identifier: prefix + zero-padded random
// digits. IDs are random rather than sequential; uniqueness is enforced by
// the primary key, with callers retrying on a duplicate-key error.
func NewID(prefix string, digits int) string {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken
		panic(fmt.Sprintf("id generation: %v", err))
	}
	return fmt.Sprintf("%s%0*d", prefix, digits, n)
}

func NewUserID() string          { return NewID(UserIDPrefix, 6) }
func NewFlightBookingID() string { return NewID(FlightBookingIDP, 7) }
func NewPassengerID() string     { return NewID(PassengerIDPrefix, 7) }
func NewBookingID() string       { return NewID(BookingIDPrefix, 7) }
func NewReviewID() string        { return NewID(ReviewIDPrefix, 7) }
func NewWishlistID() string      { return NewID(WishlistIDPrefix, 7) }
