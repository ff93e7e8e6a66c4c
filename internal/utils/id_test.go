package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFormats(t *testing.T) {
	cases := []struct {
		name    string
		gen     func() string
		pattern string
	}{
		{"user", NewUserID, `^U\d{6}$`},
		{"flight booking", NewFlightBookingID, `^FB\d{7}$`},
		{"passenger", NewPassengerID, `^FP\d{7}$`},
		{"package booking", NewBookingID, `^BK\d{7}$`},
		{"review", NewReviewID, `^REV\d{7}$`},
		{"wishlist", NewWishlistID, `^WL\d{7}$`},
	}
	for _, tc := range cases {
		re := regexp.MustCompile(tc.pattern)
		for i := 0; i < 50; i++ {
			id := tc.gen()
			assert.Regexp(t, re, id, "%s id %q", tc.name, id)
		}
	}
}

func TestNewIDPadsShortNumbers(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := NewID("X", 7)
		assert.Len(t, id, 8)
	}
}
