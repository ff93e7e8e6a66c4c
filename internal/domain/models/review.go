package models

// Review mirrors the REVIEW_RATING table. One row per (user, package) pair.
type Review struct {
	ID        string `json:"Review_ID"`
	UserID    string `json:"User_ID"`
	PackageID string `json:"Package_ID"`
	Text      string `json:"Review_Text"`
	Rating    int    `json:"Rating"`
	UserName  string `json:"UserName,omitempty"`
}

// WishlistItem mirrors the WISHLIST table, joined with package display
// fields when listed.
type WishlistItem struct {
	ID          string  `json:"Wishlist_ID"`
	UserID      string  `json:"User_ID"`
	PackageID   string  `json:"Package_ID"`
	PackageName string  `json:"Package_Name,omitempty"`
	Location    string  `json:"Location,omitempty"`
	Price       float64 `json:"Price,omitempty"`
	Duration    string  `json:"Duration,omitempty"`
	ImageURL    string  `json:"Image_URL,omitempty"`
}
