package services

import (
	"context"
	"strings"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"
)

// SearchResult groups the cross-entity substring search payload.
type SearchResult struct {
	Packages     []models.Package     `json:"packages"`
	Destinations []models.Destination `json:"destinations"`
}

type SearchService struct {
	Packages     repositories.PackageRepository
	Destinations repositories.DestinationRepository
}

// Search runs the substring match across packages and destinations.
func (s SearchService) Search(ctx context.Context, term string) (SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchResult{}, domain.ValidationError{Field: "q", Msg: "search query is required"}
	}

	packages, err := s.Packages.SearchByTerm(ctx, term)
	if err != nil {
		return SearchResult{}, domain.InternalError{Err: err}
	}
	destinations, err := s.Destinations.SearchByTerm(ctx, term)
	if err != nil {
		return SearchResult{}, domain.InternalError{Err: err}
	}
	return SearchResult{Packages: packages, Destinations: destinations}, nil
}
