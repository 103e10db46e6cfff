package service

import (
	"context"

	"palantir/internal/domain"
)

type Repository interface {
	FindByIDsAndStore(ctx context.Context, ids []string, storeID string) ([]domain.Product, error)
}

type ProductService struct {
	repo Repository
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

// GetProductsByIDsAndStore splits ids into the store's products and the ids
// it does not know. Duplicated ids are reported once.
func (s *ProductService) GetProductsByIDsAndStore(ctx context.Context, ids []string, storeID string) ([]domain.Product, []string, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := s.repo.FindByIDsAndStore(ctx, unique, storeID)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, p := range found {
		foundSet[p.ID] = struct{}{}
	}

	var notFoundIDs []string
	for _, id := range unique {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}
