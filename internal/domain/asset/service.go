package asset

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Asset, error) {
	return s.Repository.Get(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID ulid.ULID) ([]*Asset, error) {
	return s.Repository.ListByOwner(ctx, ownerID)
}
