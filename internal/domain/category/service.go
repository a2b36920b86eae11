package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Icons      IconResolver
}

func NewService(repository Repository, icons IconResolver) *Service {
	return &Service{Repository: repository, Icons: icons}
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*View, error) {
	c, err := s.Repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(c), nil
}

func (s *Service) List(ctx context.Context) ([]*View, error) {
	categories, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*View, 0, len(categories))
	for _, c := range categories {
		views = append(views, s.toView(c))
	}
	return views, nil
}

func (s *Service) ListChildren(ctx context.Context, parentID ulid.ULID) ([]*View, error) {
	categories, err := s.Repository.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	views := make([]*View, 0, len(categories))
	for _, c := range categories {
		views = append(views, s.toView(c))
	}
	return views, nil
}

func (s *Service) toView(c *Category) *View {
	return &View{
		Id:       c.Id,
		Name:     c.Name,
		ParentId: c.ParentId,
		IconURL:  s.Icons.Resolve(c.IconRef),
	}
}
