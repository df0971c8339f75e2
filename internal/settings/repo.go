package settings

import "context"

// Repo defines the repository interface for theme settings
type Repo interface {
	Get(ctx context.Context, id string) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
