package minds

import (
	"context"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

type mindsUsecase interface {
	ListMinds(ctx context.Context) ([]entity.Mind, error)
	CreateMind(ctx context.Context, content string) (entity.Mind, error)
	DeleteMind(ctx context.Context, id uint64) error
}
