package minds

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/minds/internal/entity"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

// mindsRepository is satisfied by both the in-memory and the postgres store.
type mindsRepository interface {
	List(ctx context.Context) ([]entity.Mind, error)
	Create(ctx context.Context, content string) (entity.Mind, error)
	Delete(ctx context.Context, id uint64) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo mindsRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate minds usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListMinds(ctx context.Context) ([]entity.Mind, error) {
	minds, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list minds: %w", err)
	}

	return minds, nil
}

func (u *Usecase) CreateMind(ctx context.Context, content string) (entity.Mind, error) {
	mind, err := u.repo.Create(ctx, content)
	if err != nil {
		return entity.Mind{}, fmt.Errorf("usecase create mind: %w", err)
	}

	slogx.Info(ctx, "success to create mind", slogx.MindID(mind.ID))
	return mind, nil
}

func (u *Usecase) DeleteMind(ctx context.Context, id uint64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("usecase delete mind: %w", err)
	}

	slogx.Info(ctx, "success to delete mind", slogx.MindID(id))
	return nil
}
