package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/minds/internal/entity"
	"github.com/evgeniy-krivenko/minds/internal/repository/converter"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

const (
	listMindsQuery = `SELECT id, publish_time, content FROM minds ORDER BY id`

	createMindQuery = `INSERT INTO minds (publish_time, content)
VALUES ($1, $2)
RETURNING id, publish_time, content`

	deleteMindQuery = `DELETE FROM minds WHERE id = $1`
)

func (r *Repo) List(ctx context.Context) ([]entity.Mind, error) {
	rows, err := r.db.Query(ctx, listMindsQuery)
	if err != nil {
		return nil, storageError("list minds", err)
	}

	minds, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.MindRow])
	if err != nil {
		return nil, storageError("scan minds", err)
	}

	return converter.ConvertMindsToEntity(minds), nil
}

func (r *Repo) Create(ctx context.Context, content string) (entity.Mind, error) {
	publishTime := entity.PublishTimeAt(r.now())

	rows, err := r.db.Query(ctx, createMindQuery,
		converter.ConvertTimeToTimestampz(publishTime),
		content,
	)
	if err != nil {
		return entity.Mind{}, storageError("create mind", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.MindRow])
	if err != nil {
		return entity.Mind{}, storageError("create mind", err)
	}

	mind := converter.ConvertMindToEntity(row)

	slogx.Debug(ctx, "success to create mind", slogx.MindID(mind.ID))

	return mind, nil
}

// Delete removes the mind with id. A missing id affects zero rows and is not an error.
func (r *Repo) Delete(ctx context.Context, id uint64) error {
	tag, err := r.db.Exec(ctx, deleteMindQuery, int64(id))
	if err != nil {
		return storageError("delete mind", err)
	}

	if tag.RowsAffected() == 0 {
		slogx.Debug(ctx, "no mind to delete", slogx.MindID(id))
	}

	return nil
}

// storageError marks err as a backend failure. Cancellation and deadlines
// belong to the caller and pass through unmarked.
func storageError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%w: %s: %w", entity.ErrStorage, op, err)
}
