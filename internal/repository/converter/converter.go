package converter

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

// MindRow is a row of the minds table. Columns are bound by name, not position.
type MindRow struct {
	ID          int64              `db:"id"`
	PublishTime pgtype.Timestamptz `db:"publish_time"`
	Content     string             `db:"content"`
}

func ConvertMindToEntity(row MindRow) entity.Mind {
	return entity.Mind{
		ID:          uint64(row.ID),
		PublishTime: ConvertTimestampzToTime(row.PublishTime),
		Content:     row.Content,
	}
}

func ConvertMindsToEntity(rows []MindRow) []entity.Mind {
	minds := make([]entity.Mind, 0, len(rows))
	for _, row := range rows {
		minds = append(minds, ConvertMindToEntity(row))
	}

	return minds
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}

	return t.Time.UTC()
}

func ConvertTimeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}
