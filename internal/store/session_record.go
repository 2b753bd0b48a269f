package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// SessionRecord is one completed session.
type SessionRecord struct {
	ID                int64
	CompletedAt       time.Time
	LevelBefore       int
	LevelAfter        int
	Transition        string
	QuestionsAnswered int
	CorrectAnswers    int
	Accuracy          float64
	Score             int
	Stars             int
	AvgResponseMs     float64
}

// SessionRepo provides append and query access to completed sessions.
type SessionRepo interface {
	// Append records a completed session.
	Append(ctx context.Context, rec SessionRecord) error

	// Recent returns up to limit records, newest first. limit <= 0 means
	// no limit.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)
}

var sessionColumns = []string{
	"id", "completed_at", "level_before", "level_after", "transition",
	"questions_answered", "correct_answers", "accuracy", "score", "stars",
	"avg_response_ms",
}

// sessionRepo implements SessionRepo using the ent SQL driver.
type sessionRepo struct {
	drv *entsql.Driver
}

func (r *sessionRepo) Append(ctx context.Context, rec SessionRecord) error {
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}

	query, args := builder().
		Insert(sessionTable).
		Columns(sessionColumns[1:]...).
		Values(
			rec.CompletedAt.UnixMilli(),
			rec.LevelBefore,
			rec.LevelAfter,
			rec.Transition,
			rec.QuestionsAnswered,
			rec.CorrectAnswers,
			rec.Accuracy,
			rec.Score,
			rec.Stars,
			rec.AvgResponseMs,
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	sel := builder().
		Select(sessionColumns...).
		From(entsql.Table(sessionTable)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			rec         SessionRecord
			completedAt int64
		)
		if err := rows.Scan(
			&rec.ID,
			&completedAt,
			&rec.LevelBefore,
			&rec.LevelAfter,
			&rec.Transition,
			&rec.QuestionsAnswered,
			&rec.CorrectAnswers,
			&rec.Accuracy,
			&rec.Score,
			&rec.Stars,
			&rec.AvgResponseMs,
		); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		rec.CompletedAt = time.UnixMilli(completedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read session records: %w", err)
	}
	return records, nil
}
