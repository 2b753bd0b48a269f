package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathbird/internal/session"
)

// stateRowID is the primary key of the single game_state row.
const stateRowID = 1

// StateRepo persists the player's GameState.
type StateRepo interface {
	// Load returns the stored state, or session.NewGameState() if none has
	// been saved or the stored record is unreadable.
	Load(ctx context.Context) (session.GameState, error)

	// Save replaces the stored state.
	Save(ctx context.Context, state session.GameState) error

	// Clear restores the default state and drops session history.
	Clear(ctx context.Context) error
}

// stateRepo implements StateRepo using the ent SQL driver.
type stateRepo struct {
	drv *entsql.Driver
}

func (r *stateRepo) Load(ctx context.Context) (session.GameState, error) {
	query, args := builder().
		Select("data").
		From(entsql.Table(stateTable)).
		Where(entsql.EQ("id", stateRowID)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return session.GameState{}, fmt.Errorf("query game state: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return session.GameState{}, fmt.Errorf("read game state: %w", err)
		}
		return session.NewGameState(), nil
	}

	var data string
	if err := rows.Scan(&data); err != nil {
		return session.GameState{}, fmt.Errorf("scan game state: %w", err)
	}

	state, err := decodeState([]byte(data))
	if err != nil {
		// A corrupt record must not block play.
		fmt.Fprintf(os.Stderr, "warning: stored game state is unreadable, starting fresh: %v\n", err)
		return session.NewGameState(), nil
	}
	return state, nil
}

func (r *stateRepo) Save(ctx context.Context, state session.GameState) error {
	data, err := json.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}

	query, args := builder().
		Insert(stateTable).
		Columns("id", "data", "updated_at").
		Values(stateRowID, string(data), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

func (r *stateRepo) Clear(ctx context.Context) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}

	query, args := builder().Delete(sessionTable).Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear session records: %w", err)
	}
	query, args = builder().Delete(stateTable).Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear game state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}

	return r.Save(ctx, session.NewGameState())
}

// decodeState validates raw against the state schema and decodes it.
func decodeState(raw []byte) (session.GameState, error) {
	if err := validateState(raw); err != nil {
		return session.GameState{}, err
	}
	var state session.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return session.GameState{}, fmt.Errorf("decode game state: %w", err)
	}
	return state.Normalize(), nil
}
