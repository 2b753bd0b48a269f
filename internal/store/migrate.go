package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	stateTable   = "game_state"
	sessionTable = "session_records"
)

var (
	// GameStateColumns holds the columns for the "game_state" table.
	GameStateColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// GameStateTable holds the schema information for the "game_state" table.
	GameStateTable = &schema.Table{
		Name:       stateTable,
		Columns:    GameStateColumns,
		PrimaryKey: []*schema.Column{GameStateColumns[0]},
	}

	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "completed_at", Type: field.TypeInt64},
		{Name: "level_before", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "transition", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "score", Type: field.TypeInt},
		{Name: "stars", Type: field.TypeInt},
		{Name: "avg_response_ms", Type: field.TypeFloat64},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       sessionTable,
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_completed_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[1]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GameStateTable,
		SessionRecordsTable,
	}
)

// migrate creates missing tables, columns and indexes with ent's migration
// engine. Columns are never dropped.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
