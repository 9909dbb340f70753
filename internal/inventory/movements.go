package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Movement ledger limits.
const (
	defaultMovementLimit = 50
	maxMovementLimit     = 200
)

// Movement reasons recorded by the stock mutations.
const (
	// MovementReasonAdjust marks a direct stock adjustment of one item.
	MovementReasonAdjust = "adjustment"

	// MovementReasonCascade marks a component adjustment driven by a
	// cascading product adjustment.
	MovementReasonCascade = "cascade"
)

// recordMovement appends a ledger entry within the mutation's transaction,
// so a rolled-back adjustment leaves no trace in the ledger either.
func recordMovement(ctx context.Context, tx *sql.Tx, kind ItemKind, itemID int64, delta int, reason string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO StockMovement (movement_id, item_kind, item_id, delta, reason, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.NewString(),
		string(kind),
		itemID,
		delta,
		reason,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording stock movement: %w", err)
	}
	return nil
}

// scanMovement reads one ledger row.
func scanMovement(rows *sql.Rows) (Movement, error) {
	var m Movement
	var kind, createdAt string
	var reason sql.NullString

	if err := rows.Scan(&m.ID, &kind, &m.ItemID, &m.Delta, &reason, &createdAt); err != nil {
		return Movement{}, fmt.Errorf("scanning movement: %w", err)
	}

	m.Kind = ItemKind(kind)
	if reason.Valid {
		m.Reason = reason.String
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Movement{}, fmt.Errorf("parsing movement timestamp: %w", err)
	}
	m.CreatedAt = parsed

	return m, nil
}
