//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "purchase-approval/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertPurchaseRequest stores a row as-is, bypassing domain validation so
// tests can start from any status.
func InsertPurchaseRequest(t *testing.T, db DBLike, row sqlc.PurchaseRequest) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO purchase_requests (
		    id, requester, requester_email, item_name, quantity, unit_price,
		    delivery_charges, tax_amount, total_price, approver_email, status,
		    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		row.ID, row.Requester, row.RequesterEmail, row.ItemName, row.Quantity, row.UnitPrice,
		row.DeliveryCharges, row.TaxAmount, row.TotalPrice, row.ApproverEmail, row.Status,
		row.CreatedAt, row.UpdatedAt)
	require.NoError(t, err)

	return row.ID
}

func PurchaseRequestStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM purchase_requests WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		truncateSQL.Store(buildTruncateSQL(ctx, pool))
	})
	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, stmt)
	return err
}

func buildTruncateSQL(ctx context.Context, pool *pgxpool.Pool) string {
	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'
	    AND tablename NOT IN ('schema_migrations')`)
	if err != nil {
		return ""
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return ""
		}
		tables = append(tables, t)
	}
	if rows.Err() != nil {
		return ""
	}
	if len(tables) == 0 {
		return "SELECT 1"
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;"
}
