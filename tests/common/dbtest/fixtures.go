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

	"decor-booking/internal/domain/account"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestAccount(t *testing.T, db sqlc.DBTX, email string, role account.Role) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, display_name, photo_url, role, status) VALUES ($1, $2, $3, '', $4, 'active') ON CONFLICT (email) DO NOTHING",
		accountID, email, strings.Split(email, "@")[0], role.String())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&accountID))
	}
	return accountID
}

func CreateTestService(t *testing.T, db sqlc.DBTX, name string, price decimal.Decimal) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, name, category, price, unit, description, image_url, created_by_email) VALUES ($1, $2, 'wedding', $3, 'per event', '', '', 'admin@example.com')",
		serviceID, name, pgconv.NumericFromDecimal(price))
	require.NoError(t, err)
	return serviceID
}

// SetBookingTransaction simulates a booking whose payment row was lost.
func SetBookingTransaction(t *testing.T, db sqlc.DBTX, bookingID uuid.UUID, transactionID string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET status = 'paid', transaction_id = $2 WHERE id = $1", bookingID, transactionID)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db sqlc.DBTX, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
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
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
