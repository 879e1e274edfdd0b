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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference data ids seeded by SeedReferenceData.
const (
	RouteCityLoop   = "R01"
	RouteAirport    = "R02"
	TypeSingleRide  = int32(1)
	TypeTenRide     = int32(2)
	TypeMonthlyPass = int32(3)
	TypeUnlimited   = int32(4)

	RiderAlice = int64(1)
	RiderBob   = int64(2)
)

func CreateTestRider(t *testing.T, db DBLike, id int64, fullName, email string) int64 {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, full_name, email) VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, email = EXCLUDED.email`,
		id, fullName, email)
	require.NoError(t, err)

	return id
}

// SetPrice upserts a route price; active=false stops it being sold.
func SetPrice(t *testing.T, db DBLike, routeID string, ticketTypeID int32, price int64, active bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO route_ticket_prices (route_id, ticket_type_id, ticket_name, price, is_active)
		SELECT $1, $2, name, $3, $4 FROM ticket_types WHERE id = $2
		ON CONFLICT (route_id, ticket_type_id)
		DO UPDATE SET price = EXCLUDED.price, is_active = EXCLUDED.is_active, updated_at = NOW()`,
		routeID, ticketTypeID, price, active)
	require.NoError(t, err)
}

// CreateCountedTicket inserts an active counted ticket directly, bypassing
// checkout, and returns its token.
func CreateCountedTicket(t *testing.T, db DBLike, userID int64, routeID string, ticketTypeID int32, uses int32) string {
	t.Helper()

	id := uuid.New()
	token := uuid.NewString()
	_, err := db.Exec(context.Background(), `
		INSERT INTO tickets (id, token, user_id, route_id, ticket_type_id, policy_kind, issued_at, remaining_uses, is_active, price)
		VALUES ($1, $2, $3, $4, $5, 'counted', $6, $7, true, 0)`,
		id, token, userID, routeID, ticketTypeID, time.Now().UTC(), uses)
	require.NoError(t, err)

	return token
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func OrderStatus(t *testing.T, db DBLike, orderCode int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM payment_orders WHERE order_code = $1", orderCode).Scan(&status)
	require.NoError(t, err)
	return status
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO routes (id, route_name) VALUES
		    ('R01', 'City Loop'),
		    ('R02', 'Airport Express')
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO ticket_types (id, name, duration_days, max_uses, is_unlimited) VALUES
		    (1, 'Single ride', NULL, 1, false),
		    (2, '10-ride pack', NULL, 10, false),
		    (3, 'Monthly pass', 30, NULL, false),
		    (4, 'Unlimited', NULL, NULL, true)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO route_ticket_prices (route_id, ticket_type_id, ticket_name, price, is_active) VALUES
		    ('R01', 1, 'Single ride', 7000, true),
		    ('R01', 2, '10-ride pack', 60000, true),
		    ('R01', 3, 'Monthly pass', 200000, true),
		    ('R02', 1, 'Single ride', 40000, true),
		    ('R02', 4, 'Unlimited', 900000, false)
		ON CONFLICT (route_id, ticket_type_id) DO NOTHING;

		INSERT INTO users (id, full_name, email) VALUES
		    (1, 'Alice Nguyen', 'alice@example.com'),
		    (2, 'Bob Tran', NULL)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// explicit ids leave the sequence behind
	_, err = pool.Exec(ctx, `SELECT setval('users_id_seq', GREATEST((SELECT MAX(id) FROM users), 1))`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
