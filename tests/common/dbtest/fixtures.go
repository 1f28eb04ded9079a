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

// TestPasswordHash is the bcrypt hash of "password123".
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, display_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func SetStripeCustomer(t *testing.T, db DBLike, userID uuid.UUID, customerID string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET stripe_customer_id = $2 WHERE id = $1", userID, customerID)
	require.NoError(t, err)
}

func CreateTestCandidate(t *testing.T, db DBLike, recruiterID uuid.UUID, fullName, stage string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO candidates (id, recruiter_id, full_name, pipeline_stage) VALUES ($1, $2, $3, $4)",
		id, recruiterID, fullName, stage)
	require.NoError(t, err)
	return id
}

func CreateTestTemplate(t *testing.T, db DBLike, recruiterID uuid.UUID, name, body string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO message_templates (id, recruiter_id, name, body) VALUES ($1, $2, $3, $4)",
		id, recruiterID, name, body)
	require.NoError(t, err)
	return id
}

// CreateTestScheduledMessage inserts a pending message directly, bypassing duplicate checks.
func CreateTestScheduledMessage(t *testing.T, db DBLike, recruiterID, candidateID uuid.UUID, content string, scheduledAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO scheduled_messages (id, recruiter_id, candidate_id, message_content, scheduled_at, status) VALUES ($1, $2, $3, $4, $5, 'pending')",
		id, recruiterID, candidateID, content, scheduledAt)
	require.NoError(t, err)
	return id
}

func CreateTestSubscription(t *testing.T, db DBLike, userID uuid.UUID, subscriptionID, customerID, status string, trialEnd *time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO subscriptions (user_id, provider_subscription_id, provider_customer_id, status, trial_end) VALUES ($1, $2, $3, $4, $5)",
		userID, subscriptionID, customerID, status, trialEnd)
	require.NoError(t, err)
}

func CreateTestReferral(t *testing.T, db DBLike, ambassadorID, referredUserID uuid.UUID, code string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO ambassador_referrals (id, ambassador_id, referred_user_id, referral_code) VALUES ($1, $2, $3, $4)",
		id, ambassadorID, referredUserID, code)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
