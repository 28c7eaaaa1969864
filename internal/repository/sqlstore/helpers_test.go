package sqlstore_test

import (
	"context"
	"testing"

	"go-portfolio-backend/internal/repository/sqlstore"
	"go-portfolio-backend/pkg/database"

	"github.com/stretchr/testify/require"
)

// setupTestDB returns an in-memory SQLite gateway with the full schema
func setupTestDB(t *testing.T) database.Gateway {
	t.Helper()
	db, err := database.NewSQLiteConnection(context.Background(), ":memory:")
	require.NoError(t, err)

	gw := database.NewSQLiteGateway(db)
	t.Cleanup(gw.Close)

	require.NoError(t, sqlstore.EnsureSchema(context.Background(), gw))
	return gw
}

func countRows(t *testing.T, gw database.Gateway, table string) int64 {
	t.Helper()
	n, _, err := database.FetchOne(context.Background(), gw, func(row database.Scanner) (int64, error) {
		var n int64
		err := row.Scan(&n)
		return n, err
	}, `SELECT COUNT(*) FROM "`+table+`"`)
	require.NoError(t, err)
	return n
}
