package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospect_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"table_name", "column_name"}).
		AddRow("users", "id").
		AddRow("users", "name").
		AddRow("orders", "order_id")
	mock.ExpectQuery("FROM information_schema.columns").WillReturnRows(rows)

	c, err := Introspect(context.Background(), db, "postgres")
	require.NoError(t, err)

	assert.Equal(t, []string{"orders", "users"}, c.Tables())
	assert.True(t, c.HasColumn("name"))
	assert.True(t, c.HasColumn("order_id"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntrospect_SQLite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM sqlite_master").WillReturnRows(
		sqlmock.NewRows([]string{"name"}).AddRow("users"))
	mock.ExpectQuery("PRAGMA table_info").WillReturnRows(
		sqlmock.NewRows([]string{"cid", "name", "type", "notnull", "dflt_value", "pk"}).
			AddRow(0, "id", "INTEGER", 1, nil, 1).
			AddRow(1, "email", "TEXT", 0, nil, 0))

	c, err := Introspect(context.Background(), db, "sqlite")
	require.NoError(t, err)

	assert.True(t, c.HasTable("users"))
	assert.True(t, c.HasColumn("id"))
	assert.True(t, c.HasColumn("email"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntrospect_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Introspect(context.Background(), db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestIntrospect_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.columns").
		WillReturnError(assert.AnError)

	_, err = Introspect(context.Background(), db, "postgres")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
