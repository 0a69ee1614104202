package handler

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/model"
)

// handlerMockDB implements core.DB for handler tests.
type handlerMockDB struct {
	mock.Mock
}

func (m *handlerMockDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *handlerMockDB) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Rows), args.Error(1)
}

func (m *handlerMockDB) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

// mockRow implements pgx.Row for handler tests.
type mockRow struct {
	scanFunc func(dest ...any) error
}

func (m *mockRow) Scan(dest ...any) error {
	return m.scanFunc(dest...)
}

func noRow() *mockRow {
	return &mockRow{scanFunc: func(dest ...any) error {
		return pgx.ErrNoRows
	}}
}

func userRow(u model.User) *mockRow {
	return &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int64)) = u.ID
		*(dest[1].(*string)) = u.Name
		*(dest[2].(*string)) = u.Email
		*(dest[3].(*string)) = u.PasswordHash
		*(dest[4].(*time.Time)) = u.CreatedAt
		*(dest[5].(*time.Time)) = u.UpdatedAt
		return nil
	}}
}

func insertedRow(id int64) *mockRow {
	now := time.Now()
	return &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*int64)) = id
		*(dest[1].(*time.Time)) = now
		*(dest[2].(*time.Time)) = now
		return nil
	}}
}

func updatedRow() *mockRow {
	now := time.Now()
	return &mockRow{scanFunc: func(dest ...any) error {
		*(dest[0].(*time.Time)) = now
		return nil
	}}
}

// sqlContains matches the SQL argument of a mock DB call.
func sqlContains(fragment string) any {
	return mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, fragment)
	})
}
