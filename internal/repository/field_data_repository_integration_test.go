package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/metrics-server/internal/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	schema := `
	CREATE TABLE work_orders (
		id TEXT PRIMARY KEY,
		status TEXT,
		created_at TEXT,
		scheduled_at TEXT,
		completed_at TEXT,
		estimated_days REAL,
		total_amount REAL,
		category TEXT,
		customer_rating REAL,
		follow_up_required INTEGER,
		technician TEXT,
		equipment_used TEXT
	);
	CREATE TABLE time_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		technician TEXT,
		user_id TEXT,
		hours REAL,
		billable INTEGER,
		hourly_rate REAL,
		entry_date TEXT
	);
	CREATE TABLE expenses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		expense_date TEXT,
		amount REAL,
		category TEXT
	);
	CREATE TABLE feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		rating REAL,
		type TEXT,
		comments TEXT,
		created_at TEXT
	);
	CREATE TABLE warehouse_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		quantity REAL,
		minimum_stock REAL,
		unit_cost REAL
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

func TestFieldDataRepository_WorkOrders(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
	INSERT INTO work_orders (id, status, created_at, scheduled_at, completed_at,
		estimated_days, total_amount, category, customer_rating,
		follow_up_required, technician, equipment_used)
	VALUES
		('wo-1', 'completed', '2025-06-10 08:00:00', '2025-06-10 09:00:00',
		 '2025-06-11 16:00:00', 2.0, 1500.0, 'HVAC', 5, 0, 'tech-1', '["drill","ladder"]'),
		('wo-2', 'pending', '2025-06-12 10:00:00', NULL, NULL,
		 NULL, NULL, NULL, NULL, NULL, NULL, 'wrench'),
		('wo-3', 'completed', '2025-01-05 08:00:00', NULL, '2025-01-06 08:00:00',
		 1.0, 300.0, 'Plumbing', 4, 1, 'tech-2', NULL);
	`)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo := repository.NewFieldDataRepository(db)
	orders, err := repo.ListWorkOrders(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "wo-1", first.ID)
	assert.Equal(t, "completed", first.Status)
	assert.Equal(t, 2.0, first.EstimatedDays)
	assert.Equal(t, 1500.0, first.TotalAmount)
	assert.Equal(t, "tech-1", first.Technician)
	assert.Equal(t, []string{"drill", "ladder"}, first.EquipmentUsed)
	assert.Equal(t, 10, first.CreatedAt.Day())

	// NULL columns normalize to zero values; a plain equipment string
	// becomes a single-element slice.
	second := orders[1]
	assert.Equal(t, "wo-2", second.ID)
	assert.Zero(t, second.TotalAmount)
	assert.Empty(t, second.Category)
	assert.True(t, second.CompletedAt.IsZero())
	assert.False(t, second.FollowUpRequired)
	assert.Equal(t, []string{"wrench"}, second.EquipmentUsed)
}

func TestFieldDataRepository_TimeEntries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
	INSERT INTO time_entries (technician, user_id, hours, billable, hourly_rate, entry_date)
	VALUES
		('tech-1', 'user-9', 8.0, 1, 65.0, '2025-06-10 08:00:00'),
		(NULL, 'user-2', 4.5, 0, NULL, '2025-06-11 08:00:00'),
		('tech-3', NULL, 6.0, 1, 50.0, '2024-01-01 08:00:00');
	`)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo := repository.NewFieldDataRepository(db)
	entries, err := repo.ListTimeEntries(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "tech-1", entries[0].Technician)
	assert.Equal(t, 8.0, entries[0].Hours)
	assert.True(t, entries[0].Billable)
	assert.Equal(t, 65.0, entries[0].HourlyRate)

	// Legacy rows carry the technician in user_id.
	assert.Equal(t, "user-2", entries[1].Technician)
	assert.False(t, entries[1].Billable)
	assert.Zero(t, entries[1].HourlyRate)
}

func TestFieldDataRepository_Expenses(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
	INSERT INTO expenses (expense_date, amount, category)
	VALUES
		('2025-06-05 12:00:00', 120.50, 'fuel'),
		('2025-06-20 12:00:00', NULL, NULL),
		('2025-03-01 12:00:00', 99.0, 'tools');
	`)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo := repository.NewFieldDataRepository(db)
	expenses, err := repo.ListExpenses(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	assert.Equal(t, 120.50, expenses[0].Amount)
	assert.Equal(t, "fuel", expenses[0].Category)
	assert.Zero(t, expenses[1].Amount)
}

func TestFieldDataRepository_Feedback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
	INSERT INTO feedback (rating, type, comments, created_at)
	VALUES
		(5.0, 'suggestion', 'More weekend slots', '2025-06-08 09:00:00'),
		(NULL, NULL, NULL, '2025-06-09 09:00:00');
	`)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo := repository.NewFieldDataRepository(db)
	feedback, err := repo.ListFeedback(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, feedback, 2)

	assert.Equal(t, 5.0, feedback[0].Rating)
	assert.Equal(t, "suggestion", feedback[0].Type)
	assert.Zero(t, feedback[1].Rating)
	assert.Empty(t, feedback[1].Type)
}

func TestFieldDataRepository_WarehouseItems(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`
	INSERT INTO warehouse_items (name, quantity, minimum_stock, unit_cost)
	VALUES
		('Copper Pipe', 0, 10, 12.5),
		('Filters', 25, 5, NULL);
	`)
	require.NoError(t, err)

	repo := repository.NewFieldDataRepository(db)
	items, err := repo.ListWarehouseItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Copper Pipe", items[0].Name)
	assert.Zero(t, items[0].Quantity)
	assert.Equal(t, 10.0, items[0].MinimumStock)
	assert.Zero(t, items[1].UnitCost)
}

func TestFieldDataRepository_EmptyRanges(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewFieldDataRepository(db)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	orders, err := repo.ListWorkOrders(ctx, start, end)
	require.NoError(t, err)
	assert.Empty(t, orders)

	entries, err := repo.ListTimeEntries(ctx, start, end)
	require.NoError(t, err)
	assert.Empty(t, entries)

	items, err := repo.ListWarehouseItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
