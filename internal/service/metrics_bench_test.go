package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/fieldops/metrics-server/internal/analytics"
	"github.com/fieldops/metrics-server/internal/repository"
	dbbuilder "github.com/fieldops/metrics-server/pkg/database"
)

func setupRealDB(tb testing.TB) *repository.FieldDataRepository {
	tb.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		tb.Fatalf("failed to create db pool via builder: %v", err)
	}

	_, err = db.Exec(`
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
			technician TEXT, user_id TEXT, hours REAL,
			billable INTEGER, hourly_rate REAL, entry_date TEXT
		);
		CREATE TABLE expenses (expense_date TEXT, amount REAL, category TEXT);
		CREATE TABLE feedback (rating REAL, type TEXT, comments TEXT, created_at TEXT);
		CREATE TABLE warehouse_items (name TEXT, quantity REAL, minimum_stock REAL, unit_cost REAL);

		INSERT INTO work_orders VALUES
			('wo-1', 'completed', '2025-06-10 08:00:00', '2025-06-10 09:00:00',
			 '2025-06-11 16:00:00', 1.0, 900.0, 'HVAC', 5, 0, 'tech-1', '["drill"]'),
			('wo-2', 'completed', '2025-06-11 08:00:00', NULL,
			 '2025-06-12 08:00:00', 1.0, 400.0, 'Plumbing', 3, 1, 'tech-2', NULL),
			('wo-3', 'pending', '2025-06-12 08:00:00', NULL, NULL,
			 NULL, 250.0, NULL, NULL, NULL, 'tech-1', NULL);
		INSERT INTO time_entries VALUES
			('tech-1', NULL, 8.0, 1, 60.0, '2025-06-10 08:00:00'),
			('tech-2', NULL, 6.0, 0, NULL, '2025-06-11 08:00:00');
		INSERT INTO expenses VALUES ('2025-06-10 12:00:00', 75.0, 'fuel');
		INSERT INTO feedback VALUES (5.0, 'suggestion', NULL, '2025-06-10 09:00:00');
		INSERT INTO warehouse_items VALUES ('Filters', 0, 5, 4.5);
	`)
	if err != nil {
		db.Close()
		tb.Fatalf("failed to seed db: %v", err)
	}

	tb.Cleanup(func() { db.Close() })

	return repository.NewFieldDataRepository(db)
}

func BenchmarkDashboardMetrics(b *testing.B) {
	repo := setupRealDB(b)
	logger := zap.NewNop()

	svc := NewMetricsService(repo, logger)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = svc.DashboardMetrics(context.Background(), analytics.Window{Days: 30})
	}
}

func BenchmarkCompletionTrends(b *testing.B) {
	repo := setupRealDB(b)
	logger := zap.NewNop()

	svc := NewMetricsService(repo, logger)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = svc.CompletionTrends(context.Background(), analytics.Window{Days: 90})
	}
}
