package repository

import "context"

// StatsRepository expone los conteos del dashboard (consultas read-only).
type StatsRepository interface {
	CountSuppliers(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountOrdersCreated(ctx context.Context, userID int64, status string) (int, error)
	CountOrdersReceived(ctx context.Context, userID int64, status string) (int, error)
}
