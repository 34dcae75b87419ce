package readstore

import (
	"context"

	"decor-booking/internal/domain/booking"
	"decor-booking/internal/infra"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
	"decor-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsReadQueries interface {
	CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountBookings(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountServices(ctx context.Context, db sqlc.DBTX) (int64, error)
	SumRevenue(ctx context.Context, db sqlc.DBTX, statuses []string) (pgtype.Numeric, error)
	ServiceBookingStats(ctx context.Context, db sqlc.DBTX) ([]sqlc.ServiceBookingStatsRow, error)
	TopCustomers(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.TopCustomersRow, error)
	DecoratorBookingStats(ctx context.Context, db sqlc.DBTX, decoratorEmail pgtype.Text) (sqlc.DecoratorBookingStatsRow, error)
	ListCompletedBookingsByDecorator(ctx context.Context, db sqlc.DBTX, decoratorEmail pgtype.Text) ([]sqlc.Bookings, error)
	CustomerBookingStats(ctx context.Context, db sqlc.DBTX, customerEmail string) (sqlc.CustomerBookingStatsRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) AdminStats(ctx context.Context, topCustomers int32) (*queries.AdminStats, error) {
	stats := &queries.AdminStats{}
	var err error

	if stats.Users, err = r.queries.CountUsers(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to count users", err)
	}
	if stats.Bookings, err = r.queries.CountBookings(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	if stats.Services, err = r.queries.CountServices(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to count services", err)
	}

	statuses := booking.RevenueStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	revenue, err := r.queries.SumRevenue(ctx, r.db, names)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum revenue", err)
	}
	if stats.Revenue, err = pgconv.DecimalFromNumeric(revenue); err != nil {
		return nil, infra.WrapRepoErr("failed to decode revenue", err, infra.KindDBFailure)
	}

	serviceRows, err := r.queries.ServiceBookingStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate service bookings", err)
	}
	stats.ServiceStats = make([]queries.ServiceStat, 0, len(serviceRows))
	for _, row := range serviceRows {
		total, derr := pgconv.DecimalFromNumeric(row.Total)
		if derr != nil {
			return nil, infra.WrapRepoErr("failed to decode service total", derr, infra.KindDBFailure)
		}
		stats.ServiceStats = append(stats.ServiceStats, queries.ServiceStat{
			Name:  row.ServiceName,
			Count: row.BookingCount,
			Total: total,
		})
	}

	customerRows, err := r.queries.TopCustomers(ctx, r.db, topCustomers)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank customers", err)
	}
	stats.UserBookingStats = make([]queries.CustomerBookingCount, 0, len(customerRows))
	for _, row := range customerRows {
		stats.UserBookingStats = append(stats.UserBookingStats, queries.CustomerBookingCount{
			Email:        row.CustomerEmail,
			BookingCount: row.BookingCount,
		})
	}

	return stats, nil
}

func (r *StatsReadStore) DecoratorStats(ctx context.Context, decoratorEmail string) (*queries.DecoratorStats, error) {
	email := pgconv.StringToPgtype(decoratorEmail)

	row, err := r.queries.DecoratorBookingStats(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate decorator bookings", err)
	}
	earnings, err := pgconv.DecimalFromNumeric(row.TotalEarnings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode earnings", err, infra.KindDBFailure)
	}

	completed, err := r.queries.ListCompletedBookingsByDecorator(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed bookings", err)
	}
	history := make([]queries.DecoratorEarning, 0, len(completed))
	for _, b := range completed {
		price, derr := pgconv.DecimalFromNumeric(b.Price)
		if derr != nil {
			return nil, infra.WrapRepoErr("failed to decode booking price", derr, infra.KindDBFailure)
		}
		history = append(history, queries.DecoratorEarning{
			ServiceName: b.ServiceName,
			Date:        pgconv.DateFromPgtype(b.BookingDate).Format(booking.DateLayout),
			Price:       price,
			Customer:    b.CustomerName,
		})
	}

	return &queries.DecoratorStats{
		TotalProjects:     row.TotalProjects,
		CompletedProjects: row.CompletedProjects,
		OngoingProjects:   row.OngoingProjects,
		TotalEarnings:     earnings,
		PaymentHistory:    history,
	}, nil
}

func (r *StatsReadStore) CustomerStats(ctx context.Context, email string) (*queries.CustomerStats, error) {
	row, err := r.queries.CustomerBookingStats(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate customer bookings", err)
	}
	return &queries.CustomerStats{
		TotalBookings:     row.TotalBookings,
		PendingBookings:   row.PendingBookings,
		CompletedBookings: row.CompletedBookings,
	}, nil
}
