package queries

import (
	"context"
	"strings"
)

const TopCustomerLimit = 10

type StatsQueries interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	DecoratorStats(ctx context.Context, decoratorEmail string) (*DecoratorStats, error)
	CustomerStats(ctx context.Context, email string) (*CustomerStats, error)
}

type StatsReadStore interface {
	AdminStats(ctx context.Context, topCustomers int32) (*AdminStats, error)
	DecoratorStats(ctx context.Context, decoratorEmail string) (*DecoratorStats, error)
	CustomerStats(ctx context.Context, email string) (*CustomerStats, error)
}

type statsQueriesImpl struct {
	readStore StatsReadStore
}

func NewStatsQueries(readStore StatsReadStore) StatsQueries {
	return &statsQueriesImpl{readStore: readStore}
}

func (q *statsQueriesImpl) AdminStats(ctx context.Context) (*AdminStats, error) {
	return q.readStore.AdminStats(ctx, TopCustomerLimit)
}

func (q *statsQueriesImpl) DecoratorStats(ctx context.Context, decoratorEmail string) (*DecoratorStats, error) {
	return q.readStore.DecoratorStats(ctx, strings.ToLower(decoratorEmail))
}

func (q *statsQueriesImpl) CustomerStats(ctx context.Context, email string) (*CustomerStats, error) {
	return q.readStore.CustomerStats(ctx, strings.ToLower(email))
}
