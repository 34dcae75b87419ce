//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"decor-booking/internal/domain/catalog"
	"decor-booking/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		d := builder.NewServiceBuilder().Details
		d.Name = "  Stage Lights "
		svc, err := catalog.NewService(d, "admin@example.com", now)
		require.NoError(t, err)

		assert.Equal(t, "Stage Lights", svc.Name())
		assert.Equal(t, "admin@example.com", svc.CreatedBy())
		assert.True(t, svc.Price().Equal(d.Price))
		assert.Equal(t, now, svc.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*catalog.Details)
			errIs  error
		}{
			{"blank name", func(d *catalog.Details) { d.Name = " " }, catalog.ErrNameRequired},
			{"blank category", func(d *catalog.Details) { d.Category = "" }, catalog.ErrCategoryRequired},
			{"negative price", func(d *catalog.Details) { d.Price = decimal.NewFromInt(-1) }, catalog.ErrNegativePrice},
			{"zero price", func(d *catalog.Details) { d.Price = decimal.Zero }, nil},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := builder.NewServiceBuilder().Details
				tt.mutate(&d)
				_, err := catalog.NewService(d, "admin@example.com", now)
				if tt.errIs == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tt.errIs)
				}
			})
		}
	})

	t.Run("revise keeps identity", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()
		id, created := svc.ID(), svc.CreatedAt()

		d := svc.Details()
		d.Price = decimal.RequireFromString("999.99")
		later := now.Add(time.Hour)
		require.NoError(t, svc.Revise(d, later))

		assert.Equal(t, id, svc.ID())
		assert.Equal(t, created, svc.CreatedAt())
		assert.Equal(t, later, svc.UpdatedAt())
		assert.Equal(t, "999.99", svc.Price().StringFixed(2))
	})

	t.Run("invalid revision leaves the service untouched", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()
		d := svc.Details()
		d.Name = ""
		assert.ErrorIs(t, svc.Revise(d, now), catalog.ErrNameRequired)
		assert.Equal(t, "Wedding Stage Decoration", svc.Name())
	})
}
