// server/internal/api/handlers/helpers_test.go
package handlers

import (
	"testing"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidEnum(t *testing.T) {
	assert.True(t, validEnum("", models.TransportModes), "empty means filter not set")
	assert.True(t, validEnum("truck", models.TransportModes))
	assert.False(t, validEnum("hovercraft", models.TransportModes))

	assert.True(t, validEnum("raw_materials", models.SupplierCategories))
	assert.False(t, validEnum("packaging ", models.SupplierCategories))

	assert.True(t, validEnum("pending_optimization", models.LogisticsRouteStatuses))
	assert.True(t, validEnum("hydrogen", models.FuelTypes))
	assert.True(t, validEnum("mode_change", models.OptimizationTypes))
	assert.True(t, validEnum("on_demand", models.ScheduleFrequencies))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 10))
	assert.Equal(t, int64(1), totalPages(1, 10))
	assert.Equal(t, int64(1), totalPages(10, 10))
	assert.Equal(t, int64(2), totalPages(11, 10))
	assert.Equal(t, int64(0), totalPages(5, 0))
}
