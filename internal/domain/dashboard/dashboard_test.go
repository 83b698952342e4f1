package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/checklists"
	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/orders"
	"github.com/Spok95/concretrack/internal/domain/plants"
	"github.com/Spok95/concretrack/internal/domain/projects"
	"github.com/Spok95/concretrack/internal/domain/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsAlwaysCurrent(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	c := clock.NewFake(now)

	mats, usage := materials.Seed(now)
	ledger := materials.NewLedger(c, mats, usage)
	ol := orders.NewLifecycle(c, projects.NewMemRegistry(projects.Seed(now)), recipes.DefaultBook(), orders.Seed(now))
	cl := checklists.NewLifecycle(c, checklists.Seed(now))
	ps, prod := plants.Seed(now)
	svc := NewService(c, ledger, ol, cl, plants.NewRegistry(c, ps, prod))

	v := svc.Get()
	assert.Equal(t, now, v.GeneratedAt)
	assert.Equal(t, 7, v.Inventory.TotalMaterials)
	assert.Equal(t, 5, v.Orders.TotalOrders)
	assert.Equal(t, 3, v.Checklists.TotalChecklists)
	assert.Equal(t, 4, v.Plants.TotalPlants)
	assert.Zero(t, v.Inventory.CriticalMaterials)

	_, err := ledger.UpdateStock(1, 10)
	require.NoError(t, err)
	_, err = ol.Create(context.Background(), orders.CreateRequest{ProjectID: 102, MixType: "C-25", Volume: 8, ScheduledTime: now})
	require.NoError(t, err)

	v = svc.Get()
	assert.Equal(t, 1, v.Inventory.CriticalMaterials)
	assert.Equal(t, 6, v.Orders.TotalOrders)
	assert.Equal(t, 4, v.Orders.TodaysOrders)
}
