package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/domain/projects"
	"github.com/Spok95/concretrack/internal/domain/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fixture struct {
	clock *clock.Fake
	reg   *projects.MemRegistry
	l     *Lifecycle
}

func newFixture(t *testing.T, seed []Order) fixture {
	t.Helper()
	c := clock.NewFake(testNow)
	reg := projects.NewMemRegistry(projects.Seed(testNow))
	return fixture{clock: c, reg: reg, l: NewLifecycle(c, reg, recipes.DefaultBook(), seed)}
}

func validRequest() CreateRequest {
	return CreateRequest{
		ProjectID:         101,
		MixType:           "C-30",
		Volume:            45.5,
		ScheduledTime:     testNow.Add(2 * time.Hour),
		Address:           "Av. Constructores 123",
		Priority:          PriorityHigh,
		AssignedPlant:     "Planta 1",
		EstimatedDuration: 4.5,
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t, nil)

	o, err := f.l.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Equal(t, StatusScheduled, o.Status)
	assert.Nil(t, o.CompletedAt)
	assert.Equal(t, "Torre Norte", o.ProjectName)
	assert.Equal(t, "Constructora ABC", o.Client)
	assert.Equal(t, 45.5, o.Volume)
	assert.Equal(t, testNow, o.CreatedAt)

	got, err := f.l.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestCreateSnapshotsProject(t *testing.T) {
	f := newFixture(t, nil)

	o, err := f.l.Create(context.Background(), validRequest())
	require.NoError(t, err)

	f.reg.Put(projects.Project{ID: 101, Name: "Torre Norte II", Client: "Otra Constructora", Status: projects.StatusActive})

	got, err := f.l.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Torre Norte", got.ProjectName)
	assert.Equal(t, "Constructora ABC", got.Client)
}

func TestCreateDefaultsPriority(t *testing.T) {
	f := newFixture(t, nil)
	req := validRequest()
	req.Priority = ""

	o, err := f.l.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, o.Priority)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"unknown project", func(r *CreateRequest) { r.ProjectID = 999 }, ErrProjectNotFound},
		{"unsupported mix", func(r *CreateRequest) { r.MixType = "C-50" }, ErrUnsupportedMix},
		{"zero volume", func(r *CreateRequest) { r.Volume = 0 }, ErrInvalidVolume},
		{"negative volume", func(r *CreateRequest) { r.Volume = -1 }, ErrInvalidVolume},
		{"bad priority", func(r *CreateRequest) { r.Priority = "urgent" }, ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			req := validRequest()
			tt.mutate(&req)

			_, err := f.l.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.l.All())
		})
	}
}

type failingRegistry struct{}

func (failingRegistry) Resolve(context.Context, int64) (projects.Project, error) {
	return projects.Project{}, errors.New("connection refused")
}

func (failingRegistry) ListActive(context.Context) ([]projects.Project, error) {
	return nil, errors.New("connection refused")
}

func TestCreateRegistryFailure(t *testing.T) {
	l := NewLifecycle(clock.NewFake(testNow), failingRegistry{}, recipes.DefaultBook(), nil)

	_, err := l.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProjectNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCreateContinuesAfterSeed(t *testing.T) {
	f := newFixture(t, Seed(testNow))

	o, err := f.l.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(6), o.ID)
	assert.Len(t, f.l.All(), 6)
}

func TestUpdateStatusCompletedStampsEveryTime(t *testing.T) {
	f := newFixture(t, Seed(testNow))

	o, err := f.l.UpdateStatus(1, StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, o.CompletedAt)
	assert.Equal(t, testNow, *o.CompletedAt)

	f.clock.Advance(45 * time.Minute)
	o, err = f.l.UpdateStatus(1, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, o.Status)
	assert.Equal(t, testNow.Add(45*time.Minute), *o.CompletedAt)
}

func TestUpdateStatusAcceptsAnyKnownStatus(t *testing.T) {
	f := newFixture(t, Seed(testNow))

	// no transition graph: completed back to scheduled is accepted
	o, err := f.l.UpdateStatus(3, StatusScheduled)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, o.Status)
	assert.Nil(t, o.CompletedAt)

	for _, s := range Statuses {
		o, err := f.l.UpdateStatus(2, s)
		require.NoError(t, err)
		assert.Equal(t, s, o.Status)
		assert.Equal(t, s == StatusCompleted, o.CompletedAt != nil)
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	f := newFixture(t, Seed(testNow))

	_, err := f.l.UpdateStatus(42, StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.l.UpdateStatus(1, "delivered")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	o, err := f.l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, o.Status)
}

func TestSeedCompletedAtInvariant(t *testing.T) {
	seed := []Order{
		{ID: 1, Status: StatusCompleted},
		{ID: 2, Status: StatusScheduled, CompletedAt: &testNow},
	}
	f := newFixture(t, seed)

	o, err := f.l.Get(1)
	require.NoError(t, err)
	assert.NotNil(t, o.CompletedAt)

	o, err = f.l.Get(2)
	require.NoError(t, err)
	assert.Nil(t, o.CompletedAt)
}

func TestGetReturnsCopy(t *testing.T) {
	f := newFixture(t, Seed(testNow))

	o, err := f.l.Get(3)
	require.NoError(t, err)
	*o.CompletedAt = time.Time{}
	o.Status = StatusCancelled

	again, err := f.l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, again.Status)
	assert.Equal(t, testNow.Add(-6*time.Hour), *again.CompletedAt)
}

func TestQueries(t *testing.T) {
	f := newFixture(t, Seed(testNow))

	ids := func(os []Order) []int64 {
		var out []int64
		for _, o := range os {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(f.l.All()))
	assert.Equal(t, []int64{1, 2, 3}, ids(f.l.Today()))
	assert.Equal(t, []int64{4}, ids(f.l.ByStatus(StatusPreparing)))
	assert.Empty(t, f.l.ByStatus("unknown"))

	f.clock.Advance(24 * time.Hour)
	assert.Equal(t, []int64{4}, ids(f.l.Today()))
}

func TestAvailableProjects(t *testing.T) {
	f := newFixture(t, nil)

	ps, err := f.l.AvailableProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for _, p := range ps {
		assert.Equal(t, projects.StatusActive, p.Status)
	}

	l := NewLifecycle(clock.NewFake(testNow), failingRegistry{}, recipes.DefaultBook(), nil)
	_, err = l.AvailableProjects(context.Background())
	assert.Error(t, err)
}
