package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/config"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/alexanderramin/swimadmin/internal/teatest"
	"github.com/alexanderramin/swimadmin/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory DB loaded with the demo
// curriculum.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	programs := repository.NewSQLiteProgramRepo(database)
	levels := repository.NewSQLiteLevelRepo(database)
	skills := repository.NewSQLiteSkillRepo(database)
	progress := repository.NewSQLiteProgressRepo(database)
	maps := repository.NewSQLiteLevelMapRepo(database)

	app := &App{
		Programs:  service.NewProgramService(programs),
		Levels:    service.NewLevelService(levels, programs),
		Skills:    service.NewSkillService(skills, levels, uow),
		Progress:  service.NewProgressService(progress, skills),
		Maps:      service.NewLevelMapService(levels, skills, maps, uow),
		Dashboard: service.NewDashboardService(programs, levels, skills, progress),
		Seed:      service.NewSeedService(programs, uow),
		Config:    config.DefaultConfig(),
	}
	_, err := app.Seed.SeedDemo(context.Background())
	require.NoError(t, err)
	return app
}

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the app model at 120x40 and drains its Init, which
// loads the program list.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// MapView returns the active level map view, failing the test otherwise.
func (d *TestDriver) MapView() *levelMapView {
	d.T.Helper()
	v, ok := d.ActiveView().(*levelMapView)
	require.True(d.T, ok, "active view is %T", d.ActiveView())
	return v
}
