package uniques

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"unique-checker/core/database"
	"unique-checker/core/reconcile"
	"unique-checker/core/session"
	"unique-checker/feature/player"
	"unique-checker/feature/uniques/models"
	"unique-checker/feature/uniques/mods"
	ureconcile "unique-checker/feature/uniques/reconcile"
	"unique-checker/feature/uniques/store"
	"unique-checker/feature/uniques/sync"
	"unique-checker/feature/uniques/trade"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tabula = "Rarity: Unique\n" +
	"Tabula Rasa\n" +
	"Simple Robe\n" +
	"--------\n" +
	"Item Level: 68\n" +
	"--------\n" +
	"+50 to maximum Life\n"

type fakeWindow struct{ focused bool }

func (w *fakeWindow) IsForegroundTarget() bool { return w.focused }

type fakeChat struct {
	mu    gosync.Mutex
	lines []string
}

func (c *fakeChat) AppendToTargetLog(msg string) {
	c.mu.Lock()
	c.lines = append(c.lines, msg)
	c.mu.Unlock()
}

func (c *fakeChat) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

type fakePlayers struct {
	saved string
	err   error
}

func (p *fakePlayers) Load() (string, error) { return p.saved, nil }

func (p *fakePlayers) Save(username string) error {
	if p.err != nil {
		return p.err
	}
	p.saved = username
	return nil
}

type fakePipeline struct {
	results  []sync.Result
	block    chan struct{}
	calls    int
	username string
	cats     []trade.Category
}

func (p *fakePipeline) SyncAll(ctx context.Context, username string, categories []trade.Category, onResult func(sync.Result)) []sync.Result {
	p.calls++
	p.username = username
	p.cats = categories
	if p.block != nil {
		<-p.block
	}
	for _, r := range p.results {
		onResult(r)
	}
	return p.results
}

func (p *fakePipeline) Progress() sync.Progress {
	return sync.Progress{State: sync.StateIdle}
}

type fixture struct {
	svc      *Service
	window   *fakeWindow
	chat     *fakeChat
	pipeline *fakePipeline
	players  *fakePlayers
	store    *store.Store
}

func setupService(t *testing.T, username string) *fixture {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	st, err := store.Open(context.Background(), db)
	require.NoError(t, err)

	f := &fixture{
		window:   &fakeWindow{focused: true},
		chat:     &fakeChat{},
		pipeline: &fakePipeline{},
		players:  &fakePlayers{saved: username},
		store:    st,
	}
	f.svc, err = NewService(Deps{
		Reconciler: ureconcile.NewReconciler(st, nil, zap.NewNop()),
		Pipeline:   f.pipeline,
		Entries:    st,
		Players:    f.players,
		Window:     f.window,
		Clipboard:  StaticClipboard(tabula),
		Chat:       f.chat,
		Logger:     zap.NewNop(),
	})
	require.NoError(t, err)
	return f
}

func TestCheckUnique(t *testing.T) {
	f := setupService(t, "exile")

	require.NoError(t, f.svc.CheckUnique(context.Background()))
	require.NoError(t, f.svc.CheckUnique(context.Background()))

	assert.Equal(t, []string{
		"Found a keeper (Tabula Rasa Simple Robe not in stash yet)",
		"Chuck it away (this item Tabula Rasa Simple Robe is just as good as stored item)",
	}, f.chat.Lines())

	rec, err := f.svc.Entry(context.Background(), "Tabula Rasa Simple Robe")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{50}}, rec.ExplicitModValues)
}

func TestCheckUnique_Gates(t *testing.T) {
	t.Run("NotFocused", func(t *testing.T) {
		f := setupService(t, "exile")
		f.window.focused = false

		require.NoError(t, f.svc.CheckUnique(context.Background()))
		assert.Empty(t, f.chat.Lines())
		records, err := f.svc.Entries(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Busy", func(t *testing.T) {
		f := setupService(t, "exile")
		release, ok := f.svc.session.TryAcquire(OperationName)
		require.True(t, ok)
		defer release()

		require.NoError(t, f.svc.CheckUnique(context.Background()))
		assert.Empty(t, f.chat.Lines())
	})

	t.Run("NoUsername", func(t *testing.T) {
		f := setupService(t, "")

		err := f.svc.CheckUnique(context.Background())
		assert.ErrorIs(t, err, session.ErrNoIdentity)
		assert.Equal(t, []string{"Username is not set"}, f.chat.Lines())
		assert.False(t, f.svc.session.IsBusy(OperationName))
	})
}

func TestCheck(t *testing.T) {
	f := setupService(t, "exile")
	f.window.focused = false
	ctx := context.Background()

	out, err := f.svc.Check(ctx, tabula, reconcile.ReconcileOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, reconcile.ActionInsert, out.Action)
	assert.False(t, out.Applied)

	out, err = f.svc.Check(ctx, tabula, reconcile.ReconcileOptions{})
	require.NoError(t, err)
	assert.True(t, out.Applied)

	_, err = f.svc.Check(ctx, "Rarity: Rare\nFoo\nBar\n", reconcile.ReconcileOptions{})
	assert.ErrorIs(t, err, mods.ErrNotUnique)

	_, err = f.svc.Check(ctx, "Rarity: Unique\nFoo\nBar\n", reconcile.ReconcileOptions{})
	assert.ErrorIs(t, err, mods.ErrStructuralParse)

	// unfocused: nothing reaches the chat
	assert.Empty(t, f.chat.Lines())
}

func TestCheck_Busy(t *testing.T) {
	f := setupService(t, "exile")
	release, ok := f.svc.session.TryAcquire(OperationName)
	require.True(t, ok)
	defer release()

	_, err := f.svc.Check(context.Background(), tabula, reconcile.ReconcileOptions{})
	assert.ErrorIs(t, err, ErrBusy)
}

func TestSyncUniques(t *testing.T) {
	f := setupService(t, "exile")
	f.pipeline.results = []sync.Result{
		{Category: trade.Category{Label: "Flask", Key: "flask"}, Summary: reconcile.Summary{Total: 4}},
		{Category: trade.Category{Label: "Amulet", Key: "accessory.amulet"}, Err: errors.New("shape mismatch")},
	}

	results, err := f.svc.SyncUniques(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "exile", f.pipeline.username)
	assert.Len(t, f.pipeline.cats, 24)

	assert.Equal(t, []string{
		"Syncing items...",
		"Synced 4 items of type Flask",
		"Failed to sync items of type Amulet: shape mismatch",
		"Sync done",
	}, f.chat.Lines())

	assert.Len(t, f.svc.Status().LastSync, 2)
	assert.False(t, f.svc.Status().Busy)
}

func TestSyncUniques_NotFocused(t *testing.T) {
	f := setupService(t, "exile")
	f.window.focused = false

	results, err := f.svc.SyncUniques(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Zero(t, f.pipeline.calls)
}

func TestSync_Categories(t *testing.T) {
	f := setupService(t, "exile")
	ring, _ := trade.LookupCategory("ring")

	_, err := f.svc.Sync(context.Background(), []trade.Category{ring})
	require.NoError(t, err)
	assert.Equal(t, []trade.Category{ring}, f.pipeline.cats)
}

func TestStartSync(t *testing.T) {
	f := setupService(t, "exile")
	f.pipeline.block = make(chan struct{})

	started, err := f.svc.StartSync(context.Background())
	require.NoError(t, err)
	assert.True(t, started)
	assert.True(t, f.svc.Status().Busy)

	started, err = f.svc.StartSync(context.Background())
	require.NoError(t, err)
	assert.False(t, started)

	_, err = f.svc.Check(context.Background(), tabula, reconcile.ReconcileOptions{})
	assert.ErrorIs(t, err, ErrBusy)

	close(f.pipeline.block)
	assert.Eventually(t, func() bool { return !f.svc.Status().Busy }, time.Second, 5*time.Millisecond)
}

func TestStartSync_NoUsername(t *testing.T) {
	f := setupService(t, "")

	started, err := f.svc.StartSync(context.Background())
	assert.False(t, started)
	assert.ErrorIs(t, err, session.ErrNoIdentity)
	assert.False(t, f.svc.Status().Busy)
}

func TestUsername(t *testing.T) {
	f := setupService(t, "")

	_, err := f.svc.Username()
	assert.ErrorIs(t, err, session.ErrNoIdentity)

	assert.ErrorIs(t, f.svc.SetUsername("  "), player.ErrEmptyUsername)
	require.NoError(t, f.svc.SetUsername(" exile "))

	username, err := f.svc.Username()
	require.NoError(t, err)
	assert.Equal(t, "exile", username)
	assert.Equal(t, "exile", f.players.saved)

	f.players.err = errors.New("disk full")
	assert.Error(t, f.svc.SetUsername("other"))
	username, _ = f.svc.Username()
	assert.Equal(t, "exile", username)
}

func TestNewService_FallbackUsername(t *testing.T) {
	svc, err := NewService(Deps{Players: &fakePlayers{}, Logger: zap.NewNop(), Username: "configured"})
	require.NoError(t, err)

	username, err := svc.Username()
	require.NoError(t, err)
	assert.Equal(t, "configured", username)
}

func TestEntry_NotFound(t *testing.T) {
	f := setupService(t, "exile")

	_, err := f.svc.Entry(context.Background(), "Headhunter Leather Belt")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReconcileAll_RefusedWhileSyncing(t *testing.T) {
	f := setupService(t, "exile")
	f.pipeline.block = make(chan struct{})

	started, err := f.svc.StartSync(context.Background())
	require.NoError(t, err)
	require.True(t, started)

	item, err := mods.ParseClipboard(tabula)
	require.NoError(t, err)

	_, err = f.svc.ReconcileAll(context.Background(), "exile", []models.Item{item}, reconcile.ReconcileOptions{})
	assert.ErrorIs(t, err, ErrBusy)

	stored, err := f.store.List(context.Background(), "exile")
	require.NoError(t, err)
	assert.Empty(t, stored)

	close(f.pipeline.block)
	assert.Eventually(t, func() bool { return !f.svc.Status().Busy }, time.Second, 5*time.Millisecond)

	summary, err := f.svc.ReconcileAll(context.Background(), "exile", []models.Item{item}, reconcile.ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
	assert.False(t, f.svc.Status().Busy)
}
