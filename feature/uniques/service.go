package uniques

import (
	"context"
	"errors"
	"fmt"
	"strings"
	gosync "sync"

	"unique-checker/core/reconcile"
	"unique-checker/core/session"
	"unique-checker/feature/player"
	"unique-checker/feature/uniques/models"
	"unique-checker/feature/uniques/mods"
	ureconcile "unique-checker/feature/uniques/reconcile"
	"unique-checker/feature/uniques/store"
	"unique-checker/feature/uniques/sync"
	"unique-checker/feature/uniques/trade"

	"go.uber.org/zap"
)

// OperationName is the busy flag shared by capture and sync.
const OperationName = "checker"

// ErrBusy is returned by explicit requests while a capture, sync or
// restore runs.
var ErrBusy = session.ErrBusy

// Entries reads stored records.
type Entries interface {
	FindOne(ctx context.Context, username, name string) (*models.ValueRecord, error)
	List(ctx context.Context, username string) ([]models.ValueRecord, error)
}

// Players persists the username.
type Players interface {
	Load() (string, error)
	Save(username string) error
}

// Capturer reconciles items into the store.
type Capturer interface {
	Reconcile(ctx context.Context, username string, item models.Item, opts reconcile.ReconcileOptions) (ureconcile.Outcome, error)
	ReconcileAll(ctx context.Context, username string, items []models.Item, opts reconcile.ReconcileOptions) (reconcile.Summary, error)
}

// Syncer pulls items from the trade website.
type Syncer interface {
	SyncAll(ctx context.Context, username string, categories []trade.Category, onResult func(sync.Result)) []sync.Result
	Progress() sync.Progress
}

// Deps are the collaborators of a Service.
type Deps struct {
	Reconciler Capturer
	Pipeline   Syncer
	Entries    Entries
	Players    Players
	Window     Window
	Clipboard  Clipboard
	Chat       Chat
	Logger     *zap.Logger
	// Username is used when Players has nothing saved.
	Username string
}

// Status describes the checker for the status endpoint.
type Status struct {
	Busy     bool          `json:"busy"`
	Username string        `json:"username,omitempty"`
	Progress sync.Progress `json:"progress"`
	LastSync []sync.Result `json:"lastSync,omitempty"`
}

// Service orchestrates clipboard checks and trade syncs for one player.
type Service struct {
	session    *session.Session
	reconciler Capturer
	pipeline   Syncer
	entries    Entries
	players    Players
	window     Window
	clipboard  Clipboard
	chat       Chat
	logger     *zap.Logger

	mu       gosync.Mutex
	lastSync []sync.Result
}

// NewService creates a service and loads the saved username.
func NewService(deps Deps) (*Service, error) {
	username := deps.Username
	if deps.Players != nil {
		saved, err := deps.Players.Load()
		if err != nil {
			return nil, err
		}
		if saved != "" {
			username = saved
		}
	}

	s := &Service{
		session:    session.New(username),
		reconciler: deps.Reconciler,
		pipeline:   deps.Pipeline,
		entries:    deps.Entries,
		players:    deps.Players,
		window:     deps.Window,
		clipboard:  deps.Clipboard,
		chat:       deps.Chat,
		logger:     deps.Logger,
	}
	if s.window == nil {
		s.window = AlwaysFocused{}
	}
	if s.chat == nil {
		s.chat = LogChat{Logger: s.logger}
	}
	return s, nil
}

// notify logs msg and echoes it to the game chat when the game is focused.
func (s *Service) notify(msg string) {
	s.logger.Info(msg)
	if s.window.IsForegroundTarget() {
		s.chat.AppendToTargetLog(msg)
	}
}

// Notify is exported for the pipeline's retry notices.
func (s *Service) Notify(msg string) {
	s.notify(msg)
}

// CaptureOne parses clipboard text and reconciles the item.
func (s *Service) CaptureOne(ctx context.Context, username, raw string, opts reconcile.ReconcileOptions) (ureconcile.Outcome, error) {
	item, err := mods.ParseClipboard(raw)
	if err != nil {
		return ureconcile.Outcome{}, err
	}
	return s.reconciler.Reconcile(ctx, username, item, opts)
}

// CheckUnique is the check hotkey entry point: it checks the item on the
// clipboard. It does nothing when the game is not focused or a check or
// sync is already running. CLI and HTTP callers use Check instead.
func (s *Service) CheckUnique(ctx context.Context) error {
	if !s.window.IsForegroundTarget() {
		return nil
	}
	release, ok := s.session.TryAcquire(OperationName)
	if !ok {
		return nil
	}
	defer release()

	username, err := s.session.Identity()
	if err != nil {
		s.notify("Username is not set")
		return err
	}

	raw, err := s.clipboard.ReadClipboard()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}

	_, err = s.capture(ctx, username, raw, reconcile.ReconcileOptions{})
	return err
}

// Check checks supplied item text regardless of window focus.
func (s *Service) Check(ctx context.Context, raw string, opts reconcile.ReconcileOptions) (ureconcile.Outcome, error) {
	release, ok := s.session.TryAcquire(OperationName)
	if !ok {
		return ureconcile.Outcome{}, ErrBusy
	}
	defer release()

	username, err := s.session.Identity()
	if err != nil {
		s.notify("Username is not set")
		return ureconcile.Outcome{}, err
	}

	return s.capture(ctx, username, raw, opts)
}

// ReconcileAll reconciles a batch of items, such as a restored snapshot,
// while holding the checker. It fails with ErrBusy while a capture or sync
// runs.
func (s *Service) ReconcileAll(ctx context.Context, username string, items []models.Item, opts reconcile.ReconcileOptions) (reconcile.Summary, error) {
	release, ok := s.session.TryAcquire(OperationName)
	if !ok {
		return reconcile.Summary{}, ErrBusy
	}
	defer release()

	return s.reconciler.ReconcileAll(ctx, username, items, opts)
}

func (s *Service) capture(ctx context.Context, username, raw string, opts reconcile.ReconcileOptions) (ureconcile.Outcome, error) {
	outcome, err := s.CaptureOne(ctx, username, raw, opts)
	switch {
	case errors.Is(err, mods.ErrNotUnique):
		s.notify("Not a unique")
		return outcome, err
	case errors.Is(err, mods.ErrStructuralParse):
		s.logger.Error("Could not read item", zap.Error(err))
		return outcome, err
	case err != nil:
		s.logger.Error("Check failed", zap.Error(err))
		return outcome, err
	}

	s.notify(outcome.Message())
	return outcome, nil
}

// SyncUniques is the sync hotkey entry point: it syncs every category. Like
// CheckUnique it is a no-op when the game is not focused or the checker is
// busy. CLI and HTTP callers use Sync and StartSync instead.
func (s *Service) SyncUniques(ctx context.Context) ([]sync.Result, error) {
	if !s.window.IsForegroundTarget() {
		return nil, nil
	}
	release, ok := s.session.TryAcquire(OperationName)
	if !ok {
		return nil, nil
	}
	defer release()

	username, err := s.session.Identity()
	if err != nil {
		s.notify("Username is not set")
		return nil, err
	}

	return s.runSync(ctx, username, trade.Categories()), nil
}

// Sync syncs the given categories, or all when empty, regardless of window
// focus. It fails with ErrBusy while the checker runs.
func (s *Service) Sync(ctx context.Context, categories []trade.Category) ([]sync.Result, error) {
	release, ok := s.session.TryAcquire(OperationName)
	if !ok {
		return nil, ErrBusy
	}
	defer release()

	username, err := s.session.Identity()
	if err != nil {
		s.notify("Username is not set")
		return nil, err
	}

	if len(categories) == 0 {
		categories = trade.Categories()
	}
	return s.runSync(ctx, username, categories), nil
}

// StartSync starts a full sync in the background bound to ctx. It returns
// false when the checker is busy.
func (s *Service) StartSync(ctx context.Context) (bool, error) {
	release, ok := s.session.TryAcquire(OperationName)
	if !ok {
		return false, nil
	}

	username, err := s.session.Identity()
	if err != nil {
		release()
		s.notify("Username is not set")
		return false, err
	}

	go func() {
		defer release()
		s.runSync(ctx, username, trade.Categories())
	}()
	return true, nil
}

func (s *Service) runSync(ctx context.Context, username string, categories []trade.Category) []sync.Result {
	s.notify("Syncing items...")

	results := s.pipeline.SyncAll(ctx, username, categories, func(r sync.Result) {
		if r.Err != nil {
			s.notify(fmt.Sprintf("Failed to sync items of type %s: %s", r.Category.Label, r.Err.Error()))
			return
		}
		s.notify(fmt.Sprintf("Synced %d items of type %s", r.Summary.Total, r.Category.Label))
	})

	s.mu.Lock()
	s.lastSync = results
	s.mu.Unlock()

	s.notify("Sync done")
	return results
}

// Status reports whether the checker is busy and the sync progress.
func (s *Service) Status() Status {
	s.mu.Lock()
	last := s.lastSync
	s.mu.Unlock()

	username, _ := s.session.Identity()
	return Status{
		Busy:     s.session.IsBusy(OperationName),
		Username: username,
		Progress: s.pipeline.Progress(),
		LastSync: last,
	}
}

// Entries returns the stored records of the player.
func (s *Service) Entries(ctx context.Context) ([]models.ValueRecord, error) {
	username, err := s.session.Identity()
	if err != nil {
		return nil, err
	}
	return s.entries.List(ctx, username)
}

// Entry returns the stored record of one item.
func (s *Service) Entry(ctx context.Context, name string) (*models.ValueRecord, error) {
	username, err := s.session.Identity()
	if err != nil {
		return nil, err
	}
	rec, err := s.entries.FindOne(ctx, username, name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, name)
	}
	return rec, nil
}

// Username returns the active username.
func (s *Service) Username() (string, error) {
	return s.session.Identity()
}

// SetUsername persists and activates a new username.
func (s *Service) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return player.ErrEmptyUsername
	}
	if s.players != nil {
		if err := s.players.Save(username); err != nil {
			return err
		}
	}
	s.session.SetIdentity(username)
	s.notify(fmt.Sprintf("Username set to %s", username))
	return nil
}
