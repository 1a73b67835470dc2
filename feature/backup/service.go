package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"unique-checker/core/reconcile"
	"unique-checker/core/storage"
	"unique-checker/feature/uniques/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	snapshotPrefix = "snapshots"
	timeLayout     = "20060102T150405Z"
)

// ErrForeignSnapshot is returned when restoring a snapshot of another player.
var ErrForeignSnapshot = errors.New("snapshot belongs to another user")

// Entries lists the stored records of a player.
type Entries interface {
	List(ctx context.Context, username string) ([]models.ValueRecord, error)
}

// Restorer feeds snapshot items back through reconciliation. It returns
// session.ErrBusy while another writer holds the checker.
type Restorer interface {
	ReconcileAll(ctx context.Context, username string, items []models.Item, opts reconcile.ReconcileOptions) (reconcile.Summary, error)
}

// Identity returns the active username.
type Identity interface {
	Username() (string, error)
}

// Snapshot is the content of a backup object.
type Snapshot struct {
	Username  string               `json:"username"`
	CreatedAt time.Time            `json:"createdAt"`
	Entries   []models.ValueRecord `json:"entries"`
}

// Object describes a stored snapshot.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	Entries      int       `json:"entries,omitempty"`
}

// Service exports and restores stash snapshots in object storage.
type Service struct {
	client   storage.Client
	bucket   string
	region   string
	entries  Entries
	restorer Restorer
	identity Identity
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new backup service.
func NewService(client storage.Client, cfg storage.Config, entries Entries, restorer Restorer, identity Identity, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		entries:  entries,
		restorer: restorer,
		identity: identity,
		logger:   logger,
		now:      time.Now,
	}
}

func userPrefix(username string) string {
	return path.Join(snapshotPrefix, username) + "/"
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	s.logger.Info("Creating snapshot bucket", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Export writes every stored entry of the player to a new snapshot object.
func (s *Service) Export(ctx context.Context) (Object, error) {
	username, err := s.identity.Username()
	if err != nil {
		return Object{}, err
	}

	records, err := s.entries.List(ctx, username)
	if err != nil {
		return Object{}, err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return Object{}, err
	}

	created := s.now().UTC()
	data, err := json.MarshalIndent(Snapshot{Username: username, CreatedAt: created, Entries: records}, "", "  ")
	if err != nil {
		return Object{}, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := userPrefix(username) + created.Format(timeLayout) + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return Object{}, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Snapshot exported", zap.String("key", key), zap.Int("entries", len(records)))
	return Object{Key: key, Size: int64(len(data)), LastModified: created, Entries: len(records)}, nil
}

// List returns the player's snapshots, oldest first.
func (s *Service) List(ctx context.Context) ([]Object, error) {
	username, err := s.identity.Username()
	if err != nil {
		return nil, err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return []Object{}, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    userPrefix(username),
		Recursive: true,
	}

	objects := []Object{}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		objects = append(objects, Object{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	// keys embed a sortable UTC timestamp
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// Restore reconciles every item of a snapshot into the store. Stored
// records that are better than the snapshot are kept.
func (s *Service) Restore(ctx context.Context, key string) (reconcile.Summary, error) {
	username, err := s.identity.Username()
	if err != nil {
		return reconcile.Summary{}, err
	}
	if !strings.HasPrefix(key, userPrefix(username)) {
		return reconcile.Summary{}, fmt.Errorf("%w: %s", ErrForeignSnapshot, key)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return reconcile.Summary{}, fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	var snap Snapshot
	if err := json.NewDecoder(obj).Decode(&snap); err != nil {
		return reconcile.Summary{}, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if snap.Username != username {
		return reconcile.Summary{}, fmt.Errorf("%w: %s", ErrForeignSnapshot, snap.Username)
	}

	items := make([]models.Item, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		items = append(items, e.Item)
	}

	summary, err := s.restorer.ReconcileAll(ctx, username, items, reconcile.ReconcileOptions{})
	if err != nil {
		return summary, err
	}

	s.logger.Info("Snapshot restored", zap.String("key", key), zap.Stringer("summary", summary))
	return summary, nil
}

// Prune removes all but the newest keep snapshots and returns the removed keys.
func (s *Service) Prune(ctx context.Context, keep int) ([]string, error) {
	if keep < 0 {
		keep = 0
	}

	objects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(objects) <= keep {
		return []string{}, nil
	}

	stale := objects[:len(objects)-keep]
	removed := make([]string, 0, len(stale))
	for _, obj := range stale {
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", obj.Key, err)
		}
		removed = append(removed, obj.Key)
	}

	s.logger.Info("Snapshots pruned", zap.Int("removed", len(removed)), zap.Int("kept", keep))
	return removed, nil
}
