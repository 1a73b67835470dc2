// Package storage wraps the MinIO Go client for stash snapshot backups.
//
// The Client interface keeps only the operations the backup feature needs,
// which keeps it easy to mock (see core/storage/mocks). It works against AWS
// S3 and self-hosted MinIO alike.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
