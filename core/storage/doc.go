// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so that the
// inventory feature can archive uploaded workbooks and export snapshots to
// AWS S3 or a self-hosted MinIO instance. The interface is mocked with testify
// in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket bootstrap (see EnsureBucket).
//   - PutObject: uploads content (see PutBytes for in-memory payloads).
//   - GetObject: retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
