// Package backend opens the blob stores selected by configuration.
package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/diagnosis-server/internal/config"
	"github.com/dtroode/diagnosis-server/internal/model"
	"github.com/dtroode/diagnosis-server/internal/repository/postgres"
	"github.com/dtroode/diagnosis-server/internal/storage/file"
	storage "github.com/dtroode/diagnosis-server/internal/storage/minio"
	"github.com/dtroode/diagnosis-server/internal/storage/redis"
)

// Stores holds the account and session blobs of one backend.
type Stores struct {
	Accounts model.BlobStore
	Sessions model.BlobStore

	closers []func() error
}

// Close releases backend connections.
func (s *Stores) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Open connects to the backend named by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	accounts, sessions := cfg.Store.AccountsDocument, cfg.Store.SessionsDocument

	switch cfg.Store.Backend {
	case config.BackendFile:
		return &Stores{
			Accounts: file.NewBlob(filepath.Join(cfg.Store.DataDir, accounts)),
			Sessions: file.NewBlob(filepath.Join(cfg.Store.DataDir, sessions)),
		}, nil

	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return &Stores{
			Accounts: postgres.NewDocumentRepository(db, accounts),
			Sessions: postgres.NewDocumentRepository(db, sessions),
			closers:  []func() error{db.Close},
		}, nil

	case config.BackendMinio:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		client, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		return &Stores{
			Accounts: client.Blob(accounts),
			Sessions: client.Blob(sessions),
		}, nil

	case config.BackendRedis:
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redis.Ping(ctx, rdb); err != nil {
			rdb.Close()
			return nil, err
		}
		return &Stores{
			Accounts: redis.NewBlob(rdb, cfg.Redis.KeyPrefix, accounts),
			Sessions: redis.NewBlob(rdb, cfg.Redis.KeyPrefix, sessions),
			closers:  []func() error{rdb.Close},
		}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
