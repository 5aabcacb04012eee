package service

import (
	"biotutor_backend/internal/config"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService resolves lesson 3D model assets. Local storage serves files
// straight from disk; minio storage hands out short-lived presigned URLs.
type StorageService struct {
	Config *config.StorageConfig
	Minio  *minio.Client
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	s := &StorageService{Config: &cfg.Storage}

	if cfg.Storage.Type == "minio" {
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: false,
		})
		if err != nil {
			return nil, err
		}
		s.Minio = client
	}

	return s, nil
}

// IsLocal reports whether assets live on the local filesystem.
func (s *StorageService) IsLocal() bool {
	return s.Config.Type != "minio"
}

// LocalPath returns the on-disk path of an asset. Only the base name of the
// requested file is used, so a crafted path cannot escape the asset root.
func (s *StorageService) LocalPath(filename string) string {
	return filepath.Join(s.Config.LocalPath, filepath.Base(filename))
}

// PresignedURL returns a temporary GET URL for a minio-hosted asset.
func (s *StorageService) PresignedURL(ctx context.Context, filename string) (string, error) {
	if s.Minio == nil {
		return "", fmt.Errorf("minio storage is not configured")
	}
	u, err := s.Minio.PresignedGetObject(ctx, s.Config.MinioBucket, filepath.Base(filename), 15*time.Minute, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
