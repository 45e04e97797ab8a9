// Package archive
package archive

import (
	"context"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"os"
	"path/filepath"
)

type LocalStore struct {
	logger log.LoggerInterface
	config *c.ArchiveConfig
}

func NewLocalStore(logger log.LoggerInterface, config *c.ArchiveConfig) *LocalStore {
	return &LocalStore{
		logger: logger,
		config: config,
	}
}

func (store *LocalStore) Save(_ context.Context, name string, data []byte) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(store.config.LocalStorePath, global.DefaultDirectoryPermission); err != nil {
		store.logger.ErrorF("LocalStore.Save create directory error: %v", err)
		return "", err
	}
	dstPath := filepath.Join(store.config.LocalStorePath, name)
	if err := os.WriteFile(dstPath, data, global.DefaultFilePermissions); err != nil {
		store.logger.ErrorF("LocalStore.Save write file error: %v", err)
		return "", err
	}
	return dstPath, nil
}
