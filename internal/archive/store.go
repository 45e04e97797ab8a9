// Package archive
package archive

import (
	"context"
	"errors"
	"fmt"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"path/filepath"
	"strings"
)

var ErrArchiveNameIllegal = errors.New("archive name must not contain path separators")

// StoreInterface persists archive documents under a flat name
type StoreInterface interface {
	// Save writes data under name and returns the location it can be read back from
	Save(ctx context.Context, name string, data []byte) (location string, err error)
}

// NewStore picks the store implementation from config, remote stores keep a local copy first
func NewStore(logger log.LoggerInterface, config *c.ArchiveConfig) (StoreInterface, error) {
	local := NewLocalStore(logger, config)
	switch config.StoreType {
	case c.LocalStore:
		return local, nil
	case c.ALiYunOssStore:
		return NewALiYunOssStore(logger, config, local), nil
	case c.TencentCosStore:
		return NewTencentCosStore(logger, config, local)
	default:
		return nil, fmt.Errorf("unknown archive store type %d", config.StoreType)
	}
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return ErrArchiveNameIllegal
	}
	return nil
}

func remotePath(config *c.ArchiveConfig, name string) string {
	return strings.Replace(filepath.Join(config.RemoteStorePath, name), "\\", "/", -1)
}
