// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"os"
)

type ArchiveStoreType int

const (
	LocalStore ArchiveStoreType = iota
	ALiYunOssStore
	TencentCosStore
)

type ArchiveConfig struct {
	Enabled         bool             `json:"enabled"`
	StoreType       ArchiveStoreType `json:"store_type"` // 0: local, 1: aliyun oss, 2: tencent cos
	Region          string           `json:"region"`
	Bucket          string           `json:"bucket"`
	AccessId        string           `json:"access_id"`
	AccessKey       string           `json:"access_key"`
	UseInternalUrl  bool             `json:"use_internal_url"`
	LocalStorePath  string           `json:"local_store_path"`
	RemoteStorePath string           `json:"remote_store_path"`
}

func defaultArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{
		Enabled:         true,
		StoreType:       LocalStore,
		LocalStorePath:  "archive",
		RemoteStorePath: "surety/requests",
	}
}

func (config *ArchiveConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	switch config.StoreType {
	case LocalStore:
		if err := os.MkdirAll(config.LocalStorePath, global.DefaultDirectoryPermission); err != nil {
			return ValidFailWith(fmt.Errorf("can not create archive directory %s", config.LocalStorePath), err)
		}
	case ALiYunOssStore, TencentCosStore:
		if config.Region == "" || config.Bucket == "" {
			return ValidFail(errors.New("invalid json field archive, region and bucket are required for remote store"))
		}
		if config.AccessId == "" || config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field archive, access_id and access_key are required for remote store"))
		}
	default:
		return ValidFail(fmt.Errorf("invalid json field archive.store_type, unknown store type %d", config.StoreType))
	}
	return ValidPass()
}
