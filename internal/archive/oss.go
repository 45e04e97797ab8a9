// Package archive
package archive

import (
	"bytes"
	"context"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
)

type ALiYunOssStore struct {
	logger     log.LoggerInterface
	localStore StoreInterface
	config     *c.ArchiveConfig
	client     *oss.Client
}

func NewALiYunOssStore(
	logger log.LoggerInterface,
	config *c.ArchiveConfig,
	localStore StoreInterface,
) *ALiYunOssStore {
	store := &ALiYunOssStore{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	store.client = oss.NewClient(cfg)
	return store
}

func (store *ALiYunOssStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if _, err := store.localStore.Save(ctx, name, data); err != nil {
		return "", err
	}

	key := remotePath(store.config, name)
	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(key),
		StorageClass: oss.StorageClassStandard,
		ContentType:  oss.Ptr("application/json"),
		Body:         bytes.NewReader(data),
	}
	if _, err := store.client.PutObject(ctx, putRequest); err != nil {
		store.logger.ErrorF("ALiYunOssStore.Save upload archive to remote storage error: %v", err)
		return "", err
	}
	return key, nil
}
