// Package archive
package archive

import (
	"bytes"
	"context"
	"fmt"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/tencentyun/cos-go-sdk-v5"
	"net/http"
	"net/url"
	"strings"
)

type TencentCosStore struct {
	logger     log.LoggerInterface
	localStore StoreInterface
	config     *c.ArchiveConfig
	client     *cos.Client
}

func NewTencentCosStore(
	logger log.LoggerInterface,
	config *c.ArchiveConfig,
	localStore StoreInterface,
) (*TencentCosStore, error) {
	store := &TencentCosStore{logger: logger, localStore: localStore, config: config}
	bucketUrl, err := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	if err != nil {
		return nil, err
	}
	serviceUrl, err := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	if err != nil {
		return nil, err
	}
	baseUrl := &cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}
	store.client = cos.NewClient(baseUrl, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	return store, nil
}

func (store *TencentCosStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if _, err := store.localStore.Save(ctx, name, data); err != nil {
		return "", err
	}

	key := remotePath(store.config, name)
	options := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{ContentType: "application/json"},
	}
	if _, err := store.client.Object.Put(ctx, key, bytes.NewReader(data), options); err != nil {
		store.logger.ErrorF("TencentCosStore.Save upload archive to remote storage error: %v", err)
		return "", err
	}
	return key, nil
}
