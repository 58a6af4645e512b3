package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"github.com/deppfellow/recipebox/internal/config"
)

type azureUploader interface {
	UploadStream(ctx context.Context, containerName, blobName string, body io.Reader, o *azblob.UploadStreamOptions) (azblob.UploadStreamResponse, error)
}

// AzureStore writes blobs into a single container.
type AzureStore struct {
	client     azureUploader
	serviceURL string
	container  string
}

// NewAzureStore connects with the account connection string.
func NewAzureStore(cfg config.AzureStorageConfig) (*AzureStore, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("creating azure blob client: %w", err)
	}

	return &AzureStore{
		client:     client,
		serviceURL: client.URL(),
		container:  cfg.Container,
	}, nil
}

func (s *AzureStore) Provider() string {
	return config.StorageProviderAzure
}

// Upload streams obj into the container and returns
// <service url>/<container>/<key>.
func (s *AzureStore) Upload(ctx context.Context, obj Object) (string, error) {
	contentType := obj.ContentType
	_, err := s.client.UploadStream(ctx, s.container, obj.Key, obj.Body, &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return "", fmt.Errorf("uploading blob %s to container %s: %w", obj.Key, s.container, err)
	}

	return s.objectURL(obj.Key)
}

func (s *AzureStore) objectURL(key string) (string, error) {
	u, err := url.Parse(s.serviceURL)
	if err != nil {
		return "", fmt.Errorf("parsing blob service url: %w", err)
	}
	// SAS tokens from the connection string must not leak into public URLs.
	u.RawQuery = ""

	return u.JoinPath(s.container, key).String(), nil
}
