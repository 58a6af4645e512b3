package config

import (
	"fmt"
	"time"
)

const (
	StorageProviderAzure = "azure"
	StorageProviderS3    = "s3"
)

// StorageConfig selects and configures the blob store used for profile images.
type StorageConfig struct {
	Provider string `koanf:"provider" validate:"required,oneof=azure s3"`

	// DefaultProfileImageURL is stored for users who register without an image.
	DefaultProfileImageURL string `koanf:"default_profile_image_url" validate:"required,url"`

	Azure AzureStorageConfig `koanf:"azure"`
	S3    S3StorageConfig    `koanf:"s3"`
}

// AzureStorageConfig points at an Azure Storage account container.
type AzureStorageConfig struct {
	ConnectionString string `koanf:"connection_string"`
	Container        string `koanf:"container"`
}

// S3StorageConfig points at an S3-compatible bucket (AWS S3, DigitalOcean Spaces, MinIO).
//
// Endpoint is optional for AWS. PublicBaseURL is the prefix used to build
// object URLs returned to clients; when empty the virtual-hosted AWS URL is used.
type S3StorageConfig struct {
	Endpoint      string `koanf:"endpoint"`
	Region        string `koanf:"region"`
	Bucket        string `koanf:"bucket"`
	AccessKey     string `koanf:"access_key"`
	SecretKey     string `koanf:"secret_key"`
	PublicBaseURL string `koanf:"public_base_url"`
	UsePathStyle  bool   `koanf:"use_path_style"`
}

// Validate checks that the selected provider has its credentials.
func (c *StorageConfig) Validate() error {
	switch c.Provider {
	case StorageProviderAzure:
		if c.Azure.ConnectionString == "" {
			return fmt.Errorf("storage.azure.connection_string is required")
		}
		if c.Azure.Container == "" {
			return fmt.Errorf("storage.azure.container is required")
		}
	case StorageProviderS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket is required")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("storage.s3.region is required")
		}
		if c.S3.AccessKey == "" || c.S3.SecretKey == "" {
			return fmt.Errorf("storage.s3.access_key and storage.s3.secret_key are required")
		}
	default:
		return fmt.Errorf("unknown storage provider: %s", c.Provider)
	}
	return nil
}

// RateLimitConfig bounds how many requests one client IP may send per window.
type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests" validate:"min=0"`
	Window   time.Duration `koanf:"window"`
}
