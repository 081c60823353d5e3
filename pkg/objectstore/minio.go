// Package objectstore keeps named slots as objects in a MinIO (or any
// S3-compatible) bucket.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/campuslost/lostfound/pkg/config"
)

const (
	slotPrefix      = "slots/"
	slotContentType = "application/json"
)

// Client wraps minio.Client bound to a single bucket.
type Client struct {
	client *minio.Client
	bucket string
}

// NewClient connects to cfg.MinioEndpoint and creates cfg.MinioBucket if it
// does not exist yet.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	mc, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	c := &Client{client: mc, bucket: cfg.MinioBucket}

	ensureCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.ensureBucket(ensureCtx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket: %w", err)
	}
	return c, nil
}

func (c *Client) ensureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}

// Ping checks that the bucket is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.BucketExists(ctx, c.bucket); err != nil {
		return fmt.Errorf("minio ping: %w", err)
	}
	return nil
}

// Get reads the slot object. A missing object is reported as found=false.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get slot object: %w", err)
	}
	defer obj.Close() //nolint:errcheck

	// GetObject is lazy; a missing key only surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot object: %w", err)
	}
	return string(data), true, nil
}

// Set replaces the slot object.
func (c *Client) Set(ctx context.Context, key, value string) error {
	_, err := c.client.PutObject(ctx, c.bucket, objectName(key), strings.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: slotContentType,
		UserMetadata: map[string]string{
			"written-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("put slot object: %w", err)
	}
	return nil
}

func objectName(key string) string {
	return slotPrefix + key + ".json"
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
