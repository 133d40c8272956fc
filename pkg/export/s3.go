package export

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/loom-ui/loom/internal/errors"
)

// S3API is the subset of the S3 client the publisher uses. *s3.Client
// satisfies it.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads an exported directory to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	pub := export.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	keys, err := pub.PublishDir(ctx, "dist")
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Publisher creates a publisher for the given bucket. prefix is
// prepended to every object key; pass "" to upload at the bucket root.
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default().With("component", "export"),
	}
}

// PublishDir walks dir and uploads every regular file. It returns the
// object keys written, in walk order.
func (p *S3Publisher) PublishDir(ctx context.Context, dir string) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		key := p.ObjectKey(rel)
		if err := p.put(ctx, key, data, contentTypeFor(rel)); err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		if le, ok := err.(*errors.LoomError); ok {
			return keys, le
		}
		return keys, errors.New("E541").Wrap(err)
	}

	p.logger.Info("export published", "bucket", p.bucket, "objects", len(keys))
	return keys, nil
}

func (p *S3Publisher) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.New("E541").
			WithDetail("uploading %q failed", key).
			Wrap(err)
	}
	return nil
}

// ObjectKey maps a file path relative to the export directory to its
// object key under the configured prefix.
func (p *S3Publisher) ObjectKey(rel string) string {
	key := filepath.ToSlash(rel)
	if p.prefix == "" {
		return key
	}
	return strings.TrimSuffix(p.prefix, "/") + "/" + key
}

// contentTypeFor guesses a content type from the file extension.
func contentTypeFor(path string) string {
	ext := filepath.Ext(path)
	if ext == ".loom" {
		return "application/msgpack"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
