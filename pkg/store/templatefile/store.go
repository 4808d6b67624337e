// Package templatefile reads and writes whole template and lens files.
// Locations are local paths or s3://bucket/key URIs.
package templatefile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const s3Scheme = "s3://"

type Store interface {
	Read(ctx context.Context, location string) ([]byte, error)
	Write(ctx context.Context, location string, data []byte) error
}

// ObjectAPI is the subset of the S3 client used for s3:// locations.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type store struct {
	objects ObjectAPI
}

// NewStore returns a Store; objects may be nil when S3 locations are not needed.
func NewStore(objects ObjectAPI) Store {
	return &store{objects: objects}
}

func NewFromConfig(cfg aws.Config) Store {
	return NewStore(s3.NewFromConfig(cfg))
}

func (s *store) Read(ctx context.Context, location string) ([]byte, error) {
	bucket, key, ok := splitS3(location)
	if !ok {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}
		return data, nil
	}

	if s.objects == nil {
		return nil, fmt.Errorf("no S3 client configured for %s", location)
	}

	zerolog.Ctx(ctx).Debug().Str("bucket", bucket).Str("key", key).Msg("reading object")
	out, err := s.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", location, err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close object body")
		}
	}(out.Body)

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}

func (s *store) Write(ctx context.Context, location string, data []byte) error {
	bucket, key, ok := splitS3(location)
	if !ok {
		if err := os.WriteFile(location, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", location, err)
		}
		return nil
	}

	if s.objects == nil {
		return fmt.Errorf("no S3 client configured for %s", location)
	}

	zerolog.Ctx(ctx).Debug().Str("bucket", bucket).Str("key", key).Msg("writing object")
	_, err := s.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/yaml"),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", location, err)
	}
	return nil
}

func splitS3(location string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(location, s3Scheme) {
		return "", "", false
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(location, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
