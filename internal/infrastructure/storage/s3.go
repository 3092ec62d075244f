package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"radsafe-backend/internal/config"
	"radsafe-backend/pkg/id"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader puts facility attachments into a single bucket.
type S3Uploader struct {
	client           putObjectAPI
	bucket           string
	region           string
	endpoint         string
	cloudFrontDomain string
	now              func() time.Time
}

func NewS3Uploader(ctx context.Context, cfg config.S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	// no static keys: fall back to the default chain (env, profile, IAM role)
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// MinIO / localstack
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Uploader(client, cfg), nil
}

func newS3Uploader(client putObjectAPI, cfg config.S3Config) *S3Uploader {
	return &S3Uploader{
		client:           client,
		bucket:           cfg.Bucket,
		region:           cfg.Region,
		endpoint:         strings.TrimRight(cfg.Endpoint, "/"),
		cloudFrontDomain: cfg.CloudFrontDomain,
		now:              time.Now,
	}
}

// Upload stores body under a fresh object key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := ObjectKey(u.now().UTC(), filename)
	in := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := u.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return u.URL(key), nil
}

func (u *S3Uploader) URL(key string) string {
	switch {
	case u.cloudFrontDomain != "":
		return fmt.Sprintf("https://%s/%s", u.cloudFrontDomain, key)
	case u.endpoint != "":
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	}
}

// ObjectKey is attachments/<yyyy>/<mm>/<32 hex><ext>. The client's file
// name only contributes its lowercased extension.
func ObjectKey(now time.Time, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("attachments/%04d/%02d/%s%s", now.Year(), int(now.Month()), id.NewID32(), ext)
}
