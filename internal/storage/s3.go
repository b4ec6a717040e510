package storage

import (
	"context"
	"fmt"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/venkatesh141/Ecom/config"
)

// ImageStore uploads product images and returns their public URL.
type ImageStore interface {
	SaveImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// S3ImageStore stores images in an S3 bucket.
type S3ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3ImageStore(ctx context.Context, cfg *appconfig.AWSConfig) (*S3ImageStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	// Static keys from config when given, the default chain otherwise.
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awscfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3ImageStore{
		client: s3.NewFromConfig(awscfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// SaveImage uploads under the original filename and returns the bucket URL.
func (s *S3ImageStore) SaveImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &filename,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload image to s3 bucket: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, filename), nil
}
