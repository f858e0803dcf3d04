package images

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sweetrecords/storefront/pkg/config"
)

type S3Store struct {
	client   *s3.Client
	endpoint string
	bucket   string
}

func NewS3Store(ctx context.Context, cfg config.ImagesConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true // MinIO and most S3-compatible stores
	})

	return &S3Store{
		client:   client,
		endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
		bucket:   cfg.S3Bucket,
	}, nil
}

func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("products/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.NewString())
}

func (s *S3Store) Upload(ctx context.Context, contentType string, body io.Reader) (string, error) {
	key := storageKey()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}
