package media

import (
	"context"
	"fmt"
	appcfg "go-stream-api/config"
	"go-stream-api/logger"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

// S3Uploader implements Uploader against any S3-compatible store (AWS or
// MinIO via base_endpoint).
type S3Uploader struct {
	presign  *s3.PresignClient
	bucket   string
	endpoint string
}

func NewS3Uploader(cfg *appcfg.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.BaseEndpoint)
		}
	})

	logger.Log.WithField("bucket", cfg.S3.Bucket).Info("Media storage client initialized")
	return &S3Uploader{
		presign:  s3.NewPresignClient(client),
		bucket:   cfg.S3.Bucket,
		endpoint: strings.TrimSuffix(cfg.S3.BaseEndpoint, "/"),
	}, nil
}

func (u *S3Uploader) PresignPut(ctx context.Context, prefix string) (string, string, error) {
	key := storageKey(prefix)

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to presign media upload")
		return "", "", err
	}

	return key, req.URL, nil
}

func (u *S3Uploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
}
