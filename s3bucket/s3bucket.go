package s3bucket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Bucket gives read access to the objects of one bucket.
type S3Bucket struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Bucket(ctx context.Context, region string, bucket string) (*S3Bucket, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3Bucket{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (bucket *S3Bucket) Name() string {
	return bucket.bucket
}

// StatusError is returned when S3 answers with a non-success HTTP status.
type StatusError struct {
	Key        string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("s3 object %q: status %d: %v", e.Key, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func (bucket *S3Bucket) Download(ctx context.Context, key string) ([]byte, error) {
	output, err := bucket.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket.bucket,
		Key:    &key,
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) {
			return nil, &StatusError{Key: key, StatusCode: responseError.HTTPStatusCode(), Err: err}
		}
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	defer output.Body.Close()

	content, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return content, nil
}

// ParseURI splits s3://bucket/some/key into bucket and key.
func ParseURI(uri string) (bucket string, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 uri %q: %w", uri, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid s3 uri %q: scheme must be s3", uri)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q: bucket and key are required", uri)
	}
	return u.Host, key, nil
}
