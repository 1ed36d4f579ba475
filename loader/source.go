package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/programme-lv/leaderboard/s3bucket"
)

// Source yields the raw body of one json resource.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: s.URL, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return io.ReadAll(resp.Body)
}

func (s HTTPSource) String() string { return s.URL }

type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.Path)
}

func (s FileSource) String() string { return s.Path }

// Downloader is implemented by *s3bucket.S3Bucket.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Name() string
}

type S3Source struct {
	Bucket Downloader
	Key    string
}

func (s S3Source) Fetch(ctx context.Context) ([]byte, error) {
	return s.Bucket.Download(ctx, s.Key)
}

func (s S3Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket.Name(), s.Key)
}

type SourceOptions struct {
	HTTPClient *http.Client
	AWSRegion  string
}

// NewSource picks a source implementation from the uri scheme: http(s)://,
// s3://bucket/key, file:// or a plain path.
func NewSource(ctx context.Context, uri string, opts SourceOptions) (Source, error) {
	switch {
	case uri == "":
		return nil, fmt.Errorf("empty resource uri")
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return HTTPSource{URL: uri, Client: opts.HTTPClient}, nil
	case strings.HasPrefix(uri, "s3://"):
		bucketName, key, err := s3bucket.ParseURI(uri)
		if err != nil {
			return nil, err
		}
		bucket, err := s3bucket.NewS3Bucket(ctx, opts.AWSRegion, bucketName)
		if err != nil {
			return nil, err
		}
		return S3Source{Bucket: bucket, Key: key}, nil
	case strings.HasPrefix(uri, "file://"):
		return FileSource{Path: strings.TrimPrefix(uri, "file://")}, nil
	case strings.Contains(uri, "://"):
		return nil, fmt.Errorf("unsupported resource uri %q", uri)
	default:
		return FileSource{Path: uri}, nil
	}
}
