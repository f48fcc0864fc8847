package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API used by S3Fetcher.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config describes the bucket holding the published site.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"eu-central-2"`
	Prefix         string `env:"S3_PREFIX"` // key prefix of the site root, e.g. "site/"
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"` // for S3-compatible services
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

// S3Option configures an S3Fetcher.
type S3Option func(*s3Options)

type s3Options struct {
	client      S3Client
	httpClient  *http.Client
	maxBodySize int64
}

// WithS3Client uses a pre-configured client (tests, custom middleware).
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithS3HTTPClient sets the HTTP client used by the SDK.
func WithS3HTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

// S3Fetcher reads references as object keys below a bucket prefix.
type S3Fetcher struct {
	client      S3Client
	bucket      string
	prefix      string
	maxBodySize int64
}

// NewS3Fetcher builds a fetcher for cfg.Bucket.
func NewS3Fetcher(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Fetcher, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}

	o := &s3Options{maxBodySize: defaultMaxBodySize}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		client = s3.NewFromConfig(awsConfig, func(so *s3.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &S3Fetcher{
		client:      client,
		bucket:      cfg.Bucket,
		prefix:      prefix,
		maxBodySize: o.maxBodySize,
	}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, ref string, mode CacheMode) ([]byte, error) {
	if IsAbsoluteURL(ref) {
		return nil, ErrUnsupportedRef
	}
	name := fsPath(ref)
	if name == "" {
		return nil, notFound(ref)
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.prefix + name),
	}
	if mode == CacheBypass {
		input.ResponseCacheControl = aws.String("no-cache")
	}

	out, err := f.client.GetObject(ctx, input)
	if err != nil {
		return nil, classifyS3Error(ref, err)
	}
	defer out.Body.Close()

	return readLimited(ref, out.Body, f.maxBodySize)
}

// classifyS3Error maps S3 failures onto StatusError where a status applies.
func classifyS3Error(ref string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrFetch, err)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return notFound(ref)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return notFound(ref)
		case "AccessDenied":
			return &StatusError{Ref: ref, Code: http.StatusForbidden}
		case "SlowDown", "ServiceUnavailable":
			return &StatusError{Ref: ref, Code: http.StatusServiceUnavailable}
		}
		return fmt.Errorf("%w (code: %s): %w", ErrFetch, apiErr.ErrorCode(), err)
	}

	return errors.Join(ErrFetch, err)
}
