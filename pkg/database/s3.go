package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store keeps each document as <prefix>/<collection>/<id>.json in one bucket.
// Works with AWS S3 and S3-compatible services such as Cloudflare R2.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Store(ctx context.Context, u *url.URL, opts Options) (*S3Store, error) {
	bucket := u.Host
	if bucket == "" {
		return nil, errors.New("s3 url must name a bucket, e.g. s3://my-bucket")
	}
	prefix := strings.Trim(u.Path, "/")
	if prefix == "" {
		prefix = opts.DatabaseName
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.S3Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.S3Region))
	}
	if opts.S3AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.S3AccessKeyID,
			opts.S3SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if _, err := client.HeadBucket(timeoutCtx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return nil, fmt.Errorf("failed to reach bucket %s: %w", bucket, err)
	}

	return newS3Store(client, bucket, prefix), nil
}

func newS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *S3Store) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	if err := validCollection(collection); err != nil {
		return "", err
	}

	doc, err := document(payload, time.Now().UTC())
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(collection, id)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}
	return id, nil
}

// ListCollections returns the first-level "directories" under the prefix.
func (s *S3Store) ListCollections(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Delimiter: aws.String("/"),
	}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list collections: %w", err)
		}
		for _, p := range page.CommonPrefixes {
			if name := s.collectionName(aws.ToString(p.Prefix)); name != "" {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func (s *S3Store) Name() string {
	return s.bucket
}

func (s *S3Store) Close(context.Context) error {
	return nil
}

func (s *S3Store) objectKey(collection, id string) string {
	return path.Join(s.prefix, collection, id+".json")
}

func (s *S3Store) collectionName(commonPrefix string) string {
	name := strings.TrimPrefix(commonPrefix, s.prefix)
	return strings.Trim(name, "/")
}
