package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/peakjoin/blobstore"
)

const (
	// Part size above the SDK default of 5MB for better throughput on
	// large result sets.
	defaultPartSize = 8 * 1024 * 1024

	// Concurrency matches the SDK default.
	defaultConcurrency = 5
)

// Options configures a Store.
type Options struct {
	// PartSize is the multipart upload part size in bytes.
	PartSize int64
	// Concurrency is the number of parts uploaded in parallel.
	Concurrency int
	// StorageClass applies to every uploaded blob when set.
	StorageClass types.StorageClass
	// SSE selects server side encryption for uploaded blobs when set.
	SSE types.ServerSideEncryption
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{
	PartSize:    defaultPartSize,
	Concurrency: defaultConcurrency,
}

// Store implements blobstore.Store for Amazon S3.
type Store struct {
	client       Client
	uploader     *manager.Uploader
	bucket       string
	prefix       string
	storageClass types.StorageClass
	sse          types.ServerSideEncryption
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "peakjoin/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...func(o *Options)) *Store {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = opts.PartSize
		u.Concurrency = opts.Concurrency
	})

	return &Store{
		client:       client,
		uploader:     uploader,
		bucket:       bucket,
		prefix:       rootPrefix,
		storageClass: opts.StorageClass,
		sse:          opts.SSE,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put uploads a blob. Blobs above the part size are uploaded as parallel
// multipart requests.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(data),
	}
	if s.storageClass != "" {
		input.StorageClass = s.storageClass
	}
	if s.sse != "" {
		input.ServerSideEncryption = s.sse
	}

	_, err := s.uploader.Upload(ctx, input)
	return err
}

// Get downloads a whole blob.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return io.ReadAll(resp.Body)
}

// Delete removes a blob. S3 deletes are idempotent, so deleting a missing
// blob succeeds.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

// List pages through all keys under the prefix and returns them sorted,
// relative to the store's root prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" {
				keys = append(keys, name)
			}
		}
	}

	sort.Strings(keys)
	return keys, nil
}

// Exists issues a HeadObject request.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// isNotFound reports whether err marks a missing object. HeadObject
// surfaces types.NotFound while GetObject surfaces types.NoSuchKey.
func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}
