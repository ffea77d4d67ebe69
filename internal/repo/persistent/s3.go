package persistent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andreyxaxa/Image-Hosting/internal/entity"
	"github.com/andreyxaxa/Image-Hosting/pkg/s3client"
	"github.com/andreyxaxa/Image-Hosting/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type ImageRepo struct {
	*s3client.S3Client
	bucket string
}

func NewImageRepo(s3c *s3client.S3Client, bucket string) *ImageRepo {
	return &ImageRepo{s3c, bucket}
}

func (r *ImageRepo) EnsureBucket(ctx context.Context) error {
	_, err := r.Client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return nil
		}

		return fmt.Errorf("ImageRepo - EnsureBucket - r.Client.CreateBucket: %w", err)
	}

	return nil
}

func (r *ImageRepo) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("ImageRepo - Upload - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *ImageRepo) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	b := bytes.NewReader(data)

	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          b,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("ImageRepo - UploadBytes - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *ImageRepo) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("ImageRepo - Download: %w", errs.ErrObjectNotFound)
		}

		return nil, fmt.Errorf("ImageRepo - Download - r.Client.GetObject: %w", err)
	}

	return result.Body, nil
}

func (r *ImageRepo) DownloadBytes(ctx context.Context, key string) ([]byte, error) {
	body, err := r.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("ImageRepo - DownloadBytes: %w", err)
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("ImageRepo - DownloadBytes - io.ReadAll: %w", err)
	}

	return b, nil
}

func (r *ImageRepo) List(ctx context.Context) ([]entity.StoredObject, error) {
	var objects []entity.StoredObject

	paginator := s3.NewListObjectsV2Paginator(r.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			var noSuchBucket *types.NoSuchBucket
			if errors.As(err, &noSuchBucket) {
				return nil, fmt.Errorf("ImageRepo - List: %w", errs.ErrBucketNotFound)
			}

			return nil, fmt.Errorf("ImageRepo - List - paginator.NextPage: %w", err)
		}

		for _, obj := range page.Contents {
			objects = append(objects, entity.StoredObject{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: obj.LastModified,
			})
		}
	}

	return objects, nil
}

func (r *ImageRepo) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}

		return false, fmt.Errorf("ImageRepo - Exists - r.Client.HeadObject: %w", err)
	}

	return true, nil
}

func (r *ImageRepo) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(r.Endpoint(), "/"), r.bucket, key)
}
