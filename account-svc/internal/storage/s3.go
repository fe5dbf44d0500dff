package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"foodrun/account-svc/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of *s3.Client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3PictureStore struct {
	Client  ObjectPutter
	Bucket  string
	BaseURL string
}

func NewS3PictureStore(client ObjectPutter, bucket, baseURL string) *S3PictureStore {
	return &S3PictureStore{Client: client, Bucket: bucket, BaseURL: strings.TrimRight(baseURL, "/")}
}

var _ service.PictureStore = (*S3PictureStore)(nil)

func (s *S3PictureStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.BaseURL, key), nil
}
