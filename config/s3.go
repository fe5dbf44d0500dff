package config

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore describes where uploaded objects live and how they are addressed publicly.
type ObjectStore struct {
	Client  *s3.Client
	Bucket  string
	BaseURL string
}

func NewObjectStore(ctx context.Context) (*ObjectStore, error) {
	endpoint := os.Getenv("S3_ENDPOINT")

	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(GetEnv("S3_REGION", "auto")),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				os.Getenv("S3_ACCESS_KEY"),
				os.Getenv("S3_SECRET_KEY"),
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &ObjectStore{
		Client:  client,
		Bucket:  GetEnv("S3_BUCKET", "foodrun"),
		BaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}, nil
}
