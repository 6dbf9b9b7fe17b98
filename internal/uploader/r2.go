package uploader

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"luxemart/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadTimeout bounds a single object upload.
const UploadTimeout = 60 * time.Second

// R2 uploads images to a Cloudflare R2 bucket through the S3 API.
type R2 struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewR2 builds the client once from the environment:
// BUCKET_NAME, REGION ("auto" for R2), R2_ENDPOINT, ACCESS_KEY, SECRET_KEY,
// PUBLIC_BASE_URL (the bucket's public serving domain).
func NewR2(ctx context.Context) (*R2, error) {
	bucketName := os.Getenv("BUCKET_NAME")
	region := os.Getenv("REGION")
	r2Endpoint := os.Getenv("R2_ENDPOINT")
	accessKey := os.Getenv("ACCESS_KEY")
	secretKey := os.Getenv("SECRET_KEY")
	publicBase := os.Getenv("PUBLIC_BASE_URL")

	if bucketName == "" || r2Endpoint == "" {
		return nil, fmt.Errorf("uploader: BUCKET_NAME and R2_ENDPOINT must be set")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		config.WithEndpointResolver(aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
			return aws.Endpoint{URL: r2Endpoint, SigningRegion: region}, nil
		})),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("uploader: load config: %w", err)
	}

	return &R2{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucketName,
		publicBase: publicBase,
	}, nil
}

func (u *R2) Upload(ctx context.Context, r io.Reader, folder string) (models.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return models.Photo{}, fmt.Errorf("uploader: put object: %w", err)
	}

	return models.Photo{
		URL:      fmt.Sprintf("%s/%s", u.publicBase, key),
		PublicID: key,
	}, nil
}
