package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogql/internal/common"
	"github.com/dmitrijs2005/blogql/internal/server/auth"
	sc "github.com/dmitrijs2005/blogql/internal/server/config"
	"github.com/dmitrijs2005/blogql/internal/server/models"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const uploadURLValidity = 15 * time.Minute

var (
	timeNow = time.Now

	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// ImageService hands out presigned S3 upload URLs for post images.
type ImageService struct {
	config *sc.Config
}

func NewImageService(config *sc.Config) *ImageService {
	return &ImageService{config: config}
}

// storageKey returns a fresh object key under the user's prefix,
// partitioned by upload date.
func storageKey(userID int64) string {
	d := timeNow().UTC()
	return fmt.Sprintf("posts/%d/%04d/%02d/%02d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		// Path-style addressing, as MinIO expects.
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// publicURL is where the object is served from once the upload completes.
func (s *ImageService) publicURL(key string) string {
	return strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket + "/" + key
}

// CreateUpload presigns a PUT for a new object owned by the identity. The
// returned ImageURL is what clients pass as imageUrl on create or update.
func (s *ImageService) CreateUpload(ctx context.Context, identity auth.Identity, contentType *string) (*models.ImageUpload, error) {

	userID, ok := identity.UserID()
	if !ok {
		return nil, ErrAuthRequired
	}

	if s.config.S3Bucket == "" {
		return nil, ErrUploadsDisabled
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, common.Internal(fmt.Errorf("error creating presign client: %w", err))
	}

	bucket := s.config.S3Bucket
	key := storageKey(userID)

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != nil && *contentType != "" {
		in.ContentType = contentType
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(uploadURLValidity))
	if err != nil {
		return nil, common.Internal(fmt.Errorf("error presigning upload: %w", err))
	}

	return &models.ImageUpload{
		UploadURL: req.URL,
		ImageURL:  s.publicURL(key),
	}, nil
}
