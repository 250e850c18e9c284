package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/akarpovs/waygate/internal/server/models"
	"github.com/akarpovs/waygate/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/akarpovs/waygate/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// WaypointService serves waypoint reference data. Content bodies live in an
// S3-compatible object store; readers get a short-lived presigned GET URL
// instead of the bytes, so content never flows through the gRPC channel.
type WaypointService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewWaypointService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *WaypointService {
	return &WaypointService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// NewStorageKey returns a fresh object key for waypoint content.
func NewStorageKey() string {
	return fmt.Sprintf("waypoints/%v", uuid.New())
}

func (s *WaypointService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// GetPresignedGetUrl signs a GET URL for the given storage key, valid for
// the configured content URL lifetime.
func (s *WaypointService) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {
	client, err := s.getS3Client()
	if err != nil {
		return "", err
	}
	presignClient := newS3PresignClient(client)

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.ContentURLValidityDuration))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Get returns the waypoint together with a presigned URL for its content.
func (s *WaypointService) Get(ctx context.Context, id int64) (*models.Waypoint, string, error) {
	repo := s.repomanager.Waypoints(s.db)

	w, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	url, err := s.GetPresignedGetUrl(ctx, w.ContentKey)
	if err != nil {
		return nil, "", fmt.Errorf("error presigning content url: %v", err)
	}

	return w, url, nil
}

// List returns all waypoints in progression order. Content URLs are not
// included; callers fetch them per waypoint via Get.
func (s *WaypointService) List(ctx context.Context) ([]*models.Waypoint, error) {
	repo := s.repomanager.Waypoints(s.db)
	return repo.List(ctx)
}

// Create uploads the content body to object storage and then inserts the
// waypoint row pointing at it.
func (s *WaypointService) Create(ctx context.Context, orderIndex int64, title string, content []byte) (*models.Waypoint, error) {
	client, err := s.getS3Client()
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %v", err)
	}

	bucket := s.config.S3Bucket
	key := NewStorageKey()

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(content),
	}); err != nil {
		return nil, fmt.Errorf("error uploading content: %v", err)
	}

	repo := s.repomanager.Waypoints(s.db)
	w, err := repo.Create(ctx, &models.Waypoint{
		OrderIndex: orderIndex,
		Title:      title,
		ContentKey: key,
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}
