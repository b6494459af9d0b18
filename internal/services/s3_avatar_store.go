package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"contacts-api/config"
	"contacts-api/internal/utils"
)

const s3AvatarPrefix = "avatars/"

type S3AvatarStore struct {
	s3Client s3iface.S3API
	config   *config.S3Config
}

func NewS3AvatarStore(cfg *config.S3Config) (*S3AvatarStore, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.ServiceUrl != "" {
		awsCfg.Endpoint = aws.String(cfg.ServiceUrl)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating S3 session: %w", err)
	}

	return newS3AvatarStore(s3.New(sess), cfg), nil
}

func newS3AvatarStore(client s3iface.S3API, cfg *config.S3Config) *S3AvatarStore {
	return &S3AvatarStore{s3Client: client, config: cfg}
}

func (s *S3AvatarStore) bucketURL() string {
	if s.config.BucketUrl != "" {
		return strings.TrimSuffix(s.config.BucketUrl, "/")
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com", s.config.BucketName)
}

func (s *S3AvatarStore) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	key := s3AvatarPrefix + avatarFileName(header)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	utils.LogInfo("Uploading avatar to S3: %s", key)

	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading avatar to S3: %w", err)
	}

	return s.bucketURL() + "/" + key, nil
}

func (s *S3AvatarStore) Owns(avatar string) bool {
	return strings.HasPrefix(avatar, s.bucketURL()+"/"+s3AvatarPrefix)
}

func (s *S3AvatarStore) Remove(ctx context.Context, avatar string) error {
	if !s.Owns(avatar) {
		return fmt.Errorf("avatar %q is not managed by this store", avatar)
	}
	key := strings.TrimPrefix(avatar, s.bucketURL()+"/")

	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting avatar from S3: %w", err)
	}
	return nil
}
