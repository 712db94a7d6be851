package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	cfg "github.com/maheshrc27/postdeck/configs"
	"github.com/maheshrc27/postdeck/internal/lifecycle"
	"github.com/maheshrc27/postdeck/internal/store"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Post images only; video belongs to the platforms we do not deliver to.
var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {},
}

type MediaService interface {
	// UploadImage stores the image bytes and returns the public URL to use
	// as a post's imageUrl.
	UploadImage(ctx context.Context, file []byte) (string, error)
}

type mediaService struct {
	config cfg.Config
}

func NewMediaService(config cfg.Config) MediaService {
	return &mediaService{config: config}
}

func (s *mediaService) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.config.R2.AccessKey, s.config.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.config.R2.AccountID))
	}), nil
}

func (s *mediaService) UploadImage(ctx context.Context, file []byte) (string, error) {
	kind, err := filetype.Match(file)
	if err != nil || kind == types.Unknown {
		return "", lifecycle.NewValidationError("unrecognized file type")
	}
	if _, ok := allowedImageTypes[kind.Extension]; !ok {
		return "", lifecycle.NewValidationError(fmt.Sprintf("file type %s is not allowed", kind.Extension))
	}

	key, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", store.Transient("creating storage client", err)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(kind.MIME.Value),
	})
	if err != nil {
		slog.Info(err.Error())
		return "", store.Transient("uploading image", err)
	}

	return fmt.Sprintf("%s/%s", s.config.R2.PublicURL, key), nil
}
