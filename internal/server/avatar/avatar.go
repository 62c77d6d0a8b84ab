// Package avatar resolves user avatar URLs. With S3 configured it hands
// out presigned GET URLs for objects under avatars/<id>; without it the
// repository's stored URL is passed through untouched.
package avatar

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/akimenko/userdesk/internal/logging"
	"github.com/akimenko/userdesk/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignTTL = 15 * time.Minute

// Resolver maps a user id and stored avatar URL to the URL served to
// clients.
type Resolver interface {
	Resolve(ctx context.Context, userID int, stored string) string
}

// StaticResolver returns the stored URL unchanged. Used when no S3
// bucket is configured.
type StaticResolver struct{}

func (StaticResolver) Resolve(_ context.Context, _ int, stored string) string {
	return stored
}

// S3Resolver presigns GET URLs for avatar objects. Presign failures fall
// back to the stored URL so a storage outage never breaks user listings.
type S3Resolver struct {
	cfg    config.S3Config
	logger logging.Logger
}

func NewS3Resolver(cfg config.S3Config, logger logging.Logger) *S3Resolver {
	return &S3Resolver{cfg: cfg, logger: logger}
}

func (r *S3Resolver) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(r.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			r.cfg.AccessKey,
			r.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if r.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(r.cfg.BaseEndpoint)
		}
	})

	return newS3PresignClient(client), nil
}

func (r *S3Resolver) Resolve(ctx context.Context, userID int, stored string) string {
	presignClient, err := r.getPresignClient(ctx)
	if err != nil {
		r.logger.Warn(ctx, "avatar presign unavailable", "error", err)
		return stored
	}

	key := fmt.Sprintf("avatars/%d", userID)

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &r.cfg.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		r.logger.Warn(ctx, "avatar presign failed", "user_id", userID, "error", err)
		return stored
	}

	return req.URL
}
