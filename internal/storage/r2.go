// Package storage pushes finished exports to an S3-compatible bucket
// (Cloudflare R2) so review sheets can be shared by URL instead of
// copied around.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "menulens/internal/config"
)

type R2Client struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewR2Client(ctx context.Context, cfg appconfig.R2Config) (*R2Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
		),
		awsconfig.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:           cfg.Endpoint,
							SigningRegion: "auto",
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &R2Client{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL,
	}, nil
}

var contentTypes = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".json": "application/json",
}

// UploadFile puts a local export under the given key and returns its
// public URL.
func (r *R2Client) UploadFile(ctx context.Context, key, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	input := &s3.PutObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
		Body:   f,
	}
	if ct, ok := contentTypes[filepath.Ext(localPath)]; ok {
		input.ContentType = &ct
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}
