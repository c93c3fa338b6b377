package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dshills/herald/internal/config"
	"github.com/dshills/herald/internal/log"
)

// S3 publishes by uploading the file as <slug>/index.html to a bucket. The
// content type is fixed to text/html so browsers render rather than
// download.
type S3 struct {
	cfg *config.S3Config
	out io.Writer
}

func newS3(cfg config.Config, out io.Writer) (Publisher, error) {
	if cfg.S3 == nil {
		return nil, &configError{err: errors.New("configuration for provider 's3' is missing in json.")}
	}
	if err := cfg.S3.Validate(); err != nil {
		return nil, &configError{err: err}
	}
	return &S3{cfg: cfg.S3, out: out}, nil
}

func (p *S3) Name() string { return config.ProviderS3 }

func (p *S3) Publish(ctx context.Context, localPath, slug string) (string, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return "", &dependencyError{err: fmt.Errorf("initializing s3 client: %w", err)}
	}

	key := slug + "/index.html"
	fmt.Fprintf(p.out, "--> [s3] uploading to %s/%s...\n", p.cfg.Bucket, key)

	body, err := os.ReadFile(localPath)
	if err != nil {
		return "", &uploadError{err: fmt.Errorf("reading %s: %w", localPath, err)}
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/html"),
		ACL:         types.ObjectCannedACL(p.cfg.ACLOrDefault()),
	})
	if err != nil {
		return "", &uploadError{err: fmt.Errorf("uploading to %s/%s: %w", p.cfg.Bucket, key, err)}
	}

	log.Debug().Str("bucket", p.cfg.Bucket).Str("key", key).Msg("s3 publish complete")
	return "s3://" + p.cfg.Bucket + "/" + key, nil
}

func (p *S3) newClient(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := p.loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	var s3Opts []func(*s3.Options)
	if p.cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(p.cfg.Endpoint)
		})
	}
	if p.cfg.PathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}
	return s3.NewFromConfig(awsCfg, s3Opts...), nil
}

func (p *S3) loadAWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(p.cfg.RegionOrDefault()),
	}
	if p.cfg.AccessKey != "" && p.cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.cfg.AccessKey, p.cfg.SecretKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// CheckS3 verifies that the AWS credential chain can supply credentials for
// the given section. The doctor command uses it; publishing itself lets the
// SDK resolve credentials at upload time.
func CheckS3(ctx context.Context, cfg *config.S3Config) error {
	p := &S3{cfg: cfg, out: io.Discard}
	awsCfg, err := p.loadAWSConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading aws configuration: %w", err)
	}
	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return fmt.Errorf("resolving aws credentials: %w", err)
	}
	return nil
}
