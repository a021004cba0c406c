package s3

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AvatarPresigner hands out short-lived upload URLs so clients can push a
// custom avatar straight to the bucket without the image passing through the
// API.
type AvatarPresigner struct {
	presignClient *s3.PresignClient
	Endpoint      string
	BucketName    string
}

func NewAvatarPresigner() (*AvatarPresigner, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("AWS_REGION")
	bucketName := os.Getenv("S3_BUCKET_NAME")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	usePathStyle := os.Getenv("S3_USE_PATH_STYLE") == "true"

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpoint,
			SigningRegion:     region,
			HostnameImmutable: true,
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithRegion(region),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)

	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})

	return &AvatarPresigner{
		presignClient: s3.NewPresignClient(s3Client),
		Endpoint:      endpoint,
		BucketName:    bucketName,
	}, nil
}

func (p *AvatarPresigner) PresignUpload(objectKey string) (string, error) {
	request, err := p.presignClient.PresignPutObject(
		context.TODO(),
		&s3.PutObjectInput{
			Bucket: aws.String(p.BucketName),
			Key:    aws.String(objectKey),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = 15 * time.Minute
		},
	)

	if err != nil {
		return "", err
	}

	return request.URL, nil
}

// ObjectURL is where the avatar will be reachable once the client completes
// the presigned upload.
func (p *AvatarPresigner) ObjectURL(objectKey string) string {
	return p.Endpoint + "/" + p.BucketName + "/" + objectKey
}
