package etl

import (
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// IsS3Path reports whether the input source is an s3://bucket/key URL.
func IsS3Path(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// FetchFromS3 downloads the dataset export from S3 into a temp file and
// returns its path. Credentials and region come from the environment, same
// variables the deployment sets for the rest of the app.
func FetchFromS3(s3Path string) (string, error) {
	trimmed := strings.TrimPrefix(s3Path, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", errors.Errorf("invalid s3 path: %s", s3Path)
	}
	bucket, key := parts[0], parts[1]

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	if accessKey == "" || secretKey == "" || region == "" {
		return "", errors.New("AWS credentials or region not set in environment")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return "", errors.Wrap(err, "create AWS session")
	}
	svc := s3.New(sess)

	log.WithFields(log.Fields{"bucket": bucket, "key": key}).Info("Downloading dataset from S3")
	object, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", errors.Wrap(err, "get object from S3")
	}
	defer object.Body.Close()

	tmp, err := os.CreateTemp("", "saber_pro_*.csv")
	if err != nil {
		return "", errors.Wrap(err, "create temp file")
	}
	if _, err := io.Copy(tmp, object.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "download object")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "close temp file")
	}
	return tmp.Name(), nil
}
