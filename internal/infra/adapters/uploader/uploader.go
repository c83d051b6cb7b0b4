// uploader publishes generated feeds and media to Amazon S3.
// Implements the ports.ForUploading interface.
package uploader

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/gabriel-vasile/mimetype"
	"github.com/podserve/podcastify/internal/app/humanreadable"
	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
)

type forUploading struct {
	bucket  string
	session *session.Session
}

// New returns an S3 uploader targeting bucket, satisfying the
// ports.ForUploading port interface. Profile and region may be empty to
// use the SDK defaults.
func New(profile, region, bucket string) ports.ForUploading {
	s := session.Must(session.NewSessionWithOptions(session.Options{
		Profile: profile,
		Config: aws.Config{
			Region: aws.String(region),
		},
	}))
	return &forUploading{
		bucket:  bucket,
		session: s,
	}
}

// Upload stores r.From as r.Key in the bucket. When ContentType is
// empty it is detected from the file content.
func (u *forUploading) Upload(ctx context.Context, r *ports.ForUploadingRequest) error {
	l := logger.FromContext(ctx)
	if r == nil {
		return ports.ErrNilPointerRequest
	}
	if strings.TrimSpace(r.From) == "" {
		return ports.ErrFilenameMissing
	}
	if strings.TrimSpace(r.Key) == "" {
		r.Key = path.Base(r.From)
	}
	if strings.TrimSpace(r.ContentType) == "" {
		contentType, err := getContentType(r.From)
		if err != nil {
			return err
		}
		r.ContentType = contentType
	}

	fi, err := os.Stat(r.From)
	if err != nil {
		return err
	}
	s3path := "s3://" + path.Join(u.bucket, r.Key)
	l.Info("Uploading to S3", "file", r.From, "to", s3path,
		"size", fi.Size(), "humanSize", humanreadable.IEC(fi.Size()))

	f, err := os.Open(r.From)
	if err != nil {
		return err
	}
	defer f.Close()
	up := s3manager.NewUploader(u.session)
	result, err := up.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(r.Key),
		ContentType: aws.String(r.ContentType),
		Body:        f,
	})
	if err != nil {
		return err
	}
	l.Info("Upload succeeded", "location", aws.StringValue(&result.Location))
	return nil
}

// SetLimit mutates mimetype's package-global read limit, so set it
// once instead of on every detection.
func init() {
	mimetype.SetLimit(1024 * 1024)
}

func getContentType(filename string) (string, error) {
	mimeType, err := mimetype.DetectFile(filename)
	if err != nil {
		return "", err
	}
	return mimeType.String(), nil
}
