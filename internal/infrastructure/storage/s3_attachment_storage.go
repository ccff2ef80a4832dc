package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const defaultAttachmentsBucket = "billed-attachments"

// S3AttachmentStorage stores proof-of-expense files in an S3 bucket.
//
// Objects are keyed <owner email>/<uuid><ext> so one employee's uploads
// never collide with another's. The returned URL is what the bill record
// keeps as file_url.

type S3AttachmentStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

var _ interfaces.IAttachmentStorage = (*S3AttachmentStorage)(nil)

func NewS3AttachmentStorage(client *s3.Client) *S3AttachmentStorage {
	return &S3AttachmentStorage{
		client:        client,
		bucket:        getenvDefault("ATTACHMENTS_BUCKET", defaultAttachmentsBucket),
		publicBaseURL: strings.TrimRight(getenvDefault("ATTACHMENTS_PUBLIC_BASE_URL", ""), "/"),
	}
}

func (s *S3AttachmentStorage) Upload(ctx context.Context, att entities.Attachment, ownerEmail string) (string, error) {
	key := path.Join(ownerEmail, uuid.NewString()+strings.ToLower(path.Ext(att.FileName)))
	log.Printf("[bills][storage] upload start bucket=%s key=%s size=%d", s.bucket, key, len(att.Content))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(att.Content),
	}
	if att.ContentType != "" {
		input.ContentType = aws.String(att.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Printf("[bills][storage] upload failed key=%s err=%v", key, err)
		return "", err
	}

	url := s.objectURL(key)
	log.Printf("[bills][storage] upload success key=%s url=%s", key, url)
	return url, nil
}

func (s *S3AttachmentStorage) objectURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
