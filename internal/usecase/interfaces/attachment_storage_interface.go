package interfaces

import (
	"context"
	"billed_backoffice/internal/domain/entities"
)

// IAttachmentStorage abstracts the object store holding proof-of-expense
// files (e.g. S3). Upload returns the public URL the bill record keeps.
type IAttachmentStorage interface {
	Upload(ctx context.Context, att entities.Attachment, ownerEmail string) (fileURL string, err error)
}
