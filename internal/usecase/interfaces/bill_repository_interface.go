package interfaces

import (
	"context"
	"billed_backoffice/internal/domain/entities"
)

// IBillRepository abstracts DynamoDB persistence for Bill.
//
// The back-office service must be able to:
//   - create a provisional bill when the proof attachment is uploaded
//   - complete the bill with the remaining form fields (update by id)
//   - list the bills owned by an employee for the list view
//   - fetch a single bill for the proof preview

type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	Update(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Bill, error)
}
