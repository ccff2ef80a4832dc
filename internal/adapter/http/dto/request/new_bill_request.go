package request

import (
	"errors"
	"strconv"
	"strings"

	"billed_backoffice/internal/domain/entities"
)

var (
	ErrMissingUploadReceipt = errors.New("missing upload receipt")
	ErrInvalidExpenseType   = errors.New("invalid expense type")
	ErrInvalidAmount        = errors.New("invalid amount")
)

// NewBillRequest is the phase-2 payload completing a bill. It merges the
// form fields with the upload receipt returned by the attachment endpoint.
//
// Pct travels as a string on purpose: the form may leave it blank, and a
// blank or non-numeric value falls back to the default percentage instead
// of failing the bind.
type NewBillRequest struct {
	ID       string `json:"id" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
	FileName string `json:"file_name" binding:"required"`

	Type       string   `json:"type" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Amount     *float64 `json:"amount" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	VAT        float64  `json:"vat"`
	Pct        string   `json:"pct"`
	Commentary string   `json:"commentary"`
}

func (r NewBillRequest) ResolveReceiptID() string {
	return strings.TrimSpace(r.ID)
}

func (r NewBillRequest) ResolveType() (entities.ExpenseType, error) {
	t := entities.ExpenseType(strings.TrimSpace(r.Type))
	if !t.Valid() {
		return "", ErrInvalidExpenseType
	}
	return t, nil
}

func (r NewBillRequest) ResolveAmount() (float64, error) {
	if r.Amount == nil || *r.Amount < 0 {
		return 0, ErrInvalidAmount
	}
	return *r.Amount, nil
}

// ResolvePct parses the VAT percentage, defaulting to 20 when the field is
// blank or not a number.
func (r NewBillRequest) ResolvePct() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Pct), 64)
	if err != nil || v <= 0 {
		return entities.DefaultVATPct
	}
	return v
}
