package response

import (
	"time"

	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase"
)

// DisplayBillResponse is one row of the bill list view.

type DisplayBillResponse struct {
	ID              string  `json:"id"`
	DisplayDate     string  `json:"display_date"`
	RawDate         string  `json:"raw_date"`
	DateParseFailed bool    `json:"date_parse_failed"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"status_label"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	FileURL         string  `json:"file_url,omitempty"`
	FileName        string  `json:"file_name,omitempty"`
}

type BillListResponse struct {
	Bills []DisplayBillResponse `json:"bills"`
}

func FromDisplayBill(d usecase.DisplayBill) DisplayBillResponse {
	return DisplayBillResponse{
		ID:              d.ID,
		DisplayDate:     d.DisplayDate,
		RawDate:         d.RawDate,
		DateParseFailed: d.DateParseFailed,
		Status:          string(d.Status),
		StatusLabel:     d.StatusLabel,
		Amount:          d.Amount,
		Type:            string(d.Type),
		Name:            d.Name,
		FileURL:         d.FileURL,
		FileName:        d.FileName,
	}
}

func FromDisplayBills(items []usecase.DisplayBill) BillListResponse {
	out := BillListResponse{Bills: make([]DisplayBillResponse, 0, len(items))}
	for _, d := range items {
		out.Bills = append(out.Bills, FromDisplayBill(d))
	}
	return out
}

// BillResponse is the full record, used by the proof preview and as the
// submit confirmation.

type BillResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Date       string    `json:"date"`
	VAT        float64   `json:"vat,omitempty"`
	Pct        float64   `json:"pct"`
	Commentary string    `json:"commentary,omitempty"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:         b.ID,
		Email:      b.Email,
		Type:       string(b.Type),
		Name:       b.Name,
		Amount:     b.Amount,
		Date:       b.Date,
		VAT:        b.VAT,
		Pct:        b.Pct,
		Commentary: b.Commentary,
		FileURL:    b.FileURL,
		FileName:   b.FileName,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// UploadReceiptResponse confirms phase 1 of a submission.

type UploadReceiptResponse struct {
	ID       string `json:"id"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}

func FromUploadReceipt(r usecase.UploadReceipt) UploadReceiptResponse {
	return UploadReceiptResponse{ID: r.ID, FileURL: r.FileURL, FileName: r.FileName}
}

// FileErrorResponse toggles the validation hint near the file input.

type FileErrorResponse struct {
	FileError bool   `json:"file_error"`
	Message   string `json:"message"`
}
