package entities

import "time"

// BillStatus represents the back-office approval state of a bill.
//
// Domain notes:
//   - The back office is the source of truth for status; employees only
//     ever create bills in "pending" and read the rest.

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

// ExpenseType is the fixed expense category set offered by the new-bill form.

type ExpenseType string

const (
	ExpenseTypeTransports     ExpenseType = "Transports"
	ExpenseTypeRestaurants    ExpenseType = "Restaurants et bars"
	ExpenseTypeHotel          ExpenseType = "Hôtel et logement"
	ExpenseTypeOnlineServices ExpenseType = "Services en ligne"
	ExpenseTypeIT             ExpenseType = "IT et électronique"
	ExpenseTypeEquipment      ExpenseType = "Equipement et matériel"
	ExpenseTypeOfficeSupplies ExpenseType = "Fournitures de bureau"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseTypeTransports, ExpenseTypeRestaurants, ExpenseTypeHotel,
		ExpenseTypeOnlineServices, ExpenseTypeIT, ExpenseTypeEquipment,
		ExpenseTypeOfficeSupplies:
		return true
	}
	return false
}

// DefaultVATPct is applied when a bill comes in without a usable percentage.
const DefaultVATPct = 20

// BillDateLayout is the canonical storage format for Bill.Date.
const BillDateLayout = "2006-01-02"

// Bill is the expense bill entity persisted by the back-office service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Date stays a string on the entity: legacy rows may carry malformed values
// and the record must remain readable and listable regardless.

type Bill struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	Type       ExpenseType `json:"type"`
	Name       string      `json:"name"`
	Amount     float64     `json:"amount"`
	Date       string      `json:"date"`
	VAT        float64     `json:"vat,omitempty"`
	Pct        float64     `json:"pct"`
	Commentary string      `json:"commentary,omitempty"`
	FileURL    string      `json:"file_url"`
	FileName   string      `json:"file_name"`
	Status     BillStatus  `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Complete reports whether the bill carries its proof attachment. A bill
// without both FileURL and FileName must never be treated as submitted.
func (b Bill) Complete() bool {
	return b.FileURL != "" && b.FileName != ""
}

// Attachment is the transient proof-of-expense file flowing through the
// submission pipeline. It is discarded once the upload resolves or fails.

type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}
