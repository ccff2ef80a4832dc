package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionEmail = errors.New("invalid session email")
	ErrInvalidBillID       = errors.New("invalid bill id")
	ErrBillNotFound        = errors.New("bill not found")
)

// DisplayBill is the render-ready projection of a bill used by the list view.
//
// DisplayDate carries the locale-formatted short form (e.g. "1 Jan. 21").
// When the stored date cannot be parsed the raw string is shown instead and
// DateParseFailed is set, so degradation stays observable without string
// comparisons.

type DisplayBill struct {
	ID              string
	DisplayDate     string
	RawDate         string
	DateParseFailed bool
	Status          entities.BillStatus
	StatusLabel     string
	Amount          float64
	Type            entities.ExpenseType
	Name            string
	FileURL         string
	FileName        string
}

// IBillListUseCase exposes the employee-facing read operations.
//
//   - FetchAndFormat() backs the bill list view
//   - GetByID() backs the proof preview (eye icon)

type IBillListUseCase interface {
	FetchAndFormat(ctx context.Context, session entities.Session) ([]DisplayBill, error)
	GetByID(ctx context.Context, session entities.Session, id string) (entities.Bill, error)
}

type BillListUseCase struct {
	repo interfaces.IBillRepository
}

var _ IBillListUseCase = (*BillListUseCase)(nil)

func NewBillListUseCase(repo interfaces.IBillRepository) *BillListUseCase {
	return &BillListUseCase{repo: repo}
}

// FetchAndFormat lists the session employee's bills and normalizes each one
// for display. No record is ever dropped: a malformed date degrades to its
// raw string, an unknown status becomes its own label. The returned sequence
// is ordered earliest to latest; rows whose date does not parse keep their
// insertion order after all well-formed rows so they never corrupt the
// comparison.
func (u *BillListUseCase) FetchAndFormat(ctx context.Context, session entities.Session) ([]DisplayBill, error) {
	email := strings.TrimSpace(session.Email)
	if email == "" {
		return nil, ErrInvalidSessionEmail
	}

	bills, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	type sortableBill struct {
		display DisplayBill
		date    time.Time
	}

	rows := make([]sortableBill, 0, len(bills))
	for _, b := range bills {
		display := DisplayBill{
			ID:          b.ID,
			RawDate:     b.Date,
			Status:      b.Status,
			StatusLabel: StatusLabel(b.Status),
			Amount:      b.Amount,
			Type:        b.Type,
			Name:        b.Name,
			FileURL:     b.FileURL,
			FileName:    b.FileName,
		}

		parsed, err := time.Parse(entities.BillDateLayout, b.Date)
		if err != nil {
			display.DisplayDate = b.Date
			display.DateParseFailed = true
		} else {
			display.DisplayDate = FormatDisplayDate(parsed)
		}
		rows = append(rows, sortableBill{display: display, date: parsed})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].display.DateParseFailed {
			return false
		}
		if rows[j].display.DateParseFailed {
			return true
		}
		return rows[i].date.Before(rows[j].date)
	})

	out := make([]DisplayBill, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.display)
	}
	return out, nil
}

func (u *BillListUseCase) GetByID(ctx context.Context, session entities.Session, id string) (entities.Bill, error) {
	email := strings.TrimSpace(session.Email)
	if email == "" {
		return entities.Bill{}, ErrInvalidSessionEmail
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bill{}, ErrInvalidBillID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" || b.Email != email {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}

// statusLabels maps store statuses to the labels shown to employees.
var statusLabels = map[entities.BillStatus]string{
	entities.BillStatusPending:  "En attente",
	entities.BillStatusAccepted: "Accepté",
	entities.BillStatusRefused:  "Refusé",
}

// StatusLabel returns the display label for a status. Unknown values pass
// through verbatim so a new back-office status still renders.
func StatusLabel(s entities.BillStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

var frenchShortMonths = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai", "Juin",
	"Juil.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// FormatDisplayDate renders a parsed bill date in the short French form used
// by the list view, e.g. "1 Jan. 21".
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%d %s %02d", t.Day(), frenchShortMonths[t.Month()-1], t.Year()%100)
}

// TransportErrorKind classifies a record-store failure for display purposes.

type TransportErrorKind int

const (
	TransportErrorUnknown TransportErrorKind = iota
	TransportErrorNotFound
	TransportErrorServerFailure
)

// ClassifyTransportError buckets a store rejection by message content. The
// message itself is always surfaced verbatim; the kind only drives the HTTP
// status of the rendered error view.
func ClassifyTransportError(err error) TransportErrorKind {
	if err == nil {
		return TransportErrorUnknown
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "404"):
		return TransportErrorNotFound
	case strings.Contains(msg, "500"):
		return TransportErrorServerFailure
	default:
		return TransportErrorUnknown
	}
}
