package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedFileFormat = errors.New("unsupported-format")
	ErrNoUploadedFile        = errors.New("no uploaded file")
	ErrInvalidExpenseType    = errors.New("invalid expense type")
	ErrInvalidAmount         = errors.New("invalid amount")
)

// SubmissionState tracks the two-phase new-bill flow.
//
// Idle → FileSelected → Uploading → Uploaded → Persisting → Done, with
// Failed reachable from Uploading or Persisting. A failed upload keeps the
// machine retryable by re-selecting a file; a failed submit keeps the
// captured receipt so Submit can be retried without re-uploading.

type SubmissionState string

const (
	SubmissionIdle         SubmissionState = "idle"
	SubmissionFileSelected SubmissionState = "file_selected"
	SubmissionUploading    SubmissionState = "uploading"
	SubmissionUploaded     SubmissionState = "uploaded"
	SubmissionPersisting   SubmissionState = "persisting"
	SubmissionDone         SubmissionState = "done"
	SubmissionFailed       SubmissionState = "failed"
)

// UploadReceipt is what phase 1 hands back: the provisional record id plus
// the stored attachment coordinates. Phase 2 must present it.

type UploadReceipt struct {
	ID       string
	FileURL  string
	FileName string
}

func (r UploadReceipt) Complete() bool {
	return r.ID != "" && r.FileURL != "" && r.FileName != ""
}

// BillForm carries the fields of the new-bill form. Numeric fields are
// already syntactically valid numbers by the time they reach Submit; only
// Pct gets coerced (absent or non-finite falls back to the default 20).

type BillForm struct {
	Type       entities.ExpenseType
	Name       string
	Amount     float64
	Date       string
	VAT        float64
	Pct        float64
	Commentary string
}

// BillSubmission is the state machine driving one new-bill submission. It
// owns its attachment and receipt exclusively; two submissions never share
// in-process state.

type BillSubmission struct {
	repo    interfaces.IBillRepository
	files   interfaces.IAttachmentStorage
	session entities.Session

	state            SubmissionState
	receipt          UploadReceipt
	fileErrorVisible bool
}

func NewBillSubmission(repo interfaces.IBillRepository, files interfaces.IAttachmentStorage, session entities.Session) *BillSubmission {
	return &BillSubmission{
		repo:    repo,
		files:   files,
		session: session,
		state:   SubmissionIdle,
	}
}

func (s *BillSubmission) State() SubmissionState { return s.state }

func (s *BillSubmission) Receipt() UploadReceipt { return s.receipt }

// FileErrorVisible reports whether the file-input validation hint should be
// shown. It is cleared as soon as an acceptable file is selected.
func (s *BillSubmission) FileErrorVisible() bool { return s.fileErrorVisible }

// allowed proof-of-expense extensions, lowercase, without dot.
var allowedFileExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// ValidateFile checks the declared file name against the accepted extension
// set {jpg, jpeg, png}, case-insensitively. Pure and synchronous; it never
// touches the network.
func ValidateFile(fileName string) error {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return ErrUnsupportedFileFormat
	}
	ext := strings.ToLower(fileName[idx+1:])
	if _, ok := allowedFileExtensions[ext]; !ok {
		return ErrUnsupportedFileFormat
	}
	return nil
}

// SelectFile validates the attachment and, on acceptance, immediately runs
// phase 1: upload the file and create the provisional record carrying the
// resulting id and file URL. A rejected file only raises the error
// indicator; the machine stays where it was and a new file may be selected.
func (s *BillSubmission) SelectFile(ctx context.Context, att entities.Attachment) (UploadReceipt, error) {
	if err := ValidateFile(att.FileName); err != nil {
		log.Printf("[bills][submission] file rejected name=%q", att.FileName)
		s.fileErrorVisible = true
		return UploadReceipt{}, err
	}
	s.fileErrorVisible = false
	s.state = SubmissionFileSelected

	s.state = SubmissionUploading
	fileURL, err := s.files.Upload(ctx, att, s.session.Email)
	if err != nil {
		log.Printf("[bills][submission] upload failed name=%q err=%v", att.FileName, err)
		s.state = SubmissionFailed
		return UploadReceipt{}, err
	}

	now := time.Now().UTC()
	provisional := entities.Bill{
		ID:        uuid.NewString(),
		Email:     s.session.Email,
		FileURL:   fileURL,
		FileName:  att.FileName,
		Status:    entities.BillStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Create(ctx, provisional)
	if err != nil {
		log.Printf("[bills][submission] provisional create failed name=%q err=%v", att.FileName, err)
		s.state = SubmissionFailed
		return UploadReceipt{}, err
	}

	s.receipt = UploadReceipt{ID: created.ID, FileURL: created.FileURL, FileName: created.FileName}
	s.state = SubmissionUploaded
	log.Printf("[bills][submission] upload success bill_id=%s file=%q", s.receipt.ID, s.receipt.FileName)
	return s.receipt, nil
}

// ResumeFromReceipt seeds the machine with a receipt captured earlier, so a
// stateless caller (one HTTP request per phase) can run Submit without
// re-uploading. The receipt must be complete.
func (s *BillSubmission) ResumeFromReceipt(r UploadReceipt) error {
	if !r.Complete() {
		return ErrNoUploadedFile
	}
	s.receipt = r
	s.state = SubmissionUploaded
	return nil
}

// Submit runs phase 2: merge the form fields with the captured receipt and
// complete the record through the store. Until a successful upload captured
// a receipt, Submit refuses. On failure the receipt is retained so the call
// can simply be retried.
func (s *BillSubmission) Submit(ctx context.Context, form BillForm) (entities.Bill, error) {
	if !s.receipt.Complete() {
		return entities.Bill{}, ErrNoUploadedFile
	}
	if !form.Type.Valid() {
		return entities.Bill{}, ErrInvalidExpenseType
	}
	if form.Amount < 0 || math.IsNaN(form.Amount) || math.IsInf(form.Amount, 0) {
		return entities.Bill{}, ErrInvalidAmount
	}

	s.state = SubmissionPersisting
	bill := entities.Bill{
		ID:         s.receipt.ID,
		Email:      s.session.Email,
		Type:       form.Type,
		Name:       strings.TrimSpace(form.Name),
		Amount:     form.Amount,
		Date:       strings.TrimSpace(form.Date),
		VAT:        form.VAT,
		Pct:        NormalizePct(form.Pct),
		Commentary: strings.TrimSpace(form.Commentary),
		FileURL:    s.receipt.FileURL,
		FileName:   s.receipt.FileName,
		Status:     entities.BillStatusPending,
		UpdatedAt:  time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, bill)
	if err != nil {
		log.Printf("[bills][submission] update failed bill_id=%s err=%v", bill.ID, err)
		s.state = SubmissionFailed
		return entities.Bill{}, err
	}
	if updated.ID == "" {
		log.Printf("[bills][submission] update target missing bill_id=%s", bill.ID)
		s.state = SubmissionFailed
		return entities.Bill{}, ErrBillNotFound
	}

	s.state = SubmissionDone
	log.Printf("[bills][submission] submit success bill_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// NormalizePct coerces the VAT percentage to a finite usable value,
// defaulting to 20 when the form left it blank or unusable.
func NormalizePct(pct float64) float64 {
	if pct <= 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return entities.DefaultVATPct
	}
	return pct
}

// IBillSubmissionUseCase is the stateless facade the HTTP layer consumes.
// Each call builds a fresh BillSubmission, so two requests (or two browser
// tabs) never share machine state.

type IBillSubmissionUseCase interface {
	UploadAttachment(ctx context.Context, session entities.Session, att entities.Attachment) (UploadReceipt, error)
	SubmitBill(ctx context.Context, session entities.Session, receipt UploadReceipt, form BillForm) (entities.Bill, error)
}

type BillSubmissionUseCase struct {
	repo  interfaces.IBillRepository
	files interfaces.IAttachmentStorage
}

var _ IBillSubmissionUseCase = (*BillSubmissionUseCase)(nil)

func NewBillSubmissionUseCase(repo interfaces.IBillRepository, files interfaces.IAttachmentStorage) *BillSubmissionUseCase {
	return &BillSubmissionUseCase{repo: repo, files: files}
}

func (u *BillSubmissionUseCase) UploadAttachment(ctx context.Context, session entities.Session, att entities.Attachment) (UploadReceipt, error) {
	if strings.TrimSpace(session.Email) == "" {
		return UploadReceipt{}, ErrInvalidSessionEmail
	}
	sub := NewBillSubmission(u.repo, u.files, session)
	return sub.SelectFile(ctx, att)
}

func (u *BillSubmissionUseCase) SubmitBill(ctx context.Context, session entities.Session, receipt UploadReceipt, form BillForm) (entities.Bill, error) {
	if strings.TrimSpace(session.Email) == "" {
		return entities.Bill{}, ErrInvalidSessionEmail
	}
	sub := NewBillSubmission(u.repo, u.files, session)
	if err := sub.ResumeFromReceipt(receipt); err != nil {
		return entities.Bill{}, err
	}
	return sub.Submit(ctx, form)
}
