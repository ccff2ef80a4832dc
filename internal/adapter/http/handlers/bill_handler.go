package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "billed_backoffice/internal/adapter/http/dto/request"
	response "billed_backoffice/internal/adapter/http/dto/response"
	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase"
	"billed_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
	errMissingFile        = pkg.NewDomainErrorSimple("MISSING_FILE", "Missing multipart file field", http.StatusBadRequest)
)

// BillHandler handles HTTP requests for employee expense bills.

type BillHandler struct {
	list       usecase.IBillListUseCase
	submission usecase.IBillSubmissionUseCase
}

func NewBillHandler(list usecase.IBillListUseCase, submission usecase.IBillSubmissionUseCase) *BillHandler {
	return &BillHandler{list: list, submission: submission}
}

// ListBills godoc
// @Summary      List the session employee's bills
// @Description  Returns the bills ordered earliest to latest, normalized for display.
// @Tags         bills
// @Produce      json
// @Param        X-User-Email  header  string  true  "employee email"
// @Success      200  {object}  response.BillListResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	session := SessionFromContext(c)
	log.Printf("[bills][handler] list start email=%s", session.Email)

	bills, err := h.list.FetchAndFormat(c.Request.Context(), session)
	if err != nil {
		log.Printf("[bills][handler] list failed email=%s err=%v", session.Email, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[bills][handler] list success email=%s count=%d", session.Email, len(bills))
	c.JSON(http.StatusOK, response.FromDisplayBills(bills))
}

// GetBill godoc
// @Summary      Get one bill for the proof preview
// @Tags         bills
// @Produce      json
// @Param        X-User-Email  header  string  true  "employee email"
// @Param        id  path  string  true  "bill id"
// @Success      200  {object}  response.BillResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	session := SessionFromContext(c)
	id := c.Param("id")

	bill, err := h.list.GetByID(c.Request.Context(), session, id)
	if err != nil {
		log.Printf("[bills][handler] get failed bill_id=%s err=%v", id, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// UploadBillFile godoc
// @Summary      Upload a proof-of-expense file (phase 1)
// @Description  Validates the extension (jpg, jpeg, png), stores the file and creates the provisional bill.
// @Tags         bills
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-User-Email  header  string  true  "employee email"
// @Param        file  formData  file  true  "proof of expense"
// @Success      201  {object}  response.UploadReceiptResponse
// @Failure      400  {object}  response.FileErrorResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bills/files [post]
func (h *BillHandler) UploadBillFile(c *gin.Context) {
	session := SessionFromContext(c)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	f, err := header.Open()
	if err != nil {
		appErr := pkg.NewDomainError("FILE_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		appErr := pkg.NewDomainError("FILE_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	att := entities.Attachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}
	log.Printf("[bills][handler] upload start email=%s file=%q size=%d", session.Email, att.FileName, len(att.Content))

	receipt, err := h.submission.UploadAttachment(c.Request.Context(), session, att)
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedFileFormat) {
			// Not a hard stop: the form stays usable and a new file may be picked.
			c.JSON(http.StatusBadRequest, response.FileErrorResponse{FileError: true, Message: err.Error()})
			return
		}
		log.Printf("[bills][handler] upload failed email=%s err=%v", session.Email, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[bills][handler] upload success email=%s bill_id=%s", session.Email, receipt.ID)
	c.JSON(http.StatusCreated, response.FromUploadReceipt(receipt))
}

// CreateBill godoc
// @Summary      Complete a bill submission (phase 2)
// @Description  Merges the form fields with the upload receipt and persists the bill as pending.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        X-User-Email  header  string  true  "employee email"
// @Param        payload  body  request.NewBillRequest  true  "bill form plus upload receipt"
// @Success      201  {object}  response.BillResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	session := SessionFromContext(c)

	var payload request.NewBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	expenseType, err := payload.ResolveType()
	if err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	receipt := usecase.UploadReceipt{
		ID:       payload.ResolveReceiptID(),
		FileURL:  payload.FileURL,
		FileName: payload.FileName,
	}
	form := usecase.BillForm{
		Type:       expenseType,
		Name:       payload.Name,
		Amount:     amount,
		Date:       payload.Date,
		VAT:        payload.VAT,
		Pct:        payload.ResolvePct(),
		Commentary: payload.Commentary,
	}
	log.Printf("[bills][handler] submit start email=%s bill_id=%s", session.Email, receipt.ID)

	bill, err := h.submission.SubmitBill(c.Request.Context(), session, receipt, form)
	if err != nil {
		log.Printf("[bills][handler] submit failed email=%s bill_id=%s err=%v", session.Email, receipt.ID, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[bills][handler] submit success email=%s bill_id=%s status=%s", session.Email, bill.ID, bill.Status)
	c.JSON(http.StatusCreated, response.FromBill(bill))
}

// mapBillError converts usecase failures into the wire error. Store
// rejections keep their message verbatim so the error view can render the
// literal text (e.g. "Erreur 404"); only the HTTP status comes from
// classification.
func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionEmail):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing employee identity", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidBillID), errors.Is(err, usecase.ErrInvalidExpenseType),
		errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrNoUploadedFile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	}

	switch usecase.ClassifyTransportError(err) {
	case usecase.TransportErrorNotFound:
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case usecase.TransportErrorServerFailure:
		return pkg.NewDomainErrorSimple("STORE_FAILURE", err.Error(), http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
