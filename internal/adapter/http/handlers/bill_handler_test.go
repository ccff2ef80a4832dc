package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"billed_backoffice/internal/adapter/http/handlers/mocks"
	"billed_backoffice/internal/domain/entities"
	"billed_backoffice/internal/usecase"
	mock_interfaces "billed_backoffice/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBillsRouter(h *BillHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/bills")
	g.Use(RequireEmployeeSession())
	g.GET("", h.ListBills)
	g.GET("/:id", h.GetBill)
	g.POST("/files", h.UploadBillFile)
	g.POST("", h.CreateBill)
	return r
}

func multipartFile(t *testing.T, fieldFileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + fieldFileName + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestBillHandler_ListBills(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		list := mocks.NewMockIBillListUseCase(ctrl)
		h := NewBillHandler(list, mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		list.EXPECT().FetchAndFormat(gomock.Any(), entities.Session{Email: "test@test.com", Role: "Employee"}).Return([]usecase.DisplayBill{
			{ID: "b1", DisplayDate: "1 Jan. 21", RawDate: "2021-01-01", Status: entities.BillStatusPending, StatusLabel: "En attente", Amount: 100, Type: entities.ExpenseTypeTransports, Name: "Train"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills", nil)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		bills, ok := body["bills"].([]any)
		if !ok || len(bills) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("store 404 renders the literal message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		list := mocks.NewMockIBillListUseCase(ctrl)
		h := NewBillHandler(list, mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		list.EXPECT().FetchAndFormat(gomock.Any(), gomock.Any()).Return(nil, errors.New("Erreur 404"))

		req := httptest.NewRequest(http.MethodGet, "/v1/bills", nil)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Erreur 404") {
			t.Fatalf("expected literal message in body, got %s", w.Body.String())
		}
	})

	t.Run("store 500 renders the literal message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		list := mocks.NewMockIBillListUseCase(ctrl)
		h := NewBillHandler(list, mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		list.EXPECT().FetchAndFormat(gomock.Any(), gomock.Any()).Return(nil, errors.New("Erreur 500"))

		req := httptest.NewRequest(http.MethodGet, "/v1/bills", nil)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Erreur 500") {
			t.Fatalf("expected literal message in body, got %s", w.Body.String())
		}
	})
}

func TestBillHandler_GetBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		list := mocks.NewMockIBillListUseCase(ctrl)
		h := NewBillHandler(list, mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		list.EXPECT().GetByID(gomock.Any(), gomock.Any(), "b1").Return(entities.Bill{}, usecase.ErrBillNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/b1", nil)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		list := mocks.NewMockIBillListUseCase(ctrl)
		h := NewBillHandler(list, mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		list.EXPECT().GetByID(gomock.Any(), gomock.Any(), "b1").Return(entities.Bill{ID: "b1", Email: "test@test.com", FileURL: "https://bucket/p.jpg", FileName: "p.jpg"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/b1", nil)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["file_url"] != "https://bucket/p.jpg" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

// The upload tests run the real submission use case over mocked store
// collaborators, so the "a rejected file never calls create" contract is
// exercised through the full HTTP path.
func TestBillHandler_UploadBillFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("txt file toggles the file error and never calls the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		files := mock_interfaces.NewMockIAttachmentStorage(ctrl)
		submission := usecase.NewBillSubmissionUseCase(repo, files)
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), submission)
		r := newBillsRouter(h)

		body, contentType := multipartFile(t, "incorrectFile.txt", "image/gif", []byte("text"))
		req := httptest.NewRequest(http.MethodPost, "/v1/bills/files", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["file_error"] != true {
			t.Fatalf("expected visible file error, got %s", w.Body.String())
		}
	})

	t.Run("jpg file reaches Uploaded and returns the receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		files := mock_interfaces.NewMockIAttachmentStorage(ctrl)
		submission := usecase.NewBillSubmissionUseCase(repo, files)
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), submission)
		r := newBillsRouter(h)

		files.EXPECT().Upload(gomock.Any(), gomock.Any(), "test@test.com").Return("https://bucket/image.jpg", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Bill) (entities.Bill, error) { return b, nil },
		)

		body, contentType := multipartFile(t, "image.jpg", "image/jpg", []byte("image"))
		req := httptest.NewRequest(http.MethodPost, "/v1/bills/files", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] == "" || resp["file_url"] != "https://bucket/image.jpg" || resp["file_name"] != "image.jpg" {
			t.Fatalf("unexpected receipt: %s", w.Body.String())
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/files", bytes.NewBufferString(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBillHandler_CreateBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validPayload := `{"id":"b1","file_url":"https://bucket/p.jpg","file_name":"p.jpg",` +
		`"type":"Transports","name":"Train","amount":100,"date":"2023-01-01","pct":""}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown expense type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), mocks.NewMockIBillSubmissionUseCase(ctrl))
		r := newBillsRouter(h)

		payload := strings.Replace(validPayload, "Transports", "Jets privés", 1)
		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success merges the receipt and defaults pct", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submission := mocks.NewMockIBillSubmissionUseCase(ctrl)
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), submission)
		r := newBillsRouter(h)

		submission.EXPECT().SubmitBill(
			gomock.Any(),
			entities.Session{Email: "test@test.com", Role: "Employee"},
			usecase.UploadReceipt{ID: "b1", FileURL: "https://bucket/p.jpg", FileName: "p.jpg"},
			gomock.AssignableToTypeOf(usecase.BillForm{}),
		).DoAndReturn(
			func(_ context.Context, session entities.Session, receipt usecase.UploadReceipt, form usecase.BillForm) (entities.Bill, error) {
				if form.Pct != entities.DefaultVATPct {
					t.Fatalf("expected defaulted pct, got %v", form.Pct)
				}
				return entities.Bill{ID: receipt.ID, Email: session.Email, Status: entities.BillStatusPending, FileURL: receipt.FileURL, FileName: receipt.FileName}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.BillStatusPending) {
			t.Fatalf("expected pending bill, got %s", w.Body.String())
		}
	})

	t.Run("submission failure keeps the literal store message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submission := mocks.NewMockIBillSubmissionUseCase(ctrl)
		h := NewBillHandler(mocks.NewMockIBillListUseCase(ctrl), submission)
		r := newBillsRouter(h)

		submission.EXPECT().SubmitBill(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Bill{}, errors.New("Erreur 500"))

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Email", "test@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Erreur 500") {
			t.Fatalf("expected literal message in body, got %s", w.Body.String())
		}
	})
}

func TestMapBillError(t *testing.T) {
	if got := mapBillError(usecase.ErrInvalidSessionEmail); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapBillError(usecase.ErrNoUploadedFile); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBillError(usecase.ErrBillNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBillError(errors.New("Erreur 404")); got.HTTPStatus != http.StatusNotFound || got.Message != "Erreur 404" {
		t.Fatalf("expected verbatim 404 mapping, got %+v", got)
	}
	if got := mapBillError(errors.New("Erreur 500")); got.HTTPStatus != http.StatusInternalServerError || got.Message != "Erreur 500" {
		t.Fatalf("expected verbatim 500 mapping, got %+v", got)
	}
	if got := mapBillError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
