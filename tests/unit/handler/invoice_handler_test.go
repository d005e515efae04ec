package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"telebill/internal/domain"
	"telebill/internal/handler"
	"telebill/internal/port"
	"telebill/internal/service"
	"telebill/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartUpload(t *testing.T, field, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestInvoiceHandler_Import_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	rec := &domain.InvoiceRecord{}
	rec.Metadata.Carrier = domain.CarrierVodafone
	rec.Metadata.InvoiceNumber = "670255301"
	mockSvc.On("ImportUpload", mock.Anything, mock.MatchedBy(func(in service.ImportUploadInput) bool {
		return in.Header.Filename == "december.pdf" && !in.Replace
	})).Return(&service.ImportResult{ID: 7, Record: rec}, nil)

	body, contentType := multipartUpload(t, "file", "december.pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/import", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Import(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestInvoiceHandler_Import_ReplaceQueryFlag(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	mockSvc.On("ImportUpload", mock.Anything, mock.MatchedBy(func(in service.ImportUploadInput) bool {
		return in.Replace
	})).Return(&service.ImportResult{ID: 2, Record: &domain.InvoiceRecord{}}, nil)

	body, contentType := multipartUpload(t, "file", "december.pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/import?replace=true", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Import(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Import_MissingFile(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/import", nil)

	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ImportUpload", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Import_DuplicateConflict(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	mockSvc.On("ImportUpload", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateInvoice)

	body, contentType := multipartUpload(t, "file", "december.pdf", []byte("%PDF-1.4"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/import", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Import(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "DUPLICATE_INVOICE", resp.Error.Code)
}

func TestInvoiceHandler_GetByID_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	detail := &port.InvoiceDetail{
		Invoice: domain.Invoice{ID: 5, InvoiceNumber: "670255301", Carrier: domain.CarrierVodafone},
	}
	mockSvc.On("GetByID", mock.Anything, int64(5)).Return(detail, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvoiceHandler_GetByID_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	mockSvc.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Export_SetsAttachmentHeaders(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	detail := &port.InvoiceDetail{
		Invoice: domain.Invoice{ID: 5, InvoiceNumber: "670255301", Carrier: domain.CarrierVodafone},
	}
	mockSvc.On("GetByID", mock.Anything, int64(5)).Return(detail, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/5/export", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice_670255301_")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestInvoiceHandler_Export_CSVFormat(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	detail := &port.InvoiceDetail{
		Invoice: domain.Invoice{ID: 5, InvoiceNumber: "670255301", Carrier: domain.CarrierVodafone},
		MobileLines: []domain.MobileLine{
			{MobileNumber: "07345466207", UserName: "JOHN SMITH", TotalCharge: 11.5},
		},
	}
	mockSvc.On("GetByID", mock.Anything, int64(5)).Return(detail, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/5/export?format=csv", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "07345466207")
	assert.Contains(t, w.Body.String(), "JOHN SMITH")
}

func TestInvoiceHandler_Delete_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	mockSvc.On("Delete", mock.Anything, int64(5)).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/invoices/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_DocumentURL_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	mockSvc.On("DocumentURL", mock.Anything, int64(5)).Return("https://archive.example/doc", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/5/document", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.DocumentURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://archive.example/doc")
}

func TestInvoiceHandler_DocumentURL_NotArchived(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	mockSvc.On("DocumentURL", mock.Anything, int64(5)).Return("", domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/5/document", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.DocumentURL(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_List_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	invoices := []domain.Invoice{
		{ID: 2, InvoiceNumber: "670255301", Carrier: domain.CarrierVodafone},
		{ID: 1, InvoiceNumber: "100234567", Carrier: domain.CarrierThree},
	}
	mockSvc.On("List", mock.Anything).Return(invoices, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
