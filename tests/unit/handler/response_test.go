package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"telebill/internal/domain"
	"telebill/internal/extract"
	"telebill/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"duplicate invoice", domain.ErrDuplicateInvoice, http.StatusConflict, "DUPLICATE_INVOICE"},
		{"carrier not detected", extract.ErrCarrierNotDetected, http.StatusBadRequest, "CARRIER_NOT_DETECTED"},
		{
			"required field missing",
			&extract.RequiredFieldError{Carrier: domain.CarrierThree, Field: "invoice number"},
			http.StatusBadRequest, "REQUIRED_FIELD_MISSING",
		},
		{
			"malformed field",
			&extract.MalformedFieldError{Field: "connection count", Value: "abc", Reason: "not a number"},
			http.StatusBadRequest, "MALFORMED_FIELD",
		},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{
			"wrapped domain error",
			errors.Join(errors.New("storing invoice"), domain.ErrDuplicateInvoice),
			http.StatusConflict, "DUPLICATE_INVOICE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
