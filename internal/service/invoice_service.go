package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"telebill/internal/config"
	"telebill/internal/domain"
	"telebill/internal/extract"
	"telebill/internal/port"
	"telebill/internal/validator"
)

// ImportUploadInput is the DTO for invoice upload requests.
type ImportUploadInput struct {
	File    multipart.File
	Header  *multipart.FileHeader
	Replace bool
}

// ImportResult is what an import returns to the caller: the stored row
// id, the full extracted record, and the consistency report over it.
type ImportResult struct {
	ID         int64                 `json:"id"`
	Record     *domain.InvoiceRecord `json:"record"`
	Validation *validator.Report     `json:"validation,omitempty"`
}

// InvoiceService defines the invoice import and retrieval contract.
type InvoiceService interface {
	ImportUpload(ctx context.Context, input ImportUploadInput) (*ImportResult, error)
	ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error)
	GetByID(ctx context.Context, id int64) (*port.InvoiceDetail, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Delete(ctx context.Context, id int64) error
	DocumentURL(ctx context.Context, id int64) (string, error)
}

// documentURLExpirySeconds bounds how long a presigned archive link stays
// usable.
const documentURLExpirySeconds = 900

type invoiceService struct {
	repo    port.InvoiceRepository
	text    port.TextExtractor
	archive port.ObjectStorage
	checks  *validator.Engine
	cfg     *config.Config
}

// NewInvoiceService creates a new InvoiceService implementation. archive
// may be nil when document archival is disabled.
func NewInvoiceService(
	repo port.InvoiceRepository,
	text port.TextExtractor,
	archive port.ObjectStorage,
	cfg *config.Config,
) InvoiceService {
	return &invoiceService{
		repo:    repo,
		text:    text,
		archive: archive,
		checks:  validator.NewEngine(),
		cfg:     cfg,
	}
}

func (s *invoiceService) ImportUpload(ctx context.Context, input ImportUploadInput) (*ImportResult, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.Upload.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(buf[:n]), "application/pdf") {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	// The PDF reader needs a file on disk; spool the upload to a temp
	// file removed on every exit path.
	tmp, err := os.CreateTemp("", "telebill-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, input.File); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("spooling upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	log.Printf("invoiceService.ImportUpload: importing %s (%d bytes, replace=%v)",
		input.Header.Filename, input.Header.Size, input.Replace)

	result, err := s.importPath(ctx, tmpPath, input.Replace)
	if err != nil {
		return nil, err
	}

	s.archiveDocument(ctx, tmpPath, result.Record)
	return result, nil
}

func (s *invoiceService) ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	result, err := s.importPath(ctx, path, replace)
	if err != nil {
		return nil, err
	}

	s.archiveDocument(ctx, path, result.Record)
	return result, nil
}

// importPath runs the extraction pipeline over a document on disk and
// stores the result.
func (s *invoiceService) importPath(ctx context.Context, path string, replace bool) (*ImportResult, error) {
	pages, err := s.text.Pages(path)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	rec, err := extract.Parse(pages)
	if err != nil {
		return nil, err
	}

	report := s.checks.Validate(rec)
	for _, warn := range report.Warnings() {
		log.Printf("invoiceService.importPath: invoice %s: %s: %s (expected %s, got %s)",
			rec.Metadata.InvoiceNumber, warn.RuleName, warn.Message, warn.ExpectedValue, warn.ActualValue)
	}

	id, err := s.repo.Create(ctx, rec, replace)
	if err != nil {
		return nil, err
	}

	log.Printf("invoiceService.importPath: stored %s invoice %s as id %d (%d mobiles, %d cost centres)",
		rec.Metadata.Carrier, rec.Metadata.InvoiceNumber, id, len(rec.Mobiles), len(rec.CostCentres))

	return &ImportResult{ID: id, Record: rec, Validation: report}, nil
}

// archiveDocument copies the imported PDF to the object archive. Best
// effort: an archive failure never fails the import.
func (s *invoiceService) archiveDocument(ctx context.Context, path string, rec *domain.InvoiceRecord) {
	if s.archive == nil || !s.cfg.Archive.Enabled {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("invoiceService.archiveDocument: opening %s: %v", path, err)
		return
	}
	defer f.Close()

	key := archiveKey(rec.Metadata.Carrier, rec.Metadata.InvoiceNumber)
	if _, err := s.archive.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Archive.Bucket,
		Key:         key,
		Body:        f,
		ContentType: "application/pdf",
	}); err != nil {
		log.Printf("invoiceService.archiveDocument: upload %s failed: %v", key, err)
		return
	}
	log.Printf("invoiceService.archiveDocument: archived %s", key)
}

// archiveKey is where an invoice's source PDF lives in the archive bucket.
func archiveKey(carrier domain.Carrier, invoiceNumber string) string {
	return fmt.Sprintf("invoices/%s/%s.pdf", carrier, invoiceNumber)
}

func (s *invoiceService) GetByID(ctx context.Context, id int64) (*port.InvoiceDetail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx)
}

// DocumentURL hands out a presigned link to the archived source PDF.
// Invoices imported while archival was off have no document, which reads
// as not found.
func (s *invoiceService) DocumentURL(ctx context.Context, id int64) (string, error) {
	if s.archive == nil || !s.cfg.Archive.Enabled {
		return "", domain.ErrNotFound
	}

	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	key := archiveKey(detail.Invoice.Carrier, detail.Invoice.InvoiceNumber)
	url, err := s.archive.GetPresignedURL(ctx, s.cfg.Archive.Bucket, key, documentURLExpirySeconds)
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}
	return url, nil
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	var key string
	if s.archive != nil && s.cfg.Archive.Enabled {
		if detail, err := s.repo.GetByID(ctx, id); err == nil {
			key = archiveKey(detail.Invoice.Carrier, detail.Invoice.InvoiceNumber)
		}
	}

	log.Printf("invoiceService.Delete: deleting invoice %d", id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort, as with archival on import.
	if key != "" {
		if err := s.archive.Delete(ctx, s.cfg.Archive.Bucket, key); err != nil {
			log.Printf("invoiceService.Delete: removing archived %s failed: %v", key, err)
		}
	}
	return nil
}
