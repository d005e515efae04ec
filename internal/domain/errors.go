package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateInvoice    = errors.New("invoice already exists")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
