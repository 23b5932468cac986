package uploads

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Tonii11/aurelius-claim-flow/app/services"
)

// MaxFileSize is the upload bound; a file must be strictly smaller.
const MaxFileSize = 5 * 1024 * 1024

// RequestBodyLimit is the HTTP body cap for the server. It sits above
// MaxFileSize so multipart framing never rejects a file the validator
// would accept; ValidateDocument remains the authoritative size check.
const RequestBodyLimit = 6 * 1024 * 1024

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"xlsx": true,
	"doc":  true,
	"xls":  true,
}

// Distinct rejection kinds, all matching services.ErrValidation.
var (
	ErrNoFile          = fmt.Errorf("%w: you must select a file to upload", services.ErrValidation)
	ErrUnsupportedType = fmt.Errorf("%w: please upload a PDF, Word, or Excel file", services.ErrValidation)
	ErrTooLarge        = fmt.Errorf("%w: file size must be less than 5MB", services.ErrValidation)
)

// ValidateDocument checks a supporting document by name and size. The
// extension is whatever follows the final dot, compared case-insensitively.
func ValidateDocument(filename string, size int64) error {
	if filename == "" {
		return ErrNoFile
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return ErrUnsupportedType
	}

	if size >= MaxFileSize {
		return ErrTooLarge
	}
	return nil
}
