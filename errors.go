package resumeprint

import "errors"

// Sentinel errors for library operations. Parsing and rendering are
// total and define no errors of their own; everything here belongs to
// the print-invocation boundary.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
