package resumeprint

import (
	"context"
	"fmt"
)

// Service orchestrates the resume export pipeline: block classification,
// inline span resolution, fragment rendering, document assembly, and the
// optional print step.
type Service struct {
	cfg          serviceConfig
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// ExportHTML runs the pure pipeline and returns the assembled document.
// Malformed markdown is never an error: every input, including the empty
// string, produces a well-formed document. Only a cancelled context can
// make this call fail.
func (s *Service) ExportHTML(ctx context.Context, input Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fragment := RenderFragment(input.Markdown)
	return AssembleDocument(fragment, input.Title), nil
}

// ExportPDF assembles the document and prints it to PDF bytes via
// headless Chrome. Browser failures carry distinct sentinel errors and
// are the only failure kind beyond context cancellation.
func (s *Service) ExportPDF(ctx context.Context, input Input) ([]byte, error) {
	doc, err := s.ExportHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("printing to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
