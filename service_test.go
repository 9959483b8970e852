package resumeprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// fakePDFConverter captures the document it was asked to print.
type fakePDFConverter struct {
	gotHTML string
	result  []byte
	err     error
	closed  bool
}

func (f *fakePDFConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	f.gotHTML = htmlContent
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePDFConverter) Close() error {
	f.closed = true
	return nil
}

func TestService_ExportHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        Input
		wantContains []string
	}{
		{
			name:  "full pipeline",
			input: Input{Markdown: "# Jane\n\n- **Go**\n- SQL", Title: "Jane"},
			wantContains: []string{
				"<title>Jane</title>",
				"<h1>Jane</h1>",
				"<ul>",
				"<li><strong>Go</strong></li>",
				"<li>SQL</li>",
			},
		},
		{
			name:         "empty markdown yields a well-formed document",
			input:        Input{},
			wantContains: []string{"<!DOCTYPE html>", "<title>Resume</title>", "</html>"},
		},
		{
			name:         "malformed markdown never fails",
			input:        Input{Markdown: "**unclosed\n*also\n### "},
			wantContains: []string{"<p>**unclosed</p>", "<p>*also</p>", "<h3></h3>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := New()
			defer svc.Close()

			got, err := svc.ExportHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ExportHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ExportHTML() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestService_ExportHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	svc := New()
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.ExportHTML(ctx, Input{Markdown: "# x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("ExportHTML() error = %v, want context.Canceled", err)
	}
}

func TestService_ExportHTML_Deterministic(t *testing.T) {
	t.Parallel()

	svc := New()
	defer svc.Close()

	input := Input{Markdown: "# A\n- b\n\n- c\n\ntext", Title: "T"}
	first, err := svc.ExportHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}
	second, err := svc.ExportHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}
	if first != second {
		t.Error("ExportHTML() output differs between identical invocations")
	}
}

func TestService_ExportPDF(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{result: []byte("%PDF-fake")}
	svc := New()
	svc.pdfConverter = fake

	got, err := svc.ExportPDF(context.Background(), Input{Markdown: "# Jane", Title: "Jane"})
	if err != nil {
		t.Fatalf("ExportPDF() error = %v", err)
	}
	if string(got) != "%PDF-fake" {
		t.Errorf("ExportPDF() = %q, want fake PDF bytes", got)
	}
	if !strings.Contains(fake.gotHTML, "<h1>Jane</h1>") {
		t.Errorf("ExportPDF() printed document missing rendered fragment:\n%s", fake.gotHTML)
	}
	if !strings.Contains(fake.gotHTML, "@page") {
		t.Error("ExportPDF() printed document missing print stylesheet")
	}
}

func TestService_ExportPDF_BrowserErrorsKeepTheirKind(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrBrowserConnect, ErrPageCreate, ErrPageLoad, ErrPDFGeneration}

	for _, sentinel := range sentinels {
		fake := &fakePDFConverter{err: fmt.Errorf("%w: boom", sentinel)}
		svc := New()
		svc.pdfConverter = fake

		_, err := svc.ExportPDF(context.Background(), Input{Markdown: "# x"})
		if !errors.Is(err, sentinel) {
			t.Errorf("ExportPDF() error = %v, want wrapped %v", err, sentinel)
		}
	}
}

func TestService_Close(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{}
	svc := New()
	svc.pdfConverter = fake

	if err := svc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !fake.closed {
		t.Error("Close() did not close the PDF converter")
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	svc := New(WithTimeout(2 * time.Minute))
	defer svc.Close()

	if svc.cfg.timeout != 2*time.Minute {
		t.Errorf("WithTimeout() timeout = %v, want 2m", svc.cfg.timeout)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
