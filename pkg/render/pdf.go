package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	style   Style
	title   string
	created time.Time
}

// WithPDFStyle overrides the colours.
func WithPDFStyle(s Style) PDFOption { return func(r *pdfRenderer) { r.style = s } }

// WithTitle sets the document title metadata.
func WithTitle(title string) PDFOption { return func(r *pdfRenderer) { r.title = title } }

// WithCreationDate pins the creation date, which makes output reproducible.
func WithCreationDate(t time.Time) PDFOption { return func(r *pdfRenderer) { r.created = t } }

// RenderPDF renders the scene as a single-page PDF. One canvas pixel maps to
// one point. This is a preview of the strip, not print-ready imposition.
func RenderPDF(s Scene, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{style: DefaultStyle, title: "scoreline preview"}
	for _, opt := range opts {
		opt(&r)
	}
	st := r.style

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: s.Canvas.Width, Ht: s.Canvas.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(r.title, true)
	pdf.SetCreator("scoreline", true)
	if !r.created.IsZero() {
		pdf.SetCreationDate(r.created)
	}
	pdf.AddPage()

	if err := setFill(pdf, st.Background); err != nil {
		return nil, err
	}
	pdf.Rect(0, 0, s.Canvas.Width, s.Canvas.Height, "F")

	pdf.SetLineWidth(st.LineWidth)
	if err := setDraw(pdf, st.Outline); err != nil {
		return nil, err
	}
	pdf.Rect(s.Page.X, s.Page.Y, s.Page.W, s.Page.H, "D")

	if err := setFill(pdf, st.Document); err != nil {
		return nil, err
	}
	for _, d := range s.Documents {
		pdf.Rect(d.X, d.Y, d.W, d.H, "F")
	}

	if err := setDraw(pdf, st.Score); err != nil {
		return nil, err
	}
	for _, l := range s.Scores {
		pdf.Line(l.X, l.Y1, l.X, l.Y2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func setFill(pdf *gofpdf.Fpdf, colour string) error {
	r, g, b, err := hexRGB(colour)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	pdf.SetFillColor(r, g, b)
	return nil
}

func setDraw(pdf *gofpdf.Fpdf, colour string) error {
	r, g, b, err := hexRGB(colour)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	pdf.SetDrawColor(r, g, b)
	return nil
}
