package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"ats/internal/domain/models"
	"ats/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the PDF sheet of an offer.
type DocsService struct {
	Offers    OfferService
	RequestID string
	Now       func() time.Time
	// Loader replaces the offer lookup, mostly in tests.
	Loader func(ctx context.Context, slug string) (models.Offer, error)
}

// GenerateOfferSheet returns the PDF bytes and a file name for the offer.
func (s DocsService) GenerateOfferSheet(ctx context.Context, slug string) ([]byte, string, error) {
	o, err := s.loadOffer(ctx, slug)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_offer_sheet", "slug="+slug)
	return buildOfferSheetPDF(o, s.now())
}

func (s DocsService) loadOffer(ctx context.Context, slug string) (models.Offer, error) {
	if s.Loader != nil {
		return s.Loader(ctx, slug)
	}
	return s.Offers.Get(ctx, slug)
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildOfferSheetPDF(o models.Offer, at time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Offer "+o.Job), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(safe(o.Job, "Offer")))
	pdf.Ln(12)

	owner, ownerPhone := "-", "-"
	if o.Owner != nil {
		owner, ownerPhone = safe(o.Owner.Name, "-"), safe(o.Owner.Phone, "-")
	}
	referrer := "-"
	if o.Referrer != nil {
		referrer = strings.TrimSpace(o.Referrer.FirstName + " " + o.Referrer.LastName)
		if o.Referrer.Email != "" {
			referrer += " <" + o.Referrer.Email + ">"
		}
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference     : %s", o.Slug),
		fmt.Sprintf("Client        : %s (%s)", owner, ownerPhone),
		fmt.Sprintf("Contract      : %s", safe(string(o.ContractType), "-")),
		fmt.Sprintf("Annual salary : %s", utils.FormatSalary(o.AnnualSalary)),
		fmt.Sprintf("Referrer      : %s", safe(referrer, "-")),
		fmt.Sprintf("Published     : %s", utils.FormatDate(o.CreatedDate)),
		fmt.Sprintf("Candidates    : %d", o.ProcessCount),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}

	if len(o.Processes) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(80, 8, "Candidate", "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 8, "Status", "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, "Since", "1", 1, "", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, p := range o.Processes {
			name := "-"
			if p.Candidate != nil {
				name = safe(p.Candidate.Name, "-")
			}
			pdf.CellFormat(80, 7, tr(name), "1", 0, "", false, 0, "")
			pdf.CellFormat(60, 7, tr(string(p.Status)), "1", 0, "", false, 0, "")
			pdf.CellFormat(40, 7, utils.FormatDate(p.UpdatedDate), "1", 1, "", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated on "+utils.FormatDateTime(at)+" UTC.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("OFFER_%s.pdf", safeFilenamePart(o.Slug)), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
