// Package report renders recommendations and tracked activity into
// downloadable files.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/raushankrgupta/ayush-ai/wellness"
)

// Content types
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RecommendationInput is what goes into a recommendation PDF.
type RecommendationInput struct {
	Name           string
	Constitution   wellness.Constitution
	Metrics        *wellness.Metrics // optional
	Recommendation wellness.Recommendation
}

// RecommendationPDF renders a recommendation report and returns the file
// bytes, a download filename and the content type.
func RecommendationPDF(in RecommendationInput) ([]byte, string, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Ayurvedic Health Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(latin1("Ayurvedic Health Report for "+in.Name)))
	pdf.Ln(8)

	created := in.Recommendation.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s (%s)", created.Format("2 Jan 2006"), in.Recommendation.Source))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Dosha Constitution")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, d := range wellness.Doshas {
		pdf.CellFormat(40, 8, capitalize(string(d)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d%%", in.Constitution.Percent(d)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	if in.Metrics != nil {
		writeMetricsTable(pdf, *in.Metrics)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Recommendations")
	pdf.Ln(10)
	writeMarkdown(pdf, tr, in.Recommendation.Content)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", fmt.Errorf("failed to render pdf: %w", err)
	}

	filename := fmt.Sprintf("ayush_report_%s.pdf", created.Format("20060102_150405"))
	return buf.Bytes(), filename, ContentTypePDF, nil
}

func writeMetricsTable(pdf *gofpdf.Fpdf, m wellness.Metrics) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Wellness Scores")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Metric", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Value", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	display := m.Display()
	rows := [][2]string{
		{"Digestion score", fmt.Sprint(m.DigestScore)},
		{"Sleep score", fmt.Sprint(m.SleepScore)},
		{"Stress score", fmt.Sprint(m.StressScore)},
		{"Fitness score", fmt.Sprint(m.FitnessScore)},
		{"Gastric risk", fmt.Sprintf("%s (%d%%)", m.GastricRisk, display.Gastric)},
		{"Obesity risk", fmt.Sprintf("%s (%d%%)", m.ObesityRisk, display.Obesity)},
		{"Diabetes risk", fmt.Sprintf("%s (%d%%)", m.DiabetesRisk, display.Diabetes)},
	}
	pdf.SetFont("Arial", "", 11)
	for _, r := range rows {
		pdf.CellFormat(60, 8, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, r[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// writeMarkdown prints the subset of markdown the reports use: "## "
// headings, ** bold markers and bullet lines.
func writeMarkdown(pdf *gofpdf.Fpdf, tr func(string) string, content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " ")
		switch {
		case strings.TrimSpace(line) == "":
			pdf.Ln(3)
		case strings.HasPrefix(line, "## "):
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 12)
			pdf.MultiCell(0, 7, tr(strings.TrimSpace(latin1(plain(line[3:])))), "", "L", false)
		default:
			text := strings.TrimSpace(latin1(plain(line)))
			if text == "" {
				continue
			}
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(text), "", "L", false)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plain(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	return strings.ReplaceAll(s, "•", "-")
}

// latin1 drops runes the core PDF fonts cannot encode, such as emoji.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return -1
		}
		return r
	}, s)
}
