// Package report renders the cached mute list to a PDF file.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/util"
	"github.com/go-pdf/fpdf"
)

var columns = []struct {
	title string
	width float64
}{
	{"Player", 48},
	{"Type", 20},
	{"Reason", 52},
	{"Created", 36},
	{"Ends", 36},
	{"Status", 20},
}

// FileName returns the report file name for generatedAt.
func FileName(generatedAt time.Time) string {
	return fmt.Sprintf("mutes_%s.pdf", generatedAt.Format("2006-01-02_150405"))
}

// WriteMuteReport renders mutes into dir and returns the absolute path of
// the written file.
func WriteMuteReport(mutes []models.Mute, generatedAt time.Time, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Mute report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Mute Report: %s", util.DateTimeString(generatedAt)))
	pdf.Ln(12)

	active := 0
	for _, m := range mutes {
		if m.IsActive(generatedAt) {
			active++
		}
	}
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total mutes: %d  Active: %d", len(mutes), active))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(mutes) == 0 {
		pdf.Cell(0, 8, "  - No mutes cached.")
		pdf.Ln(8)
	}
	for _, m := range mutes {
		player := m.PlayerSteamID
		if m.PlayerName != "" {
			player = fmt.Sprintf("%s (%s)", m.PlayerName, m.PlayerSteamID)
		}
		ends := config.PermanentLabel
		if !m.IsPermanent() {
			ends = util.DateTimeString(*m.Ends)
		}
		created := ""
		if !m.Created.IsZero() {
			created = util.DateTimeString(m.Created)
		}
		cells := []string{player, m.Type, m.Reason, created, ends, string(m.Status)}
		for i, c := range columns {
			pdf.CellFormat(c.width, 7, tr(fit(pdf, cells[i], c.width-2)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	path := filepath.Join(dir, FileName(generatedAt))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// fit shortens s until it renders within width at the current font.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+config.TruncationSuffix) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + config.TruncationSuffix
}
