package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"alexportfolio/models"
	"alexportfolio/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateSchedulePDF renders the full meetings schedule through the HTML
// template and prints it to an A4 PDF with headless Chrome.
func GenerateSchedulePDF(ctx context.Context, repo *repository.PDFRepository) ([]byte, error) {
	meetings, err := repo.GetScheduleForPDF(ctx)
	if err != nil {
		return nil, err
	}

	creators, err := repo.GetCreatorsForPDF(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ScheduleEntry, 0, len(meetings))
	for _, m := range meetings {
		entries = append(entries, models.ScheduleEntry{
			Title:        m.Title,
			Date:         FormatDisplayDate(m.Date),
			Time:         FormatDisplayTime(m.Time),
			Level:        m.Level,
			Participants: FormatParticipants(m.Participants),
			Creator:      creators[m.CreatorID],
			Description:  m.Description,
		})
	}

	tmpl, err := template.ParseFiles("templates/schedule_template.html")
	if err != nil {
		return nil, err
	}

	data := models.SchedulePDFData{
		GeneratedAt: time.Now().Format("02 Jan 2006 15:04"),
		Count:       len(entries),
		Entries:     entries,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.meeting-row {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body>` + body.String() + `</body></html>`

	// Chrome renders from a temp file rather than a data URL.
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "schedule_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(chromeCtx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
