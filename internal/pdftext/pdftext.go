// Package pdftext turns PDF bytes into pages of positioned text fragments.
// It is the only place the PDF library is touched; everything downstream
// works on plain fragment values.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Fragment is a single positioned text run from the PDF text layer.
// Coordinates use PDF conventions: origin bottom-left, y grows upward.
type Fragment struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"fontSize"`
	Bold     bool    `json:"bold"`
	Page     int     `json:"page"`
}

// Page holds the fragments of one page, in content-stream order.
type Page struct {
	Number    int        `json:"pageNumber"`
	Fragments []Fragment `json:"items"`
}

// ExtractPages reads the text layer of every page. A document with no pages
// or no text yields an empty slice, not an error. The underlying library
// panics on some malformed files, so the recover converts that into an
// error as well.
func ExtractPages(data []byte) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("extract pdf text: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	total := reader.NumPage()
	for num := 1; num <= total; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		out := Page{Number: num}
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			out.Fragments = append(out.Fragments, Fragment{
				Text:     t.S,
				X:        t.X,
				Y:        t.Y,
				FontSize: t.FontSize,
				Bold:     IsBoldFont(t.Font),
				Page:     num,
			})
		}
		if len(out.Fragments) > 0 {
			pages = append(pages, out)
		}
	}
	return pages, nil
}

// IsBoldFont reports whether a PDF font name denotes a bold weight.
func IsBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
