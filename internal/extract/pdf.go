package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText извлекает текст PDF постранично. Каждая страница получает
// маркер [Page N], чтобы модель могла сослаться на место в документе.
func PDFText(path string) (text string, pages int, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	pages = r.NumPage()

	var fullText []string
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		fullText = append(fullText, fmt.Sprintf("[Page %d] %s", i, pageText))
	}

	return strings.Join(fullText, "\n"), pages, nil
}
