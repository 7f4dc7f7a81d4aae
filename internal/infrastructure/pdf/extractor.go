package pdf

import (
	"bytes"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// Extractor pulls plain text out of uploaded PDF résumés.
type Extractor struct {
	log *logrus.Logger
}

func NewExtractor(log *logrus.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns the text of every readable page joined by newlines.
// Unreadable, encrypted or empty documents yield "".
func (e *Extractor) Extract(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		e.log.WithError(err).Debug("pdf: open failed")
		return ""
	}
	if encrypted, err := reader.IsEncrypted(); err != nil || encrypted {
		return ""
	}
	numPages, err := reader.GetNumPages()
	if err != nil {
		e.log.WithError(err).Debug("pdf: page count failed")
		return ""
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			e.log.WithError(err).WithField("page", i).Debug("pdf: skip page")
			continue
		}
		ex, err := extractor.New(page)
		if err != nil {
			e.log.WithError(err).WithField("page", i).Debug("pdf: skip page")
			continue
		}
		text, err := ex.ExtractText()
		if err != nil {
			e.log.WithError(err).WithField("page", i).Debug("pdf: skip page")
			continue
		}
		pages = append(pages, text)
	}
	return strings.TrimSpace(strings.Join(pages, "\n"))
}
