package pdf

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unipdf/v3/creator"
)

// Renderer lays out plain text as a simple A4 document.
type Renderer struct {
	FontSize float64
	Margin   float64
}

func NewRenderer() *Renderer {
	return &Renderer{FontSize: 11, Margin: 50}
}

// Render writes one paragraph per line. Blank lines keep their vertical space.
func (r *Renderer) Render(lines []string) ([]byte, error) {
	c := creator.New()
	c.SetPageSize(creator.PageSizeA4)
	c.SetPageMargins(r.Margin, r.Margin, r.Margin, r.Margin)
	c.NewPage()

	for _, line := range lines {
		if line == "" {
			line = " "
		}
		p := c.NewParagraph(line)
		p.SetFontSize(r.FontSize)
		p.SetMargins(0, 0, 2, 2)
		p.SetEnableWrap(true)
		if err := c.Draw(p); err != nil {
			return nil, fmt.Errorf("draw paragraph: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
