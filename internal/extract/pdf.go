package extract

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

type pdfText struct{}

func (pdfText) Extract(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var sb bytes.Buffer
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", err
	}
	return sb.String(), nil
}
