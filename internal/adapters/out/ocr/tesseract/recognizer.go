// Package tesseract reads label photos with the Tesseract engine through gosseract.
package tesseract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"depot/internal/pkg/errs"

	"github.com/otiai10/gosseract/v2"
)

var ErrEmptyImage = errors.New("empty image")

type textFunc func(image []byte, languages []string) (string, error)

// Recognizer implements ports.Recognizer. Tesseract calls cannot be interrupted, so a call
// that outlives ctx keeps running in the background and its result is dropped.
type Recognizer struct {
	languages []string
	text      textFunc
}

// NewRecognizer creates a recognizer for the given Tesseract languages ("eng", "fra").
func NewRecognizer(languages ...string) *Recognizer {
	return &Recognizer{languages: languages, text: gosseractText}
}

type result struct {
	text string
	err  error
}

func (r *Recognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errs.NewRecognitionFailedError(ErrEmptyImage)
	}

	done := make(chan result, 1)
	go func() {
		text, err := r.text(image, r.languages)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", errs.NewRecognitionFailedError(ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", errs.NewRecognitionFailedError(res.err)
		}
		return strings.TrimSpace(res.text), nil
	}
}

func gosseractText(image []byte, languages []string) (string, error) {
	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(languages) > 0 {
		if err := c.SetLanguage(languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
