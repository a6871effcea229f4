package tesseract

import (
	"context"
	"errors"
	"testing"
	"time"

	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRecognizer(fn textFunc) *Recognizer {
	return &Recognizer{languages: []string{"eng"}, text: fn}
}

func TestRecognizer_Recognize(t *testing.T) {
	t.Run("trims text", func(t *testing.T) {
		r := stubRecognizer(func(image []byte, languages []string) (string, error) {
			assert.Equal(t, []byte("png"), image)
			assert.Equal(t, []string{"eng"}, languages)
			return "\n PUROLATOR\nJOHN SMITH \n", nil
		})

		text, err := r.Recognize(t.Context(), []byte("png"))

		require.NoError(t, err)
		assert.Equal(t, "PUROLATOR\nJOHN SMITH", text)
	})

	t.Run("empty image", func(t *testing.T) {
		r := stubRecognizer(func([]byte, []string) (string, error) {
			t.Fatal("engine must not run")
			return "", nil
		})

		_, err := r.Recognize(t.Context(), nil)

		require.ErrorIs(t, err, errs.ErrRecognitionFailed)
	})

	t.Run("engine error", func(t *testing.T) {
		r := stubRecognizer(func([]byte, []string) (string, error) {
			return "", errors.New("unsupported image format")
		})

		_, err := r.Recognize(t.Context(), []byte("gif"))

		require.ErrorIs(t, err, errs.ErrRecognitionFailed)
		assert.Contains(t, err.Error(), "unsupported image format")
	})

	t.Run("deadline wins over a slow engine", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		r := stubRecognizer(func([]byte, []string) (string, error) {
			<-release
			return "late", nil
		})

		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := r.Recognize(ctx, []byte("png"))

		require.ErrorIs(t, err, errs.ErrRecognitionFailed)
		assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
		assert.Less(t, time.Since(start), time.Second)
	})
}
