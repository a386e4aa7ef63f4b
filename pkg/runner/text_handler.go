package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Renderer     ContentRenderer
	MaxInputSize int

	pump linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the markdown renderer used for reports.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerMaxInputSize limits the accepted length of an answer.
func WithTextHandlerMaxInputSize(size int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = size
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	h.pump.reader = h.Reader
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Input(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(h.Writer, prompt+" ")

		text, err := h.pump.next(ctx)
		if err == io.EOF {
			fmt.Fprintln(h.Writer)
		}
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(strings.TrimSpace(text), h.MaxInputSize)
		if err != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

func (h *TextHandler) Output(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}

func (h *TextHandler) Report(ctx context.Context, report *Report) error {
	if h.Renderer != nil {
		if rendered, err := h.Renderer(report.Markdown()); err == nil {
			_, err = fmt.Fprint(h.Writer, rendered)
			return err
		}
	}
	_, err := fmt.Fprint(h.Writer, report.Text())
	return err
}
