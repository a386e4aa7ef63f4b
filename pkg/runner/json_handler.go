package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Message types emitted by JSONHandler, one JSON object per line.
const (
	MessagePrompt = "prompt"
	MessageInfo   = "message"
	MessageReport = "report"
)

// JSONMessage is a single line of JSONHandler output.
type JSONMessage struct {
	Type   string      `json:"type"`
	Text   string      `json:"text,omitempty"`
	Report *JSONReport `json:"report,omitempty"`
}

// JSONReport is the structured form of a Report.
type JSONReport struct {
	Discs     int             `json:"discs"`
	Disc      domain.Disc     `json:"disc"`
	From      domain.Rod      `json:"from"`
	To        domain.Rod      `json:"to"`
	MoveCount int             `json:"move_count"`
	Moves     []domain.Move   `json:"moves,omitempty"`
	Final     domain.Snapshot `json:"final"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Encoder      *json.Encoder
	MaxInputSize int

	pump linePump
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
	h.pump.reader = h.Reader
	return h
}

func (h *JSONHandler) Input(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := h.Encoder.Encode(JSONMessage{Type: MessagePrompt, Text: prompt}); err != nil {
			return "", err
		}

		text, err := h.pump.next(ctx)
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)

		// Accept a JSON string ("3") as well as raw text (3).
		var val string
		if json.Unmarshal([]byte(text), &val) == nil {
			text = strings.TrimSpace(val)
		}

		clean, err := SanitizeInput(text, h.MaxInputSize)
		if err != nil {
			if err := h.Encoder.Encode(JSONMessage{Type: MessageInfo, Text: "Error: " + err.Error() + ". Please try again."}); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) Output(ctx context.Context, msg string) error {
	if msg == "" {
		return nil
	}
	return h.Encoder.Encode(JSONMessage{Type: MessageInfo, Text: msg})
}

func (h *JSONHandler) Report(ctx context.Context, report *Report) error {
	out := &JSONReport{
		Discs:     report.Discs,
		Disc:      report.Disc,
		From:      report.From,
		To:        report.To,
		MoveCount: len(report.Moves),
		Final:     report.Final,
	}
	if report.ShowMoves {
		out.Moves = report.Moves
	}
	return h.Encoder.Encode(JSONMessage{Type: MessageReport, Report: out})
}
