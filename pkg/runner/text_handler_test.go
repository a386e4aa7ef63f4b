package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("  B \r\n"), outBuf)

	val, err := handler.Input(context.Background(), "Which rod?")
	require.NoError(t, err)

	assert.Equal(t, "B", val)
	assert.Equal(t, "Which rod? ", outBuf.String())
}

func TestTextHandler_Input_LastLineWithoutNewline(t *testing.T) {
	handler := NewTextHandler(strings.NewReader("y"), io.Discard)

	val, err := handler.Input(context.Background(), "?")
	require.NoError(t, err)
	assert.Equal(t, "y", val)

	_, err = handler.Input(context.Background(), "?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestTextHandler_Input_TooLarge(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("123456\n42\n"), outBuf, WithTextHandlerMaxInputSize(4))

	val, err := handler.Input(context.Background(), ">")
	require.NoError(t, err)

	assert.Equal(t, "42", val)
	assert.Contains(t, outBuf.String(), "input exceeds maximum allowed size")
	assert.Equal(t, 2, strings.Count(outBuf.String(), "> "))
}

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	require.NoError(t, handler.Output(context.Background(), "Starting state of rods:"))
	require.NoError(t, handler.Output(context.Background(), ""))

	assert.Equal(t, "Starting state of rods:\n\n", outBuf.String())
}

func TestTextHandler_Report_Renderer(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerRenderer(func(s string) (string, error) {
		return "Rendered: " + s, nil
	}))

	report := &Report{Discs: 1, Disc: 1, From: domain.RodA, To: domain.RodB}
	require.NoError(t, handler.Report(context.Background(), report))

	assert.True(t, strings.HasPrefix(outBuf.String(), "Rendered: # Tower of Hanoi"))
}

func TestTextHandler_Report_Plain(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	report := &Report{Discs: 1, Disc: 1, From: domain.RodA, To: domain.RodA}
	require.NoError(t, handler.Report(context.Background(), report))

	assert.Equal(t, "It takes 0 moves to solve the Tower of Hanoi puzzle with the given constraints.\n", outBuf.String())
}

func TestTextHandler_Input_CancelledWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	h := NewTextHandler(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := h.Input(ctx, "What disc should be moved?")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Input did not return after cancellation")
	}
}
