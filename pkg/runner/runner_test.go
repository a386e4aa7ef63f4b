package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHandler records the interaction with a Runner.
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Input(ctx context.Context, prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockHandler) Output(ctx context.Context, msg string) error {
	return m.Called(msg).Error(0)
}

func (m *MockHandler) Report(ctx context.Context, report *Report) error {
	return m.Called(report).Error(0)
}

func runText(t *testing.T, input string) (*Report, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader(input), out)))
	report, err := r.Run(context.Background())
	return report, out.String(), err
}

func TestRunner_Run_SingleDisc(t *testing.T) {
	report, out, err := runText(t, "1\nA\n1\nB\ny\n")
	require.NoError(t, err)

	expected := "How many discs would you like for the puzzle? \n" +
		"What rod should the discs start on? (A, B, C) \n" +
		"Starting state of rods:\n" +
		"A: 1 | B: | C:\n" +
		"\n" +
		"What disc should be moved? \n" +
		"What rod should the disc and those above it end up on? (A, B, C) \n" +
		"Would you like to see the moves? (y/n) \n" +
		"It takes 1 move to solve the Tower of Hanoi puzzle with the given constraints.\n" +
		"Step 1: Move disc 1 from rod A to B\n" +
		"A: | B: 1 | C:\n" +
		"\n"
	assert.Equal(t, expected, out)
	assert.Equal(t, 1, report.MoveCount())
}

func TestRunner_Run_RepromptsUntilValid(t *testing.T) {
	input := strings.Join([]string{
		"x", "0", "-2", "3", // disc count
		"D", "", "a", // start rod
		"4", "three", "3", // disc
		"C",          // target
		"maybe", "Y", // show moves
	}, "\n") + "\n"

	report, out, err := runText(t, input)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "Please provide a valid number of discs.\n\n"))
	assert.Equal(t, 2, strings.Count(out, "Please provide a valid rod.\n\n"))
	assert.Equal(t, 2, strings.Count(out, "Please provide a valid disc to move.\n\n"))
	assert.Equal(t, 1, strings.Count(out, "Please provide a valid answer.\n\n"))

	assert.Contains(t, out, "Starting state of rods:\nA: 3 2 1 | B: | C:\n")
	assert.Contains(t, out, "It takes 7 moves to solve")
	assert.Contains(t, out, "Step 4: Move disc 3 from rod A to C\nA: | B: 2 1 | C: 3\n")
	assert.True(t, strings.HasSuffix(out, "Step 7: Move disc 1 from rod A to C\nA: | B: | C: 3 2 1\n\n"))

	assert.Equal(t, domain.Snapshot{domain.RodA: {}, domain.RodB: {}, domain.RodC: {3, 2, 1}}, report.Final)
}

func TestRunner_Run_HiddenMoves(t *testing.T) {
	report, out, err := runText(t, "5\nB\n2\nB\nn\n")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out, "It takes 0 moves to solve the Tower of Hanoi puzzle with the given constraints.\n"))
	assert.NotContains(t, out, "Step 1")
	assert.Empty(t, report.Moves)
}

func TestRunner_Run_EOF(t *testing.T) {
	_, _, err := runText(t, "3\n")
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunner_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("3\n"), io.Discard)))
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_Run_OutputErrorAborts(t *testing.T) {
	h := new(MockHandler)
	h.On("Input", "How many discs would you like for the puzzle?").Return("2", nil).Once()
	h.On("Output", "").Return(errors.New("broken pipe")).Once()

	_, err := NewRunner(WithInputHandler(h)).Run(context.Background())
	assert.EqualError(t, err, "broken pipe")
	h.AssertExpectations(t)
}

func TestRunner_Run_ReportIsHandedToHandler(t *testing.T) {
	h := new(MockHandler)
	h.On("Input", mock.MatchedBy(func(p string) bool { return strings.HasPrefix(p, "How many") })).Return("2", nil)
	h.On("Input", mock.MatchedBy(func(p string) bool { return strings.HasPrefix(p, "What rod should the discs") })).Return("C", nil)
	h.On("Input", "What disc should be moved?").Return("2", nil)
	h.On("Input", mock.MatchedBy(func(p string) bool { return strings.HasPrefix(p, "What rod should the disc and") })).Return("A", nil)
	h.On("Input", "Would you like to see the moves? (y/n)").Return("n", nil)
	h.On("Output", mock.Anything).Return(nil)
	h.On("Report", mock.MatchedBy(func(r *Report) bool {
		return r.MoveCount() == 3 && r.From == domain.RodC && r.To == domain.RodA && !r.ShowMoves
	})).Return(nil).Once()

	_, err := NewRunner(WithInputHandler(h)).Run(context.Background())
	require.NoError(t, err)
	h.AssertExpectations(t)
	h.AssertCalled(t, "Output", "A: | B: | C: 2 1")
}

func TestRunner_Execute(t *testing.T) {
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader(""), io.Discard)))

	report, err := r.Execute(context.Background(), Settings{Discs: 3, From: domain.RodA, Disc: 3, To: domain.RodC, ShowMoves: true})
	require.NoError(t, err)
	assert.Equal(t, 7, report.MoveCount())
	assert.Equal(t, domain.Snapshot{domain.RodA: {3, 2, 1}, domain.RodB: {}, domain.RodC: {}}, report.Start)
}

func TestRunner_Execute_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{"No Discs", Settings{Discs: 0, From: domain.RodA, Disc: 1, To: domain.RodB}, domain.ErrInvalidDiscCount},
		{"Too Many Discs", Settings{Discs: DefaultMaxDiscs + 1, From: domain.RodA, Disc: 1, To: domain.RodB}, domain.ErrInvalidDiscCount},
		{"Bad Start", Settings{Discs: 2, From: "X", Disc: 1, To: domain.RodB}, domain.ErrInvalidRod},
		{"Bad Target", Settings{Discs: 2, From: domain.RodA, Disc: 1, To: "Y"}, domain.ErrInvalidRod},
		{"Disc Out Of Range", Settings{Discs: 2, From: domain.RodA, Disc: 3, To: domain.RodB}, domain.ErrInvalidDisc},
	}

	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader(""), io.Discard)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(context.Background(), tt.settings)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunner_Execute_DefaultLimitFootprint(t *testing.T) {
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader(""), io.Discard)))

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	report, err := r.Execute(context.Background(), Settings{
		Discs: DefaultMaxDiscs, From: domain.RodA, Disc: DefaultMaxDiscs, To: domain.RodC,
	})
	require.NoError(t, err)

	runtime.ReadMemStats(&after)
	assert.Equal(t, domain.MoveCount(DefaultMaxDiscs), report.MoveCount())

	const budget = 128 << 20
	allocated := after.TotalAlloc - before.TotalAlloc
	assert.Less(t, allocated, uint64(budget), "solving %d discs allocated %d MB", DefaultMaxDiscs, allocated>>20)
}
