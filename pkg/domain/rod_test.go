package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRod(t *testing.T) {
	tests := []struct {
		input   string
		want    Rod
		wantErr bool
	}{
		{"A", RodA, false},
		{"b", RodB, false},
		{" C ", RodC, false},
		{"D", "", true},
		{"", "", true},
		{"AB", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRod(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRod)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuxiliary(t *testing.T) {
	tests := []struct {
		from, to, want Rod
		ok             bool
	}{
		{RodA, RodC, RodB, true},
		{RodA, RodB, RodC, true},
		{RodC, RodB, RodA, true},
		{RodB, RodB, "", false},
		{RodA, "X", "", false},
	}

	for _, tt := range tests {
		got, ok := Auxiliary(tt.from, tt.to)
		assert.Equal(t, tt.ok, ok, "%s->%s", tt.from, tt.to)
		assert.Equal(t, tt.want, got, "%s->%s", tt.from, tt.to)
	}
}
