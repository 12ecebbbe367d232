package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideRequestValidate(t *testing.T) {
	strategies := []string{"random", "positional"}

	tests := []struct {
		name       string
		request    DecideRequest
		wantErrMsg string
	}{
		{
			name:    "OK",
			request: DecideRequest{Board: "x", Strategy: "positional", Depth: 3},
		},
		{
			name:    "ZeroDepth",
			request: DecideRequest{Board: "x", Strategy: "random"},
		},
		{
			name:       "EmptyBoard",
			request:    DecideRequest{Strategy: "random"},
			wantErrMsg: "board is empty",
		},
		{
			name:       "UnknownStrategy",
			request:    DecideRequest{Board: "x", Strategy: "edax"},
			wantErrMsg: "strategy must be one of: [random positional]",
		},
		{
			name:       "NegativeDepth",
			request:    DecideRequest{Board: "x", Strategy: "random", Depth: -1},
			wantErrMsg: "depth cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate(strategies)
			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
