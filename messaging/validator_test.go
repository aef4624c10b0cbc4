package messaging

import (
	"errors"
	"strings"
	"testing"

	"github.com/glimte/msgevents-go/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		name    string
		arg     any
		wantErr error
	}{
		{name: "valid id", arg: "info"},
		{name: "maximum length", arg: strings.Repeat("x", contracts.MaxIDLength)},
		{name: "nil", arg: nil, wantErr: contracts.ErrInvalidArguments},
		{name: "not a string", arg: 12, wantErr: contracts.ErrInvalidArguments},
		{name: "empty", arg: "", wantErr: contracts.ErrInvalidIDLength},
		{name: "too long", arg: strings.Repeat("x", contracts.MaxIDLength+1), wantErr: contracts.ErrInvalidIDLength},
		{name: "constructor", arg: "constructor", wantErr: contracts.ErrInternalID},
		{name: "format", arg: "format", wantErr: contracts.ErrInternalID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := validID(contracts.OpOn, tt.arg)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.arg, id)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, id)

			var vErr *contracts.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, contracts.OpOn, vErr.Op)
		})
	}
}

func TestValidHandler(t *testing.T) {
	var typedNil Handler

	valid := []any{Handler(func(any) {}), func(any) {}}
	invalid := []any{nil, "handler", typedNil, func() {}, func(any) any { return nil }}

	for _, fn := range valid {
		_, err := validHandler(contracts.OpOn, fn)
		assert.NoError(t, err)
	}
	for _, fn := range invalid {
		_, err := validHandler(contracts.OpOn, fn)
		assert.ErrorIs(t, err, contracts.ErrInvalidHandler)
	}
}

func TestValidFormat(t *testing.T) {
	var typedNil FormatFunc
	var nilUnary func(any) any

	valid := []any{
		FormatFunc(IdentityFormat),
		IdentityFormat,
		func(any) any { return nil },
		func() any { return nil },
	}
	invalid := []any{nil, 3.14, typedNil, nilUnary, func(any) {}}

	for _, fn := range valid {
		_, err := validFormat(contracts.OpFormat, fn)
		assert.NoError(t, err)
	}
	for _, fn := range invalid {
		_, err := validFormat(contracts.OpFormat, fn)
		assert.ErrorIs(t, err, contracts.ErrInvalidHandler)
	}
}
