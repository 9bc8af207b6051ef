package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1.234,56", want: 123456},
		{in: "-588,74", want: -58874},
		{in: "10,00", want: 1000},
		{in: "1,234.56", want: 123456},
		{in: "-84.20", want: -8420},
		{in: "2500.00", want: 250000},
		{in: "0,00", want: 0},
		{in: "48.825,46", want: 4882546},
		{in: "not a number", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
