package currency_test

import (
	"testing"

	"github.com/niksmo/shopping-site/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "NT$ 0"},
		{799, "NT$ 799"},
		{35900, "NT$ 35,900"},
		{60800, "NT$ 60,800"},
		{1234567, "NT$ 1,234,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, currency.TWD.Format(tt.amount))
	}
}
