package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		MinPrincipal: 0.01,
		MaxPrincipal: 1e9,
		MinRate:      0,
		MaxRate:      100,
		MinTermYears: 1,
		MaxTermYears: 100,
	}
}

func TestReadLoanInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testConfig(), strings.NewReader("10000\n6\n1\n"), &out)

	input, err := p.ReadLoanInput()
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(10000).Equal(input.Principal))
	assert.Equal(t, 6.0, input.AnnualRatePercent)
	assert.Equal(t, 1, input.TermYears)
	assert.Equal(t, promptAmount+promptRate+promptTerm, out.String())
}

func TestReadLoanInputReprompts(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("abc\n-5\n 2500.50 \n200\n4.5\nten\n0\n15\n")
	p := NewPrompter(testConfig(), in, &out)

	input, err := p.ReadLoanInput()
	require.NoError(t, err)

	assert.Equal(t, "2500.5", input.Principal.String())
	assert.Equal(t, 4.5, input.AnnualRatePercent)
	assert.Equal(t, 15, input.TermYears)

	want := promptAmount + invalidValue +
		promptAmount + "Please enter a positive value between 0.01 and 1000000000. " + invalidValue +
		promptAmount +
		promptRate + "Please enter a positive value between 0 and 100. " + invalidValue +
		promptRate +
		promptTerm + invalidValue +
		promptTerm + "Please enter a positive integer value between 1 and 100. " + invalidValue +
		promptTerm
	assert.Equal(t, want, out.String())
}

func TestReadLoanInputClosed(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testConfig(), strings.NewReader("10000\n"), &out)

	_, err := p.ReadLoanInput()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
}
