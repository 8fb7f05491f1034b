package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(format string) *config.Config {
	return &config.Config{
		MinPrincipal: 0.01,
		MaxPrincipal: 1e9,
		MinRate:      0,
		MaxRate:      1e6,
		MinTermYears: 1,
		MaxTermYears: 100,
		OutputFormat: format,
	}
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	code := run(testConfig("text"), strings.NewReader("10000\n6\n1\n"), &out)
	require.Equal(t, exitOK, code)

	text := out.String()
	assert.Contains(t, text, "PaymentNumber       PaymentAmount")
	assert.Contains(t, text, "12                  860.70              4.28                0.00                10327.96            327.96")
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	code := run(testConfig("json"), strings.NewReader("1000\n0\n1\n"), &out)
	require.Equal(t, exitOK, code)

	// skip the prompts printed before the JSON document
	text := out.String()
	start := strings.Index(text, "[")
	require.GreaterOrEqual(t, start, 0)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text[start:]), &rows))
	require.Len(t, rows, 13)
	assert.Equal(t, "83.33", rows[1]["payment_amount"])
}

func TestRunDegenerate(t *testing.T) {
	var out bytes.Buffer
	code := run(testConfig("text"), strings.NewReader("0.01\n100000\n1\n"), &out)

	assert.Equal(t, exitRejected, code)
	assert.Contains(t, out.String(), "Unable to process the values entered. Terminating program.")
}

func TestRunInputClosed(t *testing.T) {
	var out bytes.Buffer
	code := run(testConfig("text"), strings.NewReader("10000\n"), &out)

	assert.Equal(t, exitInput, code)
}

func TestRunUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	code := run(testConfig("xml"), strings.NewReader(""), &out)

	assert.Equal(t, exitInternal, code)
}
