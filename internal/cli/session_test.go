package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/fraction/internal/config"
	"github.com/govalues/fraction/internal/logger"
)

const prompts = "Enter the numerator of fraction 1:\n" +
	"Enter the denominator of fraction 1:\n" +
	"Enter the numerator of fraction 2:\n" +
	"Enter the denominator of fraction 2:\n"

func runSession(t *testing.T, input string, cfg config.Config) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, cfg, logger.Discard())
	require.NoError(t, s.Run())
	return out.String()
}

func TestSession_AllOperations(t *testing.T) {
	got := runSession(t, "1\n2\n1\n3\n\n", config.Default())

	want := prompts +
		"First fraction: 1/2\nAs a number: 0.5\n" +
		"Second fraction: 1/3\nAs a number: 0.3333333333333333\n" +
		"Sum: 5/6\nAs a number: 0.8333333333333334\n" +
		"Difference: 1/6\nAs a number: 0.16666666666666666\n" +
		"Product: 1/6\nAs a number: 0.16666666666666666\n" +
		"Quotient: 3/2\nAs a number: 1.5\n"
	assert.Equal(t, want, got)
}

func TestSession_Precision(t *testing.T) {
	cfg := config.Default()
	cfg.Precision = 4
	got := runSession(t, "1\n2\n1\n3\n", cfg)

	assert.Contains(t, got, "First fraction: 1/2\nAs a number: 0.5000\n")
	assert.Contains(t, got, "Sum: 5/6\nAs a number: 0.8333\n")
	assert.Contains(t, got, "Difference: 1/6\nAs a number: 0.1667\n")
	assert.Contains(t, got, "Quotient: 3/2\nAs a number: 1.5000\n")
}

func TestSession_UnreducedInput(t *testing.T) {
	got := runSession(t, "2\n4\n1\n4\n", config.Default())

	assert.Contains(t, got, "First fraction: 2/4\n")
	assert.Contains(t, got, "Sum: 3/4\n")
	assert.Contains(t, got, "Quotient: 2/1\n")
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	cfg := config.Default()
	cfg.Wait = false
	got := runSession(t, "1\n2\n1\n3", cfg)

	assert.Contains(t, got, "Quotient: 3/2\n")
}

func TestSession_ZeroDenominator(t *testing.T) {
	got := runSession(t, "1\n0\n1\n3\n", config.Default())

	assert.Equal(t, prompts+"invalid argument: denominator cannot be zero\n", got)
}

func TestSession_DivideByZeroFraction(t *testing.T) {
	got := runSession(t, "1\n2\n0\n5\n", config.Default())

	assert.Contains(t, got, "Sum: 1/2\n")
	assert.Contains(t, got, "Difference: 1/2\n")
	assert.Contains(t, got, "Product: 0/1\nAs a number: 0\n")
	assert.True(t, strings.HasSuffix(got,
		"computing [1/2 / 0/5]: invalid argument: denominator cannot be zero\n"), got)
	assert.NotContains(t, got, "Quotient:")
	assert.NotContains(t, got, "Error: ")
}

func TestSession_NonNumericInput(t *testing.T) {
	got := runSession(t, "1\nabc\n1\n3\n", config.Default())

	assert.Contains(t, got, "Error: parsing denominator of fraction 1:")
	assert.NotContains(t, got, "numerator of fraction 2")
	assert.NotContains(t, got, "First fraction")
}

func TestSession_MissingInput(t *testing.T) {
	got := runSession(t, "1\n2\n", config.Default())

	assert.Contains(t, got, "Error: reading numerator of fraction 2: EOF\n")
}

func TestSession_Overflow(t *testing.T) {
	got := runSession(t, "9223372036854775807\n1\n1\n1\n", config.Default())

	assert.Contains(t, got, "First fraction: 9223372036854775807/1\n")
	assert.Contains(t, got, "Error: computing [9223372036854775807/1 + 1/1]: fraction overflow\n")
	assert.NotContains(t, got, "Sum:")
}

func TestSession_WaitConsumesFinalLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\n2\n1\n3\nbye\n")
	s := NewSession(in, &out, config.Default(), logger.Discard())
	require.NoError(t, s.Run())

	_, err := s.in.ReadString('\n')
	assert.Error(t, err, "final line should have been consumed")
}

func TestSession_Logs(t *testing.T) {
	var out, logs bytes.Buffer
	s := NewSession(strings.NewReader("1\n2\n0\n5\n"), &out, config.Default(), logger.New(&logs, true))
	require.NoError(t, s.Run())

	assert.Contains(t, logs.String(), `"msg":"session.started"`)
	assert.Contains(t, logs.String(), `"msg":"fraction.read"`)
	assert.Contains(t, logs.String(), `"msg":"operation.completed"`)
	assert.Contains(t, logs.String(), `"msg":"operation.failed"`)
	assert.Contains(t, logs.String(), `"op":"Quotient"`)
}
