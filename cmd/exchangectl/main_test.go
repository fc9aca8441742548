package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"exchangectl"}, args...))
	return out.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exchange.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestRates(t *testing.T) {
	out, err := runApp(t, "rates")
	require.NoError(t, err)
	assert.Contains(t, out, "Copper")
	assert.Contains(t, out, "LegendaryBar")
	assert.Contains(t, out, "100000000000000000")
}

func TestQuote(t *testing.T) {
	path := writeConfig(t, `{"version":"v3","feeRate":{"G_to_P":0.15}}`)

	out, err := runApp(t, "quote", "--config", path, "--from", "G", "--to", "P", "--amount", "10000000")
	require.NoError(t, err)
	assert.Contains(t, out, `"credited": 10000`)
	assert.Contains(t, out, `"debited": 11500000`)
	assert.Contains(t, out, `"feeApplied": 1500000`)
	assert.Contains(t, out, `"rateUsed": "1000 Gold = 1 Platinum"`)
}

func TestQuote_NoConfig(t *testing.T) {
	out, err := runApp(t, "quote", "--from", "Silver", "--to", "Electrum", "--amount", "10000")
	require.NoError(t, err)
	assert.Contains(t, out, `"credited": 1000`)
	assert.Contains(t, out, `"feeApplied": 0`)
}

func TestQuote_Rejected(t *testing.T) {
	path := writeConfig(t, `{"minUnit":{"S_to_E":1000}}`)

	_, err := runApp(t, "quote", "--config", path, "--from", "S", "--to", "E", "--amount", "999")
	assert.ErrorContains(t, err, "MIN_UNIT_NOT_MET")

	_, err = runApp(t, "quote", "--from", "Diamond", "--to", "E", "--amount", "1")
	assert.ErrorContains(t, err, "UNSUPPORTED_CURRENCY")
}

func TestValidateConfig(t *testing.T) {
	path := writeConfig(t, `{"version":"v3","feeRate":{"G_to_P":0.15},"minUnit":{"Silver_to_Electrum":1000}}`)

	out, err := runApp(t, "validate-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `version "v3" is valid`)
	assert.Contains(t, out, "Gold_to_Platinum")
	assert.Contains(t, out, "Silver_to_Electrum")
}

func TestValidateConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `{"feeRate":{"G_to_G":0.1}}`)

	_, err := runApp(t, "validate-config", path)
	assert.ErrorContains(t, err, "invalid exchange config")

	_, err = runApp(t, "validate-config")
	assert.Error(t, err)
}

func TestPublishConfig_RejectsBeforeConnecting(t *testing.T) {
	path := writeConfig(t, `{"feeRate":{"G_to_P":0.15}}`)

	// no version in the document and none given
	_, err := runApp(t, "publish-config", "--dsn", "postgres://nowhere:1/db", path)
	assert.ErrorContains(t, err, "config version is required")

	bad := writeConfig(t, `{"version":"v1","feeRate":{"G_to_P":1.5}}`)
	_, err = runApp(t, "publish-config", "--dsn", "postgres://nowhere:1/db", bad)
	assert.ErrorContains(t, err, "invalid exchange config")
}
