package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Naive(t *testing.T) {
	out, err := execRoot(t, "timestamp", "2015-03-14T09:26:53")
	require.NoError(t, err)
	assert.Equal(t, "2015-03-14T09:26:53Z", strings.TrimSpace(out))
}

func TestTimestamp_WithUTCZone(t *testing.T) {
	out, err := execRoot(t, "timestamp", "2015-03-14T09:26:53", "--tz", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2015-03-14T09:26:53Z", strings.TrimSpace(out))
}

func TestTimestamp_Invalid(t *testing.T) {
	_, err := execRoot(t, "timestamp", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestTimestamp_UnknownZone(t *testing.T) {
	_, err := execRoot(t, "timestamp", "2015-03-14T09:26:53", "--tz", "Nowhere/Nothing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}
