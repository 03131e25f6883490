package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykonstant1/esiv/format"
	"github.com/ykonstant1/esiv/sieve"
	"github.com/ykonstant1/esiv/snapshot"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want format.CompressionType
	}{
		{"none", format.CompressionNone},
		{"zstd", format.CompressionZstd},
		{"s2", format.CompressionS2},
		{"lz4", format.CompressionLZ4},
		{"ZSTD", format.CompressionZstd},
	}

	for _, tt := range tests {
		got, err := parseCompression(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseCompression("brotli")
	assert.Error(t, err)
}

func TestInspect_ValidSnapshot(t *testing.T) {
	table := sieve.New(3_000)
	data, err := snapshot.Encode(table, snapshot.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	var out strings.Builder
	code := inspect(&out, data, false)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Header:      OK")
	assert.Contains(t, out.String(), "Compression: S2")
	assert.Contains(t, out.String(), "Bound:       3000")
	assert.Contains(t, out.String(), "Checksum:    OK")
	assert.Contains(t, out.String(), "Primes:      430")
}

func TestInspect_Verbose(t *testing.T) {
	table := sieve.New(90)
	data, err := snapshot.Encode(table, snapshot.WithCompression(format.CompressionNone))
	require.NoError(t, err)

	var out strings.Builder
	code := inspect(&out, data, true)

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "\n2\n")
	assert.Contains(t, out.String(), "\n89\n")
}

func TestInspect_CorruptPayload(t *testing.T) {
	table := sieve.New(3_000)
	data, err := snapshot.Encode(table, snapshot.WithCompression(format.CompressionNone))
	require.NoError(t, err)

	data[snapshot.HeaderSize+10] ^= 0x08

	var out strings.Builder
	code := inspect(&out, data, false)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Checksum:    FAILED")
}

func TestInspect_Garbage(t *testing.T) {
	var out strings.Builder
	code := inspect(&out, []byte("not a snapshot"), false)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Header: INVALID")
}

func TestWriteSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primes.snap")

	var out strings.Builder
	code := writeSnapshot(&out, path, 10_000, "lz4")
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "bound 10020")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	table, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(10_020), table.Bound())
	assert.True(t, table.Contains(9_973))
}

func TestWriteSnapshot_BadCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primes.snap")

	var out strings.Builder
	code := writeSnapshot(&out, path, 1_000, "brotli")
	assert.Equal(t, 1, code)
}
