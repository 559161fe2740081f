package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutOpenExists(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/exports/")
	require.NoError(t, err)

	key, err := s.Put(ctx, "payroll/2024-01-15/report.csv", strings.NewReader("a,b"))
	require.NoError(t, err)
	assert.Equal(t, "payroll/2024-01-15/report.csv", key)

	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(body))

	assert.Equal(t, "http://localhost:8080/exports/payroll/2024-01-15/report.csv", s.URL(key))
}

func TestLocalStorage_ExistsMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	ok, err := s.Exists(context.Background(), "nope.csv")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	for _, key := range []string{"", "../secret", "/etc/passwd", "a/../../b"} {
		_, err := s.Put(context.Background(), key, strings.NewReader("x"))
		assert.True(t, errors.Is(err, ErrInvalidKey), "key %q", key)
	}
}

func TestLocalStorage_OpenMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	_, err = s.Open(context.Background(), "payroll/missing.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
