package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(LocalStorageConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/exports/",
	})
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.UploadFile(ctx, strings.NewReader(`{"ok":true}`), 11, "reports/u1/weekly.json", "application/json")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/exports/reports/u1/weekly.json", url)

	rc, contentType, err := store.GetFileContent(ctx, "reports/u1/weekly.json")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "application/json", contentType)

	require.NoError(t, store.DeleteFile(ctx, "reports/u1/weekly.json"))
	_, _, err = store.GetFileContent(ctx, "reports/u1/weekly.json")
	assert.ErrorIs(t, err, ErrFileNotFound)

	// ลบซ้ำไม่ error
	assert.NoError(t, store.DeleteFile(ctx, "reports/u1/weekly.json"))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(LocalStorageConfig{BasePath: t.TempDir()})
	require.NoError(t, err)

	_, err = store.UploadFile(context.Background(), strings.NewReader("x"), 1, "../escape.json", "application/json")
	assert.ErrorIs(t, err, ErrUnsafePath)
}
