package minio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordcount/source"
)

// fakeS3 serves GET requests for a fixed set of objects.
func fakeS3(t *testing.T, objects map[string]string) *minio.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := objects[r.URL.Path]
		if !ok || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("ETag", `"0123456789abcdef"`)
		w.Header().Set("Last-Modified", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return client
}

func TestStore_Open(t *testing.T) {
	text := strings.Repeat("the quick brown fox ", 100)
	client := fakeS3(t, map[string]string{
		"/books/corpora/fox.txt": text,
	})
	store := NewStore(client, "books", "corpora")

	t.Run("Success", func(t *testing.T) {
		blob, err := store.Open(context.Background(), "fox.txt")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(len(text)), blob.Size())
		assert.Equal(t, text, string(blob.Bytes()))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(context.Background(), "missing.txt")
		assert.ErrorIs(t, err, source.ErrNotFound)
	})
}

func TestStore_Key(t *testing.T) {
	assert.Equal(t, "a/b.txt", NewStore(nil, "bucket", "a").key("b.txt"))
	assert.Equal(t, "b.txt", NewStore(nil, "bucket", "").key("b.txt"))
}
