package objectstore

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransport answers every request with 200 and keeps PUT bodies
type recordingTransport struct {
	mu   sync.Mutex
	puts map[string]string
	fail bool
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	status := http.StatusOK
	if rt.fail {
		status = http.StatusForbidden
	}
	if req.Method == http.MethodPut && !rt.fail {
		rt.mu.Lock()
		rt.puts[req.URL.Path] = string(body)
		rt.mu.Unlock()
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

func newTestUploader(rt *recordingTransport) *S3Uploader {
	u := NewS3Uploader(Config{
		Endpoint:   "https://mock.s3.local",
		PathStyle:  true,
		HTTPClient: &http.Client{Transport: rt},
		Options: []func(*config.LoadOptions) error{
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
		},
	})
	u.newID = func() string { return "batch-1" }
	return u
}

func TestParseDestination(t *testing.T) {
	tests := []struct {
		dest       string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{dest: "s3://params", wantBucket: "params"},
		{dest: "s3://params/exports/daily/", wantBucket: "params", wantPrefix: "exports/daily"},
		{dest: "s3:///prefix", wantErr: true},
		{dest: "/tmp/export", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			bucket, prefix, err := ParseDestination(tt.dest)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestS3Uploader_Upload(t *testing.T) {
	dir := t.TempDir()
	files := []string{filepath.Join(dir, "A.paramdb"), filepath.Join(dir, "B.paramdb")}
	for _, f := range files {
		require.NoError(t, os.WriteFile(f, []byte("contents of "+filepath.Base(f)), 0644))
	}

	rt := &recordingTransport{puts: map[string]string{}}
	urls, err := newTestUploader(rt).Upload(context.Background(), "s3://params/exports", files)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"s3://params/exports/batch-1/A.paramdb",
		"s3://params/exports/batch-1/B.paramdb",
	}, urls)
	require.Len(t, rt.puts, 2)
	assert.Contains(t, rt.puts["/params/exports/batch-1/A.paramdb"], "contents of A.paramdb")
}

func TestS3Uploader_UploadErrors(t *testing.T) {
	t.Run("bad destination", func(t *testing.T) {
		_, err := newTestUploader(&recordingTransport{puts: map[string]string{}}).Upload(context.Background(), "params", nil)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		rt := &recordingTransport{puts: map[string]string{}}
		_, err := newTestUploader(rt).Upload(context.Background(), "s3://params", []string{filepath.Join(t.TempDir(), "none")})
		assert.Error(t, err)
		assert.Empty(t, rt.puts)
	})

	t.Run("rejected by store", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "A.paramdb")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		_, err := newTestUploader(&recordingTransport{puts: map[string]string{}, fail: true}).Upload(context.Background(), "s3://params", []string{file})
		assert.Error(t, err)
	})
}
