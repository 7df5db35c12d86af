package storage_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"save-editor/core/storage"
	"save-editor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() storage.Config {
	return storage.Config{
		Endpoint:     "minio:9000",
		Bucket:       "saves",
		BackupPrefix: "backups",
	}
}

func TestFetchSave(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(bytes.NewReader([]byte(`{"type":"BitburnerSaveObject","data":{}}`)))
	client.On("GetObject", mock.Anything, "saves", "sources/save.json", mock.Anything).
		Return(body, nil)

	data, err := storage.FetchSave(context.Background(), client, testConfig(), "sources/save.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "BitburnerSaveObject")
	client.AssertExpectations(t)
}

func TestFetchSaveError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "saves", "missing.json", mock.Anything).
		Return(nil, assert.AnError)

	_, err := storage.FetchSave(context.Background(), client, testConfig(), "missing.json")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBackupExport(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "saves", "backups/bitburnerSave_1_BN1-edited.json",
		mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	object, err := storage.BackupExport(context.Background(), client, testConfig(),
		"bitburnerSave_1_BN1-edited.json", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "backups/bitburnerSave_1_BN1-edited.json", object)
	client.AssertExpectations(t)
}

func TestListSaves(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "sources/a.json"}
	ch <- minio.ObjectInfo{Key: "sources/b.json.gz"}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "saves", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	names, err := storage.ListSaves(context.Background(), client, testConfig(), "sources/")
	require.NoError(t, err)
	assert.Equal(t, []string{"sources/a.json", "sources/b.json.gz"}, names)
}

func TestListSavesPropagatesError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "saves", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	_, err := storage.ListSaves(context.Background(), client, testConfig(), "")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigEnabled(t *testing.T) {
	assert.True(t, testConfig().Enabled())
	assert.False(t, storage.Config{Endpoint: "minio:9000"}.Enabled())
	assert.False(t, storage.Config{Bucket: "saves"}.Enabled())
	assert.False(t, storage.Config{}.Enabled())
}
