package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// FetchSave downloads a source save file from the configured bucket.
func FetchSave(ctx context.Context, client Client, cfg Config, objectName string) ([]byte, error) {
	reader, err := client.GetObject(ctx, cfg.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get save %s: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read save %s: %w", objectName, err)
	}
	return data, nil
}

// BackupExport mirrors an exported artifact under the backup prefix.
// Returns the object name the backup was written to.
func BackupExport(ctx context.Context, client Client, cfg Config, filename string, data []byte) (string, error) {
	objectName := path.Join(cfg.BackupPrefix, filename)
	_, err := client.PutObject(
		ctx,
		cfg.Bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return "", fmt.Errorf("failed to back up export %s: %w", objectName, err)
	}
	return objectName, nil
}

// ListSaves lists the save objects available under a prefix.
func ListSaves(ctx context.Context, client Client, cfg Config, prefix string) ([]string, error) {
	var names []string
	for info := range client.ListObjects(ctx, cfg.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, info.Err
		}
		names = append(names, info.Key)
	}
	return names, nil
}
