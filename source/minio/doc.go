// Package minio provides a source.Store for MinIO and other S3-compatible
// object storage.
package minio
