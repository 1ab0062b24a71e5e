package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"receiptapi/internal/config"
)

func TestAttachmentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="car-sale-receipt.pdf"`, AttachmentDisposition("car-sale-receipt.pdf"))
	assert.Equal(t, `attachment; filename="a \"b\".pdf"`, AttachmentDisposition(`a "b".pdf`))
}

func TestPresignParams(t *testing.T) {
	assert.Empty(t, presignParams(""))
	assert.Equal(t,
		`attachment; filename="car-sale-receipt.pdf"`,
		presignParams("car-sale-receipt.pdf").Get("response-content-disposition"),
	)
}

func TestNewMinIO_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"no endpoint", config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"}, "minio endpoint is required"},
		{"no access key", config.MinIOConfig{Endpoint: "localhost:9000", SecretKey: "s", Bucket: "b"}, "minio credentials are required"},
		{"no secret", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", Bucket: "b"}, "minio credentials are required"},
		{"no bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "minio bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewMinIO(context.Background(), tt.cfg)
			assert.EqualError(t, err, tt.want)
			assert.Nil(t, st)
		})
	}
}

func TestTranslate(t *testing.T) {
	missing := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	assert.ErrorIs(t, translate(missing), ErrObjectNotFound)

	other := errors.New("connection refused")
	assert.Same(t, other, translate(other))
}
