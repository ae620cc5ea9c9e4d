package ports

import "context"

type S3ServiceInterface interface {
	UploadObject(ctx context.Context, key string, data []byte, contentType string) error
	PresignGetURL(ctx context.Context, key string) (string, error)
}
