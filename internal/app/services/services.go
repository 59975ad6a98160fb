package services

import (
	"context"

	"github.com/ssisdev/sisctl/internal/api"
)

// APIClient is the slice of the transport the services consume.
// *api.Client satisfies it; tests substitute fakes.
type APIClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostForm(ctx context.Context, path string, fields map[string]string, file *api.FormFile, out any) error
	PutForm(ctx context.Context, path string, fields map[string]string, file *api.FormFile, out any) error
}
