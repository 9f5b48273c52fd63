package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body. A non-2xx
	// response is reported as a *StatusError.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
