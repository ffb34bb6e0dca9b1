// Package media delegates image uploads to external object storage. The rest
// of the application only sees the Uploader seam: it hands out presigned PUT
// targets and resolves stored keys to public URLs.
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Uploader is the narrow contract for external media storage.
type Uploader interface {
	// PresignPut returns a storage key and a URL the client can PUT the file
	// to directly, valid for a short window.
	PresignPut(ctx context.Context, prefix string) (key string, url string, err error)
	// PublicURL resolves a committed storage key to its public address.
	PublicURL(key string) string
}

// storageKey produces a date-partitioned, collision-free object key.
func storageKey(prefix string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%02d/%v", prefix, d.Year(), d.Month(), d.Day(), uuid.New())
}
