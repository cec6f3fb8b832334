// Package upload stores program images and serves them back by name.
// DiskStore writes to a local directory; MinioStore writes to an
// S3-compatible bucket. Both return domain.ErrNotFound for unknown names.
package upload

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the path under which stored images are served.
const URLPrefix = "/uploads/"

// File is an opened stored image, ready for http.ServeContent.
type File struct {
	io.ReadSeekCloser
	ModTime time.Time
}

// NewName returns a collision-resistant file name for an upload: a random
// UUID followed by the extension of the client-supplied name.
func NewName(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}

// URL returns the public path of a stored image.
func URL(name string) string {
	return URLPrefix + name
}

// checkName rejects names that could escape the store's namespace.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}
