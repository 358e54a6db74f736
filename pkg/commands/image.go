package commands

import "strings"

// Image is a read-only copy of an image record held by the container runtime
type Image struct {
	ID   string
	Tags []string
	Size int64
}

// ShortID returns the first twelve characters of the ID without its digest
// algorithm, as `docker images` shows it
func (i *Image) ShortID() string {
	id := strings.TrimPrefix(i.ID, "sha256:")
	if len(id) > 12 {
		return id[0:12]
	}
	return id
}
