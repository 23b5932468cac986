package uploads

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._\-]`)

// BuildKey produces the storage key for an upload: the owner's id as
// prefix, then a millisecond timestamp and a short random token ahead of
// the original filename, so repeated same-name uploads never overwrite.
func BuildKey(userID, filename string) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(filename), "_")
	token := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%d_%s_%s", userID, time.Now().UnixMilli(), token, base)
}

// KeyOwner extracts the user-id prefix of a storage key.
func KeyOwner(key string) string {
	owner, _, found := strings.Cut(key, "/")
	if !found {
		return ""
	}
	return owner
}
