package file

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// writeAtomic writes data to path through a uniquely named temp file in the
// same directory followed by a rename, so a crash mid-write never leaves a
// partially written data file behind.
func writeAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
