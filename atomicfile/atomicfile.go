package atomicfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/prometheus/tsdb/fileutil"
)

// ErrNotRegular is returned when the target exists and is a directory.
// Publish never removes it.
var ErrNotRegular = errors.New("atomicfile: target is not a regular file")

// tempPattern names temporary files after their target so leftovers from a
// crashed process are easy to attribute.
const tempPattern = ".%s.*.tmp"

// Publish atomically replaces the file at path with the bytes produced by
// write. The new file has mode perm. The parent directory must exist.
// A directory at path, or a symlink to one, is left in place and reported
// as ErrNotRegular.
func Publish(path string, perm fs.FileMode, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)

	// fileutil.Replace removes a directory target before renaming.
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	f, err := os.CreateTemp(dir, fmt.Sprintf(tempPattern, filepath.Base(path)))
	if err != nil {
		return fmt.Errorf("atomicfile: create temp file: %w", err)
	}
	tmp := f.Name()

	published := false
	defer func() {
		if published {
			return
		}
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = multierror.Append(err, fmt.Errorf("atomicfile: remove temp file: %w", rmErr))
		}
	}()

	if err := write(f); err != nil {
		return multierror.Append(fmt.Errorf("atomicfile: write: %w", err), f.Close()).ErrorOrNil()
	}
	if err := f.Chmod(perm); err != nil {
		return multierror.Append(fmt.Errorf("atomicfile: chmod: %w", err), f.Close()).ErrorOrNil()
	}
	// Persist the data before the rename makes it visible.
	if err := f.Sync(); err != nil {
		return multierror.Append(fmt.Errorf("atomicfile: sync: %w", err), f.Close()).ErrorOrNil()
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("atomicfile: close: %w", err)
	}

	if err := fileutil.Replace(tmp, path); err != nil {
		return fmt.Errorf("atomicfile: rename: %w", err)
	}
	published = true
	return nil
}

// WriteFile is Publish for content already held in memory.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	return Publish(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
