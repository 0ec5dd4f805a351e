// Package atomicfile publishes file contents so that readers observe either
// the previous file or the complete new one, never a partial write.
//
// Publish writes into a uniquely named temporary file in the target
// directory, syncs it, and renames it over the target. The parent
// directory is synced after the rename so the new entry survives a crash.
// On any failure the temporary file is removed and the target is left as
// it was.
//
//	err := atomicfile.Publish(path, 0o640, func(w io.Writer) error {
//	    _, err := io.WriteString(w, "content\n")
//	    return err
//	})
//
// There is no locking. Concurrent publishers to the same path race and the
// last rename wins.
package atomicfile
