package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/gapset"
	"github.com/hupe1980/gapset/internal/fs"
)

// File is an open file of a FileSystem.
type File = fs.File

// FileSystem abstracts the file operations used by SaveFile and LoadFile.
type FileSystem = fs.FileSystem

// SaveFile writes sets to path, creating its parent directory if needed. The
// stream goes to path+".tmp" first, which is synced and renamed over path; on
// failure the temporary file is removed. A nil fsys means the local file
// system.
func SaveFile[U gapset.Universe](fsys FileSystem, path string, sets []*gapset.Bitset[U], optFns ...func(*Options)) (err error) {
	if fsys == nil {
		fsys = fs.Default
	}
	opts := buildOptions(optFns)
	log := opts.Logger.WithPath(path)

	var size int64
	defer func() { log.LogSave(len(sets), size, err) }()

	if err := fsys.MkdirAll(filepath.Dir(path), dirMode(opts.FileMode)); err != nil {
		return fmt.Errorf("persist: create directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := fsys.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, opts.FileMode)
	if err != nil {
		return fmt.Errorf("persist: create %s: %w", tmp, err)
	}
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()

	size, err = writeAll(f, sets, opts)
	if err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("persist: sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("persist: close %s: %w", tmp, err)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		return fmt.Errorf("persist: rename %s: %w", tmp, err)
	}
	return nil
}

// dirMode derives a directory permission from a file permission by adding
// search access wherever read access is granted.
func dirMode(file os.FileMode) os.FileMode {
	perm := file.Perm()
	return perm | (perm&0o444)>>2
}

func writeAll[U gapset.Universe](f File, sets []*gapset.Bitset[U], opts Options) (int64, error) {
	w, err := newWriter[U](f, opts)
	if err != nil {
		return 0, err
	}
	for _, b := range sets {
		if err := w.Write(b); err != nil {
			return w.Size(), err
		}
	}
	if err := w.Flush(); err != nil {
		return w.Size(), err
	}
	return w.Size(), nil
}

// LoadFile reads every set stored in path. A nil fsys means the local file
// system.
func LoadFile[U gapset.Universe](fsys FileSystem, path string, optFns ...func(*Options)) (sets []*gapset.Bitset[U], err error) {
	if fsys == nil {
		fsys = fs.Default
	}
	opts := buildOptions(optFns)
	log := opts.Logger.WithPath(path)
	defer func() { log.LogLoad(len(sets), err) }()

	f, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	r, err := newReader[U](f, opts)
	if err != nil {
		return nil, err
	}
	for b, err := range r.All() {
		if err != nil {
			return nil, err
		}
		sets = append(sets, b)
	}
	return sets, nil
}
