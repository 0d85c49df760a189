package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/re2ab/pkg/document"
	"github.com/matzehuels/re2ab/pkg/errors"
)

// WriteJSON encodes v with opts and writes it to w.
func WriteJSON(w io.Writer, v *document.Value, opts document.EncodeOptions) error {
	if err := document.Encode(w, v, opts); err != nil {
		return errors.WrapFS(err, "encode")
	}
	return nil
}

// WriteFile replaces the contents of path with data.
//
// perm is applied to the written file. When atomic is false the file is
// truncated and written in place, which leaves a partial file behind if the
// write is interrupted.
func WriteFile(path string, data []byte, perm fs.FileMode, atomic bool) error {
	if !atomic {
		if err := os.WriteFile(path, data, perm); err != nil {
			return errors.WrapFS(err, "write %s", path)
		}
		return nil
	}

	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	return replaceFile(target, data, perm)
}

func replaceFile(target string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.WrapFS(err, "create temporary file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapFS(err, "write %s", tmpName)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return errors.WrapFS(err, "chmod %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.WrapFS(err, "sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapFS(err, "close %s", tmpName)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return errors.WrapFS(err, "replace %s", target)
	}
	tmpName = ""
	return nil
}
