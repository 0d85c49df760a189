// Package io reads and writes JSON documents on disk.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to read
// from any io.Reader. ImportJSON also returns the raw bytes and permission
// bits of the file so callers can tell whether re-encoding changed anything
// and write it back with the same mode.
//
//	f, err := io.ImportJSON("rust-project.json")
//	if err != nil {
//	    return err
//	}
//
// Failures carry a code from [github.com/matzehuels/re2ab/pkg/errors]:
// FILE_NOT_FOUND, PERMISSION_DENIED or IO_ERROR for filesystem problems and
// INVALID_JSON for documents that do not parse.
//
// # Export
//
// Use [WriteFile] to replace a file with encoded bytes, or [WriteJSON] to
// encode a document to any io.Writer.
//
// With atomic set, WriteFile writes a temporary file next to the target,
// syncs it and renames it over the target, so an interrupted write leaves
// either the old or the new content and never a truncated file. A target that
// is a symlink is resolved first and the link itself is kept.
package io
