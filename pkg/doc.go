// Package pkg provides the libraries behind re2ab.
//
// re2ab rewrites the relative paths of a rust-analyzer project description
// (rust-project.json) into absolute paths, resolved against the directory of
// the file, so the file keeps working when an editor opens it from another
// working directory.
//
// # Packages
//
//   - [document] - JSON documents as tagged values, order-preserving decode,
//     fixed-layout encode
//   - [io] - Reading documents from disk and replacing files atomically
//   - [normalize] - The rewrite itself: tree walk, path resolution, results
//   - [config] - Settings from .re2ab.toml
//   - [errors] - Coded errors shared by every package
//   - [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	rust-project.json
//	         ↓
//	    [io] ImportJSON (read + decode)
//	         ↓
//	    [normalize] Rewrite (resolve root_module / path values)
//	         ↓
//	    [document] Marshal (4-space layout)
//	         ↓
//	    [io] WriteFile (temp file + rename)
//
// # Quick Start
//
//	n := normalize.New(normalize.DefaultOptions(), nil)
//	res, err := n.NormalizeFile(ctx, "rust-project.json")
//	if err != nil {
//	    return err
//	}
//	for _, c := range res.Changes {
//	    fmt.Printf("%s: %s -> %s\n", c.Pointer, c.Old, c.New)
//	}
//
// [document]: github.com/matzehuels/re2ab/pkg/document
// [io]: github.com/matzehuels/re2ab/pkg/io
// [normalize]: github.com/matzehuels/re2ab/pkg/normalize
// [config]: github.com/matzehuels/re2ab/pkg/config
// [errors]: github.com/matzehuels/re2ab/pkg/errors
// [buildinfo]: github.com/matzehuels/re2ab/pkg/buildinfo
package pkg
