// Package normalize rewrites relative path values in a JSON document into
// absolute paths.
//
// The rewrite is driven by member names: the value of every object member
// whose key is one of the configured keys (root_module and path by default)
// is resolved against a base directory, at any depth. Every other member is
// left as it is, but its value is still searched for matching members.
//
// For rust-analyzer project files the base directory is the directory of the
// file itself, which makes a rust-project.json produced with relative paths
// usable from any working directory:
//
//	n := normalize.New(normalize.DefaultOptions(), logger)
//	res, err := n.NormalizeFile(ctx, "rust-project.json")
//	if err != nil {
//	    return err
//	}
//	logger.Info("done", "rewrites", len(res.Changes))
//
// Running the normalizer twice yields the same file as running it once.
package normalize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/re2ab/pkg/config"
	"github.com/matzehuels/re2ab/pkg/document"
	"github.com/matzehuels/re2ab/pkg/errors"
	rio "github.com/matzehuels/re2ab/pkg/io"
)

// Options configures a [Normalizer].
type Options struct {
	// Keys are the member names whose values are rewritten. Matching is
	// exact and case-sensitive.
	Keys []string

	// Base overrides the resolution root. Empty means the directory of the
	// file being normalized.
	Base string

	// Strict rejects non-string values under a matched key. When false such
	// values are logged and left untouched.
	Strict bool

	// Encode controls the layout of the written document.
	Encode document.EncodeOptions

	// Atomic replaces the file through a temporary sibling and a rename.
	Atomic bool

	// DryRun computes the result without writing anything.
	DryRun bool

	// Output, when set, receives the rewritten document instead of the file.
	Output io.Writer
}

// DefaultOptions mirrors [config.Default].
func DefaultOptions() Options {
	cfg := config.Default()
	return Options{
		Keys:   cfg.Keys,
		Strict: cfg.Strict,
		Encode: document.EncodeOptions{Indent: cfg.Indent, ASCII: cfg.EnsureASCII},
		Atomic: cfg.Atomic,
	}
}

// Change records one rewritten value.
type Change struct {
	Pointer string // JSON pointer of the rewritten value
	Key     string
	Old     string
	New     string
}

// Result describes the outcome of normalizing one file.
type Result struct {
	Path    string
	Base    string
	Changes []Change

	// Changed reports whether the encoded document differs from the bytes
	// read from disk. Formatting differences count even without rewrites.
	Changed bool

	// Written reports whether the file on disk was replaced.
	Written bool
}

// Normalizer rewrites path values. It holds no per-file state, so one
// Normalizer may process any number of files in sequence.
type Normalizer struct {
	opts   Options
	keys   map[string]struct{}
	Logger *log.Logger
}

// New creates a Normalizer. If logger is nil, log.Default() is used.
func New(opts Options, logger *log.Logger) *Normalizer {
	if logger == nil {
		logger = log.Default()
	}
	keys := make(map[string]struct{}, len(opts.Keys))
	for _, k := range opts.Keys {
		keys[k] = struct{}{}
	}
	return &Normalizer{opts: opts, keys: keys, Logger: logger}
}

// Resolve returns the absolute form of p relative to base. Absolute paths
// are only cleaned; an empty p resolves to base itself.
func Resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// BasePath returns the directory that relative paths in the file at path are
// resolved against.
func (n *Normalizer) BasePath(path string) (string, error) {
	if n.opts.Base != "" {
		base, err := filepath.Abs(n.opts.Base)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve base %s", n.opts.Base)
		}
		return base, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}
	return filepath.Dir(abs), nil
}

// NormalizeFile reads the document at path, rewrites its path values and
// writes it back, unless DryRun or Output says otherwise. Nothing is written
// when reading, parsing or rewriting fails. A file whose encoding would not
// change is left untouched.
func (n *Normalizer) NormalizeFile(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	start := time.Now()
	base, err := n.BasePath(path)
	if err != nil {
		return nil, err
	}

	f, err := rio.ImportJSON(path)
	if err != nil {
		return nil, err
	}

	changes, err := n.Rewrite(f.Root, base)
	if err != nil {
		return nil, fmt.Errorf("rewrite %s: %w", path, err)
	}

	out := document.Marshal(f.Root, n.opts.Encode)
	res := &Result{
		Path:    path,
		Base:    base,
		Changes: changes,
		Changed: !bytes.Equal(out, f.Raw),
	}

	switch {
	case n.opts.Output != nil:
		if _, err := n.opts.Output.Write(out); err != nil {
			return nil, errors.WrapFS(err, "write output")
		}
	case n.opts.DryRun:
	case !res.Changed:
		n.Logger.Debug("already normalized", "file", path)
	default:
		if err := rio.WriteFile(path, out, f.Mode, n.opts.Atomic); err != nil {
			return nil, err
		}
		res.Written = true
	}

	n.Logger.Info("normalized",
		"file", path,
		"rewrites", len(changes),
		"written", res.Written,
		"duration", time.Since(start).Round(time.Millisecond))
	return res, nil
}

// Rewrite resolves every matched path value in root against base, in place,
// and returns the values that changed in document order.
func (n *Normalizer) Rewrite(root *document.Value, base string) ([]Change, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve base %s", base)
	}

	var changes []Change
	if err := n.walk(root, "", abs, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func (n *Normalizer) walk(v *document.Value, ptr, base string, changes *[]Change) error {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case document.KindObject:
		for i := range v.Members {
			m := &v.Members[i]
			p := document.JoinPointer(ptr, m.Key)
			if _, ok := n.keys[m.Key]; ok {
				if err := n.rewrite(m, p, base, changes); err != nil {
					return err
				}
				continue
			}
			if err := n.walk(m.Value, p, base, changes); err != nil {
				return err
			}
		}
	case document.KindArray:
		for i, item := range v.Items {
			if err := n.walk(item, document.JoinPointer(ptr, strconv.Itoa(i)), base, changes); err != nil {
				return err
			}
		}
	case document.KindNull, document.KindBool, document.KindNumber, document.KindString:
	}
	return nil
}

func (n *Normalizer) rewrite(m *document.Member, ptr, base string, changes *[]Change) error {
	kind := document.KindNull
	if m.Value != nil {
		kind = m.Value.Kind
	}
	if kind != document.KindString {
		if n.opts.Strict {
			return errors.New(errors.ErrCodeInvalidPathValue, "%s: expected a string, got %s", ptr, kind)
		}
		n.Logger.Warn("skipping non-string path value", "pointer", ptr, "kind", kind)
		return nil
	}

	old := m.Value.Str
	resolved := Resolve(base, old)
	if resolved == old {
		return nil
	}

	m.Value = document.NewString(resolved)
	*changes = append(*changes, Change{Pointer: ptr, Key: m.Key, Old: old, New: resolved})
	n.Logger.Debug("rewrote path", "pointer", ptr, "from", old, "to", resolved)
	return nil
}
