package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable with the given identifier, or the empty
// string when ctx carries no kong context.
func kongVar(ctx context.Context, id string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil || ktx.Model == nil {
		return ""
	}

	return ktx.Model.Vars()[id]
}

// Stdio holds the streams a command reads from and writes to.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Std returns the process standard streams.
func Std() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

func (s Stdio) in() io.Reader {
	if s.In == nil {
		return eofReader{}
	}

	return s.In
}

func (s Stdio) out() io.Writer {
	if s.Out == nil {
		return io.Discard
	}

	return s.Out
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the named file for reading. The empty name and "-" select
// the input stream of s, which is never closed by the returned closer.
func (s Stdio) openSource(name string) (io.ReadCloser, error) {
	if name == "" || name == stdinSource {
		return io.NopCloser(s.in()), nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, ErrReadSource.
			With(slog.String("file", name)).
			Wrap(err)
	}

	return file, nil
}

// readSource returns the entire contents of the named source.
func (s Stdio) readSource(name string) ([]byte, error) {
	rc, err := s.openSource(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, ErrReadSource.
			With(slog.String("file", name)).
			Wrap(err)
	}

	return data, nil
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueFiles resolves each path to an absolute, symlink-free path and
// drops every path naming a file already seen. The order of first
// appearance is kept.
func uniqueFiles(paths []string) ([]string, error) {
	seen := make(map[fileKey]struct{}, len(paths))
	files := make([]string, 0, len(paths))

	for _, path := range paths {
		resolved, key, err := resolveFile(path)
		if err != nil {
			return nil, ErrVarsFile.
				With(slog.String("file", path)).
				Wrap(err)
		}

		if key != nil {
			if _, exists := seen[*key]; exists {
				continue
			}

			seen[*key] = struct{}{}
		}

		files = append(files, resolved)
	}

	return files, nil
}

// resolveFile returns the absolute, symlink-free form of path and its
// identity. The identity is nil on platforms without device/inode numbers.
func resolveFile(path string) (string, *fileKey, error) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", nil, err
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", nil, err
	}

	key, ok := makeFileKey(info)
	if !ok {
		return resolved, nil, nil
	}

	return resolved, &key, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
