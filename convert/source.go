package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"css2tw/archive"
)

// stdinName is used both as SOURCE argument and as result name for standard
// input.
const stdinName = "-"

// source is a single unit of conversion. name is path relative to the SOURCE
// argument (base file name when SOURCE is a file) and is used to name output
// and report entries. Stylesheets from archives are read during collection
// and carry their content.
type source struct {
	name string
	path string
	data []byte
}

func (s source) isStdin() bool {
	return s.path == stdinName
}

func (s source) open(stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case s.isStdin():
		return io.NopCloser(stdin), nil
	case s.data != nil:
		return io.NopCloser(bytes.NewReader(s.data)), nil
	}
	return os.Open(s.path)
}

func isStyleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".css")
}

// collectSources resolves SOURCE argument to the list of inputs in natural
// order of their names. SOURCE could be a stylesheet, a directory, an archive
// or a path inside an archive.
func collectSources(ctx context.Context, src string, cp encoding.Encoding, log *zap.Logger) ([]source, error) {
	if src == stdinName {
		return []source{{name: stdinName, path: stdinName}}, nil
	}

	var (
		sources []source
		err     error
	)

	// find the longest existing part of the path, the rest could be a path
	// inside archive
	head, tail := src, ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fi, serr := os.Stat(head)
		if serr == nil {
			sources, err = collectFrom(ctx, head, fi, tail, cp, log)
			break
		}
		parent := filepath.Dir(head)
		if parent == head {
			return nil, fmt.Errorf("input source was not found (%s): %w", src, serr)
		}
		tail = filepath.ToSlash(filepath.Join(filepath.Base(head), tail))
		head = parent
	}
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		log.Debug("Nothing to process", zap.String("source", src))
	}

	sortByName(sources, func(s source) string { return s.name })
	return sources, nil
}

func collectFrom(ctx context.Context, head string, fi os.FileInfo, tail string, cp encoding.Encoding, log *zap.Logger) ([]source, error) {
	switch {
	case fi.IsDir():
		if len(tail) != 0 {
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, tail)
		}
		return collectDir(ctx, head, cp, log)
	case !fi.Mode().IsRegular():
		return nil, fmt.Errorf("unexpected path mode for (%s)", head)
	}

	isArc, err := archive.IsArchive(head)
	if err != nil {
		return nil, fmt.Errorf("unable to check archive type: %w", err)
	}
	if isArc {
		sources, err := collectArchive(ctx, head, tail, "", cp, log)
		if err != nil {
			return nil, fmt.Errorf("unable to process archive: %w", err)
		}
		return sources, nil
	}
	if len(tail) != 0 {
		return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, tail)
	}
	return []source{{name: filepath.Base(head), path: head}}, nil
}

// collectDir walks directory tree finding stylesheets and archives.
func collectDir(ctx context.Context, dir string, cp encoding.Encoding, log *zap.Logger) ([]source, error) {
	var sources []source
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		// symbolic links are not followed
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if isStyleFile(path) {
			sources = append(sources, source{name: rel, path: path})
			return nil
		}

		isArc, err := archive.IsArchive(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !isArc {
			log.Debug("Skipping file, not a stylesheet or archive", zap.String("file", path))
			return nil
		}
		found, err := collectArchive(ctx, path, "", filepath.Dir(rel), cp, log)
		if err != nil {
			log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			return nil
		}
		sources = append(sources, found...)
		return nil
	})
	return sources, err
}

// collectArchive reads stylesheets inside archive under prefix. Their names
// are relative paths in archive placed under pathOut.
func collectArchive(ctx context.Context, path, prefix, pathOut string, cp encoding.Encoding, log *zap.Logger) ([]source, error) {
	var sources []source
	err := archive.Walk(path, prefix, func(f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if !isStyleFile(pathInArchive) {
			log.Debug("Skipping file in archive, not a stylesheet", zap.String("archive", path), zap.String("file", pathInArchive))
			return nil
		}

		data, err := archive.ReadFile(f)
		if err != nil {
			log.Error("Unable to read file in archive",
				zap.String("archive", path), zap.String("file", pathInArchive), zap.Error(err))
			return nil
		}
		if data == nil {
			data = []byte{}
		}
		sources = append(sources, source{
			name: filepath.Join(pathOut, filepath.FromSlash(pathInArchive)),
			path: path + "!" + pathInArchive,
			data: data,
		})
		return nil
	})
	return sources, err
}

func sortByName[T any](items []T, name func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		na, nb := name(a), name(b)
		switch {
		case natural.Less(na, nb):
			return -1
		case natural.Less(nb, na):
			return 1
		}
		return 0
	})
}

// readText returns input as UTF-8 text. Byte order mark always wins. Input
// which is not valid UTF-8 is decoded with forced code page if any, otherwise
// invalid sequences are replaced.
func readText(r io.Reader, cp encoding.Encoding) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	fallback := unicode.UTF8.NewDecoder()
	if cp != nil && !utf8.Valid(data) {
		fallback = cp.NewDecoder()
	}
	text, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return "", fmt.Errorf("unable to decode input: %w", err)
	}
	return string(text), nil
}
