package dictionary

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"
)

// Limits bounds how much of a dictionary archive is read.
type Limits struct {
	MaxArchiveBytes int64
	MaxEntries      int
}

const (
	defaultMaxArchiveBytes = 64 << 20
	defaultMaxEntries      = 10000
)

// entryPattern selects the files that matter inside an archive.
const entryPattern = "**/*.{aff,dic}"

var errLimit = errors.New("archive limits exceeded")

func (l Limits) withDefaults() Limits {
	if l.MaxArchiveBytes <= 0 {
		l.MaxArchiveBytes = defaultMaxArchiveBytes
	}
	if l.MaxEntries <= 0 {
		l.MaxEntries = defaultMaxEntries
	}
	return l
}

// budget tracks decompressed bytes and visited entries for one archive.
type budget struct {
	limits  Limits
	read    int64
	entries int
}

func (b *budget) visit() error {
	b.entries++
	if b.entries > b.limits.MaxEntries {
		return fmt.Errorf("%w: more than %d entries", errLimit, b.limits.MaxEntries)
	}
	return nil
}

func (b *budget) readAll(r io.Reader) ([]byte, error) {
	remaining := b.limits.MaxArchiveBytes - b.read
	data, err := io.ReadAll(io.LimitReader(r, remaining+1))
	if err != nil {
		return nil, err
	}
	b.read += int64(len(data))
	if int64(len(data)) > remaining {
		return nil, fmt.Errorf("%w: more than %d bytes", errLimit, b.limits.MaxArchiveBytes)
	}
	return data, nil
}

func wanted(name string) bool {
	ok, _ := doublestar.Match(entryPattern, strings.ToLower(name))
	return ok
}

// readEntries returns the .aff and .dic files found at p keyed by their
// slash-separated name within the archive.
func readEntries(p string, limits Limits) (map[string][]byte, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	b := &budget{limits: limits}
	if st.IsDir() {
		return readDir(os.DirFS(p), b)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lower := strings.ToLower(p)
	switch {
	case strings.HasSuffix(lower, ".zip"), strings.HasSuffix(lower, ".oxt"):
		zr, err := zip.NewReader(f, st.Size())
		if err != nil {
			return nil, fmt.Errorf("open zip %s: %w", p, err)
		}
		return readZip(zr, b)
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", p, err)
		}
		defer gz.Close()
		return readTar(gz, b)
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz %s: %w", p, err)
		}
		return readTar(xr, b)
	case strings.HasSuffix(lower, ".tar"):
		return readTar(f, b)
	default:
		return nil, fmt.Errorf("%s: unsupported dictionary archive", p)
	}
}

func readDir(fsys fs.FS, b *budget) (map[string][]byte, error) {
	names, err := doublestar.Glob(fsys, entryPattern)
	if err != nil {
		return nil, err
	}
	out := map[string][]byte{}
	for _, name := range names {
		if err := b.visit(); err != nil {
			return nil, err
		}
		f, err := fsys.Open(name)
		if err != nil {
			return nil, err
		}
		data, err := b.readAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		out[name] = data
	}
	return out, nil
}

func readZip(zr *zip.Reader, b *budget) (map[string][]byte, error) {
	out := map[string][]byte{}
	for _, zf := range zr.File {
		if err := b.visit(); err != nil {
			return nil, err
		}
		if zf.FileInfo().IsDir() || !wanted(zf.Name) {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", zf.Name, err)
		}
		data, err := b.readAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, err
		}
		out[zf.Name] = data
	}
	return out, nil
}

func readTar(r io.Reader, b *budget) (map[string][]byte, error) {
	out := map[string][]byte{}
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if err := b.visit(); err != nil {
			return nil, err
		}
		if hdr.Typeflag != tar.TypeReg || !wanted(hdr.Name) {
			continue
		}
		data, err := b.readAll(tr)
		if err != nil {
			return nil, err
		}
		out[strings.TrimPrefix(hdr.Name, "./")] = data
	}
}

// pickPair chooses the first .aff (lexical order) with a matching .dic.
func pickPair(entries map[string][]byte) (aff, dic string, ok bool) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ext := path.Ext(name)
		if strings.ToLower(ext) != ".aff" {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		for _, cand := range []string{stem + ".dic", stem + ".DIC"} {
			if _, found := entries[cand]; found {
				return name, cand, true
			}
		}
	}
	return "", "", false
}
