// Package script reads mybash script files into memory.
package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zurustar/mybash/pkg/fileutil"
)

// EntryFileName is the script run when a directory is given.
const EntryFileName = "main.mb"

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

var (
	// ErrMissingPath is returned when no script path was supplied.
	ErrMissingPath = errors.New("missing script path (example: mybash ./main.mb)")
	// ErrNotFound is returned when the script path does not exist.
	ErrNotFound = errors.New("script not found")
)

// Script is a script file decoded to UTF-8.
type Script struct {
	FileName string // base name
	Path     string // path the script was read from
	Content  string // UTF-8 text
	Size     int64  // size on disk in bytes
}

// Loader reads script files.
type Loader struct {
	encoding string
}

// NewLoader creates a Loader decoding files with the given encoding label.
// An empty label means UTF-8.
func NewLoader(encoding string) *Loader {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	return &Loader{encoding: encoding}
}

// Encoding returns the configured encoding label.
func (l *Loader) Encoding() string { return l.encoding }

// Load reads the script at path. If path is a directory, its entry
// script (main.mb, any letter case) is loaded instead.
func (l *Loader) Load(path string) (*Script, error) {
	if path == "" {
		return nil, ErrMissingPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		entry, err := fileutil.FindFileCaseInsensitive(path, EntryFileName)
		if err != nil {
			if errors.Is(err, fileutil.ErrFileNotFound) {
				return nil, fmt.Errorf("%w: no %s in %s", ErrNotFound, EntryFileName, path)
			}
			return nil, err
		}
		path = entry
		if info, err = os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, err := Decode(data, l.encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &Script{
		FileName: filepath.Base(path),
		Path:     path,
		Content:  content,
		Size:     info.Size(),
	}, nil
}

// Decode converts data in the named encoding to a UTF-8 string.
// UTF-8 input has any byte order mark removed. Other encodings are
// looked up by their WHATWG label (shift_jis, utf-16le, windows-1252, ...).
func Decode(data []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "shift_jis", "shift-jis", "sjis":
		return convertShiftJISToUTF8(data)
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ValidEncoding reports whether Decode understands the label.
func ValidEncoding(encoding string) bool {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8", "shift_jis", "shift-jis", "sjis":
		return true
	}
	_, err := htmlindex.Get(encoding)
	return err == nil
}

func convertShiftJISToUTF8(data []byte) (string, error) {
	reader := transform.NewReader(strings.NewReader(string(data)), japanese.ShiftJIS.NewDecoder())

	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to decode Shift-JIS: %w", err)
	}

	return string(utf8Data), nil
}
