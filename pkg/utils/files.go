package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if necessary.
// Gzip, zip and 7z archives are recognised by their extension, in which
// case the first file of the archive is returned.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress returns the contents of data, decoded according to the
// file extension ext. Unknown extensions are returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		// return the data as is
		return data, nil
	}

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", ext, err)
	}
	return out, nil
}
