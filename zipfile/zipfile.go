// Copyright 2026 The gocap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zipfile adapts zip archives to the cap package's ArchiveSource
// and ArchiveSink interfaces. CAP files are ordinary zip containers.
package zipfile

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Source reads entries from a zip archive.
type Source struct {
	reader *zip.Reader
	closer io.Closer
}

// Open opens the zip archive at the given path.
func Open(path string) (*Source, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip archive %s: %w", path, err)
	}
	return &Source{reader: &rc.Reader, closer: rc}, nil
}

// NewSource wraps an in-memory or otherwise already-open zip archive.
func NewSource(r io.ReaderAt, size int64) (*Source, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read zip archive: %w", err)
	}
	return &Source{reader: zr}, nil
}

// EntryNames returns the names of all files in the archive.
func (s *Source) EntryNames() []string {
	names := make([]string, 0, len(s.reader.File))
	for _, f := range s.reader.File {
		names = append(names, f.Name)
	}
	return names
}

// ReadEntry returns the decompressed bytes of the named entry.
func (s *Source) ReadEntry(name string) ([]byte, error) {
	f, err := s.reader.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open zip entry %s: %w", name, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read zip entry %s: %w", name, err)
	}
	return data, nil
}

// Close releases the underlying file when the Source was created with
// Open; it is a no-op otherwise.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Sink writes entries to a zip archive. Callers must Close it to flush
// the zip central directory.
type Sink struct {
	writer *zip.Writer
}

// NewSink creates a zip archive writer on top of w. Deflate compression
// is handled by klauspost/compress, which is considerably faster than the
// standard library on the method/class payloads that dominate CAP files.
func NewSink(w io.Writer) *Sink {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(
		zip.Deflate,
		func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, flate.DefaultCompression)
		},
	)
	return &Sink{writer: zw}
}

// WriteEntry adds a file with the given name and contents to the archive.
func (s *Sink) WriteEntry(name string, data []byte) error {
	f, err := s.writer.Create(name)
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	return nil
}

// Close finishes the archive. It does not close the underlying writer.
func (s *Sink) Close() error {
	return s.writer.Close()
}
