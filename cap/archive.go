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

package cap

// ArchiveSource is the read side of a CAP container. A CAP file is a zip
// archive on disk, but the model only needs entry listing and per-entry
// reads, so any keyed byte store can back it.
type ArchiveSource interface {
	// EntryNames returns the names of all entries in the archive.
	EntryNames() []string
	// ReadEntry returns the bytes of the named entry.
	ReadEntry(name string) ([]byte, error)
}

// ArchiveSink is the write side of a CAP container, consumed by the IJC
// splitter.
type ArchiveSink interface {
	// WriteEntry stores data under the given entry name.
	WriteEntry(name string, data []byte) error
}
