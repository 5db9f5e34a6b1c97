// Package mmap provides read-only file mappings for input buffers and
// anonymous read-write mappings for arena regions.
//
// # Usage
//
//	m, err := mmap.Open("book.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix: mmap(2) with madvise(2) hints
//   - Windows: MapViewOfFile / VirtualAlloc (advice is a no-op)
//   - Others: the file is read into heap memory and MapAnon falls back to make
//
// # Anonymous Mappings
//
// MapAnon creates private read-write mappings outside the Go heap. The arena
// allocator uses them as fixed word-storage regions.
package mmap
