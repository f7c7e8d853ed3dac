// Package tables builds and serves the move and pruning tables the
// phase-1 and phase-2 search routines index into: dense arrays mapping a
// coordinate and a move to a new coordinate, and bit-packed distance
// estimates used to prune the IDA* search. Tables are generated once,
// written to a cache directory, and reopened on later runs via a
// memory-mapped, CRC32-checksummed, advisory-locked file so that two
// processes racing to generate the same table don't corrupt it.
package tables

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// generator produces a table's bytes when the cache file is missing or
// its checksum doesn't match.
type generator func() []byte

// mappedTable holds an mmap'd, checksum-verified table file. Callers read
// Bytes through one of the As* helpers; the mapping is released by
// Close.
type mappedTable struct {
	data []byte // mmap'd region, including the trailing CRC32 footer
}

// Bytes returns the table payload, excluding the CRC32 footer.
func (t *mappedTable) Bytes() []byte {
	return t.data[:len(t.data)-4]
}

func (t *mappedTable) Close() error {
	if t.data == nil {
		return nil
	}
	err := unix.Munmap(t.data)
	t.data = nil
	return err
}

// loadOrGenerate opens path as a memory-mapped table, regenerating it via
// gen when the file is absent or its stored CRC32 footer doesn't match
// its contents. Readers take a shared lock on the table file itself; a
// process that needs to regenerate takes an exclusive lock on a separate
// path+".lock" file, writes the table to a temporary file and renames it
// into place, so a reader only ever opens a complete file.
func loadOrGenerate(path string, gen generator) (*mappedTable, error) {
	if t, err := tryLoad(path); err == nil {
		return t, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("tables: creating cache dir: %w", err)
	}

	lockPath := path + ".lock"
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tables: opening lock file: %w", err)
	}
	defer lockFile.Close()

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX); err != nil {
		return nil, fmt.Errorf("tables: acquiring exclusive lock: %w", err)
	}
	defer unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)

	// Another process may have generated the table while we waited for
	// the exclusive lock.
	if t, err := tryLoad(path); err == nil {
		return t, nil
	}

	payload := gen()
	checksum := crc32.ChecksumIEEE(payload)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tables: creating %s: %w", tmp, err)
	}
	if _, err := f.Write(payload); err != nil {
		f.Close()
		return nil, fmt.Errorf("tables: writing %s: %w", tmp, err)
	}
	var footer [4]byte
	binary.LittleEndian.PutUint32(footer[:], checksum)
	if _, err := f.Write(footer[:]); err != nil {
		f.Close()
		return nil, fmt.Errorf("tables: writing checksum footer to %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("tables: closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return nil, fmt.Errorf("tables: renaming %s to %s: %w", tmp, path, err)
	}

	return tryLoad(path)
}

// tryLoad mmaps path and validates its trailing CRC32 footer against the
// payload that precedes it. Any failure (missing file, truncated file,
// checksum mismatch) is returned as an error so the caller falls back to
// regeneration.
func tryLoad(path string) (*mappedTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_SH); err != nil {
		return nil, err
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size < 4 {
		return nil, fmt.Errorf("tables: %s too small to contain a checksum footer", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("tables: mmap %s: %w", path, err)
	}

	payload := data[:size-4]
	want := binary.LittleEndian.Uint32(data[size-4:])
	got := crc32.ChecksumIEEE(payload)
	if want != got {
		unix.Munmap(data)
		return nil, fmt.Errorf("tables: %s failed checksum (want %08x, got %08x)", path, want, got)
	}

	return &mappedTable{data: data}, nil
}

func asUint16Slice(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return out
}

func asUint32Slice(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out
}

func uint16SliceBytes(v []uint16) []byte {
	out := make([]byte, len(v)*2)
	for i, x := range v {
		binary.LittleEndian.PutUint16(out[i*2:], x)
	}
	return out
}

func uint32SliceBytes(v []uint32) []byte {
	out := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], x)
	}
	return out
}
