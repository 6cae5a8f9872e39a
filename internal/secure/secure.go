// Package secure provides zero-on-drop byte buffers for the material the
// spec requires to be scrubbed when released: secret plaintext, derived
// keys, and passphrase bytes (spec §5 "Ownership & zeroization").
package secure

import (
	"runtime"
	"sync"
)

// Bytes wraps a sensitive byte slice. The backing memory is best-effort
// mlocked (so it is never paged to swap) and is always explicitly
// overwritten on Destroy, which also runs automatically via a finalizer if
// the caller forgets to call it.
type Bytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New allocates a zeroed Bytes of the given size.
func New(size int) *Bytes {
	b := &Bytes{data: make([]byte, size)}
	b.locked = mlock(b.data)
	runtime.SetFinalizer(b, (*Bytes).Destroy)
	return b
}

// FromSlice copies data into a new secure buffer. The caller's slice is not
// modified or retained.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying slice. Returns nil once Destroy has run.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the buffer length, or 0 after Destroy.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// IsLocked reports whether the OS accepted the mlock request.
func (b *Bytes) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once.
func (b *Bytes) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}

// Zero overwrites a plain byte slice in place. Used for transient buffers
// (e.g. plaintext copies) that don't warrant a full Bytes wrapper.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
