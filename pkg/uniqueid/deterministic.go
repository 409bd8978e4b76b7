package uniqueid

import (
	"crypto/sha256"
	"encoding/binary"
)

type deterministicSource struct {
	key string
	seq uint64
}

// NewDeterministic creates a deterministic identifier source.
// Sources with the same key produce exactly the same identifier sequences.
// Meant for tests that need reproducible IDs.
func NewDeterministic(key string) Source {
	return &deterministicSource{key: key}
}

func (ds *deterministicSource) ID() (string, error) {
	h := sha256.New()
	// hash does not return errors or short writes
	_, _ = h.Write([]byte(ds.key))
	_ = binary.Write(h, binary.LittleEndian, ds.seq)
	ds.seq++
	sum := h.Sum(nil)
	// keep 56 bits so deterministic IDs are shaped like random ones
	id := binary.BigEndian.Uint64(sum[:8]) >> 8
	return base62.EncodeUint64(id), nil
}
