package ast

import (
	"encoding/binary"
	"hash/maphash"
)

// Hashes are stable within a process run, not across runs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with Equal:
// equal nodes hash alike. Positions take no part in the hash.
// It panics if n is nil.
func Hash(n Node) uint64 {
	if n == nil {
		panic("ast: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type()))

	switch x := n.(type) {
	case *String:
		h.WriteString(x.Value())
	case *Symbol:
		h.WriteString(x.ID())
	case *Word:
		writeChildHash(&h, Hash(x.Symbol()))
	case *Quote:
		for _, c := range x.Children() {
			writeChildHash(&h, Hash(c))
		}
	case *Array:
		for _, elt := range x.Elements() {
			writeChildHash(&h, Hash(elt))
		}
	case *Object:
		for _, prop := range x.Properties() {
			h.WriteString(prop.Key)
			writeChildHash(&h, Hash(prop.Value))
		}
	}
	return h.Sum64()
}

func writeChildHash(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}
