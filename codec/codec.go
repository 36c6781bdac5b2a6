// Package codec serializes cached values to the bytes handed to a store.
// The default wire format for result maps is UTF-8 JSON; alternates exist for
// deployments that prefer a binary format.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
