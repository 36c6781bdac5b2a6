package asidecache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Args is the ordered positional-argument list of a wrapped call. Order is
// significant for key derivation.
type Args []any

// Kwargs is the named-argument set of a wrapped call. Two Kwargs holding the
// same pairs derive the same key regardless of construction order.
type Kwargs map[string]any

// hashLen is the number of hex characters kept from the digest. 48 bits:
// collisions are negligible for realistic key volumes but not impossible.
const hashLen = 12

// DeriveKey maps (tag, namespace, args, kwargs) to a stable cache key of the
// form "<tag>:<namespace>:<hash12>". The argument material is serialized as
// canonical JSON (map keys sorted) and hashed with SHA-256, so the derivation
// is a pure function of its inputs. An error means an argument was not
// JSON-serializable; callers should treat that as "not cacheable".
func DeriveKey(tag, namespace string, args Args, kwargs Kwargs) (string, error) {
	// nil and empty must derive identically
	if args == nil {
		args = Args{}
	}
	if kwargs == nil {
		kwargs = Kwargs{}
	}
	material, err := json.Marshal(struct {
		Args   Args   `json:"args"`
		Kwargs Kwargs `json:"kwargs"`
	}{args, kwargs})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(material)
	return tag + ":" + namespace + ":" + hex.EncodeToString(sum[:])[:hashLen], nil
}
