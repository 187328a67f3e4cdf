package block

import "unsafe"

// ABIVersion is the binary-interface compatibility tag of the compiled
// library. It is distinct from the semantic release version and changes
// only when descriptor layouts change incompatibly.
const ABIVersion uint32 = 1

// Block bundles the input and output buffer descriptors for one library
// operation, plus ABI metadata for forward-compatibility checks. The
// caller must stamp ABIVersion and StructSize before passing a block to
// any validated operation; New and Stamp do this.
//
// Blocks are ephemeral value objects, constructed per call. The operation
// kind (process/convert/source/sink) is not stored here; it is supplied
// with the required flags at validation time.
type Block[I, O Sample] struct {
	ABIVersion uint32
	StructSize uint32
	Input      Buffer[I]
	Output     Buffer[O]
}

// New builds a stamped block around the given buffer descriptors.
func New[I, O Sample](input Buffer[I], output Buffer[O]) *Block[I, O] {
	b := &Block[I, O]{Input: input, Output: output}
	b.Stamp()
	return b
}

// Stamp fills the ABIVersion and StructSize fields. Callers assembling a
// Block literal by hand must call Stamp before validation.
func (b *Block[I, O]) Stamp() {
	b.ABIVersion = ABIVersion
	b.StructSize = uint32(unsafe.Sizeof(*b))
}
