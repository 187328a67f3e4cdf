package block

import "unsafe"

// Validate checks a block against the format, layout, and kind an
// operation requires. It returns nil on success or the first failing
// check's error code; checks run in a fixed order and short-circuit.
//
// The order is: nil block (ErrInvalidParam), StructSize (ErrInvalidSize),
// ABIVersion (ErrInvalidABI), required-flags decoding (ErrInvalidParam),
// then the per-kind rules:
//
//   - KindProcess: input and output must be Similar, each Valid, and each
//     matching the required format/layout. Shape mismatch is
//     ErrInvalidBlock; a buffer's own fault is ErrInvalidInput or
//     ErrInvalidOutput.
//   - KindConvert: input must be Valid and match the required
//     format/layout; output must be Valid but its encoding is not checked,
//     since conversion may change it. Frame counts may differ; the
//     channel-count policy belongs to the specific kernel.
//   - KindSource: input is ignored entirely; output must be Valid and
//     match the required format/layout.
//   - KindSink: output is ignored entirely; input must be Valid and match
//     the required format/layout.
//
// Validate is a pure function: no state, no side effects.
func Validate[I, O Sample](b *Block[I, O], required Flags) error {
	if b == nil {
		return ErrInvalidParam
	}

	if b.StructSize < uint32(unsafe.Sizeof(*b)) {
		return ErrInvalidSize
	}

	if b.ABIVersion != ABIVersion {
		return ErrInvalidABI
	}

	reqFmt := required.Format()
	reqLayout := required.Layout()
	kind := required.Kind()

	if reqFmt == FormatInvalid || reqLayout == LayoutInvalid || kind == KindInvalid {
		return ErrInvalidParam
	}

	switch kind {
	case KindProcess:
		if !Similar(&b.Input, &b.Output) {
			return ErrInvalidBlock
		}
		if !b.Input.Valid() {
			return ErrInvalidInput
		}
		if !b.Output.Valid() {
			return ErrInvalidOutput
		}
		if !b.Input.CheckType(reqFmt, reqLayout) {
			return ErrInvalidInput
		}
		if !b.Output.CheckType(reqFmt, reqLayout) {
			return ErrInvalidOutput
		}

	case KindConvert:
		if !b.Input.Valid() {
			return ErrInvalidInput
		}
		if !b.Output.Valid() {
			return ErrInvalidOutput
		}
		if !b.Input.CheckType(reqFmt, reqLayout) {
			return ErrInvalidInput
		}

	case KindSource:
		if !b.Output.Valid() {
			return ErrInvalidOutput
		}
		if !b.Output.CheckType(reqFmt, reqLayout) {
			return ErrInvalidOutput
		}

	case KindSink:
		if !b.Input.Valid() {
			return ErrInvalidInput
		}
		if !b.Input.CheckType(reqFmt, reqLayout) {
			return ErrInvalidInput
		}

	default:
		return ErrInvalidBlock
	}

	return nil
}
