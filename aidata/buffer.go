package aidata

// FNC1 is the canonical in-memory rendering of the GS1 FNC1 separator
// character, used throughout the normalized unbracketed AI data form.
const FNC1 = '^'

// Buffer is the single owned byte buffer holding the normalized,
// unbracketed AI data string that every Element's offsets point into.
// Every parser builds exactly one Buffer per parse; it is never mutated
// again once the parse completes, matching the "extracted table plus one
// shared data buffer" shape of the Syntax Engine's context.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer with capacity pre-allocated for a
// normalized string of approximately size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, 0, size)}
}

// Len returns the number of bytes written to the buffer so far.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's contents. The returned slice aliases the
// Buffer's internal storage and must not be modified by the caller.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns the buffer's contents as a string.
func (b *Buffer) String() string { return string(b.data) }

// Slice returns the len-byte substring starting at offset.
func (b *Buffer) Slice(offset, length int) string {
	return string(b.data[offset : offset+length])
}

// AppendFNC1 appends one FNC1 separator byte and returns its offset.
func (b *Buffer) AppendFNC1() int {
	off := len(b.data)
	b.data = append(b.data, FNC1)
	return off
}

// AppendAI appends an AI code's digits and returns the offset it starts
// at.
func (b *Buffer) AppendAI(ai string) int {
	off := len(b.data)
	b.data = append(b.data, ai...)
	return off
}

// AppendValue appends a value's bytes and returns (offset, length) so the
// caller can build an Element directly from the result.
func (b *Buffer) AppendValue(value string) (offset, length int) {
	off := len(b.data)
	b.data = append(b.data, value...)
	return off, len(value)
}
