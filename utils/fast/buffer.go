package fast

// buffer.go provides minimal byte cursors for linear serialization work.
// bytes.Buffer is heavier than needed for fixed-layout payloads: a Writer
// here is just an appending slice, a Reader just an advancing offset.
// The Reader panics on over-read, so callers must validate payload length
// before consuming it.

type Reader struct {
	buf    []byte
	offset int
}

type Writer struct {
	buf []byte
}

// NewReader creates a Reader consuming the provided byte slice.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf: bb,
	}
}

// NewWriter creates a Writer appending to the provided initial slice.
// Usually called with make([]byte, 0, capacity) to pre-allocate.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// WriteByte appends a single byte.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends a slice of bytes.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// Read consumes and returns the next n bytes. The returned slice shares
// memory with the underlying buffer. Panics if fewer than n bytes remain.
func (b *Reader) Read(n int) []byte {
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res
}

// ReadByte consumes and returns a single byte. Panics if the buffer is empty.
func (b *Reader) ReadByte() byte {
	res := b.buf[b.offset]
	b.offset++
	return res
}

// Position returns the number of bytes consumed so far.
func (b *Reader) Position() int {
	return b.offset
}

// Remaining returns the number of unread bytes.
func (b *Reader) Remaining() int {
	return len(b.buf) - b.offset
}

// Empty reports whether the Reader has reached the end of the buffer.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}
