package iso7816

// Reader is a position-tracking cursor over an input byte slice. A Reader
// never copies or modifies the underlying data; the slices it returns alias
// the input. Each read either succeeds completely or fails with
// [ErrTruncated] without advancing the cursor.
//
// A Reader is exclusively owned by one in-flight decode call and must not be
// shared between goroutines.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a new [Reader] reading from data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadByte reads and returns the next byte. It implements [io.ByteReader],
// except that it fails with [ErrTruncated] instead of [io.EOF].
func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.data) {
		return 0, ErrTruncated
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

// ReadBytes reads exactly n bytes and returns them as a subslice of the
// input. If fewer than n bytes remain, it fails with [ErrTruncated] and does
// not advance.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.off {
		return nil, ErrTruncated
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Rest returns all unread bytes as a subslice of the input and advances the
// cursor to the end.
func (r *Reader) Rest() []byte {
	b := r.data[r.off:]
	r.off = len(r.data)
	return b
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.data) - r.off }

// Offset returns the number of bytes read so far.
func (r *Reader) Offset() int { return r.off }
