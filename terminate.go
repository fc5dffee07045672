package ordkey

import (
	"bytes"
	"io"
)

// Sentinel bytes used to frame variable-length payloads so they remain
// self-delimiting without an external length prefix.
//
// Only the terminator byte itself needs escaping inside a payload: every
// literal 0x00 is replaced by the two-byte sequence 0x00 0x01, and the
// payload ends with the two-byte sequence 0x00 0x00. Because the
// terminator (0x00) sorts below every other byte, a shorter payload always
// sorts before any payload it's a proper prefix of: its terminator appears
// where the longer payload still has real content, and 0x00 0x00 (end) is
// less than 0x00 0x01 (escaped continuation) is less than anything else.
const (
	terminator byte = 0x00
	escapeByte byte = 0x01
)

// escape state machine states, named per the sentinel-escape stream design.
type escapeState int

const (
	stateData escapeState = iota
	stateSawZero
	stateEnd
)

// terminatorCodec escapes and terminates the bytes written by codec, and
// performs the inverse when reading. Wrapping a Codec that already reports
// RequiresTerminator() == false is a no-op handled by [Terminate] before a
// terminatorCodec is ever constructed.
type terminatorCodec[T any] struct {
	codec Codec[T]
}

// Terminate returns a Codec that escapes and terminates the encodings
// produced by codec, if [Codec.RequiresTerminator] reports true for codec.
// Otherwise it returns codec unchanged.
func Terminate[T any](codec Codec[T]) Codec[T] {
	if !codec.RequiresTerminator() {
		return codec
	}
	if already, ok := codec.(terminatorCodec[T]); ok {
		return already
	}
	return terminatorCodec[T]{codec}
}

func (c terminatorCodec[T]) Encode(sink io.Writer, value T) error {
	var scratch bytes.Buffer
	if err := c.codec.Encode(&scratch, value); err != nil {
		return err
	}
	return escapeWrite(sink, scratch.Bytes())
}

func (c terminatorCodec[T]) Decode(source io.Reader) (T, error) {
	var zero T
	payload, err := unescapeRead(source)
	if err != nil {
		return zero, err
	}
	value, err := c.codec.Decode(bytes.NewReader(payload))
	if err != nil && err != io.EOF {
		return zero, err
	}
	return value, nil
}

func (terminatorCodec[T]) RequiresTerminator() bool {
	return false
}

// escapeWrite writes payload to w with every literal terminator byte
// escaped, followed by the two-byte terminator sequence.
func escapeWrite(w io.Writer, payload []byte) error {
	start := 0
	for i, b := range payload {
		if b == terminator {
			if _, err := w.Write(payload[start : i+1]); err != nil {
				return err
			}
			if _, err := w.Write([]byte{escapeByte}); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if _, err := w.Write(payload[start:]); err != nil {
		return err
	}
	_, err := w.Write([]byte{terminator, terminator})
	return err
}

// unescapeRead reads and unescapes a single byte at a time from r, stopping
// at (and consuming) the first unescaped terminator sequence, implementing
// the Data/SawZero/End state machine:
//
//   - Data, on 0x00, moves to SawZero; any other byte is emitted and Data
//     is kept.
//   - SawZero, on 0x01, emits 0x00 and returns to Data; on 0x00, moves to
//     End (the value is complete); any other byte is an invalid encoding.
//   - End is terminal.
func unescapeRead(r io.Reader) ([]byte, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReaderAdapter{r: r}
	}
	out := make([]byte, 0, 32)
	state := stateData
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		switch state {
		case stateData:
			if b == terminator {
				state = stateSawZero
				continue
			}
			out = append(out, b)
		case stateSawZero:
			switch b {
			case escapeByte:
				out = append(out, terminator)
				state = stateData
			case terminator:
				state = stateEnd
			default:
				return nil, invalidEncoding("lone terminator byte followed by %#x, want 0x00 or 0x01", b)
			}
		}
		if state == stateEnd {
			return out, nil
		}
	}
}

// byteReaderAdapter lets unescapeRead read a single byte at a time from an
// io.Reader that doesn't implement io.ByteReader itself, without requiring
// every caller to pass a *bufio.Reader.
type byteReaderAdapter struct {
	r   io.Reader
	buf [1]byte
}

func (a *byteReaderAdapter) ReadByte() (byte, error) {
	n, err := a.r.Read(a.buf[:])
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return a.buf[0], nil
}
