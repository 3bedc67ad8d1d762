package stream

import "io"

// Input is a FIFO byte queue. It grows only through Feed and shrinks only
// through Pop.
type Input struct {
	buf []byte
}

// NewInput creates an empty input queue
func NewInput() *Input {
	return &Input{}
}

// Feed appends data to the end of the queue
func (in *Input) Feed(data []byte) {
	in.buf = append(in.buf, data...)
}

// Pop removes and returns the byte at the front of the queue.
// ok is false when the queue is empty.
func (in *Input) Pop() (b byte, ok bool) {
	if len(in.buf) == 0 {
		return 0, false
	}
	b = in.buf[0]
	in.buf = in.buf[1:]
	if len(in.buf) == 0 {
		in.buf = nil
	}
	return b, true
}

// Len returns the number of queued bytes
func (in *Input) Len() int {
	return len(in.buf)
}

// Pending returns a copy of the queued bytes without consuming them
func (in *Input) Pending() []byte {
	return append([]byte(nil), in.buf...)
}

// Output accumulates bytes written during a single run. When a mirror writer
// is attached each byte is also passed through to it as it is produced.
type Output struct {
	buf    []byte
	mirror io.Writer
	err    error
}

// NewOutput creates an empty output sequence. mirror may be nil.
func NewOutput(mirror io.Writer) *Output {
	return &Output{mirror: mirror}
}

// Append adds b to the sequence. A mirror write failure is remembered and
// reported by Err; later bytes are still accumulated but no longer mirrored.
func (o *Output) Append(b byte) {
	o.buf = append(o.buf, b)
	if o.mirror == nil || o.err != nil {
		return
	}
	if _, err := o.mirror.Write([]byte{b}); err != nil {
		o.err = err
	}
}

// Bytes returns the accumulated output
func (o *Output) Bytes() []byte {
	return o.buf
}

// Len returns the number of accumulated bytes
func (o *Output) Len() int {
	return len(o.buf)
}

// Err returns the first mirror write error, if any
func (o *Output) Err() error {
	return o.err
}

// Reset discards the accumulated output and any mirror error
func (o *Output) Reset() {
	o.buf = nil
	o.err = nil
}
