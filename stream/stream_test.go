package stream

import (
	"bytes"
	"errors"
	"testing"
)

func TestInput_FIFO(t *testing.T) {
	in := NewInput()
	in.Feed([]byte("ab"))
	in.Feed([]byte("c"))

	if in.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", in.Len())
	}
	if string(in.Pending()) != "abc" {
		t.Errorf("Pending() = %q", in.Pending())
	}

	for _, want := range []byte("abc") {
		got, ok := in.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %q, %v; want %q", got, ok, want)
		}
	}

	if b, ok := in.Pop(); ok || b != 0 {
		t.Errorf("Pop() on empty = %q, %v", b, ok)
	}
}

func TestInput_FeedCopies(t *testing.T) {
	in := NewInput()
	data := []byte("x")
	in.Feed(data)
	data[0] = 'y'

	if b, _ := in.Pop(); b != 'x' {
		t.Errorf("Pop() = %q, want 'x'", b)
	}
}

func TestOutput_Append(t *testing.T) {
	var mirror bytes.Buffer
	out := NewOutput(&mirror)
	for _, b := range []byte("hi") {
		out.Append(b)
	}

	if string(out.Bytes()) != "hi" || out.Len() != 2 {
		t.Errorf("Bytes() = %q", out.Bytes())
	}
	if mirror.String() != "hi" {
		t.Errorf("mirror = %q", mirror.String())
	}

	out.Reset()
	if out.Len() != 0 {
		t.Errorf("Len() after Reset = %d", out.Len())
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("broken pipe")
}

func TestOutput_MirrorError(t *testing.T) {
	w := &failWriter{}
	out := NewOutput(w)
	out.Append('a')
	out.Append('b')

	if out.Err() == nil {
		t.Fatal("expected mirror error")
	}
	if w.n != 1 {
		t.Errorf("mirror written %d times after failure, want 1", w.n)
	}
	if string(out.Bytes()) != "ab" {
		t.Errorf("Bytes() = %q, want accumulation to continue", out.Bytes())
	}
}
