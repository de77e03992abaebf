package ipc

import (
	"bytes"
	"fmt"
	"testing"
)

func TestFramer_SingleLine(t *testing.T) {
	f := &lineFramer{}
	lines := f.Push([]byte("{\"ok\":true}\n"))
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if got := string(lines[0]); got != `{"ok":true}` {
		t.Fatalf("line = %q, want %q", got, `{"ok":true}`)
	}
	if f.buffered() != 0 {
		t.Fatalf("buffered = %d, want 0", f.buffered())
	}
}

func TestFramer_PartialStaysBuffered(t *testing.T) {
	f := &lineFramer{}
	if lines := f.Push([]byte(`{"ok":true,"data":{"upd`)); len(lines) != 0 {
		t.Fatalf("lines = %q, want none", lines)
	}
	lines := f.Push([]byte("ated\":1}}\n"))
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if got := string(lines[0]); got != `{"ok":true,"data":{"updated":1}}` {
		t.Fatalf("line = %q, want reassembled document", got)
	}
}

func TestFramer_MultipleLinesInOneChunk(t *testing.T) {
	f := &lineFramer{}
	lines := f.Push([]byte("{\"a\":1}\n{\"b\":2}\n{\"c\":3}\n"))
	want := []string{`{"a":1}`, `{"b":2}`, `{"c":3}`}
	if len(lines) != len(want) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if got := string(lines[i]); got != w {
			t.Fatalf("lines[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestFramer_EmptyLinesDropped(t *testing.T) {
	f := &lineFramer{}
	lines := f.Push([]byte("\n  \n\t\n{\"a\":1}\n\n"))
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if got := string(lines[0]); got != `{"a":1}` {
		t.Fatalf("line = %q, want %q", got, `{"a":1}`)
	}
}

func TestFramer_TrimsSurroundingWhitespace(t *testing.T) {
	f := &lineFramer{}
	lines := f.Push([]byte("  {\"a\":1}\r\n"))
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if got := string(lines[0]); got != `{"a":1}` {
		t.Fatalf("line = %q, want trimmed document", got)
	}
}

// TestFramer_AnyChunkBoundary feeds the same document stream split at every
// possible byte boundary and requires the identical line sequence each time,
// including splits that land mid-document.
func TestFramer_AnyChunkBoundary(t *testing.T) {
	docs := []string{
		`{"ok":true,"data":[{"id":7,"text":"a"}]}`,
		`{"ok":true,"data":{"updated":1}}`,
		`{"ok":false,"error":"db locked"}`,
	}
	stream := []byte(docs[0] + "\n" + docs[1] + "\n" + docs[2] + "\n")

	for cut := 0; cut <= len(stream); cut++ {
		t.Run(fmt.Sprintf("cut=%d", cut), func(t *testing.T) {
			f := &lineFramer{}
			var lines [][]byte
			lines = append(lines, f.Push(stream[:cut])...)
			lines = append(lines, f.Push(stream[cut:])...)

			if len(lines) != len(docs) {
				t.Fatalf("len(lines) = %d, want %d", len(lines), len(docs))
			}
			for i, doc := range docs {
				if !bytes.Equal(lines[i], []byte(doc)) {
					t.Fatalf("lines[%d] = %q, want %q", i, lines[i], doc)
				}
			}
			if f.buffered() != 0 {
				t.Fatalf("buffered = %d, want 0", f.buffered())
			}
		})
	}
}

func TestFramer_ByteAtATime(t *testing.T) {
	doc := `{"ok":true,"data":{"copied":1}}`
	stream := []byte(doc + "\n")

	f := &lineFramer{}
	var lines [][]byte
	for _, b := range stream {
		lines = append(lines, f.Push([]byte{b})...)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if got := string(lines[0]); got != doc {
		t.Fatalf("line = %q, want %q", got, doc)
	}
}
