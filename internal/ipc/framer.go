package ipc

import "bytes"

// lineFramer turns an arbitrarily chunked byte stream into whole
// newline-terminated lines. The buffer is unbounded; the daemon is a trusted
// local process and does not flood it.
type lineFramer struct {
	buf []byte
}

// Push appends one read chunk and returns every complete line it unlocked,
// in arrival order. Each returned line is trimmed of surrounding whitespace;
// lines that are empty after trimming are dropped. Any trailing bytes with
// no terminator stay buffered for the next chunk.
func (f *lineFramer) Push(chunk []byte) [][]byte {
	f.buf = append(f.buf, chunk...)

	var lines [][]byte
	for {
		i := bytes.IndexByte(f.buf, '\n')
		if i < 0 {
			return lines
		}
		line := bytes.TrimSpace(f.buf[:i])
		f.buf = f.buf[i+1:]
		if len(line) == 0 {
			continue
		}
		// Copy out: the backing array is reused as the buffer drains.
		out := make([]byte, len(line))
		copy(out, line)
		lines = append(lines, out)
	}
}

// buffered reports how many bytes of partial line are waiting for a
// terminator.
func (f *lineFramer) buffered() int {
	return len(f.buf)
}
