package rpc

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"iter"
)

// ChunkSize is the read size used when draining raw byte streams. Chunk
// boundaries are arbitrary; callers must not attach meaning to them.
const ChunkSize = 32 * 1024

// Chunks turns a raw response body into an ordered chunk stream. The body
// is closed when iteration stops, whether by exhaustion, error, or an
// early break. Each yielded chunk is a fresh copy the consumer may keep.
func Chunks(body io.ReadCloser) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		defer body.Close()
		buf := make([]byte, ChunkSize)
		for {
			n, err := body.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				if !yield(chunk, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}
		}
	}
}

// Lines turns an NDJSON response body into a stream of raw JSON lines,
// closing the body when iteration stops. Blank lines are skipped.
func Lines(body io.ReadCloser) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		defer body.Close()
		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			raw := make(json.RawMessage, len(line))
			copy(raw, line)
			if !yield(raw, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, err)
		}
	}
}
