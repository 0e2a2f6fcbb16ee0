package compression

import (
	"github.com/klauspost/compress/zstd"
)

// minCompressSize skips compression for payloads too small to benefit.
const minCompressSize = 128

// Compressor transparently compresses cached content with zstd. A nil or
// disabled Compressor passes data through unchanged.
type Compressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// New builds a Compressor for the given level (1 fastest, 2 default,
// 3 better). Zero or negative disables compression.
func New(level int) (*Compressor, error) {
	if level <= 0 {
		return &Compressor{}, nil
	}

	var encoderLevel zstd.EncoderLevel
	switch level {
	case 1:
		encoderLevel = zstd.SpeedFastest
	case 3:
		encoderLevel = zstd.SpeedBetterCompression
	default:
		encoderLevel = zstd.SpeedDefault
	}

	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(encoderLevel),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, err
	}

	return &Compressor{encoder: encoder, decoder: decoder}, nil
}

// Compress returns data compressed, or data itself when compression is
// disabled, the payload is tiny, or compression would not shrink it.
func (c *Compressor) Compress(data []byte) []byte {
	if c.encoder == nil || len(data) < minCompressSize {
		return data
	}
	compressed := c.encoder.EncodeAll(data, make([]byte, 0, len(data)))
	if len(compressed) >= len(data) {
		return data
	}
	return compressed
}

// Decompress reverses Compress. Data that was stored uncompressed (or that
// predates compression being enabled) is returned as-is.
func (c *Compressor) Decompress(data []byte) []byte {
	if c.decoder == nil {
		return data
	}
	decompressed, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return data
	}
	return decompressed
}

// Close releases the encoder and decoder.
func (c *Compressor) Close() error {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
	return nil
}
