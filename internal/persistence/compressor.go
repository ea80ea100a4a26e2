package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/klauspost/compress/zstd"
	"gritd/internal/persistence/interfaces"
)

// maxDecodedSnapshot bounds what a corrupt or hostile slot or archive can
// make the decoder allocate.
const maxDecodedSnapshot = 256 << 20

var (
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	errNotZstd = errors.New("decompress: missing zstd frame header")
)

// SnapshotCompressor is shared by the snapshot slot and the archive. Both
// EncodeAll and DecodeAll are safe for concurrent use.
type SnapshotCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(maxDecodedSnapshot),
	)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &SnapshotCompressor{encoder: encoder, decoder: decoder}, nil
}

func (c *SnapshotCompressor) Compress(val []byte) ([]byte, error) {
	return c.encoder.EncodeAll(val, make([]byte, 0, len(val)/4)), nil
}

func (c *SnapshotCompressor) Decompress(val []byte) ([]byte, error) {
	if !isCompressed(val) {
		return nil, errNotZstd
	}
	return c.decoder.DecodeAll(val, nil)
}

func (c *SnapshotCompressor) Close() {
	_ = c.encoder.Close()
	c.decoder.Close()
}

// isCompressed reports whether data starts with a zstd frame header. Plain
// JSON snapshots always start with '{'.
func isCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}
