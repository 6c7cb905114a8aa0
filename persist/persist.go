// Package persist stores compressed payloads outside the codec: raw bytes on
// disk, optionally Base64 armored for text-safe transport or embedding.
//
// The helpers treat payloads as opaque byte buffers produced by the quant
// package; they never reinterpret payload contents or add framing of their
// own.
//
// # Basic Usage
//
//	payload, _ := quant.Compress(values, 1e-4)
//
//	// Raw binary file
//	_ = persist.Save("values.loq", payload)
//
//	// Base64 text file
//	_ = persist.Save("values.loq.b64", payload, persist.WithBase64())
//
//	payload, _ = persist.Load("values.loq.b64", persist.WithBase64())
package persist

import (
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"

	"github.com/arloliu/loq/internal/options"
	"github.com/arloliu/loq/internal/pool"
)

const defaultFileMode fs.FileMode = 0o644

type config struct {
	base64   bool
	fileMode fs.FileMode
}

// Option configures Save and Load.
type Option = options.Option[*config]

// WithBase64 stores the payload Base64 encoded (standard alphabet, padded)
// instead of raw bytes. Load must be given the same option.
func WithBase64() Option {
	return options.NoError(func(c *config) {
		c.base64 = true
	})
}

// WithFileMode sets the permission bits used when Save creates the file.
// The default is 0o644.
func WithFileMode(mode fs.FileMode) Option {
	return options.New(func(c *config) error {
		if mode == 0 {
			return fmt.Errorf("file mode must be non-zero")
		}
		c.fileMode = mode

		return nil
	})
}

// Save writes a compressed payload to path, creating or truncating the file.
func Save(path string, payload []byte, opts ...Option) error {
	cfg := &config{fileMode: defaultFileMode}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	data := payload
	if cfg.base64 {
		buf := pool.GetPayloadBuffer()
		defer pool.PutPayloadBuffer(buf)

		buf.SetLength(base64.StdEncoding.EncodedLen(len(payload)))
		base64.StdEncoding.Encode(buf.B, payload)
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, cfg.fileMode); err != nil {
		return fmt.Errorf("write payload file: %w", err)
	}

	return nil
}

// Load reads a payload previously written by Save. Pass the same options
// used when saving, in particular WithBase64.
func Load(path string, opts ...Option) ([]byte, error) {
	cfg := &config{fileMode: defaultFileMode}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload file: %w", err)
	}

	if cfg.base64 {
		return DecodeBase64(string(data))
	}

	return data, nil
}

// EncodeBase64 returns the payload as a Base64 string using the standard
// alphabet with padding.
func EncodeBase64(payload []byte) string {
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeBase64 is the inverse of EncodeBase64.
func DecodeBase64(encoded string) ([]byte, error) {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", err)
	}

	return payload, nil
}
