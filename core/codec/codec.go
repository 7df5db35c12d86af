package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"save-editor/core/savefile"

	"github.com/klauspost/compress/gzip"
)

// Encoding identifies one of the three wire encodings a save file can
// arrive in. The encoding is sticky: exports re-apply whatever the
// loaded file used.
type Encoding string

const (
	// EncodingPlain is UTF-8 JSON text.
	EncodingPlain Encoding = "plain"
	// EncodingBase64 is the JSON text base64-encoded as the whole file body.
	EncodingBase64 Encoding = "base64"
	// EncodingGzip is gzip-compressed JSON text, selected only by the
	// filename extension hint, never by content sniffing.
	EncodingGzip Encoding = "gzip"
)

// ErrUnrecognizedFormat is returned when every decode strategy in the
// fallback chain fails.
var ErrUnrecognizedFormat = errors.New("unrecognized save format")

// GzipHint reports whether the source filename selects the gzip path.
func GzipHint(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".gz")
}

// Decode reverses the wire encoding of raw and parses the container.
// When gzipHint is set the bytes are inflated first; otherwise the text
// is parsed directly and, on failure, base64-decoded and parsed again.
// The encoding that succeeded is returned alongside the container so
// Encode can re-apply it.
func Decode(raw []byte, gzipHint bool) (*savefile.Container, Encoding, error) {
	if gzipHint {
		text, err := gunzip(raw)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrUnrecognizedFormat, err)
		}
		container, err := savefile.Parse(text)
		if err != nil {
			return nil, "", err
		}
		return container, EncodingGzip, nil
	}

	// Strategy 1: plain JSON text.
	container, plainErr := savefile.Parse(raw)
	if plainErr == nil {
		return container, EncodingPlain, nil
	}
	if errors.Is(plainErr, savefile.ErrInvalidContainer) {
		// The text parsed as JSON but carries the wrong tag; falling
		// back to base64 cannot fix that.
		return nil, "", plainErr
	}

	// Strategy 2: base64-wrapped JSON text.
	decoded, b64Err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if b64Err != nil {
		return nil, "", ErrUnrecognizedFormat
	}
	container, err := savefile.Parse(decoded)
	if err != nil {
		if errors.Is(err, savefile.ErrInvalidContainer) {
			return nil, "", err
		}
		return nil, "", ErrUnrecognizedFormat
	}
	return container, EncodingBase64, nil
}

// Encode serializes the container and applies the given wire encoding.
func Encode(container *savefile.Container, enc Encoding) ([]byte, error) {
	text, err := container.Marshal()
	if err != nil {
		return nil, err
	}

	switch enc {
	case EncodingPlain, "":
		return text, nil
	case EncodingBase64:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(text)))
		base64.StdEncoding.Encode(out, text)
		return out, nil
	case EncodingGzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(text); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", enc)
	}
}

// Extension returns the export filename extension for an encoding.
func Extension(enc Encoding) string {
	if enc == EncodingGzip {
		return ".json.gz"
	}
	return ".json"
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
