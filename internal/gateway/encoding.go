package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for an output encoding name the
// writer does not know.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encoding names accepted for output files.
const (
	EncodingCP932    = "cp932"
	EncodingShiftJIS = "shift_jis"
	EncodingUTF8     = "utf-8"
	EncodingUTF8BOM  = "utf-8-sig"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode returns a reader over data as UTF-8. Input that carries a BOM or
// is already valid UTF-8 is used as is, anything else is decoded as CP932.
func decode(data []byte) (io.Reader, string) {
	if bytes.HasPrefix(data, utf8BOM) {
		return bytes.NewReader(data[len(utf8BOM):]), EncodingUTF8BOM
	}
	if utf8.Valid(data) {
		return bytes.NewReader(data), EncodingUTF8
	}
	return transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder()), EncodingCP932
}

// encodeWriter wraps w so that UTF-8 written to it lands in the named
// encoding. Characters CP932 cannot represent are replaced rather than
// failing the whole file.
func encodeWriter(w io.Writer, name string) (io.Writer, error) {
	switch strings.ToLower(name) {
	case EncodingCP932, EncodingShiftJIS:
		enc := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
		return transform.NewWriter(w, enc), nil
	case EncodingUTF8:
		return w, nil
	case EncodingUTF8BOM:
		if _, err := w.Write(utf8BOM); err != nil {
			return nil, fmt.Errorf("failed to write BOM: %w", err)
		}
		return w, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
}
