package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is implemented by the TOML and YAML stream decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc adapts a typed decoder constructor to a DecoderFunc.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// decoders maps file extensions to strict decoders. Unknown keys are errors
// so that misspelled fields do not silently fall back to defaults.
var decoders = map[string]DecoderFunc{
	".toml": NewDecoderFunc(func(r io.Reader) *toml.Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	}),
	".yaml": NewDecoderFunc(newYAMLDecoder),
	".yml":  NewDecoderFunc(newYAMLDecoder),
}

func newYAMLDecoder(r io.Reader) *yaml.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// DecoderFor returns the decoder registered for the extension of filename.
func DecoderFor(filename string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	return f, nil
}

// Decode reads a scene description from r.
func Decode(r io.Reader, f DecoderFunc) (*File, error) {
	var file File
	if err := f(r).Decode(&file); err != nil {
		if err == io.EOF {
			return &file, nil
		}
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &file, nil
}

// Open reads a scene description from filename, choosing the decoder by
// its extension.
func Open(filename string) (*File, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer fp.Close()
	return Decode(bufio.NewReader(fp), f)
}
