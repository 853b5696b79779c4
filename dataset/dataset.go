package dataset

import (
	"context"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// ErrMalformedInput indicates an input that is not valid JSON of the
// expected shape.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedInput struct {
	Name  string
	cause error
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("malformed input %q: %v", e.Name, e.cause)
}

func (e *ErrMalformedInput) Unwrap() error { return e.cause }

// Vectors decodes a JSON array of numeric arrays, e.g. [[1,2],[3,4]].
// name is used for error reporting only.
func Vectors(name string, r io.Reader) ([][]float32, error) {
	var out [][]float32
	if err := gojson.NewDecoder(r).Decode(&out); err != nil {
		return nil, &ErrMalformedInput{Name: name, cause: err}
	}
	return out, nil
}

// Labels decodes a JSON array of label values. Strings are taken as-is;
// numbers keep their literal JSON rendering (so 1 stays "1", not "1.0").
func Labels(name string, r io.Reader) ([]string, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ErrMalformedInput{Name: name, cause: err}
	}

	out := make([]string, len(raw))
	for i, v := range raw {
		switch label := v.(type) {
		case string:
			out[i] = label
		case gojson.Number:
			out[i] = label.String()
		default:
			return nil, &ErrMalformedInput{
				Name:  name,
				cause: fmt.Errorf("label %d: unsupported type %T", i, v),
			}
		}
	}

	return out, nil
}

// ReadVectors opens name via src and decodes it with Vectors.
func ReadVectors(ctx context.Context, src Source, name string) ([][]float32, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Vectors(name, rc)
}

// ReadLabels opens name via src and decodes it with Labels.
func ReadLabels(ctx context.Context, src Source, name string) ([]string, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Labels(name, rc)
}
