package fetcher

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// DecodeRows walks a top-level JSON array, decoding each element into T and
// handing it to fn with its index. A Census table arrives as
// [[header...],[row...],...], so row 0 is the header. An empty body is not an
// error. Decoding stops at the first error from fn or from ctx.
func DecodeRows[T any](ctx context.Context, r io.Reader, fn func(i int, row T) error) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return eris.Wrap(err, "json: read opening token")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return eris.Errorf("json: expected '[', got %v", tok)
	}

	for i := 0; dec.More(); i++ {
		if err := ctx.Err(); err != nil {
			return eris.Wrap(err, "json: context cancelled")
		}
		var row T
		if err := dec.Decode(&row); err != nil {
			return eris.Wrapf(err, "json: decode element %d", i)
		}
		if err := fn(i, row); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return eris.Wrap(err, "json: read closing token")
	}
	return nil
}
