package monitor

import (
	"context"
	"encoding/json"
	"io"
)

// RunJSON takes one snapshot, prints it as indented JSON and returns.
func RunJSON(ctx context.Context, src Source, out io.Writer) error {
	samp, err := src.Sample(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(samp)
}

// RunJSONStream writes one NDJSON line per sample until ctx is done.
// No farewell here: the stream is meant for piping.
func RunJSONStream(ctx context.Context, src Source, out io.Writer) error {
	enc := json.NewEncoder(out)
	for {
		samp, err := src.Sample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := enc.Encode(samp); err != nil {
			return err
		}
	}
}
