package overrides

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"

	"themekit/theme"
)

// maxLine bounds a single streamed override.
const maxLine = 1 << 20

// Read consumes newline-delimited JSON (comments and trailing commas
// allowed) partial themes, emitting each onto out in input order. Blank
// lines are ignored; lines that do not decode to a mapping are logged and
// skipped. A line longer than 1 MiB or a read error stops the stream; this
// is logged at error level with the offending line number.
//
// Read returns when r is exhausted or ctx is done, closing out either way.
func Read(ctx context.Context, r io.Reader, out chan<- theme.Tree, logger *slog.Logger) {
	defer close(out)
	if logger == nil {
		logger = slog.Default()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		partial, err := Decode(raw, FormatJSON)
		if err != nil {
			logger.Warn("override parse", "line", line, "error", err)
			continue
		}
		select {
		case out <- partial:
		case <-ctx.Done():
			return
		}
	}
	if err := sc.Err(); err != nil {
		logger.Error("override stream stopped, remaining input dropped", "line", line+1, "error", err)
	}
}
