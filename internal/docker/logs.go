package docker

import (
	"bytes"
	"fmt"
	"io"

	"github.com/docker/docker/pkg/stdcopy"
)

// demuxLogStream converts the daemon's log stream into plain text.
//
// Containers created without a TTY multiplex stdout/stderr into a single
// stream with 8-byte frame headers; stdcopy strips those. TTY containers emit
// an unframed stream, which stdcopy rejects, so the raw bytes are returned
// as-is in that case.
func demuxLogStream(reader io.Reader) (string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read log stream: %w", err)
	}

	var demuxed bytes.Buffer
	// stdout and stderr interleave into one buffer; per-line timestamps keep
	// the ordering readable for the consumer.
	if _, err := stdcopy.StdCopy(&demuxed, &demuxed, bytes.NewReader(raw)); err != nil {
		return string(raw), nil
	}

	return demuxed.String(), nil
}
