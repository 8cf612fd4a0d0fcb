package prompt

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

// countingReader records how many bytes were handed out.
type countingReader struct {
	r    *strings.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	return n, err
}

func TestNewDefaultAcknowledger(t *testing.T) {
	t.Parallel()

	ack := NewDefaultAcknowledger()
	assert.Equal(t, os.Stdin, ack.Reader)
	assert.Equal(t, os.Stdout, ack.Writer)
}

func TestWaitForAcknowledgment(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
	}{
		"SingleLine":   {input: "\n"},
		"TextThenLine": {input: "ok\n"},
		"EndOfInput":   {input: ""},
		"NoNewline":    {input: "q"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			ack := &DefaultAcknowledger{Reader: strings.NewReader(tc.input), Writer: &out}

			ack.WaitForAcknowledgment()

			assert.Equal(t, Message+"\n", out.String())
		})
	}
}

func TestWaitForAcknowledgmentReadError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ack := &DefaultAcknowledger{Reader: errorReader{}, Writer: &out}

	ack.WaitForAcknowledgment()

	assert.Contains(t, out.String(), Message)
}

func TestWaitForAcknowledgmentConsumesInput(t *testing.T) {
	t.Parallel()

	reader := &countingReader{r: strings.NewReader("first\nsecond\n")}
	ack := &DefaultAcknowledger{Reader: reader, Writer: &bytes.Buffer{}}

	ack.WaitForAcknowledgment()

	assert.Positive(t, reader.read)
}

func TestNonInteractiveAcknowledger(t *testing.T) {
	t.Parallel()

	var ack Acknowledger = NewNonInteractiveAcknowledger()
	assert.NotPanics(t, ack.WaitForAcknowledgment)
}
