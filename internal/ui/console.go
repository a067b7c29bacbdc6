// Package ui provides line-oriented terminal input and output.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console wraps a line reader and an output writer with a simplified interface.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine blocks until a full line arrives and returns it with surrounding
// whitespace trimmed. A final line without a trailing newline is returned as
// is; io.EOF is reported only once no text is pending.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Println writes msg followed by a newline.
func (c *Console) Println(msg string) error {
	_, err := fmt.Fprintln(c.out, msg)
	return err
}

// Printf writes a formatted line.
func (c *Console) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.out, format+"\n", args...)
	return err
}
