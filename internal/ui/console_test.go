package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLineTrims(t *testing.T) {
	c := NewConsole(strings.NewReader("  42 \n\tquit\t\n"), io.Discard)

	tests := []string{"42", "quit"}
	for _, want := range tests {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end error = %v, want io.EOF", err)
	}
}

func TestReadLineFinalLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("17"), io.Discard)

	got, err := c.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if got != "17" {
		t.Errorf("ReadLine() = %q, want %q", got, "17")
	}

	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("second ReadLine() error = %v, want io.EOF", err)
	}
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	if err := c.Println("Too big!"); err != nil {
		t.Fatalf("Println() error = %v", err)
	}
	if err := c.Printf("You guessed: %d", 7); err != nil {
		t.Fatalf("Printf() error = %v", err)
	}

	want := "Too big!\nYou guessed: 7\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
