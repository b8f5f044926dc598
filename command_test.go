package picowire

import (
	"reflect"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	words, err := SplitCommand(`send "hello world" --to '192.168.1.9:2048'`)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	want := []string{"send", "hello world", "--to", "192.168.1.9:2048"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("expected %v, got %v", want, words)
	}
}

func TestSplitCommandUnterminatedQuote(t *testing.T) {
	if _, err := SplitCommand(`send "unterminated`); err == nil {
		t.Fatal("expected an error for an unterminated quote")
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	args := []string{"send", "hello world", "it's quoted", ""}
	words, err := SplitCommand(JoinCommand(args...))
	if err != nil {
		t.Fatalf("split joined command: %v", err)
	}
	if !reflect.DeepEqual(words, args) {
		t.Errorf("round trip changed %v into %v", args, words)
	}
}
