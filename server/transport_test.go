package server

import "testing"

func TestPipeDeliversInOrder(t *testing.T) {
	a, b := Pipe()

	for _, typ := range []string{"one", "two", "three"} {
		if err := a.Send(Message{Type: typ}); err != nil {
			t.Fatalf("send %s: %v", typ, err)
		}
	}
	for _, want := range []string{"one", "two", "three"} {
		got := <-b.Inbox()
		if got.Type != want {
			t.Fatalf("got %q, want %q", got.Type, want)
		}
	}
}

func TestPipeCloseEndsPeerInbox(t *testing.T) {
	a, b := Pipe()

	a.Send(Message{Type: "last"})
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	if m := <-b.Inbox(); m.Type != "last" {
		t.Fatalf("got %q before close, want last", m.Type)
	}
	if _, ok := <-b.Inbox(); ok {
		t.Fatal("inbox still open after peer close")
	}
}
