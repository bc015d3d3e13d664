package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "mapper.decode",
		Kind: KindParse,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindParse {
		t.Fatalf("expected kind %s", KindParse)
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "github.fetch",
		Kind: KindFetch,
		Path: "http://github.com/api/v2/xml/user/show/dustin",
		Err:  ErrFetch,
	}

	msg := err.Error()
	for _, want := range []string{"github.fetch", "fetch", "user/show/dustin", "fetch failed"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := &OpError{Op: "xmltree.parse", Kind: KindParse, Err: ErrParse}
	wrapped := errors.Join(errors.New("context"), inner)

	if !IsKind(wrapped, KindParse) {
		t.Fatalf("expected IsKind to see through wrapping")
	}
	if IsKind(wrapped, KindFetch) {
		t.Fatalf("did not expect fetch kind")
	}
	if KindOf(wrapped) != KindParse {
		t.Fatalf("expected KindOf parse, got %q", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for plain error")
	}
}
