package session

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCookieFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCookieStore_NamedCookie(t *testing.T) {
	path := writeCookieFile(t, "outro=abc; painel_token=tok-xyz; mais=1\n")
	s := NewCookieStore(path, "painel_token")
	tok, err := s.Token()
	if err != nil {
		t.Fatal(err)
	}
	if tok != "tok-xyz" {
		t.Fatalf("got %q", tok)
	}
}

func TestCookieStore_MissingCookie(t *testing.T) {
	path := writeCookieFile(t, "outro=abc")
	s := NewCookieStore(path, "painel_token")
	if _, err := s.Token(); err != ErrNoToken {
		t.Fatalf("want ErrNoToken, got %v", err)
	}
}

func TestCookieStore_MissingFile(t *testing.T) {
	s := NewCookieStore(filepath.Join(t.TempDir(), "nope"), "painel_token")
	if _, err := s.Token(); err != ErrNoToken {
		t.Fatalf("want ErrNoToken, got %v", err)
	}
}

func TestCookieStore_RotationPickedUp(t *testing.T) {
	path := writeCookieFile(t, "painel_token=velho")
	s := NewCookieStore(path, "painel_token")
	if tok, _ := s.Token(); tok != "velho" {
		t.Fatalf("got %q", tok)
	}
	if err := os.WriteFile(path, []byte("painel_token=novo"), 0o600); err != nil {
		t.Fatal(err)
	}
	if tok, _ := s.Token(); tok != "novo" {
		t.Fatalf("rotated token not picked up, got %q", tok)
	}
}

func TestCookieStore_Clear(t *testing.T) {
	path := writeCookieFile(t, "painel_token=tok")
	s := NewCookieStore(path, "painel_token")
	s.Clear()
	if _, err := s.Token(); err != ErrNoToken {
		t.Fatalf("want ErrNoToken after clear, got %v", err)
	}
}
