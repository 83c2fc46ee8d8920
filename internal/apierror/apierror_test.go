package apierror

import (
	"errors"
	"testing"
)

type fakeTimeout struct{}

func (fakeTimeout) Error() string   { return "dial tcp: i/o timeout" }
func (fakeTimeout) Timeout() bool   { return true }
func (fakeTimeout) Temporary() bool { return true }

func TestNormalize_Timeout(t *testing.T) {
	e := Normalize(fakeTimeout{})
	if e.Kind != KindNetwork {
		t.Fatalf("want network kind, got %s", e.Kind)
	}
	if e.Status != 0 {
		t.Fatalf("timeout has no status, got %d", e.Status)
	}
}

func TestNormalize_PassthroughAndWrapped(t *testing.T) {
	orig := New(KindServer, 409, "curso já cadastrado")
	if got := Normalize(orig); got != orig {
		t.Fatal("already-normalized error must pass through")
	}
	wrapped := errors.New("GET /x: " + orig.Error())
	if got := Normalize(wrapped); got.Kind != KindUnknown {
		t.Fatalf("plain error is unknown, got %s", got.Kind)
	}
}

func TestNormalize_EmptyMessage(t *testing.T) {
	if got := Normalize(errors.New("")); got.Message != "erro desconhecido" {
		t.Fatalf("got %q", got.Message)
	}
}

func TestFromResponse_PrefersBackendMessage(t *testing.T) {
	e := FromResponse(409, "CPF já cadastrado no sistema")
	if e.Message != "CPF já cadastrado no sistema" {
		t.Fatalf("got %q", e.Message)
	}
	e = FromResponse(500, "")
	if e.Message != "Internal Server Error" {
		t.Fatalf("want status text fallback, got %q", e.Message)
	}
	if FromResponse(401, "").Kind != KindUnauthorized {
		t.Fatal("401 must be unauthorized")
	}
}

func TestTranslate(t *testing.T) {
	table := map[int]string{409: "já existe um curso com esse nome"}
	keywords := map[string]string{"cpf": "CPF já cadastrado"}

	if got := Translate(New(KindServer, 409, "conflict"), table, keywords); got != "já existe um curso com esse nome" {
		t.Fatalf("status table lookup failed: %q", got)
	}
	if got := Translate(New(KindServer, 400, "O CPF informado já existe"), table, keywords); got != "CPF já cadastrado" {
		t.Fatalf("keyword match failed: %q", got)
	}
	if got := Translate(New(KindServer, 400, "payload inválido"), table, keywords); got != "payload inválido" {
		t.Fatalf("fallback to normalized message failed: %q", got)
	}
	if got := Translate(New(KindValidation, 0, "nome é obrigatório"), table, keywords); got != "nome é obrigatório" {
		t.Fatalf("validation message must pass through: %q", got)
	}
}
