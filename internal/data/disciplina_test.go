package data

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/acadpainel/academico-sync/internal/cache"
	"github.com/acadpainel/academico-sync/internal/logging"
	"github.com/acadpainel/academico-sync/internal/models"
)

func TestDisciplinaStore_ListAndCache(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/disciplina/secretaria/s1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"disciplinas":[{"id":1,"nome":"Algoritmos","carga_horaria_semanal":4}]}`))
	})
	c := cache.New[[]models.Disciplina]("disciplina", time.Minute)
	s := NewDisciplinaStore(client, c, logging.Nop().Base, "s1")

	s.Refetch(context.Background(), false)
	itens := s.Itens()
	if len(itens) != 1 || itens[0].CargaSemanal != 4 {
		t.Fatalf("got %+v err=%v", itens, s.Err())
	}
	if _, ok := c.Get("s1"); !ok {
		t.Fatal("result not cached")
	}
}

func TestDisciplinaStore_FiltrarBuildsQuery(t *testing.T) {
	var gotQuery string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/disciplina" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	s := NewDisciplinaStore(client, cache.New[[]models.Disciplina]("disciplina", time.Minute), logging.Nop().Base, "s1")

	_, err := s.Filtrar(context.Background(), models.DisciplinaFiltro{
		OrderBy: "nome", Order: "asc", Situacao: "ATIVO",
	})
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery != "order=asc&orderBy=nome&situacao=ATIVO" {
		t.Fatalf("got query %q", gotQuery)
	}
}

func TestDisciplinaStore_FiltrarOmitsZeroFields(t *testing.T) {
	var gotQuery string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	s := NewDisciplinaStore(client, cache.New[[]models.Disciplina]("disciplina", time.Minute), logging.Nop().Base, "s1")

	if _, err := s.Filtrar(context.Background(), models.DisciplinaFiltro{}); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "" {
		t.Fatalf("empty filter must produce no query, got %q", gotQuery)
	}
}
