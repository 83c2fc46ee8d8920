package data

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/acadpainel/academico-sync/internal/cache"
	"github.com/acadpainel/academico-sync/internal/logging"
	"github.com/acadpainel/academico-sync/internal/models"
)

// A forced refetch that supersedes an in-flight load must release anyone
// waiting on the old loading channel. The superseded load itself never
// reaches the close: its finishLoad sees a stale generation.
func TestMachine_SupersededLoadReleasesWaiters(t *testing.T) {
	gate := make(chan struct{})
	arrived := make(chan struct{})
	var calls atomic.Int32
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(arrived)
			<-gate
		}
		_, _ = w.Write([]byte(`[{"id":1,"nome":"ADS"}]`))
	})
	s := NewCursoStore(client, cache.New[[]models.Curso]("curso", time.Minute), logging.Nop().Base, "s1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Refetch(context.Background(), true)
	}()
	<-arrived
	first := s.loadingChan()
	if first == nil {
		t.Fatal("no loading channel while a fetch is in flight")
	}

	s.Refetch(context.Background(), true)
	close(gate)
	wg.Wait()

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded loading channel never closed")
	}
}

// Generation counter: a slow response from an older fetch must not
// overwrite the result of a newer forced refetch, in state or in cache.
func TestMachine_StaleResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	arrived := make(chan struct{})
	var calls atomic.Int32
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(arrived)
			<-gate
			_, _ = w.Write([]byte(`[{"id":1,"nome":"Antigo"}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":2,"nome":"Novo"}]`))
	})
	c := cache.New[[]models.Curso]("curso", time.Minute)
	s := NewCursoStore(client, c, logging.Nop().Base, "s1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Refetch(context.Background(), true)
	}()
	<-arrived
	s.Refetch(context.Background(), true)
	close(gate)
	wg.Wait()

	if s.State() != StateReady {
		t.Fatalf("want ready, got %s err=%v", s.State(), s.Err())
	}
	itens := s.Itens()
	if len(itens) != 1 || itens[0].Nome != "Novo" {
		t.Fatalf("stale response overwrote newer state: %+v", itens)
	}
	if cached, ok := c.Get("s1"); !ok || cached[0].Nome != "Novo" {
		t.Fatalf("stale response reached the cache: %+v ok=%v", cached, ok)
	}
}

// Canceling the context mid-fetch abandons the load: no data, no error,
// the store just falls back to idle.
func TestMachine_CanceledContextAbandonsLoad(t *testing.T) {
	gate := make(chan struct{})
	arrived := make(chan struct{})
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-gate
	})
	// registered after newBackend so it runs before srv.Close (cleanups are LIFO)
	t.Cleanup(func() { close(gate) })
	s := NewCursoStore(client, cache.New[[]models.Curso]("curso", time.Minute), logging.Nop().Base, "s1")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-arrived
		cancel()
	}()
	s.Refetch(ctx, true)

	if s.State() != StateIdle {
		t.Fatalf("want idle after abandoned load, got %s", s.State())
	}
	if s.Err() != nil {
		t.Fatalf("abandoned load must not record an error: %v", s.Err())
	}
	if s.Itens() != nil {
		t.Fatalf("abandoned load must not write data: %+v", s.Itens())
	}
	if ch := s.loadingChan(); ch != nil {
		t.Fatal("loading channel must be released on abandon")
	}
}
