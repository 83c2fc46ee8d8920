package data

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/cache"
	"github.com/acadpainel/academico-sync/internal/envelope"
	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/metrics"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

// CursoStore serves the course list of one secretaria.
type CursoStore struct {
	client *httpclient.Client
	cache  *cache.Store[[]models.Curso]
	log    *zap.Logger
	userID string

	machine
	itens []models.Curso
}

func NewCursoStore(client *httpclient.Client, c *cache.Store[[]models.Curso], log *zap.Logger, userID string) *CursoStore {
	return &CursoStore{client: client, cache: c, log: log, userID: userID, machine: newMachine()}
}

func (s *CursoStore) State() State {
	st, _ := s.snapshot()
	return st
}

func (s *CursoStore) Err() *apierror.Error {
	_, err := s.snapshot()
	return err
}

func (s *CursoStore) Itens() []models.Curso {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itens
}

// Refetch loads the course list. Without force, a fresh cache entry is
// adopted synchronously and no request is made.
func (s *CursoStore) Refetch(ctx context.Context, force bool) {
	if s.userID == "" {
		s.setError(apierror.New(apierror.KindValidation, 0, msgSemUsuario))
		s.mu.Lock()
		s.itens = nil
		s.mu.Unlock()
		return
	}
	if !force {
		if cached, ok := s.cache.Get(s.userID); ok {
			s.setReady(func() { s.itens = cached })
			return
		}
	}

	gen := s.beginLoad()
	raw, err := s.client.GetRaw(ctx, "/curso/"+s.userID+"/secretaria")
	if ctx.Err() != nil {
		s.abandonLoad(gen)
		return
	}
	if err != nil {
		metrics.FetchErrors.WithLabelValues("curso").Inc()
		s.finishLoad(gen, apierror.Normalize(err), nil)
		return
	}

	itens, mapErr := mapCursos(raw, s.log)
	if mapErr != nil {
		metrics.FetchErrors.WithLabelValues("curso").Inc()
		s.finishLoad(gen, apierror.Normalize(mapErr), nil)
		return
	}
	if s.finishLoad(gen, nil, func() { s.itens = itens }) {
		s.cache.Set(s.userID, itens)
	}
}

// Excluir deletes a course and drops it from the local list and cache.
// There is no optimistic removal: the filter runs only after the backend
// confirms.
func (s *CursoStore) Excluir(ctx context.Context, cursoID string) error {
	if err := s.client.Delete(ctx, "/curso/"+cursoID); err != nil {
		return apierror.Normalize(err)
	}
	s.mu.Lock()
	kept := make([]models.Curso, 0, len(s.itens))
	for _, c := range s.itens {
		if c.ID != cursoID {
			kept = append(kept, c)
		}
	}
	s.itens = kept
	s.mu.Unlock()
	s.cache.Set(s.userID, kept)
	return nil
}

// Criar posts a new course for this secretaria.
func (s *CursoStore) Criar(ctx context.Context, dto models.CursoDTO) error {
	if err := s.client.PostJSON(ctx, "/curso/"+s.userID, dto, nil); err != nil {
		return apierror.Normalize(err)
	}
	return nil
}

func mapCursos(raw []byte, log *zap.Logger) ([]models.Curso, error) {
	items, err := envelope.Items(raw, "cursos", "curso")
	if err != nil {
		return nil, err
	}
	out := make([]models.Curso, 0, len(items))
	for _, item := range items {
		c := transform.MapCurso(item)
		if c == nil {
			dropItem(log, "curso", item)
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func dropItem(log *zap.Logger, entity string, item json.RawMessage) {
	metrics.DroppedItems.WithLabelValues(entity).Inc()
	log.Warn("item descartado: campos obrigatórios ausentes",
		zap.String("entity", entity), zap.ByteString("item", truncate(item, 200)))
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
