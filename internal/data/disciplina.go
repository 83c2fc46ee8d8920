package data

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/cache"
	"github.com/acadpainel/academico-sync/internal/envelope"
	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/metrics"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

// DisciplinaStore serves the discipline list of one secretaria.
type DisciplinaStore struct {
	client *httpclient.Client
	cache  *cache.Store[[]models.Disciplina]
	log    *zap.Logger
	userID string

	machine
	itens []models.Disciplina
}

func NewDisciplinaStore(client *httpclient.Client, c *cache.Store[[]models.Disciplina], log *zap.Logger, userID string) *DisciplinaStore {
	return &DisciplinaStore{client: client, cache: c, log: log, userID: userID, machine: newMachine()}
}

func (s *DisciplinaStore) State() State {
	st, _ := s.snapshot()
	return st
}

func (s *DisciplinaStore) Err() *apierror.Error {
	_, err := s.snapshot()
	return err
}

func (s *DisciplinaStore) Itens() []models.Disciplina {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itens
}

func (s *DisciplinaStore) Refetch(ctx context.Context, force bool) {
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
	raw, err := s.client.GetRaw(ctx, "/disciplina/secretaria/"+s.userID)
	if ctx.Err() != nil {
		s.abandonLoad(gen)
		return
	}
	if err != nil {
		metrics.FetchErrors.WithLabelValues("disciplina").Inc()
		s.finishLoad(gen, apierror.Normalize(err), nil)
		return
	}
	itens, mapErr := s.mapDisciplinas(raw)
	if mapErr != nil {
		metrics.FetchErrors.WithLabelValues("disciplina").Inc()
		s.finishLoad(gen, apierror.Normalize(mapErr), nil)
		return
	}
	if s.finishLoad(gen, nil, func() { s.itens = itens }) {
		s.cache.Set(s.userID, itens)
	}
}

// Filtrar queries GET /disciplina with the optional filters. Filtered
// results bypass the per-user cache entirely: the cache key space is user
// ids, not filter combinations.
func (s *DisciplinaStore) Filtrar(ctx context.Context, filtro models.DisciplinaFiltro) ([]models.Disciplina, error) {
	q := url.Values{}
	if filtro.OrderBy != "" {
		q.Set("orderBy", filtro.OrderBy)
	}
	if filtro.Order != "" {
		q.Set("order", filtro.Order)
	}
	if filtro.Situacao != "" {
		q.Set("situacao", filtro.Situacao)
	}
	path := "/disciplina"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	raw, err := s.client.GetRaw(ctx, path)
	if err != nil {
		return nil, apierror.Normalize(err)
	}
	itens, mapErr := s.mapDisciplinas(raw)
	if mapErr != nil {
		return nil, apierror.Normalize(mapErr)
	}
	return itens, nil
}

// Criar posts a new discipline for this secretaria.
func (s *DisciplinaStore) Criar(ctx context.Context, dto models.DisciplinaDTO) error {
	if err := s.client.PostJSON(ctx, "/disciplina/"+s.userID, dto, nil); err != nil {
		return apierror.Normalize(err)
	}
	return nil
}

func (s *DisciplinaStore) mapDisciplinas(raw []byte) ([]models.Disciplina, error) {
	items, err := envelope.Items(raw, "disciplinas", "disciplina")
	if err != nil {
		return nil, err
	}
	out := make([]models.Disciplina, 0, len(items))
	for _, item := range items {
		d := transform.MapDisciplina(item)
		if d == nil {
			dropItem(s.log, "disciplina", item)
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}
