package data

import (
	"context"

	"go.uber.org/zap"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/cache"
	"github.com/acadpainel/academico-sync/internal/envelope"
	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/metrics"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

// CursoNaoEncontrado is rendered when a class references a course id that
// the course list does not contain. The row still renders.
const CursoNaoEncontrado = "curso não encontrado"

// TurmaStore serves the class list. It depends on CursoStore: course names
// are resolved client-side by joining the two independently fetched lists.
type TurmaStore struct {
	client *httpclient.Client
	cache  *cache.Store[[]models.Turma]
	cursos *CursoStore
	log    *zap.Logger
	userID string

	machine
	itens []models.Turma
}

func NewTurmaStore(client *httpclient.Client, c *cache.Store[[]models.Turma], cursos *CursoStore, log *zap.Logger, userID string) *TurmaStore {
	return &TurmaStore{client: client, cache: c, cursos: cursos, log: log, userID: userID, machine: newMachine()}
}

func (s *TurmaStore) State() State {
	st, _ := s.snapshot()
	return st
}

func (s *TurmaStore) Err() *apierror.Error {
	_, err := s.snapshot()
	return err
}

func (s *TurmaStore) Itens() []models.Turma {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itens
}

// Refetch loads the class list. The course store must leave loading first;
// when a concurrent goroutine is fetching courses we wait for it instead
// of racing the join against an incomplete list.
func (s *TurmaStore) Refetch(ctx context.Context, force bool) {
	if s.userID == "" {
		s.setError(apierror.New(apierror.KindValidation, 0, msgSemUsuario))
		s.mu.Lock()
		s.itens = nil
		s.mu.Unlock()
		return
	}
	if err := s.waitCursos(ctx, force); err != nil {
		return // ctx done, no state writes
	}
	if !force {
		if cached, ok := s.cache.Get(s.userID); ok {
			s.setReady(func() { s.itens = cached })
			return
		}
	}

	gen := s.beginLoad()
	raw, err := s.client.GetRaw(ctx, "/turma/listarPorSecretaria/"+s.userID)
	if ctx.Err() != nil {
		s.abandonLoad(gen)
		return
	}
	if err != nil {
		s.degrade(gen, apierror.Normalize(err))
		return
	}
	itens, mapErr := s.mapTurmas(raw)
	if mapErr != nil {
		s.degrade(gen, apierror.Normalize(mapErr))
		return
	}
	if s.finishLoad(gen, nil, func() { s.itens = itens }) {
		s.cache.Set(s.userID, itens)
	}
}

// ListarPorProfessor fetches the classes assigned to a professor. This
// path has no secretaria cache behind it; the result goes straight to
// state, keyed under the professor's id.
func (s *TurmaStore) ListarPorProfessor(ctx context.Context, force bool) {
	if s.userID == "" {
		s.setError(apierror.New(apierror.KindValidation, 0, msgSemUsuario))
		return
	}
	if !force {
		if cached, ok := s.cache.Get(s.userID); ok {
			s.setReady(func() { s.itens = cached })
			return
		}
	}
	gen := s.beginLoad()
	raw, err := s.client.GetRaw(ctx, "/professor/"+s.userID+"/turmas")
	if ctx.Err() != nil {
		s.abandonLoad(gen)
		return
	}
	if err != nil {
		s.degrade(gen, apierror.Normalize(err))
		return
	}
	itens, mapErr := s.mapTurmas(raw)
	if mapErr != nil {
		s.degrade(gen, apierror.Normalize(mapErr))
		return
	}
	if s.finishLoad(gen, nil, func() { s.itens = itens }) {
		s.cache.Set(s.userID, itens)
	}
}

// Criar posts a new class bound to a course.
func (s *TurmaStore) Criar(ctx context.Context, cursoID string, dto models.TurmaDTO) error {
	if err := s.client.PostJSON(ctx, "/turma/criar/"+s.userID+"/"+cursoID, dto, nil); err != nil {
		return apierror.Normalize(err)
	}
	return nil
}

// degrade records the failure, but keeps the panel usable when a stale
// cache entry exists: the old list is served alongside the error.
func (s *TurmaStore) degrade(gen uint64, e *apierror.Error) {
	metrics.FetchErrors.WithLabelValues("turma").Inc()
	stale, storedAt, ok := s.cache.GetStale(s.userID)
	if !ok {
		s.finishLoad(gen, e, nil)
		return
	}
	s.log.Warn("lista de turmas degradada: servindo cache expirado",
		zap.String("user_id", s.userID), zap.Time("cached_at", storedAt), zap.Error(e))
	s.finishLoad(gen, e, func() { s.itens = stale })
}

// waitCursos blocks until the course store is past loading, fetching the
// course list first when it was never loaded.
func (s *TurmaStore) waitCursos(ctx context.Context, force bool) error {
	for {
		if ch := s.cursos.loadingChan(); ch != nil {
			select {
			case <-ch:
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		switch s.cursos.State() {
		case StateReady, StateError:
			return nil
		default:
			s.cursos.Refetch(ctx, force)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

func (s *TurmaStore) mapTurmas(raw []byte) ([]models.Turma, error) {
	items, err := envelope.Items(raw, "turmas", "turma")
	if err != nil {
		return nil, err
	}
	cursos := s.cursos.Itens()
	out := make([]models.Turma, 0, len(items))
	for _, item := range items {
		t := transform.MapTurma(item)
		if t == nil {
			dropItem(s.log, "turma", item)
			continue
		}
		t.CursoNome = resolveCursoNome(cursos, t.CursoID)
		out = append(out, *t)
	}
	return out, nil
}

// resolveCursoNome joins by string equality on the course id. An
// unresolved join renders a placeholder, never fails the row.
func resolveCursoNome(cursos []models.Curso, cursoID string) string {
	for _, c := range cursos {
		if c.ID == cursoID {
			return c.Nome
		}
	}
	return CursoNaoEncontrado
}
