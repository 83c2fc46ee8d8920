package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/cache"
	"github.com/acadpainel/academico-sync/internal/ctxutil"
	"github.com/acadpainel/academico-sync/internal/data"
	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/observability"
)

// Caches groups the shared read-side caches. Constructed once at startup,
// cleared in full on logout.
type Caches struct {
	Perfis      *cache.Store[models.Perfil]
	Cursos      *cache.Store[[]models.Curso]
	Turmas      *cache.Store[[]models.Turma]
	Disciplinas *cache.Store[[]models.Disciplina]
}

func NewCaches(ttl time.Duration) *Caches {
	return &Caches{
		Perfis:      cache.New[models.Perfil]("perfil", ttl),
		Cursos:      cache.New[[]models.Curso]("curso", ttl),
		Turmas:      cache.New[[]models.Turma]("turma", ttl),
		Disciplinas: cache.New[[]models.Disciplina]("disciplina", ttl),
	}
}

func (c *Caches) InvalidateAll() {
	c.Perfis.InvalidateAll()
	c.Cursos.InvalidateAll()
	c.Turmas.InvalidateAll()
	c.Disciplinas.InvalidateAll()
}

// Sweep evicts expired entries across all caches.
func (c *Caches) Sweep(context.Context) error {
	c.Perfis.Sweep()
	c.Cursos.Sweep()
	c.Turmas.Sweep()
	c.Disciplinas.Sweep()
	return nil
}

// Warmer keeps one secretaria's lists fresh so the panel opens on a warm
// cache. Refetch(force) bypasses TTL freshness on purpose.
type Warmer struct {
	cursos      *data.CursoStore
	turmas      *data.TurmaStore
	disciplinas *data.DisciplinaStore
	log         *zap.Logger
	actingAs    string
}

func NewWarmer(client *httpclient.Client, caches *Caches, log *zap.Logger, secretariaID string) *Warmer {
	cursos := data.NewCursoStore(client, caches.Cursos, log, secretariaID)
	return &Warmer{
		cursos:      cursos,
		turmas:      data.NewTurmaStore(client, caches.Turmas, cursos, log, secretariaID),
		disciplinas: data.NewDisciplinaStore(client, caches.Disciplinas, log, secretariaID),
		log:         log,
		actingAs:    secretariaID,
	}
}

func (w *Warmer) Run(ctx context.Context) error {
	ctx = ctxutil.WithUserID(ctx, w.actingAs)
	warm(ctx, "warm_cursos", w.cursos.Refetch)
	warm(ctx, "warm_turmas", w.turmas.Refetch)
	warm(ctx, "warm_disciplinas", w.disciplinas.Refetch)

	var firstErr error
	for name, err := range map[string]error{
		"curso":      storeErr(w.cursos.Err()),
		"turma":      storeErr(w.turmas.Err()),
		"disciplina": storeErr(w.disciplinas.Err()),
	} {
		if err != nil {
			w.log.Warn("warm falhou", zap.String("entity", name), zap.Error(err))
			observability.CaptureErr(err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Stores exposes the warmed stores for the one-shot export path.
func (w *Warmer) Stores() (*data.CursoStore, *data.TurmaStore, *data.DisciplinaStore) {
	return w.cursos, w.turmas, w.disciplinas
}

// warm runs one forced refetch under its own API deadline, so a single
// hung endpoint cannot eat the whole warm cycle.
func warm(ctx context.Context, op string, fetch func(context.Context, bool)) {
	ctx, cancel := ctxutil.WithAPITimeout(ctxutil.WithOp(ctx, op))
	defer cancel()
	fetch(ctx, true)
}

func storeErr(e *apierror.Error) error {
	if e == nil {
		return nil
	}
	return e
}
