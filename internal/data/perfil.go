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

// PerfilStore serves the header profile of the logged-in secretaria or
// professor. It is deliberately lenient: when the endpoint fails or the
// payload is unusable, a profile synthesized from the session email is
// served with no error, so the panel header never shows a hard failure.
// The real failure is still logged and counted.
type PerfilStore struct {
	client *httpclient.Client
	cache  *cache.Store[models.Perfil]
	log    *zap.Logger
	user   models.User

	machine
	perfil models.Perfil
}

func NewPerfilStore(client *httpclient.Client, c *cache.Store[models.Perfil], log *zap.Logger, user models.User) *PerfilStore {
	return &PerfilStore{client: client, cache: c, log: log, user: user, machine: newMachine()}
}

func (s *PerfilStore) State() State {
	st, _ := s.snapshot()
	return st
}

func (s *PerfilStore) Err() *apierror.Error {
	_, err := s.snapshot()
	return err
}

func (s *PerfilStore) Perfil() models.Perfil {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perfil
}

func (s *PerfilStore) path() string {
	if s.user.Role == models.Professor {
		return "/professor/" + s.user.ID
	}
	return "/secretaria/" + s.user.ID
}

func (s *PerfilStore) Refetch(ctx context.Context, force bool) {
	if s.user.ID == "" {
		s.setError(apierror.New(apierror.KindValidation, 0, msgSemUsuario))
		s.mu.Lock()
		s.perfil = models.Perfil{}
		s.mu.Unlock()
		return
	}
	if !force {
		if cached, ok := s.cache.Get(s.user.ID); ok {
			s.setReady(func() { s.perfil = cached })
			return
		}
	}

	gen := s.beginLoad()
	raw, err := s.client.GetRaw(ctx, s.path())
	if ctx.Err() != nil {
		s.abandonLoad(gen)
		return
	}
	if err != nil {
		s.fallback(gen, apierror.Normalize(err))
		return
	}
	perfil := mapPerfilBody(raw, s.user.ID)
	if perfil == nil {
		s.fallback(gen, apierror.New(apierror.KindUnknown, 0, "perfil ilegível"))
		return
	}
	if s.finishLoad(gen, nil, func() { s.perfil = *perfil }) {
		s.cache.Set(s.user.ID, *perfil)
	}
}

// fallback synthesizes the profile from the session email. The store ends
// ready with err == nil; the synthesized record is not cached so a later
// refetch can still recover the real one.
func (s *PerfilStore) fallback(gen uint64, cause *apierror.Error) {
	metrics.ProfileFallbacks.Inc()
	metrics.FetchErrors.WithLabelValues("perfil").Inc()
	s.log.Warn("perfil indisponível, usando perfil sintetizado do e-mail",
		zap.String("user_id", s.user.ID), zap.String("role", string(s.user.Role)), zap.Error(cause))
	synth := transform.PerfilFromEmail(s.user.ID, s.user.Email)
	s.finishLoad(gen, nil, func() { s.perfil = synth })
}

func mapPerfilBody(raw []byte, userID string) *models.Perfil {
	items, err := envelope.Items(raw, "perfil", "secretaria", "professor")
	if err != nil || len(items) == 0 {
		return nil
	}
	return transform.MapPerfil(items[0], userID)
}
