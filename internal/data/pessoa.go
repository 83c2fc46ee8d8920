package data

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/models"
)

// PessoaStore holds the write-only registrations: students are created
// under a class, professors under the acting secretaria. Neither has a
// read side in the panel, so there is no cache or state machine here.
type PessoaStore struct {
	client *httpclient.Client
	userID string // acting secretaria
}

func NewPessoaStore(client *httpclient.Client, userID string) *PessoaStore {
	return &PessoaStore{client: client, userID: userID}
}

func (s *PessoaStore) CriarAluno(ctx context.Context, turmaID string, dto models.AlunoDTO) error {
	if s.userID == "" {
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if err := s.client.PostJSON(ctx, "/aluno/criarAluno/"+turmaID, dto, nil); err != nil {
		return apierror.Normalize(err)
	}
	return nil
}

func (s *PessoaStore) CriarProfessor(ctx context.Context, dto models.ProfessorDTO) error {
	if s.userID == "" {
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if err := s.client.PostJSON(ctx, "/professor/"+s.userID, dto, nil); err != nil {
		return apierror.Normalize(err)
	}
	return nil
}
