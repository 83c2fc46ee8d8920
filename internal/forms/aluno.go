package forms

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/data"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

var alunoStatusTable = map[int]string{
	404: "turma não encontrada",
	409: "CPF já cadastrado",
}

// Duplicate detection on the backend message, when the status alone is
// ambiguous.
var alunoKeywords = map[string]string{
	"cpf":           "CPF já cadastrado",
	"email":         "e-mail já cadastrado",
	"já cadastrado": "aluno já cadastrado",
}

// AlunoForm drives the student registration screen.
type AlunoForm struct {
	status
	Values models.AlunoForm

	store     *data.PessoaStore
	userID    string
	OnSuccess func()
}

func NewAlunoForm(store *data.PessoaStore, userID string) *AlunoForm {
	return &AlunoForm{store: store, userID: userID}
}

func (f *AlunoForm) Submit(ctx context.Context) error {
	if f.userID == "" {
		f.fail(msgSemUsuario)
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if verr := validateStruct(f.Values); verr != nil {
		f.fail(verr.Message)
		return verr
	}
	f.begin()

	dto := transform.AlunoFormToDTO(f.Values)
	if err := f.store.CriarAluno(ctx, f.Values.TurmaID, dto); err != nil {
		f.fail(apierror.Translate(err, alunoStatusTable, alunoKeywords))
		return err
	}

	f.Values = models.AlunoForm{}
	f.succeed("aluno cadastrado com sucesso")
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return nil
}
