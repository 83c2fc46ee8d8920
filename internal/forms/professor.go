package forms

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/data"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

var professorStatusTable = map[int]string{
	404: "secretaria não encontrada",
	409: "CPF já cadastrado",
}

var professorKeywords = map[string]string{
	"cpf":           "CPF já cadastrado",
	"email":         "e-mail já cadastrado",
	"já cadastrado": "professor já cadastrado",
}

type ProfessorForm struct {
	status
	Values models.ProfessorForm

	store     *data.PessoaStore
	userID    string
	OnSuccess func()
}

func NewProfessorForm(store *data.PessoaStore, userID string) *ProfessorForm {
	return &ProfessorForm{store: store, userID: userID}
}

func (f *ProfessorForm) Submit(ctx context.Context) error {
	if f.userID == "" {
		f.fail(msgSemUsuario)
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if verr := validateStruct(f.Values); verr != nil {
		f.fail(verr.Message)
		return verr
	}
	f.begin()

	dto := transform.ProfessorFormToDTO(f.Values)
	if err := f.store.CriarProfessor(ctx, dto); err != nil {
		f.fail(apierror.Translate(err, professorStatusTable, professorKeywords))
		return err
	}

	f.Values = models.ProfessorForm{}
	f.succeed("professor cadastrado com sucesso")
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return nil
}
