package forms

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/data"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

var turmaStatusTable = map[int]string{
	404: "curso não encontrado",
	409: "já existe uma turma com esse nome",
}

var turmaKeywords = map[string]string{
	"já cadastrado": "já existe uma turma com esse nome",
}

// TurmaForm drives the class creation screen. The selected course id is
// part of the value bag and becomes a path segment, not a body field.
type TurmaForm struct {
	status
	Values models.TurmaForm

	store     *data.TurmaStore
	userID    string
	OnSuccess func()
}

func NewTurmaForm(store *data.TurmaStore, userID string) *TurmaForm {
	return &TurmaForm{store: store, userID: userID}
}

func (f *TurmaForm) Submit(ctx context.Context) error {
	if f.userID == "" {
		f.fail(msgSemUsuario)
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if verr := validateStruct(f.Values); verr != nil {
		f.fail(verr.Message)
		return verr
	}
	f.begin()

	dto := transform.TurmaFormToDTO(f.Values)
	if err := f.store.Criar(ctx, f.Values.CursoID, dto); err != nil {
		f.fail(apierror.Translate(err, turmaStatusTable, turmaKeywords))
		return err
	}

	f.Values = models.TurmaForm{}
	f.succeed("turma cadastrada com sucesso")
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return nil
}
