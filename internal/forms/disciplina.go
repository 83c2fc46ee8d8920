package forms

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/data"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

var disciplinaStatusTable = map[int]string{
	404: "secretaria não encontrada",
	409: "já existe uma disciplina com esse nome",
}

var disciplinaKeywords = map[string]string{
	"já cadastrado": "já existe uma disciplina com esse nome",
}

type DisciplinaForm struct {
	status
	Values models.DisciplinaForm

	store     *data.DisciplinaStore
	userID    string
	OnSuccess func()
}

func NewDisciplinaForm(store *data.DisciplinaStore, userID string) *DisciplinaForm {
	return &DisciplinaForm{store: store, userID: userID}
}

func (f *DisciplinaForm) Submit(ctx context.Context) error {
	if f.userID == "" {
		f.fail(msgSemUsuario)
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if verr := validateStruct(f.Values); verr != nil {
		f.fail(verr.Message)
		return verr
	}
	f.begin()

	dto := transform.DisciplinaFormToDTO(f.Values)
	if err := f.store.Criar(ctx, dto); err != nil {
		f.fail(apierror.Translate(err, disciplinaStatusTable, disciplinaKeywords))
		return err
	}

	f.Values = models.DisciplinaForm{}
	f.succeed("disciplina cadastrada com sucesso")
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return nil
}
