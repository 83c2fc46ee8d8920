package forms

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/data"
	"github.com/acadpainel/academico-sync/internal/models"
	"github.com/acadpainel/academico-sync/internal/transform"
)

var cursoStatusTable = map[int]string{
	404: "secretaria não encontrada",
	409: "já existe um curso com esse nome",
}

var cursoKeywords = map[string]string{
	"já cadastrado": "já existe um curso com esse nome",
	"duplicate":     "já existe um curso com esse nome",
}

// CursoForm drives the course creation screen.
type CursoForm struct {
	status
	Values models.CursoForm

	store     *data.CursoStore
	userID    string
	OnSuccess func()
}

func NewCursoForm(store *data.CursoStore, userID string) *CursoForm {
	return &CursoForm{store: store, userID: userID}
}

func (f *CursoForm) Submit(ctx context.Context) error {
	if f.userID == "" {
		f.fail(msgSemUsuario)
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	if verr := validateStruct(f.Values); verr != nil {
		f.fail(verr.Message)
		return verr
	}
	f.begin()

	dto := transform.CursoFormToDTO(f.Values)
	if err := f.store.Criar(ctx, dto); err != nil {
		f.fail(apierror.Translate(err, cursoStatusTable, cursoKeywords))
		return err
	}

	f.Values = models.CursoForm{}
	f.succeed("curso cadastrado com sucesso")
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return nil
}
