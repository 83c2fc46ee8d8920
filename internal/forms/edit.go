package forms

import (
	"context"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/transform"
)

// SubmitFunc sends the sparse update payload to the entity endpoint.
type SubmitFunc func(ctx context.Context, campos map[string]string) error

// EditForm is the edit-mode variant: values are diffed against the
// baseline fetched record and only changed fields are submitted. The
// screens show Changed() to the user before the submit.
type EditForm struct {
	status
	Baseline map[string]string
	Values   map[string]string
	// Rules maps a field to its validation tag. Only changed fields are
	// checked, so partial edits never trip rules on untouched fields.
	Rules map[string]string

	userID      string
	submit      SubmitFunc
	statusTable map[int]string
	keywords    map[string]string
	OnSuccess   func()
}

func NewEditForm(userID string, baseline map[string]string, submit SubmitFunc, statusTable map[int]string, keywords map[string]string) *EditForm {
	values := make(map[string]string, len(baseline))
	return &EditForm{
		Baseline:    baseline,
		Values:      values,
		userID:      userID,
		submit:      submit,
		statusTable: statusTable,
		keywords:    keywords,
	}
}

func (f *EditForm) Set(campo, valor string) { f.Values[campo] = valor }

// Changed lists the fields that differ from the baseline. Fields at the
// empty-string sentinel are untouched, not changes.
func (f *EditForm) Changed() []string {
	return transform.DiffCampos(f.Baseline, f.Values)
}

func (f *EditForm) Submit(ctx context.Context) error {
	if f.userID == "" {
		f.fail(msgSemUsuario)
		return apierror.New(apierror.KindValidation, 0, msgSemUsuario)
	}
	dto := transform.SparseUpdate(f.Baseline, f.Values)
	if len(dto) == 0 {
		msg := "nenhum campo alterado"
		f.fail(msg)
		return apierror.New(apierror.KindValidation, 0, msg)
	}
	for campo, valor := range dto {
		rule, ok := f.Rules[campo]
		if !ok {
			continue
		}
		if verr := validateVar(campo, valor, rule); verr != nil {
			f.fail(verr.Message)
			return verr
		}
	}
	f.begin()

	if err := f.submit(ctx, dto); err != nil {
		f.fail(apierror.Translate(err, f.statusTable, f.keywords))
		return err
	}

	f.Values = make(map[string]string, len(f.Baseline))
	f.succeed("alterações salvas com sucesso")
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	return nil
}
