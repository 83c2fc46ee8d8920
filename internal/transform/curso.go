// Package transform holds the pure form↔DTO mappers. FormToDTO functions
// run only after validation and may assume coercible input; Map functions
// decode backend items and return nil instead of failing, so one bad row
// never breaks a list.
package transform

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/acadpainel/academico-sync/internal/models"
)

// Today is the clock for defaulted dates. Overridable in tests.
var Today = func() string { return time.Now().Format("2006-01-02") }

// CursoFormToDTO builds the creation payload. Situacao and data_alteracao
// are server-required and always injected.
func CursoFormToDTO(f models.CursoForm) models.CursoDTO {
	duracao, _ := strconv.Atoi(strings.TrimSpace(f.Duracao))
	return models.CursoDTO{
		Nome:          strings.TrimSpace(f.Nome),
		Duracao:       duracao,
		Turno:         strings.ToUpper(strings.TrimSpace(f.Turno)),
		Situacao:      models.SituacaoAtivo,
		DataAlteracao: Today(),
	}
}

// cursoWire tolerates the field-name variants the backend has shipped.
type cursoWire struct {
	ID            flexString `json:"id"`
	IDCurso       flexString `json:"id_curso"`
	Nome          string     `json:"nome"`
	Name          string     `json:"name"`
	Duracao       flexString `json:"duracao"`
	Turno         string     `json:"turno"`
	Situacao      string     `json:"situacao"`
	DataAlteracao string     `json:"data_alteracao"`
}

// MapCurso decodes one list item. Returns nil when the item is not decodable
// or misses a required field; callers filter and count.
func MapCurso(raw json.RawMessage) *models.Curso {
	var w cursoWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil
	}
	id := firstNonEmpty(w.ID.String(), w.IDCurso.String())
	nome := firstNonEmpty(w.Nome, w.Name)
	if id == "" || nome == "" {
		return nil
	}
	duracao, _ := strconv.Atoi(w.Duracao.String())
	return &models.Curso{
		ID:            id,
		Nome:          nome,
		Duracao:       duracao,
		Turno:         w.Turno,
		Situacao:      w.Situacao,
		DataAlteracao: w.DataAlteracao,
	}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return ""
}
