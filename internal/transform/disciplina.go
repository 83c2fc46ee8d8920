package transform

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/acadpainel/academico-sync/internal/models"
)

func DisciplinaFormToDTO(f models.DisciplinaForm) models.DisciplinaDTO {
	carga, _ := strconv.Atoi(strings.TrimSpace(f.CargaSemanal))
	return models.DisciplinaDTO{
		Nome:          strings.TrimSpace(f.Nome),
		Ementa:        strings.TrimSpace(f.Ementa),
		CargaSemanal:  carga,
		Situacao:      models.SituacaoAtivo,
		DataAlteracao: Today(),
	}
}

type disciplinaWire struct {
	ID           flexString `json:"id"`
	IDDisciplina flexString `json:"id_disciplina"`
	Nome         string     `json:"nome"`
	Name         string     `json:"name"`
	Ementa       string     `json:"ementa"`
	CargaSemanal flexString `json:"carga_horaria_semanal"`
	CargaAlt     flexString `json:"carga_semanal"`
	Situacao     string     `json:"situacao"`
}

func MapDisciplina(raw json.RawMessage) *models.Disciplina {
	var w disciplinaWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil
	}
	id := firstNonEmpty(w.ID.String(), w.IDDisciplina.String())
	nome := firstNonEmpty(w.Nome, w.Name)
	if id == "" || nome == "" {
		return nil
	}
	carga, _ := strconv.Atoi(firstNonEmpty(w.CargaSemanal.String(), w.CargaAlt.String()))
	return &models.Disciplina{
		ID:           id,
		Nome:         nome,
		Ementa:       w.Ementa,
		CargaSemanal: carga,
		Situacao:     w.Situacao,
	}
}
