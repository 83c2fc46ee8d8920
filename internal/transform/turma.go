package transform

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/acadpainel/academico-sync/internal/models"
)

func TurmaFormToDTO(f models.TurmaForm) models.TurmaDTO {
	ano, _ := strconv.Atoi(strings.TrimSpace(f.Ano))
	return models.TurmaDTO{
		Nome:  strings.TrimSpace(f.Nome),
		Ano:   ano,
		Turno: strings.ToUpper(strings.TrimSpace(f.Turno)),
	}
}

type turmaWire struct {
	ID          flexString        `json:"id"`
	IDTurma     flexString        `json:"id_turma"`
	Nome        string            `json:"nome"`
	Name        string            `json:"name"`
	Ano         flexString        `json:"ano"`
	Turno       string            `json:"turno"`
	CursoID     flexString        `json:"curso_id"`
	IDCurso     flexString        `json:"id_curso"`
	QtdAlunos   flexString        `json:"qtd_alunos"`
	Alunos      []json.RawMessage `json:"alunos"`
	Disciplinas []disciplinaRef   `json:"disciplinas"`
}

type disciplinaRef struct {
	Nome string `json:"nome"`
	Name string `json:"name"`
}

// MapTurma decodes one class row. CursoNome stays empty here; the join
// against the curso list happens in the store.
func MapTurma(raw json.RawMessage) *models.Turma {
	var w turmaWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil
	}
	id := firstNonEmpty(w.ID.String(), w.IDTurma.String())
	nome := firstNonEmpty(w.Nome, w.Name)
	if id == "" || nome == "" {
		return nil
	}
	ano, _ := strconv.Atoi(w.Ano.String())
	qtd, _ := strconv.Atoi(w.QtdAlunos.String())
	if qtd == 0 && len(w.Alunos) > 0 {
		qtd = len(w.Alunos)
	}
	disciplinas := make([]string, 0, len(w.Disciplinas))
	for _, d := range w.Disciplinas {
		if n := firstNonEmpty(d.Nome, d.Name); n != "" {
			disciplinas = append(disciplinas, n)
		}
	}
	return &models.Turma{
		ID:          id,
		Nome:        nome,
		Ano:         ano,
		Turno:       w.Turno,
		CursoID:     firstNonEmpty(w.CursoID.String(), w.IDCurso.String()),
		QtdAlunos:   qtd,
		Disciplinas: disciplinas,
	}
}
