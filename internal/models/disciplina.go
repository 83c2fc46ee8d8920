package models

type Disciplina struct {
	ID           string
	Nome         string
	Ementa       string
	CargaSemanal int // horas por semana
	Situacao     string
}

// DisciplinaDTO is the creation payload for POST /disciplina/{secretariaId}.
type DisciplinaDTO struct {
	Nome          string `json:"nome"`
	Ementa        string `json:"ementa"`
	CargaSemanal  int    `json:"carga_horaria_semanal"`
	Situacao      string `json:"situacao"`
	DataAlteracao string `json:"data_alteracao"`
}

type DisciplinaForm struct {
	Nome         string `json:"nome" validate:"required,min=2,max=100"`
	Ementa       string `json:"ementa" validate:"required,min=10"`
	CargaSemanal string `json:"carga_horaria_semanal" validate:"required,numeric"`
}

// DisciplinaFiltro maps to the query parameters of GET /disciplina.
// Zero-value fields are omitted from the query string.
type DisciplinaFiltro struct {
	OrderBy  string
	Order    string // asc|desc
	Situacao string
}
