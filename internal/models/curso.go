package models

const SituacaoAtivo = "ATIVO"

const (
	TurnoDiurno  = "DIURNO"
	TurnoNoturno = "NOTURNO"
)

type Curso struct {
	ID            string
	Nome          string
	Duracao       int // meses
	Turno         string
	Situacao      string
	DataAlteracao string // YYYY-MM-DD
}

// CursoDTO is the creation payload for POST /curso/{secretariaId}.
// Server-required fields are always present: the UI never sends a partial
// creation payload.
type CursoDTO struct {
	Nome          string `json:"nome"`
	Duracao       int    `json:"duracao"`
	Turno         string `json:"turno"`
	Situacao      string `json:"situacao"`
	DataAlteracao string `json:"data_alteracao"`
}

// CursoForm is the value bag bound to the course creation form. Numeric
// fields stay strings until validation passes.
type CursoForm struct {
	Nome    string `json:"nome" validate:"required,min=2,max=100"`
	Duracao string `json:"duracao" validate:"required,numeric"`
	Turno   string `json:"turno" validate:"required,oneof=DIURNO NOTURNO"`
}
