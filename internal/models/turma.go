package models

type Turma struct {
	ID          string
	Nome        string
	Ano         int
	Turno       string
	CursoID     string
	CursoNome   string // resolved client-side against the curso list
	QtdAlunos   int
	Disciplinas []string
}

// TurmaDTO is the creation payload for POST /turma/criar/{secretariaId}/{cursoId}.
type TurmaDTO struct {
	Nome  string `json:"nome"`
	Ano   int    `json:"ano"`
	Turno string `json:"turno"`
}

type TurmaForm struct {
	Nome    string `json:"nome" validate:"required,min=2,max=60"`
	Ano     string `json:"ano" validate:"required,numeric,len=4"`
	Turno   string `json:"turno" validate:"required,oneof=DIURNO NOTURNO"`
	CursoID string `json:"curso_id" validate:"required"`
}
