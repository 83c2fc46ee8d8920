package models

type Role string

const (
	Secretaria Role = "secretaria"
	Professor  Role = "professor"
	Aluno      Role = "aluno"
)

// User identifies the caller. It comes from the auth collaborator and is
// immutable within a session.
type User struct {
	ID    string
	Email string
	Role  Role
}

// Perfil is the displayed profile of a secretaria or professor.
type Perfil struct {
	ID    string
	Nome  string
	Email string
}
