package models

// Endereco is the address sub-record shared by aluno and professor.
type Endereco struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
}

// AlunoDTO is the creation payload for POST /aluno/criarAluno/{turmaId}.
// Senha is write-only: it is never read back from the backend.
type AlunoDTO struct {
	Nome           string   `json:"nome"`
	CPF            string   `json:"cpf"`
	Email          string   `json:"email"`
	Telefone       string   `json:"telefone"`
	DataNascimento string   `json:"data_nascimento"`
	Senha          string   `json:"senha"`
	Endereco       Endereco `json:"endereco"`
}

// ProfessorDTO is the creation payload for POST /professor/{secretariaId}.
type ProfessorDTO struct {
	Nome          string   `json:"nome"`
	CPF           string   `json:"cpf"`
	Email         string   `json:"email"`
	Telefone      string   `json:"telefone"`
	Senha         string   `json:"senha"`
	InstituicaoID string   `json:"id_instituicao,omitempty"`
	Endereco      Endereco `json:"endereco"`
}

type PessoaForm struct {
	Nome           string `json:"nome" validate:"required,min=3,max=120"`
	CPF            string `json:"cpf" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Telefone       string `json:"telefone" validate:"required"`
	DataNascimento string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Senha          string `json:"senha" validate:"required,min=6"`
	Logradouro     string `json:"logradouro" validate:"required"`
	Numero         string `json:"numero" validate:"required"`
	Complemento    string `json:"complemento"`
	Bairro         string `json:"bairro" validate:"required"`
	Cidade         string `json:"cidade" validate:"required"`
	UF             string `json:"uf" validate:"required,len=2"`
	CEP            string `json:"cep" validate:"required"`
}

// AlunoForm adds the class association made in the student creation screen.
type AlunoForm struct {
	PessoaForm
	TurmaID string `json:"turma_id" validate:"required"`
}

// ProfessorForm adds the optional institution association.
type ProfessorForm struct {
	PessoaForm
	InstituicaoID string `json:"id_instituicao"`
}
