package transform

import (
	"encoding/json"
	"strings"

	"github.com/acadpainel/academico-sync/internal/models"
)

// AlunoFormToDTO normalizes the personal record: CPF and phone keep only
// digits, email is lowercased, UF uppercased.
func AlunoFormToDTO(f models.AlunoForm) models.AlunoDTO {
	return models.AlunoDTO{
		Nome:           strings.TrimSpace(f.Nome),
		CPF:            CleanCPF(f.CPF),
		Email:          strings.ToLower(strings.TrimSpace(f.Email)),
		Telefone:       CleanPhone(f.Telefone),
		DataNascimento: strings.TrimSpace(f.DataNascimento),
		Senha:          f.Senha,
		Endereco:       enderecoFromForm(f.PessoaForm),
	}
}

func ProfessorFormToDTO(f models.ProfessorForm) models.ProfessorDTO {
	return models.ProfessorDTO{
		Nome:          strings.TrimSpace(f.Nome),
		CPF:           CleanCPF(f.CPF),
		Email:         strings.ToLower(strings.TrimSpace(f.Email)),
		Telefone:      CleanPhone(f.Telefone),
		Senha:         f.Senha,
		InstituicaoID: strings.TrimSpace(f.InstituicaoID),
		Endereco:      enderecoFromForm(f.PessoaForm),
	}
}

func enderecoFromForm(f models.PessoaForm) models.Endereco {
	return models.Endereco{
		Logradouro:  strings.TrimSpace(f.Logradouro),
		Numero:      strings.TrimSpace(f.Numero),
		Complemento: strings.TrimSpace(f.Complemento),
		Bairro:      strings.TrimSpace(f.Bairro),
		Cidade:      strings.TrimSpace(f.Cidade),
		UF:          strings.ToUpper(strings.TrimSpace(f.UF)),
		CEP:         CleanCEP(f.CEP),
	}
}

type perfilWire struct {
	ID           flexString `json:"id"`
	IDSecretaria flexString `json:"id_secretaria"`
	IDProfessor  flexString `json:"id_professor"`
	Nome         string     `json:"nome"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
}

// MapPerfil decodes a profile resource. Nome and email are required; the
// id falls back to the acting user's id when the backend omits it.
func MapPerfil(raw json.RawMessage, userID string) *models.Perfil {
	var w perfilWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil
	}
	nome := firstNonEmpty(w.Nome, w.Name)
	if nome == "" {
		return nil
	}
	id := firstNonEmpty(w.ID.String(), w.IDSecretaria.String(), w.IDProfessor.String(), userID)
	return &models.Perfil{ID: id, Nome: nome, Email: strings.TrimSpace(w.Email)}
}

// PerfilFromEmail synthesizes a displayable profile from the session email:
// the capitalized local-part becomes the name. Used when the profile
// endpoint fails, so the panel never shows a hard failure for the header.
func PerfilFromEmail(userID, email string) models.Perfil {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	nome := local
	if nome != "" {
		nome = strings.ToUpper(nome[:1]) + nome[1:]
	}
	return models.Perfil{ID: userID, Nome: nome, Email: email}
}
