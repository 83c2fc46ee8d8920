package transform

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/acadpainel/academico-sync/internal/models"
)

func TestCPFRoundTrip(t *testing.T) {
	formatted := FormatCPF("12345678901")
	if formatted != "123.456.789-01" {
		t.Fatalf("want 123.456.789-01, got %s", formatted)
	}
	if got := CleanCPF(formatted); got != "12345678901" {
		t.Fatalf("round trip lost digits: %s", got)
	}
}

func TestFormatCPF_WrongLengthUntouched(t *testing.T) {
	if got := FormatCPF("1234"); got != "1234" {
		t.Fatalf("short input must pass through, got %s", got)
	}
}

func TestFormatPhone(t *testing.T) {
	if got := FormatPhone("11987654321"); got != "(11) 98765-4321" {
		t.Fatalf("got %s", got)
	}
	if got := FormatPhone("1133334444"); got != "(11) 3333-4444" {
		t.Fatalf("got %s", got)
	}
	if got := CleanPhone("(11) 98765-4321"); got != "11987654321" {
		t.Fatalf("got %s", got)
	}
}

func TestCursoFormToDTO_DefaultsInjected(t *testing.T) {
	restore := Today
	Today = func() string { return "2026-03-10" }
	defer func() { Today = restore }()

	dto := CursoFormToDTO(models.CursoForm{Nome: "  ADS ", Duracao: "24", Turno: "diurno"})
	want := models.CursoDTO{
		Nome: "ADS", Duracao: 24, Turno: "DIURNO",
		Situacao: "ATIVO", DataAlteracao: "2026-03-10",
	}
	if dto != want {
		t.Fatalf("want %+v, got %+v", want, dto)
	}
}

func TestMapCurso_SkipsItemsMissingRequiredFields(t *testing.T) {
	valid := json.RawMessage(`{"id":1,"nome":"ADS","duracao":24}`)
	semNome := json.RawMessage(`{"id":2,"duracao":12}`)
	semID := json.RawMessage(`{"nome":"Redes"}`)

	if c := MapCurso(valid); c == nil || c.ID != "1" || c.Nome != "ADS" || c.Duracao != 24 {
		t.Fatalf("valid item mapped wrong: %+v", c)
	}
	if MapCurso(semNome) != nil {
		t.Fatal("item without nome must be dropped")
	}
	if MapCurso(semID) != nil {
		t.Fatal("item without id must be dropped")
	}
}

func TestMapCurso_AlternateFieldNames(t *testing.T) {
	c := MapCurso(json.RawMessage(`{"id_curso":"9","name":"Redes"}`))
	if c == nil || c.ID != "9" || c.Nome != "Redes" {
		t.Fatalf("alternate names not tolerated: %+v", c)
	}
}

func TestMapTurma_StudentCountFromAlunosArray(t *testing.T) {
	tu := MapTurma(json.RawMessage(`{"id":3,"nome":"T1","alunos":[{},{},{}]}`))
	if tu == nil || tu.QtdAlunos != 3 {
		t.Fatalf("want 3 alunos, got %+v", tu)
	}
}

func TestDiffCampos_SparseEdit(t *testing.T) {
	baseline := map[string]string{"nome": "Ana", "cidade": "SP"}
	atual := map[string]string{"nome": "Ana", "cidade": "Rio", "bairro": ""}

	changed := DiffCampos(baseline, atual)
	if !reflect.DeepEqual(changed, []string{"cidade"}) {
		t.Fatalf("want [cidade], got %v", changed)
	}

	dto := SparseUpdate(baseline, atual)
	if _, ok := dto["nome"]; ok {
		t.Fatal("unchanged nome must be omitted")
	}
	if dto["cidade"] != "Rio" {
		t.Fatalf("want cidade=Rio, got %v", dto)
	}
}

func TestPerfilFromEmail(t *testing.T) {
	p := PerfilFromEmail("42", "ana.lima@x.com")
	if p.Nome != "Ana.lima" || p.Email != "ana.lima@x.com" || p.ID != "42" {
		t.Fatalf("got %+v", p)
	}
}

func TestAlunoFormToDTO_Normalization(t *testing.T) {
	f := models.AlunoForm{
		PessoaForm: models.PessoaForm{
			Nome:     " João Silva ",
			CPF:      "123.456.789-01",
			Email:    "Joao@X.COM",
			Telefone: "(11) 98765-4321",
			Senha:    "segredo1",
			UF:       "sp",
			CEP:      "01310-100",
		},
		TurmaID: "t1",
	}
	dto := AlunoFormToDTO(f)
	if dto.CPF != "12345678901" {
		t.Fatalf("cpf not cleaned: %s", dto.CPF)
	}
	if dto.Email != "joao@x.com" {
		t.Fatalf("email not lowered: %s", dto.Email)
	}
	if dto.Telefone != "11987654321" {
		t.Fatalf("phone not cleaned: %s", dto.Telefone)
	}
	if dto.Endereco.UF != "SP" {
		t.Fatalf("uf not uppered: %s", dto.Endereco.UF)
	}
	if dto.Endereco.CEP != "01310100" {
		t.Fatalf("cep not cleaned: %s", dto.Endereco.CEP)
	}
}

func TestToday_Format(t *testing.T) {
	if _, err := time.Parse("2006-01-02", Today()); err != nil {
		t.Fatalf("Today not YYYY-MM-DD: %v", err)
	}
}
