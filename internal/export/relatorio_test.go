package export

import (
	"testing"

	"github.com/acadpainel/academico-sync/internal/models"
)

func TestNewWorkbook_SheetsAndRows(t *testing.T) {
	wb, err := NewWorkbook([]SheetSpec{
		CursosSheet([]models.Curso{
			{ID: "1", Nome: "ADS", Duracao: 24, Turno: "DIURNO", Situacao: "ATIVO", DataAlteracao: "2026-01-15"},
		}),
		TurmasSheet([]models.Turma{
			{ID: "t1", Nome: "Turma A", Ano: 2026, Turno: "NOTURNO", CursoNome: "ADS", QtdAlunos: 30, Disciplinas: []string{"Algoritmos"}},
		}),
		DisciplinasSheet(nil),
	})
	if err != nil {
		t.Fatal(err)
	}

	rows, err := wb.File.GetRows("Cursos")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want header + 1 row, got %d", len(rows))
	}
	if rows[0][1] != "Nome" || rows[1][1] != "ADS" {
		t.Fatalf("unexpected cells: %v", rows)
	}

	turmaRows, err := wb.File.GetRows("Turmas")
	if err != nil {
		t.Fatal(err)
	}
	if turmaRows[1][4] != "ADS" {
		t.Fatalf("joined curso name missing from report: %v", turmaRows[1])
	}

	if _, err := wb.File.GetRows("Disciplinas"); err != nil {
		t.Fatalf("empty sheet must still exist: %v", err)
	}
}

func TestWorkbook_Save(t *testing.T) {
	wb, err := NewWorkbook([]SheetSpec{DisciplinasSheet(nil)})
	if err != nil {
		t.Fatal(err)
	}
	path, err := wb.Save(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}
