// Package export writes the secretaria's XLSX reports: one workbook with
// a sheet per entity list.
package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/acadpainel/academico-sync/internal/models"
)

type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

type Workbook struct {
	File *excelize.File
}

func CursosSheet(cursos []models.Curso) SheetSpec {
	rows := make([][]string, 0, len(cursos))
	for _, c := range cursos {
		rows = append(rows, []string{
			c.ID, c.Nome, strconv.Itoa(c.Duracao), c.Turno, c.Situacao, c.DataAlteracao,
		})
	}
	return SheetSpec{
		Title:  "Cursos",
		Header: []string{"ID", "Nome", "Duração (meses)", "Turno", "Situação", "Alterado em"},
		Rows:   rows,
	}
}

func TurmasSheet(turmas []models.Turma) SheetSpec {
	rows := make([][]string, 0, len(turmas))
	for _, t := range turmas {
		rows = append(rows, []string{
			t.ID, t.Nome, strconv.Itoa(t.Ano), t.Turno, t.CursoNome,
			strconv.Itoa(t.QtdAlunos), strings.Join(t.Disciplinas, ", "),
		})
	}
	return SheetSpec{
		Title:  "Turmas",
		Header: []string{"ID", "Nome", "Ano", "Turno", "Curso", "Alunos", "Disciplinas"},
		Rows:   rows,
	}
}

func DisciplinasSheet(disciplinas []models.Disciplina) SheetSpec {
	rows := make([][]string, 0, len(disciplinas))
	for _, d := range disciplinas {
		rows = append(rows, []string{
			d.ID, d.Nome, strconv.Itoa(d.CargaSemanal), d.Situacao, d.Ementa,
		})
	}
	return SheetSpec{
		Title:  "Disciplinas",
		Header: []string{"ID", "Nome", "Carga semanal (h)", "Situação", "Ementa"},
		Rows:   rows,
	}
}

func NewWorkbook(sheets []SheetSpec) (*Workbook, error) {
	f := excelize.NewFile()

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, s := range sheets {
		name := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet: %w", err)
			}
		}
		for col, h := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, h); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		// header style + filter row
		end := colName(len(s.Header)) + "1"
		_ = f.SetCellStyle(name, "A1", end, bold)
		_ = f.AutoFilter(name, "A1:"+end, nil)

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}
		// width heuristic from the header and the first rows
		for c := 1; c <= len(s.Header); c++ {
			maxim := len(s.Header[c-1])
			for r := 0; r < minim(50, len(s.Rows)); r++ {
				if c-1 < len(s.Rows[r]) {
					if l := len(s.Rows[r][c-1]); l > maxim {
						maxim = l
					}
				}
			}
			w := float64(maxim) * 0.9
			if w < 12 {
				w = 12
			}
			if w > 40 {
				w = 40
			}
			_ = f.SetColWidth(name, colName(c), colName(c), w)
		}
	}
	return &Workbook{File: f}, nil
}

// Save writes the workbook into dir with a dated filename and returns the
// full path.
func (w *Workbook) Save(dir string) (string, error) {
	name := fmt.Sprintf("relatorio_secretaria_%s.xlsx", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	return path, w.File.SaveAs(path)
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func minim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
