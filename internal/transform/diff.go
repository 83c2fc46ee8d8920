package transform

import "sort"

// DiffCampos returns the names of fields whose value changed from the
// fetched baseline. The empty string is the untouched sentinel: a field
// left empty in the form is not a change, and unchanged fields are never
// sent as empty strings.
func DiffCampos(baseline, atual map[string]string) []string {
	changed := make([]string, 0, len(atual))
	for campo, valor := range atual {
		if valor == "" {
			continue
		}
		if valor != baseline[campo] {
			changed = append(changed, campo)
		}
	}
	sort.Strings(changed)
	return changed
}

// SparseUpdate builds the partial-update payload: only changed fields,
// keyed by wire name.
func SparseUpdate(baseline, atual map[string]string) map[string]string {
	dto := make(map[string]string)
	for _, campo := range DiffCampos(baseline, atual) {
		dto[campo] = atual[campo]
	}
	return dto
}
