package envelope

import (
	"encoding/json"
	"testing"
)

func TestItems_AllEnvelopeShapesFlattenEqually(t *testing.T) {
	bodies := map[string]string{
		"raw array":  `[{"id":1},{"id":2}]`,
		"data":       `{"data":[{"id":1},{"id":2}]}`,
		"content":    `{"content":[{"id":1},{"id":2}]}`,
		"entity key": `{"cursos":[{"id":1},{"id":2}]}`,
	}
	for name, body := range bodies {
		items, err := Items([]byte(body), "cursos")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(items) != 2 {
			t.Fatalf("%s: want 2 items, got %d", name, len(items))
		}
		var first struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(items[0], &first); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if first.ID != 1 {
			t.Fatalf("%s: want first id 1, got %d", name, first.ID)
		}
	}
}

func TestItems_EmptyAndNull(t *testing.T) {
	for _, body := range []string{"", "null", "[]", `{"data":null}`, `{"data":[]}`} {
		items, err := Items([]byte(body), "cursos")
		if err != nil {
			t.Fatalf("%q: %v", body, err)
		}
		if len(items) != 0 {
			t.Fatalf("%q: want empty, got %d items", body, len(items))
		}
	}
}

func TestItems_SingleObjectYieldsOneItem(t *testing.T) {
	items, err := Items([]byte(`{"id":7,"nome":"ADS"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}
}

func TestItems_WrappedSingleObject(t *testing.T) {
	items, err := Items([]byte(`{"data":{"id":7}}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}
}

func TestItems_Garbage(t *testing.T) {
	if _, err := Items([]byte(`"texto"`)); err == nil {
		t.Fatal("want error for non-list body")
	}
}
