package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestValuesRoundTrip(t *testing.T) {
	ctx := WithUserID(WithOp(context.Background(), "warm_cursos"), "s1")
	if op, ok := Op(ctx); !ok || op != "warm_cursos" {
		t.Fatalf("op: got %q ok=%v", op, ok)
	}
	if id, ok := UserID(ctx); !ok || id != "s1" {
		t.Fatalf("user id: got %q ok=%v", id, ok)
	}
	if _, ok := Op(context.Background()); ok {
		t.Fatal("empty context must not report an op")
	}
}

func TestWithAPITimeout_KeepsShorterParentDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	ctx, cancel2 := WithAPITimeout(parent)
	defer cancel2()
	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline set")
	}
	if time.Until(dl) > 100*time.Millisecond {
		t.Fatalf("parent deadline was extended: %v away", time.Until(dl))
	}
}

func TestWithAPITimeout_AppliesDefault(t *testing.T) {
	ctx, cancel := WithAPITimeout(context.Background())
	defer cancel()
	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline set")
	}
	remain := time.Until(dl)
	if remain <= 0 || remain > DefaultAPITimeout {
		t.Fatalf("unexpected deadline distance %v", remain)
	}
}
