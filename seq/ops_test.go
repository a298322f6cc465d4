package seq

import (
	"context"
	"io"
	"reflect"
	"testing"
)

func TestZip_Pairs(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]string{"a", "b", "c"})

	res, err := Zip(a, b).ToSlice(context.Background())
	if err != nil {
		t.Fatalf("ToSlice failed: %v", err)
	}
	want := []Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
		{First: 3, Second: "c"},
	}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("got %v, want %v", res, want)
	}
}

func TestZip_StopsAtShorter(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{10})

	z := Zip(a, b)
	res, err := z.ToSlice(context.Background())
	if err != nil {
		t.Fatalf("ToSlice failed: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("got %d pairs, want 1", len(res))
	}

	ctx := context.Background()
	if _, err := z.Next(ctx); err != io.EOF {
		t.Fatalf("got %v, want io.EOF after exhaustion", err)
	}
}

func TestZip_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil stream")
		}
	}()
	Zip[int, int](nil, FromSlice([]int{1}))
}
