package tools

import (
	"reflect"
	"testing"
)

func TestReadString(t *testing.T) {
	t.Run("optional absent", func(t *testing.T) {
		s, err := ReadString(map[string]any{}, "k", false)
		if err != nil || s != "" {
			t.Fatalf("got %q, %v", s, err)
		}
	})
	t.Run("trims", func(t *testing.T) {
		s, err := ReadString(map[string]any{"k": "  v  "}, "k", true)
		if err != nil || s != "v" {
			t.Fatalf("got %q, %v", s, err)
		}
	})
	t.Run("optional wrong type still errors", func(t *testing.T) {
		if _, err := ReadString(map[string]any{"k": 1}, "k", false); err == nil {
			t.Fatal("expected type error")
		}
	})
}

func TestReadPositiveNumber(t *testing.T) {
	if n, err := ReadPositiveNumber(map[string]any{}, "t", 20); err != nil || n != 20 {
		t.Fatalf("default: got %v, %v", n, err)
	}
	if n, err := ReadPositiveNumber(map[string]any{"t": 2.5}, "t", 20); err != nil || n != 2.5 {
		t.Fatalf("fractional: got %v, %v", n, err)
	}
	if _, err := ReadPositiveNumber(map[string]any{"t": float64(0)}, "t", 20); err == nil {
		t.Fatal("zero accepted")
	}
}

func TestReadPositiveInt(t *testing.T) {
	if _, present, err := ReadPositiveInt(map[string]any{}, "n"); err != nil || present {
		t.Fatalf("absent: present=%v err=%v", present, err)
	}
	n, present, err := ReadPositiveInt(map[string]any{"n": float64(4096)}, "n")
	if err != nil || !present || n != 4096 {
		t.Fatalf("got %d, %v, %v", n, present, err)
	}
	for _, v := range []any{1.5, float64(-1), "7"} {
		if _, _, err := ReadPositiveInt(map[string]any{"n": v}, "n"); err == nil {
			t.Fatalf("%v accepted", v)
		}
	}
}

func TestReadStringMap(t *testing.T) {
	m, err := ReadStringMap(map[string]any{"h": map[string]any{
		"a": "x",
		"b": float64(2),
		"c": true,
	}}, "h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"a": "x", "b": "2", "c": "true"}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("got %v, want %v", m, want)
	}

	if m, err := ReadStringMap(map[string]any{}, "h"); err != nil || m != nil {
		t.Fatalf("absent: got %v, %v", m, err)
	}
}
