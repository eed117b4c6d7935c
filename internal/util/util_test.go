package util_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/keshon/codesnap/internal/fs"
	"github.com/keshon/codesnap/internal/util"
)

func TestJSONRoundTrip(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("cfg", 0o755)

	in := map[string]int{"a": 1, "b": 2}
	if err := util.WriteJSON(m, "cfg/data.json", in); err != nil {
		t.Fatal(err)
	}

	var out map[string]int
	if err := util.ReadJSON(m, "cfg/data.json", &out); err != nil {
		t.Fatal(err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Fatalf("got %v", out)
	}
}

func TestWriteJSONLeavesNoTempFile(t *testing.T) {
	m := fs.NewMemoryFS()
	if err := util.WriteJSON(m, "data.json", []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	entries, err := m.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if !e.IsDir() && e.Name() != "data.json" {
			t.Fatalf("leftover file %q", e.Name())
		}
	}
}

func TestSortedKeys(t *testing.T) {
	got := util.SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3})
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParallelVisitsAll(t *testing.T) {
	inputs := make([]int, 100)
	for i := range inputs {
		inputs[i] = i
	}
	var sum int64
	err := util.Parallel(inputs, 4, func(n int) error {
		atomic.AddInt64(&sum, int64(n))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 4950 {
		t.Fatalf("sum = %d", sum)
	}
}

func TestParallelPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := util.Parallel([]int{1, 2, 3}, 2, func(n int) error {
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}
