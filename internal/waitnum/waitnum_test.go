package waitnum

import "testing"

func TestAvailableSkipsTakenNumbers(t *testing.T) {
	free := Available(30, []int{1, 2, 3})
	if len(free) != 27 {
		t.Fatalf("expected 27 free numbers, got %d", len(free))
	}
	if free[0] != 4 || free[len(free)-1] != 30 {
		t.Fatalf("expected range 4..30, got %d..%d", free[0], free[len(free)-1])
	}
}

func TestAvailableFullPool(t *testing.T) {
	free := Available(5, nil)
	want := []int{1, 2, 3, 4, 5}
	if len(free) != len(want) {
		t.Fatalf("expected %d numbers, got %d", len(want), len(free))
	}
	for i, n := range want {
		if free[i] != n {
			t.Fatalf("expected %v, got %v", want, free)
		}
	}
}

func TestAvailableExhausted(t *testing.T) {
	taken := make([]int, 0, 30)
	for n := 1; n <= 30; n++ {
		taken = append(taken, n)
	}
	free := Available(30, taken)
	if len(free) != 0 {
		t.Fatalf("expected empty pool, got %v", free)
	}
	if _, ok := Pick(free); ok {
		t.Fatal("pick on an empty pool must be a no-op")
	}
}

func TestAvailableIsAscendingForUnsortedInput(t *testing.T) {
	free := Available(10, []int{7, 2, 9, 4})
	for i := 1; i < len(free); i++ {
		if free[i] <= free[i-1] {
			t.Fatalf("expected strictly ascending numbers, got %v", free)
		}
	}
}

func TestAvailableIgnoresOutOfPoolNumbers(t *testing.T) {
	free := Available(3, []int{2, 99, -1})
	if len(free) != 2 || free[0] != 1 || free[1] != 3 {
		t.Fatalf("expected [1 3], got %v", free)
	}
}

func TestPickReturnsMemberOfPool(t *testing.T) {
	free := []int{4, 9, 17}
	for i := 0; i < 50; i++ {
		n, ok := Pick(free)
		if !ok {
			t.Fatal("expected a pick")
		}
		if n != 4 && n != 9 && n != 17 {
			t.Fatalf("picked %d outside the pool", n)
		}
	}
}

func TestStale(t *testing.T) {
	free := []int{4, 5, 6}
	if Stale(5, free) {
		t.Fatal("5 is still free, must not be stale")
	}
	if !Stale(7, free) {
		t.Fatal("7 was taken, must be stale")
	}
	if Stale(0, free) {
		t.Fatal("no selection can never be stale")
	}
}
