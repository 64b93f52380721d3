package entity

import "testing"

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"active", "served", "cancelled"} {
		status, err := ParseStatus(valid)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", valid, err)
		}
		if string(status) != valid {
			t.Fatalf("expected %s, got %s", valid, status)
		}
	}
	if _, err := ParseStatus("refunded"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestTerminal(t *testing.T) {
	if StatusActive.Terminal() {
		t.Fatal("active is not terminal")
	}
	if !StatusServed.Terminal() || !StatusCancelled.Terminal() {
		t.Fatal("served and cancelled are terminal")
	}
}
