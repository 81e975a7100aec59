package facts

import "testing"

func TestKeyCommutativeOrder(t *testing.T) {
	if got := Key(Multiplication, 7, 3); got != "3x7" {
		t.Errorf("Key(7,3) = %q, want 3x7", got)
	}
	if Key(Multiplication, 3, 7) != Key(Multiplication, 7, 3) {
		t.Error("multiplication keys should be order-independent")
	}
	if Key(Addition, 9, 2) != Key(Addition, 2, 9) {
		t.Error("addition keys should be order-independent")
	}
}

func TestKeyNonCommutativeKeepsOrder(t *testing.T) {
	if Key(Subtraction, 9, 2) == Key(Subtraction, 2, 9) {
		t.Error("subtraction keys must preserve operand order")
	}
	if got := Key(Division, 12, 3); got != "12/3" {
		t.Errorf("Key(12,3) = %q, want 12/3", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key      string
		op       Operation
		operands [2]int
	}{
		{"3x7", Multiplication, [2]int{3, 7}},
		{"12+5", Addition, [2]int{12, 5}},
		{"20-4", Subtraction, [2]int{20, 4}},
		{"42/6", Division, [2]int{42, 6}},
	}
	for _, tt := range tests {
		op, operands := ParseKey(tt.key)
		if op != tt.op || operands != tt.operands {
			t.Errorf("ParseKey(%q) = %v %v, want %v %v", tt.key, op, operands, tt.op, tt.operands)
		}
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "x7", "3x", "abc", "3?7", "3xseven"} {
		op, _ := ParseKey(key)
		if op != Unknown {
			t.Errorf("ParseKey(%q) = %v, want unknown", key, op)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	once := NormalizeKey("9x4")
	twice := NormalizeKey(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q then %q", once, twice)
	}
	if NormalizeKey("9x4") != NormalizeKey("4x9") {
		t.Error("commutative keys should normalize to the same string")
	}
	if NormalizeKey("9-4") == NormalizeKey("4-9") {
		t.Error("subtraction keys must stay distinct")
	}
}

func TestNormalizeKeyInvalidUnchanged(t *testing.T) {
	if got := NormalizeKey("garbage"); got != "garbage" {
		t.Errorf("NormalizeKey(garbage) = %q, want unchanged", got)
	}
}
