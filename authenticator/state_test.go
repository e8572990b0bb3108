package authenticator

import "testing"

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	if err != nil {
		t.Fatalf("Expected state generation to succeed, got %v", err)
	}
	if a == "" {
		t.Fatal("Expected a non-empty state")
	}

	b, err := GenerateState()
	if err != nil {
		t.Fatalf("Expected state generation to succeed, got %v", err)
	}
	if a == b {
		t.Error("Expected two generated states to differ")
	}
}

func TestVerifyState(t *testing.T) {
	if err := VerifyState("abc", "abc"); err != nil {
		t.Errorf("Expected matching states to verify, got %v", err)
	}

	if KindOf(VerifyState("abc", "xyz")) != KindInvalidState {
		t.Error("Expected invalid_state on mismatch")
	}
	if KindOf(VerifyState("", "abc")) != KindInvalidState {
		t.Error("Expected invalid_state when the stored state is missing")
	}
	if KindOf(VerifyState("abc", "")) != KindInvalidState {
		t.Error("Expected invalid_state when the callback state is missing")
	}
}
