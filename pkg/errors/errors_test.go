package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewCode(t *testing.T) {
	code, err := NewCode("dataset.unknown_scale")
	if err != nil {
		t.Fatalf("Expected valid code, got error: %v", err)
	}
	if code.String() != "dataset.unknown_scale" {
		t.Errorf("Expected 'dataset.unknown_scale', got '%s'", code.String())
	}
	if code.Package() != "dataset" {
		t.Errorf("Expected package 'dataset', got '%s'", code.Package())
	}
	if code.Name() != "unknown_scale" {
		t.Errorf("Expected name 'unknown_scale', got '%s'", code.Name())
	}

	for _, bad := range []string{"", "nodot", "Upper.case", "pkg.", ".name", "pkg.name.extra"} {
		if _, err := NewCode(bad); err == nil {
			t.Errorf("Expected error for code '%s'", bad)
		}
	}
}

func TestMustNewCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid code")
		}
	}()
	MustNewCode("not a code")
}

func TestErrorChain(t *testing.T) {
	code := MustNewCode("testing.failure")
	cause := stderrors.New("boom")

	err := New(code, "operation failed", cause).AddContext("path", "/tmp/x")

	if err.Error() != "operation failed: boom" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("Expected cause to be reachable via Unwrap")
	}
	if err.Context["path"] != "/tmp/x" {
		t.Errorf("Unexpected context: %+v", err.Context)
	}
	if GetCode(err) != "testing.failure" {
		t.Errorf("Expected code 'testing.failure', got '%s'", GetCode(err))
	}
	if GetCode(cause) != "" {
		t.Errorf("Expected empty code for plain error, got '%s'", GetCode(cause))
	}
}

func TestNewf(t *testing.T) {
	code := MustNewCode("testing.formatted")
	err := Newf(code, "got %d, want %d", 3, 7)

	if err.Error() != "got 3, want 7" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
	if err.Cause != nil {
		t.Errorf("Expected no cause, got %v", err.Cause)
	}
}
