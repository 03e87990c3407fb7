package errors

import (
	"errors"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "module not found")
		if err.Error() != "[NOT_FOUND] module not found" {
			t.Errorf("expected [NOT_FOUND] module not found, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("unresolvable reference")
		err := Wrap(original, CodeResolution, "resolve package")
		expected := "[RESOLUTION_ERROR] resolve package: unresolvable reference"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeValidationError, "invalid config")
		if !IsCode(err, CodeValidationError) {
			t.Error("expected IsCode to return true for CodeValidationError")
		}
		if IsCode(err, CodeResolution) {
			t.Error("expected IsCode to return false for CodeResolution")
		}
	})

	t.Run("IsCodeWithWrapped", func(t *testing.T) {
		original := errors.New("malformed AST")
		err := Wrap(original, CodeResolution, "resolve package")
		if !IsCode(err, CodeResolution) {
			t.Error("expected IsCode to return true for wrapped CodeResolution")
		}
	})

	t.Run("AddContext", func(t *testing.T) {
		err := New(CodeResolution, "resolve package")
		err = AddContext(err, CtxModule, "Data.List")
		var de *DomainError
		if !errors.As(err, &de) {
			t.Fatal("expected a DomainError")
		}
		if de.Context[CtxModule] != "Data.List" {
			t.Errorf("expected module context, got %v", de.Context)
		}
	})
}
