package introspect

import (
	"errors"
	"reflect"
	"testing"
)

func TestReadSignatureFunc(t *testing.T) {
	t.Parallel()

	sig, err := ReadSignature(func(a string, b int) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if len(sig.Params) != 2 || sig.Params[0].Type != "string" || sig.Params[1].Type != "int" {
		t.Errorf("params = %+v", sig.Params)
	}
	if len(sig.Results) != 2 || sig.Results[0] != "bool" || sig.Results[1] != "error" {
		t.Errorf("results = %+v", sig.Results)
	}
	if sig.Variadic {
		t.Error("non-variadic func reported variadic")
	}
	if sig.Raw == "" || sig.String() != sig.Raw {
		t.Errorf("raw = %q, String = %q", sig.Raw, sig.String())
	}
}

func TestReadSignatureVariadic(t *testing.T) {
	t.Parallel()

	sig, err := ReadSignature(func(parts ...string) string { return "" })
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if !sig.Variadic {
		t.Error("variadic func not reported variadic")
	}
}

func TestReadSignatureMethodSkipsReceiver(t *testing.T) {
	t.Parallel()

	m, ok := reflect.PointerTo(Type[Account]()).MethodByName("Deposit")
	if !ok {
		t.Fatal("Deposit not found")
	}
	sig, err := ReadSignature(m)
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if len(sig.Params) != 1 || sig.Params[0].Type != "int" {
		t.Errorf("params = %+v, receiver should not count", sig.Params)
	}
}

func TestReadSignatureSourceSymbol(t *testing.T) {
	t.Parallel()

	sig, err := ReadSignature(&SourceSymbol{Name: "greet", Kind: Method, Signature: "greet(self) -> str"})
	if err != nil {
		t.Fatalf("ReadSignature: %v", err)
	}
	if sig.Raw != "greet(self) -> str" {
		t.Errorf("raw = %q", sig.Raw)
	}

	var confErr *ConfigurationError
	_, err = ReadSignature(&SourceSymbol{Name: "x", Kind: Variable})
	if !errors.As(err, &confErr) {
		t.Errorf("variable symbol: got %v, want ConfigurationError", err)
	}
}

func TestReadSignatureNonCallable(t *testing.T) {
	t.Parallel()

	var confErr *ConfigurationError
	if _, err := ReadSignature(42); !errors.As(err, &confErr) {
		t.Errorf("int: got %v, want ConfigurationError", err)
	}
	if _, err := ReadSignature(nil); !errors.As(err, &confErr) {
		t.Errorf("nil: got %v, want ConfigurationError", err)
	}
}
