package introspect

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGetFromModule(t *testing.T) {
	t.Parallel()
	m := newBankModule()

	v, err := GetClass(m, "Account")
	if err != nil {
		t.Fatalf("GetClass: %v", err)
	}
	if _, ok := v.(reflect.Type); !ok {
		t.Errorf("GetClass returned %T", v)
	}

	if _, err := GetFunction(m, "Open"); err != nil {
		t.Errorf("GetFunction: %v", err)
	}
	if v, err := GetVariable(m, "MaxAccounts"); err != nil || v != 64 {
		t.Errorf("GetVariable = %v, %v", v, err)
	}
	if _, err := GetModule(m, "audit"); err != nil {
		t.Errorf("GetModule: %v", err)
	}
}

func TestGetBypassesPrivacy(t *testing.T) {
	t.Parallel()
	m := newBankModule()

	// Naming a private member is explicit intent; no flag needed.
	if _, err := GetVariable(m, "_registry"); err != nil {
		t.Errorf("GetVariable(_registry): %v", err)
	}
	// Reserved names stay unreachable even by name.
	var notFound *NotFoundError
	if _, err := GetVariable(m, "__version__"); !errors.As(err, &notFound) {
		t.Errorf("GetVariable(__version__): got %v, want NotFoundError", err)
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	var notFound *NotFoundError
	_, err := GetMethod(Type[Account](), "Withdraw")
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if notFound.Name != "Withdraw" || notFound.Op != "get_method" {
		t.Errorf("error fields = %+v", notFound)
	}
}

func TestGetWrongCategory(t *testing.T) {
	t.Parallel()

	// Deposit exists but is a method, not a property.
	var notFound *NotFoundError
	if _, err := GetProperty(Type[Account](), "Deposit"); !errors.As(err, &notFound) {
		t.Errorf("got %v, want NotFoundError", err)
	}
}

func TestGetModuleByBaseName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tools.py"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Disk lookups fall back to base-name matching, with and without the
	// extension.
	v, err := GetModule(dir, "tools")
	if err != nil {
		t.Fatalf("GetModule(tools): %v", err)
	}
	if v != filepath.Join(dir, "tools.py") {
		t.Errorf("GetModule = %v", v)
	}
	if _, err := GetModule(dir, "tools.py"); err != nil {
		t.Errorf("GetModule(tools.py): %v", err)
	}
}

func TestGetModuleAmbiguous(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"tools.py", "tools.go"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x = 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var ambiguous *AmbiguousResultError
	_, err := GetModule(dir, "tools")
	if !errors.As(err, &ambiguous) {
		t.Fatalf("got %v, want AmbiguousResultError", err)
	}
	if ambiguous.Count != 2 {
		t.Errorf("Count = %d, want 2", ambiguous.Count)
	}
}

func TestGetIllegalSubject(t *testing.T) {
	t.Parallel()

	var confErr *ConfigurationError
	if _, err := GetMethod(newBankModule(), "Deposit"); !errors.As(err, &confErr) {
		t.Errorf("got %v, want ConfigurationError", err)
	}
}
