package introspect

import (
	"fmt"
	"reflect"
)

// Param is one declared parameter of a callable. Go reflection exposes
// parameter types but not names, so Name is empty for reflect-backed
// callables and populated only where a source parser supplies it.
type Param struct {
	Name string
	Type string
}

// Signature is the declared shape of a callable: parameters, results and
// a printable raw form. Source-parsed callables carry only Raw.
type Signature struct {
	Raw      string
	Params   []Param
	Results  []string
	Variadic bool
}

// ReadSignature returns the declared signature of a callable member
// value: a func, a bound method, an unbound reflect.Method descriptor,
// or a source symbol. Non-callables produce a ConfigurationError.
func ReadSignature(v any) (Signature, error) {
	switch m := v.(type) {
	case reflect.Method:
		return funcSignature(m.Type, true), nil
	case *SourceSymbol:
		if m.Kind != Function && m.Kind != Method && m.Kind != Property {
			return Signature{}, configErr("read_signature", "%q is not callable", m.Name)
		}
		return Signature{Raw: m.Signature}, nil
	case nil:
		return Signature{}, configErr("read_signature", "nil value")
	}
	t := reflect.TypeOf(v)
	if t.Kind() != reflect.Func {
		return Signature{}, configErr("read_signature", "%s is not callable", t)
	}
	return funcSignature(t, false), nil
}

func funcSignature(ft reflect.Type, skipReceiver bool) Signature {
	sig := Signature{Raw: ft.String(), Variadic: ft.IsVariadic()}
	start := 0
	if skipReceiver && ft.NumIn() > 0 {
		start = 1
	}
	for i := start; i < ft.NumIn(); i++ {
		sig.Params = append(sig.Params, Param{Type: ft.In(i).String()})
	}
	for i := 0; i < ft.NumOut(); i++ {
		sig.Results = append(sig.Results, ft.Out(i).String())
	}
	return sig
}

// String renders the signature in a compact, human-readable form.
func (s Signature) String() string {
	if s.Raw != "" {
		return s.Raw
	}
	return fmt.Sprintf("func(%d params) (%d results)", len(s.Params), len(s.Results))
}
