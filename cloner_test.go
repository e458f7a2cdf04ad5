package catalogindex_test

import (
	"testing"

	catalogindex "github.com/karupanerura/catalog-index"
)

// Test structs with different cloning behaviors
type clonerStruct struct {
	Value int
}

func (s *clonerStruct) Clone() *clonerStruct {
	return &clonerStruct{
		Value: s.Value,
	}
}

type deepCopierStruct struct {
	Value int
}

func (s *deepCopierStruct) DeepCopy() *deepCopierStruct {
	return &deepCopierStruct{
		Value: s.Value,
	}
}

type plainStruct struct {
	Value int
	Tags  []string
}

func TestDefaultRecordClonerWithCloneMethod(t *testing.T) {
	t.Parallel()

	cloner := catalogindex.DefaultRecordCloner[*clonerStruct]()
	original := &clonerStruct{Value: 42}
	cloned := cloner.CloneRecord(original)

	if original == cloned {
		t.Error("Expected different pointer, got same pointer")
	}
	if original.Value != cloned.Value {
		t.Errorf("Expected same value, got original=%d, cloned=%d", original.Value, cloned.Value)
	}

	// Modify original to verify deep copy
	original.Value = 100
	if cloned.Value != 42 {
		t.Errorf("Expected cloned value to remain unchanged, got %d", cloned.Value)
	}
}

func TestDefaultRecordClonerWithDeepCopyMethod(t *testing.T) {
	t.Parallel()

	cloner := catalogindex.DefaultRecordCloner[*deepCopierStruct]()
	original := &deepCopierStruct{Value: 42}
	cloned := cloner.CloneRecord(original)

	if original == cloned {
		t.Error("Expected different pointer, got same pointer")
	}

	original.Value = 100
	if cloned.Value != 42 {
		t.Errorf("Expected cloned value to remain unchanged, got %d", cloned.Value)
	}
}

func TestDefaultRecordClonerWithPlainStructPointer(t *testing.T) {
	t.Parallel()

	// A pointer to a plain struct is copied field-by-field.
	cloner := catalogindex.DefaultRecordCloner[*plainStruct]()
	original := &plainStruct{Value: 42, Tags: []string{"a"}}
	cloned := cloner.CloneRecord(original)

	if original == cloned {
		t.Error("Expected different pointer, got same pointer")
	}
	if cloned.Value != 42 {
		t.Errorf("Expected copied value 42, got %d", cloned.Value)
	}

	original.Value = 100
	if cloned.Value != 42 {
		t.Errorf("Expected cloned value to remain unchanged, got %d", cloned.Value)
	}
}

func TestDefaultRecordClonerNilPointer(t *testing.T) {
	t.Parallel()

	cloner := catalogindex.DefaultRecordCloner[*plainStruct]()
	if got := cloner.CloneRecord(nil); got != nil {
		t.Errorf("Expected nil for nil input, got %+v", got)
	}
}

func TestDefaultRecordClonerWithUnsupportedType(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unsupported record type, but did not panic")
		}
	}()
	catalogindex.DefaultRecordCloner[[]string]()
}

func TestDefaultRecordClonerImplementation(t *testing.T) {
	t.Parallel()

	// Verify the correct interface implementation is chosen
	withClone := catalogindex.DefaultRecordCloner[*clonerStruct]()
	stringCloner := catalogindex.DefaultRecordCloner[string]()
	intCloner := catalogindex.DefaultRecordCloner[int]()

	if _, ok := withClone.(catalogindex.RecordClonerFunc[*clonerStruct]); !ok {
		t.Error("Expected RecordClonerFunc for type with Clone method")
	}
	if _, ok := stringCloner.(catalogindex.NopRecordCloner[string]); !ok {
		t.Error("Expected NopRecordCloner for string")
	}
	if _, ok := intCloner.(catalogindex.NopRecordCloner[int]); !ok {
		t.Error("Expected NopRecordCloner for int")
	}
}

func TestDefaultRecordClonerForBook(t *testing.T) {
	t.Parallel()

	// Book has a Clone method, so the default cloner must use it.
	cloner := catalogindex.DefaultRecordCloner[*catalogindex.Book]()
	original := &catalogindex.Book{ISBN: "978-0441013593", Title: "Dune"}
	cloned := cloner.CloneRecord(original)

	if original == cloned {
		t.Error("Expected different pointer, got same pointer")
	}
	original.Title = "mutated"
	if cloned.Title != "Dune" {
		t.Errorf("Expected cloned title to remain unchanged, got %q", cloned.Title)
	}
}
