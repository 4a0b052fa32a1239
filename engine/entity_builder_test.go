package engine

import "testing"

func TestEntityBuilderCommitsOnBuild(t *testing.T) {
	w := NewWorld()
	mocks := GetStore[MockComponent](w)
	others := GetStore[otherComponent](w)

	eb := w.NewEntity()
	With(With(eb, MockComponent{Value: 7}), otherComponent{Name: "x"})

	if mocks.Has(eb.Entity()) {
		t.Fatalf("Expected components staged until Build()")
	}

	e := eb.Build()

	if got, ok := mocks.Get(e); !ok || got.Value != 7 {
		t.Errorf("Expected mock component committed, got %+v ok=%v", got, ok)
	}
	if got, ok := others.Get(e); !ok || got.Name != "x" {
		t.Errorf("Expected other component committed, got %+v ok=%v", got, ok)
	}
}

func TestEntityBuilderPanics(t *testing.T) {
	w := NewWorld()

	t.Run("empty", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("Expected panic on empty Build()")
			}
		}()
		w.NewEntity().Build()
	})

	t.Run("after build", func(t *testing.T) {
		eb := With(w.NewEntity(), MockComponent{})
		eb.Build()
		defer func() {
			if recover() == nil {
				t.Errorf("Expected panic on With() after Build()")
			}
		}()
		With(eb, MockComponent{})
	})
}
