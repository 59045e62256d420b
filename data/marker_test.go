package data

import (
	"sync"
	"testing"
)

func TestMarkerInterning(t *testing.T) {
	if End("cobol", "word") != End("cobol", "word") {
		t.Errorf("End markers with equal keys are not identical")
	}
	if Start("cobol", "word") != Start("cobol", "word") {
		t.Errorf("Start markers with equal keys are not identical")
	}
	if Start("cobol", "word") == End("cobol", "word") {
		t.Errorf("Start and End markers must differ")
	}
	if End("cobol", "word") == End("cobol", "literal") {
		t.Errorf("different names compare equal")
	}
	if End("cobol", "word") == End("sql", "word") {
		t.Errorf("different namespaces compare equal")
	}
	if End("a:b", "c") == End("a", "b:c") {
		t.Errorf("keys that only differ in where the separator falls compare equal")
	}
}

func TestMarkerInterningConcurrent(t *testing.T) {
	const n = 32
	got := make([]*Marker, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Start("concurrent", "rule")
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatalf("goroutine %d got a different instance", i)
		}
	}
}

func TestMarkerString(t *testing.T) {
	if got := Start("cobol", "word").String(); got != "<cobol:word>" {
		t.Errorf("Start.String() = %q", got)
	}
	if got := End("cobol", "word").String(); got != "</cobol:word>" {
		t.Errorf("End.String() = %q", got)
	}
}
