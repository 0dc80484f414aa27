package retriever

import (
	"math"
	"testing"
)

// Hand-checked against the smoothed likelihood formula on smallIndex:
// collection size 5, mu 300, so the "dog" background mass is 300*3/5 = 180.
func TestQLScoresSingleTerm(t *testing.T) {
	idx := smallIndex(t)
	got := NewQL(300).Score(idx, []string{"dog"})
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	wantD1 := math.Log(181.0 / 303.0) // tf 1, len 3
	wantD2 := math.Log(182.0 / 302.0) // tf 2, len 2
	if d1 := scoreOf(t, got, "d1"); math.Abs(d1-wantD1) > 1e-12 {
		t.Errorf("d1 score = %v, want %v", d1, wantD1)
	}
	if d2 := scoreOf(t, got, "d2"); math.Abs(d2-wantD2) > 1e-12 {
		t.Errorf("d2 score = %v, want %v", d2, wantD2)
	}
	if wantD2 <= wantD1 {
		t.Fatal("test corpus no longer ranks d2 above d1")
	}
}

func TestQLScoresMultiTerm(t *testing.T) {
	idx := smallIndex(t)
	got := NewQL(300).Score(idx, []string{"cat", "dog"})
	// d2 does not contain "cat" but is still smoothed for it.
	wantD1 := math.Log(122.0/303.0) + math.Log(181.0/303.0)
	wantD2 := math.Log(120.0/302.0) + math.Log(182.0/302.0)
	if d1 := scoreOf(t, got, "d1"); math.Abs(d1-wantD1) > 1e-12 {
		t.Errorf("d1 score = %v, want %v", d1, wantD1)
	}
	if d2 := scoreOf(t, got, "d2"); math.Abs(d2-wantD2) > 1e-12 {
		t.Errorf("d2 score = %v, want %v", d2, wantD2)
	}
}

// A term listed twice contributes its log term twice.
func TestQLRepeatedTermDoubles(t *testing.T) {
	idx := smallIndex(t)
	once := NewQL(300).Score(idx, []string{"dog"})
	twice := NewQL(300).Score(idx, []string{"dog", "dog"})
	for _, docID := range []string{"d1", "d2"} {
		single := scoreOf(t, once, docID)
		double := scoreOf(t, twice, docID)
		if math.Abs(double-2*single) > 1e-12 {
			t.Errorf("%s: repeated term scored %v, want %v", docID, double, 2*single)
		}
	}
}

func TestQLTermOrderIrrelevant(t *testing.T) {
	idx := smallIndex(t)
	ab := NewQL(300).Score(idx, []string{"cat", "dog"})
	ba := NewQL(300).Score(idx, []string{"dog", "cat"})
	for _, docID := range []string{"d1", "d2"} {
		if a, b := scoreOf(t, ab, docID), scoreOf(t, ba, docID); math.Abs(a-b) > 1e-12 {
			t.Errorf("%s: score depends on term order (%v vs %v)", docID, a, b)
		}
	}
}

// A term with no occurrences anywhere drives the numerator to zero, so its
// log term is -Inf. Candidates drawn in by the other terms are still scored
// without erroring.
func TestQLUnseenTermYieldsNegativeInfinity(t *testing.T) {
	idx := smallIndex(t)
	got := NewQL(300).Score(idx, []string{"cat", "neverseen"})
	if len(got) != 1 || got[0].DocID != "d1" {
		t.Fatalf("got %v, want only d1", got)
	}
	if !math.IsInf(got[0].Score, -1) {
		t.Errorf("score = %v, want -Inf", got[0].Score)
	}
}

func TestQLNoCandidates(t *testing.T) {
	idx := smallIndex(t)
	if got := NewQL(300).Score(idx, []string{"missing"}); len(got) != 0 {
		t.Errorf("absent term produced results %v", got)
	}
	if got := NewQL(300).Score(idx, nil); len(got) != 0 {
		t.Errorf("empty term list produced results %v", got)
	}
}
