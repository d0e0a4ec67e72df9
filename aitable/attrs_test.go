package aitable

import "testing"

func TestParseAttrsDLPKeyBare(t *testing.T) {
	a := parseAttrs("dlpkey")
	if !a.DLPKey {
		t.Error("expected DLPKey = true")
	}
	if len(a.DLPKeyQualifierGroups) != 0 {
		t.Errorf("expected no qualifier groups, got %v", a.DLPKeyQualifierGroups)
	}
}

func TestParseAttrsDLPKeyQualifierGroups(t *testing.T) {
	a := parseAttrs("dlpkey=22,10,21|235")
	want := [][]string{{"22", "10", "21"}, {"235"}}
	if len(a.DLPKeyQualifierGroups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(a.DLPKeyQualifierGroups), len(want))
	}
	for i, g := range want {
		if !equalStrings(a.DLPKeyQualifierGroups[i], g) {
			t.Errorf("group %d = %v, want %v", i, a.DLPKeyQualifierGroups[i], g)
		}
	}
}

func TestParseAttrsMutex(t *testing.T) {
	a := parseAttrs("ex=02,03")
	if !equalStrings(a.Mutex, []string{"02", "03"}) {
		t.Errorf("Mutex = %v", a.Mutex)
	}
}

func TestParseAttrsRequisites(t *testing.T) {
	a := parseAttrs("req=01+10,01+21")
	if len(a.Requisites) != 2 {
		t.Fatalf("got %d requisite groups, want 2", len(a.Requisites))
	}
	got := a.RequisiteStrings()
	want := []string{"01+10", "01+21"}
	if !equalStrings(got, want) {
		t.Errorf("RequisiteStrings() = %v, want %v", got, want)
	}
}

func TestParseAttrsRequisitesDropsEmptyMembers(t *testing.T) {
	a := parseAttrs("req=01++21")
	if len(a.Requisites) != 1 {
		t.Fatalf("got %d requisite groups, want 1", len(a.Requisites))
	}
	if len(a.Requisites[0]) != 2 {
		t.Errorf("empty '+' member was not dropped: %v", a.Requisites[0])
	}
}

func TestParseAttrsCombined(t *testing.T) {
	a := parseAttrs("dlpkey=22,10,21|235 ex=02")
	if len(a.DLPKeyQualifierGroups) != 2 {
		t.Fatalf("got %d groups, want 2", len(a.DLPKeyQualifierGroups))
	}
	if !equalStrings(a.Mutex, []string{"02"}) {
		t.Errorf("Mutex = %v", a.Mutex)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
