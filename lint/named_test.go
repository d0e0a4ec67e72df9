package lint

import "testing"

func TestLintChecksumValidGTIN(t *testing.T) {
	if err := lintChecksum("12312312312333"); err != nil {
		t.Errorf("unexpected error for valid GTIN-14: %v", err)
	}
}

func TestLintChecksumInvalid(t *testing.T) {
	if err := lintChecksum("12312312312334"); err == nil {
		t.Error("expected error for invalid check digit")
	}
}

func TestLintChecksumPaddedGTIN12(t *testing.T) {
	if err := lintChecksum("00416000336108"); err != nil {
		t.Errorf("unexpected error for zero-padded GTIN-12: %v", err)
	}
}

func TestLintChecksumGSRNP(t *testing.T) {
	if err := lintChecksum("795260646688514634"); err != nil {
		t.Errorf("unexpected error for valid GSRNP: %v", err)
	}
}

func TestLintChecksumGDTI(t *testing.T) {
	if err := lintChecksum("9526064000028"); err != nil {
		t.Errorf("unexpected error for valid GDTI: %v", err)
	}
	if err := lintChecksum("1234567890128"); err != nil {
		t.Errorf("unexpected error for valid GDTI: %v", err)
	}
}

func TestLintYYMMDDAllowsUnspecifiedDay(t *testing.T) {
	if err := lintYYMMDD("240400"); err != nil {
		t.Errorf("unexpected error for day=00: %v", err)
	}
}

func TestLintYYMMDDValidDate(t *testing.T) {
	if err := lintYYMMDD("180426"); err != nil {
		t.Errorf("unexpected error for valid date: %v", err)
	}
}

func TestLintYYMMDDRejectsBadMonth(t *testing.T) {
	if err := lintYYMMDD("241300"); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestLintYYMMDDRejectsBadDay(t *testing.T) {
	if err := lintYYMMDD("240231"); err == nil {
		t.Error("expected error for Feb 31")
	}
}

func TestLintISO3166(t *testing.T) {
	if err := lintISO3166("840"); err != nil {
		t.Errorf("unexpected error for US (840): %v", err)
	}
	if err := lintISO3166("999"); err != nil {
		t.Errorf("unexpected error for GS1's 999 placeholder: %v", err)
	}
	if err := lintISO3166("001"); err == nil {
		t.Error("expected error for unassigned code 001")
	}
}

func TestLintNonZero(t *testing.T) {
	if err := lintNonZero("00001"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := lintNonZero("00000"); err == nil {
		t.Error("expected error for all-zero value")
	}
}

func TestLintPercentEncodable(t *testing.T) {
	if err := lintPercentEncodable("ABC123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := lintPercentEncodable("AB%20"); err == nil {
		t.Error("expected error for literal '%' byte")
	}
}

func TestIsRegisteredName(t *testing.T) {
	if !IsRegisteredName("csum") {
		t.Error("csum should be registered")
	}
	if IsRegisteredName("does-not-exist") {
		t.Error("unregistered name reported as registered")
	}
}
