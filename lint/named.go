package lint

import "fmt"

// lintChecksum validates the trailing GS1 check digit of a numeric string
// using the standard weight-3/weight-1 alternating algorithm (GS1 General
// Specifications §7.9.1), applied to GTIN, SSCC, GLN, GSRN, and the fixed
// numeric component of GDTI/GCN/GRAI alike — they all share this one
// check-digit scheme over their own length.
func lintChecksum(value string) error {
	if len(value) == 0 {
		return fmt.Errorf("csum: empty value")
	}
	sum := 0
	weight := 3
	for i := len(value) - 2; i >= 0; i-- {
		d := int(value[i] - '0')
		if d < 0 || d > 9 {
			return fmt.Errorf("csum: non-digit byte %q at offset %d", value[i], i)
		}
		sum += d * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	check := (10 - sum%10) % 10
	got := int(value[len(value)-1] - '0')
	if got != check {
		return fmt.Errorf("csum: check digit %d, computed %d", got, check)
	}
	return nil
}

// lintYYMMDD validates a six-digit date, where a day of "00" means
// "unspecified" per the GS1 General Specifications' date-field conventions.
func lintYYMMDD(value string) error {
	if len(value) != 6 {
		return fmt.Errorf("yymmdd: value %q is not 6 digits", value)
	}
	mm := int(value[2]-'0')*10 + int(value[3]-'0')
	dd := int(value[4]-'0')*10 + int(value[5]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("yymmdd: month %02d out of range", mm)
	}
	if dd == 0 {
		return nil
	}
	if dd > daysInMonth(mm, int(value[0]-'0')*10+int(value[1]-'0')) {
		return fmt.Errorf("yymmdd: day %02d out of range for month %02d", dd, mm)
	}
	return nil
}

// lintYYMM validates a four-digit year/month pair.
func lintYYMM(value string) error {
	if len(value) != 4 {
		return fmt.Errorf("yymm: value %q is not 4 digits", value)
	}
	mm := int(value[2]-'0')*10 + int(value[3]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("yymm: month %02d out of range", mm)
	}
	return nil
}

// lintHHMI validates a four-digit 24-hour hour/minute pair.
func lintHHMI(value string) error {
	if len(value) != 4 {
		return fmt.Errorf("hhmi: value %q is not 4 digits", value)
	}
	hh := int(value[0]-'0')*10 + int(value[1]-'0')
	mi := int(value[2]-'0')*10 + int(value[3]-'0')
	if hh > 23 {
		return fmt.Errorf("hhmi: hour %02d out of range", hh)
	}
	if mi > 59 {
		return fmt.Errorf("hhmi: minute %02d out of range", mi)
	}
	return nil
}

func daysInMonth(month, yy int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		// GS1 two-digit years are a 100-year sliding window; for leap-year
		// purposes the low two digits are enough since every century
		// boundary GS1 AI dates can represent is divisible by 4 at the
		// century mark in the window the Syntax Engine targets.
		if yy%4 == 0 {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// iso3166Numeric holds the numeric-3 country/area codes registered by
// ISO 3166-1, plus GS1's own 999 "unspecified" placeholder.
var iso3166Numeric = buildNumericSet([]string{
	"004", "008", "010", "012", "016", "020", "024", "028", "031", "032",
	"036", "040", "044", "048", "050", "051", "052", "056", "060", "064",
	"068", "070", "072", "074", "076", "084", "086", "090", "092", "096",
	"100", "104", "108", "112", "116", "120", "124", "132", "136", "140",
	"144", "148", "152", "156", "158", "162", "166", "170", "174", "175",
	"178", "180", "184", "188", "191", "192", "196", "203", "204", "208",
	"212", "214", "218", "222", "226", "231", "232", "233", "234", "238",
	"239", "242", "246", "248", "250", "254", "258", "260", "262", "266",
	"268", "270", "275", "276", "288", "292", "296", "300", "304", "308",
	"312", "316", "320", "324", "328", "332", "336", "340", "344", "348",
	"352", "356", "360", "364", "368", "372", "376", "380", "384", "388",
	"392", "398", "400", "404", "408", "410", "414", "417", "418", "422",
	"426", "428", "430", "434", "438", "440", "442", "446", "450", "454",
	"458", "462", "466", "470", "474", "478", "480", "484", "488", "492",
	"496", "498", "499", "500", "504", "508", "512", "516", "520", "524",
	"528", "531", "533", "534", "535", "540", "548", "554", "558", "562",
	"566", "570", "574", "578", "580", "581", "583", "584", "585", "586",
	"591", "598", "600", "604", "608", "612", "616", "620", "624", "626",
	"630", "634", "638", "642", "643", "646", "652", "654", "659", "660",
	"662", "663", "666", "670", "674", "678", "680", "682", "686", "688",
	"690", "694", "702", "703", "704", "705", "706", "710", "716", "724",
	"728", "729", "732", "740", "744", "748", "752", "756", "760", "762",
	"764", "768", "772", "776", "780", "784", "788", "792", "795", "796",
	"798", "800", "804", "807", "818", "826", "831", "832", "833", "834",
	"840", "850", "854", "858", "860", "862", "876", "882", "887", "894",
	"999",
})

func buildNumericSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

// lintISO3166 validates a numeric-3 ISO 3166-1 country or area code, or
// GS1's reserved "999" (rest of the world / unspecified).
func lintISO3166(value string) error {
	if !iso3166Numeric[value] {
		return fmt.Errorf("iso3166: %q is not a recognised country code", value)
	}
	return nil
}

// lintNonZero rejects an all-zero numeric value (used by AIs such as
// variable counts, where zero is a degenerate value GS1 forbids even
// though it would pass the character-set check).
func lintNonZero(value string) error {
	for i := 0; i < len(value); i++ {
		if value[i] != '0' {
			return nil
		}
	}
	return fmt.Errorf("nonzero: value %q is all zeroes", value)
}

// lintPercentEncodable rejects bytes that GS1 Digital Link percent-encoding
// cannot round-trip unambiguously: '%' itself must never appear literally
// in a decoded CSET 82 component, since an odd run of '%' would make the
// re-encoded value ambiguous to decode.
func lintPercentEncodable(value string) error {
	for i := 0; i < len(value); i++ {
		if value[i] == '%' {
			return fmt.Errorf("pcenc: literal '%%' at offset %d is not round-trippable", i)
		}
	}
	return nil
}
