package aitable

// DefaultEntries is the embedded default AI table: the table gs1ai.NewDefault
// compiles when no explicit table is supplied, and the fallback installed
// when compiling a caller-supplied table fails.
//
// This is a representative subset of the GS1 General Specifications AI
// table — covering identification keys (GTIN, SSCC, GLN, GDTI, GCN, GSRN),
// their qualifiers, a spread of fixed- and variable-length measurement and
// date AIs, and the digital-signature/serial-component AIs — rather than
// the full ~200-entry table, which the GS1 Syntax Dictionary file
// supplies to deployments that load one.
// It is large enough to exercise every branch of the dictionary, lookup,
// parser and validator logic.
//
// Ported in shape from the embedded_ai_table in aitable.inc (referenced,
// not reproduced, by the GS1 Barcode Syntax Engine's ai.c); attribute tokens
// (dlpkey, ex=, req=) are taken from the GS1 Digital Link specification's
// published key/qualifier/attribute associations.
var DefaultEntries = []Entry{
	// Identification keys
	{AI: "00", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "SSCC",
		Components: []Component{{CSet: CSetN, Min: 18, Max: 18, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "dlpkey"}},
	{AI: "01", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "GTIN",
		Components: []Component{{CSet: CSetN, Min: 14, Max: 14, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "dlpkey=22,10,21|235 ex=02"}},
	{AI: "02", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "CONTENT",
		Components: []Component{{CSet: CSetN, Min: 14, Max: 14, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "ex=01"}},
	{AI: "414", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "LOC",
		Components: []Component{{CSet: CSetN, Min: 13, Max: 13, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "dlpkey=254"}},
	{AI: "415", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "PAY",
		Components: []Component{{CSet: CSetN, Min: 13, Max: 13, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "dlpkey=8020"}},
	{AI: "8017", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "GSRNP",
		Components: []Component{{CSet: CSetN, Min: 18, Max: 18, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "dlpkey=8019"}},
	{AI: "8018", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "GSRN",
		Components: []Component{{CSet: CSetN, Min: 18, Max: 18, Mandatory: true, Linters: []string{"csum"}}},
		Attrs:      Attrs{Raw: "dlpkey=8019"}},
	{AI: "8004", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "GIAI",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Mandatory: true}},
		Attrs:      Attrs{Raw: "dlpkey"}},
	{AI: "253", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "GDTI",
		Components: []Component{
			{CSet: CSetN, Min: 13, Max: 13, Mandatory: true, Linters: []string{"csum"}},
			{CSet: CSetX, Min: 1, Max: 17, Mandatory: false},
		},
		Attrs: Attrs{Raw: "dlpkey"}},
	{AI: "255", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "GCN",
		Components: []Component{
			{CSet: CSetN, Min: 13, Max: 13, Mandatory: true, Linters: []string{"csum"}},
			{CSet: CSetN, Min: 1, Max: 12, Mandatory: false},
		},
		Attrs: Attrs{Raw: "dlpkey"}},
	{AI: "8003", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "GRAI",
		Components: []Component{
			{CSet: CSetN, Min: 14, Max: 14, Mandatory: true, Linters: []string{"csum"}},
			{CSet: CSetX, Min: 0, Max: 16, Mandatory: false},
		},
		Attrs: Attrs{Raw: "dlpkey"}},

	// Qualifiers (never primary keys themselves)
	{AI: "10", FNC1Required: true, DLDataAttrClass: DataAttrNone, DataTitle: "BATCH/LOT",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Mandatory: true}}},
	{AI: "21", FNC1Required: true, DLDataAttrClass: DataAttrNone, DataTitle: "SERIAL",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Mandatory: true}}},
	{AI: "22", FNC1Required: true, DLDataAttrClass: DataAttrNone, DataTitle: "CPV",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Mandatory: true}}},
	{AI: "235", FNC1Required: true, DLDataAttrClass: DataAttrNone, DataTitle: "TPX",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 28, Mandatory: true}}},
	{AI: "254", FNC1Required: true, DLDataAttrClass: DataAttrNone, DataTitle: "GLN EXT",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Mandatory: true}}},
	{AI: "8019", FNC1Required: true, DLDataAttrClass: DataAttrNone, DataTitle: "SRIN",
		Components: []Component{{CSet: CSetN, Min: 1, Max: 10, Mandatory: true}}},
	{AI: "8020", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "REF NO",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 25, Mandatory: true}}},

	// Dates, counts, and other fixed- and variable-length attributes
	{AI: "11", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "PROD DATE",
		Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Mandatory: true, Linters: []string{"yymmdd"}}}},
	{AI: "17", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "USE BY",
		Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Mandatory: true, Linters: []string{"yymmdd"}}}},
	{AI: "20", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "VARIANT",
		Components: []Component{{CSet: CSetN, Min: 2, Max: 2, Mandatory: true}}},
	{AI: "30", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "VAR COUNT",
		Components: []Component{{CSet: CSetN, Min: 1, Max: 8, Mandatory: true}}},
	{AI: "37", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "COUNT",
		Components: []Component{{CSet: CSetN, Min: 1, Max: 8, Mandatory: true}}},
	{AI: "3100", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "NET WEIGHT (kg)",
		Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Mandatory: true}}},
	{AI: "3101", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "NET WEIGHT (kg)",
		Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Mandatory: true}}},
	{AI: "3922", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "PRICE",
		Components: []Component{{CSet: CSetN, Min: 1, Max: 15, Mandatory: true}}},
	{AI: "400", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "ORDER NUMBER",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Mandatory: true}}},
	{AI: "401", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "CONSIGNMENT",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Mandatory: true}}},
	{AI: "410", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "SHIP TO LOC",
		Components: []Component{{CSet: CSetN, Min: 13, Max: 13, Mandatory: true, Linters: []string{"csum"}}}},
	{AI: "421", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "SHIP TO POST",
		Components: []Component{
			{CSet: CSetN, Min: 3, Max: 3, Mandatory: true, Linters: []string{"iso3166"}},
			{CSet: CSetX, Min: 1, Max: 9, Mandatory: true},
		}},
	{AI: "422", FNC1Required: false, DLDataAttrClass: DataAttrAllowed, DataTitle: "ORIGIN",
		Components: []Component{{CSet: CSetN, Min: 3, Max: 3, Mandatory: true, Linters: []string{"iso3166"}}}},
	{AI: "8008", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "PROD TIME",
		Components: []Component{
			{CSet: CSetN, Min: 6, Max: 6, Mandatory: true, Linters: []string{"yymmdd"}},
			{CSet: CSetN, Min: 0, Max: 4, Mandatory: false},
		}},
	{AI: "8012", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "VERSION",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Mandatory: true}}},
	{AI: "8030", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "DIGSIG",
		Components: []Component{{CSet: CSetZ, Min: 1, Max: 500, Mandatory: true}}},
	{AI: "90", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "INTERNAL",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Mandatory: true}}},
	{AI: "91", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "INTERNAL",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 90, Mandatory: true}}},
	{AI: "99", FNC1Required: true, DLDataAttrClass: DataAttrAllowed, DataTitle: "INTERNAL",
		Components: []Component{{CSet: CSetX, Min: 1, Max: 90, Mandatory: true}}},
}
