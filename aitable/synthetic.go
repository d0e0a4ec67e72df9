package aitable

// fixedAIPrefixLengths is the hard-wired, GS1-General-Specifications-defined
// map of two-digit AI prefix to fixed value length, reproduced from
// fixedAIprefixLengths in ai.c. A value of 0 (variableLength) means the
// prefix is variable-length (or not pre-defined). This table is independent
// of whatever Table is currently loaded: it is consulted only when
// vivifying an AI that the loaded table does not define.
const variableLength = 0

var fixedAIPrefixLengths = [100]uint8{
	18, 14, 14, 14, 16, // (00) - (04)
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 2, // (11) - (20)
	variableLength, variableLength,
	variableLength, // (23) no longer fixed-length; 235 now allocated as TPX
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	6, 6, 6, 6, 6, 6, // (31) - (36)
	variableLength, variableLength, variableLength, variableLength,
	13, // (41)
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
	variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength, variableLength,
}

// valLengthByPrefix returns the hard-wired fixed value length for a
// two-digit AI prefix, or variableLength if none is defined.
func valLengthByPrefix(ai string) uint8 {
	return fixedAIPrefixLengths[prefixIndex(ai)]
}

func prefixIndex(ai string) int {
	return int(ai[0]-'0')*10 + int(ai[1]-'0')
}

// syntheticEntry builds one of the seven vivified "unknown AI" table
// entries (ai.c's UNK/UNK2v/UNK2fN/... family), tagged by Synthetic=true
// rather than represented as distinct static sentinel objects.
func syntheticEntry(aiLen int, valLen uint8) Entry {
	ai := ""
	switch aiLen {
	case 2:
		ai = "XX"
	case 3:
		ai = "XXX"
	case 4:
		ai = "XXXX"
	}
	if valLen == variableLength {
		return Entry{
			AI:              ai,
			FNC1Required:    true,
			DLDataAttrClass: DataAttrUnknownPlaceholder,
			Components:      []Component{{CSet: CSetX, Min: 1, Max: MaxAIValueLen, Mandatory: true}},
			DataTitle:       "UNKNOWN",
			Synthetic:       true,
		}
	}
	return Entry{
		AI:              ai,
		FNC1Required:    false,
		DLDataAttrClass: DataAttrUnknownPlaceholder,
		Components:      []Component{{CSet: CSetX, Min: int(valLen), Max: int(valLen), Mandatory: true}},
		DataTitle:       "UNKNOWN",
		Synthetic:       true,
	}
}

// vivify returns the synthetic entry matching the given AI-length and
// value-length hints. aiLen is 0 when
// the prefix's AI length is itself unknown (no entry of the loaded table
// shares the prefix); that case, and any combination without a dedicated
// shape below, falls back to the generic "UNK" entry.
func vivify(aiLen int, valLen uint8) Entry {
	switch aiLen {
	case 2:
		switch valLen {
		case variableLength, 2, 14, 16, 18:
			return syntheticEntry(2, valLen)
		}
	case 3:
		switch valLen {
		case variableLength, 13:
			return syntheticEntry(3, valLen)
		}
	case 4:
		switch valLen {
		case variableLength, 6:
			return syntheticEntry(4, valLen)
		}
	}
	// Generic "UNK": unknown AI length, variable value length.
	return Entry{
		AI:              "",
		FNC1Required:    true,
		DLDataAttrClass: DataAttrUnknownPlaceholder,
		Components:      []Component{{CSet: CSetX, Min: 1, Max: MaxAIValueLen, Mandatory: true}},
		DataTitle:       "UNKNOWN",
		Synthetic:       true,
	}
}
