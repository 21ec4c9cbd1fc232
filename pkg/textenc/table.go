package textenc

import "strings"

// Encoding pairs a charset name accepted by NewDecoder with a
// human-readable description for listings.
type Encoding struct {
	Name        string
	Description string
}

// Table lists the supported source encodings in presentation order:
// the universal encodings first, then the ISO 8859 family and its
// Windows codepage siblings grouped by script, then the CJK families.
var Table = []Encoding{
	{"UTF-8", "Universal (UTF-8)"},
	{"UTF-16", "Universal (UTF-16)"},
	{"UTF-16BE", "Universal (big endian UTF-16)"},
	{"UTF-16LE", "Universal (little endian UTF-16)"},
	{"GB18030", "Universal, Chinese (GB18030)"},

	{"ISO-8859-15", "Western European (Latin-9)"},
	{"Windows-1252", "Western European (Windows-1252)"},
	{"IBM850", "Western European (IBM 00850)"},
	{"ISO-8859-2", "Eastern European (Latin-2)"},
	{"Windows-1250", "Eastern European (Windows-1250)"},
	{"ISO-8859-3", "Esperanto (Latin-3)"},
	{"ISO-8859-10", "Nordic (Latin-6)"},
	{"Windows-1251", "Cyrillic (Windows-1251)"},
	{"KOI8-R", "Russian (KOI8-R)"},
	{"KOI8-U", "Ukrainian (KOI8-U)"},
	{"ISO-8859-6", "Arabic (ISO 8859-6)"},
	{"Windows-1256", "Arabic (Windows-1256)"},
	{"ISO-8859-7", "Greek (ISO 8859-7)"},
	{"Windows-1253", "Greek (Windows-1253)"},
	{"ISO-8859-8", "Hebrew (ISO 8859-8)"},
	{"Windows-1255", "Hebrew (Windows-1255)"},
	{"ISO-8859-9", "Turkish (ISO 8859-9)"},
	{"Windows-1254", "Turkish (Windows-1254)"},
	{"ISO-8859-11", "Thai (TIS 620-2533/ISO 8859-11)"},
	{"Windows-874", "Thai (Windows-874)"},
	{"ISO-8859-13", "Baltic (Latin-7)"},
	{"Windows-1257", "Baltic (Windows-1257)"},
	{"ISO-8859-14", "Celtic (Latin-8)"},
	{"ISO-8859-16", "South-Eastern European (Latin-10)"},

	{"EUC-CN", "Simplified Chinese Unix (EUC-CN)"},
	{"EUC-JP", "Japanese Unix (EUC-JP)"},
	{"Shift_JIS", "Japanese (Shift JIS)"},
	{"CP949", "Korean (EUC-KR/CP949)"},
	{"Big5", "Traditional Chinese (Big5)"},
	{"Big5-HKSCS", "Hong-Kong Supplementary (HKSCS)"},
	{"Windows-1258", "Vietnamese (Windows-1258)"},
}

// Describe returns the description for a table entry, matching the
// name case-insensitively the way NewDecoder does.
func Describe(name string) (string, bool) {
	for _, e := range Table {
		if strings.EqualFold(e.Name, name) {
			return e.Description, true
		}
	}
	return "", false
}
