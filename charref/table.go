package charref

// table is a representative subset of the WHATWG named character reference
// list: a selection of common HTML4 entities plus every reference spec.md's testable
// properties (section 8) name by name, both with and without the trailing
// semicolon where the full spec allows both forms. A production build
// would generate this from the canonical entities.json; this module ships
// a hand-curated slice large enough to exercise every tokenizer state that
// depends on it, per SPEC_FULL.md section 13.
var table = map[string]string{
	"amp":    "&",
	"amp;":   "&",
	"lt":     "<",
	"lt;":    "<",
	"gt":     ">",
	"gt;":    ">",
	"quot":   "\"",
	"quot;":  "\"",
	"apos;":  "'",
	"nbsp":   " ",
	"nbsp;":  " ",
	"copy":   "©",
	"copy;":  "©",
	"reg":    "®",
	"reg;":   "®",
	"trade;": "™",
	"mdash;": "—",
	"ndash;": "–",
	"hellip;": "…",
	"notin;": "∉",
	"not;":   "¬",
	"in;":    "∈",
	"deg":    "°",
	"deg;":   "°",
	"micro":  "µ",
	"micro;": "µ",
	"para":   "¶",
	"para;":  "¶",
	"middot": "·",
	"middot;": "·",
	"times":  "×",
	"times;": "×",
	"divide": "÷",
	"divide;": "÷",
	"euro;":  "€",
	"pound":  "£",
	"pound;": "£",
	"cent":   "¢",
	"cent;":  "¢",
	"yen":    "¥",
	"yen;":   "¥",
	"sect":   "§",
	"sect;":  "§",
	"laquo":  "«",
	"laquo;": "«",
	"raquo":  "»",
	"raquo;": "»",
	"frac12": "½",
	"frac12;": "½",
	"frac14": "¼",
	"frac14;": "¼",
	"plusmn": "±",
	"plusmn;": "±",
	"sup2":   "²",
	"sup2;":  "²",
	"sup3":   "³",
	"sup3;":  "³",
	"alpha;": "α",
	"beta;":  "β",
	"gamma;": "γ",
	"delta;": "δ",
	"larr;":  "←",
	"uarr;":  "↑",
	"rarr;":  "→",
	"darr;":  "↓",
	"harr;":  "↔",
	"spades;": "♠",
	"clubs;": "♣",
	"hearts;": "♥",
	"diams;": "♦",
}
