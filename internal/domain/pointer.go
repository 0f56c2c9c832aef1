package domain

// pointerNames maps the terse pointer symbols of the synset data files to
// descriptive relation names.
var pointerNames = map[string]string{
	"!":  "antonym",
	"@":  "hypernym",
	"@i": "instance hypernym",
	"~":  "hyponym",
	"~i": "instance hyponym",
	"#m": "member holonym",
	"#s": "substance holonym",
	"#p": "part holonym",
	"%m": "member meronym",
	"%s": "substance meronym",
	"%p": "part meronym",
	"=":  "attribute",
	"+":  "derivationally related",
	";c": "domain topic",
	"-c": "member topic",
	";r": "domain region",
	"-r": "member region",
	";u": "domain usage",
	"-u": "member usage",
	"*":  "entailment",
	">":  "cause",
	"^":  "also see",
	"$":  "verb group",
	"&":  "similar to",
	"<":  "participle",
	"\\": "pertainym",
}

// PointerName translates a pointer symbol to its relation name. Unknown
// symbols are returned unchanged with ok=false.
func PointerName(symbol string) (name string, ok bool) {
	name, ok = pointerNames[symbol]
	if !ok {
		return symbol, false
	}
	return name, true
}
