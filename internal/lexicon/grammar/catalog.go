package grammar

import "github.com/heartmarshall/lexdb/internal/domain"

// Decoder grammars. Each is anchored at the start of the remaining text.
const (
	// lex_filenum ss_type w_cnt
	DecoderHeader Name = "decoder.header"
	// word lex_id
	DecoderWord Name = "decoder.word"
	// p_cnt
	DecoderPointerCount Name = "decoder.pointer_count"
	// pointer_symbol synset_offset pos source/target
	DecoderPointer Name = "decoder.pointer"
	// f_cnt
	DecoderFrameCount Name = "decoder.frame_count"
	// + f_num w_num
	DecoderFrame Name = "decoder.frame"
)

// Whole-line grammars of the ancillary readers.
const (
	ExceptionPair   Name = "exceptions.pair"
	ExceptionTriple Name = "exceptions.triple"
	FrequencyLine   Name = "frequencies.line"
	SenseIndexLine  Name = "senses.line"
)

// SynsetWithConcept names the record grammar of pos that expects a trailing
// concept-mapping suffix.
func SynsetWithConcept(pos domain.POS) Name {
	return Name(pos.String() + ".synset_concept")
}

// SynsetPlain names the record grammar of pos without a concept mapping.
func SynsetPlain(pos domain.POS) Name {
	return Name(pos.String() + ".synset")
}

// Record grammars capture: 1 offset, 2 word/pointer body, 3 gloss and, for
// the concept variants, 4 the concept mapping.
const (
	synsetConcept         = `^([0-9]{8})([\S\s]+)\|\s([\S\s]+?)\s(\(?&%\S+[\S\s]+)$`
	synsetConceptVerb     = `^([0-9]{8})([^|]+)\|\s([\S\s]+?)\s(\(?&%\S+[\S\s]+)$`
	synsetConceptAdverb   = `^([0-9]{8})([\S\s]+)\|\s([\S\s]+)\s(\(?&%\S+[\S\s]+)$`
	synsetPlainRecord     = `^([0-9]{8})([\S\s]+)\|\s([\S\s]+)$`
	synsetPlainVerbRecord = `^([0-9]{8})([^|]+)\|\s([\S\s]+)$`
)

// Catalog returns the fixed grammar definitions in registry order.
func Catalog() []Definition {
	return []Definition{
		{Name: DecoderHeader, Expr: `^\s*\d\d\s\S\s[0-9a-f]{2}\s`},
		{Name: DecoderWord, Expr: `^([a-zA-Z0-9'._\-]\S*)\s([0-9a-f])\s`},
		{Name: DecoderPointerCount, Expr: `^\d{3}\s?`},
		{Name: DecoderPointer, Expr: `^(\S\S?)\s([0-9]{8})\s(.)\s([0-9a-f]{4})\s?`},
		{Name: DecoderFrameCount, Expr: `^\d\d\s`},
		{Name: DecoderFrame, Expr: `^\+\s(\d\d)\s(\d\d)\s?`},

		{Name: SynsetWithConcept(domain.POSNoun), Expr: synsetConcept},
		{Name: SynsetPlain(domain.POSNoun), Expr: synsetPlainRecord},
		{Name: SynsetWithConcept(domain.POSVerb), Expr: synsetConceptVerb},
		{Name: SynsetPlain(domain.POSVerb), Expr: synsetPlainVerbRecord},
		{Name: SynsetWithConcept(domain.POSAdjective), Expr: synsetConcept},
		{Name: SynsetPlain(domain.POSAdjective), Expr: synsetPlainRecord},
		{Name: SynsetWithConcept(domain.POSAdverb), Expr: synsetConceptAdverb},
		{Name: SynsetPlain(domain.POSAdverb), Expr: synsetPlainRecord},

		{Name: ExceptionPair, Expr: `^(\S+)\s+(\S+)$`},
		{Name: ExceptionTriple, Expr: `^(\S+)\s+(\S+)\s+(\S+)$`},
		{Name: FrequencyLine, Expr: `^Word: ([^ ]+) Values: (.*)$`},
		{Name: SenseIndexLine, Expr: `^([^%]+)%([^:]*):[^:]*:[^:]*:[^:]*:[^ ]* ([^ ]+) ([^ ]+) .*$`},
	}
}
