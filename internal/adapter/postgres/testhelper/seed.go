package testhelper

import (
	"testing"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
)

// SeedIndex builds a small index covering every exported table: two noun
// synsets joined by a hypernym edge plus one dangling edge, a verb synset
// with synset-wide and per-word frames, exceptions and senses.
func SeedIndex(t *testing.T) *index.Index {
	t.Helper()
	idx := index.New()

	entity := domain.NewSynsetID(domain.POSNoun, "00001740")
	idx.SetGloss(entity, "that which is perceived to have its own distinct existence")
	idx.SetConcept(entity, "&%Entity=")
	idx.AddMember(entity, "entity")

	physical := domain.NewSynsetID(domain.POSNoun, "00001930")
	idx.SetGloss(physical, "an entity that has physical existence")
	idx.AddMember(physical, "physical_entity")
	idx.AddRelation(domain.Relation{Type: "hypernym", Source: physical, Target: entity})
	idx.AddRelation(domain.Relation{Type: "hyponym", Source: physical, Target: domain.NewSynsetID(domain.POSNoun, "99999999")})

	breathe := domain.NewSynsetID(domain.POSVerb, "00001740")
	idx.SetGloss(breathe, "draw air into, and expel out of, the lungs")
	idx.SetConcept(breathe, "&%Breathing+")
	idx.AddMember(breathe, "breathe")
	idx.AddMember(breathe, "respire")
	idx.BindFrame(index.FrameKey{Offset: "00001740"}, "02")
	idx.BindFrame(index.FrameKey{Offset: "00001740", Word: "breathe"}, "08")

	idx.AddException(domain.POSNoun, "geese", "goose")
	idx.AddException(domain.POSVerb, "bade", "bid")
	idx.AddExceptionForm(domain.POSVerb, "bide", "bade")

	idx.AddSense(domain.SenseKey{Word: "entity", POS: domain.POSNoun, Number: "1"}, "00001740")
	idx.AddSense(domain.SenseKey{Word: "breathe", POS: domain.POSVerb, Number: "1"}, "00001740")
	return idx
}
