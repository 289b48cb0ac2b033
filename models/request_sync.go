package models

// PushRequest is the batch a client submits for reconciliation: up to four
// independent sequences of client-shaped payloads, one per entity kind. Any
// subset may be omitted or empty. Kinds are always processed in dependency
// order — decks, vocabularies, scheduling records, sessions — so that a
// single batch stays internally consistent when downstream entities
// reference upstream ones created in the same call.
type PushRequest struct {
	Decks         []DeckPayload          `json:"decks"`
	Vocabularies  []VocabularyPayload    `json:"vocabularies"`
	VocabularySrs []VocabularySrsPayload `json:"vocabulary_srs"`
	StudySessions []StudySessionPayload  `json:"study_sessions"`
}

// Size returns the total number of payload elements across all kinds.
func (r PushRequest) Size() int {
	return len(r.Decks) + len(r.Vocabularies) + len(r.VocabularySrs) + len(r.StudySessions)
}
