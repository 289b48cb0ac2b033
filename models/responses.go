package models

// SyncStats reports, per entity kind, how many payload elements were
// accepted by a push (counting both creates and merges) or exported by a
// pull. On a push the accepted count may be lower than the submitted count
// when elements failed validation and were skipped; the client detects the
// discrepancy by comparing the two.
type SyncStats struct {
	Decks         int `json:"decks"`
	Vocabularies  int `json:"vocabularies"`
	VocabularySrs int `json:"vocabulary_srs"`
	StudySessions int `json:"study_sessions"`
}

// PushResponse acknowledges a reconciliation batch.
type PushResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Stats   SyncStats `json:"stats"`
}

// Snapshot is a full client-shape export of one owner's state across the
// four entity kinds. Arrays are never null: an owner with no data receives
// empty arrays the client can restore from directly.
type Snapshot struct {
	Decks         []DeckPayload          `json:"decks"`
	Vocabularies  []VocabularyPayload    `json:"vocabularies"`
	VocabularySrs []VocabularySrsPayload `json:"vocabulary_srs"`
	StudySessions []StudySessionPayload  `json:"study_sessions"`
}

// Stats derives per-kind element counts from the snapshot.
func (s Snapshot) Stats() SyncStats {
	return SyncStats{
		Decks:         len(s.Decks),
		Vocabularies:  len(s.Vocabularies),
		VocabularySrs: len(s.VocabularySrs),
		StudySessions: len(s.StudySessions),
	}
}

// PullResponse carries a full snapshot back to the client.
type PullResponse struct {
	Success bool      `json:"success"`
	Data    Snapshot  `json:"data"`
	Stats   SyncStats `json:"stats"`
}

// ErrorResponse is the structured failure envelope returned for rejected or
// failed calls. Message is human-readable and intentionally generic; details
// stay in the server logs.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse wraps the profile record returned by the profile upsert.
type UserResponse struct {
	User User `json:"user"`
}
