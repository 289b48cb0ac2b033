package service

import "github.com/MKhiriev/go-vocab-sync/models"

// Per-element validation for push batches. An element that fails here is
// skipped, never persisted, and never aborts the batch.

func validateDeckPayload(p models.DeckPayload) error {
	if p.ID <= 0 {
		return ErrValidationMissingLocalID
	}
	if p.Name == "" {
		return ErrValidationMissingName
	}
	return nil
}

func validateVocabularyPayload(p models.VocabularyPayload) error {
	if p.ID <= 0 {
		return ErrValidationMissingLocalID
	}
	if p.DeckID <= 0 {
		return ErrValidationMissingDeckRef
	}
	if p.Front == "" || p.Back == "" {
		return ErrValidationMissingCardSides
	}
	return nil
}

func validateVocabularySrsPayload(p models.VocabularySrsPayload, knownVocabularyIDs map[int64]struct{}) error {
	if p.VocabularyID <= 0 {
		return ErrValidationMissingVocabularyRef
	}
	if _, ok := knownVocabularyIDs[p.VocabularyID]; !ok {
		return ErrValidationUnknownVocabularyRef
	}
	return nil
}

func validateStudySessionPayload(p models.StudySessionPayload, knownVocabularyIDs map[int64]struct{}) error {
	if p.ID <= 0 {
		return ErrValidationMissingLocalID
	}
	if p.DeckID <= 0 {
		return ErrValidationMissingDeckRef
	}
	if p.VocabularyID <= 0 {
		return ErrValidationMissingVocabularyRef
	}
	if _, ok := knownVocabularyIDs[p.VocabularyID]; !ok {
		return ErrValidationUnknownVocabularyRef
	}
	if p.SessionType == "" || p.Result == "" {
		return ErrValidationMissingSessionFields
	}
	if p.CreatedAt.IsZero() {
		return ErrValidationMissingCreatedAt
	}
	if p.TimeSpent < 0 {
		return ErrValidationNegativeTimeSpent
	}
	return nil
}
