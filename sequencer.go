package main

// Sequencer walks an ordered question catalog, keeping the current index
// and a cache of the current question in room storage. Caching the question
// itself means in-flight guesses score against a stable target even if the
// index advances underneath them.
type Sequencer struct {
	storage RoomStorage
	catalog []Question
}

func newSequencer(storage RoomStorage, catalog []Question) *Sequencer {
	return &Sequencer{storage: storage, catalog: catalog}
}

func (s *Sequencer) index() int {
	var idx int
	if !getJSON(s.storage, keyQuestionIndex, &idx) {
		return 0
	}
	return idx
}

// totalRounds is the catalog length.
func (s *Sequencer) totalRounds() int {
	return len(s.catalog)
}

// current returns the catalog entry at the stored index, or false if the
// catalog is empty or already exhausted.
func (s *Sequencer) current() (Question, bool) {
	idx := s.index()
	if idx < 0 || idx >= len(s.catalog) {
		return Question{}, false
	}
	return s.catalog[idx], true
}

// reset rewinds to the first question, persists index and question cache,
// and returns the question. Returns false for an empty catalog.
func (s *Sequencer) reset() (Question, bool) {
	if len(s.catalog) == 0 {
		return Question{}, false
	}
	putJSON(s.storage, keyQuestionIndex, 0)
	putJSON(s.storage, keyCurrentQuestion, s.catalog[0])
	return s.catalog[0], true
}

// advance increments the stored index and returns the new question, or
// false once the catalog is exhausted. The exhausted index is persisted so
// repeated advances stay exhausted rather than wrapping or panicking.
func (s *Sequencer) advance() (Question, bool) {
	idx := s.index() + 1
	putJSON(s.storage, keyQuestionIndex, idx)

	if idx >= len(s.catalog) {
		return Question{}, false
	}

	putJSON(s.storage, keyCurrentQuestion, s.catalog[idx])
	return s.catalog[idx], true
}

// cachedQuestion returns the question guesses are currently scored
// against, if one has been cached since the game started.
func (s *Sequencer) cachedQuestion() (Question, bool) {
	var q Question
	if !getJSON(s.storage, keyCurrentQuestion, &q) {
		return Question{}, false
	}
	return q, true
}
