package preferences

import (
	"fjacquet/syp-convert/internal/kvstore"
	"fjacquet/syp-convert/internal/logging"
)

// Store reads and writes Preferences in a key-value store. It holds no
// preference state of its own.
type Store struct {
	kv     kvstore.Store
	key    string
	logger logging.Logger
}

// NewStore returns a Store that keeps the record under key in kv. An empty key
// means StorageKey.
func NewStore(kv kvstore.Store, key string, logger logging.Logger) *Store {
	if key == "" {
		key = StorageKey
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{
		kv:     kv,
		key:    key,
		logger: logger.WithField(logging.FieldStorageKey, key),
	}
}

// Load returns the stored preferences, or Default when the record is absent,
// unreadable or malformed. It never fails.
func (s *Store) Load() Preferences {
	data, found, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.WithError(err).Warn("Could not read preferences, using defaults")
		return Default()
	}
	if !found {
		s.logger.Debug("No stored preferences, using defaults")
		return Default()
	}

	p, err := decode([]byte(data))
	if err != nil {
		s.logger.Debug("Stored preferences unreadable, using defaults",
			logging.Field{Key: logging.FieldReason, Value: err.Error()})
		return p
	}

	s.logger.Debug("Loaded preferences",
		logging.Field{Key: logging.FieldLanguage, Value: p.Language.String()},
		logging.Field{Key: logging.FieldDarkMode, Value: p.DarkMode})
	return p
}

// Save overwrites the stored record with p. A write failure is logged and
// otherwise ignored.
func (s *Store) Save(p Preferences) {
	if err := s.kv.Set(s.key, string(Encode(p))); err != nil {
		s.logger.WithError(err).Warn("Could not persist preferences")
		return
	}
	s.logger.Debug("Persisted preferences",
		logging.Field{Key: logging.FieldLanguage, Value: p.Language.String()},
		logging.Field{Key: logging.FieldDarkMode, Value: p.DarkMode})
}
