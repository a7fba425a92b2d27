package repository

import (
	"context"
	"encoding/json"
	"errors"

	"clinic-inventory-service/database"
	"clinic-inventory-service/models"

	"go.uber.org/zap"
)

// ErrPersistence marks a failure to persist state. Callers that mutate in
// memory before saving use it to decide whether to compensate.
var ErrPersistence = errors.New("failed to persist state")

// StateRepository loads and saves the whole application state. Save is a
// full replace; Load returns a state with default-empty collections when
// the backing store has nothing yet.
type StateRepository interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
}

// NewStateRepository returns a Mongo-backed repository when a URI is
// configured and reachable, otherwise the local JSON file store.
func NewStateRepository(ctx context.Context, mongoURI, dbName, dataFile string, log *zap.Logger) StateRepository {
	if mongoURI == "" {
		log.Info("MONGO_URI not set, using local file store", zap.String("file", dataFile))
		return NewFileStateRepository(dataFile)
	}
	db, err := database.Connect(ctx, mongoURI, dbName)
	if err != nil {
		log.Warn("MongoDB connection failed, falling back to local file store",
			zap.String("file", dataFile), zap.Error(err))
		return NewFileStateRepository(dataFile)
	}
	log.Info("Connected to MongoDB", zap.String("db", dbName))
	return NewMongoStateRepository(db)
}

// MemoryStateRepository keeps state in memory. It deep-copies on both Load
// and Save so callers never share the stored value, mirroring how the real
// stores round-trip through serialization. Used by tests.
type MemoryStateRepository struct {
	state *models.State
}

// NewMemoryStateRepository seeds an in-memory repository; a nil seed starts
// empty.
func NewMemoryStateRepository(seed *models.State) *MemoryStateRepository {
	if seed == nil {
		seed = models.NewState()
	}
	return &MemoryStateRepository{state: seed}
}

func (m *MemoryStateRepository) Load(ctx context.Context) (*models.State, error) {
	return copyState(m.state)
}

func (m *MemoryStateRepository) Save(ctx context.Context, state *models.State) error {
	copied, err := copyState(state)
	if err != nil {
		return err
	}
	m.state = copied
	return nil
}

func copyState(s *models.State) (*models.State, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	out := models.NewState()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
