package repository

import (
	"context"
	"fmt"

	"clinic-inventory-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStateRepository spreads the state blob over one collection per
// top-level key. Save is a full replace of every collection, matching the
// load-mutate-save-everything contract of the file store.
type MongoStateRepository struct {
	db *mongo.Database
}

// NewMongoStateRepository creates a Mongo-backed state repository.
func NewMongoStateRepository(db *mongo.Database) *MongoStateRepository {
	return &MongoStateRepository{db: db}
}

// userDoc is a User keyed by email for storage.
type userDoc struct {
	Email      string `bson:"_id"`
	Name       string `bson:"name,omitempty"`
	Role       string `bson:"role,omitempty"`
	Department string `bson:"department,omitempty"`
}

// nameDoc stores a role or department name.
type nameDoc struct {
	Name string `bson:"name"`
}

func (r *MongoStateRepository) Load(ctx context.Context) (*models.State, error) {
	state := models.NewState()

	admins, err := r.loadUsers(ctx, "admins")
	if err != nil {
		return nil, err
	}
	state.Admins = admins

	staff, err := r.loadUsers(ctx, "staff")
	if err != nil {
		return nil, err
	}
	state.Staff = staff

	roles, err := r.loadNames(ctx, "roles")
	if err != nil {
		return nil, err
	}
	state.Roles = roles

	departments, err := r.loadNames(ctx, "departments")
	if err != nil {
		return nil, err
	}
	state.Departments = departments

	cur, err := r.db.Collection("items").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if err := cur.All(ctx, &state.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	cur, err = r.db.Collection("reservations").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	if err := cur.All(ctx, &state.Reservations); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}

	state.EnsureDefaults()
	return state, nil
}

func (r *MongoStateRepository) loadUsers(ctx context.Context, collection string) (map[string]models.User, error) {
	cur, err := r.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	users := make(map[string]models.User, len(docs))
	for _, d := range docs {
		if d.Email == "" {
			continue
		}
		users[d.Email] = models.User{Name: d.Name, Role: d.Role, Department: d.Department}
	}
	return users, nil
}

func (r *MongoStateRepository) loadNames(ctx context.Context, collection string) ([]string, error) {
	cur, err := r.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	var docs []nameDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (r *MongoStateRepository) Save(ctx context.Context, state *models.State) error {
	if err := r.replaceUsers(ctx, "admins", state.Admins); err != nil {
		return err
	}
	if err := r.replaceUsers(ctx, "staff", state.Staff); err != nil {
		return err
	}
	if err := r.replaceNames(ctx, "roles", state.Roles); err != nil {
		return err
	}
	if err := r.replaceNames(ctx, "departments", state.Departments); err != nil {
		return err
	}

	items := make([]interface{}, 0, len(state.Items))
	for _, it := range state.Items {
		items = append(items, it)
	}
	if err := r.replaceAll(ctx, "items", items); err != nil {
		return err
	}

	reservations := make([]interface{}, 0, len(state.Reservations))
	for _, res := range state.Reservations {
		reservations = append(reservations, res)
	}
	return r.replaceAll(ctx, "reservations", reservations)
}

func (r *MongoStateRepository) replaceUsers(ctx context.Context, collection string, users map[string]models.User) error {
	docs := make([]interface{}, 0, len(users))
	for email, u := range users {
		docs = append(docs, userDoc{Email: email, Name: u.Name, Role: u.Role, Department: u.Department})
	}
	return r.replaceAll(ctx, collection, docs)
}

func (r *MongoStateRepository) replaceNames(ctx context.Context, collection string, names []string) error {
	docs := make([]interface{}, 0, len(names))
	for _, n := range names {
		docs = append(docs, nameDoc{Name: n})
	}
	return r.replaceAll(ctx, collection, docs)
}

func (r *MongoStateRepository) replaceAll(ctx context.Context, collection string, docs []interface{}) error {
	col := r.db.Collection(collection)
	if _, err := col.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("%w: clear %s: %v", ErrPersistence, collection, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrPersistence, collection, err)
	}
	return nil
}
