package inmem

import (
	"context"
	"fmt"

	"trainforum/pkg/model"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"golang.org/x/crypto/bcrypt"
)

// roleAssignment is one user/role edge in the memdb table.
type roleAssignment struct {
	ID     string
	UserID string
	Role   string
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"users": {
			Name: "users",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"username": {
					Name:    "username",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "UserName"},
				},
			},
		},
		"roles": {
			Name: "roles",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"user": {
					Name:    "user",
					Indexer: &memdb.StringFieldIndex{Field: "UserID"},
				},
			},
		},
	},
}

// UserStore is an in-memory credential store on go-memdb. memdb serializes
// write transactions, so the username existence check and the insert below
// form one atomic unit; two concurrent registrations of the same name cannot
// both pass.
type UserStore struct {
	db *memdb.MemDB
}

func NewUserStore() (*UserStore, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	return &UserStore{db: db}, nil
}

// FindByName implements model.UserStore.
func (us *UserStore) FindByName(_ context.Context, username string) (*model.ForumUser, error) {
	txn := us.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("users", "username", username)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, model.ErrUserNotFound
	}
	user := *raw.(*model.ForumUser)
	return &user, nil
}

// FindByID implements model.UserStore.
func (us *UserStore) FindByID(_ context.Context, id string) (*model.ForumUser, error) {
	txn := us.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("users", "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, model.ErrUserNotFound
	}
	user := *raw.(*model.ForumUser)
	return &user, nil
}

// Create implements model.UserStore.
func (us *UserStore) Create(_ context.Context, user *model.ForumUser, password string, roles ...string) error {
	if err := model.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	txn := us.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First("users", "username", user.UserName)
	if err != nil {
		return err
	}
	if existing != nil {
		return model.ErrUsernameTaken
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.PasswordHash = string(hash)

	stored := *user
	if err := txn.Insert("users", &stored); err != nil {
		return err
	}
	for _, role := range roles {
		assignment := &roleAssignment{
			ID:     stored.ID + "/" + role,
			UserID: stored.ID,
			Role:   role,
		}
		if err := txn.Insert("roles", assignment); err != nil {
			return err
		}
	}
	txn.Commit()
	return nil
}

// CheckPassword implements model.UserStore.
func (us *UserStore) CheckPassword(_ context.Context, user *model.ForumUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// GetRoles implements model.UserStore.
func (us *UserStore) GetRoles(_ context.Context, user *model.ForumUser) ([]string, error) {
	txn := us.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get("roles", "user", user.ID)
	if err != nil {
		return nil, err
	}
	var roles []string
	for raw := it.Next(); raw != nil; raw = it.Next() {
		roles = append(roles, raw.(*roleAssignment).Role)
	}
	return roles, nil
}
