package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

type StaffRepository struct {
	col *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{col: db.Collection(collectionStaff)}
}

type staffDoc struct {
	ID             string    `bson:"id"`
	Username       string    `bson:"username"`
	Password       string    `bson:"password"`
	Roles          []string  `bson:"roles"`
	Created        time.Time `bson:"created"`
	BootstrapOwner bool      `bson:"bootstrap_owner,omitempty"`
}

func (d staffDoc) toDomain() *domain.Staff {
	roles := d.Roles
	if roles == nil {
		roles = []string{}
	}
	return &domain.Staff{
		ID:             d.ID,
		Username:       d.Username,
		PasswordHash:   d.Password,
		Roles:          roles,
		CreatedAt:      d.Created,
		BootstrapOwner: d.BootstrapOwner,
	}
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := staffDoc{
		ID:             s.ID,
		Username:       s.Username,
		Password:       s.PasswordHash,
		Roles:          s.Roles,
		Created:        s.CreatedAt,
		BootstrapOwner: s.BootstrapOwner,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id string) (*domain.Staff, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *StaffRepository) FindBootstrapOwner(ctx context.Context) (*domain.Staff, error) {
	return r.findOne(ctx, bson.M{"bootstrap_owner": true})
}

func (r *StaffRepository) findOne(ctx context.Context, filter bson.M) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc staffDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("find staff: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *StaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	docs, err := findAll[staffDoc](ctx, r.col, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Staff, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toDomain())
	}
	return out, nil
}

// Update sets only the fields present in patch.
func (r *StaffRepository) Update(ctx context.Context, id string, patch ports.StaffPatch) error {
	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}
	if patch.Roles != nil {
		set["roles"] = *patch.Roles
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update staff: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

// CountWithRole counts staff whose role list contains roleID.
func (r *StaffRepository) CountWithRole(ctx context.Context, roleID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"roles": roleID})
	if err != nil {
		return 0, fmt.Errorf("count staff with role: %w", err)
	}
	return n, nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.col)
}
