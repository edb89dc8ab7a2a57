package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

const departmentCollection = "departments"

type MongoDepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *MongoDepartmentRepository {
	return &MongoDepartmentRepository{coll: db.Collection(departmentCollection)}
}

type mongoDepartment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	City      string             `bson:"city"`
	State     string             `bson:"state"`
	CreatedAt int64              `bson:"created_at"`
}

func (md *mongoDepartment) toDomain() *domain.Department {
	return &domain.Department{
		ID:        md.ID.Hex(),
		Name:      md.Name,
		Email:     md.Email,
		City:      md.City,
		State:     md.State,
		CreatedAt: unixToTime(md.CreatedAt),
	}
}

func (r *MongoDepartmentRepository) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	doc := mongoDepartment{
		Name:      dept.Name,
		Email:     dept.Email,
		City:      dept.City,
		State:     dept.State,
		CreatedAt: dept.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDepartmentExists
		}
		return nil, fmt.Errorf("insert department: %w", err)
	}

	created := *dept
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoDepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoDepartmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoDepartmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Department, error) {
	var md mongoDepartment
	if err := r.coll.FindOne(ctx, filter).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDepartmentRepository) Update(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(dept.ID)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":  dept.Name,
		"email": dept.Email,
		"city":  dept.City,
		"state": dept.State,
	}})
	if err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDepartmentNotFound
	}
	return dept, nil
}

func (r *MongoDepartmentRepository) Delete(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oid, _ := primitive.ObjectIDFromHex(id)
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return nil, fmt.Errorf("delete department: %w", err)
	}
	return dept, nil
}

func (r *MongoDepartmentRepository) ListAll(ctx context.Context) ([]domain.Department, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	var depts []domain.Department
	for cur.Next(ctx) {
		var md mongoDepartment
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		depts = append(depts, *md.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return depts, nil
}

func (r *MongoDepartmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count departments: %w", err)
	}
	return n, nil
}
