package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

const resetCollection = "reset_requests"

// MongoResetRepository persists password-reset requests. Request ids are
// application-generated UUIDs, stored as the document _id.
type MongoResetRepository struct {
	coll *mongo.Collection
}

func NewResetRepository(db *mongo.Database) *MongoResetRepository {
	return &MongoResetRepository{coll: db.Collection(resetCollection)}
}

type mongoReset struct {
	ID        string `bson:"_id"`
	UserID    string `bson:"user_id"`
	OTPHash   string `bson:"otp_hash"`
	Verified  bool   `bson:"verified"`
	CreatedAt int64  `bson:"created_at"`
}

func (mr *mongoReset) toDomain() *domain.ResetRequest {
	return &domain.ResetRequest{
		ID:        mr.ID,
		UserID:    mr.UserID,
		OTPHash:   mr.OTPHash,
		Verified:  mr.Verified,
		CreatedAt: unixToTime(mr.CreatedAt),
	}
}

func (r *MongoResetRepository) Create(ctx context.Context, req *domain.ResetRequest) (*domain.ResetRequest, error) {
	doc := mongoReset{
		ID:        req.ID,
		UserID:    req.UserID,
		OTPHash:   req.OTPHash,
		Verified:  req.Verified,
		CreatedAt: req.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert reset request: %w", err)
	}
	return req, nil
}

func (r *MongoResetRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.ResetRequest, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user_id": userID})
}

func (r *MongoResetRepository) FindVerified(ctx context.Context, id string) (*domain.ResetRequest, error) {
	return r.findOne(ctx, bson.M{"_id": id, "verified": true})
}

func (r *MongoResetRepository) findOne(ctx context.Context, filter bson.M) (*domain.ResetRequest, error) {
	var mr mongoReset
	if err := r.coll.FindOne(ctx, filter).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrResetNotFound
		}
		return nil, fmt.Errorf("find reset request: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *MongoResetRepository) MarkVerified(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"verified": true}})
	if err != nil {
		return fmt.Errorf("mark reset verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResetNotFound
	}
	return nil
}

func (r *MongoResetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reset request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResetNotFound
	}
	return nil
}
