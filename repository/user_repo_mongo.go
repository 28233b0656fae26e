package repository

import (
	"context"
	"errors"
	"time"

	"alexportfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, username, passwordHash, role string) (int64, error) {
	db := r.DB.Database(mongoDatabase)

	existing, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateUsername
	}

	id, err := nextSequence(ctx, db, "users")
	if err != nil {
		return 0, err
	}

	user := &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := db.Collection("users").InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return id, nil
}

func (r *MongoUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.Database(mongoDatabase).Collection("users").
		FindOne(ctx, bson.M{"username": username}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	cur, err := r.DB.Database(mongoDatabase).Collection("users").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.UserInfo
	for cur.Next(ctx) {
		var u models.UserInfo
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, cur.Err()
}

func (r *MongoUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.DB.Database(mongoDatabase).Collection("users").
		CountDocuments(ctx, bson.M{"role": role})
}
