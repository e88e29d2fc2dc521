package storage

import (
	"context"

	"civicconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RemoteStore is the remote persistence collaborator. The session core
// does not depend on it for any of its guarantees; submissions are
// written through on a best-effort basis and a rejection never rolls back
// the optimistic local insert.
type RemoteStore struct {
	collection *mongo.Collection
}

// NewRemoteStore creates a remote store on the issues collection.
func NewRemoteStore(db *mongo.Database) *RemoteStore {
	return &RemoteStore{collection: db.Collection("issues")}
}

// Create inserts the issue and returns its id.
func (r *RemoteStore) Create(ctx context.Context, issue models.Issue) (string, error) {
	if _, err := r.collection.InsertOne(ctx, issue); err != nil {
		return "", err
	}
	return issue.ID, nil
}

// List returns all remotely persisted issues, newest first.
func (r *RemoteStore) List(ctx context.Context) ([]models.Issue, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
