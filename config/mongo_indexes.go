package config

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDatabase returns the application database handle.
func MongoDatabase() *mongo.Database {
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "resumehub"
	}
	return MongoClient.Database(dbName)
}

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// saved_resumes indexes
	saved := db.Collection("saved_resumes")
	_, err := saved.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// one snapshot per resume per account; autosave replaces in place
		{
			Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "resume_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_account_resume").
				SetUnique(true),
		},
		// newest-first listing
		{
			Keys:    bson.D{{Key: "account_id", Value: 1}, {Key: "saved_at", Value: -1}},
			Options: options.Index().SetName("by_account_saved"),
		},
	})
	return err
}
