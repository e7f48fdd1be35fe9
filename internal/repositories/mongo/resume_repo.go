package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/utils"
)

// SavedResume is one persisted snapshot of a resume document.
type SavedResume struct {
	AccountID string                 `bson:"account_id" json:"account_id"`
	ResumeID  string                 `bson:"resume_id" json:"resume_id"`
	SavedAt   time.Time              `bson:"saved_at" json:"saved_at"`
	Document  *models.ResumeDocument `bson:"document" json:"document"`
}

type ResumeRepository interface {
	// Save replaces the snapshot with the same resume id, or inserts a new
	// one. Implements services.ResumeSaver.
	Save(ctx context.Context, accountID string, doc *models.ResumeDocument) error
	// ListByAccount returns snapshots newest-first.
	ListByAccount(ctx context.Context, accountID string) ([]SavedResume, error)
	Get(ctx context.Context, accountID, resumeID string) (*SavedResume, error)
	Delete(ctx context.Context, accountID, resumeID string) error
}

type resumeRepo struct {
	col *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) ResumeRepository {
	return &resumeRepo{col: db.Collection("saved_resumes")}
}

func (r *resumeRepo) Save(ctx context.Context, accountID string, doc *models.ResumeDocument) error {
	snap := SavedResume{
		AccountID: accountID,
		ResumeID:  doc.ID,
		SavedAt:   time.Now().UTC(),
		Document:  doc,
	}

	filter := bson.M{"account_id": accountID, "resume_id": doc.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, filter, snap, opts)
	return err
}

func (r *resumeRepo) ListByAccount(ctx context.Context, accountID string) ([]SavedResume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []SavedResume
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resumeRepo) Get(ctx context.Context, accountID, resumeID string) (*SavedResume, error) {
	var snap SavedResume
	err := r.col.FindOne(ctx, bson.M{"account_id": accountID, "resume_id": resumeID}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *resumeRepo) Delete(ctx context.Context, accountID, resumeID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"account_id": accountID, "resume_id": resumeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
