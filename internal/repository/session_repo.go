package repository

import (
	"context"

	"elimpostor/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoundUpdate is the single atomic write that starts a round. All fields
// land in one document update so every subscriber observes the transition
// as one event.
type RoundUpdate struct {
	Word          string
	Impostors     []string
	FirstPlayerID string
	RoundNumber   int
}

type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByCode(ctx context.Context, code string) (*model.Session, error)
	GetByID(ctx context.Context, id string) (*model.Session, error)
	// UpdateRound applies upd only if the stored round number still equals
	// expectedRound. Returns false when another writer got there first.
	UpdateRound(ctx context.Context, id string, expectedRound int, upd RoundUpdate) (bool, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	if session.Impostors == nil {
		session.Impostors = []string{}
	}

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByCode(ctx context.Context, code string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Session not found
		}
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepo) UpdateRound(ctx context.Context, id string, expectedRound int, upd RoundUpdate) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "roundNumber": expectedRound},
		bson.M{"$set": bson.M{
			"currentWord":   upd.Word,
			"impostors":     upd.Impostors,
			"firstPlayerId": upd.FirstPlayerID,
			"roundNumber":   upd.RoundNumber,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
