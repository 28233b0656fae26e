package repository

import (
	"context"

	"alexportfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMeetingRepo struct {
	DB *mongo.Client
}

func NewMongoMeetingRepo(db *mongo.Client) *MongoMeetingRepo {
	return &MongoMeetingRepo{DB: db}
}

// meetingDoc is the stored shape; participants stay a comma-joined string
// exactly as in the relational store.
type meetingDoc struct {
	ID           int64  `bson:"_id"`
	Title        string `bson:"title"`
	Date         string `bson:"date"`
	Time         string `bson:"time"`
	Level        string `bson:"level"`
	Participants string `bson:"participants"`
	Description  string `bson:"description"`
	CreatorID    int64  `bson:"creator_id"`
}

func (r *MongoMeetingRepo) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	db := r.DB.Database(mongoDatabase)

	id, err := nextSequence(ctx, db, "meetings")
	if err != nil {
		return err
	}

	doc := meetingDoc{
		ID:           id,
		Title:        meeting.Title,
		Date:         meeting.Date,
		Time:         meeting.Time,
		Level:        meeting.Level,
		Participants: models.JoinParticipants(meeting.Participants),
		Description:  meeting.Description,
		CreatorID:    meeting.CreatorID,
	}
	if _, err := db.Collection("meetings").InsertOne(ctx, doc); err != nil {
		return err
	}
	meeting.ID = id
	return nil
}

func (r *MongoMeetingRepo) ListMeetings(ctx context.Context) ([]*models.Meeting, error) {
	cur, err := r.DB.Database(mongoDatabase).Collection("meetings").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var meetings []*models.Meeting
	for cur.Next(ctx) {
		var doc meetingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		meetings = append(meetings, &models.Meeting{
			ID:           doc.ID,
			Title:        doc.Title,
			Date:         doc.Date,
			Time:         doc.Time,
			Level:        doc.Level,
			Participants: models.SplitParticipants(doc.Participants),
			Description:  doc.Description,
			CreatorID:    doc.CreatorID,
		})
	}
	return meetings, cur.Err()
}

func (r *MongoMeetingRepo) DeleteMeeting(ctx context.Context, id int64) error {
	res, err := r.DB.Database(mongoDatabase).Collection("meetings").
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrMeetingNotFound
	}
	return nil
}
