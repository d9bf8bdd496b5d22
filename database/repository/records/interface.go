package recordsRepo

import (
	"context"

	"driveline/config"
	"driveline/database"
	"driveline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository keeps the history of submitted bookings.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	ListByDate(ctx context.Context, date string) ([]models.BookingRecord, error)
	MarkReminded(ctx context.Context, id string) error
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a BookingRecordRepository backed by MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRecordRepo{
		coll: db.Collection("booking_records"),
	}
}
