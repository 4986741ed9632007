package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"messageboard/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// messageDocument is the stored shape of a message. Author is kept as an
// ObjectID reference to the users collection.
type messageDocument struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Title     string              `bson:"title"`
	Body      string              `bson:"body"`
	Author    *primitive.ObjectID `bson:"author,omitempty"`
	CreatedAt time.Time           `bson:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

func (d messageDocument) toModel() models.Message {
	m := models.Message{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Author != nil {
		m.Author = d.Author.Hex()
	}
	return m
}

// MongoMessageRepository implements MessageRepository for MongoDB.
type MongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new MongoMessageRepository.
func NewMongoMessageRepository(db *mongo.Database, collection string) *MongoMessageRepository {
	return &MongoMessageRepository{
		collection: db.Collection(collection),
	}
}

// FindAll finds all messages, oldest first.
func (r *MongoMessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding messages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []messageDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}

	messages := make([]models.Message, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, d.toModel())
	}
	return messages, nil
}

// FindByID finds a message by ID.
func (r *MongoMessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc messageDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error finding message: %w", err)
	}

	message := doc.toModel()
	return &message, nil
}

// Create inserts a new message and sets its ID.
func (r *MongoMessageRepository) Create(ctx context.Context, message *models.Message) error {
	now := time.Now().UTC()
	doc := messageDocument{
		ID:        primitive.NewObjectID(),
		Title:     message.Title,
		Body:      message.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if message.Author != "" {
		author, err := parseObjectID(message.Author)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		doc.Author = &author
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error inserting message: %w", err)
	}

	*message = doc.toModel()
	return nil
}

// Update sets the supplied fields in a single round trip and returns the
// document as it is after the update.
func (r *MongoMessageRepository) Update(ctx context.Context, id string, update models.MessageUpdate) (*models.Message, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Body != nil {
		set["body"] = *update.Body
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc messageDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error updating message: %w", err)
	}

	message := doc.toModel()
	return &message, nil
}

// Delete removes a message by ID.
func (r *MongoMessageRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting message: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteByTitles removes every message whose title is in titles.
func (r *MongoMessageRepository) DeleteByTitles(ctx context.Context, titles ...string) (int64, error) {
	if len(titles) == 0 {
		return 0, nil
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"title": bson.M{"$in": titles}})
	if err != nil {
		return 0, fmt.Errorf("error deleting messages by title: %w", err)
	}
	return res.DeletedCount, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return objectID, nil
}
