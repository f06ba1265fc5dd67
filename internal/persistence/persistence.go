package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collectionName = "library-per-owner"
)

var (
	ErrOwnerNotFound = errors.New("owner not found in db")
)

// LibraryPersistor stores the playables callers pinned for later playback.
// Extracted as an interface so handlers can be tested against a mock.
type LibraryPersistor interface {
	LoadEntries(ownerID string) ([]*Entry, error)
	SaveEntries(ownerID string, entries []*Entry) error
	FetchJSONDump(ownerID string) ([]byte, error)
	DeleteOwnerRecord(ownerID string) error
}

type LibraryDAO struct {
	collection *mongo.Collection
}

var _ LibraryPersistor = (*LibraryDAO)(nil)

func Connect(connectionString string) (*LibraryDAO, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(connectionString))
	if err == nil {
		err = client.Ping(context.Background(), readpref.Primary())
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB at '%s': %w", connectionString, err)
	}

	u, err := url.Parse(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse given connection string '%s': %w", connectionString, err)
	}

	dbName := strings.Trim(u.Path, "/")
	if dbName == "" {
		return nil, fmt.Errorf("given database name is empty '%s'", connectionString)
	}

	log.Info().Msgf("Connected to mongo db backend! Will use '%s' as db.", dbName)

	collection := client.Database(dbName).Collection(collectionName)

	return &LibraryDAO{collection}, nil
}

func (p *LibraryDAO) LoadEntries(ownerID string) ([]*Entry, error) {
	hashedOwnerID := hashOwnerID(ownerID)

	var item persistenceItem
	err := p.collection.FindOne(context.TODO(), bson.D{{Key: "_id", Value: hashedOwnerID}}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return make([]*Entry, 0), nil
		}

		return nil, err
	}

	return item.Entries, nil
}

func (p *LibraryDAO) SaveEntries(ownerID string, entries []*Entry) error {
	hashedOwnerID := hashOwnerID(ownerID)

	opts := options.Update().SetUpsert(true)

	_, err := p.collection.UpdateOne(context.TODO(), bson.D{{Key: "_id", Value: hashedOwnerID}}, bson.D{{Key: "$set", Value: bson.D{{Key: "entries", Value: entries}, {Key: "version", Value: "1"}}}}, opts)

	if err != nil {
		return err
	}

	return nil
}

func (p *LibraryDAO) FetchJSONDump(ownerID string) ([]byte, error) {
	hashedOwnerID := hashOwnerID(ownerID)

	var item persistenceItem
	err := p.collection.FindOne(context.TODO(), bson.D{{Key: "_id", Value: hashedOwnerID}}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOwnerNotFound
		}

		return nil, fmt.Errorf("could not load library from db: %w", err)
	}

	json, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("could not convert record to JSON: %w", err)
	}

	return json, nil
}

func (p *LibraryDAO) DeleteOwnerRecord(ownerID string) error {
	hashedOwnerID := hashOwnerID(ownerID)

	res, err := p.collection.DeleteOne(context.TODO(), bson.D{{Key: "_id", Value: hashedOwnerID}})
	if err != nil {
		return fmt.Errorf("could not delete owner record: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrOwnerNotFound
	}

	return nil
}

// Owner ids are chosen by the callers themselves, do not store them verbatim.
func hashOwnerID(ownerID string) string {
	hash := sha256.Sum256([]byte(ownerID))
	return fmt.Sprintf("%X", hash)
}

// Entry is one pinned playable. Kind together with SpotifyID suffices to
// re-resolve it; the remaining fields exist so listings do not require a
// round trip to the Web API.
type Entry struct {
	Kind        string `json:"kind" bson:"kind"`
	SpotifyID   string `json:"spotifyID" bson:"spotifyID"`
	Name        string `json:"name" bson:"name"`
	ArtistName  string `json:"artistName" bson:"artistName"`
	ArtURL      string `json:"artURL,omitempty" bson:"artURL"`
	TrackTotal  int    `json:"trackTotal" bson:"trackTotal"`
	SearchQuery string `json:"searchQuery,omitempty" bson:"searchQuery"`
	SavedAtTs   int64  `json:"savedAtTs" bson:"savedAtTs"`
}

type persistenceItem struct {
	Version string   `bson:"version" json:"version"`
	OwnerID string   `bson:"_id" json:"_id"`
	Entries []*Entry `bson:"entries" json:"entries"`
}
