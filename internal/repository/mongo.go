package repository

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/juju/mgo/v3"
	"github.com/juju/mgo/v3/bson"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

const (
	usersC = "users"
	costsC = "costs"

	defaultMongoDatabase = "costmanager"
)

type MongoConfig struct {
	URI     string
	Timeout time.Duration
}

// MongoStore keeps one root session; each operation works on a copy so
// concurrent requests get their own socket.
type MongoStore struct {
	session  *mgo.Session
	database string
}

type userDoc struct {
	DocID         bson.ObjectId `bson:"_id,omitempty"`
	ID            int64         `bson:"id"`
	FirstName     string        `bson:"first_name"`
	LastName      string        `bson:"last_name"`
	Birthday      *time.Time    `bson:"birthday,omitempty"`
	MaritalStatus string        `bson:"marital_status,omitempty"`
}

type costDoc struct {
	DocID       bson.ObjectId `bson:"_id"`
	UserID      int64         `bson:"userid"`
	Description string        `bson:"description"`
	Category    string        `bson:"category"`
	Sum         float64       `bson:"sum"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func NewMongoStore(cfg MongoConfig) (*MongoStore, error) {
	info, err := mgo.ParseURL(cfg.URI)
	if err != nil {
		return nil, errors.Annotate(err, "parsing mongodb uri")
	}
	if info.Database == "" {
		info.Database = defaultMongoDatabase
	}
	if cfg.Timeout > 0 {
		info.Timeout = cfg.Timeout
	}

	session, err := mgo.DialWithInfo(info)
	if err != nil {
		return nil, errors.Annotatef(err, "dialing mongodb %v", info.Addrs)
	}
	session.SetMode(mgo.Monotonic, true)
	if cfg.Timeout > 0 {
		session.SetSocketTimeout(cfg.Timeout)
	}

	store := &MongoStore{session: session, database: info.Database}
	if err := store.ensureIndexes(); err != nil {
		session.Close()
		return nil, errors.Trace(err)
	}
	return store, nil
}

func (s *MongoStore) ensureIndexes() error {
	users, closer := s.collection(usersC)
	defer closer()
	if err := users.EnsureIndex(mgo.Index{Key: []string{"id"}, Unique: true}); err != nil {
		return errors.Annotate(err, "creating users.id index")
	}

	costs, closer2 := s.collection(costsC)
	defer closer2()
	if err := costs.EnsureIndex(mgo.Index{Key: []string{"userid", "createdAt"}}); err != nil {
		return errors.Annotate(err, "creating costs.userid index")
	}
	return nil
}

func (s *MongoStore) collection(name string) (*mgo.Collection, func()) {
	session := s.session.Copy()
	return session.DB(s.database).C(name), session.Close
}

func (s *MongoStore) Users() UserRepository {
	return &mongoUserRepository{store: s}
}

func (s *MongoStore) Costs() CostRepository {
	return &mongoCostRepository{store: s}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	session := s.session.Copy()
	defer session.Close()
	return session.Ping()
}

func (s *MongoStore) Close() error {
	s.session.Close()
	return nil
}

type mongoUserRepository struct {
	store *MongoStore
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	users, closer := r.store.collection(usersC)
	defer closer()

	var doc userDoc
	err := users.Find(bson.M{"id": id}).One(&doc)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Annotatef(err, "getting user %d", id)
	}

	return &model.User{
		ID:            doc.ID,
		FirstName:     doc.FirstName,
		LastName:      doc.LastName,
		Birthday:      doc.Birthday,
		MaritalStatus: model.MaritalStatus(doc.MaritalStatus),
	}, nil
}

type mongoCostRepository struct {
	store *MongoStore
}

func (r *mongoCostRepository) Create(ctx context.Context, cost *model.Cost) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	costs, closer := r.store.collection(costsC)
	defer closer()

	doc := costDoc{
		DocID:       bson.NewObjectId(),
		UserID:      cost.UserID,
		Description: cost.Description,
		Category:    string(cost.Category),
		Sum:         cost.Sum,
		CreatedAt:   cost.CreatedAt,
	}
	if err := costs.Insert(doc); err != nil {
		return errors.Annotatef(err, "inserting cost for user %d", cost.UserID)
	}

	cost.ID = doc.DocID.Hex()
	return nil
}

func (r *mongoCostRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.Cost, error) {
	return r.find(ctx, bson.M{"userid": userID})
}

func (r *mongoCostRepository) GetByUserIDInRange(ctx context.Context, userID int64, from, to time.Time) ([]*model.Cost, error) {
	return r.find(ctx, bson.M{
		"userid":    userID,
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoCostRepository) find(ctx context.Context, query bson.M) ([]*model.Cost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	costs, closer := r.store.collection(costsC)
	defer closer()

	var docs []costDoc
	if err := costs.Find(query).All(&docs); err != nil {
		return nil, errors.Annotate(err, "finding costs")
	}

	result := make([]*model.Cost, 0, len(docs))
	for _, doc := range docs {
		result = append(result, &model.Cost{
			ID:          doc.DocID.Hex(),
			UserID:      doc.UserID,
			Description: doc.Description,
			Category:    model.Category(doc.Category),
			Sum:         doc.Sum,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return result, nil
}
