package internal

import (
	"context"
	"cpay/config"
	"cpay/entity"
	"cpay/services"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"log"
	"time"
)

const (
	collectionLog = "payment_log"
	mongoTimeout  = 10 * time.Second
)

// MongoDB stores log records; payment data is never persisted.
type MongoDB struct {
	ctx              context.Context
	clientOptions    *options.ClientOptions
	database         string
	logRecordsNumber int64
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, err
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	err := connection.Disconnect(m.ctx)
	if err != nil {
		log.Println("mongodb disconnect error", err)
	}
}

func NewMongoClient(conf *config.Config) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	if conf.Mongo.Database == "" {
		return nil, fmt.Errorf("mongo database name is empty")
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri).SetTimeout(mongoTimeout)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:              context.Background(),
		clientOptions:    clientOptions,
		database:         conf.Mongo.Database,
		logRecordsNumber: conf.LogRecords,
	}
	return client, nil
}

func (m *MongoDB) WriteLogMessage(data services.Data) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)
	return m.writeLog(connection.Database(m.database).Collection(collectionLog), data)
}

func (m *MongoDB) writeLog(collection *mongo.Collection, data services.Data) error {
	_, err := collection.InsertOne(m.ctx, data)
	if err != nil {
		return fmt.Errorf("insert %s record: %v", data.DataType(), err)
	}
	return m.trimLog(collection)
}

// trimLog keeps only the latest logRecordsNumber records; zero keeps everything.
func (m *MongoDB) trimLog(collection *mongo.Collection) error {
	if m.logRecordsNumber <= 0 {
		return nil
	}
	opt := options.FindOne().SetSort(bson.D{{Key: "time", Value: -1}}).SetSkip(m.logRecordsNumber)
	var oldest entity.LogMessage
	err := collection.FindOne(m.ctx, bson.D{}, opt).Decode(&oldest)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find oldest log record: %v", err)
	}
	_, err = collection.DeleteMany(m.ctx, bson.D{{Key: "time", Value: bson.D{{Key: "$lte", Value: oldest.Time}}}})
	if err != nil {
		return fmt.Errorf("delete old log records: %v", err)
	}
	return nil
}
