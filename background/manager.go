package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/junianwoo/fyd-sub001/external/mailer"
	"github.com/junianwoo/fyd-sub001/store"
)

// BackgroundManager runs the fire-and-forget jobs of the alert service
type BackgroundManager struct {
	store      store.FYDCore
	mongoStore store.MongoStore

	mailer mailer.Mailer

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &BackgroundManager{
		store:      store.NewFYDStore(ormDB, mongoStore),
		mongoStore: mongoStore,
		mailer:     mailer.NewSMTPMailer(),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("findyourdoctor-worker", 5)
	return m.worker.Launch()
}
