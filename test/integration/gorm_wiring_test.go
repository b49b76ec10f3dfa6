package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatRecordRepository())
	assert.NotNil(t, uow.UploadedFileRepository())
	assert.NotNil(t, uow.EmailLogRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(0))
	})

	t.Run("Check Chat Records", func(t *testing.T) {
		records, err := uow.ChatRecordRepository().FindAllOrdered(context.Background())
		assert.NoError(t, err)
		t.Logf("chat_records rows: %d", len(records))
	})
}
