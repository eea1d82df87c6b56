package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"costengine/internal/costbasis"
	"costengine/internal/handlers"
	"costengine/internal/logger"
	"costengine/internal/middleware"
	"costengine/internal/models"
	"costengine/internal/services"
	"costengine/internal/validator"
)

const testAPIKey = "integration-test-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.BatchRun{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, processing batches with the given cost basis method.
func setupApp(t *testing.T, method costbasis.Method) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	batchRunService := services.NewBatchRunService(db)
	processorService := services.NewProcessorService(method, batchRunService)

	transactionHandler := handlers.NewTransactionHandler(processorService)
	batchRunHandler := handlers.NewBatchRunHandler(batchRunService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(testAPIKey))
	v1.POST("/transactions/process", transactionHandler.ProcessTransactions)
	v1.GET("/batches", batchRunHandler.ListBatchRuns)
	v1.GET("/batches/:id", batchRunHandler.GetBatchRun)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// findTransaction returns the processed transaction with the given ID.
func findTransaction(t *testing.T, result map[string]interface{}, transactionID string) map[string]interface{} {
	t.Helper()
	processed, ok := result["processed_transactions"].([]interface{})
	if !ok {
		t.Fatalf("missing processed_transactions in %v", result)
	}
	for _, raw := range processed {
		txn := raw.(map[string]interface{})
		if txn["transaction_id"] == transactionID {
			return txn
		}
	}
	t.Fatalf("transaction %s not found in processed output", transactionID)
	return nil
}
