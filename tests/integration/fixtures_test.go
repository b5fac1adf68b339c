//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gostarter/config"
	"gostarter/internal/app"
)

const (
	// testBaseURL addresses the in-process application; no socket is involved.
	testBaseURL = "http://testserver"

	// testDatabase is the disposable database used by the harness. The name
	// is fixed at project scaffolding time from the project identifier.
	testDatabase = "test_gostarter"

	healthPath = "/health"

	teardownTimeout = 10 * time.Second
)

// inProcessTransport dispatches requests directly to the application handler,
// mimicking the network client interface without a real socket.
type inProcessTransport struct {
	handler http.Handler
}

func (tr *inProcessTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// newTestClient builds a fresh application instance and returns an HTTP
// client bound to it. The application and the client are released via
// t.Cleanup regardless of the test outcome.
func newTestClient(t *testing.T) *http.Client {
	t.Helper()

	cfg := config.Default()
	cfg.Mongo.URL = mongoURL
	cfg.Mongo.Database = testDatabase

	ctx, cancel := context.WithTimeout(testCtx, 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg)
	require.NoError(t, err, "failed to initialize application")

	client := &http.Client{Transport: &inProcessTransport{handler: a.Server()}}

	t.Cleanup(func() {
		client.CloseIdleConnections()

		ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
		defer cancel()
		if err := a.Shutdown(ctx); err != nil {
			t.Errorf("failed to shut down application: %v", err)
		}
	})

	return client
}

// newTestDB connects to the harness MongoDB and returns the disposable test
// database. Teardown drops the database first, then closes the connection,
// in that order, regardless of the test outcome.
func newTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	client, err := mongo.Connect(options.Client().ApplyURI(mongoURL))
	require.NoError(t, err, "failed to create MongoDB client")

	ctx, cancel := context.WithTimeout(testCtx, 30*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx, nil), "failed to ping MongoDB")

	db := client.Database(testDatabase)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
		defer cancel()

		// Drop before disconnect: the database must never outlive the test
		if err := db.Drop(ctx); err != nil {
			t.Errorf("failed to drop test database: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Errorf("failed to disconnect MongoDB client: %v", err)
		}
	})

	return db
}

// closeBody is a helper to close response body in defer statements.
func closeBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}
