package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/devfolio/backend/config"
	"github.com/devfolio/backend/pkg/database"
)

type fakeStore struct {
	names   []string
	listErr error
}

func (f *fakeStore) CreateDocument(context.Context, string, interface{}) (string, error) {
	return "", nil
}

func (f *fakeStore) GetDocuments(context.Context, string, bson.M, int64) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeStore) ListCollectionNames(context.Context) ([]string, error) {
	return f.names, f.listErr
}

func (f *fakeStore) Ping(context.Context) error { return nil }

func serve(store database.Store, dbCfg config.DatabaseConfig, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, dbCfg)
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/test", h.Test)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRoot(t *testing.T) {
	rec := serve(nil, config.DatabaseConfig{}, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Portfolio API running", decode(t, rec)["message"])
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	rec := serve(nil, config.DatabaseConfig{}, "/test")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "running", out["backend"])
	assert.Equal(t, "not available", out["database"])
	assert.Equal(t, "not set", out["database_url"])
	assert.Equal(t, "not set", out["database_name"])
	assert.Equal(t, "not connected", out["connection_status"])
	assert.Empty(t, out["collections"])
}

func TestDiagnosticsConnected(t *testing.T) {
	store := &fakeStore{names: []string{"video", "contactmessage"}}
	cfg := config.DatabaseConfig{URL: "mongodb://localhost:27017", Name: "portfolio"}
	rec := serve(store, cfg, "/test")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "connected", out["database"])
	assert.Equal(t, "connected", out["connection_status"])
	assert.Equal(t, "set", out["database_url"])
	assert.Equal(t, "set", out["database_name"])
	assert.Len(t, out["collections"], 2)
}

func TestDiagnosticsTruncatesCollections(t *testing.T) {
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("collection%02d", i))
	}
	rec := serve(&fakeStore{names: names}, config.DatabaseConfig{URL: "mongodb://x"}, "/test")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["collections"], 10)
}

func TestDiagnosticsDegradesOnListError(t *testing.T) {
	longErr := errors.New(strings.Repeat("e", 120))
	rec := serve(&fakeStore{listErr: longErr}, config.DatabaseConfig{URL: "mongodb://x"}, "/test")
	require.Equal(t, http.StatusOK, rec.Code, "diagnostics must never fail")
	out := decode(t, rec)
	db, ok := out["database"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(db, "connected but error: "))
	assert.LessOrEqual(t, len(db), len("connected but error: ")+50)
	assert.Equal(t, "not connected", out["connection_status"])
}
