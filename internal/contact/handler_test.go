package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	inserts    int
	failCreate bool
}

func (f *fakeStore) CreateDocument(context.Context, string, interface{}) (string, error) {
	f.inserts++
	if f.failCreate {
		return "", errors.New("store unreachable")
	}
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeStore) GetDocuments(context.Context, string, bson.M, int64) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeStore) ListCollectionNames(context.Context) ([]string, error) { return nil, nil }

func (f *fakeStore) Ping(context.Context) error { return nil }

type fakeMailer struct {
	sends int
	err   error
}

func (f *fakeMailer) SendContact(name, email, message string) error {
	f.sends++
	return f.err
}

func newTestRouter(store *fakeStore, mailer Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewRepository(store), mailer, nil)
	r := gin.New()
	r.POST("/api/contact", h.Submit)
	return r
}

func submit(router *gin.Engine, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"name":"Ada","email":"ada@example.com","message":"hello there"}`

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSubmitRejectsInvalidEmailBeforeSideEffects(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	router := newTestRouter(store, mailer)

	rec := submit(router, `{"name":"Ada","email":"not-an-email","message":"hello"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.inserts, "no store write on validation failure")
	assert.Zero(t, mailer.sends, "no email attempt on validation failure")
}

func TestSubmitRejectsOversizeMessage(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store, nil)

	body := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("x", 5001) + `"}`
	rec := submit(router, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.inserts)
}

func TestSubmitSavedOnlyWhenEmailUnconfigured(t *testing.T) {
	router := newTestRouter(&fakeStore{}, nil)

	rec := submit(router, validBody)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "saved_only", out["status"])
	assert.NotEmpty(t, out["saved_id"])
}

func TestSubmitFailsWhenNothingTookEffect(t *testing.T) {
	router := newTestRouter(&fakeStore{failCreate: true}, nil)

	rec := submit(router, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubmitSentWithSavedID(t *testing.T) {
	mailer := &fakeMailer{}
	router := newTestRouter(&fakeStore{}, mailer)

	rec := submit(router, validBody)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "sent", out["status"])
	assert.NotEmpty(t, out["saved_id"])
	assert.Equal(t, 1, mailer.sends)
}

func TestSubmitSentEvenWhenPersistenceFails(t *testing.T) {
	mailer := &fakeMailer{}
	router := newTestRouter(&fakeStore{failCreate: true}, mailer)

	rec := submit(router, validBody)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "sent", out["status"])
	assert.Nil(t, out["saved_id"])
}

func TestSubmitPartialSuccessWhenDeliveryFails(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp: 535 auth failed")}
	router := newTestRouter(&fakeStore{}, mailer)

	rec := submit(router, validBody)
	require.Equal(t, http.StatusAccepted, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "saved_only", out["status"])
	assert.Contains(t, out["warning"], "auth failed")
	assert.NotEmpty(t, out["saved_id"])
}
