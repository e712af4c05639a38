package audit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeElasticsearch(t *testing.T, handler http.HandlerFunc) *ElasticsearchRepository {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	repo, err := NewElasticsearchRepository(srv.URL, "navguard-audit")
	require.NoError(t, err)
	return repo
}

func TestElasticsearchRepository_LogAccess(t *testing.T) {
	var gotPath string
	var got AuditLog
	repo := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	ctx := WithActor(context.Background(), 7)
	entry := NewEntry(ctx, ActionRoleMenusReplace, "role", 3, map[string]interface{}{"menu_ids": []int64{1, 2}})

	require.NoError(t, repo.LogAccess(ctx, entry))
	assert.True(t, strings.HasPrefix(gotPath, "/navguard-audit/_doc"), gotPath)
	assert.Equal(t, int64(7), got.ActorID)
	assert.Equal(t, ActionRoleMenusReplace, got.Action)
	assert.JSONEq(t, `{"menu_ids":[1,2]}`, string(got.Details))
}

func TestElasticsearchRepository_LogAccessError(t *testing.T) {
	repo := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"mapper_parsing_exception"}`))
	})

	err := repo.LogAccess(context.Background(), AuditLog{Action: ActionMenuSync})

	assert.Error(t, err)
}

func TestElasticsearchRepository_QueryLogs(t *testing.T) {
	repo := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/navguard-audit/_search"), r.URL.Path)
		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_source":{"actor_id":7,"action":"override.set","entity_type":"menu","entity_id":4}}
		]}}`))
	})

	logs, err := repo.QueryLogs(context.Background(), Query{
		From:    time.Now().Add(-time.Hour),
		To:      time.Now(),
		ActorID: 7,
	})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ActionOverrideSet, logs[0].Action)
	assert.Equal(t, int64(4), logs[0].EntityID)
}

func TestActorFrom_Missing(t *testing.T) {
	assert.Equal(t, int64(0), ActorFrom(context.Background()))
}
