/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"gotest.tools/v3/assert"
)

const (
	testCustomerUUID = "c1234"
	testUniverseUUID = "u1234"
	testTableUUID    = "t1234"
	testToken        = "token-1234"
)

// recordedRequest keeps what the mock server received
type recordedRequest struct {
	Method string
	Path   string
	Token  string
	Body   []byte
}

type mockPlatform struct {
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

// newMockPlatform sets up a mock server to test http client calls.
func newMockPlatform(t *testing.T) *mockPlatform {
	t.Helper()
	m := &mockPlatform{}
	r := mux.NewRouter()
	r.Use(m.record)

	r.HandleFunc("/api/v1/session_info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"customerUUID": testCustomerUUID})
	})
	r.HandleFunc("/api/v1/metadata/column_types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"primitives":  {"INT", "TEXT"},
			"collections": {"MAP"},
		})
	})
	r.HandleFunc("/api/v1/customers/{cuuid}/universes/{uuuid}/tables",
		func(w http.ResponseWriter, r *http.Request) {
			if mux.Vars(r)["cuuid"] != testCustomerUUID {
				http.Error(w, `{"success": false, "error": "Invalid Customer UUID"}`, 400)
				return
			}
			if r.Method == http.MethodPost {
				writeJSON(w, http.StatusOK, map[string]string{"taskUUID": "task-create"})
				return
			}
			writeJSON(w, http.StatusOK, []map[string]interface{}{
				{"tableUUID": testTableUUID, "tableName": "orders", "tableType": "YQL_TABLE_TYPE"},
			})
		})
	r.HandleFunc("/api/v1/customers/{cuuid}/universes/{uuuid}/tables/{tuuid}",
		func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodDelete {
				writeJSON(w, http.StatusOK, map[string]string{"taskUUID": "task-drop"})
				return
			}
			if mux.Vars(r)["tuuid"] != testTableUUID {
				http.Error(w,
					`{"success": false, "error": {"tableUUID": ["unknown table", "try again"]}}`,
					404)
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"tableUUID": testTableUUID,
				"tableType": "YQL_TABLE_TYPE",
				"tableDetails": map[string]interface{}{
					"tableName": "orders",
					"keyspace":  "shop",
					"columns": []map[string]interface{}{
						{"columnOrder": 1, "name": "id", "type": "INT", "isPartitionKey": true},
					},
				},
			})
		})
	r.HandleFunc("/api/v1/customers/{cuuid}/universes/{uuuid}/tables/{tuuid}/bulk_import",
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"taskUUID": "task-import"})
		}).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/customers/{cuuid}/universes/{uuuid}/tables/{tuuid}/create_backup",
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"taskUUID": "task-backup"})
		}).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/customers/{cuuid}/universes/{uuuid}/backups/{buuid}/restore",
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"taskUUID": "task-restore"})
		}).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/customers/{cuuid}/providers/{puuid}",
		func(w http.ResponseWriter, r *http.Request) {
			status := http.StatusOK
			if mux.Vars(r)["puuid"] == "p-accepted" {
				status = http.StatusAccepted
			}
			writeJSON(w, status, map[string]string{"taskUUID": "task-provider"})
		}).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/customers/{cuuid}/universes/{uuuid}/upgrade",
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"taskUUID": "task-upgrade"})
		}).Methods(http.MethodPost)

	m.server = httptest.NewServer(r)
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockPlatform) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		m.mu.Lock()
		m.requests = append(m.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Token:  r.Header.Get("X-AUTH-YW-API-TOKEN"),
			Body:   body,
		})
		m.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (m *mockPlatform) lastRequest() recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func (m *mockPlatform) client(t *testing.T) *AuthAPIClient {
	t.Helper()
	endpoint, err := url.Parse(m.server.URL)
	assert.NilError(t, err)
	authAPI, err := NewAuthAPIClientInitialize(endpoint, testToken, "", false, "")
	assert.NilError(t, err)
	return authAPI
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
