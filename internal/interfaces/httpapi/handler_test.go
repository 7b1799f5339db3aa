package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/team-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/riskibarqy/team-registry/internal/platform/metrics"
	"github.com/riskibarqy/team-registry/internal/usecase"
)

type testEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, usecase.ErrorKind)
	registry := usecase.NewRegistryService(
		memory.NewTeamRepository(nil),
		memory.NewPlayerRepository(nil),
		m,
		logging.NewNop(),
	)
	handler := NewHandler(
		registry,
		usecase.NewReportService(registry, 2, logging.NewNop()),
		usecase.NewImportService(registry, 2, logging.NewNop()),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), RouterOptions{
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Code != http.StatusNoContent && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: unmarshal response body %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, env
}

func mustStatus(t *testing.T, h http.Handler, method, path, body string, want int) testEnvelope {
	t.Helper()

	rec, env := doRequest(t, h, method, path, body)
	if rec.Code != want {
		t.Fatalf("%s %s: expected status %d, got %d body=%s", method, path, want, rec.Code, rec.Body.String())
	}
	return env
}

func seedExample(t *testing.T, h http.Handler) {
	t.Helper()

	mustStatus(t, h, http.MethodPost, "/v1/teams",
		`{"id":1,"name":"Reds","foundedOn":"1892-06-03","primaryColor":"red","secondaryColor":"white"}`, http.StatusCreated)
	mustStatus(t, h, http.MethodPost, "/v1/teams",
		`{"id":2,"name":"Blues","foundedOn":"1878-03-01","primaryColor":"blue","secondaryColor":"white"}`, http.StatusCreated)
	mustStatus(t, h, http.MethodPost, "/v1/players",
		`{"id":10,"teamId":1,"name":"Alan","birthDate":"1994-04-12","skillLevel":5,"salary":"100.50"}`, http.StatusCreated)
	mustStatus(t, h, http.MethodPost, "/v1/players",
		`{"id":11,"teamId":1,"name":"Bruno","birthDate":"1997-09-30","skillLevel":9,"salary":"50"}`, http.StatusCreated)
	mustStatus(t, h, http.MethodPost, "/v1/players",
		`{"id":20,"teamId":2,"name":"Carl","birthDate":"1991-01-08","skillLevel":7,"salary":"200"}`, http.StatusCreated)
}

func dataField(t *testing.T, env testEnvelope, key string) any {
	t.Helper()

	obj, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %#v", env.Data)
	}
	return obj[key]
}

func idList(t *testing.T, env testEnvelope) []int64 {
	t.Helper()

	raw, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("expected array data, got %#v", env.Data)
	}
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		out = append(out, int64(v.(float64)))
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRouter_RegistryScenario(t *testing.T) {
	h := newTestRouter(t)
	seedExample(t, h)

	mustStatus(t, h, http.MethodPut, "/v1/players/11/captain", "", http.StatusNoContent)

	env := mustStatus(t, h, http.MethodGet, "/v1/teams/1/captain", "", http.StatusOK)
	if got := dataField(t, env, "playerId"); got != float64(11) {
		t.Fatalf("expected captain 11, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/1/players/best", "", http.StatusOK)
	if got := dataField(t, env, "playerId"); got != float64(11) {
		t.Fatalf("expected best player 11, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/1/players/highest-paid", "", http.StatusOK)
	if got := dataField(t, env, "playerId"); got != float64(10) {
		t.Fatalf("expected highest paid 10, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/1/players/oldest", "", http.StatusOK)
	if got := dataField(t, env, "playerId"); got != float64(10) {
		t.Fatalf("expected oldest 10, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/1/players", "", http.StatusOK)
	if got := idList(t, env); !equalIDs(got, []int64{10, 11}) {
		t.Fatalf("expected roster [10 11], got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/players/top?n=2", "", http.StatusOK)
	if got := idList(t, env); !equalIDs(got, []int64{11, 20}) {
		t.Fatalf("expected top players [11 20], got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams", "", http.StatusOK)
	if got := idList(t, env); !equalIDs(got, []int64{1, 2}) {
		t.Fatalf("expected teams [1 2], got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/players/10/salary", "", http.StatusOK)
	if got := dataField(t, env, "salary"); got != "100.5" {
		t.Fatalf("expected salary 100.5, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/players/20/name", "", http.StatusOK)
	if got := dataField(t, env, "name"); got != "Carl" {
		t.Fatalf("expected name Carl, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/2/name", "", http.StatusOK)
	if got := dataField(t, env, "name"); got != "Blues" {
		t.Fatalf("expected name Blues, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/1", "", http.StatusOK)
	if got := dataField(t, env, "foundedOn"); got != "1892-06-03" {
		t.Fatalf("expected foundedOn 1892-06-03, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/players/11", "", http.StatusOK)
	if got := dataField(t, env, "isCaptain"); got != true {
		t.Fatalf("expected player 11 to be captain, got %v", got)
	}
}

func TestRouter_AwayUniformColor(t *testing.T) {
	h := newTestRouter(t)
	seedExample(t, h)
	mustStatus(t, h, http.MethodPost, "/v1/teams",
		`{"id":3,"name":"Cherries","foundedOn":"1899-01-01","primaryColor":"red","secondaryColor":"black"}`, http.StatusCreated)

	env := mustStatus(t, h, http.MethodGet, "/v1/teams/1/away-uniform/3", "", http.StatusOK)
	if got := dataField(t, env, "color"); got != "black" {
		t.Fatalf("expected clash color black, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/1/away-uniform/2", "", http.StatusOK)
	if got := dataField(t, env, "color"); got != "blue" {
		t.Fatalf("expected away primary blue, got %v", got)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	h := newTestRouter(t)
	seedExample(t, h)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantReason string
	}{
		{
			name:       "duplicate team",
			method:     http.MethodPost,
			path:       "/v1/teams",
			body:       `{"id":1,"name":"Again","foundedOn":"2000-01-01","primaryColor":"green","secondaryColor":"gold"}`,
			wantStatus: http.StatusConflict,
			wantReason: "duplicateIdentifier",
		},
		{
			name:       "player for unknown team",
			method:     http.MethodPost,
			path:       "/v1/players",
			body:       `{"id":30,"teamId":9,"name":"Dan","birthDate":"2000-01-01","skillLevel":1,"salary":"10"}`,
			wantStatus: http.StatusNotFound,
			wantReason: "teamNotFound",
		},
		{
			name:       "unknown team captain",
			method:     http.MethodGet,
			path:       "/v1/teams/99/captain",
			wantStatus: http.StatusNotFound,
			wantReason: "teamNotFound",
		},
		{
			name:       "captain not set",
			method:     http.MethodGet,
			path:       "/v1/teams/2/captain",
			wantStatus: http.StatusNotFound,
			wantReason: "captainNotSet",
		},
		{
			name:       "unknown player",
			method:     http.MethodPut,
			path:       "/v1/players/404/captain",
			wantStatus: http.StatusNotFound,
			wantReason: "playerNotFound",
		},
		{
			name:       "non numeric id",
			method:     http.MethodGet,
			path:       "/v1/teams/abc",
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "negative top n",
			method:     http.MethodGet,
			path:       "/v1/players/top?n=-1",
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "unknown field",
			method:     http.MethodPost,
			path:       "/v1/teams",
			body:       `{"id":5,"name":"X","foundedOn":"2000-01-01","primaryColor":"a","secondaryColor":"b","league":"z"}`,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "bad date",
			method:     http.MethodPost,
			path:       "/v1/players",
			body:       `{"id":31,"teamId":1,"name":"Eve","birthDate":"01/02/2000","skillLevel":1,"salary":"10"}`,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := mustStatus(t, h, tt.method, tt.path, tt.body, tt.wantStatus)
			if env.Error == nil || len(env.Error.Errors) == 0 {
				t.Fatalf("expected error body")
			}
			if got := env.Error.Errors[0].Reason; got != tt.wantReason {
				t.Fatalf("expected reason %s, got %s", tt.wantReason, got)
			}
		})
	}
}

func TestRouter_EmptyTeam(t *testing.T) {
	h := newTestRouter(t)
	mustStatus(t, h, http.MethodPost, "/v1/teams",
		`{"id":4,"name":"Empty","foundedOn":"1950-05-05","primaryColor":"green","secondaryColor":"white"}`, http.StatusCreated)

	env := mustStatus(t, h, http.MethodGet, "/v1/teams/4/players", "", http.StatusOK)
	if got := idList(t, env); len(got) != 0 {
		t.Fatalf("expected empty roster, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/4/players/best", "", http.StatusNotFound)
	if env.Error.Errors[0].Reason != "noSuchElement" {
		t.Fatalf("expected noSuchElement, got %s", env.Error.Errors[0].Reason)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/4/summary", "", http.StatusOK)
	if got := dataField(t, env, "captainId"); got != nil {
		t.Fatalf("expected no captain in summary, got %v", got)
	}
}

func TestRouter_ImportAndSummaries(t *testing.T) {
	h := newTestRouter(t)

	body := `{
		"teams":[
			{"id":2,"name":"Blues","foundedOn":"1878-03-01","primaryColor":"blue","secondaryColor":"white"},
			{"id":1,"name":"Reds","foundedOn":"1892-06-03","primaryColor":"red","secondaryColor":"white"}
		],
		"players":[
			{"id":10,"teamId":1,"name":"Alan","birthDate":"1994-04-12","skillLevel":5,"salary":"100"},
			{"id":20,"teamId":2,"name":"Carl","birthDate":"1991-01-08","skillLevel":7,"salary":"200"}
		]
	}`
	env := mustStatus(t, h, http.MethodPost, "/v1/imports", body, http.StatusCreated)
	if got := dataField(t, env, "playersInserted"); got != float64(2) {
		t.Fatalf("expected 2 players inserted, got %v", got)
	}

	env = mustStatus(t, h, http.MethodGet, "/v1/teams/summaries", "", http.StatusOK)
	items, ok := env.Data.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected two summaries, got %#v", env.Data)
	}
	first := items[0].(map[string]any)["team"].(map[string]any)
	if first["id"] != float64(1) {
		t.Fatalf("expected summaries ordered by team id, got %v first", first["id"])
	}

	mustStatus(t, h, http.MethodPost, "/v1/imports", `{"teams":[],"players":[]}`, http.StatusBadRequest)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	h := newTestRouter(t)
	seedExample(t, h)

	env := mustStatus(t, h, http.MethodGet, "/healthz", "", http.StatusOK)
	if got := dataField(t, env, "players"); got != float64(3) {
		t.Fatalf("expected 3 players in health, got %v", got)
	}

	rec, _ := doRequest(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics status 200, got %d", rec.Code)
	}
	out := rec.Body.String()
	for _, want := range []string{
		`team_registry_mutations_total{operation="insert_team",outcome="ok"} 2`,
		`team_registry_http_request_duration_seconds_count{method="POST",route="/v1/players",status="2xx"} 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
