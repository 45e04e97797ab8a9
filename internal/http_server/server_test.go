package http_server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	"github.com/half-nothing/simple-surety/internal/http_server"
	"github.com/half-nothing/simple-surety/internal/interfaces"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/half-nothing/simple-surety/internal/surety/suretytest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticConfigManager struct {
	config *c.Config
}

func (manager *staticConfigManager) Config() *c.Config { return manager.config }

func (manager *staticConfigManager) SaveConfig() error { return nil }

type response struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	t          *testing.T
	server     *echo.Echo
	operations *operation.DatabaseOperations
}

func (cl *client) do(method, path, token string, body any) (int, *response) {
	cl.t.Helper()
	var reader *strings.Reader
	if body == nil {
		reader = strings.NewReader("")
	} else {
		data, err := json.Marshal(body)
		require.NoError(cl.t, err)
		reader = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	cl.server.ServeHTTP(rec, req)
	res := &response{}
	require.NoError(cl.t, json.Unmarshal(rec.Body.Bytes(), res), rec.Body.String())
	return rec.Code, res
}

// register creates an account and returns its access token
func (cl *client) register(identity string) string {
	cl.t.Helper()
	code, res := cl.do(http.MethodPost, "/api/accounts", "", map[string]string{"identity": identity, "password": "correct-horse"})
	require.Equal(cl.t, http.StatusOK, code, res.Message)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(cl.t, json.Unmarshal(res.Data, &data))
	return data.Token
}

// enroll creates a system account the way the server entry point does and logs it in
func (cl *client) enroll(identity string, permission operation.Permission) string {
	cl.t.Helper()
	_, err := cl.operations.AccountOperation().EnsureAccount(identity, "correct-horse", permission)
	require.NoError(cl.t, err)
	code, res := cl.do(http.MethodPost, "/api/sessions", "", map[string]string{"identity": identity, "password": "correct-horse"})
	require.Equal(cl.t, http.StatusOK, code, res.Message)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(cl.t, json.Unmarshal(res.Data, &data))
	return data.Token
}

func newClient(t *testing.T, options ...surety.Option) (*client, *suretytest.Fixture) {
	t.Helper()
	f := suretytest.New(t, nil, options...)
	config := c.DefaultConfig()
	httpConfig := config.Server.HttpServer
	httpConfig.Limits.RateLimit = 1000
	httpConfig.Limits.RateLimitDuration = time.Minute
	httpConfig.Limits.IdentityLengthMin = 2
	httpConfig.JWT.Secret = "test-secret"
	httpConfig.JWT.ExpiresDuration = 15 * time.Minute
	httpConfig.JWT.RefreshDuration = 24 * time.Hour
	config.Surety = f.Config

	logger := base.NewLogger()
	cleaner := base.NewCleaner(logger)
	app := interfaces.NewApplicationContent(&staticConfigManager{config: config}, cleaner, logger, f.Operations, f.Core, nil)
	return &client{t: t, server: http_server.NewHttpServer(app), operations: f.Operations}, f
}

func TestAccountsAndSessions(t *testing.T) {
	cl, _ := newClient(t)
	cl.register("passenger")

	code, res := cl.do(http.MethodPost, "/api/accounts", "", map[string]string{"identity": "PASSENGER", "password": "another-pass"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "IDENTITY_TAKEN", res.Code)

	code, res = cl.do(http.MethodPost, "/api/sessions", "", map[string]string{"identity": "passenger", "password": "wrong-pass"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "WRONG_IDENTITY_OR_PASSWORD", res.Code)

	code, res = cl.do(http.MethodPost, "/api/sessions", "", map[string]string{"identity": "passenger", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, code)
	var tokens struct {
		Token      string `json:"token"`
		FlushToken string `json:"flush_token"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &tokens))

	code, res = cl.do(http.MethodGet, "/api/sessions", tokens.Token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "NOT_FLUSH_TOKEN", res.Code)
	code, _ = cl.do(http.MethodGet, "/api/sessions", tokens.FlushToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestReservedIdentities(t *testing.T) {
	cl, _ := newClient(t)
	for _, identity := range []string{"owner", " Owner ", "a1", "oracle-0", "ORACLE-17"} {
		code, res := cl.do(http.MethodPost, "/api/accounts", "", map[string]string{"identity": identity, "password": "correct-horse"})
		assert.Equal(t, http.StatusForbidden, code, identity)
		assert.Equal(t, "IDENTITY_RESERVED", res.Code, identity)
	}

	// a permission bit is needed on top of the identity
	code, res := cl.do(http.MethodPost, "/api/accounts", "", map[string]string{"identity": "admin-ish", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, code, res.Message)
	lookalike := cl.enroll("admin-ish", 0)
	code, res = cl.do(http.MethodPut, "/api/operational/all", lookalike, map[string]bool{"enabled": false})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NO_PERMISSION", res.Code)

	owner := cl.enroll(suretytest.Administrator.String(), operation.AdminEntry)
	code, _ = cl.do(http.MethodPut, "/api/operational/all", owner, map[string]bool{"enabled": false})
	assert.Equal(t, http.StatusOK, code)
}

func TestMissingToken(t *testing.T) {
	cl, _ := newClient(t)
	code, res := cl.do(http.MethodPost, "/api/claims", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "MISSING_OR_MALFORMED_JWT", res.Code)

	code, res = cl.do(http.MethodPost, "/api/claims", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_OR_EXPIRED_JWT", res.Code)
}

func TestInsuranceLifecycle(t *testing.T) {
	// every drawn index is 0 so each oracle holds the requested index
	cl, f := newClient(t, surety.WithIndexSource(surety.NewSequenceIndexSource(0)))
	airline := cl.enroll(suretytest.FirstAirline.String(), 0)
	owner := cl.enroll(suretytest.Administrator.String(), operation.AdminEntry|operation.TriggerEntry)
	passenger := cl.register("passenger")

	code, res := cl.do(http.MethodPost, "/api/airlines/funding", airline, map[string]string{"value": "9"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INSUFFICIENT_VALUE", res.Code)
	code, res = cl.do(http.MethodPost, "/api/airlines/funding", airline, map[string]string{"value": "ten"})
	assert.Equal(t, "VALUE_FORMAT_ERROR", res.Code)
	code, _ = cl.do(http.MethodPost, "/api/airlines/funding", airline, map[string]string{"value": "10"})
	require.Equal(t, http.StatusOK, code)

	departure := suretytest.Epoch.Add(24 * time.Hour).Unix()
	code, _ = cl.do(http.MethodPost, "/api/flights", airline, map[string]any{"designator": "sa101", "departure_time": departure})
	require.Equal(t, http.StatusOK, code)
	code, res = cl.do(http.MethodPost, "/api/flights", passenger, map[string]any{"designator": "sa102", "departure_time": departure})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "UNAUTHORIZED", res.Code)

	flightPath := fmt.Sprintf("/api/flights/a1/SA101/%d", departure)
	code, res = cl.do(http.MethodGet, flightPath, "", nil)
	require.Equal(t, http.StatusOK, code)
	var flight struct {
		Designator string `json:"designator"`
		StatusCode int    `json:"status_code"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &flight))
	assert.Equal(t, "SA101", flight.Designator)
	assert.Equal(t, int(StatusUnknown), flight.StatusCode)

	policy := map[string]any{"airline": "a1", "designator": "SA101", "departure_time": departure, "premium": "2"}
	code, res = cl.do(http.MethodPost, "/api/policies", passenger, policy)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALUE_TOO_HIGH", res.Code)
	policy["premium"] = "0.5"
	code, _ = cl.do(http.MethodPost, "/api/policies", passenger, policy)
	require.Equal(t, http.StatusOK, code)

	code, res = cl.do(http.MethodPost, "/api/claims", passenger, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "NOTHING_TO_CLAIM", res.Code)

	code, res = cl.do(http.MethodPost, flightPath+"/requests", passenger, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "UNAUTHORIZED", res.Code)
	code, res = cl.do(http.MethodPost, flightPath+"/requests", owner, nil)
	require.Equal(t, http.StatusOK, code)
	var request struct {
		Index int `json:"index"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &request))

	assert.Zero(t, request.Index)

	key := NewFlightKey("a1", "SA101", departure)
	for _, oracle := range f.Oracles(t, 3) {
		_, err := f.Core.SubmitResponse(oracle, request.Index, key, StatusLateAirline)
		require.NoError(t, err)
	}

	code, res = cl.do(http.MethodGet, fmt.Sprintf("%s/requests/%d", flightPath, request.Index), "", nil)
	require.Equal(t, http.StatusOK, code)
	var finalized struct {
		IsFinalized bool `json:"is_finalized"`
		FinalStatus int  `json:"final_status"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &finalized))
	assert.True(t, finalized.IsFinalized)
	assert.Equal(t, int(StatusLateAirline), finalized.FinalStatus)

	code, res = cl.do(http.MethodPost, "/api/policies", passenger, policy)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FLIGHT_CLOSED", res.Code)

	code, res = cl.do(http.MethodPost, "/api/claims", passenger, nil)
	require.Equal(t, http.StatusOK, code, res.Message)
	code, res = cl.do(http.MethodPost, "/api/claims", passenger, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_CLAIMED", res.Code)

	code, res = cl.do(http.MethodGet, "/api/balance", passenger, nil)
	require.Equal(t, http.StatusOK, code)
	var balance struct {
		Paid Amount `json:"paid"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &balance))
	assert.Equal(t, Amount(750_000_000), balance.Paid)
}

func TestGovernanceEndpoints(t *testing.T) {
	cl, _ := newClient(t)
	owner := cl.enroll(suretytest.Administrator.String(), operation.AdminEntry|operation.TriggerEntry)
	passenger := cl.register("passenger")

	code, res := cl.do(http.MethodPut, "/api/operational/core", passenger, map[string]bool{"enabled": false})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NO_PERMISSION", res.Code)
	code, res = cl.do(http.MethodPost, "/api/callers/passenger", passenger, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NO_PERMISSION", res.Code)
	code, res = cl.do(http.MethodDelete, "/api/callers/passenger", passenger, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NO_PERMISSION", res.Code)

	code, res = cl.do(http.MethodPut, "/api/operational/treasury", owner, map[string]bool{"enabled": false})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "PARAM_ERROR", res.Code)

	code, res = cl.do(http.MethodPut, "/api/operational/all", owner, map[string]bool{"enabled": false})
	require.Equal(t, http.StatusOK, code)
	var status map[string]bool
	require.NoError(t, json.Unmarshal(res.Data, &status))
	assert.Equal(t, map[string]bool{"airline": false, "core": false}, status)

	code, res = cl.do(http.MethodPost, "/api/oracles", passenger, map[string]string{"fee": "1"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "NOT_OPERATIONAL", res.Code)

	code, _ = cl.do(http.MethodPost, "/api/callers/passenger", owner, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = cl.do(http.MethodDelete, "/api/callers/passenger", owner, nil)
	assert.Equal(t, http.StatusOK, code)

	code, res = cl.do(http.MethodGet, "/api/events?after=0&limit=500", "", nil)
	require.Equal(t, http.StatusOK, code)
	var events struct {
		Events []*Observation `json:"events"`
		Next   uint           `json:"next"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &events))
	kinds := make([]ObservationKind, 0, len(events.Events))
	for _, event := range events.Events {
		kinds = append(kinds, event.Kind)
	}
	assert.Equal(t, []ObservationKind{AirlineRegistered, OperatingStatusChanged, OperatingStatusChanged}, kinds)
	assert.Equal(t, events.Events[len(events.Events)-1].ID, events.Next)

	code, res = cl.do(http.MethodGet, "/api/relay/status", "", nil)
	assert.Equal(t, http.StatusOK, code)
	code, res = cl.do(http.MethodPut, "/api/relay/status", passenger, map[string]any{"status_code": 20})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NO_PERMISSION", res.Code)
}
