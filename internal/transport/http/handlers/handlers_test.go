package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"nomina/internal/domain/employee"
	"nomina/internal/domain/payroll"
	"nomina/internal/store/memory"
	"nomina/internal/transport/http/handlers"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	roster, err := employee.NewRoster(memory.NewEmployeeStore())
	require.NoError(t, err)
	handler := handlers.New(roster, payroll.NewService(memory.NewPayrollStore()))
	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, method, url, body string) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

const mariaJSON = `{"cedula":"0912345678","nombre":"Maria Lopez","sueldo":1000,"departamento":"Ventas","cargo":"Analista"}`

func TestCreateAndListEmployees(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/employees", mariaJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)
	require.NotEmpty(t, env.RequestID)

	resp, env = do(t, http.MethodGet, server.URL+"/api/v1/employees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "0912345678", listed[0].Cedula)
	require.Equal(t, 1000.0, listed[0].Sueldo)
}

func TestCreateDuplicateConflicts(t *testing.T) {
	server := newTestServer(t)

	resp, _ := do(t, http.MethodPost, server.URL+"/api/v1/employees", mariaJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/employees", mariaJSON)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "duplicate_cedula", env.Error.Code)
}

func TestCreateValidationFailure(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/employees",
		`{"cedula":"123","nombre":"Maria","sueldo":1000,"departamento":"Ventas","cargo":"Analista"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "validation_error", env.Error.Code)
	require.Contains(t, env.Error.Message, "cedula")
}

func TestUpdateSubsetOfFields(t *testing.T) {
	server := newTestServer(t)
	do(t, http.MethodPost, server.URL+"/api/v1/employees", mariaJSON)

	resp, env := do(t, http.MethodPut, server.URL+"/api/v1/employees/0912345678", `{"sueldo":1800}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, 1800.0, updated.Sueldo)
	require.Equal(t, "Maria Lopez", updated.Nombre)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodDelete, server.URL+"/api/v1/employees/0000000000", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "not_found", env.Error.Code)
}

func TestGeneratePayrollAndStats(t *testing.T) {
	server := newTestServer(t)
	do(t, http.MethodPost, server.URL+"/api/v1/employees", mariaJSON)
	do(t, http.MethodPost, server.URL+"/api/v1/employees",
		`{"cedula":"0998765432","nombre":"Pedro Andrade","sueldo":1500,"departamento":"Sistemas","cargo":"Desarrollador"}`)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/payrolls/202609", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var run payroll.Payroll
	require.NoError(t, json.Unmarshal(env.Data, &run))
	require.Len(t, run.Details, 2)
	require.Equal(t, 935.5, run.Details[0].Net)

	resp, env = do(t, http.MethodGet, server.URL+"/api/v1/payrolls/202609/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats payroll.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	require.Equal(t, 2, stats.TotalEmployees)
	require.Equal(t, []string{"Pedro Andrade"}, stats.HighEarners)
}

func TestGenerateOnEmptyRoster(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodPost, server.URL+"/api/v1/payrolls/202609", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "empty_roster", env.Error.Code)
}

// Reads and writes share one roster; the handler must serialize them so the
// race detector stays quiet while GETs overlap with POSTs and DELETEs.
func TestConcurrentReadsAndWrites(t *testing.T) {
	server := newTestServer(t)

	// t.Errorf only: require's FailNow must not run outside the test goroutine.
	request := func(method, url, body string) {
		req, err := http.NewRequest(method, url, strings.NewReader(body))
		if err != nil {
			t.Errorf("build request: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Errorf("%s %s: %v", method, url, err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			t.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode)
		}
	}

	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				cedula := fmt.Sprintf("09%d%07d", worker, i)
				body := fmt.Sprintf(
					`{"cedula":%q,"nombre":"Maria Lopez","sueldo":1000,"departamento":"Ventas","cargo":"Analista"}`,
					cedula)
				request(http.MethodPost, server.URL+"/api/v1/employees", body)
				request(http.MethodDelete, server.URL+"/api/v1/employees/"+cedula, "")
			}
		}(worker)
	}
	for reader := 0; reader < 4; reader++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				request(http.MethodGet, server.URL+"/api/v1/employees", "")
				request(http.MethodGet, server.URL+"/api/v1/payrolls/202609/stats", "")
			}
		}()
	}
	wg.Wait()

	resp, env := do(t, http.MethodGet, server.URL+"/api/v1/employees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Empty(t, listed)
}

func TestStatsUnknownPeriod(t *testing.T) {
	server := newTestServer(t)

	resp, env := do(t, http.MethodGet, server.URL+"/api/v1/payrolls/190001/stats", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "not_found", env.Error.Code)
}
