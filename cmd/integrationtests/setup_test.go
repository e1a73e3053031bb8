package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	account "auction-house/internal/accountService"
	auction "auction-house/internal/auctionService"
	question "auction-house/internal/questionService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing.
func SetupTestRouter() *gin.Engine {
	router, _ := SetupTestEnv()
	return router
}

// SetupTestEnv also exposes the repository so tests can seed state that
// cannot be produced through the API, such as already-ended auctions.
func SetupTestEnv() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	accountSvc := account.NewAccountService(repo, repo, repo)
	auctionSvc := auction.NewAuctionService(repo, repo)
	questionSvc := question.NewQuestionService(repo, repo)

	return server.SetupRouter(accountSvc, auctionSvc, questionSvc), repo
}

// ExecuteRequest executes an HTTP request with an optional session token
// and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Authorization", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the response
// envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	w := ExecuteRequest(t, router, method, url, token, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// registerUser creates an account through the API and returns its user id
func registerUser(t *testing.T, router *gin.Engine, firstName, lastName, email string) int64 {
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", "", map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   "Str0ng!pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return int64(data["user_id"].(float64))
}

// loginUser logs in through the API and returns the session token
func loginUser(t *testing.T, router *gin.Engine, email string) string {
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "Str0ng!pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	return data["session_token"].(string)
}

// createItem lists an item through the API and returns its item id
func createItem(t *testing.T, router *gin.Engine, token, name string, startingBid float64, endDateMs int64) int64 {
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/item", token, map[string]any{
		"name":         name,
		"description":  name + " description",
		"starting_bid": startingBid,
		"end_date":     endDateMs,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return int64(data["item_id"].(float64))
}
