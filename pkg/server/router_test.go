package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/configs"
	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/server"
)

type RouterTestSuite struct {
	suite.Suite
	handler http.Handler
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	logger := zap.NewNop()
	conf := &configs.Config{
		Auth:         configs.Auth{SecretKey: "test-secret", TokenLifetimeMinutes: 30},
		Integrations: configs.Integrations{},
	}

	users := newFakeUserRepo()
	distilleries := newFakeDistilleryRepo()
	whiskeys := newFakeWhiskeyRepo()
	entries := newFakeCollectionRepo()
	tastings := newFakeTastingRepo()
	manager := auth.NewManager(conf, users, logger)

	servers := server.Servers{
		Auth:       server.NewAuthServer(users, manager, logger),
		User:       server.NewUserServer(users, logger),
		Distillery: server.NewDistilleryServer(distilleries, conf, logger),
		Whiskey:    server.NewWhiskeyServer(whiskeys, logger),
		Collection: server.NewCollectionServer(entries, tastings, logger),
		Tasting:    server.NewTastingServer(tastings, entries, logger),
		Insight:    server.NewInsightServer(nil, entries, logger),
	}

	suite.handler = server.NewRouter(servers, manager)
}

func (suite *RouterTestSuite) do(request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, request)

	return recorder
}

func (suite *RouterTestSuite) TestApiRoutes_RequireToken() {
	recorder := suite.do(httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Equal("Bearer", recorder.Header().Get("WWW-Authenticate"))
}

func (suite *RouterTestSuite) TestRegisterLoginMe_FullFlow() {
	recorder := suite.do(jsonRequest(http.MethodPost, "/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	}))
	suite.Equal(http.StatusCreated, recorder.Code)

	form := url.Values{}
	form.Set("username", "a@x.com")
	form.Set("password", "pw1")

	loginRequest := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	loginRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder = suite.do(loginRequest)
	suite.Equal(http.StatusOK, recorder.Code)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &token))
	suite.NotEmpty(token.AccessToken)

	meRequest := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	meRequest.Header.Set("Authorization", "Bearer "+token.AccessToken)

	recorder = suite.do(meRequest)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"a@x.com"`)
	suite.NotContains(recorder.Body.String(), "hashed_password")
}
