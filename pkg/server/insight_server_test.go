package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/model"
	"marwood.io/WhiskeyVault/pkg/server"
)

type InsightServerTestSuite struct {
	suite.Suite
	insight *fakeInsight
	entries *fakeCollectionRepo
	user    *model.User
}

func TestInsightServerTestSuite(t *testing.T) {
	suite.Run(t, new(InsightServerTestSuite))
}

func (suite *InsightServerTestSuite) SetupTest() {
	suite.insight = &fakeInsight{}
	suite.entries = newFakeCollectionRepo()
	suite.user = &model.User{Base: model.Base{ID: 9}, Email: "a@x.com", IsActive: true}
}

func (suite *InsightServerTestSuite) service() *server.InsightServer {
	return server.NewInsightServer(suite.insight, suite.entries, zap.NewNop())
}

func (suite *InsightServerTestSuite) TestWhiskey_ReturnsStructuredInfo() {
	suite.insight.info = &model.WhiskeyInfo{Name: "Lagavulin 16", Description: "peaty", Found: true}

	request := asUser(jsonRequest(http.MethodPost, "/api/insights/whiskey", map[string]string{
		"query": "Lagavulin 16",
	}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Whiskey(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"found":true`)
	suite.Contains(recorder.Body.String(), `"peaty"`)
}

// A failing collaborator degrades to found:false, never a 5xx.
func (suite *InsightServerTestSuite) TestWhiskey_DegradesOnFailure() {
	suite.insight.err = errors.New("upstream down")

	request := asUser(jsonRequest(http.MethodPost, "/api/insights/whiskey", map[string]string{
		"query": "Lagavulin 16",
	}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Whiskey(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"found":false`)
	suite.Contains(recorder.Body.String(), `"Lagavulin 16"`)
}

func (suite *InsightServerTestSuite) TestWhiskey_NoIntegrationConfigured() {
	request := asUser(jsonRequest(http.MethodPost, "/api/insights/whiskey", map[string]string{
		"query": "Lagavulin 16",
	}), suite.user)
	recorder := httptest.NewRecorder()

	server.NewInsightServer(nil, suite.entries, zap.NewNop()).Whiskey(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"found":false`)
}

func (suite *InsightServerTestSuite) TestWhiskey_RequiresQuery() {
	request := asUser(jsonRequest(http.MethodPost, "/api/insights/whiskey", map[string]string{}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Whiskey(recorder, request)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *InsightServerTestSuite) TestAnalysis_EmptyCollection() {
	request := asUser(jsonRequest(http.MethodPost, "/api/insights/analysis", map[string]string{}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Analysis(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"analysis":"","found":false}`, recorder.Body.String())
}

func (suite *InsightServerTestSuite) TestAnalysis_ReturnsText() {
	suite.insight.analysis = "heavy on Islay"

	_, err := suite.entries.CreateUserWhiskey(nil, model.UserWhiskey{
		WhiskeyID: 4,
		Whiskey:   &model.Whiskey{Name: "Lagavulin 16"},
	}, suite.user.ID)
	suite.Require().NoError(err)

	request := asUser(jsonRequest(http.MethodPost, "/api/insights/analysis", map[string]string{}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Analysis(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"heavy on Islay"`)
	suite.Contains(recorder.Body.String(), `"found":true`)
}

func (suite *InsightServerTestSuite) TestAnalysis_DegradesOnFailure() {
	suite.insight.err = errors.New("upstream down")

	_, err := suite.entries.CreateUserWhiskey(nil, model.UserWhiskey{
		WhiskeyID: 4,
		Whiskey:   &model.Whiskey{Name: "Lagavulin 16"},
	}, suite.user.ID)
	suite.Require().NoError(err)

	request := asUser(jsonRequest(http.MethodPost, "/api/insights/analysis", map[string]string{}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Analysis(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"found":false`)
}

func (suite *InsightServerTestSuite) TestRecommendation_ReturnsText() {
	suite.insight.recommendation = "try an Ardbeg 10"

	request := asUser(jsonRequest(http.MethodPost, "/api/insights/recommendation", map[string]string{
		"preferences": "peaty, under 60 euro",
	}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Recommendation(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"try an Ardbeg 10"`)
}

func (suite *InsightServerTestSuite) TestRecommendation_RequiresPreferences() {
	request := asUser(jsonRequest(http.MethodPost, "/api/insights/recommendation", map[string]string{}), suite.user)
	recorder := httptest.NewRecorder()

	suite.service().Recommendation(recorder, request)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}
