package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	loremock "github.com/Arx-Game/arxii-sub002/internal/clients/lore/mock"
	"github.com/Arx-Game/arxii-sub002/internal/engine/rules"
	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	v1 "github.com/Arx-Game/arxii-sub002/internal/handlers/api/v1"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockLore *loremock.MockClient
	router   *gin.Engine
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockLore = loremock.NewMockClient(s.ctrl)

	handler, err := v1.NewCatalogHandler(&v1.CatalogHandlerConfig{
		LoreClient: s.mockLore,
		Engine:     rules.NewAdapter(),
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router.Group("/api/v1"))
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CatalogHandlerTestSuite) TestConfigRequiresClient() {
	_, err := v1.NewCatalogHandler(&v1.CatalogHandlerConfig{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogHandlerTestSuite) TestConfigRequiresEngine() {
	_, err := v1.NewCatalogHandler(&v1.CatalogHandlerConfig{LoreClient: s.mockLore})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogHandlerTestSuite) TestListHomelands() {
	s.mockLore.EXPECT().
		ListHomelands(gomock.Any()).
		Return([]chargen.Homeland{
			{ID: "hl_arx", Name: "Arx"},
			{ID: "hl_reach", Name: "The Reach"},
		}, nil)

	w := s.get("/api/v1/catalog/homelands")

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Homelands []chargen.Homeland `json:"homelands"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Homelands, 2)
	s.Equal("hl_arx", resp.Homelands[0].ID)
}

func (s *CatalogHandlerTestSuite) TestListBeginningsForHomeland() {
	s.mockLore.EXPECT().
		ListBeginnings(gomock.Any(), "hl_arx").
		Return([]chargen.Beginning{{ID: "beg_noble"}}, nil)

	w := s.get("/api/v1/catalog/homelands/hl_arx/beginnings")

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Beginnings []chargen.Beginning `json:"beginnings"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Beginnings, 1)
}

func (s *CatalogHandlerTestSuite) TestListFamiliesForHomeland() {
	s.mockLore.EXPECT().
		ListFamilies(gomock.Any()).
		Return([]chargen.Family{
			{ID: "fam_velenosa", HomelandID: "hl_arx", Name: "House Velenosa"},
			{ID: "fam_greenwood", HomelandID: "hl_reach", Name: "Greenwood Clan"},
		}, nil)

	w := s.get("/api/v1/catalog/homelands/hl_arx/families")

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Families []chargen.Family `json:"families"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Families, 1)
	s.Equal("fam_velenosa", resp.Families[0].ID)
}

func (s *CatalogHandlerTestSuite) TestGetPointBudget() {
	s.mockLore.EXPECT().
		GetActivePointBudget(gomock.Any()).
		Return(&chargen.PointBudget{ID: "budget_1", StartingPoints: 100}, nil)

	w := s.get("/api/v1/catalog/point-budget")

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		PointBudget *chargen.PointBudget `json:"point_budget"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int32(100), resp.PointBudget.StartingPoints)
}

func (s *CatalogHandlerTestSuite) TestLoreErrorPassesThrough() {
	s.mockLore.EXPECT().
		ListResonances(gomock.Any()).
		Return(nil, errors.Unavailable("lore service is unreachable"))

	w := s.get("/api/v1/catalog/resonances")

	s.Equal(http.StatusServiceUnavailable, w.Code)

	var body errors.Body
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(errors.CodeUnavailable.String(), body.Code)
}
