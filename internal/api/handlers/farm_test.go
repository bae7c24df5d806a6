package handlers_test

import (
	"net/http"
	"testing"

	"farm-assets-backend/internal/api/handlers"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/mocks"
	"farm-assets-backend/internal/service"
	"farm-assets-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FarmHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockFarmServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *FarmHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFarmServiceInterface(suite.ctrl)
	handler := handlers.NewFarmHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	farms := suite.http.Router.Group("/farms", signedInAs(3))
	farms.GET("", handler.ListFarms)
	farms.GET("/:id", handler.GetFarm)
	farms.POST("", handler.CreateFarm)
	farms.PUT("/:id", handler.UpdateFarm)
}

func (suite *FarmHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FarmHandlerTestSuite) TestListFarms_BindsQuery() {
	suite.mockService.EXPECT().List(uint(3), gomock.Any()).DoAndReturn(
		func(_ uint, query *service.FarmListQuery) (*service.FarmListResponse, error) {
			suite.Equal(2, query.Page)
			suite.Equal(10, query.PerPage)
			suite.Require().NotNil(query.Active)
			suite.False(*query.Active)
			return &service.FarmListResponse{Farms: []service.FarmResponse{{ID: 4}}, Total: 11, Page: 2, PerPage: 10}, nil
		})

	w := suite.http.MakeRequest(http.MethodGet, "/farms?page=2&per_page=10&active=false", nil)

	var got service.FarmListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(int64(11), got.Total)
	suite.Len(got.Farms, 1)
}

func (suite *FarmHandlerTestSuite) TestListFarms_NoFilter() {
	suite.mockService.EXPECT().List(uint(3), &service.FarmListQuery{}).Return(&service.FarmListResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/farms", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *FarmHandlerTestSuite) TestListFarms_BadQuery() {
	w := suite.http.MakeRequest(http.MethodGet, "/farms?active=maybe", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FarmHandlerTestSuite) TestGetFarm_NotFound() {
	suite.mockService.EXPECT().GetByID(uint(3), uint(9)).Return(nil, apperrors.ErrFarmNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/farms/9", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Farm does not exists")
}

func (suite *FarmHandlerTestSuite) TestGetFarm_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/farms/abc", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Farm does not exists")
}

func (suite *FarmHandlerTestSuite) TestCreateFarm() {
	suite.mockService.EXPECT().Create(uint(3), gomock.Any()).DoAndReturn(
		func(_ uint, req *service.FarmRequest) (*service.FarmResponse, error) {
			suite.Require().NotNil(req.QtyHectaresLand)
			suite.Equal(42.5, *req.QtyHectaresLand)
			suite.Nil(req.Active)
			return &service.FarmResponse{ID: 12, Name: req.Name, QtyHectaresLand: 42.5, Active: true}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/farms", map[string]interface{}{
		"name":              "Santa Luzia",
		"city":              "Ribeirão Preto",
		"state":             "SP",
		"qty_hectares_land": 42.5,
	})

	var got service.FarmResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(uint(12), got.ID)
	suite.True(got.Active)
}

func (suite *FarmHandlerTestSuite) TestUpdateFarm() {
	suite.mockService.EXPECT().Update(uint(3), uint(12), gomock.Any()).Return(&service.FarmResponse{ID: 12}, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/farms/12", map[string]interface{}{"active": false})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *FarmHandlerTestSuite) TestUpdateFarm_NotOwned() {
	suite.mockService.EXPECT().Update(uint(3), uint(12), gomock.Any()).Return(nil, apperrors.ErrFarmNotFound)

	w := suite.http.MakeRequest(http.MethodPut, "/farms/12", map[string]interface{}{"name": "x"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Farm does not exists")
}

func TestFarmHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FarmHandlerTestSuite))
}
