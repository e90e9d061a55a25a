package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/internal/mocks"
	"github.com/arnavshah/duty-planner-go/pkg/handlers"
	"github.com/arnavshah/duty-planner-go/pkg/metrics"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HandlerTestSuite exercises the routes against mocked services
type HandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	personnel      *mocks.MockPersonnelServiceInterface
	unavailability *mocks.MockUnavailabilityServiceInterface
	schedule       *mocks.MockScheduleServiceInterface
	router         *gin.Engine
	pingErr        error
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.personnel = mocks.NewMockPersonnelServiceInterface(suite.ctrl)
	suite.unavailability = mocks.NewMockUnavailabilityServiceInterface(suite.ctrl)
	suite.schedule = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.pingErr = nil

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "dutyplanner")
	collector.RecordSlotFilled("Kitchen Morning")

	suite.router = handlers.NewRouter(&handlers.Handler{
		Personnel:      suite.personnel,
		Unavailability: suite.unavailability,
		Schedule:       suite.schedule,
	}, handlers.RouterOptions{
		Gatherer: reg,
		Ping:     func(context.Context) error { return suite.pingErr },
		Version:  "test",
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HandlerTestSuite) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(raw)
	}
	return suite.do(method, path, body, "application/json")
}

func decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.NotEmpty(w.Header().Get(handlers.RequestIDHeader))

	suite.pingErr = errors.New("database is closed")
	w = suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(handlers.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal("abc-123", w.Header().Get(handlers.RequestIDHeader))
}

func (suite *HandlerTestSuite) TestMetrics() {
	w := suite.do(http.MethodGet, "/metrics", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "dutyplanner_scheduler_slots_filled_total")
}

func (suite *HandlerTestSuite) TestCreatePerson() {
	suite.personnel.EXPECT().Create(gomock.Any(), &service.CreatePersonRequest{Name: "Dana", Role: models.RoleGuard}).
		Return(&models.Person{ID: 1, Name: "Dana", Role: models.RoleGuard, Available: true}, nil)

	w := suite.doJSON(http.MethodPost, "/api/personnel", gin.H{"name": "Dana", "role": "Guard"})
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("Dana", decode(w)["name"])
}

func (suite *HandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: apperrors.NewValidationError("name", "is required"), status: http.StatusBadRequest},
		{name: "invalid role", err: fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, "Pilot"), status: http.StatusBadRequest},
		{name: "not found", err: apperrors.ErrPersonNotFound, status: http.StatusNotFound},
		{name: "internal", err: errors.New("disk full"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.personnel.EXPECT().Get(gomock.Any(), uint(3)).Return(nil, tc.err)
			w := suite.do(http.MethodGet, "/api/personnel/3", nil, "")
			suite.Equal(tc.status, w.Code)
			body := decode(w)
			suite.NotEmpty(body["error"])
			suite.Equal(tc.err.Error(), body["details"])
		})
	}
}

func (suite *HandlerTestSuite) TestBadIDAndBody() {
	w := suite.do(http.MethodDelete, "/api/personnel/abc", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/unavailability", strings.NewReader("{"), "application/json")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateAndDeletePerson() {
	no := false
	suite.personnel.EXPECT().Update(gomock.Any(), uint(2), &service.UpdatePersonRequest{Available: &no}).
		Return(&models.Person{ID: 2, Available: false}, nil)
	w := suite.doJSON(http.MethodPut, "/api/personnel/2", gin.H{"available": false})
	suite.Equal(http.StatusOK, w.Code)

	suite.personnel.EXPECT().Delete(gomock.Any(), uint(2)).Return(nil)
	w = suite.do(http.MethodDelete, "/api/personnel/2", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestImportPersonnel_Multipart() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "roster.csv")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("name,role\nDana,Guard\n"))
	suite.Require().NoError(mw.Close())

	suite.personnel.EXPECT().Import(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r io.Reader) (*service.ImportResult, error) {
		raw, err := io.ReadAll(r)
		suite.Require().NoError(err)
		suite.Equal("name,role\nDana,Guard\n", string(raw))
		return &service.ImportResult{Imported: 1}, nil
	})

	w := suite.do(http.MethodPost, "/api/personnel/import", &body, mw.FormDataContentType())
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(1), decode(w)["imported"])
}

func (suite *HandlerTestSuite) TestImportPersonnel_RawBody() {
	suite.personnel.EXPECT().Import(gomock.Any(), gomock.Any()).Return(&service.ImportResult{Imported: 2}, nil)
	w := suite.do(http.MethodPost, "/api/personnel/import", strings.NewReader("name,role\nA,Guard\nB,Kitchen\n"), "text/csv")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestUnavailability() {
	suite.unavailability.EXPECT().List(gomock.Any(), "").Return([]models.Unavailability{{ID: 1}}, nil)
	w := suite.do(http.MethodGet, "/api/unavailability", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(1), decode(w)["total"])

	suite.unavailability.EXPECT().List(gomock.Any(), "2025-01-01").Return(nil, nil)
	w = suite.do(http.MethodGet, "/api/unavailability?from=2025-01-01", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	suite.unavailability.EXPECT().Create(gomock.Any(), &service.CreateUnavailabilityRequest{PersonID: 4, Date: "2025-01-02", Reason: "Leave"}).
		Return(&models.Unavailability{ID: 9, PersonID: 4, Date: "2025-01-02", Reason: "Leave"}, nil)
	w = suite.doJSON(http.MethodPost, "/api/unavailability", gin.H{"person_id": 4, "date": "2025-01-02", "reason": "Leave"})
	suite.Equal(http.StatusCreated, w.Code)

	suite.unavailability.EXPECT().Delete(gomock.Any(), uint(9)).Return(apperrors.ErrUnavailabilityNotFound)
	w = suite.do(http.MethodDelete, "/api/unavailability/9", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGenerateSchedule() {
	result := &models.GenerateResult{
		Date:        "2025-03-14",
		Assignments: []models.Assignment{{ID: 1, PersonID: 1, Date: "2025-03-14", SlotName: "Guard 00:00-02:00"}},
		Outcomes: []models.SlotOutcome{
			{Slot: "Guard 00:00-02:00", Status: models.SlotFilled, PersonID: 1},
			{Slot: "Kitchen Morning", Status: models.SlotUnfilled, Reasons: []string{"no person holds role Kitchen"}},
		},
	}
	suite.schedule.EXPECT().Generate(gomock.Any(), "2025-03-14").Return(result, nil)

	w := suite.do(http.MethodPost, "/api/schedule/2025-03-14/generate", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	body := decode(w)
	suite.Equal(true, body["partial"])
	suite.Equal(false, body["complete"])
	suite.Equal(float64(1), body["unfilled"])
	suite.Len(body["outcomes"], 2)

	suite.schedule.EXPECT().Generate(gomock.Any(), "14-03-2025").Return(nil, fmt.Errorf("%w: bad", apperrors.ErrInvalidDate))
	w = suite.do(http.MethodPost, "/api/schedule/14-03-2025/generate", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestViewConfirmExport() {
	suite.schedule.EXPECT().View(gomock.Any(), "2025-03-14").Return(&service.ScheduleView{Date: "2025-03-14"}, nil)
	w := suite.do(http.MethodGet, "/api/schedule/2025-03-14", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	suite.schedule.EXPECT().Confirm(gomock.Any(), "2025-03-14").Return(int64(5), nil)
	w = suite.do(http.MethodPost, "/api/schedule/2025-03-14/confirm", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(5), decode(w)["confirmed"])

	suite.schedule.EXPECT().ExportCSV(gomock.Any(), "2025-03-14", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, out io.Writer) error {
		_, err := io.WriteString(out, "date,slot\n")
		return err
	})
	w = suite.do(http.MethodGet, "/api/schedule/2025-03-14/csv", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), "schedule-2025-03-14.csv")
	suite.Equal("date,slot\n", w.Body.String())
}

func (suite *HandlerTestSuite) TestCoverage() {
	suite.schedule.EXPECT().Coverage(gomock.Any(), "2025-03-14").Return([]models.SlotCoverage{
		{Slot: "Guard 00:00-02:00", Filled: true, PersonID: 1},
		{Slot: "Barracks Day", Eligible: 2},
		{Slot: "Kitchen Morning"},
	}, nil)

	w := suite.do(http.MethodGet, "/api/schedule/2025-03-14/coverage", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	body := decode(w)
	suite.Equal(false, body["valid"])
	suite.Equal([]interface{}{"Barracks Day", "Kitchen Morning"}, body["open"])
	suite.Equal([]interface{}{"Kitchen Morning"}, body["uncoverable"])
}

func (suite *HandlerTestSuite) TestStatsDashboardSlots() {
	suite.schedule.EXPECT().Stats(gomock.Any()).Return(&service.StatsResponse{
		TotalPersons:  2,
		TotalServices: 5,
		FairnessScore: 80,
		Generations:   []models.GenerationLog{{Date: "2025-03-14", Runs: 2, Filled: 5}},
	}, nil)
	w := suite.do(http.MethodGet, "/api/stats", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	totals := decode(w)["totals"].(map[string]interface{})
	suite.Equal(float64(2), totals["runs"])
	suite.Equal(float64(5), totals["services"])

	suite.schedule.EXPECT().Dashboard(gomock.Any()).Return(&service.DashboardResponse{PersonnelCount: 7, Today: "2025-03-14"}, nil)
	w = suite.do(http.MethodGet, "/api/dashboard", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(7), decode(w)["personnel_count"])

	suite.schedule.EXPECT().Slots().Return([]models.Slot{{Name: "Kitchen Morning", RequiredRole: models.RoleKitchen}})
	w = suite.do(http.MethodGet, "/api/slots", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(decode(w)["slots"], 1)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
