package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/primelab-api/internal/models"
	"github.com/harentsoaR/primelab-api/internal/repository"
)

func TestPageTests(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int64
		wantSize int64
	}{
		{"explicit", "?page=2&size=10", 2, 10},
		{"defaults", "", 1, defaultPageSize},
		{"garbage", "?page=abc&size=-3", 1, defaultPageSize},
		{"capped size", "?page=1&size=5000", 1, maxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.tests.On("Page", mock.Anything, tt.wantPage, tt.wantSize).Return([]models.LabTest{{Title: "CBC"}}, nil)

			rr := s.do(t, http.MethodGet, "/all-tests"+tt.query, "", nil)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Len(t, decode[[]models.LabTest](t, rr), 1)
		})
	}
}

func TestPageTests_PastLastPage(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/all-tests?page=9223372036854775807&size=10", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
	s.tests.AssertNotCalled(t, "Page", mock.Anything, mock.Anything, mock.Anything)
}

func TestCountTests(t *testing.T) {
	s := newTestServer(t)
	s.tests.On("Count", mock.Anything).Return(int64(25), nil)

	rr := s.do(t, http.MethodGet, "/tests-count", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":25}`, rr.Body.String())
}

func TestGetTest(t *testing.T) {
	s := newTestServer(t)
	s.tests.On("Get", mock.Anything, testID).Return(&models.LabTest{Title: "CBC", Slots: 5}, nil)
	s.tests.On("Get", mock.Anything, "65f1c2a9e13b8a1d2c3b4a00").Return(nil, repository.ErrNotFound)
	s.tests.On("Get", mock.Anything, "bad").Return(nil, repository.ErrInvalidID)

	rr := s.do(t, http.MethodGet, "/test/"+testID, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, decode[models.LabTest](t, rr).Slots)

	missing := s.do(t, http.MethodGet, "/test/65f1c2a9e13b8a1d2c3b4a00", "", nil)
	assert.Equal(t, http.StatusOK, missing.Code)
	assert.Equal(t, "null", missing.Body.String())

	bad := s.do(t, http.MethodGet, "/test/bad", "", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.JSONEq(t, `{"error":"Invalid id"}`, bad.Body.String())
}

func TestCreateAndUpdateTest(t *testing.T) {
	s := newTestServer(t)
	s.tests.On("Create", mock.Anything, mock.MatchedBy(func(lt *models.LabTest) bool {
		return lt.Title == "Thyroid" && lt.Slots == 12
	})).Return(models.InsertResult{Acknowledged: true, InsertedID: "t1"}, nil)
	s.tests.On("Update", mock.Anything, testID, mock.MatchedBy(func(lt *models.LabTest) bool {
		return lt.Slots == 3
	})).Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	created := s.do(t, http.MethodPost, "/tests", adminEmail, models.LabTest{Title: "Thyroid", Slots: 12, Price: 35})
	assert.Equal(t, http.StatusOK, created.Code)

	updated := s.do(t, http.MethodPatch, "/test/"+testID, adminEmail, models.LabTest{Title: "Thyroid", Slots: 3})
	assert.Equal(t, http.StatusOK, updated.Code)

	negative := s.do(t, http.MethodPatch, "/test/"+testID, adminEmail, models.LabTest{Title: "Thyroid", Slots: -1})
	assert.Equal(t, http.StatusBadRequest, negative.Code)

	forbidden := s.do(t, http.MethodPost, "/tests", patientEmail, models.LabTest{Title: "Thyroid"})
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
}

func TestBanners(t *testing.T) {
	const bannerID = "65f1c2a9e13b8a1d2c3b4b01"
	s := newTestServer(t)
	s.banners.On("Create", mock.Anything, mock.MatchedBy(func(b models.Document) bool {
		_, hasID := b["_id"]
		return b["title"] == "Winter checkup" && b["couponText"] == "WINTER-25" && !b.IsActive() && !hasID
	})).Return(models.InsertResult{Acknowledged: true, InsertedID: "b1"}, nil)
	s.banners.On("List", mock.Anything).
		Return([]models.Document{{"title": "Winter checkup", "isActive": true, "theme": map[string]interface{}{"color": "teal"}}}, nil)
	s.banners.On("Activate", mock.Anything, bannerID).
		Return(models.UpdateResult{Acknowledged: true, MatchedCount: 2, ModifiedCount: 2}, nil).Twice()
	s.banners.On("Activate", mock.Anything, "65f1c2a9e13b8a1d2c3b4b99").
		Return(models.UpdateResult{}, repository.ErrNotFound)

	created := s.do(t, http.MethodPost, "/banner", adminEmail, map[string]interface{}{
		"_id":        "client-chosen",
		"title":      "Winter checkup",
		"couponText": "WINTER-25",
		"isActive":   true,
	})
	assert.Equal(t, http.StatusOK, created.Code)

	listed := s.do(t, http.MethodGet, "/banners", "", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	assert.JSONEq(t, `[{"title":"Winter checkup","isActive":true,"theme":{"color":"teal"}}]`, listed.Body.String())

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, "/banners/"+bannerID, adminEmail, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, "/banners/"+bannerID+"/activate", adminEmail, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPatch, "/banners/65f1c2a9e13b8a1d2c3b4b99/activate", adminEmail, nil).Code)
}

func TestStats(t *testing.T) {
	s := newTestServer(t)
	s.stats.On("AdminStats", mock.Anything).
		Return(models.AdminStats{Users: 3, TestItems: 8, Reservations: 5, Revenue: 140}, nil)
	s.stats.On("BookedStats", mock.Anything).
		Return(models.BookedStats{TestStats: []models.NameCount{{Name: "CBC", Count: 5}}, ReportStats: []models.NameCount{}}, nil)

	admin := s.do(t, http.MethodGet, "/admin-stats", adminEmail, nil)
	require.Equal(t, http.StatusOK, admin.Code)
	assert.JSONEq(t, `{"users":3,"testItems":8,"reservations":5,"revenue":140}`, admin.Body.String())

	booked := s.do(t, http.MethodGet, "/booked-stats", adminEmail, nil)
	require.Equal(t, http.StatusOK, booked.Code)
	assert.JSONEq(t, `{"testStats":[{"name":"CBC","count":5}],"reportStats":[]}`, booked.Body.String())
}

func TestMostBookedTests(t *testing.T) {
	s := newTestServer(t)
	s.stats.On("MostBookedTests", mock.Anything, mostBookedLimit).
		Return([]models.BookedTest{{ID: testID, Count: 4, Title: "CBC"}}, nil).Once()
	s.stats.On("MostBookedTests", mock.Anything, mostBookedLimit).
		Return([]models.BookedTest(nil), errors.New("$lookup failed")).Once()

	rr := s.do(t, http.MethodGet, "/most-booked-tests", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(4), decode[[]models.BookedTest](t, rr)[0].Count)

	failed := s.do(t, http.MethodGet, "/most-booked-tests", "", nil)
	assert.Equal(t, http.StatusInternalServerError, failed.Code)
	assert.JSONEq(t, `{"message":"Error retrieving most booked tests"}`, failed.Body.String())
}

func TestContent(t *testing.T) {
	s := newTestServer(t)
	s.content.On("Recommendations", mock.Anything).Return([]models.Document{{"title": "Hydrate"}}, nil)
	s.content.On("Doctors", mock.Anything).Return([]models.Document{{
		"name":          "Dr. Rahman",
		"specialty":     "Pathology",
		"qualification": "MBBS, FCPS",
		"availability":  []interface{}{"Sun", "Tue"},
	}}, nil)
	s.content.On("CreateFeedback", mock.Anything, mock.MatchedBy(func(f models.Document) bool {
		return f["message"] == "Quick results" && f["rating"] == 4.5 && f["testName"] == "CBC"
	})).Return(models.InsertResult{Acknowledged: true, InsertedID: "f1"}, nil)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/recommendations", "", nil).Code)

	doctors := s.do(t, http.MethodGet, "/doctors", "", nil)
	require.Equal(t, http.StatusOK, doctors.Code)
	assert.JSONEq(t,
		`[{"name":"Dr. Rahman","specialty":"Pathology","qualification":"MBBS, FCPS","availability":["Sun","Tue"]}]`,
		doctors.Body.String())

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/feedback", "", map[string]interface{}{
		"message":  "Quick results",
		"rating":   4.5,
		"testName": "CBC",
	}).Code)
}

func TestCreateFeedback_RejectsNonObject(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`[1,2]`, `null`, `{broken`} {
		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}
