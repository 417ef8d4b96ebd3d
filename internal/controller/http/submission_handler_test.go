package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bountyboard/internal/entity"
	"bountyboard/internal/usecase"
	"bountyboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionUseCase is a mock implementation of SubmissionUseCase
type MockSubmissionUseCase struct {
	mock.Mock
}

func (m *MockSubmissionUseCase) CreateSubmission(input usecase.CreateSubmissionInput) (*entity.Submission, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockSubmissionUseCase) Resubmit(parentID string, input usecase.CreateSubmissionInput) (*entity.Submission, error) {
	args := m.Called(parentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockSubmissionUseCase) GetSubmission(id string) (*entity.Submission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockSubmissionUseCase) ListByBrief(briefID string, limit, offset int) ([]*entity.Submission, error) {
	args := m.Called(briefID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Submission), args.Error(1)
}

func (m *MockSubmissionUseCase) UpdateStatus(id string, input usecase.ReviewInput) (*entity.Submission, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockSubmissionUseCase) UpdatePayout(id string, input usecase.PayoutInput) (*entity.Submission, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

var _ usecase.SubmissionUseCase = (*MockSubmissionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCreateSubmission_Success(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/submissions", handler.CreateSubmission)

	input := usecase.CreateSubmissionInput{
		BriefID:      "brief-123",
		CreatorName:  "Jess Chen",
		CreatorEmail: "jess@example.com",
		VideoURL:     "https://cdn.example.com/submissions/abc.mp4",
	}
	mockSub := &entity.Submission{
		ID:           "sub-123",
		BriefID:      input.BriefID,
		CreatorEmail: input.CreatorEmail,
		Status:       entity.SubmissionStatusReceived,
		PayoutStatus: entity.PayoutStatusNotApplicable,
	}
	mockUseCase.On("CreateSubmission", input).Return(mockSub, nil)

	body := `{"briefId":"brief-123","creatorName":"Jess Chen","creatorEmail":"jess@example.com","videoUrl":"https://cdn.example.com/submissions/abc.mp4"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Submission
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "sub-123", response.ID)
	assert.Equal(t, entity.SubmissionStatusReceived, response.Status)
	mockUseCase.AssertExpectations(t)
}

func TestCreateSubmission_MissingFields(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/submissions", handler.CreateSubmission)

	body := `{"briefId":"brief-123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateSubmission")
}

func TestCreateSubmission_CapReached(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/submissions", handler.CreateSubmission)

	mockUseCase.On("CreateSubmission", mock.Anything).Return(nil, entity.ErrSubmissionLimitReached)

	body := `{"briefId":"brief-123","creatorName":"Jess Chen","creatorEmail":"jess@example.com","videoUrl":"https://cdn.example.com/submissions/abc.mp4"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateSubmission_BriefNotFound(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/submissions", handler.CreateSubmission)

	mockUseCase.On("CreateSubmission", mock.Anything).Return(nil, entity.ErrNotFound)

	body := `{"briefId":"no-such-brief","creatorName":"Jess Chen","creatorEmail":"jess@example.com","videoUrl":"https://cdn.example.com/submissions/abc.mp4"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateStatus_Success(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/submissions/:id/status", handler.UpdateStatus)

	mockSub := &entity.Submission{
		ID:     "sub-123",
		Status: entity.SubmissionStatusInReview,
	}
	mockUseCase.On("UpdateStatus", "sub-123", usecase.ReviewInput{
		Status: entity.SubmissionStatusInReview,
	}).Return(mockSub, nil)

	body := `{"status":"IN_REVIEW"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/submissions/sub-123/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/submissions/:id/status", handler.UpdateStatus)

	mockUseCase.On("UpdateStatus", "sub-123", mock.Anything).Return(nil, entity.ErrInvalidTransition)

	body := `{"status":"SELECTED"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/submissions/sub-123/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePayout_NotSelected(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/submissions/:id/payout", handler.UpdatePayout)

	mockUseCase.On("UpdatePayout", "sub-123", mock.Anything).Return(nil, entity.ErrPayoutNotSelected)

	body := `{"payoutStatus":"PAID"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/submissions/sub-123/payout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestResubmit_NotAllowed(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/submissions/:id/resubmit", handler.Resubmit)

	mockUseCase.On("Resubmit", "sub-123", mock.Anything).Return(nil, entity.ErrResubmissionNotAllowed)

	body := `{"videoUrl":"https://cdn.example.com/submissions/take2.mp4"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submissions/sub-123/resubmit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetSubmission_NotFound(t *testing.T) {
	mockUseCase := new(MockSubmissionUseCase)
	handler := NewSubmissionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/submissions/:id", handler.GetSubmission)

	mockUseCase.On("GetSubmission", "no-such-sub").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/submissions/no-such-sub", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}
