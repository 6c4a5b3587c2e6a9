package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	hmocks "github.com/onRAM-ai/gcg-portal/internal/handler/mocks"
	"github.com/onRAM-ai/gcg-portal/internal/router"
)

type testEnv struct {
	auth          *hmocks.MockAuthSvc
	users         *hmocks.MockUserSvc
	venues        *hmocks.MockVenueSvc
	shifts        *hmocks.MockShiftSvc
	bookings      *hmocks.MockBookingSvc
	availability  *hmocks.MockAvailabilitySvc
	feedback      *hmocks.MockFeedbackSvc
	invitations   *hmocks.MockInvitationSvc
	credits       *hmocks.MockCreditSvc
	notifications *hmocks.MockNotificationSvc
	documents     *hmocks.MockDocumentSvc
	tokens        *auth.TokenManager
	router        http.Handler
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:          hmocks.NewMockAuthSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		venues:        hmocks.NewMockVenueSvc(t),
		shifts:        hmocks.NewMockShiftSvc(t),
		bookings:      hmocks.NewMockBookingSvc(t),
		availability:  hmocks.NewMockAvailabilitySvc(t),
		feedback:      hmocks.NewMockFeedbackSvc(t),
		invitations:   hmocks.NewMockInvitationSvc(t),
		credits:       hmocks.NewMockCreditSvc(t),
		notifications: hmocks.NewMockNotificationSvc(t),
		documents:     hmocks.NewMockDocumentSvc(t),
		tokens:        auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour),
	}

	h := handler.New(handler.Config{
		Auth:          env.auth,
		Users:         env.users,
		Venues:        env.venues,
		Shifts:        env.shifts,
		Bookings:      env.bookings,
		Availability:  env.availability,
		Feedback:      env.feedback,
		Invitations:   env.invitations,
		Credits:       env.credits,
		Notifications: env.notifications,
		Documents:     env.documents,
	})

	env.router = router.InitRouter("test", h, env.tokens)
	return env
}

func (e *testEnv) tokenFor(t *testing.T, id string, role domain.Role) string {
	t.Helper()
	token, err := e.tokens.Issue(&domain.User{ID: id, Role: role})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// --- Access control ---

func TestAPI_Unauthenticated(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/api/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_WrongRole(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "u1", domain.RoleUser)

	w := env.do(t, http.MethodPost, "/api/credits", token, dto.ApplyCreditRequest{
		UserID: "u1", Amount: 10, Type: "topup",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPage_AnonymousRedirectsToLoginWithTarget(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/admin", "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?redirectTo=%2Fadmin", w.Header().Get("Location"))
}

func TestPage_WrongRoleRedirectsToOwnLanding(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "u1", domain.RoleUser)

	w := env.do(t, http.MethodGet, "/admin", token, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestPage_AdminOnVenuePageRedirectsToAdmin(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "a1", domain.RoleAdmin)

	w := env.do(t, http.MethodGet, "/venue", token, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestPage_MatchingRoleRenders(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "a1", domain.RoleAdmin)

	w := env.do(t, http.MethodGet, "/admin", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Credits ---

func TestApplyCredit_AdminTopup(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "a1", domain.RoleAdmin)

	const workerID = "66666666-6666-6666-6666-666666666666"
	env.credits.EXPECT().Apply(mock.Anything, workerID, int64(50), domain.CreditTopup).
		Return(int64(150), &domain.CreditTransaction{
			ID:     "t1",
			UserID: workerID,
			Amount: 50,
			Type:   domain.CreditTopup,
			Status: domain.CreditStatusCompleted,
		}, nil)

	w := env.do(t, http.MethodPost, "/api/credits", token, dto.ApplyCreditRequest{
		UserID: workerID, Amount: 50, Type: "topup",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Balance     int64                         `json:"balance"`
		Transaction dto.CreditTransactionResponse `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(150), resp.Balance)
	assert.Equal(t, "completed", resp.Transaction.Status)
}

// --- Users ---

func TestUpdateUser_RoleEscalationForbidden(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "11111111-1111-1111-1111-111111111111", domain.RoleUser)

	env.users.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrForbidden)

	admin := "admin"
	w := env.do(t, http.MethodPut,
		"/api/users/11111111-1111-1111-1111-111111111111", token,
		dto.UpdateUserRequest{Role: &admin})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUser_OtherUsersRecordForbidden(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "u1", domain.RoleUser)

	w := env.do(t, http.MethodGet, "/api/users/22222222-2222-2222-2222-222222222222", token, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Shifts ---

func TestAssignShift_Conflict(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "u1", domain.RoleUser)

	env.shifts.EXPECT().
		Assign(mock.Anything, "33333333-3333-3333-3333-333333333333", "u1").
		Return(nil, domain.ErrAlreadyAssigned)

	w := env.do(t, http.MethodPost,
		"/api/shifts/33333333-3333-3333-3333-333333333333/assign", token, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssignShift_WorkerSignsSelfUp(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "u1", domain.RoleUser)

	env.shifts.EXPECT().
		Assign(mock.Anything, "33333333-3333-3333-3333-333333333333", "u1").
		Return(&domain.ShiftAssignment{
			ID:      "a1",
			ShiftID: "33333333-3333-3333-3333-333333333333",
			UserID:  "u1",
			Status:  domain.AssignmentStatusPending,
		}, nil)

	w := env.do(t, http.MethodPost,
		"/api/shifts/33333333-3333-3333-3333-333333333333/assign", token, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "u1", resp.UserID)
}

// --- Bookings ---

func TestCreateBooking_OverlapConflict(t *testing.T) {
	env := setup(t)
	token := env.tokenFor(t, "a1", domain.RoleAdmin)

	env.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrOverlappingBooking)

	w := env.do(t, http.MethodPost, "/api/bookings", token, dto.CreateBookingRequest{
		VenueID:       "44444444-4444-4444-4444-444444444444",
		EntertainerID: "55555555-5555-5555-5555-555555555555",
		StartTime:     "2026-09-04T18:00:00Z",
		EndTime:       "2026-09-04T23:00:00Z",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Invitations ---

func TestValidateInvitation_Public(t *testing.T) {
	env := setup(t)

	env.invitations.EXPECT().Validate(mock.Anything, "sometoken").
		Return(&domain.Invitation{
			Email:     "worker@example.com",
			Role:      domain.RoleUser,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	w := env.do(t, http.MethodGet, "/api/invitations/validate/sometoken", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "worker@example.com")
}

func TestValidateInvitation_ExpiredReportsNotFound(t *testing.T) {
	env := setup(t)

	env.invitations.EXPECT().Validate(mock.Anything, "stale").
		Return(nil, domain.ErrInvitationNotFound)

	w := env.do(t, http.MethodGet, "/api/invitations/validate/stale", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Auth ---

func TestRegister_WithInviteTokenUsesInvitationRole(t *testing.T) {
	env := setup(t)

	env.invitations.EXPECT().Validate(mock.Anything, "tok").
		Return(&domain.Invitation{
			Email:  "manager@example.com",
			Role:   domain.RoleVenue,
			Status: domain.InvitationStatusPending,
		}, nil)
	env.auth.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.CreateUserInput) bool {
		return in.Role == domain.RoleVenue && in.Email == "manager@example.com"
	})).Return(&domain.User{ID: "u9", Email: "manager@example.com", Role: domain.RoleVenue}, "jwt", nil)
	env.invitations.EXPECT().Accept(mock.Anything, "tok").
		Return(&domain.Invitation{
			Email:  "manager@example.com",
			Role:   domain.RoleVenue,
			Status: domain.InvitationStatusAccepted,
		}, nil)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:       "ignored@example.com",
		Password:    "secret-password",
		InviteToken: "tok",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "venue", resp.User.Role)
}

func TestRegister_FailureLeavesInvitationPending(t *testing.T) {
	env := setup(t)

	env.invitations.EXPECT().Validate(mock.Anything, "tok").
		Return(&domain.Invitation{
			Email:  "manager@example.com",
			Role:   domain.RoleVenue,
			Status: domain.InvitationStatusPending,
		}, nil)
	env.auth.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, "", domain.ErrEmailTaken)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:       "manager@example.com",
		Password:    "secret-password",
		InviteToken: "tok",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.invitations.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
}

func TestRegister_PublicAlwaysPlainUser(t *testing.T) {
	env := setup(t)

	env.auth.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.CreateUserInput) bool {
		return in.Role == domain.RoleUser
	})).Return(&domain.User{ID: "u1", Role: domain.RoleUser}, "jwt", nil)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setup(t)

	env.auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return(nil, "", domain.ErrInvalidCredentials)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Health ---

func TestHealth_ServedUnderAPIPrefix(t *testing.T) {
	env := setup(t)

	for _, path := range []string{"/api/health", "/health"} {
		w := env.do(t, http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"ok"`, path)
	}
}

// --- Admin setup gate ---

func TestAdminSetup_DisabledOutsideDevelopment(t *testing.T) {
	env := setup(t) // Development defaults to false

	w := env.do(t, http.MethodPost, "/api/admin/setup", "", dto.AdminSetupRequest{
		Email:    "root@example.com",
		Password: "secret-password",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
