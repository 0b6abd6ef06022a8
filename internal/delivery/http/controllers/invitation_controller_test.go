package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carehub/internal/delivery/http/helpers"
	"carehub/internal/delivery/http/middleware"
	"carehub/internal/domain"
)

type mockInvitationService struct {
	report      *domain.Report
	view        *domain.InvitationView
	invitations []*domain.Invitation
	inviteErr   error
	validateErr error
	acceptErr   error
	listErr     error
}

func (m *mockInvitationService) Invite(ctx context.Context, teamID, roleSlug, firstName, lastName, email, inviterID string) (*domain.Report, error) {
	if m.inviteErr != nil {
		return nil, m.inviteErr
	}
	return m.report, nil
}

func (m *mockInvitationService) Validate(ctx context.Context, token string) (*domain.InvitationView, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.view, nil
}

func (m *mockInvitationService) Accept(ctx context.Context, token string) (*domain.Report, error) {
	if m.acceptErr != nil {
		return nil, m.acceptErr
	}
	return m.report, nil
}

func (m *mockInvitationService) ListByTeam(ctx context.Context, teamID, callerID string) ([]*domain.Invitation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.invitations, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

const testTeamID = "3f0c9a1e-8d2b-4c6f-9a5e-1b2c3d4e5f60"

func TestInvitationController_Invite_Unauthorized(t *testing.T) {
	ctrl := NewInvitationController(testLogger(), &mockInvitationService{})

	req := httptest.NewRequest(http.MethodPost, "/teams/"+testTeamID+"/invitations", strings.NewReader(`{"role":"caregiver","first_name":"Jane","email":"jane@example.com"}`))
	req.SetPathValue("teamID", testTeamID)
	w := httptest.NewRecorder()

	ctrl.Invite(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestInvitationController_Invite_InvalidTeamID(t *testing.T) {
	ctrl := NewInvitationController(testLogger(), &mockInvitationService{})

	req := httptest.NewRequest(http.MethodPost, "/teams/nope/invitations", strings.NewReader(`{}`))
	req.SetPathValue("teamID", "nope")
	w := httptest.NewRecorder()

	ctrl.Invite(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestInvitationController_Invite_Success(t *testing.T) {
	svc := &mockInvitationService{report: &domain.Report{Message: "Invitation sent to jane@example.com"}}
	ctrl := NewInvitationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/teams/"+testTeamID+"/invitations", strings.NewReader(`{"role":"caregiver","first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`))
	req.SetPathValue("teamID", testTeamID)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.Invite(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var report domain.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if report.Message == "" {
		t.Fatal("expected a confirmation message")
	}
}

func TestInvitationController_Invite_MalformedEmail(t *testing.T) {
	svc := &mockInvitationService{inviteErr: fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)}
	ctrl := NewInvitationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/teams/"+testTeamID+"/invitations", strings.NewReader(`{"role":"caregiver","first_name":"Jane","email":"jane@@example.com"}`))
	req.SetPathValue("teamID", testTeamID)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.Invite(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
	}
	var apiErr helpers.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("failed to unmarshal error envelope: %v", err)
	}
	if apiErr.Code != helpers.ErrCodeBadRequest {
		t.Fatalf("code = %q, want %q", apiErr.Code, helpers.ErrCodeBadRequest)
	}
}

func TestInvitationController_ListInvitations(t *testing.T) {
	svc := &mockInvitationService{invitations: []*domain.Invitation{
		{ID: "inv-1", TeamID: testTeamID, Token: "secret", Status: domain.InvitationPending},
	}}
	ctrl := NewInvitationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/teams/"+testTeamID+"/invitations", nil)
	req.SetPathValue("teamID", testTeamID)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.ListInvitations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatal("invitation token must not be serialized")
	}
	var got []*domain.Invitation
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(got) != 1 || got[0].ID != "inv-1" {
		t.Fatalf("unexpected invitations: %+v", got)
	}
}

func TestInvitationController_Validate_Success(t *testing.T) {
	svc := &mockInvitationService{view: &domain.InvitationView{
		ID:        "inv-1",
		Email:     "jane@example.com",
		Role:      "caregiver",
		Team:      "Night Shift",
		Status:    domain.InvitationPending,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}}
	ctrl := NewInvitationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/invitations/validate", strings.NewReader(`{"token":"tok123"}`))
	w := httptest.NewRecorder()

	ctrl.ValidateInvitation(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var view domain.InvitationView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if view.Status != domain.InvitationPending || view.Role != "caregiver" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestInvitationController_Validate_MissingToken(t *testing.T) {
	ctrl := NewInvitationController(testLogger(), &mockInvitationService{})

	req := httptest.NewRequest(http.MethodPost, "/invitations/validate", strings.NewReader(`{"token":""}`))
	w := httptest.NewRecorder()

	ctrl.ValidateInvitation(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestInvitationController_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown token", domain.ErrInvitationNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"already used", domain.ErrInvitationUsed, http.StatusConflict, helpers.ErrCodeInvitationUsed},
		{"expired", domain.ErrInvitationExpired, http.StatusGone, helpers.ErrCodeInvitationExpired},
		{"no invitee account", domain.ErrInviteeNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"duplicate membership", domain.ErrAlreadyMember, http.StatusConflict, helpers.ErrCodeAlreadyMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockInvitationService{acceptErr: tt.err}
			ctrl := NewInvitationController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/invitations/accept", strings.NewReader(`{"token":"tok123"}`))
			w := httptest.NewRecorder()

			ctrl.AcceptInvitation(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var apiErr helpers.APIError
			if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
				t.Fatalf("failed to unmarshal error envelope: %v", err)
			}
			if apiErr.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", apiErr.Code, tt.wantCode)
			}
			if apiErr.Path != "/invitations/accept" {
				t.Fatalf("path = %q, want /invitations/accept", apiErr.Path)
			}
		})
	}
}
