package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"carehub/internal/domain"
)

type mockInvitationRepo struct {
	mu          sync.Mutex
	byToken     map[string]*domain.Invitation
	byID        map[string]*domain.Invitation
	memberships []*domain.Membership
	createErr   error
	failCreates int
}

func (m *mockInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreates > 0 {
		m.failCreates--
		return domain.ErrDuplicateToken
	}
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byToken[inv.Token]; ok {
		return domain.ErrDuplicateToken
	}
	cp := *inv
	m.byToken[inv.Token] = &cp
	m.byID[inv.ID] = &cp
	return nil
}

func (m *mockInvitationRepo) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.byToken[token]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	cp := *inv
	return &cp, nil
}

func (m *mockInvitationRepo) ListByTeamID(ctx context.Context, teamID string) ([]*domain.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Invitation
	for _, inv := range m.byID {
		if inv.TeamID == teamID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Accept mimics the conditional-update semantics of the postgres repository:
// the transition only succeeds while the stored row is still pending.
func (m *mockInvitationRepo) Accept(ctx context.Context, invitationID string, membership *domain.Membership, usedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.byID[invitationID]
	if !ok {
		return domain.ErrInvitationNotFound
	}
	if inv.Status != domain.InvitationPending {
		return domain.ErrInvitationUsed
	}
	for _, existing := range m.memberships {
		if existing.TeamID == membership.TeamID && existing.UserID == membership.UserID {
			return domain.ErrAlreadyMember
		}
	}
	inv.Status = domain.InvitationAccepted
	inv.UsedAt = &usedAt
	m.memberships = append(m.memberships, membership)
	return nil
}

type mockUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type mockTeamRepo struct {
	teams map[string]*domain.Team
}

func (m *mockTeamRepo) Create(ctx context.Context, team *domain.Team) error { return nil }

func (m *mockTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return t, nil
}

func (m *mockTeamRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, t := range m.teams {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type mockRoleRepo struct {
	bySlug map[string]*domain.Role
	byID   map[string]*domain.Role
	perms  map[string][]domain.Permission
}

func (m *mockRoleRepo) GetBySlug(ctx context.Context, slug string) (*domain.Role, error) {
	r, ok := m.bySlug[slug]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	return r, nil
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	return r, nil
}

func (m *mockRoleRepo) ListPermissionsByRoleID(ctx context.Context, roleID string) ([]domain.Permission, error) {
	return m.perms[roleID], nil
}

type mockEmailService struct {
	mu    sync.Mutex
	sent  []*domain.TeamInvitationEmailData
	err   error
}

func (m *mockEmailService) SendTeamInvitation(ctx context.Context, data *domain.TeamInvitationEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}

func (m *mockEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeEmailData) error {
	return nil
}

type invitationFixture struct {
	svc     *invitationService
	invs    *mockInvitationRepo
	users   *mockUserRepo
	emails  *mockEmailService
	members *mockMembershipRepo
}

func newInvitationFixture(t *testing.T) *invitationFixture {
	t.Helper()
	invs := &mockInvitationRepo{
		byToken: make(map[string]*domain.Invitation),
		byID:    make(map[string]*domain.Invitation),
	}
	users := &mockUserRepo{
		byID: map[string]*domain.User{
			"u1": {ID: "u1", Email: "owner@example.com", FirstName: "Olive", LastName: "Owner"},
		},
		byEmail: map[string]*domain.User{
			"owner@example.com": {ID: "u1", Email: "owner@example.com"},
			"jane@example.com":  {ID: "u2", Email: "jane@example.com", FirstName: "Jane"},
		},
	}
	teams := &mockTeamRepo{teams: map[string]*domain.Team{
		"t1": {ID: "t1", Name: "Night Shift", OwnerID: "u1"},
	}}
	roles := &mockRoleRepo{
		bySlug: map[string]*domain.Role{
			"caregiver": {ID: "r1", Name: "Caregiver", Slug: "caregiver"},
		},
		byID: map[string]*domain.Role{
			"r1": {ID: "r1", Name: "Caregiver", Slug: "caregiver"},
		},
	}
	emails := &mockEmailService{}
	members := &mockMembershipRepo{memberships: map[string]*domain.Membership{}}
	svc := NewInvitationService(invs, users, teams, roles, emails, NewMembershipService(members), 24*time.Hour, "https://carehub.example.com").(*invitationService)
	return &invitationFixture{svc: svc, invs: invs, users: users, emails: emails, members: members}
}

func (f *invitationFixture) invite(t *testing.T) string {
	t.Helper()
	_, err := f.svc.Invite(context.Background(), "t1", "caregiver", "Jane", "Doe", "jane@example.com", "u1")
	if err != nil {
		t.Fatalf("Invite failed: %v", err)
	}
	for token := range f.invs.byToken {
		return token
	}
	t.Fatal("no invitation stored")
	return ""
}

func TestInvitationService_InviteThenValidate(t *testing.T) {
	f := newInvitationFixture(t)
	token := f.invite(t)

	if len(f.emails.sent) != 1 {
		t.Fatalf("expected 1 invitation email, got %d", len(f.emails.sent))
	}
	mail := f.emails.sent[0]
	wantLink := "https://carehub.example.com/invitations?token=" + token
	if mail.Link != wantLink {
		t.Fatalf("link = %q, want %q", mail.Link, wantLink)
	}

	view, err := f.svc.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if view.Status != domain.InvitationPending {
		t.Fatalf("status = %q, want pending", view.Status)
	}
	if view.Email != "jane@example.com" || view.Role != "caregiver" || view.Team != "Night Shift" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestInvitationService_InviteErrors(t *testing.T) {
	f := newInvitationFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Invite(ctx, "t1", "caregiver", "J", "D", "jane@example.com", "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown inviter: got %v, want ErrUserNotFound", err)
	}
	if _, err := f.svc.Invite(ctx, "missing", "caregiver", "J", "D", "jane@example.com", "u1"); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("unknown team: got %v, want ErrTeamNotFound", err)
	}
	if _, err := f.svc.Invite(ctx, "t1", "sorcerer", "J", "D", "jane@example.com", "u1"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("unknown role: got %v, want ErrInvalidRole", err)
	}
	if _, err := f.svc.Invite(ctx, "t1", "caregiver", "J", "D", "not-an-email", "u1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("malformed email: got %v, want ErrInvalidInput", err)
	}
	if _, err := f.svc.Invite(ctx, "t1", "caregiver", "J", "D", "jane@@example.com", "u1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("double-at email: got %v, want ErrInvalidInput", err)
	}
}

func TestInvitationService_ListByTeamGated(t *testing.T) {
	f := newInvitationFixture(t)
	ctx := context.Background()
	f.invite(t)

	if _, err := f.svc.ListByTeam(ctx, "t1", "stranger"); !errors.Is(err, domain.ErrNotTeamMember) {
		t.Fatalf("stranger: got %v, want ErrNotTeamMember", err)
	}

	f.members.memberships[membershipKey("t1", "u1")] = &domain.Membership{
		ID: "m1", TeamID: "t1", UserID: "u1", Status: domain.MembershipActive,
	}
	invitations, err := f.svc.ListByTeam(ctx, "t1", "u1")
	if err != nil {
		t.Fatalf("ListByTeam failed: %v", err)
	}
	if len(invitations) != 1 || invitations[0].Status != domain.InvitationPending {
		t.Fatalf("unexpected invitations: %+v", invitations)
	}
}

func TestInvitationService_InviteRetriesTokenCollision(t *testing.T) {
	f := newInvitationFixture(t)
	f.invs.failCreates = 2

	if _, err := f.svc.Invite(context.Background(), "t1", "caregiver", "J", "D", "jane@example.com", "u1"); err != nil {
		t.Fatalf("Invite should retry past collisions: %v", err)
	}
	if len(f.invs.byToken) != 1 {
		t.Fatalf("expected exactly 1 stored invitation, got %d", len(f.invs.byToken))
	}
}

func TestInvitationService_ValidateUnknownToken(t *testing.T) {
	f := newInvitationFixture(t)
	if _, err := f.svc.Validate(context.Background(), "deadbeef"); !errors.Is(err, domain.ErrInvitationNotFound) {
		t.Fatalf("got %v, want ErrInvitationNotFound", err)
	}
	if _, err := f.svc.Accept(context.Background(), "deadbeef"); !errors.Is(err, domain.ErrInvitationNotFound) {
		t.Fatalf("got %v, want ErrInvitationNotFound", err)
	}
}

func TestInvitationService_ExpiryBoundary(t *testing.T) {
	f := newInvitationFixture(t)
	token := f.invite(t)
	now := time.Now()
	f.svc.now = func() time.Time { return now }

	tests := []struct {
		name      string
		expiresAt time.Time
		wantErr   error
	}{
		{"one second past", now.Add(-time.Second), domain.ErrInvitationExpired},
		{"inside margin", now.Add(59 * time.Second), domain.ErrInvitationExpired},
		{"just outside margin", now.Add(61 * time.Second), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.invs.byToken[token].ExpiresAt = tt.expiresAt
			_, err := f.svc.Validate(context.Background(), token)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvitationService_AcceptSingleUse(t *testing.T) {
	f := newInvitationFixture(t)
	token := f.invite(t)
	ctx := context.Background()

	if _, err := f.svc.Accept(ctx, token); err != nil {
		t.Fatalf("first Accept failed: %v", err)
	}
	if _, err := f.svc.Accept(ctx, token); !errors.Is(err, domain.ErrInvitationUsed) {
		t.Fatalf("second Accept: got %v, want ErrInvitationUsed", err)
	}
	if _, err := f.svc.Validate(ctx, token); !errors.Is(err, domain.ErrInvitationUsed) {
		t.Fatalf("Validate after accept: got %v, want ErrInvitationUsed", err)
	}

	if len(f.invs.memberships) != 1 {
		t.Fatalf("expected exactly 1 membership, got %d", len(f.invs.memberships))
	}
	m := f.invs.memberships[0]
	if m.TeamID != "t1" || m.UserID != "u2" || m.RoleID != "r1" || m.Status != domain.MembershipActive {
		t.Fatalf("unexpected membership: %+v", m)
	}
	inv := f.invs.byToken[token]
	if inv.Status != domain.InvitationAccepted || inv.UsedAt == nil {
		t.Fatalf("invitation not transitioned: %+v", inv)
	}
}

func TestInvitationService_AcceptUnknownInvitee(t *testing.T) {
	f := newInvitationFixture(t)
	token := f.invite(t)
	delete(f.users.byEmail, "jane@example.com")

	if _, err := f.svc.Accept(context.Background(), token); !errors.Is(err, domain.ErrInviteeNotFound) {
		t.Fatalf("got %v, want ErrInviteeNotFound", err)
	}
}

func TestInvitationService_ConcurrentAccept(t *testing.T) {
	f := newInvitationFixture(t)
	token := f.invite(t)

	const callers = 2
	errs := make(chan error, callers)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < callers; i++ {
		go func() {
			start.Wait()
			_, err := f.svc.Accept(context.Background(), token)
			errs <- err
		}()
	}
	start.Done()

	var successes, conflicts int
	for i := 0; i < callers; i++ {
		err := <-errs
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrInvitationUsed), errors.Is(err, domain.ErrAlreadyMember):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("successes = %d, conflicts = %d; want exactly one of each", successes, conflicts)
	}
	if len(f.invs.memberships) != 1 {
		t.Fatalf("expected exactly 1 membership after concurrent accepts, got %d", len(f.invs.memberships))
	}
}
