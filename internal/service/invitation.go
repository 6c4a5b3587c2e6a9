package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type InvitationService struct {
	invitationRepo ports.InvitationRepo
	mailer         ports.Mailer
	appURL         string
	logger         logger.Logger
}

func NewInvitationService(invitationRepo ports.InvitationRepo, mailer ports.Mailer, appURL string, logger logger.Logger) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		mailer:         mailer,
		appURL:         strings.TrimRight(appURL, "/"),
		logger:         logger,
	}
}

// Create issues an invitation with a fresh random token and sends the signup
// link to the invitee.
func (s *InvitationService) Create(ctx context.Context, email string, role domain.Role, createdBy string) (*domain.Invitation, error) {
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := time.Now().UTC()
	inv := &domain.Invitation{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(email),
		Role:      role,
		Token:     token,
		CreatedBy: createdBy,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: now.Add(domain.InvitationTTL),
		CreatedAt: now,
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	link := fmt.Sprintf("%s/signup?token=%s", s.appURL, inv.Token)
	if err := s.mailer.SendInvitation(ctx, inv.Email, link); err != nil {
		// The invitation stays valid; the link can be resent.
		s.logger.Error("failed to send invitation email",
			logger.String("invitation_id", inv.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("invitation created",
		logger.String("invitation_id", inv.ID),
		logger.String("role", string(inv.Role)),
	)
	return inv, nil
}

// Validate looks an invitation up by token. A pending invitation found past
// its expiry is marked expired on the spot and reported as not found.
func (s *InvitationService) Validate(ctx context.Context, token string) (*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvitationStatusPending {
		return nil, domain.ErrInvitationNotFound
	}
	if inv.Expired(time.Now().UTC()) {
		if err := s.invitationRepo.MarkExpired(ctx, inv.ID); err != nil {
			return nil, fmt.Errorf("expire invitation: %w", err)
		}
		return nil, domain.ErrInvitationNotFound
	}
	return inv, nil
}

// Accept consumes a valid invitation.
func (s *InvitationService) Accept(ctx context.Context, token string) (*domain.Invitation, error) {
	inv, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.invitationRepo.MarkAccepted(ctx, inv.ID); err != nil {
		return nil, err
	}
	inv.Status = domain.InvitationStatusAccepted

	s.logger.Info("invitation accepted", logger.String("invitation_id", inv.ID))
	return inv, nil
}

// Resend emails the signup link for a still-valid invitation again.
func (s *InvitationService) Resend(ctx context.Context, token string) error {
	inv, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/signup?token=%s", s.appURL, inv.Token)
	if err := s.mailer.SendInvitation(ctx, inv.Email, link); err != nil {
		return fmt.Errorf("resend invitation: %w", err)
	}

	s.logger.Info("invitation resent", logger.String("invitation_id", inv.ID))
	return nil
}

func (s *InvitationService) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	return s.invitationRepo.ExpireStale(ctx, now)
}

func newInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
