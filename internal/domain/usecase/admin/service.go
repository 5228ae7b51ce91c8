package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vooz/donation-processor/internal/domain/entity"
	errs "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/gateway"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

var _ usecase.AdminUseCase = (*Service)(nil)

// Service implements staff operations on donations
type Service struct {
	donationRepo persistence.DonationRepository
	gateway      gateway.PaymentGateway
	logger       coreport.Logger
}

// NewService creates a new admin service
func NewService(
	donationRepo persistence.DonationRepository,
	paymentGateway gateway.PaymentGateway,
	logger coreport.Logger,
) *Service {
	return &Service{
		donationRepo: donationRepo,
		gateway:      paymentGateway,
		logger:       logger,
	}
}

// GetDonation returns a stored donation
func (s *Service) GetDonation(ctx context.Context, id uint64) (*entity.Donation, error) {
	if id == 0 {
		return nil, errs.ErrInvalidDonationID
	}

	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if !errs.IsDonationNotFoundError(err) {
			s.logger.Error("Failed to load donation", map[string]any{
				"donation_id": id,
				"error":       err.Error(),
			})
		}
		return nil, err
	}
	return donation, nil
}

// RefundDonation refunds the settled transaction of a donation
func (s *Service) RefundDonation(ctx context.Context, id uint64, amount *decimal.Decimal) (*gateway.APIResult, error) {
	donation, err := s.GetDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if donation.PaymentStatus != entity.PaymentStatusSuccess || donation.TransactionID <= 0 {
		return nil, fmt.Errorf("%w: donation %d has status %s and transaction %d",
			errs.ErrRefundNotAllowed, id, donation.PaymentStatus, donation.TransactionID)
	}

	if amount != nil {
		if !amount.IsPositive() {
			return nil, fmt.Errorf("%w: refund amount must be positive", errs.ErrInvalidAmount)
		}
		if amount.GreaterThan(donation.Amount) {
			return nil, fmt.Errorf("%w: refund amount %s exceeds donation amount %s",
				errs.ErrRefundNotAllowed, amount.String(), donation.Amount.String())
		}
	}

	result, err := s.gateway.Refund(ctx, donation.TransactionID, amount)
	if err != nil {
		s.logGatewayFailure("Refund request failed", err, map[string]any{
			"donation_id":    id,
			"transaction_id": donation.TransactionID,
		})
		return nil, err
	}

	fields := map[string]any{
		"donation_id":    id,
		"transaction_id": donation.TransactionID,
		"success":        result.Success,
	}
	if amount != nil {
		fields["amount"] = amount.String()
	}
	if result.Success {
		s.logger.Info("Refund requested", fields)
	} else {
		fields["message"] = result.Message
		s.logger.Warn("Refund declined by payment processor", fields)
	}

	return result, nil
}

// OverrideStatus lets staff correct a payment status. Every override is
// logged as an anomaly since it sidesteps the webhook state machine.
func (s *Service) OverrideStatus(ctx context.Context, id uint64, status entity.PaymentStatus) (*entity.Donation, error) {
	if _, err := entity.ParsePaymentStatus(string(status)); err != nil {
		return nil, err
	}

	donation, err := s.GetDonation(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := donation.PaymentStatus

	if err := s.donationRepo.UpdateStatus(ctx, id, status); err != nil {
		if !errs.IsDonationNotFoundError(err) {
			s.logger.Error("Failed to override payment status", map[string]any{
				"donation_id": id,
				"status":      string(status),
				"error":       err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Warn("Payment status overridden by operator", map[string]any{
		"anomaly":         "manual_override",
		"donation_id":     id,
		"previous_status": string(previous),
		"payment_status":  string(status),
		"transaction_id":  donation.TransactionID,
	})

	donation.PaymentStatus = status
	return donation, nil
}

// GetTransaction asks the processor about a transaction
func (s *Service) GetTransaction(ctx context.Context, transactionID int64) (*gateway.APIResult, error) {
	if transactionID <= 0 {
		return nil, fmt.Errorf("%w: transaction id must be positive", errs.ErrInvalidRequest)
	}

	result, err := s.gateway.GetTransaction(ctx, transactionID)
	if err != nil {
		s.logGatewayFailure("Transaction lookup failed", err, map[string]any{
			"transaction_id": transactionID,
		})
		return nil, err
	}
	return result, nil
}

func (s *Service) logGatewayFailure(message string, err error, fields map[string]any) {
	var gwErr *errs.GatewayError
	if errors.As(err, &gwErr) {
		for k, v := range gwErr.LogFields() {
			fields[k] = v
		}
	} else {
		fields["error"] = err.Error()
	}
	fields["retryable"] = errs.IsTimeoutError(err)
	s.logger.Error(message, fields)
}
