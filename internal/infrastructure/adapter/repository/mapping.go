package repository

import (
	"github.com/vooz/donation-processor/internal/domain/entity"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
)

func entityToModel(donation *entity.Donation) *model.Donation {
	m := &model.Donation{
		ID:            donation.ID,
		Code:          donation.Code,
		Name:          donation.Name,
		Amount:        donation.Amount,
		Cadence:       string(donation.Cadence),
		DonorName:     donation.DonorName,
		Email:         donation.Email,
		Comment:       donation.Comment,
		SubmittedAt:   donation.SubmittedAt,
		PaymentStatus: string(donation.PaymentStatus),
		CreatedAt:     donation.CreatedAt,
		UpdatedAt:     donation.UpdatedAt,
	}
	if donation.TransactionID > 0 {
		txID := donation.TransactionID
		m.TransactionID = &txID
	}
	if donation.PaymentToken != "" {
		token := donation.PaymentToken
		m.PaymentToken = &token
	}
	if len(donation.PaymentDetails) > 0 {
		m.PaymentDetails = datatypes.JSONMap(donation.PaymentDetails)
	}
	return m
}

func modelToEntity(m *model.Donation) (*entity.Donation, error) {
	status, err := entity.ParsePaymentStatus(m.PaymentStatus)
	if err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		Amount:        m.Amount,
		Cadence:       entity.Cadence(m.Cadence),
		DonorName:     m.DonorName,
		Email:         m.Email,
		Comment:       m.Comment,
		SubmittedAt:   m.SubmittedAt,
		PaymentStatus: status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.TransactionID != nil {
		donation.TransactionID = *m.TransactionID
	}
	if m.PaymentToken != nil {
		donation.PaymentToken = *m.PaymentToken
	}
	if len(m.PaymentDetails) > 0 {
		donation.PaymentDetails = map[string]any(m.PaymentDetails)
	}
	return donation, nil
}
