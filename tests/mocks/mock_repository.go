package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/doemais/donation-engine/internal/domain"
)

type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) GetByDonationID(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) Update(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) CreateSchedule(ctx context.Context, installments []*domain.ScheduledInstallment) error {
	args := m.Called(ctx, installments)
	return args.Error(0)
}

func (m *MockDonationRepository) GetScheduleByDonationID(ctx context.Context, donationID string) ([]*domain.ScheduledInstallment, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduledInstallment), args.Error(1)
}

func (m *MockDonationRepository) UpdateInstallmentStatus(ctx context.Context, donationID string, installmentNumber int, status string) error {
	args := m.Called(ctx, donationID, installmentNumber, status)
	return args.Error(0)
}

func (m *MockDonationRepository) GetOverdueInstallments(ctx context.Context, currentDate time.Time) ([]*domain.ScheduledInstallment, error) {
	args := m.Called(ctx, currentDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduledInstallment), args.Error(1)
}

func (m *MockDonationRepository) GetUpcomingInstallments(ctx context.Context, from time.Time, to time.Time) ([]*domain.ScheduledInstallment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduledInstallment), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.PaymentRecord) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByDonationID(ctx context.Context, donationID string) ([]*domain.PaymentRecord, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) GetTotalPaid(ctx context.Context, donationID string) (decimal.Decimal, error) {
	args := m.Called(ctx, donationID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
