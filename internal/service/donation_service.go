package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/doemais/donation-engine/internal/config"
	"github.com/doemais/donation-engine/internal/domain"
	"github.com/doemais/donation-engine/internal/reconcile"
	"github.com/doemais/donation-engine/internal/repository"
	customError "github.com/doemais/donation-engine/pkg/errors"

	"github.com/redis/go-redis/v9"
)

type DonationService struct {
	DonationRepo repository.DonationRepository
	PaymentRepo  repository.PaymentRepository
	redis        *redis.Client
	config       *config.Config
	reconciler   *reconcile.Reconciler
}

func NewDonationService(
	donationRepo repository.DonationRepository,
	paymentRepo repository.PaymentRepository,
	redisClient *redis.Client,
	cfg *config.Config,
) *DonationService {
	return &DonationService{
		DonationRepo: donationRepo,
		PaymentRepo:  paymentRepo,
		redis:        redisClient,
		config:       cfg,
		reconciler:   reconcile.New(cfg.Business.MatchToleranceDays),
	}
}

// CreateDonation registers a donation and, for recurring ones, materializes
// the scheduled installments 2..N. When the request says the first
// installment was paid on the spot (the usual carnê flow) it also appends
// the first payment-history entry.
func (s *DonationService) CreateDonation(ctx context.Context, request *domain.CreateDonationRequest) (*domain.Donation, []*domain.ScheduledInstallment, error) {
	existing, err := s.DonationRepo.GetByDonationID(ctx, request.DonationID)
	if err == nil && existing != nil {
		return nil, nil, customError.WrapDonationAlreadyExists(request.DonationID)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	if !request.TotalValue.IsPositive() {
		return nil, nil, customError.WrapInvalidDonationValue(request.TotalValue.String())
	}
	if request.RecurringFutureValue != nil && !request.RecurringFutureValue.IsPositive() {
		return nil, nil, customError.WrapInvalidDonationValue(request.RecurringFutureValue.String())
	}

	installmentCount := request.InstallmentCount
	if !request.IsRecurring {
		installmentCount = 1
	} else if installmentCount < 1 {
		return nil, nil, customError.WrapInvalidInstallmentCount(installmentCount)
	}

	donation := &domain.Donation{
		ID:                   uuid.New(),
		DonationID:           request.DonationID,
		DonorID:              request.DonorID,
		TotalValue:           request.TotalValue,
		RecurringFutureValue: request.RecurringFutureValue,
		DonationDate:         request.DonationDate,
		IsRecurring:          request.IsRecurring,
		InstallmentCount:     installmentCount,
		Status:               domain.DonationStatusActive,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	// Installment 1 lives in the payment history, not in the schedule, so
	// the materialized rows start at 2.
	futureValue := donation.FutureValue()
	installments := make([]*domain.ScheduledInstallment, 0, installmentCount-1)
	for number := 2; number <= installmentCount; number++ {
		installments = append(installments, &domain.ScheduledInstallment{
			ID:                uuid.New(),
			DonationID:        donation.DonationID,
			InstallmentNumber: number,
			DueDate:           reconcile.DueDate(donation.DonationDate, number-1, true),
			Value:             futureValue,
			Status:            domain.InstallmentStatusPending,
			CreatedAt:         time.Now(),
		})
	}

	if err = s.DonationRepo.Create(ctx, donation); err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	if len(installments) > 0 {
		if err = s.DonationRepo.CreateSchedule(ctx, installments); err != nil {
			return nil, nil, customError.WrapDatabaseError(err)
		}
	}

	if request.FirstInstallmentPaid {
		first := &domain.PaymentRecord{
			ID:          uuid.New(),
			DonationID:  donation.DonationID,
			PaymentDate: donation.DonationDate,
			Value:       donation.TotalValue,
			Status:      domain.InstallmentStatusPaid,
			CreatedAt:   time.Now(),
		}
		if err = s.PaymentRepo.Create(ctx, first); err != nil {
			return nil, nil, customError.WrapDatabaseError(err)
		}
	}

	return donation, installments, nil
}

// GetDonation retrieves a donation by its public ID.
func (s *DonationService) GetDonation(ctx context.Context, donationID string) (*domain.Donation, error) {
	donation, err := s.DonationRepo.GetByDonationID(ctx, donationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapDonationNotFound(donationID)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return donation, nil
}

// RegisterPayment appends a payment to the history and, when an installment
// number is given, flips the matching schedule row to paid. The cached carnê
// view is invalidated so the next read reconciles fresh data.
func (s *DonationService) RegisterPayment(ctx context.Context, donationID string, request *domain.RegisterPaymentRequest) (*domain.PaymentRecord, error) {
	donation, err := s.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.Status != domain.DonationStatusActive {
		return nil, customError.WrapDonationNotActive(donationID)
	}

	if !request.Value.IsPositive() {
		return nil, customError.WrapInvalidPaymentValue(request.Value.String())
	}

	payment := &domain.PaymentRecord{
		ID:          uuid.New(),
		DonationID:  donationID,
		PaymentDate: request.PaymentDate,
		Value:       request.Value,
		Status:      domain.InstallmentStatusPaid,
		CreatedAt:   time.Now(),
	}

	if err = s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if request.InstallmentNumber >= 2 {
		err = s.DonationRepo.UpdateInstallmentStatus(ctx, donationID, request.InstallmentNumber, domain.InstallmentStatusPaid)
		if err != nil {
			return nil, customError.WrapDatabaseError(err)
		}
	}

	s.invalidateCarne(ctx, donationID)

	if err = s.closeIfFullyPaid(ctx, donation); err != nil {
		// The payment itself went through; completion is a bookkeeping
		// concern the next payment or read will retry.
		log.Printf("warning: could not update completion status of donation %s: %v", donationID, err)
	}

	return payment, nil
}

// GetCarne returns the reconciled installment view of a donation, serving
// from the Redis cache when fresh.
func (s *DonationService) GetCarne(ctx context.Context, donationID string) (*domain.CarneResponse, error) {
	if cached, ok := s.cachedCarne(ctx, donationID); ok {
		return cached, nil
	}

	result, err := s.reconcileDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	for _, warning := range result.Warnings {
		log.Printf("reconcile warning: %s", warning)
	}

	carne := &domain.CarneResponse{
		DonationID:   donationID,
		Installments: result.Installments,
		Totals:       result.Totals,
	}

	s.cacheCarne(ctx, carne)

	return carne, nil
}

// GetTotals returns the aggregate totals of a donation's carnê.
func (s *DonationService) GetTotals(ctx context.Context, donationID string) (*domain.Totals, error) {
	carne, err := s.GetCarne(ctx, donationID)
	if err != nil {
		return nil, err
	}
	return carne.Totals, nil
}

// MarkOverdue flips pending installments past their due date to overdue.
// Invoked by the scheduler binary; returns how many rows changed.
func (s *DonationService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := s.DonationRepo.GetOverdueInstallments(ctx, now)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	marked := 0
	for _, installment := range overdue {
		err = s.DonationRepo.UpdateInstallmentStatus(ctx, installment.DonationID, installment.InstallmentNumber, domain.InstallmentStatusOverdue)
		if err != nil {
			return marked, customError.WrapDatabaseError(err)
		}
		s.invalidateCarne(ctx, installment.DonationID)
		marked++
	}

	return marked, nil
}

// UpcomingInstallments lists pending installments due within the reminder
// window starting at now.
func (s *DonationService) UpcomingInstallments(ctx context.Context, now time.Time) ([]*domain.ScheduledInstallment, error) {
	to := now.AddDate(0, 0, s.config.Business.ReminderWindowDays)
	upcoming, err := s.DonationRepo.GetUpcomingInstallments(ctx, now, to)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return upcoming, nil
}

// reconcileDonation fetches a request-scoped snapshot of the donation and
// its two logs and runs the reconciler over it.
func (s *DonationService) reconcileDonation(ctx context.Context, donationID string) (*reconcile.Result, error) {
	donation, err := s.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.GetByDonationID(ctx, donationID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	schedule, err := s.DonationRepo.GetScheduleByDonationID(ctx, donationID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return s.reconciler.Reconcile(donation, payments, schedule)
}

func (s *DonationService) closeIfFullyPaid(ctx context.Context, donation *domain.Donation) error {
	result, err := s.reconcileDonation(ctx, donation.DonationID)
	if err != nil {
		return err
	}

	if result.Totals.PendingCount > 0 {
		return nil
	}

	donation.Status = domain.DonationStatusCompleted
	if err = s.DonationRepo.Update(ctx, donation); err != nil {
		return customError.WrapDatabaseError(err)
	}
	return nil
}

func carneCacheKey(donationID string) string {
	return fmt.Sprintf("carne:%s", donationID)
}

func (s *DonationService) cachedCarne(ctx context.Context, donationID string) (*domain.CarneResponse, bool) {
	if s.redis == nil {
		return nil, false
	}

	raw, err := s.redis.Get(ctx, carneCacheKey(donationID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("warning: carne cache read failed for %s: %v", donationID, err)
		}
		return nil, false
	}

	var carne domain.CarneResponse
	if err = json.Unmarshal(raw, &carne); err != nil {
		log.Printf("warning: discarding unreadable carne cache entry for %s: %v", donationID, err)
		return nil, false
	}

	return &carne, true
}

func (s *DonationService) cacheCarne(ctx context.Context, carne *domain.CarneResponse) {
	if s.redis == nil {
		return
	}

	raw, err := json.Marshal(carne)
	if err != nil {
		log.Printf("warning: could not marshal carne for cache: %v", err)
		return
	}

	if err = s.redis.Set(ctx, carneCacheKey(carne.DonationID), raw, s.config.GetCarneCacheTTL()).Err(); err != nil {
		log.Printf("warning: carne cache write failed for %s: %v", carne.DonationID, err)
	}
}

func (s *DonationService) invalidateCarne(ctx context.Context, donationID string) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, carneCacheKey(donationID)).Err(); err != nil {
		log.Printf("warning: carne cache invalidation failed for %s: %v", donationID, err)
	}
}
