package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/doemais/donation-engine/internal/config"
	"github.com/doemais/donation-engine/internal/repository"
	"github.com/doemais/donation-engine/internal/service"
)

func main() {
	log.Println("Starting donation scheduler...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	donationRepo := repository.NewDonationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// The scheduler runs without a cache: it touches many donations and a
	// stale carnê is invalidated per row anyway.
	donationService := service.NewDonationService(donationRepo, paymentRepo, nil, cfg)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone: %v", err)
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Schedule tasks
	setupCronJobs(c, donationService)

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, donationService *service.DonationService) {
	// Daily job to mark overdue installments (runs at midnight)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		log.Println("Running daily overdue installment job...")
		markOverdueInstallments(donationService)
	})
	if err != nil {
		log.Printf("Error scheduling overdue installment job: %v", err)
	}

	// Daily job to log upcoming installment reminders (runs at 9 AM)
	_, err = c.AddFunc("0 0 9 * * *", func() {
		log.Println("Running installment reminder job...")
		logUpcomingReminders(donationService)
	})
	if err != nil {
		log.Printf("Error scheduling installment reminder job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

func markOverdueInstallments(donationService *service.DonationService) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	marked, err := donationService.MarkOverdue(ctx, time.Now())
	if err != nil {
		log.Printf("Error marking overdue installments: %v", err)
		return
	}
	log.Printf("Marked %d installments as overdue", marked)
}

func logUpcomingReminders(donationService *service.DonationService) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	upcoming, err := donationService.UpcomingInstallments(ctx, time.Now())
	if err != nil {
		log.Printf("Error fetching upcoming installments: %v", err)
		return
	}

	for _, installment := range upcoming {
		log.Printf("Reminder: donation %s installment %d of %s due on %s",
			installment.DonationID,
			installment.InstallmentNumber,
			installment.Value,
			installment.DueDate.Format("2006-01-02"))
	}
	log.Printf("Logged %d installment reminders", len(upcoming))
}
