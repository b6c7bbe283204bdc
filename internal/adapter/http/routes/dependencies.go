package routes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	"master_booking/internal/adapter/http/handlers"
	"master_booking/internal/adapter/http/middleware"
	"master_booking/internal/adapter/persistence/repository"
	"master_booking/internal/config"
	"master_booking/internal/infrastructure/ai"
	"master_booking/internal/infrastructure/database"
	"master_booking/internal/infrastructure/email"
	"master_booking/internal/infrastructure/payments"
	"master_booking/internal/infrastructure/storage"
	"master_booking/internal/ratelimit"
	"master_booking/internal/security"
	"master_booking/internal/usecase"
	"master_booking/internal/usecase/interfaces"
	"master_booking/internal/worker"
)

const redisKeyPrefix = "ratelimit:"

type handlerSet struct {
	quote        *handlers.QuoteHandler
	payment      *handlers.PaymentHandler
	webhook      *handlers.WebhookHandler
	coupon       *handlers.CouponHandler
	subscription *handlers.SubscriptionHandler
	email        *handlers.EmailHandler
	checkout     *handlers.CheckoutHandler
	lead         *handlers.LeadHandler
	partner      *handlers.PartnerApplicationHandler
	match        *handlers.ServiceMatchHandler
}

// dependencies is everything the router and the background worker need.
type dependencies struct {
	gate      *middleware.Gate
	handlers  handlerSet
	scheduler *worker.RecoveryScheduler
	closers   []func()
}

func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

type repositories struct {
	bookings      interfaces.IBookingRepository
	coupons       interfaces.ICouponRepository
	subscriptions interfaces.ISubscriptionRepository
	checkouts     interfaces.ICheckoutRepository
	leads         interfaces.ILeadRepository
	partners      interfaces.IPartnerApplicationRepository
	emailLogs     interfaces.IEmailLogRepository
}

// providers are the third-party adapters. A provider whose secret is missing stays nil
// and the operations that need it answer with a configuration error.
type providers struct {
	payments      interfaces.IPaymentGateway
	subscriptions interfaces.ISubscriptionGateway
	verifier      interfaces.IWebhookVerifier
	sender        interfaces.IEmailSender
	matcher       interfaces.IServiceMatcher
	signer        interfaces.IUploadSigner
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	d := &dependencies{}

	repos, err := connectRepositories(ctx, cfg, d)
	if err != nil {
		d.close()
		return nil, err
	}

	awsCfg, awsErr := database.NewAWSConfig(ctx, cfg.AWS)
	if awsErr != nil {
		slog.Warn("[app][routes] AWS config unavailable", "error", awsErr)
	}

	store, err := newRateLimitStore(ctx, cfg, awsCfg, awsErr == nil, d)
	if err != nil {
		d.close()
		return nil, err
	}
	limiter := ratelimit.NewLimiter(store, cfg.RateLimit.Rules())

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = security.DefaultAllowedOrigins(cfg.Environment)
	}
	d.gate = middleware.NewGate(security.NewCORSResolver(origins), limiter)

	prov := newProviders(cfg, awsCfg, awsErr == nil)
	d.handlers, d.scheduler = buildHandlers(cfg, repos, prov)
	return d, nil
}

func connectRepositories(ctx context.Context, cfg *config.Config, d *dependencies) (repositories, error) {
	if cfg.Postgres.URL == "" {
		slog.Warn("[app][routes] DATABASE_URL not set, persistence disabled")
		return repositories{}, nil
	}

	pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return repositories{}, err
	}
	d.closers = append(d.closers, pool.Close)

	if cfg.Postgres.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			return repositories{}, err
		}
	}

	return repositories{
		bookings:      repository.NewBookingPostgresRepository(pool),
		coupons:       repository.NewCouponPostgresRepository(pool),
		subscriptions: repository.NewSubscriptionPostgresRepository(pool),
		checkouts:     repository.NewCheckoutPostgresRepository(pool),
		leads:         repository.NewLeadPostgresRepository(pool),
		partners:      repository.NewPartnerApplicationPostgresRepository(pool),
		emailLogs:     repository.NewEmailLogPostgresRepository(pool),
	}, nil
}

func newRateLimitStore(ctx context.Context, cfg *config.Config, awsCfg aws.Config, awsReady bool, d *dependencies) (ratelimit.Store, error) {
	switch cfg.RateLimit.Store {
	case "redis":
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, func() { _ = rdb.Close() })
		return ratelimit.NewRedisStore(rdb, redisKeyPrefix), nil
	case "dynamodb":
		if !awsReady {
			return nil, fmt.Errorf("rate limit store dynamodb: AWS config unavailable")
		}
		ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS.DynamoDBEndpoint)
		return ratelimit.NewDynamoStore(ddb, cfg.RateLimit.DynamoDB), nil
	default:
		slog.Info("[app][routes] using in-memory rate limit store", "max_entries", cfg.RateLimit.MaxEntries)
		return ratelimit.NewMemoryStore(cfg.RateLimit.MaxEntries), nil
	}
}

func newProviders(cfg *config.Config, awsCfg aws.Config, awsReady bool) providers {
	var p providers

	if gw, err := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.MockEnabled()); err == nil {
		p.payments = gw
		p.subscriptions = gw
	}
	if cfg.Stripe.WebhookSecret != "" {
		p.verifier = payments.NewStripeWebhookVerifier(cfg.Stripe.WebhookSecret)
	} else {
		slog.Warn("[app][routes] STRIPE_WEBHOOK_SECRET not set, webhooks will be rejected")
	}
	if sender, err := email.NewResendSender(cfg.Email.ResendAPIKey); err == nil {
		p.sender = sender
	} else {
		slog.Warn("[app][routes] email sending disabled", "error", err)
	}
	if cfg.OpenAI.APIKey != "" {
		if m, err := ai.NewOpenAIMatcher(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model); err == nil {
			p.matcher = m
		} else {
			slog.Warn("[app][routes] AI matching disabled", "error", err)
		}
	}
	if awsReady {
		client := storage.NewS3Client(awsCfg, cfg.AWS.S3Endpoint)
		p.signer = storage.NewS3UploadSigner(client, cfg.AWS.PartnerBucket, cfg.AWS.StoragePublicURL, cfg.AWS.UploadURLTTL)
	}
	return p
}

func buildHandlers(cfg *config.Config, r repositories, p providers) (handlerSet, *worker.RecoveryScheduler) {
	ops := cfg.Email.OpsAddress

	emailUC := usecase.NewEmailUseCase(p.sender, r.emailLogs, cfg.Email.From, ops)
	quoteUC := usecase.NewQuoteUseCase(nil)
	checkoutUC := usecase.NewCheckoutUseCase(r.checkouts, emailUC, cfg.Email.SiteURL, cfg.Scheduler.BatchSize)

	set := handlerSet{
		quote:        handlers.NewQuoteHandler(quoteUC),
		payment:      handlers.NewPaymentHandler(usecase.NewPaymentIntentUseCase(p.payments, r.bookings, r.coupons, quoteUC), usecase.NewBookingUseCase(r.bookings)),
		webhook:      handlers.NewWebhookHandler(usecase.NewWebhookUseCase(p.verifier, r.bookings, r.checkouts, emailUC, ops)),
		coupon:       handlers.NewCouponHandler(usecase.NewCouponUseCase(r.coupons)),
		subscription: handlers.NewSubscriptionHandler(usecase.NewSubscriptionUseCase(r.subscriptions, p.subscriptions, emailUC, cfg.Stripe.MasterClubPriceID)),
		email:        handlers.NewEmailHandler(emailUC),
		checkout:     handlers.NewCheckoutHandler(checkoutUC),
		lead:         handlers.NewLeadHandler(usecase.NewLeadUseCase(r.leads, emailUC, ops)),
		partner:      handlers.NewPartnerApplicationHandler(usecase.NewPartnerApplicationUseCase(r.partners, p.signer, emailUC, ops)),
		match:        handlers.NewServiceMatchHandler(usecase.NewServiceMatchUseCase(p.matcher)),
	}

	var scheduler *worker.RecoveryScheduler
	if cfg.Scheduler.Enabled && r.checkouts != nil && p.sender != nil {
		scheduler = worker.NewRecoveryScheduler(checkoutUC, cfg.Scheduler.RecoveryInterval)
	}
	return set, scheduler
}
