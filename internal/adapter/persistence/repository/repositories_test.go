package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master_booking/internal/domain/entities"
)

func TestCouponPostgresRepository_GetByCode(t *testing.T) {
	cols := []string{"id", "code", "discount_type", "discount_value", "valid_from", "valid_until",
		"max_uses", "uses_count", "min_order_pence", "is_active"}

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCouponPostgresRepository(mock)
		maxUses := int32(10)

		mock.ExpectQuery("FROM coupons WHERE upper\\(code\\) = upper\\(\\$1\\)").
			WithArgs("SPRING").
			WillReturnRows(pgxmock.NewRows(cols).AddRow("c-1", "spring", "percent", 10.0, nil, &rowTime, &maxUses, int32(3), int64(5000), true))

		c, err := repo.GetByCode(context.Background(), "SPRING")
		require.NoError(t, err)
		assert.Equal(t, entities.DiscountPercent, c.DiscountType)
		require.NotNil(t, c.MaxUses)
		assert.Equal(t, 10, *c.MaxUses)
		assert.Equal(t, 3, c.UsesCount)
		assert.Nil(t, c.ValidFrom)
		assert.True(t, c.Active)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown code is a zero coupon", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCouponPostgresRepository(mock)

		mock.ExpectQuery("FROM coupons").WillReturnError(pgx.ErrNoRows)

		c, err := repo.GetByCode(context.Background(), "NOPE")
		require.NoError(t, err)
		assert.Empty(t, c.ID)
	})
}

func checkoutValues(id string, at time.Time) []any {
	return []any{id, "ann@example.com", strPtr("Ann"), nil, strPtr("pi_1"), int64(9900),
		strPtr("Painting"), map[string]any{"postcode": "SW1A 1AA"}, "pending", false, false, at, nil}
}

func TestCheckoutPostgresRepository(t *testing.T) {
	cols := columnNames(checkoutColumns)
	now := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("find pending", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCheckoutPostgresRepository(mock)

		mock.ExpectQuery("FROM abandoned_checkouts").
			WithArgs("ann@example.com", strPtr("pi_1")).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(checkoutValues("ck-1", now)...))

		c, err := repo.FindPending(context.Background(), "ann@example.com", "pi_1")
		require.NoError(t, err)
		assert.Equal(t, "ck-1", c.ID)
		assert.Equal(t, "SW1A 1AA", c.BookingData["postcode"])
		assert.Equal(t, entities.CheckoutStatusPending, c.Status)
	})

	t.Run("1h window is bounded on both sides", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCheckoutPostgresRepository(mock)
		newest := now.Add(-24 * time.Hour)

		mock.ExpectQuery("email_1h_sent = false").
			WithArgs(now.Add(-time.Hour), &newest, 50).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(checkoutValues("ck-1", now.Add(-2*time.Hour))...).
				AddRow(checkoutValues("ck-2", now.Add(-3*time.Hour))...))

		due, err := repo.ListDueForRecovery(context.Background(), entities.RecoveryStage1h, now, 50)
		require.NoError(t, err)
		assert.Len(t, due, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("24h window has no upper age", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCheckoutPostgresRepository(mock)

		mock.ExpectQuery("email_24h_sent = false").
			WithArgs(now.Add(-24*time.Hour), (*time.Time)(nil), 10).
			WillReturnRows(pgxmock.NewRows(cols))

		due, err := repo.ListDueForRecovery(context.Background(), entities.RecoveryStage24h, now, 10)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("unknown stage", func(t *testing.T) {
		repo := NewCheckoutPostgresRepository(newMock(t))
		_, err := repo.ListDueForRecovery(context.Background(), "7d", now, 10)
		assert.Error(t, err)
		assert.Error(t, repo.MarkRecoverySent(context.Background(), "ck-1", "7d"))
	})

	t.Run("mark sent and recovered", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCheckoutPostgresRepository(mock)

		mock.ExpectExec("SET email_24h_sent = true").WithArgs("ck-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("SET status = 'recovered'").WithArgs("pi_1", now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.MarkRecoverySent(context.Background(), "ck-1", entities.RecoveryStage24h))
		require.NoError(t, repo.MarkRecovered(context.Background(), "pi_1", now))
		require.NoError(t, repo.MarkRecovered(context.Background(), "", now))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubscriptionPostgresRepository(t *testing.T) {
	cols := columnNames(subscriptionColumns)
	end := rowTime.AddDate(0, 1, 0)

	t.Run("find by email filters statuses", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSubscriptionPostgresRepository(mock)

		mock.ExpectQuery("FROM master_club_subscriptions_website").
			WithArgs("ann@example.com", []string{"active", "trialing"}).
			WillReturnRows(pgxmock.NewRows(cols).AddRow("s-1", "ann@example.com", strPtr("Ann"), "cus_1", "sub_1",
				"active", &rowTime, &end, false, rowTime, rowTime))

		s, err := repo.FindByEmail(context.Background(), "ann@example.com", entities.CurrentSubscriptionStatuses)
		require.NoError(t, err)
		assert.Equal(t, "sub_1", s.StripeSubscriptionID)
		assert.Equal(t, entities.SubscriptionStatusActive, s.Status)
		assert.Equal(t, "Ann", s.Name)
	})

	t.Run("customer id lookup", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSubscriptionPostgresRepository(mock)

		mock.ExpectQuery("SELECT stripe_customer_id").WithArgs("new@example.com").WillReturnError(pgx.ErrNoRows)

		id, err := repo.FindCustomerID(context.Background(), "new@example.com")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("update without a row fails", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSubscriptionPostgresRepository(mock)

		mock.ExpectExec("UPDATE master_club_subscriptions_website").
			WithArgs("sub_9", "paused", true, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStatus(context.Background(), "sub_9", entities.SubscriptionStatusPaused, true, nil)
		assert.ErrorContains(t, err, "no row")
	})
}

func TestLeadAndEmailLogRepositories(t *testing.T) {
	mock := newMock(t)
	leads := NewLeadPostgresRepository(mock)
	logs := NewEmailLogPostgresRepository(mock)

	mock.ExpectQuery("INSERT INTO hero_leads").
		WithArgs("lead@example.com", strPtr("Boiler repair"), (*string)(nil), strPtr("E1 6AN"), (*string)(nil), (*string)(nil), entities.DefaultLeadSource).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("l-1", rowTime))
	mock.ExpectExec("INSERT INTO email_logs").
		WillReturnError(errors.New("disk full"))

	lead, err := leads.CreateHeroLead(context.Background(), entities.HeroLead{
		Email: "lead@example.com", Service: "Boiler repair", Postcode: "E1 6AN", Source: entities.DefaultLeadSource,
	})
	require.NoError(t, err)
	assert.Equal(t, "l-1", lead.ID)
	assert.Equal(t, rowTime, lead.CreatedAt)

	err = logs.Create(context.Background(), entities.EmailLog{Template: "booking_confirmed", RecipientEmail: "a@example.com"})
	assert.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartnerApplicationPostgresRepository_Complete(t *testing.T) {
	cols := columnNames(partnerColumns)

	t.Run("stores urls", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPartnerApplicationPostgresRepository(mock)
		urls := map[entities.DocumentSlot]string{entities.SlotDBS: "https://storage/app/dbs"}

		mock.ExpectQuery("UPDATE partner_applications").
			WithArgs("app-1", map[string]string{"dbs": "https://storage/app/dbs"}, "completed").
			WillReturnRows(pgxmock.NewRows(cols).AddRow("app-1", "Sam", "sam@example.com", "07700900123",
				nil, nil, nil, nil, "United Kingdom", "sole_trader", []string{"plumbing"}, []string{"North London"},
				"van", nil, true, "completed", map[string]string{"dbs": "https://storage/app/dbs"}, rowTime, rowTime))

		app, err := repo.Complete(context.Background(), "app-1", urls)
		require.NoError(t, err)
		assert.Equal(t, entities.PartnerApplicationCompleted, app.Status)
		assert.Equal(t, "https://storage/app/dbs", app.DocumentURLs[entities.SlotDBS])
	})

	t.Run("unknown id", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPartnerApplicationPostgresRepository(mock)

		mock.ExpectQuery("UPDATE partner_applications").WillReturnError(pgx.ErrNoRows)

		app, err := repo.Complete(context.Background(), "app-2", nil)
		require.NoError(t, err)
		assert.Empty(t, app.ID)
	})
}
