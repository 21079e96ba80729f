package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/cache"
	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/timezone"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
)

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	tz    string
}

func NewDashboardHandler(db *gorm.DB, c *cache.Cache, tz string) *DashboardHandler {
	return &DashboardHandler{db: db, cache: c, tz: tz}
}

type DashboardStats struct {
	Customers int64 `json:"customers"`
	Venues    int64 `json:"venues"`
	Personnel int64 `json:"personnel"`

	UpcomingGigs  int64 `json:"upcoming_gigs"`
	GigsThisMonth int64 `json:"gigs_this_month"`

	OutstandingInvoices     int64   `json:"outstanding_invoices"`
	OutstandingInvoiceTotal float64 `json:"outstanding_invoice_total"`
	RevenueThisMonth        float64 `json:"revenue_this_month"`
	PendingPayouts          int64   `json:"pending_payouts"`
	PendingPayoutTotal      float64 `json:"pending_payout_total"`
}

func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if b, ok := h.cache.GetJSON(ctx, dashboardCacheKey); ok {
			var stats DashboardStats
			if json.Unmarshal(b, &stats) == nil {
				c.JSON(200, stats)
				return
			}
		}
	}

	now := timezone.NowIn(h.tz)
	monthStart, monthEnd := timezone.MonthWindow(now.Year(), now.Month(), h.tz)

	var stats DashboardStats
	if err := h.loadStats(dbc(c, h.db), &stats, now, monthStart, monthEnd); err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "could not aggregate stats")
		return
	}

	if h.cache != nil {
		if b, err := json.Marshal(stats); err == nil {
			h.cache.SetJSON(ctx, dashboardCacheKey, b, dashboardCacheTTL)
		}
	}

	c.JSON(200, stats)
}

// loadStats runs the dashboard aggregations one by one. Each query's own
// error must be checked: gorm chains clone the handle, so a failure never
// shows up on the shared db value.
func (h *DashboardHandler) loadStats(db *gorm.DB, stats *DashboardStats, now, monthStart, monthEnd time.Time) error {
	if err := db.Model(&models.Customer{}).Count(&stats.Customers).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Venue{}).Count(&stats.Venues).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Personnel{}).Where("active = true").Count(&stats.Personnel).Error; err != nil {
		return err
	}

	if err := db.Model(&models.Gig{}).
		Where("start_time >= ? AND status IN ('scheduled', 'confirmed')", now).
		Count(&stats.UpcomingGigs).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Gig{}).
		Where("start_time >= ? AND start_time < ?", monthStart, monthEnd).
		Count(&stats.GigsThisMonth).Error; err != nil {
		return err
	}

	if err := db.Model(&models.Invoice{}).
		Where("status = 'sent'").
		Count(&stats.OutstandingInvoices).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Invoice{}).
		Where("status = 'sent'").
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.OutstandingInvoiceTotal).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Invoice{}).
		Where("status = 'paid' AND paid_at >= ? AND paid_at < ?", monthStart, monthEnd).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.RevenueThisMonth).Error; err != nil {
		return err
	}

	if err := db.Model(&models.PersonnelPayout{}).
		Where("status = 'pending'").
		Count(&stats.PendingPayouts).Error; err != nil {
		return err
	}
	if err := db.Model(&models.PersonnelPayout{}).
		Where("status = 'pending'").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.PendingPayoutTotal).Error; err != nil {
		return err
	}

	return nil
}
