package controllers

import (
	"net/http"
	"time"

	"popout/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

// GetAverageRating returns the mean rating and review count for a
// vendor. No reviews means average 0, count 0.
func (ac *AnalyticsController) GetAverageRating(c *gin.Context) {
	id := c.Param("id")

	var vendor models.Vendor
	if err := ac.DB.First(&vendor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	type RatingData struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}

	var result RatingData
	ac.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("vendor_id = ?", vendor.ID).
		Scan(&result)

	c.JSON(http.StatusOK, gin.H{
		"vendor_id": vendor.ID,
		"average":   result.Average,
		"count":     result.Count,
	})
}

// GetSpotlightTop3 ranks vendors for the current calendar month. A
// 5-star review with a comment scores 6, a bare 5-star scores 5,
// anything else 0. Ties break on average rating.
func (ac *AnalyticsController) GetSpotlightTop3(c *gin.Context) {
	type SpotlightData struct {
		VendorID     uint    `json:"vendor_id"`
		BusinessName string  `json:"business_name"`
		Score        int64   `json:"score"`
		AvgRating    float64 `json:"avg_rating"`
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	var results []SpotlightData

	ac.DB.Table("reviews").
		Select("vendors.id as vendor_id, vendors.business_name as business_name, " +
			"SUM(CASE WHEN reviews.rating = 5 AND COALESCE(reviews.comment, '') <> '' THEN 6 " +
			"WHEN reviews.rating = 5 THEN 5 ELSE 0 END) as score, " +
			"AVG(reviews.rating) as avg_rating").
		Joins("JOIN vendors ON vendors.id = reviews.vendor_id").
		Where("reviews.created_at >= ? AND reviews.created_at < ?", monthStart, nextMonth).
		Group("vendors.id, vendors.business_name").
		Order("score DESC, avg_rating DESC").
		Limit(3).
		Scan(&results)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
	})
}
