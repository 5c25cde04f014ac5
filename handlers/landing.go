package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Landing content is static and compiled in — the landing page is a thin
// client that renders exactly what these endpoints return.

var heroContent = gin.H{
	"badge":      "Trusted by 50+ schools",
	"heading":    "Healthy School Catering, Ordered in Seconds",
	"subheading": "Parents order, cashiers check in, kids eat well. One platform for your whole school canteen.",
	"cta": []gin.H{
		{"label": "Start Free Trial", "variant": "hero"},
		{"label": "Watch Demo", "variant": "glass"},
	},
	"stats": []gin.H{
		{"value": "10,000+", "label": "Meals delivered"},
		{"value": "50+", "label": "Partner schools"},
		{"value": "99.9%", "label": "On-time delivery"},
	},
}

var featuresContent = []gin.H{
	{"icon": "calendar", "title": "Order Ahead", "description": "Parents schedule meals days in advance, per child and per class."},
	{"icon": "search", "title": "Instant Lookup", "description": "Cashiers find any order by student name, class, NIK or NIS in one search."},
	{"icon": "credit-card", "title": "Cash & Cashless", "description": "Record cash payments at the counter with automatic change calculation and receipts."},
	{"icon": "shield", "title": "Role-Based Access", "description": "Parents, cashiers and admins each see exactly what they need — nothing more."},
	{"icon": "receipt", "title": "Itemized Orders", "description": "Every order keeps its line items and menu snapshot, so totals always add up."},
	{"icon": "bar-chart", "title": "Daily Summaries", "description": "Admins track pending and paid orders across the whole school at a glance."},
}

var pricingContent = []gin.H{
	{
		"name": "Starter", "price": "Rp0", "period": "/bulan",
		"description": "For small canteens getting started",
		"features": []string{
			"Up to 100 orders/month",
			"1 cashier account",
			"Email support",
			"Basic reports",
		},
		"popular": false,
	},
	{
		"name": "Sekolah", "price": "Rp299.000", "period": "/bulan",
		"description": "For growing schools",
		"features": []string{
			"Unlimited orders",
			"5 cashier accounts",
			"Priority support",
			"Daily settlement reports",
			"Parent self-service portal",
		},
		"popular": true,
	},
	{
		"name": "Yayasan", "price": "Custom", "period": "",
		"description": "For multi-school foundations",
		"features": []string{
			"Everything in Sekolah",
			"Multi-campus dashboard",
			"Dedicated account manager",
			"Custom integrations",
		},
		"popular": false,
	},
}

var testimonialsContent = []gin.H{
	{
		"name": "Ibu Ratna", "role": "Parent, SD Harapan Bangsa",
		"quote":  "I order the whole week on Sunday evening. No more forgotten lunch money.",
		"rating": 5,
	},
	{
		"name": "Pak Dedi", "role": "Cashier, SMP Tunas Mulia",
		"quote":  "Searching by class or NIS takes seconds. The morning queue is gone.",
		"rating": 5,
	},
	{
		"name": "Ibu Sari", "role": "Admin, Yayasan Cendekia",
		"quote":  "Settlement used to take an afternoon. Now it is one report.",
		"rating": 4,
	},
}

var footerContent = gin.H{
	"tagline": "School catering without the chaos.",
	"groups": []gin.H{
		{"title": "Product", "links": []string{"Features", "Pricing", "Demo"}},
		{"title": "Company", "links": []string{"About", "Careers", "Contact"}},
		{"title": "Legal", "links": []string{"Privacy", "Terms"}},
	},
}

// GetLanding returns the entire landing page content in one call
func GetLanding(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hero":         heroContent,
		"features":     featuresContent,
		"pricing":      pricingContent,
		"testimonials": testimonialsContent,
		"footer":       footerContent,
	})
}

func GetHero(c *gin.Context)     { c.JSON(http.StatusOK, gin.H{"hero": heroContent}) }
func GetFeatures(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"features": featuresContent}) }
func GetPricing(c *gin.Context)  { c.JSON(http.StatusOK, gin.H{"pricing": pricingContent}) }
func GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonialsContent})
}
func GetFooter(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"footer": footerContent}) }
