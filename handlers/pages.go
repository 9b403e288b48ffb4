package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawsitive/config"
)

// PageHandler renders the server-side pages. These are thin wrappers;
// all state lives behind the JSON API.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) render(c *gin.Context, template, title string) {
	c.HTML(http.StatusOK, template, gin.H{
		"title":        title,
		"businessName": config.AppConfig.BusinessName,
		"currentYear":  time.Now().Year(),
	})
}

func (h *PageHandler) Index(c *gin.Context)    { h.render(c, "index.html", "Home") }
func (h *PageHandler) Services(c *gin.Context) { h.render(c, "services.html", "Services") }
func (h *PageHandler) About(c *gin.Context)    { h.render(c, "about.html", "About") }
func (h *PageHandler) Contact(c *gin.Context)  { h.render(c, "contact.html", "Contact") }
func (h *PageHandler) Booking(c *gin.Context)  { h.render(c, "booking.html", "Book a walk") }
func (h *PageHandler) Admin(c *gin.Context)    { h.render(c, "admin.html", "Admin") }
