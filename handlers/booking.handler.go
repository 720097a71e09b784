package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stayease-backend/domain"
	"stayease-backend/services"
)

type BookingHandler struct {
	bookingService services.BookingService
	catalogService services.CatalogService
}

func NewBookingHandler(bookingService services.BookingService, catalogService services.CatalogService) BookingHandler {
	return BookingHandler{bookingService, catalogService}
}

type createBookingRequest struct {
	Type          domain.EntityKind   `json:"type" binding:"required"`
	EntityID      string              `json:"entityId" binding:"required"`
	CheckInDate   string              `json:"checkInDate"`
	CheckOutDate  string              `json:"checkOutDate"`
	ScheduledDate string              `json:"scheduledDate"`
	ScheduledTime string              `json:"scheduledTime"`
	Guests        int                 `json:"guests"`
	GuestInfo     domain.GuestInfo    `json:"guestInfo"`
	Payment       domain.PaymentInput `json:"payment"`
	TermsAccepted bool                `json:"termsAccepted"`
}

const dateLayout = "2006-01-02"

func (bh *BookingHandler) CreateBooking(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	var req createBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	// Snapshot the entity at booking time, later catalog changes must not
	// touch historical bookings.
	entity, err := bh.catalogService.GetEntity(req.Type, req.EntityID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Entity with that id does not exist"})
		return
	}

	draft := &services.BookingDraft{
		Type:          req.Type,
		Entity:        *entity,
		ScheduledTime: req.ScheduledTime,
		Guests:        req.Guests,
		GuestInfo:     req.GuestInfo,
		Payment:       req.Payment,
		TermsAccepted: req.TermsAccepted,
	}

	if req.CheckInDate != "" {
		if draft.CheckInDate, err = time.Parse(dateLayout, req.CheckInDate); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid check-in date"})
			return
		}
	}
	if req.CheckOutDate != "" {
		if draft.CheckOutDate, err = time.Parse(dateLayout, req.CheckOutDate); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid check-out date"})
			return
		}
	}
	if req.ScheduledDate != "" {
		if draft.ScheduledDate, err = time.Parse(dateLayout, req.ScheduledDate); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid date"})
			return
		}
	}

	booking, err := bh.bookingService.Create(draft, user.ID)
	if err != nil {
		if verr, ok := err.(*domain.ValidationError); ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Validation failed", "errors": verr.Fields})
			return
		}
		switch err {
		case domain.ErrInvalidDateRange(), domain.ErrInvalidGuestCount():
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Booking can't be created"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "booking": booking})
}

func (bh *BookingHandler) ListBookings(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	filter := domain.BookingFilter(ctx.DefaultQuery("filter", "all"))
	bookings, err := bh.bookingService.List(user.ID, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if bookings == nil {
		bookings = domain.Bookings{}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "bookings": bookings})
}

func (bh *BookingHandler) GetBooking(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	confirmationNumber := ctx.Params.ByName("confirmationNumber")
	booking, err := bh.bookingService.GetByConfirmationNumber(confirmationNumber, user.ID)
	if err != nil {
		switch err {
		case domain.ErrNotFound():
			ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})
		case domain.ErrAccessDenied():
			ctx.JSON(http.StatusForbidden, gin.H{"status": "fail", "message": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}

func (bh *BookingHandler) CancelBooking(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	confirmationNumber := ctx.Params.ByName("confirmationNumber")
	booking, err := bh.bookingService.Cancel(confirmationNumber, user.ID)
	if err != nil {
		switch err {
		case domain.ErrNotFound():
			ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})
		case domain.ErrAccessDenied():
			ctx.JSON(http.StatusForbidden, gin.H{"status": "fail", "message": err.Error()})
		case domain.ErrInvalidTransition():
			ctx.JSON(http.StatusConflict, gin.H{"status": "fail", "message": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "booking": booking})
}
