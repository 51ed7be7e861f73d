package contacts

import (
	"context"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/inputval"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"go.uber.org/zap"
)

type createInput struct {
	FirstName string `json:"firstName" validate:"required,max=50" label:"First name"`
	LastName  string `json:"lastName" validate:"required,max=50" label:"Last name"`
	MobileNo  string `json:"mobileNo" validate:"required" label:"Mobile number"`
	Email     string `json:"email" validate:"required" label:"Email"`
	Service   string `json:"service" validate:"required,max=100" label:"Service"`
	Query     string `json:"query" validate:"required,max=1000" label:"Query"`
}

// Create handles POST /api/contacts. The one public write endpoint: the
// site's contact form posts here.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := decode(r, &in); err != nil {
		respond.BadRequest(w, "Invalid request body")
		return
	}

	res := inputval.Validate(in)
	if in.MobileNo != "" && !inputval.IsValidMobile(in.MobileNo) {
		res.Errors = append(res.Errors, "Please provide a valid mobile number")
	}
	if in.Email != "" && !inputval.IsValidEmail(in.Email) {
		res.Errors = append(res.Errors, "Please provide a valid email address")
	}
	if res.HasErrors() {
		respond.ValidationFailed(w, res.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		MobileNo:  in.MobileNo,
		Email:     in.Email,
		Service:   in.Service,
		Query:     in.Query,
	})
	if err != nil {
		h.Log.Error("contact create failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.Created(w, "Your inquiry has been submitted successfully. We will get back to you soon!",
		respond.Body{"data": created})
}
