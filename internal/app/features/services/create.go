package services

import (
	"context"
	"net/http"

	"github.com/dalemusser/firmsite/internal/app/system/fieldparse"
	"github.com/dalemusser/firmsite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/firmsite/internal/app/system/inputval"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/app/system/uploads"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"go.uber.org/zap"
)

type createInput struct {
	ServiceName string `validate:"required,max=100" label:"Service name"`
	Description string `validate:"required" label:"Description"`
	Beneficiary string `validate:"required" label:"Beneficiary"`
}

// Create handles POST /api/services. The image part is mandatory.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := uploads.ParseForm(r); err != nil {
		respond.BadRequest(w, "Invalid form data")
		return
	}
	defer uploads.Discard(r, h.Log)

	in := createInput{
		ServiceName: r.FormValue("serviceName"),
		Description: r.FormValue("description"),
		Beneficiary: r.FormValue("beneficiary"),
	}
	if res := inputval.Validate(in); res.HasErrors() {
		respond.ValidationFailed(w, res.Errors)
		return
	}

	file, header, ok := uploads.Image(r)
	if !ok {
		respond.BadRequest(w, "Service image is required")
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	asset, err := uploads.Put(ctx, h.Storage, imageFolder, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.Log.Error("service image upload failed", zap.Error(err))
		respond.Internal(w, "Error uploading image", nil)
		return
	}

	svc := models.Service{
		ServiceName:    in.ServiceName,
		Image:          asset.URL,
		ImagePublicID:  asset.PublicID,
		Description:    htmlsanitize.Sanitize(in.Description),
		DetailBenefits: fieldparse.ListJSONFirst(r.Form["detailBenefits"]),
		Beneficiary:    in.Beneficiary,
	}

	created, err := h.Store.Create(ctx, svc)
	if err != nil {
		h.Log.Error("service create failed", zap.Error(err))
		uploads.Remove(ctx, h.Storage, asset.PublicID, h.Log)
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.Created(w, "Service created successfully", respond.Body{"data": created})
}
