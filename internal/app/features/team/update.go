package team

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/firmsite/internal/app/system/fieldparse"
	"github.com/dalemusser/firmsite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/firmsite/internal/app/system/inputval"
	"github.com/dalemusser/firmsite/internal/app/system/respond"
	"github.com/dalemusser/firmsite/internal/app/system/timeouts"
	"github.com/dalemusser/firmsite/internal/app/system/uploads"
	"github.com/dalemusser/firmsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Update handles PUT /api/team/{empId}. Partial update: only supplied fields
// change; a new profile image replaces the stored asset. Works on inactive
// members too, so a soft-deleted member can be corrected before restoration.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if !inputval.IsValidEmpID(empID) {
		respond.BadRequest(w, "Invalid employee ID format")
		return
	}

	if err := uploads.ParseForm(r); err != nil {
		respond.BadRequest(w, "Invalid form data")
		return
	}
	defer uploads.Discard(r, h.Log)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	m, err := h.Store.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.NotFound(w, "Team member not found")
			return
		}
		h.Log.Error("team member fetch failed", zap.String("emp_id", empID), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	set := bson.M{}
	if v := r.FormValue("name"); v != "" {
		set["name"] = v
	}
	if qualification := fieldparse.List(r.Form["qualification"]); qualification != nil {
		set["qualification"] = qualification
	}
	if s := r.FormValue("experience"); s != "" {
		exp, err := strconv.Atoi(s)
		if err != nil || exp < 0 || exp > 60 {
			respond.BadRequest(w, "Experience must be between 0 and 60")
			return
		}
		set["experience"] = exp
	}
	if expertise := fieldparse.List(r.Form["expertise"]); expertise != nil {
		set["expertise"] = expertise
	}
	if _, ok := r.Form["department"]; ok {
		set["department"] = r.FormValue("department")
	}
	if v := r.FormValue("role"); v != "" {
		set["role"] = v
	}
	if v := r.FormValue("info"); v != "" {
		if len(v) > 500 {
			respond.BadRequest(w, "Info should not exceed 500 characters")
			return
		}
		set["info"] = htmlsanitize.Sanitize(v)
	}
	if v := r.FormValue("aboutMe"); v != "" {
		if len(v) > 1000 {
			respond.BadRequest(w, "About me should not exceed 1000 characters")
			return
		}
		set["about_me"] = htmlsanitize.Sanitize(v)
	}

	if file, header, ok := uploads.Image(r); ok {
		defer file.Close()

		uploads.Remove(ctx, h.Storage, m.Image.PublicID, h.Log)

		asset, err := uploads.Put(ctx, h.Storage, imageFolder, header.Filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.Log.Error("team image upload failed", zap.Error(err))
			respond.Internal(w, "Error uploading image", nil)
			return
		}
		set["image"] = models.TeamImage{PublicID: asset.PublicID, URL: asset.URL}
	}

	updated, err := h.Store.Update(ctx, empID, set)
	if err != nil {
		h.Log.Error("team member update failed", zap.String("emp_id", empID), zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.OK(w, "Team member updated successfully", respond.Body{"data": updated})
}
