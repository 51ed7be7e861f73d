package team

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	teamstore "github.com/dalemusser/firmsite/internal/app/store/team"
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
	Name       string `validate:"required,max=100" label:"Name"`
	Experience int    `validate:"gte=0,lte=60" label:"Experience"`
	Role       string `validate:"required,max=100" label:"Role"`
	Info       string `validate:"required,max=500" label:"Info"`
	AboutMe    string `validate:"required,max=1000" label:"About me"`
}

// Create handles POST /api/team. The profile image part is mandatory; a
// missing empId is allocated sequentially.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := uploads.ParseForm(r); err != nil {
		respond.BadRequest(w, "Invalid form data")
		return
	}
	defer uploads.Discard(r, h.Log)

	experience, _ := strconv.Atoi(r.FormValue("experience"))
	in := createInput{
		Name:       r.FormValue("name"),
		Experience: experience,
		Role:       r.FormValue("role"),
		Info:       r.FormValue("info"),
		AboutMe:    r.FormValue("aboutMe"),
	}
	res := inputval.Validate(in)

	qualification := fieldparse.List(r.Form["qualification"])
	expertise := fieldparse.List(r.Form["expertise"])
	if len(qualification) == 0 {
		res.Errors = append(res.Errors, "At least one qualification is required")
	}
	if len(expertise) == 0 {
		res.Errors = append(res.Errors, "At least one area of expertise is required")
	}

	empID := r.FormValue("empId")
	if empID != "" && !inputval.IsValidEmpID(empID) {
		res.Errors = append(res.Errors, "Employee ID must match the EMP001 format")
	}

	if res.HasErrors() {
		respond.ValidationFailed(w, res.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Pre-check gives a clean message; the unique index still backstops the
	// race below.
	if empID != "" {
		exists, err := h.Store.ExistsByEmpID(ctx, empID)
		if err != nil {
			h.Log.Error("empId lookup failed", zap.Error(err))
			respond.Internal(w, "Internal server error", err)
			return
		}
		if exists {
			respond.BadRequest(w, "Employee ID already exists")
			return
		}
	}

	file, header, ok := uploads.Image(r)
	if !ok {
		respond.BadRequest(w, "Profile image is required")
		return
	}
	defer file.Close()

	asset, err := uploads.Put(ctx, h.Storage, imageFolder, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.Log.Error("team image upload failed", zap.Error(err))
		respond.Internal(w, "Error uploading image", nil)
		return
	}

	m := models.TeamMember{
		EmpID:         empID,
		Name:          in.Name,
		Qualification: qualification,
		Experience:    in.Experience,
		Expertise:     expertise,
		Department:    r.FormValue("department"),
		Role:          in.Role,
		Info:          htmlsanitize.Sanitize(in.Info),
		AboutMe:       htmlsanitize.Sanitize(in.AboutMe),
		Image: models.TeamImage{
			PublicID: asset.PublicID,
			URL:      asset.URL,
		},
	}

	created, err := h.Store.Create(ctx, m)
	if err != nil {
		uploads.Remove(ctx, h.Storage, asset.PublicID, h.Log)
		if errors.Is(err, teamstore.ErrDuplicateEmpID) {
			respond.BadRequest(w, "Employee ID already exists")
			return
		}
		h.Log.Error("team member create failed", zap.Error(err))
		respond.Internal(w, "Internal server error", err)
		return
	}

	respond.Created(w, "Team member created successfully", respond.Body{"data": created})
}
