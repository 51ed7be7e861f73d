package blogs

import (
	"context"
	"net/http"
	"strconv"

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
	Title   string `validate:"required,max=200" label:"Title"`
	Content string `validate:"required" label:"Content"`
	Author  string `validate:"required,max=100" label:"Author"`
}

// Create handles POST /api/blogs. Accepts multipart form data with an
// optional cover image part.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := uploads.ParseForm(r); err != nil {
		respond.BadRequest(w, "Invalid form data")
		return
	}
	defer uploads.Discard(r, h.Log)

	in := createInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Author:  r.FormValue("author"),
	}
	if res := inputval.Validate(in); res.HasErrors() {
		respond.ValidationFailed(w, res.Errors)
		return
	}

	b := models.Blog{
		Title:    in.Title,
		Content:  htmlsanitize.Sanitize(in.Content),
		Author:   in.Author,
		Category: r.FormValue("category"),
		Tags:     fieldparse.List(r.Form["tags"]),
		ReadTime: ReadTime(in.Content),
	}

	b.IsPublished = true
	if s := r.FormValue("isPublished"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			b.IsPublished = v
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if file, header, ok := uploads.Image(r); ok {
		defer file.Close()
		asset, err := uploads.Put(ctx, h.Storage, imageFolder, header.Filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.Log.Error("blog image upload failed", zap.Error(err))
			respond.Internal(w, "Error uploading image", nil)
			return
		}
		b.Image = asset.URL
		b.ImagePublicID = asset.PublicID
	}

	created, err := h.Store.Create(ctx, b)
	if err != nil {
		h.Log.Error("blog create failed", zap.Error(err))
		uploads.Remove(ctx, h.Storage, b.ImagePublicID, h.Log)
		respond.Internal(w, "Error creating blog", err)
		return
	}

	respond.Created(w, "Blog created successfully", respond.Body{"blog": created})
}
