package handlers

import (
	"errors"
	"net/http"

	"github.com/campuslost/lostfound/pkg/errhttp"
	"github.com/campuslost/lostfound/pkg/httpx"
	appsvcs "github.com/campuslost/lostfound/services/item/application/services"
)

const multipartMemory = 8 << 20

// ImageResponse is an accepted upload, ready to include in CreateItemRequest.images.
type ImageResponse struct {
	DataURL string `json:"data_url" example:"data:image/png;base64,iVBORw0KGgo="`
	MIME    string `json:"mime"     example:"image/png"`
	Width   int    `json:"width"    example:"640"`
	Height  int    `json:"height"   example:"480"`
	Bytes   int    `json:"bytes"    example:"48213"`
} // @name ImageResponse

// PostImageHandler handles POST /images requests.
type PostImageHandler struct {
	svc *appsvcs.Services
}

// NewPostImageHandler returns a PostImageHandler backed by the given services.
func NewPostImageHandler(svc *appsvcs.Services) *PostImageHandler {
	return &PostImageHandler{svc: svc}
}

// Execute converts an uploaded photo into an inline data URL.
//
//	@Summary		Upload image
//	@Description	Accepts JPEG, PNG, GIF, WebP or BMP. The type is sniffed from the bytes.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		201		{object}	ImageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Router			/images [post]
func (h *PostImageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, "Expected multipart form with a 'file' field")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Expected multipart form with a 'file' field")
		return
	}
	defer file.Close() //nolint:errcheck

	res, err := h.svc.Item.UploadImage(r.Context(), file)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ImageResponse{
		DataURL: res.DataURL,
		MIME:    res.MIME,
		Width:   res.Width,
		Height:  res.Height,
		Bytes:   res.Bytes,
	})
}
