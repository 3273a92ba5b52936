package http

import (
	"net/http"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/response"
)

type FaceHandler interface {
	RegisterFace(w http.ResponseWriter, r *http.Request)
	VerifyFace(w http.ResponseWriter, r *http.Request)
}

type faceHandlerImpl struct {
	faceService face.FaceService
}

func NewFaceHandler(faceService face.FaceService) FaceHandler {
	return &faceHandlerImpl{faceService: faceService}
}

// RegisterFace implements FaceHandler.
func (h *faceHandlerImpl) RegisterFace(w http.ResponseWriter, r *http.Request) {
	var req face.RegisterFaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.faceService.RegisterFace(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, "Face registered successfully", result)
}

// VerifyFace implements FaceHandler.
func (h *faceHandlerImpl) VerifyFace(w http.ResponseWriter, r *http.Request) {
	var req face.VerifyFaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.faceService.VerifyFace(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Face verified", result)
}
