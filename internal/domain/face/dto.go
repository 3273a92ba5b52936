package face

import (
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/storage"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/validator"
)

type RegisterFaceRequest struct {
	FaceDescriptor []float64 `json:"face_descriptor"`
	Photo          string    `json:"photo"`
}

func (r *RegisterFaceRequest) Validate() error {
	return validateFaceInput(r.FaceDescriptor, r.Photo)
}

type VerifyFaceRequest struct {
	FaceDescriptor []float64 `json:"face_descriptor"`
	Photo          string    `json:"photo"`
}

func (r *VerifyFaceRequest) Validate() error {
	return validateFaceInput(r.FaceDescriptor, r.Photo)
}

func validateFaceInput(descriptor []float64, photo string) error {
	var errs validator.ValidationErrors

	if len(descriptor) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "face_descriptor",
			Message: "face_descriptor is required",
		})
	}

	if validator.IsEmpty(photo) {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "photo is required",
		})
	} else if _, err := storage.DecodeBase64Image(photo); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "photo must be a valid base64 encoded image",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterFaceResponse struct {
	PhotoPath string `json:"photo_path"`
}

type VerifyFaceResponse struct {
	Confidence float64 `json:"confidence"`
	PhotoPath  string  `json:"photo_path"`
}
