package face

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/face"
	facemocks "github.com/cmlabs-hris/pos-attendance-go/internal/domain/face/mocks"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/pos-attendance-go/internal/service/file"
	filemocks "github.com/cmlabs-hris/pos-attendance-go/internal/service/file/mocks"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = "0190f000-0000-7000-8000-000000000003"

var photo = base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

func setup(t *testing.T) (face.FaceService, *facemocks.MockFaceRepository, *filemocks.MockPhotoService, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := facemocks.NewMockFaceRepository(ctrl)
	photos := filemocks.NewMockPhotoService(ctrl)

	svc := jwt.NewJWTService("face-service-test-secret", "1h")
	raw, _, err := svc.GenerateAccessToken(userID, "kasir@example.com", user.RoleCashier)
	require.NoError(t, err)
	token, err := svc.JWTAuth().Decode(raw)
	require.NoError(t, err)

	return NewFaceService(repo, photos, nil), repo, photos, jwtauth.NewContext(context.Background(), token, nil)
}

func TestRegisterFace(t *testing.T) {
	descriptor := []float64{0.1, 0.2, 0.3}

	t.Run("stores photo and descriptor", func(t *testing.T) {
		svc, repo, photos, ctx := setup(t)
		photos.EXPECT().Save(gomock.Any(), photo, file.FolderFaces).Return("faces/1_a.jpg", nil)
		repo.EXPECT().SaveDescriptor(gomock.Any(), userID, descriptor).Return(nil)

		resp, err := svc.RegisterFace(ctx, face.RegisterFaceRequest{FaceDescriptor: descriptor, Photo: photo})
		require.NoError(t, err)
		assert.Equal(t, "faces/1_a.jpg", resp.PhotoPath)
	})

	t.Run("descriptor failure removes the photo", func(t *testing.T) {
		svc, repo, photos, ctx := setup(t)
		photos.EXPECT().Save(gomock.Any(), photo, file.FolderFaces).Return("faces/1_a.jpg", nil)
		repo.EXPECT().SaveDescriptor(gomock.Any(), userID, descriptor).Return(errors.New("db down"))
		photos.EXPECT().Delete(gomock.Any(), "faces/1_a.jpg").Return(nil)

		_, err := svc.RegisterFace(ctx, face.RegisterFaceRequest{FaceDescriptor: descriptor, Photo: photo})
		assert.Error(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _, _, ctx := setup(t)

		_, err := svc.RegisterFace(ctx, face.RegisterFaceRequest{Photo: "not base64!"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
	})
}

func TestVerifyFace(t *testing.T) {
	stored := face.Profile{UserID: userID, Descriptor: []float64{0.1, 0.2, 0.3}, Registered: true}

	t.Run("match", func(t *testing.T) {
		svc, repo, photos, ctx := setup(t)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(stored, nil)
		photos.EXPECT().Save(gomock.Any(), photo, file.FolderAttendance).Return("attendance/1_b.jpg", nil)

		resp, err := svc.VerifyFace(ctx, face.VerifyFaceRequest{FaceDescriptor: []float64{0.1, 0.2, 0.3}, Photo: photo})
		require.NoError(t, err)
		assert.Equal(t, 100.0, resp.Confidence)
		assert.Equal(t, "attendance/1_b.jpg", resp.PhotoPath)
	})

	t.Run("mismatch", func(t *testing.T) {
		svc, repo, _, ctx := setup(t)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(stored, nil)

		_, err := svc.VerifyFace(ctx, face.VerifyFaceRequest{FaceDescriptor: []float64{0.55, 0.8, 0.3}, Photo: photo})
		var mismatch *face.MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.ErrorIs(t, err, face.ErrFaceMismatch)
		assert.Equal(t, 25.0, mismatch.Confidence)
	})

	t.Run("not registered", func(t *testing.T) {
		svc, repo, _, ctx := setup(t)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(face.Profile{UserID: userID}, nil)

		_, err := svc.VerifyFace(ctx, face.VerifyFaceRequest{FaceDescriptor: []float64{0.1}, Photo: photo})
		assert.ErrorIs(t, err, face.ErrFaceNotRegistered)
	})
}
