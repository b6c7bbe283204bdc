package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"master_booking/internal/adapter/http/handlers/mocks"
	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase"
)

func TestPartnerApplicationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("phase one returns upload urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartnerApplicationUseCase(ctrl)
		h := NewPartnerApplicationHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.PartnerApplicationInput) (usecase.PartnerSubmission, error) {
				if in.FullName != "Sam Trade" || len(in.WorkTypes) != 2 || !in.Declaration {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.PartnerSubmission{
					ApplicationID: "app-1",
					UploadURLs: map[entities.DocumentSlot]entities.UploadURL{
						entities.SlotIDDocument: {URL: "https://s3/app-1/id_document", Method: http.MethodPut, Path: "app-1/id_document", ExpiresAt: time.Now()},
					},
				}, nil
			})

		body := `{"fullName":"Sam Trade","email":"sam@example.com","workTypes":["plumbing","electrics"],"declaration":true}`
		w := serve(http.MethodPost, body, h.SubmitPartnerApplication, nil)
		out := decode(t, w)
		uploads, _ := out["uploads"].(map[string]any)
		if w.Code != http.StatusOK || out["id"] != "app-1" || uploads["idDocument"] == nil {
			t.Fatalf("unexpected response %d %v", w.Code, out)
		}
	})

	t.Run("phase two completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartnerApplicationUseCase(ctrl)
		h := NewPartnerApplicationHandler(uc)

		uc.EXPECT().Complete(gomock.Any(), "app-1").Return(entities.PartnerApplication{ID: "app-1"}, nil)

		w := serve(http.MethodPost, `{"complete":true,"id":"app-1"}`, h.SubmitPartnerApplication, nil)
		if w.Code != http.StatusOK || decode(t, w)["success"] != true {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("phase two unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartnerApplicationUseCase(ctrl)
		h := NewPartnerApplicationHandler(uc)

		uc.EXPECT().Complete(gomock.Any(), "nope").Return(entities.PartnerApplication{}, usecase.ErrApplicationNotFound)

		w := serve(http.MethodPost, `{"complete":true,"id":"nope"}`, h.SubmitPartnerApplication, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
