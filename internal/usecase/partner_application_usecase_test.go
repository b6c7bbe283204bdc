package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	mock_interfaces "master_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const applicationID = "0b7a3f2e-52a4-4d6b-9d3c-2f1e5c6a7b8d"

func validApplication() PartnerApplicationInput {
	return PartnerApplicationInput{
		FullName:          "Sam Trade",
		Email:             "sam@example.com",
		Phone:             "07700900123",
		BusinessStructure: "sole_trader",
		WorkTypes:         []string{"plumbing"},
		AreaCoverage:      []string{"North London"},
		Vehicle:           "van",
		Declaration:       true,
	}
}

func TestPartnerApplicationUseCase_Submit(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		mutate := []struct {
			want string
			fn   func(*PartnerApplicationInput)
		}{
			{"Full name is required", func(in *PartnerApplicationInput) { in.FullName = " " }},
			{"Valid email is required", func(in *PartnerApplicationInput) { in.Email = "sam" }},
			{"Phone is required", func(in *PartnerApplicationInput) { in.Phone = "" }},
			{"Business structure is required", func(in *PartnerApplicationInput) { in.BusinessStructure = "" }},
			{"Select at least one work type", func(in *PartnerApplicationInput) { in.WorkTypes = nil }},
			{"Select at least one area", func(in *PartnerApplicationInput) { in.AreaCoverage = []string{" "} }},
			{"Vehicle option is required", func(in *PartnerApplicationInput) { in.Vehicle = "" }},
			{"You must accept the declaration", func(in *PartnerApplicationInput) { in.Declaration = false }},
		}
		for _, tc := range mutate {
			t.Run(tc.want, func(t *testing.T) {
				in := validApplication()
				tc.fn(&in)
				uc := NewPartnerApplicationUseCase(nil, nil, nil, opsInbox)
				_, err := uc.Submit(context.Background(), in)
				var vErr *ValidationError
				if !errors.As(err, &vErr) || vErr.Message != tc.want {
					t.Fatalf("expected %q, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("creates and signs every slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartnerApplicationRepository(ctrl)
		signer := mock_interfaces.NewMockIUploadSigner(ctrl)
		uc := NewPartnerApplicationUseCase(repo, signer, nil, opsInbox)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.PartnerApplication) (entities.PartnerApplication, error) {
				if a.Country != "United Kingdom" || a.Status != entities.PartnerApplicationSubmitted {
					t.Fatalf("unexpected application %+v", a)
				}
				a.ID = applicationID
				return a, nil
			})
		signer.EXPECT().SignUpload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) (entities.UploadURL, error) {
				if key == applicationID+"/dbs" {
					return entities.UploadURL{}, errors.New("s3 down")
				}
				return entities.UploadURL{URL: "https://s3/" + key, Method: "PUT", Path: key, ExpiresAt: time.Now().Add(time.Minute)}, nil
			}).Times(len(entities.DocumentSlots))

		res, err := uc.Submit(context.Background(), validApplication())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ApplicationID != applicationID || len(res.UploadURLs) != len(entities.DocumentSlots)-1 {
			t.Fatalf("unexpected result %+v", res)
		}
		if _, ok := res.UploadURLs[entities.SlotDBS]; ok {
			t.Fatalf("failed slot should be skipped")
		}
	})
}

func TestPartnerApplicationUseCase_Complete(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		uc := NewPartnerApplicationUseCase(nil, nil, nil, opsInbox)
		if _, err := uc.Complete(context.Background(), "not-a-uuid"); !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("unknown application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartnerApplicationRepository(ctrl)
		signer := mock_interfaces.NewMockIUploadSigner(ctrl)
		uc := NewPartnerApplicationUseCase(repo, signer, nil, opsInbox)

		signer.EXPECT().PublicURL(gomock.Any()).Return("https://storage/x").AnyTimes()
		repo.EXPECT().Complete(gomock.Any(), applicationID, gomock.Any()).Return(entities.PartnerApplication{}, nil)

		if _, err := uc.Complete(context.Background(), applicationID); !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("stores public urls and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartnerApplicationRepository(ctrl)
		signer := mock_interfaces.NewMockIUploadSigner(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPartnerApplicationUseCase(repo, signer, notifier, opsInbox)

		signer.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string { return "https://storage/" + key }).AnyTimes()
		repo.EXPECT().Complete(gomock.Any(), applicationID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, urls map[entities.DocumentSlot]string) (entities.PartnerApplication, error) {
				if urls[entities.SlotIDDocument] != "https://storage/"+applicationID+"/id_document" {
					t.Fatalf("unexpected urls %v", urls)
				}
				return entities.PartnerApplication{ID: id, FullName: "Sam", Status: entities.PartnerApplicationCompleted, DocumentURLs: urls}, nil
			})
		notifier.EXPECT().Notify(gomock.Any(), emails.PartnerApplicationNotification, opsInbox, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ emails.TemplateID, _ string, data emails.Data) error {
				docs, ok := data["documents"].(map[string]string)
				if !ok || len(docs) != len(entities.DocumentSlots) {
					t.Fatalf("unexpected documents %v", data["documents"])
				}
				return nil
			})

		app, err := uc.Complete(context.Background(), " "+applicationID+" ")
		if err != nil || app.Status != entities.PartnerApplicationCompleted {
			t.Fatalf("unexpected result %+v %v", app, err)
		}
	})
}
