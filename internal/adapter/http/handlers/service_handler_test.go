package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautytag/internal/adapter/http/handlers/mocks"
	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/servicos", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/servicos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("percent above 100 is rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/servicos", h.CreateService)

		body := `{"name":"Corte","genero":"unissex","partner_id":"p-1","preco":100,"percent_colab":130,"percent_repasse":40}`
		req := httptest.NewRequest(http.MethodPost, "/v1/servicos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns computed split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/servicos", h.CreateService)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{
			ID:                  "svc-1",
			Name:                "Corte",
			Gender:              entities.ServiceGenderUnissex,
			PartnerID:           "p-1",
			Price:               100,
			CollaboratorPercent: 30,
			TransferPercent:     40,
			CollaboratorPrice:   70,
			PartnerPrice:        42,
			Profit:              28,
		}, nil)

		body := `{"name":"Corte","genero":"unissex","partner_id":"p-1","preco":100,"percent_colab":30,"percent_repasse":40}`
		req := httptest.NewRequest(http.MethodPost, "/v1/servicos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["preco_colab"] != 70.0 || resp["preco_parceiro"] != 42.0 || resp["lucro"] != 28.0 {
			t.Fatalf("unexpected split in response: %v", resp)
		}
	})
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/servicos/:id", h.GetService)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/servicos/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceHandler_DeleteService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.DELETE("/v1/servicos/:id", h.DeleteService)

		uc.EXPECT().Delete(gomock.Any(), "svc-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/servicos/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
