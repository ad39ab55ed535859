package usecase

import (
	"context"
	"errors"
	"testing"

	"souk_marketplace/internal/domain/entities"
	mock_interfaces "souk_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	supplier := entities.Principal{ID: "sup-a", Role: entities.RoleSupplier}

	t.Run("client forbidden", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Principal{ID: "c", Role: entities.RoleClient}, "Dates", 1000, 5)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid fields", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		cases := []struct {
			name      string
			unitPrice int64
			quantity  int64
		}{
			{name: "   ", unitPrice: 100, quantity: 1},
			{name: "Dates", unitPrice: -1, quantity: 1},
			{name: "Dates", unitPrice: 100, quantity: -1},
		}
		for _, tc := range cases {
			if _, err := uc.Create(context.Background(), supplier, tc.name, tc.unitPrice, tc.quantity); !errors.Is(err, ErrInvalidProduct) {
				t.Fatalf("expected ErrInvalidProduct for %+v, got %v", tc, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.SupplierID != "sup-a" || p.Name != "Dates" || p.UnitPrice != 1000 || p.Quantity != 5 {
					t.Fatalf("unexpected product: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), supplier, " Dates ", 1000, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	supplier := entities.Principal{ID: "sup-a", Role: entities.RoleSupplier}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.Update(context.Background(), supplier, "p1", "Dates", 1000, 5)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("owned by another supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", SupplierID: "sup-b"}, nil)

		_, err := uc.Update(context.Background(), supplier, "p1", "Dates", 1000, 5)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		existing := entities.Product{ID: "p1", SupplierID: "sup-a", Name: "Dates", UnitPrice: 800, Quantity: 2}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Name != "Deglet Nour" || p.UnitPrice != 1200 || p.Quantity != 8 {
					t.Fatalf("unexpected update: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.Update(context.Background(), supplier, "p1", "Deglet Nour", 1200, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Deglet Nour" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	supplier := entities.Principal{ID: "sup-a", Role: entities.RoleSupplier}

	t.Run("owned by another supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", SupplierID: "sup-b"}, nil)

		if err := uc.Delete(context.Background(), supplier, "p1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", SupplierID: "sup-a"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		if err := uc.Delete(context.Background(), supplier, "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.GetByID(context.Background(), "p1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
