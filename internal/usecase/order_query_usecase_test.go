package usecase

import (
	"context"
	"errors"
	"testing"

	"souk_marketplace/internal/domain/entities"
	mock_interfaces "souk_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderQueryUseCase_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderQueryUseCase(orders)

	expected := []entities.Order{{ID: "ord-1", ClientID: "client-1"}}
	orders.EXPECT().ListByClientID(gomock.Any(), "client-1").Return(expected, nil)

	res, err := uc.ListMine(context.Background(), entities.Principal{ID: "client-1", Role: entities.RoleClient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].ID != "ord-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestOrderQueryUseCase_ListReceived(t *testing.T) {
	t.Run("client forbidden", func(t *testing.T) {
		uc := NewOrderQueryUseCase(nil)
		_, err := uc.ListReceived(context.Background(), entities.Principal{ID: "client-1", Role: entities.RoleClient})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("supplier success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderQueryUseCase(orders)

		orders.EXPECT().ListBySupplierID(gomock.Any(), "sup-a").Return([]entities.Order{{ID: "ord-2"}}, nil)

		res, err := uc.ListReceived(context.Background(), entities.Principal{ID: "sup-a", Role: entities.RoleSupplier})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "ord-2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestNotificationUseCase_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(notifications)

	notifications.EXPECT().ListByRecipientID(gomock.Any(), "client-1", int32(50)).Return([]entities.Notification{{ID: "n-1"}}, nil)

	res, err := uc.ListForUser(context.Background(), entities.Principal{ID: "client-1", Role: entities.RoleClient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].ID != "n-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
