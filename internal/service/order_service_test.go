package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"
)

func TestCreateOrder_TotalIsSnapshot(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	customer := env.createUser(t, false)
	first := env.createProduct(t, creator, "CPU")
	second := env.createProduct(t, creator, "GPU")

	order, err := env.orderService.Create(CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uint{first.ID, second.ID},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	wantTotal := first.Price + second.Price
	if order.TotalPrice.String() != models.NewMoneyFromInt(wantTotal).String() {
		t.Fatalf("expected total %d, got %s", wantTotal, order.TotalPrice.String())
	}

	// 商品涨价不影响已下订单
	newPrice := first.Price * 10
	if _, err := env.productService.Update(context.Background(), first.ID, UpdateProductInput{Price: &newPrice}); err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	reloaded, err := env.orderRepo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.TotalPrice.String() != models.NewMoneyFromInt(wantTotal).String() {
		t.Fatalf("total must stay %d after price change, got %s", wantTotal, reloaded.TotalPrice.String())
	}
	for _, item := range reloaded.Items {
		if item.ProductID == first.ID && item.Price != first.Price {
			t.Fatalf("item price must stay %d, got %d", first.Price, item.Price)
		}
	}
}

func TestCreateOrder_FromCartClearsCart(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	customer := env.createUser(t, false)
	first := env.createProduct(t, creator, "RAM")
	second := env.createProduct(t, creator, "SSD")

	for _, p := range []*models.Product{first, second} {
		if err := env.engagementService.Add(customer.ID, p.ID, models.KindShoppingCart); err != nil {
			t.Fatalf("add to cart failed: %v", err)
		}
	}

	order, err := env.orderService.Create(CreateOrderInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create order from cart failed: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items from cart, got %d", len(order.Items))
	}

	ids, err := env.engagementRepo.ListProductIDs(customer.ID, models.KindShoppingCart)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected cart cleared after order, %d items remain", len(ids))
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, false)

	if _, err := env.orderService.Create(CreateOrderInput{CustomerID: customer.ID}); !errors.Is(err, ErrOrderEmpty) {
		t.Fatalf("expected ErrOrderEmpty, got %v", err)
	}
}

func TestOrderAccess_CustomerScoped(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	customer := env.createUser(t, false)
	other := env.createUser(t, false)
	product := env.createProduct(t, creator, "HDD")

	order, err := env.orderService.Create(CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uint{product.ID},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := env.orderService.Get(order.ID, other.ID, false); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for other user, got %v", err)
	}
	if _, err := env.orderService.Get(order.ID, customer.ID, false); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := env.orderService.Get(order.ID, other.ID, true); err != nil {
		t.Fatalf("superuser read failed: %v", err)
	}

	// 普通用户列表强制过滤到本人
	orders, total, err := env.orderService.List(other.ID, false, repository.OrderListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(orders) != 0 {
		t.Fatalf("expected no orders visible to other user, got %d", len(orders))
	}
}
