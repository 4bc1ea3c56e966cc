package service

import (
	"context"
	"testing"

	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"
)

func TestProductView_RatingAverageRounded(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "CPU")

	raters := []struct {
		score int16
	}{{5}, {4}, {4}}
	for _, r := range raters {
		user := env.createUser(t, false)
		if err := env.engagementService.Rate(user.ID, product.ID, r.score); err != nil {
			t.Fatalf("rate failed: %v", err)
		}
	}

	view, err := env.viewService.Get(context.Background(), 0, product.ID)
	if err != nil {
		t.Fatalf("get view failed: %v", err)
	}
	// (5+4+4)/3 = 4.333... -> 4.33
	if view.Rating != 4.33 {
		t.Fatalf("expected rating 4.33, got %v", view.Rating)
	}
}

func TestProductView_DefaultRatingZero(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "GPU")

	view, err := env.viewService.Get(context.Background(), 0, product.ID)
	if err != nil {
		t.Fatalf("get view failed: %v", err)
	}
	if view.Rating != 0 {
		t.Fatalf("expected default rating 0, got %v", view.Rating)
	}
}

func TestProductView_FlagsArePerUser(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "RAM")
	alice := env.createUser(t, false)
	bob := env.createUser(t, false)

	if err := env.engagementService.Add(alice.ID, product.ID, models.KindFavorite); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}
	if err := env.engagementService.Add(alice.ID, product.ID, models.KindShoppingCart); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	aliceView, err := env.viewService.Get(context.Background(), alice.ID, product.ID)
	if err != nil {
		t.Fatalf("get alice view failed: %v", err)
	}
	if !aliceView.IsFavorited || !aliceView.IsInShoppingCart {
		t.Fatalf("expected alice flags true, got favorited=%v in_cart=%v",
			aliceView.IsFavorited, aliceView.IsInShoppingCart)
	}

	bobView, err := env.viewService.Get(context.Background(), bob.ID, product.ID)
	if err != nil {
		t.Fatalf("get bob view failed: %v", err)
	}
	if bobView.IsFavorited || bobView.IsInShoppingCart {
		t.Fatal("expected bob flags false")
	}

	anonView, err := env.viewService.Get(context.Background(), 0, product.ID)
	if err != nil {
		t.Fatalf("get anonymous view failed: %v", err)
	}
	if anonView.IsFavorited || anonView.IsInShoppingCart {
		t.Fatal("expected anonymous flags false")
	}
}

func TestProductView_ListEnrichment(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	first := env.createProduct(t, creator, "SSD")
	second := env.createProduct(t, creator, "HDD")

	user := env.createUser(t, false)
	if err := env.engagementService.Add(user.ID, second.ID, models.KindFavorite); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}
	if err := env.engagementService.Rate(user.ID, first.ID, 5); err != nil {
		t.Fatalf("rate failed: %v", err)
	}

	views, total, err := env.viewService.List(context.Background(), user.ID, repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("list views failed: %v", err)
	}
	if total != 2 || len(views) != 2 {
		t.Fatalf("expected 2 products, got total=%d len=%d", total, len(views))
	}

	// 列表按 id 升序稳定排序
	if views[0].ID != first.ID || views[1].ID != second.ID {
		t.Fatalf("unexpected ordering: got %d then %d", views[0].ID, views[1].ID)
	}
	if views[0].Rating != 5 {
		t.Fatalf("expected first product rating 5, got %v", views[0].Rating)
	}
	if !views[1].IsFavorited {
		t.Fatal("expected second product favorited for user")
	}
	if views[0].Article == "" || views[1].Article == "" {
		t.Fatal("expected article codes on both views")
	}
	if len(views[0].Properties) != 1 {
		t.Fatalf("expected 1 property on first view, got %d", len(views[0].Properties))
	}
	if views[0].Properties[0].Value != "16GB" {
		t.Fatalf("unexpected property value %q", views[0].Properties[0].Value)
	}
	if views[0].Creator.Username == "" {
		t.Fatal("expected creator username on view")
	}
}

func TestProductView_NestedReferences(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "CPU")

	view, err := env.viewService.Get(context.Background(), 0, product.ID)
	if err != nil {
		t.Fatalf("get view failed: %v", err)
	}

	if view.Category.ID != product.CategoryID || view.Category.Name == "" || view.Category.Slug == "" {
		t.Fatalf("expected nested category with id/name/slug, got %+v", view.Category)
	}
	if view.SubCategory.ID != product.SubCategoryID || view.SubCategory.Slug == "" {
		t.Fatalf("expected nested sub category, got %+v", view.SubCategory)
	}
	if view.ProductType.ID != product.ProductTypeID || view.ProductType.Name != "CPU" {
		t.Fatalf("expected nested product type, got %+v", view.ProductType)
	}
	if view.Creator.ID != creator.ID || view.Creator.Username != creator.Username ||
		view.Creator.Email != creator.Email || view.Creator.PhoneNumber != creator.PhoneNumber {
		t.Fatalf("expected creator public profile, got %+v", view.Creator)
	}
}
