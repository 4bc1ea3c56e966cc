package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateCategory_NameNeedsThreeLetters(t *testing.T) {
	env := newTestEnv(t)

	// 文章编码前缀取名称前 3 个字母
	_, err := env.catalogService.CreateCategory(CreateCategoryInput{Name: "4K", Slug: "4k"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	category, err := env.catalogService.CreateCategory(CreateCategoryInput{Name: "4K TVs", Slug: "4k-tvs"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if category.ID == 0 {
		t.Fatal("expected persisted category")
	}
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.catalogService.CreateCategory(CreateCategoryInput{Name: "Monitors", Slug: "monitors"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := env.catalogService.CreateCategory(CreateCategoryInput{Name: "Monitors Two", Slug: "monitors"})
	if !errors.Is(err, ErrCategorySlugExists) {
		t.Fatalf("expected ErrCategorySlugExists, got %v", err)
	}
}

func TestDeleteCategory_RefusedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "CPU")

	if err := env.catalogService.DeleteCategory(product.CategoryID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	if err := env.productService.Delete(context.Background(), product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if err := env.catalogService.DeleteCategory(product.CategoryID); err != nil {
		t.Fatalf("delete category after product removal failed: %v", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	env := newTestEnv(t)

	category, err := env.catalogService.CreateCategory(CreateCategoryInput{Name: "Laptops", Slug: "laptops"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other, err := env.catalogService.CreateCategory(CreateCategoryInput{Name: "Desktops", Slug: "desktops"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := env.catalogService.UpdateCategory(category.ID, CreateCategoryInput{Name: "Gaming Laptops", Slug: "gaming-laptops"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Gaming Laptops" || updated.Slug != "gaming-laptops" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := env.catalogService.UpdateCategory(other.ID, CreateCategoryInput{Name: "Desktops", Slug: "gaming-laptops"}); !errors.Is(err, ErrCategorySlugExists) {
		t.Fatalf("expected ErrCategorySlugExists, got %v", err)
	}
	if _, err := env.catalogService.UpdateCategory(99999, CreateCategoryInput{Name: "Ghost", Slug: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateProductType_Duplicate(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.catalogService.CreateProductType("CPU"); err != nil {
		t.Fatalf("create type failed: %v", err)
	}
	if _, err := env.catalogService.CreateProductType("CPU"); !errors.Is(err, ErrTypeNameExists) {
		t.Fatalf("expected ErrTypeNameExists, got %v", err)
	}
}

func TestDeleteProperty_RefusedWhileUsed(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "RAM")

	properties, err := env.productRepo.ListPropertiesByProducts([]uint{product.ID})
	if err != nil {
		t.Fatalf("list properties failed: %v", err)
	}
	rows := properties[product.ID]
	if len(rows) != 1 {
		t.Fatalf("expected 1 property row, got %d", len(rows))
	}

	if err := env.catalogService.DeleteProperty(rows[0].PropertyID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
}
