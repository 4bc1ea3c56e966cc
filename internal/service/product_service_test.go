package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCreateProduct_Success(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	fixture := env.createCatalog(t, "CPU")

	product, err := env.productService.Create(CreateProductInput{
		Name:          "Ryzen 9 7950X",
		Description:   "16 core desktop processor",
		Price:         115000,
		CategoryID:    fixture.Category.ID,
		SubCategoryID: fixture.SubCategory.ID,
		ProductTypeID: fixture.Type.ID,
		CreatorID:     creator.ID,
		Properties: []PropertyValueInput{
			{PropertyID: fixture.Property.ID, Value: "16 cores"},
		},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatal("expected persisted product id")
	}
	if product.Article == nil || product.Article.Code == "" {
		t.Fatal("expected article code assigned at creation")
	}
	if product.Category.Name != fixture.Category.Name {
		t.Fatalf("expected category preloaded, got %q", product.Category.Name)
	}

	properties, err := env.productRepo.ListPropertiesByProducts([]uint{product.ID})
	if err != nil {
		t.Fatalf("list properties failed: %v", err)
	}
	if len(properties[product.ID]) != 1 {
		t.Fatalf("expected 1 property row, got %d", len(properties[product.ID]))
	}
}

func TestCreateProduct_CollectsAllValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)

	_, err := env.productService.Create(CreateProductInput{
		Name:          "ab",
		Description:   "x",
		Price:         0,
		CategoryID:    9999,
		SubCategoryID: 9999,
		ProductTypeID: 9999,
		CreatorID:     creator.ID,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// name, description, price, category, sub_category, product_type
	if len(verr.Fields) < 6 {
		t.Fatalf("expected all violations collected, got %d: %v", len(verr.Fields), verr)
	}
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	fixture := env.createCatalog(t, "GPU")

	input := CreateProductInput{
		Name:          "GeForce RTX 4090",
		Description:   "Flagship graphics card",
		Price:         320000,
		CategoryID:    fixture.Category.ID,
		SubCategoryID: fixture.SubCategory.ID,
		ProductTypeID: fixture.Type.ID,
		CreatorID:     creator.ID,
	}
	if _, err := env.productService.Create(input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := env.productService.Create(input); !errors.Is(err, ErrProductNameExists) {
		t.Fatalf("expected ErrProductNameExists, got %v", err)
	}
}

func TestUpdateProduct_PartialAndArticleStable(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "RAM")
	originalCode := product.Article.Code

	other := env.createCatalog(t, "SSD")
	price := int64(2500)
	updated, err := env.productService.Update(context.Background(), product.ID, UpdateProductInput{
		Price:         &price,
		CategoryID:    &other.Category.ID,
		SubCategoryID: &other.SubCategory.ID,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != price {
		t.Fatalf("expected price %d, got %d", price, updated.Price)
	}
	if updated.Name != product.Name {
		t.Fatalf("name must not change on partial update, got %q", updated.Name)
	}
	if updated.Article == nil || updated.Article.Code != originalCode {
		t.Fatal("article code must not change when category changes")
	}
}

func TestUpdateProduct_ReassignsReferences(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	product := env.createProduct(t, creator, "CPU")

	other := env.createCatalog(t, "GPU")
	updated, err := env.productService.Update(context.Background(), product.ID, UpdateProductInput{
		CategoryID:    &other.Category.ID,
		SubCategoryID: &other.SubCategory.ID,
		ProductTypeID: &other.Type.ID,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CategoryID != other.Category.ID {
		t.Fatalf("returned category = %d, want %d (old %d)", updated.CategoryID, other.Category.ID, product.CategoryID)
	}
	if updated.SubCategoryID != other.SubCategory.ID || updated.ProductTypeID != other.Type.ID {
		t.Fatalf("expected sub category %d and type %d, got %d and %d",
			other.SubCategory.ID, other.Type.ID, updated.SubCategoryID, updated.ProductTypeID)
	}

	// 回读确认落库，而不只是返回值正确
	reloaded, err := env.productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.CategoryID != other.Category.ID || reloaded.Category.Name != other.Category.Name {
		t.Fatalf("persisted category = %d (%q), want %d (%q)",
			reloaded.CategoryID, reloaded.Category.Name, other.Category.ID, other.Category.Name)
	}
	if reloaded.SubCategoryID != other.SubCategory.ID || reloaded.ProductTypeID != other.Type.ID {
		t.Fatal("expected reassigned sub category and product type persisted")
	}
}

func TestDeleteProduct_CascadesDependents(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	user := env.createUser(t, false)
	product := env.createProduct(t, creator, "HDD")

	if err := env.engagementService.Add(user.ID, product.ID, "favorite"); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}

	if err := env.productService.Delete(context.Background(), product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := env.productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected product gone after delete")
	}

	for _, table := range []string{"product_properties", "articles", "engagements"} {
		var count int64
		if err := env.db.Table(table).Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
			t.Fatalf("count %s failed: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("expected %s rows cleaned up, found %d", table, count)
		}
	}

	if err := env.productService.Delete(context.Background(), product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func TestCreateProduct_TrimsInput(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	fixture := env.createCatalog(t, "CPU")

	product, err := env.productService.Create(CreateProductInput{
		Name:          "  Core i9-14900K  ",
		Description:   "  24 core desktop processor  ",
		Price:         110000,
		CategoryID:    fixture.Category.ID,
		SubCategoryID: fixture.SubCategory.ID,
		ProductTypeID: fixture.Type.ID,
		CreatorID:     creator.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if strings.HasPrefix(product.Name, " ") || strings.HasSuffix(product.Name, " ") {
		t.Fatalf("expected trimmed name, got %q", product.Name)
	}
}
