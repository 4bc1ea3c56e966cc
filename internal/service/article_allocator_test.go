package service

import (
	"fmt"
	"regexp"
	"sync"
	"testing"
)

func TestArticlePrefix(t *testing.T) {
	prefix, err := ArticlePrefix("Phones", "Smartphones")
	if err != nil {
		t.Fatalf("prefix failed: %v", err)
	}
	if prefix != "PHO-SMA" {
		t.Fatalf("expected PHO-SMA, got %s", prefix)
	}

	// 非字母字符跳过
	prefix, err = ArticlePrefix("4K TVs", "O L E D Panels")
	if err != nil {
		t.Fatalf("prefix failed: %v", err)
	}
	if prefix != "KTV-OLE" {
		t.Fatalf("expected KTV-OLE, got %s", prefix)
	}

	if _, err := ArticlePrefix("ab", "Smartphones"); err == nil {
		t.Fatal("expected error for name with fewer than 3 letters")
	}
}

func TestAllocate_FormatAndSequence(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	fixture := env.createCatalog(t, "CPU")

	codeRe := regexp.MustCompile(`^[A-Z]{3}-[A-Z]{3}:\d{6,}$`)

	var codes []string
	for i := 0; i < 3; i++ {
		product, err := env.productService.Create(CreateProductInput{
			Name:          fmt.Sprintf("Sequenced Product %d", i),
			Description:   "Product used for code sequencing",
			Price:         500,
			CategoryID:    fixture.Category.ID,
			SubCategoryID: fixture.SubCategory.ID,
			ProductTypeID: fixture.Type.ID,
			CreatorID:     creator.ID,
		})
		if err != nil {
			t.Fatalf("create product %d failed: %v", i, err)
		}
		if product.Article == nil {
			t.Fatalf("product %d has no article", i)
		}
		if !codeRe.MatchString(product.Article.Code) {
			t.Fatalf("unexpected article code format: %s", product.Article.Code)
		}
		if !ValidArticleCode(product.Article.Code) {
			t.Fatalf("article code failed validation: %s", product.Article.Code)
		}
		codes = append(codes, product.Article.Code)
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		if seen[code] {
			t.Fatalf("duplicate article code: %s", code)
		}
		seen[code] = true
	}
}

func TestAllocate_ConcurrentNoDuplicates(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	fixture := env.createCatalog(t, "GPU")

	const workers = 16
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.productService.Create(CreateProductInput{
				Name:          fmt.Sprintf("Concurrent Product %d", i),
				Description:   "Product created under concurrency",
				Price:         500,
				CategoryID:    fixture.Category.ID,
				SubCategoryID: fixture.SubCategory.ID,
				ProductTypeID: fixture.Type.ID,
				CreatorID:     creator.ID,
			})
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent create failed: %v", err)
		}
	}

	var codes []string
	if err := env.db.Table("articles").Order("code ASC").Pluck("code", &codes).Error; err != nil {
		t.Fatalf("list codes failed: %v", err)
	}
	if len(codes) != workers {
		t.Fatalf("expected %d articles, got %d", workers, len(codes))
	}
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if seen[code] {
			t.Fatalf("duplicate article code under concurrency: %s", code)
		}
		seen[code] = true
	}
}
