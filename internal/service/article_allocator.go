package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"

	"gorm.io/gorm"
)

// ArticleAllocator 文章编码分配器
// 编码形如 PHO-SMA:100001：分类与子分类名称各取前 3 个字母拼前缀，
// 序号来自 article_sequences 的原子自增，同一前缀并发创建不会重号。
type ArticleAllocator struct {
	articleRepo repository.ArticleRepository
}

// NewArticleAllocator 创建文章编码分配器
func NewArticleAllocator(articleRepo repository.ArticleRepository) *ArticleAllocator {
	return &ArticleAllocator{articleRepo: articleRepo}
}

// ArticlePrefix 由分类与子分类名称推导编码前缀
// 名称字母不足 3 个时返回错误，目录服务在创建时已做同样限制。
func ArticlePrefix(categoryName, subCategoryName string) (string, error) {
	categoryPart, err := prefixPart(categoryName)
	if err != nil {
		return "", fmt.Errorf("category name %q: %w", categoryName, err)
	}
	subCategoryPart, err := prefixPart(subCategoryName)
	if err != nil {
		return "", fmt.Errorf("sub category name %q: %w", subCategoryName, err)
	}
	return categoryPart + "-" + subCategoryPart, nil
}

func prefixPart(name string) (string, error) {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == constants.ArticlePrefixLetters {
				return string(letters), nil
			}
		}
	}
	return "", fmt.Errorf("need at least %d letters", constants.ArticlePrefixLetters)
}

// Allocate 在事务内为商品分配文章编码
func (a *ArticleAllocator) Allocate(tx *gorm.DB, productID uint, categoryName, subCategoryName string) (*models.Article, error) {
	prefix, err := ArticlePrefix(categoryName, subCategoryName)
	if err != nil {
		return nil, err
	}

	repo := a.articleRepo.WithTx(tx)
	value, err := repo.NextSequence(prefix)
	if err != nil {
		return nil, fmt.Errorf("allocate article sequence: %w", err)
	}

	article := &models.Article{
		ProductID: productID,
		Code:      fmt.Sprintf("%s:%0*d", prefix, constants.ArticleDigitWidth, value),
	}
	if err := repo.Create(article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// ValidArticleCode 校验编码格式（测试与导入路径使用）
func ValidArticleCode(code string) bool {
	parts := strings.SplitN(code, ":", 2)
	if len(parts) != 2 {
		return false
	}
	prefixParts := strings.SplitN(parts[0], "-", 2)
	if len(prefixParts) != 2 {
		return false
	}
	for _, p := range prefixParts {
		if len(p) != constants.ArticlePrefixLetters {
			return false
		}
		for _, r := range p {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
	}
	if len(parts[1]) < constants.ArticleDigitWidth {
		return false
	}
	for _, r := range parts[1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
