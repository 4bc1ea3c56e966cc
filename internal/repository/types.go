package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	CategoryID    uint
	SubCategoryID uint
	ProductTypeID uint
	TypeName      string
	Search        string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page       int
	PageSize   int
	CustomerID uint
}

// PcBuildListFilter 查询装机方案列表的过滤条件
type PcBuildListFilter struct {
	Page     int
	PageSize int
}

func applyPagination(page, pageSize int) (offset, limit int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return (page - 1) * pageSize, pageSize
}
