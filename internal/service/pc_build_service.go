package service

import (
	"context"

	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"
)

// slotSpec 槽位定义：槽位名与要求的商品类型名
type slotSpec struct {
	Name     string
	TypeName string
}

// 槽位顺序固定，校验错误按此顺序返回。
var slotSpecs = []slotSpec{
	{constants.SlotPcBox, constants.TypePcBox},
	{constants.SlotPowerSupply, constants.TypePowerSupply},
	{constants.SlotMotherboard, constants.TypeMotherboard},
	{constants.SlotRAMMemory, constants.TypeRAM},
	{constants.SlotSSDStorageMemory, constants.TypeSSD},
	{constants.SlotHDDStorageMemory, constants.TypeHDD},
	{constants.SlotCPU, constants.TypeCPU},
	{constants.SlotGPU, constants.TypeGPU},
}

// CreatePcBuildInput 创建装机方案输入：槽位名到商品 ID
type CreatePcBuildInput struct {
	PcBoxID            uint
	PowerSupplyID      uint
	MotherboardID      uint
	RAMMemoryID        uint
	SSDStorageMemoryID uint
	HDDStorageMemoryID uint
	CPUID              uint
	GPUID              uint
}

func (in CreatePcBuildInput) slotProductIDs() map[string]uint {
	return map[string]uint{
		constants.SlotPcBox:            in.PcBoxID,
		constants.SlotPowerSupply:      in.PowerSupplyID,
		constants.SlotMotherboard:      in.MotherboardID,
		constants.SlotRAMMemory:        in.RAMMemoryID,
		constants.SlotSSDStorageMemory: in.SSDStorageMemoryID,
		constants.SlotHDDStorageMemory: in.HDDStorageMemoryID,
		constants.SlotCPU:              in.CPUID,
		constants.SlotGPU:              in.GPUID,
	}
}

// PcBuildView 装机方案视图，各槽位内嵌商品读模型
type PcBuildView struct {
	ID               uint        `json:"id"`
	PcBox            ProductView `json:"pc_box"`
	PowerSupply      ProductView `json:"power_supply"`
	Motherboard      ProductView `json:"motherboard"`
	RAMMemory        ProductView `json:"ram_memory"`
	SSDStorageMemory ProductView `json:"ssd_storage_memory"`
	HDDStorageMemory ProductView `json:"hdd_storage_memory"`
	CPU              ProductView `json:"cpu"`
	GPU              ProductView `json:"gpu"`
}

// PcBuildService 装机方案业务服务
type PcBuildService struct {
	buildRepo   repository.PcBuildRepository
	productRepo repository.ProductRepository
	viewService *ProductViewService
}

// NewPcBuildService 创建装机方案服务
func NewPcBuildService(
	buildRepo repository.PcBuildRepository,
	productRepo repository.ProductRepository,
	viewService *ProductViewService,
) *PcBuildService {
	return &PcBuildService{
		buildRepo:   buildRepo,
		productRepo: productRepo,
		viewService: viewService,
	}
}

// Create 创建装机方案
// 八个槽位一次性批量取商品后逐槽校验，所有槽位错误收齐一并返回；
// 任一槽位不合法则整单不落库。
func (s *PcBuildService) Create(ctx context.Context, userID uint, input CreatePcBuildInput) (*PcBuildView, error) {
	slotIDs := input.slotProductIDs()

	ids := make([]uint, 0, len(slotSpecs))
	for _, spec := range slotSpecs {
		ids = append(ids, slotIDs[spec.Name])
	}
	products, err := s.productRepo.ListByIDs(uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	verr := &ValidationError{}
	for _, spec := range slotSpecs {
		id := slotIDs[spec.Name]
		if id == 0 {
			verr.Add(spec.Name, "product id is required")
			continue
		}
		product, ok := byID[id]
		if !ok {
			verr.Addf(spec.Name, "product %d not found", id)
			continue
		}
		if product.ProductType.Name != spec.TypeName {
			verr.Addf(spec.Name, "requires a %s product, got %s", spec.TypeName, product.ProductType.Name)
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	build := &models.PcBuild{
		PcBoxID:            input.PcBoxID,
		PowerSupplyID:      input.PowerSupplyID,
		MotherboardID:      input.MotherboardID,
		RAMMemoryID:        input.RAMMemoryID,
		SSDStorageMemoryID: input.SSDStorageMemoryID,
		HDDStorageMemoryID: input.HDDStorageMemoryID,
		CPUID:              input.CPUID,
		GPUID:              input.GPUID,
	}
	if err := s.buildRepo.Create(build); err != nil {
		return nil, err
	}
	return s.buildView(ctx, userID, build)
}

// Get 获取装机方案视图
func (s *PcBuildService) Get(ctx context.Context, userID, buildID uint) (*PcBuildView, error) {
	build, err := s.buildRepo.GetByID(buildID)
	if err != nil {
		return nil, err
	}
	if build == nil {
		return nil, ErrNotFound
	}
	return s.buildView(ctx, userID, build)
}

// List 装机方案列表视图
func (s *PcBuildService) List(ctx context.Context, userID uint, filter repository.PcBuildListFilter) ([]PcBuildView, int64, error) {
	builds, total, err := s.buildRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]PcBuildView, 0, len(builds))
	for i := range builds {
		view, err := s.buildView(ctx, userID, &builds[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

// Delete 删除装机方案
func (s *PcBuildService) Delete(id uint) error {
	build, err := s.buildRepo.GetByID(id)
	if err != nil {
		return err
	}
	if build == nil {
		return ErrNotFound
	}
	return s.buildRepo.Delete(id)
}

func (s *PcBuildService) buildView(ctx context.Context, userID uint, build *models.PcBuild) (*PcBuildView, error) {
	slotIDs := build.SlotProductIDs()
	ids := make([]uint, 0, len(slotIDs))
	for _, id := range slotIDs {
		ids = append(ids, id)
	}
	productViews, err := s.viewService.GetMany(ctx, userID, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	return &PcBuildView{
		ID:               build.ID,
		PcBox:            productViews[build.PcBoxID],
		PowerSupply:      productViews[build.PowerSupplyID],
		Motherboard:      productViews[build.MotherboardID],
		RAMMemory:        productViews[build.RAMMemoryID],
		SSDStorageMemory: productViews[build.SSDStorageMemoryID],
		HDDStorageMemory: productViews[build.HDDStorageMemoryID],
		CPU:              productViews[build.CPUID],
		GPU:              productViews[build.GPUID],
	}, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
