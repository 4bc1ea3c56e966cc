package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pcshop-next/internal/constants"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/repository"
)

// buildParts 为八个槽位各造一个类型匹配的商品
func buildParts(t *testing.T, env *testEnv, creator *models.User) CreatePcBuildInput {
	t.Helper()
	return CreatePcBuildInput{
		PcBoxID:            env.createProduct(t, creator, constants.TypePcBox).ID,
		PowerSupplyID:      env.createProduct(t, creator, constants.TypePowerSupply).ID,
		MotherboardID:      env.createProduct(t, creator, constants.TypeMotherboard).ID,
		RAMMemoryID:        env.createProduct(t, creator, constants.TypeRAM).ID,
		SSDStorageMemoryID: env.createProduct(t, creator, constants.TypeSSD).ID,
		HDDStorageMemoryID: env.createProduct(t, creator, constants.TypeHDD).ID,
		CPUID:              env.createProduct(t, creator, constants.TypeCPU).ID,
		GPUID:              env.createProduct(t, creator, constants.TypeGPU).ID,
	}
}

func TestCreatePcBuild_Valid(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	input := buildParts(t, env, creator)

	view, err := env.pcBuildService.Create(context.Background(), 0, input)
	if err != nil {
		t.Fatalf("create build failed: %v", err)
	}
	if view.ID == 0 {
		t.Fatal("expected persisted build id")
	}
	if view.CPU.ID != input.CPUID {
		t.Fatalf("expected cpu slot product %d, got %d", input.CPUID, view.CPU.ID)
	}
	if view.GPU.ProductType.Name != constants.TypeGPU {
		t.Fatalf("expected gpu slot type GPU, got %s", view.GPU.ProductType.Name)
	}
	if view.PcBox.Article == "" {
		t.Fatal("expected nested views enriched with article codes")
	}
}

func TestCreatePcBuild_SlotTypeMismatch(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	input := buildParts(t, env, creator)

	// cpu 槽位放 GPU 商品
	gpu := env.createProduct(t, creator, constants.TypeGPU)
	input.CPUID = gpu.ID

	_, err := env.pcBuildService.Create(context.Background(), 0, input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 1 {
		t.Fatalf("expected single slot error, got %d: %v", len(verr.Fields), verr)
	}
	if verr.Fields[0].Field != constants.SlotCPU {
		t.Fatalf("expected error on cpu slot, got %s", verr.Fields[0].Field)
	}

	var count int64
	if err := env.db.Table("pc_builds").Count(&count).Error; err != nil {
		t.Fatalf("count builds failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no build persisted, found %d", count)
	}
}

func TestCreatePcBuild_CollectsAllSlotErrors(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	input := buildParts(t, env, creator)

	ssd := env.createProduct(t, creator, constants.TypeSSD)
	input.CPUID = ssd.ID       // 类型不匹配
	input.GPUID = 9999         // 不存在
	input.MotherboardID = 0    // 缺失

	_, err := env.pcBuildService.Create(context.Background(), 0, input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 slot errors collected, got %d: %v", len(verr.Fields), verr)
	}

	fields := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, slot := range []string{constants.SlotCPU, constants.SlotGPU, constants.SlotMotherboard} {
		if !fields[slot] {
			t.Fatalf("expected error for slot %s, got %v", slot, verr.Fields)
		}
	}
}

func TestCreatePcBuild_SameProductInCompatibleSlots(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)
	input := buildParts(t, env, creator)

	// SSD 与 HDD 槽位各自要求不同类型，同一商品不能同时满足
	input.HDDStorageMemoryID = input.SSDStorageMemoryID

	_, err := env.pcBuildService.Create(context.Background(), 0, input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != constants.SlotHDDStorageMemory {
		t.Fatalf("expected error on hdd slot, got %v", verr.Fields)
	}
}

func TestPcBuildSlotProductIDs_MatchSlotSpecs(t *testing.T) {
	build := models.PcBuild{
		PcBoxID: 1, PowerSupplyID: 2, MotherboardID: 3, RAMMemoryID: 4,
		SSDStorageMemoryID: 5, HDDStorageMemoryID: 6, CPUID: 7, GPUID: 8,
	}
	slotIDs := build.SlotProductIDs()
	if len(slotIDs) != len(slotSpecs) {
		t.Fatalf("expected %d slots, got %d", len(slotSpecs), len(slotIDs))
	}
	for _, spec := range slotSpecs {
		if _, ok := slotIDs[spec.Name]; !ok {
			t.Fatalf("slot %q missing from SlotProductIDs", spec.Name)
		}
	}
}

func TestGetPcBuild_NotFound(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.pcBuildService.Get(context.Background(), 0, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPcBuilds(t *testing.T) {
	env := newTestEnv(t)
	creator := env.createUser(t, true)

	first, err := env.pcBuildService.Create(context.Background(), 0, buildParts(t, env, creator))
	if err != nil {
		t.Fatalf("create first build failed: %v", err)
	}
	second, err := env.pcBuildService.Create(context.Background(), 0, buildParts(t, env, creator))
	if err != nil {
		t.Fatalf("create second build failed: %v", err)
	}

	views, total, err := env.pcBuildService.List(context.Background(), 0, repository.PcBuildListFilter{})
	if err != nil {
		t.Fatalf("list builds failed: %v", err)
	}
	if total != 2 || len(views) != 2 {
		t.Fatalf("expected 2 builds, got total=%d len=%d", total, len(views))
	}
	// 列表按 id 倒序
	if views[0].ID != second.ID || views[1].ID != first.ID {
		t.Fatalf("unexpected ordering: %d then %d", views[0].ID, views[1].ID)
	}
}
