package constants

// 分类 / 子分类
const (
	CategoryNameMaxLength = 32
	CategorySlugMaxLength = 32
	// 文章编码前缀取名称前 3 个字母，名称至少要有 3 个字母
	CategoryNameMinLetters = 3
)

// 商品
const (
	MinNameLength        = 5
	MaxNameLength        = 255
	MinDescriptionLength = 5
	MaxDescriptionLength = 1000
	MaxValueLength       = 255
	MinPriceValue        = 1
	MaxPriceValue        = 1_000_000_000
)

// 评分
const (
	MinRatingScore = 1
	MaxRatingScore = 5
	DefaultRating  = 0
)

// 文章编码
const (
	ArticlePrefixLetters = 3
	ArticleSequenceStart = 100001
	ArticleDigitWidth    = 6
)

// 装机槽位名称
const (
	SlotPcBox            = "pc_box"
	SlotPowerSupply      = "power_supply"
	SlotMotherboard      = "motherboard"
	SlotRAMMemory        = "ram_memory"
	SlotSSDStorageMemory = "ssd_storage_memory"
	SlotHDDStorageMemory = "hdd_storage_memory"
	SlotCPU              = "cpu"
	SlotGPU              = "gpu"
)

// 装机槽位要求的商品类型名称
const (
	TypePcBox       = "PC_BOX"
	TypePowerSupply = "POWER_SUPPLY"
	TypeMotherboard = "MOTHERBOARD"
	TypeRAM         = "RAM"
	TypeSSD         = "SSD"
	TypeHDD         = "HDD"
	TypeCPU         = "CPU"
	TypeGPU         = "GPU"
)

// 装机创建权限策略
const (
	PcBuildWriteOpen          = "open"
	PcBuildWriteAuthenticated = "authenticated"
	PcBuildWriteSuperuser     = "superuser"
)
