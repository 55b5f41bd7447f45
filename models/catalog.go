package models

// DefaultCatalog is the built-in silk collection. It seeds the products
// collection on first run and serves as the fallback when no database is
// configured.
var DefaultCatalog = []Product{
	{
		ID:       1,
		Name:     "Silk Scarf Collection",
		Price:    89.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Luxury%20silk%20scarf%20collection%20display&sign=1b5a7647983ccf327add7be352718b4a",
		Category: "Accessories",
		Rating:   4.8,
		Reviews:  124,
	},
	{
		ID:       2,
		Name:     "Premium Silk Dress",
		Price:    299.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Elegant%20silk%20dress%20on%20mannequin&sign=09bfdd86139166a84b4306c8fa9fc341",
		Category: "Women",
		Rating:   4.9,
		Reviews:  87,
	},
	{
		ID:       3,
		Name:     "Silk Bed Sheets Set",
		Price:    399.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Luxury%20silk%20bed%20sheets%20on%20bed&sign=37ac7bebdbb62a47fe64e28aa390c2a2",
		Category: "Home",
		Rating:   4.7,
		Reviews:  156,
	},
	{
		ID:       4,
		Name:     "Silk Pillowcase",
		Price:    69.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Silk%20pillowcase%20on%20white%20pillow&sign=3c121d8b259bdee6aa7d9bf05004b4d4",
		Category: "Home",
		Rating:   4.6,
		Reviews:  98,
	},
	{
		ID:       5,
		Name:     "Silk Robe",
		Price:    199.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Silk%20robe%20hanging%20elegantly&sign=8db155e33c8f29946bb1950d03623be9",
		Category: "Loungewear",
		Rating:   4.8,
		Reviews:  112,
	},
	{
		ID:       6,
		Name:     "Silk Tie Collection",
		Price:    79.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Silk%20ties%20collection%20display&sign=89b1e7eeb22ca0c7ba9a3b81f143520f",
		Category: "Men",
		Rating:   4.7,
		Reviews:  65,
	},
	{
		ID:       7,
		Name:     "Silk Nightgown",
		Price:    159.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Luxury%20silk%20nightgown&sign=79d6f333b2c7722c68752cd784ac8ecf",
		Category: "Women",
		Rating:   4.9,
		Reviews:  132,
	},
	{
		ID:       8,
		Name:     "Silk Eye Mask",
		Price:    29.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Silk%20eye%20mask%20on%20display&sign=e3aadd2811f278e225f69d4ba68b552e",
		Category: "Accessories",
		Rating:   4.8,
		Reviews:  203,
	},
	{
		ID:       9,
		Name:     "Silk Handkerchief",
		Price:    19.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Silk%20handkerchief%20folded%20elegantly&sign=836253f7f7c638c7cca8b0b45b2b2450",
		Category: "Accessories",
		Rating:   4.7,
		Reviews:  96,
	},
	{
		ID:       10,
		Name:     "Silk Hair Scrunchies Set",
		Price:    15.99,
		Image:    "https://space.coze.cn/api/coze_space/gen_image?image_size=portrait_4_3&prompt=Silk%20hair%20scrunchies%20set&sign=85a549fa712589a4eaaea0a6188ed818",
		Category: "Accessories",
		Rating:   4.5,
		Reviews:  157,
	},
}
