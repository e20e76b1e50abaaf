// internal/domain/catalog/fallback.go
package catalog

// FallbackProducts is the static seed dataset the storefront serves whenever
// the hosted store is unreachable or empty, and the donor for missing images
// during reconciliation. Prices are VND.
func FallbackProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Slug:          "netflix-premium",
			Name:          "Netflix Premium",
			Description:   "Tài khoản Netflix Premium 4K, xem phim không giới hạn trên mọi thiết bị",
			Image:         "https://images.digistore.vn/products/netflix-premium.webp",
			Price:         69000,
			OriginalPrice: 260000,
			Discount:      73,
			Category:      CategoryEntertainment,
			Rating:        4.8,
			Sold:          12840,
			IsHot:         true,
			Variants: []Variant{
				{ID: 1, ProductID: "1", Name: "1 Tháng", Price: 69000, OriginalPrice: 260000},
				{ID: 2, ProductID: "1", Name: "6 Tháng", Price: 349000, OriginalPrice: 1560000},
				{ID: 3, ProductID: "1", Name: "1 Năm", Price: 649000, OriginalPrice: 3120000},
			},
		},
		{
			ID:            "2",
			Slug:          "spotify-premium",
			Name:          "Spotify Premium",
			Description:   "Nghe nhạc chất lượng cao, không quảng cáo, tải nhạc offline",
			Image:         "https://images.digistore.vn/products/spotify-premium.webp",
			Price:         29000,
			OriginalPrice: 59000,
			Discount:      51,
			Category:      CategoryEntertainment,
			Rating:        4.9,
			Sold:          9530,
			IsHot:         true,
			Variants: []Variant{
				{ID: 4, ProductID: "2", Name: "1 Tháng", Price: 29000, OriginalPrice: 59000},
				{ID: 5, ProductID: "2", Name: "1 Năm", Price: 290000, OriginalPrice: 708000},
			},
		},
		{
			ID:            "3",
			Slug:          "chatgpt-plus",
			Name:          "ChatGPT Plus",
			Description:   "Tài khoản ChatGPT Plus chính chủ, truy cập GPT-4 và các tính năng mới nhất",
			Image:         "https://images.digistore.vn/products/chatgpt-plus.webp",
			Price:         399000,
			OriginalPrice: 550000,
			Discount:      27,
			Category:      CategoryAI,
			Rating:        4.7,
			Sold:          6210,
			IsHot:         true,
			IsNew:         true,
		},
		{
			ID:            "4",
			Slug:          "youtube-premium",
			Name:          "YouTube Premium",
			Description:   "Xem YouTube không quảng cáo, phát trong nền, YouTube Music đi kèm",
			Image:         "https://images.digistore.vn/products/youtube-premium.webp",
			Price:         25000,
			OriginalPrice: 79000,
			Discount:      68,
			Category:      CategoryEntertainment,
			Rating:        4.6,
			Sold:          8450,
		},
		{
			ID:            "5",
			Slug:          "canva-pro",
			Name:          "Canva Pro",
			Description:   "Công cụ thiết kế đồ họa chuyên nghiệp, kho template và ảnh stock khổng lồ",
			Image:         "https://images.digistore.vn/products/canva-pro.webp",
			Price:         149000,
			OriginalPrice: 290000,
			Discount:      49,
			Category:      CategoryWork,
			Rating:        4.8,
			Sold:          5120,
		},
		{
			ID:            "6",
			Slug:          "office-365",
			Name:          "Microsoft Office 365",
			Description:   "Bộ Office bản quyền: Word, Excel, PowerPoint, 1TB OneDrive",
			Image:         "https://images.digistore.vn/products/office-365.webp",
			Price:         199000,
			OriginalPrice: 990000,
			Discount:      80,
			Category:      CategoryWork,
			Rating:        4.9,
			Sold:          7340,
		},
		{
			ID:            "7",
			Slug:          "duolingo-super",
			Name:          "Duolingo Super",
			Description:   "Học ngoại ngữ không quảng cáo, luyện tập không giới hạn",
			Image:         "https://images.digistore.vn/products/duolingo-super.webp",
			Price:         99000,
			OriginalPrice: 479000,
			Discount:      79,
			Category:      CategoryStudy,
			Rating:        4.5,
			Sold:          2310,
			IsNew:         true,
		},
		{
			ID:            "8",
			Slug:          "coursera-plus",
			Name:          "Coursera Plus",
			Description:   "Truy cập hơn 7000 khóa học và chứng chỉ từ các đại học hàng đầu",
			Image:         "https://images.digistore.vn/products/coursera-plus.webp",
			Price:         890000,
			OriginalPrice: 1450000,
			Discount:      39,
			Category:      CategoryStudy,
			Rating:        4.7,
			Sold:          980,
		},
		{
			ID:            "9",
			Slug:          "midjourney-standard",
			Name:          "Midjourney Standard",
			Description:   "Tạo ảnh AI chất lượng cao, số lượt render không giới hạn ở chế độ relax",
			Image:         "https://images.digistore.vn/products/midjourney.webp",
			Price:         690000,
			OriginalPrice: 850000,
			Discount:      19,
			Category:      CategoryAI,
			Rating:        4.6,
			Sold:          1540,
			IsNew:         true,
		},
		{
			ID:            "10",
			Slug:          "steam-wallet-500k",
			Name:          "Steam Wallet 500K",
			Description:   "Thẻ nạp Steam Wallet mệnh giá 500.000đ, giao mã tự động",
			Image:         "https://images.digistore.vn/products/steam-wallet.webp",
			Price:         475000,
			OriginalPrice: 500000,
			Discount:      5,
			Category:      CategoryGame,
			Rating:        4.9,
			Sold:          11230,
			IsHot:         true,
		},
	}
}
