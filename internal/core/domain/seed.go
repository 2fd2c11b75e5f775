package domain

const imageBase = "https://images.unsplash.com/"

// SeedCatalog returns a fresh copy of the storefront catalog.
func SeedCatalog() []Product {
	return []Product{
		// 手機
		{ID: 1, Name: "iPhone 15 Pro", Price: 35900, Image: imageBase + "photo-1695048133142-1a20484d2569?w=300", Description: "Apple最新旗艦手機，搭載A17 Pro晶片", Category: "手機"},
		{ID: 2, Name: "iPhone 14", Price: 24900, Image: imageBase + "photo-1678911820864-e2c567c655d7?w=300", Description: "Apple iPhone 14，優秀的攝影功能", Category: "手機"},
		{ID: 3, Name: "Samsung Galaxy S24", Price: 28900, Image: imageBase + "photo-1610945265064-0e34e5519bbf?w=300", Description: "Samsung旗艦手機，AI攝影專家", Category: "手機"},
		{ID: 4, Name: "小米14", Price: 15900, Image: imageBase + "photo-1574944985070-8f3ebc6b79d2?w=300", Description: "小米旗艦手機，徠卡影像", Category: "手機"},

		// 平板
		{ID: 5, Name: `iPad Pro 12.9"`, Price: 34900, Image: imageBase + "photo-1544244015-0df4b3ffc6b0?w=300", Description: "專業級平板電腦，M2晶片", Category: "平板"},
		{ID: 6, Name: "iPad Air", Price: 18900, Image: imageBase + "photo-1561154464-82e9adf32764?w=300", Description: "輕薄平板，適合日常使用", Category: "平板"},
		{ID: 7, Name: "Samsung Galaxy Tab S9", Price: 22900, Image: imageBase + "photo-1609081219090-a6d81d3085bf?w=300", Description: "Android高端平板，S Pen支援", Category: "平板"},
		{ID: 8, Name: "iPad", Price: 10900, Image: imageBase + "photo-1587033411391-5d9e51cce126?w=300", Description: "入門款iPad，適合學習娛樂", Category: "平板"},

		// 充電器
		{ID: 9, Name: "Apple 20W USB-C 充電器", Price: 990, Image: imageBase + "photo-1609299006394-8d9e8d3e6e37?w=300", Description: "原廠快速充電器", Category: "充電器"},
		{ID: 10, Name: "Anker 65W GaN 充電器", Price: 1890, Image: imageBase + "photo-1582273028830-d77cc59e6e68?w=300", Description: "輕巧高效充電器，支援多設備", Category: "充電器"},
		{ID: 11, Name: "Belkin 3合1無線充電器", Price: 3990, Image: imageBase + "photo-1609298368044-7a3ac4e8cd45?w=300", Description: "同時充電iPhone、AirPods、Apple Watch", Category: "充電器"},
		{ID: 12, Name: "Samsung 25W 快充器", Price: 799, Image: imageBase + "photo-1606145847774-8c0c0c6cd9f6?w=300", Description: "Samsung原廠快速充電器", Category: "充電器"},
		{ID: 13, Name: "RAVPower 行動電源 20000mAh", Price: 1499, Image: imageBase + "photo-1612835362596-1c5fd0b7ad84?w=300", Description: "大容量行動充電器", Category: "充電器"},

		// fill the price ranges
		{ID: 14, Name: "AirPods Pro 2", Price: 7490, Image: imageBase + "photo-1606220945770-b5b6c2c55bf1?w=300", Description: "主動式降噪無線耳機", Category: "音響"},
		{ID: 15, Name: "MacBook Air M3", Price: 39900, Image: imageBase + "photo-1541807084-5c52b6b3adef?w=300", Description: "輕薄強悍的筆記型電腦", Category: "筆電"},
		{ID: 16, Name: "Magic Mouse", Price: 2490, Image: imageBase + "photo-1615695956076-967b1d6d2b3b?w=300", Description: "Apple無線滑鼠", Category: "配件"},
	}
}
