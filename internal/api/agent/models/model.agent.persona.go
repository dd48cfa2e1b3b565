// Package models - persona taxonomy cho các agent tự động.
// Dữ liệu hiển thị (bio, sở thích, bình luận) là tiếng Thổ Nhĩ Kỳ theo ngôn ngữ của nền tảng.
package models

// Persona mô tả một kiểu agent: bio khả dĩ và các chủ đề họ quan tâm
type Persona struct {
	Type      string   // Định danh persona, lưu vào User.PersonaType
	Bios      []string // Các bio khả dĩ, chọn ngẫu nhiên một
	Interests []string // Sở thích cố định theo persona, đồng thời là chủ đề viết bài
}

// PersonaTypes liệt kê tất cả các kiểu agent theo thứ tự cố định
var PersonaTypes = []string{
	"tech_enthusiast",
	"lifestyle_blogger",
	"food_critic",
	"travel_writer",
	"book_reviewer",
	"movie_critic",
	"fitness_expert",
	"fashion_blogger",
}

// Personas là taxonomy đầy đủ, key theo Type
var Personas = map[string]Persona{
	"tech_enthusiast": {
		Type: "tech_enthusiast",
		Bios: []string{
			"Teknoloji tutkunu ve yazılım geliştirici. Yapay zeka ve blockchain konularında uzman.",
			"Teknoloji dünyasındaki son gelişmeleri takip eden ve paylaşan bir yazar.",
			"Yazılım mühendisi ve teknoloji blog yazarı. Yeni teknolojileri keşfetmeyi seviyorum.",
		},
		Interests: []string{"Yapay Zeka", "Blockchain", "Yazılım Geliştirme", "Siber Güvenlik"},
	},
	"lifestyle_blogger": {
		Type: "lifestyle_blogger",
		Bios: []string{
			"Yaşam tarzı ve kişisel gelişim üzerine yazılar yazan bir blogger.",
			"Günlük yaşam, sağlık ve wellness konularında içerik üreten bir yazar.",
			"Modern yaşamın getirdiği zorlukları ve çözümleri paylaşan bir blogger.",
		},
		Interests: []string{"Sağlıklı Yaşam", "Kişisel Gelişim", "Meditasyon", "Yoga"},
	},
	"food_critic": {
		Type: "food_critic",
		Bios: []string{
			"Lezzet avcısı. Yeni restoranları ve sokak lezzetlerini keşfedip yazıyorum.",
			"Gastronomi dünyasından tatlar ve tarifler paylaşan bir yemek yazarı.",
		},
		Interests: []string{"Gastronomi", "Restoranlar", "Tarifler", "Kahve"},
	},
	"travel_writer": {
		Type: "travel_writer",
		Bios: []string{
			"Dünyayı gezen ve gördüklerini yazan bir seyahat yazarı.",
			"Sırt çantamla keşfettiğim rotaları ve ipuçlarını paylaşıyorum.",
		},
		Interests: []string{"Seyahat", "Gezi Rotaları", "Kültür", "Fotoğrafçılık"},
	},
	"book_reviewer": {
		Type: "book_reviewer",
		Bios: []string{
			"Kitap kurdu. Okuduğum her kitabı inceleyip öneriyorum.",
			"Edebiyat üzerine yazan ve okuma listeleri hazırlayan bir yazar.",
		},
		Interests: []string{"Edebiyat", "Kitap İncelemeleri", "Şiir", "Yazarlık"},
	},
	"movie_critic": {
		Type: "movie_critic",
		Bios: []string{
			"Sinema tutkunu. Filmleri ve dizileri derinlemesine inceliyorum.",
			"Beyaz perdenin büyüsünü yazıya döken bir film eleştirmeni.",
		},
		Interests: []string{"Sinema", "Diziler", "Yönetmenler", "Film Eleştirisi"},
	},
	"fitness_expert": {
		Type: "fitness_expert",
		Bios: []string{
			"Antrenör ve spor yazarı. Doğru egzersiz ve beslenme üzerine yazıyorum.",
			"Sağlıklı ve güçlü bir yaşam için fitness ipuçları paylaşıyorum.",
		},
		Interests: []string{"Fitness", "Beslenme", "Antrenman", "Spor"},
	},
	"fashion_blogger": {
		Type: "fashion_blogger",
		Bios: []string{
			"Moda ve stil üzerine yazan bir blogger. Trendleri yakından takip ediyorum.",
			"Gardırop önerileri ve sezon trendleri paylaşan bir moda yazarı.",
		},
		Interests: []string{"Moda", "Stil", "Trendler", "Tasarım"},
	},
}

// ContentCategories là các danh mục bài viết mà pipeline sinh nội dung sử dụng
var ContentCategories = []string{
	"Veri Bilimi", "Siber Güvenlik", "Donanım", "Yazılım", "Yapay Zeka", "Mobil", "Web", "Oyun",
}

// CannedComments là các bình luận mẫu mà agent dùng khi tương tác
var CannedComments = []string{
	"Çok faydalı bir yazı, teşekkürler!",
	"Harika bir içerik olmuş, elinize sağlık.",
	"Bu konuda daha fazla yazı bekliyoruz!",
	"Çok bilgilendirici, paylaşım için teşekkürler.",
	"Kesinlikle katılıyorum, güzel bir bakış açısı.",
}
