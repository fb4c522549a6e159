package memstore

import (
	"time"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Seed loads the sample marketplace dataset: an admin, a general user, five
// active artists with portfolios, promotion events, reviews, a payment
// history and two ongoing chats. Intended for development and demo setups.
func (s *Store) Seed(hasher service.PasswordHasher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	adminHash, err := hasher.Hash("adminpassword")
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	userHash, err := hasher.Hash("password123")
	if err != nil {
		return errors.Wrap(err, "hash sample password")
	}

	now := time.Now()
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	datePtr := func(t time.Time) *time.Time { return &t }

	admin := &entity.Account{
		ID: uuid.New(), Role: entity.RoleAdmin, Name: "Admin",
		Email: "admin@inkspot.com", PasswordHash: adminHash, CreatedAt: now,
	}
	general := &entity.Account{
		ID: uuid.New(), Role: entity.RoleGeneral, Name: "Chris P.",
		Email: "chris@example.com", PasswordHash: userHash, CreatedAt: now,
	}

	luna := &entity.Artist{
		ID: uuid.New(), Name: "Luna Ink", Email: "artist@inkspot.com",
		AvatarURL:     "https://picsum.photos/200/200?random=21",
		CoverImageURL: "https://picsum.photos/800/400?random=61",
		Bio:           "10년 이상의 경력을 가진 Luna는 신체의 자연스러운 선과 흐르는 섬세하고 복잡한 디자인을 전문으로 합니다.",
		Specialty:     "Fine Line & Floral", Rating: 4.9, ReviewCount: 182,
		Location: "서울특별시 강남구", ArtistType: entity.ArtistTypeTattoo,
		WhatsApp:  "https://wa.me/821012345678",
		KakaoTalk: "https://open.kakao.com/o/sExample",
		Subscription: entity.Subscription{
			Tier:       entity.TierPremium,
			ExpiryDate: datePtr(date(2099, time.December, 31)),
		},
		Status: entity.ArtistStatusActive, CreatedAt: now,
	}
	rexo := &entity.Artist{
		ID: uuid.New(), Name: "Rexo", Email: "rexo@inkspot.com",
		AvatarURL:     "https://picsum.photos/200/200?random=22",
		CoverImageURL: "https://picsum.photos/800/400?random=62",
		Bio:           "전통 이레즈미의 대가 Rexo는 대담한 선과 생생한 색상으로 신화적인 이야기를 엮어냅니다.",
		Specialty:     "Japanese & Irezumi", Rating: 4.8, ReviewCount: 231,
		Location: "부산광역시 해운대구", ArtistType: entity.ArtistTypeTattoo,
		WhatsApp:     "https://wa.me/821087654321",
		Subscription: entity.Subscription{Tier: entity.TierFree},
		Status:       entity.ArtistStatusActive, CreatedAt: now,
	}
	aria := &entity.Artist{
		ID: uuid.New(), Name: "Aria Page", Email: "aria@inkspot.com",
		AvatarURL:     "https://picsum.photos/200/200?random=23",
		CoverImageURL: "https://picsum.photos/800/400?random=63",
		Bio:           "Aria는 블랙워크와 기하학적 타투의 경계를 넓히는 비전 있는 아티스트입니다.",
		Specialty:     "Blackwork & Geometric", Rating: 5.0, ReviewCount: 98,
		Location: "서울특별시 마포구", ArtistType: entity.ArtistTypeTattoo,
		KakaoTalk:    "https://open.kakao.com/o/sExample2",
		Subscription: entity.Subscription{Tier: entity.TierFree},
		Status:       entity.ArtistStatusActive, CreatedAt: now,
	}
	vex := &entity.Artist{
		ID: uuid.New(), Name: "Vex", Email: "vex@inkspot.com",
		AvatarURL:     "https://picsum.photos/200/200?random=24",
		CoverImageURL: "https://picsum.photos/800/400?random=64",
		Bio:           "네오 트래디셔널 전문가인 Vex는 고전적인 타투 모티프에 현대적인 감각을 더합니다.",
		Specialty:     "Neo-Traditional", Rating: 4.9, ReviewCount: 150,
		Location: "경기도 수원시 팔달구", ArtistType: entity.ArtistTypeTattoo,
		Subscription: entity.Subscription{Tier: entity.TierFree},
		Status:       entity.ArtistStatusActive, CreatedAt: now,
	}
	sienna := &entity.Artist{
		ID: uuid.New(), Name: "Sienna Brows", Email: "sienna@inkspot.com",
		AvatarURL:     "https://picsum.photos/200/200?random=25",
		CoverImageURL: "https://picsum.photos/800/400?random=65",
		Bio:           "Sienna는 타고난 아름다움을 반영구 화장으로 강조하는 데 열정을 쏟습니다.",
		Specialty:     "자연 눈썹 & 아이라인", Rating: 4.9, ReviewCount: 312,
		Location: "서울특별시 강남구", ArtistType: entity.ArtistTypePMU,
		KakaoTalk:    "https://open.kakao.com/o/sExample3",
		Subscription: entity.Subscription{Tier: entity.TierFree},
		Status:       entity.ArtistStatusActive, CreatedAt: now,
	}
	artists := []*entity.Artist{luna, rexo, aria, vex, sienna}

	// Every artist can log in; the account shares the artist's ID.
	s.accounts[admin.ID] = admin
	s.accounts[general.ID] = general
	for _, artist := range artists {
		s.accounts[artist.ID] = &entity.Account{
			ID: artist.ID, Role: entity.RoleArtist, Name: artist.Name,
			Email: artist.Email, PasswordHash: userHash, CreatedAt: now,
		}
	}
	for i := len(artists) - 1; i >= 0; i-- {
		s.artists = prepend(s.artists, artists[i])
	}

	tattoo := func(owner *entity.Artist, img, style, desc string, tags ...string) *entity.Tattoo {
		return &entity.Tattoo{
			ID: uuid.New(), ImageURL: img,
			ArtistID: owner.ID, ArtistName: owner.Name, ArtistAvatarURL: owner.AvatarURL,
			Style: style, Description: desc, Tags: tags,
			ArtistType: owner.ArtistType, CreatedAt: now,
		}
	}
	tattoos := []*entity.Tattoo{
		tattoo(luna, "https://picsum.photos/400/500?random=11", "Fine Line",
			"A delicate wildflower bouquet on the ankle, symbolizing growth and natural beauty.",
			"floral", "minimalist", "ankle"),
		tattoo(rexo, "https://picsum.photos/400/500?random=12", "Japanese",
			"A powerful koi fish swimming upstream, representing perseverance and strength.",
			"koi", "irezumi", "backpiece"),
		tattoo(aria, "https://picsum.photos/400/500?random=13", "Blackwork",
			"An intricate mandala pattern on the forearm, composed of bold lines and geometric shapes.",
			"mandala", "geometric", "forearm"),
		tattoo(vex, "https://picsum.photos/400/500?random=14", "Neo-Traditional",
			"A majestic stag with ornate, jeweled antlers. Features bold outlines and a rich color palette.",
			"animal", "neotrad", "chest"),
		tattoo(luna, "https://picsum.photos/400/500?random=15", "Watercolor",
			"A vibrant hummingbird in mid-flight, with splashes of color that mimic a watercolor painting.",
			"bird", "watercolor", "shoulder"),
		tattoo(rexo, "https://picsum.photos/400/500?random=16", "Geometric",
			"A sacred geometry design on the sternum, featuring interlocking shapes and dotwork.",
			"sacred-geometry", "dotwork", "sternum"),
		tattoo(aria, "https://picsum.photos/400/500?random=17", "Realism",
			"A hyper-realistic portrait of a lion, capturing intense emotion and detail in its eyes.",
			"lion", "realism", "bicep"),
		tattoo(vex, "https://picsum.photos/400/500?random=18", "Tribal",
			"A classic Polynesian-inspired tribal band wrapping around the upper arm.",
			"tribal", "polynesian", "armband"),
		tattoo(sienna, "https://picsum.photos/400/500?random=19", "눈썹",
			"자연스러운 엠보 기법으로 한올 한올 그린 듯한 눈썹.",
			"eyebrows", "microblading", "natural"),
		tattoo(sienna, "https://picsum.photos/400/500?random=20", "아이라인",
			"또렷하고 선명한 눈매를 위한 점막 아이라인.",
			"eyeliner", "permanent-makeup"),
	}
	for i := len(tattoos) - 1; i >= 0; i-- {
		s.tattoos = prepend(s.tattoos, tattoos[i])
	}

	events := []*entity.Event{
		{
			ID: uuid.New(), ArtistID: luna.ID, ArtistName: luna.Name,
			Title:    "Autumn Floral Flash Event",
			ImageURL: "https://picsum.photos/600/600?random=51",
			OriginalPrice: 300000, DiscountPrice: 200000,
			StartDate: date(2024, time.October, 1), EndDate: date(2024, time.October, 31),
			Description: "Embrace the autumn season with our special floral flash event. Choose from a variety of pre-drawn, delicate floral designs at a special discounted rate.",
			ArtistType:  entity.ArtistTypeTattoo, CreatedAt: now,
		},
		{
			ID: uuid.New(), ArtistID: luna.ID, ArtistName: luna.Name,
			Title:    "Minimalist Wonders Discount",
			ImageURL: "https://picsum.photos/600/600?random=52",
			OriginalPrice: 150000, DiscountPrice: 100000,
			StartDate: date(2024, time.November, 1), EndDate: date(2024, time.November, 15),
			Description: "For two weeks only, get any minimalist design (under 5cm) for a fixed price.",
			ArtistType:  entity.ArtistTypeTattoo, CreatedAt: now,
		},
		{
			ID: uuid.New(), ArtistID: aria.ID, ArtistName: aria.Name,
			Title:    "Geometric & Blackwork Sale",
			ImageURL: "https://picsum.photos/600/600?random=53",
			OriginalPrice: 500000, DiscountPrice: 350000,
			StartDate: date(2024, time.September, 20), EndDate: date(2024, time.October, 20),
			Description: "Book a full-day session for a large-scale geometric or blackwork piece and receive a 30% discount.",
			ArtistType:  entity.ArtistTypeTattoo, CreatedAt: now,
		},
		{
			ID: uuid.New(), ArtistID: sienna.ID, ArtistName: sienna.Name,
			Title:    "여름맞이 반영구 할인 이벤트",
			ImageURL: "https://picsum.photos/600/600?random=54",
			OriginalPrice: 250000, DiscountPrice: 180000,
			StartDate: date(2024, time.July, 1), EndDate: date(2024, time.July, 31),
			Description: "여름 휴가 시즌을 맞아 자연스러운 눈썹과 아이라인으로 민낯 자신감을 찾아보세요!",
			ArtistType:  entity.ArtistTypePMU, CreatedAt: now,
		},
	}
	for i := len(events) - 1; i >= 0; i-- {
		s.events = prepend(s.events, events[i])
	}

	review := func(t *entity.Tattoo, name, avatar, comment string) *entity.Review {
		return &entity.Review{
			ID: uuid.New(), TattooID: t.ID, ReviewerID: uuid.New(),
			ReviewerName: name, ReviewerAvatar: avatar,
			Rating: 5, Comment: comment, ImageURL: t.ImageURL,
			ArtistID: t.ArtistID, ArtistName: t.ArtistName, CreatedAt: now,
		}
	}
	reviews := []*entity.Review{
		review(tattoos[0], "Alex R.", "https://picsum.photos/100/100?random=31",
			"Luna was incredible! She brought my idea to life better than I could have imagined."),
		review(tattoos[1], "Jessie M.", "https://picsum.photos/100/100?random=32",
			"Rexo is a true master of Japanese style. The detail in my sleeve is breathtaking."),
		review(tattoos[2], "Sam K.", "https://picsum.photos/100/100?random=33",
			"Aria is a genius with linework. The studio was clean and the whole process comfortable."),
		review(tattoos[3], "Mike L.", "https://picsum.photos/100/100?random=34",
			"A fantastic experience from start to finish. Vex's neo-traditional work is top-notch."),
		review(tattoos[8], "Yuna K.", "https://picsum.photos/100/100?random=35",
			"시에나님 덕분에 아침 화장 시간이 엄청 줄었어요! 눈썹 모양도 너무 자연스러워요."),
	}
	for i := len(reviews) - 1; i >= 0; i-- {
		s.reviews = prepend(s.reviews, reviews[i])
	}

	payments := []*entity.Payment{
		{
			ID: uuid.New(), ArtistID: rexo.ID, ArtistName: rexo.Name,
			PlanTitle: "1개월 플랜", Amount: 30000,
			PaymentDate: date(2024, time.May, 15), NewExpiryDate: date(2024, time.June, 15),
		},
		{
			ID: uuid.New(), ArtistID: aria.ID, ArtistName: aria.Name,
			PlanTitle: "3개월 플랜", Amount: 81000,
			PaymentDate: date(2024, time.June, 1), NewExpiryDate: date(2024, time.September, 1),
		},
		{
			ID: uuid.New(), ArtistID: rexo.ID, ArtistName: rexo.Name,
			PlanTitle: "1개월 플랜", Amount: 30000,
			PaymentDate: date(2024, time.June, 16), NewExpiryDate: date(2024, time.July, 16),
		},
	}
	for i := len(payments) - 1; i >= 0; i-- {
		s.payments = prepend(s.payments, payments[i])
	}

	roomAt := func(a, b uuid.UUID, created time.Time) *entity.ChatRoom {
		return &entity.ChatRoom{
			ID: uuid.New(), ParticipantIDs: [2]uuid.UUID{a, b}, CreatedAt: created,
		}
	}
	lunaRoom := roomAt(general.ID, luna.ID, date(2024, time.July, 21))
	ariaRoom := roomAt(general.ID, aria.ID, date(2024, time.July, 20))
	s.rooms = prepend(s.rooms, ariaRoom)
	s.rooms = prepend(s.rooms, lunaRoom)

	message := func(room *entity.ChatRoom, sender uuid.UUID, content string, at time.Time) {
		s.messages[room.ID] = append(s.messages[room.ID], &entity.ChatMessage{
			ID: uuid.New(), ChatRoomID: room.ID, SenderID: sender,
			Content: content, CreatedAt: at,
		})
		room.LastMessageText = content
		t := at
		room.LastMessageTimestamp = &t
	}
	message(lunaRoom, general.ID, "안녕하세요, 팔뚝에 있는 들꽃 타투 문의드려요.",
		time.Date(2024, time.July, 22, 14, 28, 0, 0, time.UTC))
	message(lunaRoom, luna.ID, "네, 안녕하세요! 어떤 스타일로 생각하고 계신가요?",
		time.Date(2024, time.July, 22, 14, 29, 0, 0, time.UTC))
	message(lunaRoom, luna.ID, "네, 예약 가능합니다! 언제쯤 방문하시겠어요?",
		time.Date(2024, time.July, 22, 14, 30, 0, 0, time.UTC))
	message(ariaRoom, general.ID, "기하학적인 사자 디자인으로 상담받고 싶습니다.",
		time.Date(2024, time.July, 21, 17, 59, 0, 0, time.UTC))
	message(ariaRoom, aria.ID, "디자인 상담은 이번 주 금요일 오후에 가능해요.",
		time.Date(2024, time.July, 21, 18, 0, 0, 0, time.UTC))

	return nil
}
