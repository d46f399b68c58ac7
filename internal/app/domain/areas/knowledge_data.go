package areas

import "github.com/FACorreiaa/go-tripcore/internal/app/models"

var curatedDestinations = []Destination{
	{
		Name:        "Costa Rica",
		CountryCode: "CR",
		Center:      models.LatLng{Lat: 9.7489, Lng: -83.7534},
		Areas: []models.KnowledgeArea{
			{
				Name:            "Tamarindo",
				Type:            models.AreaTown,
				Description:     "Busy Guanacaste surf town with a long beach break, plenty of restaurants and bars.",
				Center:          models.LatLng{Lat: 10.2993, Lng: -85.8371},
				Characteristics: []string{"walkable", "touristy"},
				BestFor:         []string{"surf", "nightlife", "beach", "sunset"},
				NotIdealFor:     []string{"snorkel"},
				VibeTags:        []string{"lively", "party", "social"},
			},
			{
				Name:            "Nosara",
				Type:            models.AreaTown,
				Description:     "Low-key jungle-meets-beach community around Playa Guiones, known for yoga and consistent waves.",
				Center:          models.LatLng{Lat: 9.9767, Lng: -85.6531},
				Characteristics: []string{"dirt roads", "spread out"},
				BestFor:         []string{"surf", "yoga", "beach", "wildlife"},
				NotIdealFor:     []string{"nightlife", "shopping"},
				VibeTags:        []string{"laid-back", "wellness", "quiet"},
			},
			{
				Name:        "Santa Teresa",
				Type:        models.AreaBeach,
				Description: "Bohemian surf village on the Nicoya Peninsula with several beach breaks.",
				Center:      models.LatLng{Lat: 9.6430, Lng: -85.1690},
				BestFor:     []string{"surf", "yoga", "beach", "sunset"},
				NotIdealFor: []string{"cultural"},
				VibeTags:    []string{"bohemian", "laid-back", "social"},
			},
			{
				Name:            "La Fortuna",
				Type:            models.AreaTown,
				Description:     "Gateway to Arenal Volcano with hot springs, waterfalls and hanging bridges.",
				Center:          models.LatLng{Lat: 10.4678, Lng: -84.6427},
				Characteristics: []string{"volcano", "hot springs"},
				BestFor:         []string{"hike", "adventure", "zipline", "wildlife", "rafting"},
				NotIdealFor:     []string{"beach", "surf"},
				VibeTags:        []string{"adventurous", "nature", "family-friendly"},
			},
			{
				Name:        "Monteverde",
				Type:        models.AreaRegion,
				Description: "Cloud forest reserves reached by a winding mountain road; cool and misty.",
				Center:      models.LatLng{Lat: 10.3010, Lng: -84.8253},
				BestFor:     []string{"wildlife", "hike", "zipline"},
				NotIdealFor: []string{"beach", "surf", "swim"},
				VibeTags:    []string{"nature", "quiet"},
			},
			{
				Name:        "Manuel Antonio",
				Type:        models.AreaBeach,
				Description: "National park beaches with sloths and monkeys steps from calm coves.",
				Center:      models.LatLng{Lat: 9.3923, Lng: -84.1367},
				BestFor:     []string{"wildlife", "beach", "swim", "hike"},
				NotIdealFor: []string{"surf"},
				VibeTags:    []string{"family-friendly", "touristy"},
			},
			{
				Name:        "Uvita",
				Type:        models.AreaTown,
				Description: "Quiet southern Pacific town beside Marino Ballena National Park.",
				Center:      models.LatLng{Lat: 9.1627, Lng: -83.7385},
				BestFor:     []string{"whale_watching", "beach", "wildlife", "kayak"},
				NotIdealFor: []string{"nightlife"},
				VibeTags:    []string{"quiet", "nature", "authentic"},
			},
			{
				Name:        "Puerto Viejo",
				Type:        models.AreaTown,
				Description: "Afro-Caribbean town with reef snorkelling, reggae bars and bike paths along the coast.",
				Center:      models.LatLng{Lat: 9.6561, Lng: -82.7539},
				BestFor:     []string{"snorkel", "beach", "nightlife", "cultural", "food_tour"},
				VibeTags:    []string{"lively", "authentic", "bohemian"},
			},
			{
				Name:        "Playas del Coco",
				Type:        models.AreaBeach,
				Description: "Dive hub of the Gulf of Papagayo with sheltered water.",
				Center:      models.LatLng{Lat: 10.5500, Lng: -85.7000},
				BestFor:     []string{"dive", "snorkel", "fishing", "swim"},
				NotIdealFor: []string{"surf"},
				VibeTags:    []string{"relaxed"},
			},
			{
				Name:        "Tortuguero",
				Type:        models.AreaRegion,
				Description: "Canal-laced Caribbean park reachable only by boat or small plane.",
				Center:      models.LatLng{Lat: 10.5432, Lng: -83.5024},
				BestFor:     []string{"wildlife", "kayak"},
				NotIdealFor: []string{"swim", "surf", "nightlife"},
				VibeTags:    []string{"remote", "nature"},
			},
		},
		Specific: []models.SpecificActivityEntry{
			{
				Keywords: []string{"whale", "humpback"},
				Activity: "whale_watching",
				Areas:    []string{"Uvita"},
				Note:     "Humpback whales calve in Marino Ballena National Park.",
				Season:   "July to October and December to April",
			},
			{
				Keywords: []string{"turtle", "nesting"},
				Activity: "turtle nesting",
				Areas:    []string{"Tortuguero"},
				Note:     "Green turtles nest on Tortuguero's beaches at night.",
				Season:   "July to October",
			},
			{
				Keywords: []string{"sloth"},
				Activity: "wildlife",
				Areas:    []string{"Manuel Antonio", "Monteverde"},
				Note:     "Sloths are reliably spotted on guided park walks.",
			},
		},
	},
	{
		Name:        "Bali",
		CountryCode: "ID",
		Center:      models.LatLng{Lat: -8.4095, Lng: 115.1889},
		Areas: []models.KnowledgeArea{
			{
				Name:        "Canggu",
				Type:        models.AreaTown,
				Description: "Rice fields turned cafe strip with beach breaks and beach clubs.",
				Center:      models.LatLng{Lat: -8.6478, Lng: 115.1385},
				BestFor:     []string{"surf", "nightlife", "food_tour", "yoga"},
				NotIdealFor: []string{"snorkel", "swim"},
				VibeTags:    []string{"lively", "party", "digital nomad"},
			},
			{
				Name:        "Uluwatu",
				Type:        models.AreaRegion,
				Description: "Clifftop reef breaks and temple sunsets on the Bukit Peninsula.",
				Center:      models.LatLng{Lat: -8.8291, Lng: 115.0849},
				BestFor:     []string{"surf", "sunset", "beach"},
				NotIdealFor: []string{"swim", "snorkel"},
				VibeTags:    []string{"upscale", "scenic"},
			},
			{
				Name:        "Ubud",
				Type:        models.AreaTown,
				Description: "Bali's cultural heart among rice terraces, temples and craft villages.",
				Center:      models.LatLng{Lat: -8.5069, Lng: 115.2625},
				BestFor:     []string{"cultural", "yoga", "hike", "spa", "food_tour"},
				NotIdealFor: []string{"beach", "surf"},
				VibeTags:    []string{"wellness", "authentic", "quiet"},
			},
			{
				Name:        "Seminyak",
				Type:        models.AreaNeighborhood,
				Description: "Boutiques, beach clubs and restaurants on a wide sunset beach.",
				Center:      models.LatLng{Lat: -8.6913, Lng: 115.1682},
				BestFor:     []string{"nightlife", "shopping", "beach", "sunset"},
				NotIdealFor: []string{"hike"},
				VibeTags:    []string{"party", "upscale", "lively"},
			},
			{
				Name:        "Sanur",
				Type:        models.AreaTown,
				Description: "Reef-protected east-coast beach with a long seaside path.",
				Center:      models.LatLng{Lat: -8.6930, Lng: 115.2620},
				BestFor:     []string{"swim", "relax", "beach", "kayak"},
				NotIdealFor: []string{"nightlife", "surf"},
				VibeTags:    []string{"family-friendly", "quiet"},
			},
			{
				Name:        "Amed",
				Type:        models.AreaRegion,
				Description: "Black-sand fishing villages with coral gardens close to shore.",
				Center:      models.LatLng{Lat: -8.3468, Lng: 115.6443},
				BestFor:     []string{"snorkel", "dive", "relax"},
				NotIdealFor: []string{"nightlife", "shopping"},
				VibeTags:    []string{"quiet", "authentic"},
			},
			{
				Name:        "Nusa Lembongan",
				Type:        models.AreaRegion,
				Description: "Small island off Sanur with mangroves, reef breaks and manta points nearby.",
				Center:      models.LatLng{Lat: -8.6780, Lng: 115.4510},
				BestFor:     []string{"snorkel", "dive", "surf", "beach"},
				VibeTags:    []string{"relaxed", "island"},
			},
			{
				Name:        "Munduk",
				Type:        models.AreaRegion,
				Description: "Highland village of waterfalls, coffee plantations and lake views.",
				Center:      models.LatLng{Lat: -8.2660, Lng: 115.0720},
				BestFor:     []string{"hike", "relax"},
				NotIdealFor: []string{"beach", "nightlife"},
				VibeTags:    []string{"quiet", "nature"},
			},
		},
		Specific: []models.SpecificActivityEntry{
			{
				Keywords: []string{"manta"},
				Activity: "manta snorkelling",
				Areas:    []string{"Nusa Lembongan"},
				Note:     "Manta Point off Nusa Penida is a short boat ride away.",
				Season:   "all year, calmest April to October",
			},
			{
				Keywords: []string{"batur", "volcano", "sunrise"},
				Activity: "sunrise volcano trek",
				Areas:    []string{"Ubud"},
				Note:     "Mount Batur sunrise treks leave Ubud around 2am.",
				Season:   "dry season, April to October",
			},
			{
				Keywords: []string{"rice terrace", "terraces"},
				Activity: "rice terrace walk",
				Areas:    []string{"Ubud", "Munduk"},
				Note:     "Tegallalang and Jatiluwih terraces are easy morning walks.",
			},
		},
	},
	{
		Name:        "Portugal",
		CountryCode: "PT",
		Center:      models.LatLng{Lat: 38.7223, Lng: -9.1393},
		Areas: []models.KnowledgeArea{
			{
				Name:        "Lisbon",
				Type:        models.AreaTown,
				Description: "Hilly capital of tiled facades, tram lines and late dinners.",
				Center:      models.LatLng{Lat: 38.7223, Lng: -9.1393},
				BestFor:     []string{"cultural", "food_tour", "nightlife", "shopping"},
				NotIdealFor: []string{"relax"},
				VibeTags:    []string{"lively", "historic", "urban"},
			},
			{
				Name:        "Ericeira",
				Type:        models.AreaTown,
				Description: "Fishing town and World Surfing Reserve north of Lisbon.",
				Center:      models.LatLng{Lat: 38.9631, Lng: -9.4150},
				BestFor:     []string{"surf", "food_tour", "beach"},
				NotIdealFor: []string{"swim"},
				VibeTags:    []string{"laid-back", "authentic"},
			},
			{
				Name:        "Sintra",
				Type:        models.AreaTown,
				Description: "Forested hills crowned by palaces and Moorish ramparts.",
				Center:      models.LatLng{Lat: 38.8029, Lng: -9.3817},
				BestFor:     []string{"cultural", "hike"},
				NotIdealFor: []string{"beach", "nightlife"},
				VibeTags:    []string{"romantic", "historic"},
			},
			{
				Name:        "Comporta",
				Type:        models.AreaBeach,
				Description: "Rice paddies and empty dune beaches south of the Sado estuary.",
				Center:      models.LatLng{Lat: 38.3800, Lng: -8.7830},
				BestFor:     []string{"beach", "relax", "swim"},
				NotIdealFor: []string{"nightlife", "cultural"},
				VibeTags:    []string{"upscale", "quiet"},
			},
			{
				Name:        "Nazaré",
				Type:        models.AreaTown,
				Description: "Traditional fishing town famous for record-breaking winter waves.",
				Center:      models.LatLng{Lat: 39.6021, Lng: -9.0710},
				BestFor:     []string{"surf", "beach", "food_tour"},
				NotIdealFor: []string{"swim"},
				VibeTags:    []string{"authentic", "scenic"},
			},
			{
				Name:        "Porto",
				Type:        models.AreaTown,
				Description: "Riverside city of port lodges, bridges and azulejo churches.",
				Center:      models.LatLng{Lat: 41.1579, Lng: -8.6291},
				BestFor:     []string{"cultural", "food_tour", "nightlife"},
				NotIdealFor: []string{"beach"},
				VibeTags:    []string{"historic", "lively"},
			},
			{
				Name:        "Lagos",
				Type:        models.AreaTown,
				Description: "Algarve town with sea caves, grottoes and a busy old quarter.",
				Center:      models.LatLng{Lat: 37.1028, Lng: -8.6730},
				BestFor:     []string{"beach", "kayak", "nightlife", "swim"},
				VibeTags:    []string{"lively", "party"},
			},
			{
				Name:        "Peneda-Gerês",
				Type:        models.AreaRegion,
				Description: "Portugal's only national park, granite peaks and river pools in the far north.",
				Center:      models.LatLng{Lat: 41.7290, Lng: -8.1620},
				BestFor:     []string{"hike", "wildlife", "swim"},
				NotIdealFor: []string{"nightlife", "shopping"},
				VibeTags:    []string{"remote", "nature"},
			},
		},
		Specific: []models.SpecificActivityEntry{
			{
				Keywords: []string{"big wave", "nazare"},
				Activity: "big wave watching",
				Areas:    []string{"Nazaré"},
				Note:     "Watch giant swells from the Nazaré lighthouse.",
				Season:   "October to March",
			},
			{
				Keywords: []string{"port wine", "wine"},
				Activity: "port wine tasting",
				Areas:    []string{"Porto"},
				Note:     "Cellar tours run daily in Vila Nova de Gaia.",
			},
			{
				Keywords: []string{"fado"},
				Activity: "fado night",
				Areas:    []string{"Lisbon"},
				Note:     "Alfama and Mouraria host intimate fado houses.",
			},
		},
	},
	{
		Name:        "Hawaii",
		CountryCode: "US",
		Center:      models.LatLng{Lat: 20.7984, Lng: -156.3319},
		Areas: []models.KnowledgeArea{
			{
				Name:        "Waikiki",
				Type:        models.AreaNeighborhood,
				Description: "Honolulu's hotel strip on a gentle beach with beginner waves.",
				Center:      models.LatLng{Lat: 21.2793, Lng: -157.8292},
				BestFor:     []string{"beach", "swim", "nightlife", "shopping", "surf"},
				VibeTags:    []string{"lively", "touristy", "urban"},
			},
			{
				Name:        "North Shore",
				Type:        models.AreaRegion,
				Description: "Oahu's legendary winter surf coast of shrimp trucks and country towns.",
				Center:      models.LatLng{Lat: 21.5770, Lng: -158.1040},
				BestFor:     []string{"surf", "beach", "sunset"},
				NotIdealFor: []string{"nightlife", "swim"},
				VibeTags:    []string{"laid-back", "country"},
			},
			{
				Name:        "Kailua",
				Type:        models.AreaTown,
				Description: "Windward Oahu beach town with calm turquoise water and offshore islets.",
				Center:      models.LatLng{Lat: 21.4022, Lng: -157.7394},
				BestFor:     []string{"kayak", "beach", "swim"},
				NotIdealFor: []string{"nightlife"},
				VibeTags:    []string{"family-friendly", "quiet"},
			},
			{
				Name:        "Lahaina",
				Type:        models.AreaTown,
				Description: "West Maui harbour town facing the whale channel.",
				Center:      models.LatLng{Lat: 20.8783, Lng: -156.6825},
				BestFor:     []string{"whale_watching", "snorkel", "sunset"},
				VibeTags:    []string{"historic", "relaxed"},
			},
			{
				Name:        "Kihei",
				Type:        models.AreaTown,
				Description: "Sunny south Maui strip of beaches and reef snorkelling.",
				Center:      models.LatLng{Lat: 20.7644, Lng: -156.4450},
				BestFor:     []string{"snorkel", "whale_watching", "beach", "swim"},
				VibeTags:    []string{"family-friendly", "relaxed"},
			},
			{
				Name:        "Paia",
				Type:        models.AreaTown,
				Description: "North shore Maui surf and windsurf village on the road to Hana.",
				Center:      models.LatLng{Lat: 20.9030, Lng: -156.3690},
				BestFor:     []string{"surf", "food_tour"},
				NotIdealFor: []string{"swim", "snorkel"},
				VibeTags:    []string{"bohemian", "laid-back"},
			},
			{
				Name:        "Kona",
				Type:        models.AreaRegion,
				Description: "Dry leeward Big Island coast with lava-rock coves and night manta dives.",
				Center:      models.LatLng{Lat: 19.6400, Lng: -155.9969},
				BestFor:     []string{"snorkel", "dive", "fishing"},
				NotIdealFor: []string{"surf"},
				VibeTags:    []string{"relaxed"},
			},
			{
				Name:        "Hilo",
				Type:        models.AreaTown,
				Description: "Rainy windward town near waterfalls and Volcanoes National Park.",
				Center:      models.LatLng{Lat: 19.7070, Lng: -155.0885},
				BestFor:     []string{"hike", "cultural", "adventure"},
				NotIdealFor: []string{"beach"},
				VibeTags:    []string{"authentic", "nature"},
			},
			{
				Name:        "Hanalei",
				Type:        models.AreaTown,
				Description: "Kauai bay town backed by taro fields and the Na Pali trails.",
				Center:      models.LatLng{Lat: 22.2040, Lng: -159.5010},
				BestFor:     []string{"hike", "kayak", "beach", "surf"},
				VibeTags:    []string{"remote", "scenic"},
			},
		},
		Specific: []models.SpecificActivityEntry{
			{
				Keywords: []string{"whale", "humpback"},
				Activity: "whale_watching",
				Areas:    []string{"Lahaina", "Kihei"},
				Note:     "Humpbacks winter in the channel between Maui, Lanai and Molokai.",
				Season:   "December to April",
			},
			{
				Keywords: []string{"lava", "volcano", "crater"},
				Activity: "volcano hike",
				Areas:    []string{"Hilo"},
				Note:     "Kilauea's crater rim trails are under an hour away.",
			},
			{
				Keywords: []string{"manta"},
				Activity: "manta night snorkel",
				Areas:    []string{"Kona"},
				Note:     "Manta rays feed under lights off Keauhou Bay after dark.",
			},
			{
				Keywords: []string{"big wave", "pipeline"},
				Activity: "big wave watching",
				Areas:    []string{"North Shore"},
				Note:     "Pipeline and Waimea Bay break on big winter swells.",
				Season:   "November to February",
			},
		},
	},
}
