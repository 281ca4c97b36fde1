package services

import "github.com/sbilibin2017/gw-recipe-atlas/internal/models"

// seedCreatedAt is the creation time of every seeded recipe and variant.
const seedCreatedAt int64 = 1651234567890

// seedAccount is a seeded user with its plaintext password, hashed at seed time.
type seedAccount struct {
	ID       string
	Username string
	Password string
	Role     string
}

var seedAccounts = []seedAccount{
	{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin},
	{ID: "2", Username: "user", Password: "user123", Role: models.RoleUser},
}

var seedRegions = []models.Region{
	{
		ID:          "1",
		Name:        "Tanger-Tétouan-Al Hoceïma",
		NameAr:      "طنجة - تطوان - الحسيمة",
		Description: "Région du nord du Maroc, connue pour sa cuisine méditerranéenne et ses saveurs de poisson.",
		Coordinates: [2]float64{35.7595, -5.8340},
	},
	{
		ID:          "2",
		Name:        "L'Oriental",
		NameAr:      "الشرق",
		Description: "Région à l'est du pays, avec une cuisine influencée par l'Algérie voisine.",
		Coordinates: [2]float64{34.6830, -1.9126},
	},
	{
		ID:          "3",
		Name:        "Fès-Meknès",
		NameAr:      "فاس - مكناس",
		Description: "Cœur historique de la cuisine marocaine, Fès est considérée comme la capitale culinaire du Maroc.",
		Coordinates: [2]float64{34.0372, -5.0004},
	},
	{
		ID:          "4",
		Name:        "Rabat-Salé-Kénitra",
		NameAr:      "الرباط - سلا - القنيطرة",
		Description: "La région de la capitale, mêlant traditions culinaires royales et influences côtières.",
		Coordinates: [2]float64{34.0209, -6.8416},
	},
	{
		ID:          "5",
		Name:        "Béni Mellal-Khénifra",
		NameAr:      "بني ملال - خنيفرة",
		Description: "Région du Moyen Atlas, célèbre pour ses plats berbères.",
		Coordinates: [2]float64{32.3366, -6.3497},
	},
	{
		ID:          "6",
		Name:        "Casablanca-Settat",
		NameAr:      "الدار البيضاء - سطات",
		Description: "Région économique principale, avec une cuisine moderne et diversifiée.",
		Coordinates: [2]float64{33.5731, -7.5898},
	},
	{
		ID:          "7",
		Name:        "Marrakech-Safi",
		NameAr:      "مراكش - آسفي",
		Description: "Célèbre pour le tajine et les plats aux épices vibrantes.",
		Coordinates: [2]float64{31.6295, -7.9811},
	},
	{
		ID:          "8",
		Name:        "Drâa-Tafilalet",
		NameAr:      "درعة - تافيلالت",
		Description: "Région des oasis, connue pour ses dattes et sa cuisine berbère du sud.",
		Coordinates: [2]float64{31.9302, -4.4283},
	},
	{
		ID:          "9",
		Name:        "Souss-Massa",
		NameAr:      "سوس - ماسة",
		Description: "Région d'Agadir, célèbre pour ses fruits et son huile d'argan.",
		Coordinates: [2]float64{30.4278, -9.5981},
	},
	{
		ID:          "10",
		Name:        "Guelmim-Oued Noun",
		NameAr:      "كلميم - واد نون",
		Description: "Porte du Sahara, mêlant influences du nord et du désert.",
		Coordinates: [2]float64{28.9870, -10.0574},
	},
	{
		ID:          "11",
		Name:        "Laâyoune-Sakia El Hamra",
		NameAr:      "العيون - الساقية الحمراء",
		Description: "Cuisine saharienne avec forte influence de la culture hassanie.",
		Coordinates: [2]float64{27.1536, -13.2035},
	},
	{
		ID:          "12",
		Name:        "Dakhla-Oued Ed-Dahab",
		NameAr:      "الداخلة - وادي الذهب",
		Description: "Région la plus au sud, connue pour ses fruits de mer et ses influences sahariennes.",
		Coordinates: [2]float64{23.7141, -15.9369},
	},
}

var seedRecipes = []models.Recipe{
	{
		ID:          "1",
		Name:        "Tajine de poulet aux olives et citrons confits",
		NameAr:      "طاجين الدجاج بالزيتون والليمون المخلل",
		RegionID:    "7",
		Description: "Un classique de la cuisine marocaine, ce tajine combine la tendreté du poulet avec l'acidité des citrons confits et la saveur des olives.",
		Ingredients: []string{
			"1 poulet coupé en morceaux",
			"2 oignons émincés",
			"3 gousses d'ail écrasées",
			"2 citrons confits coupés en quartiers",
			"200g d'olives vertes dénoyautées",
			"1 cuillère à café de gingembre moulu",
			"1 cuillère à café de curcuma",
			"1 cuillère à café de paprika",
			"1/2 cuillère à café de safran",
			"1 bouquet de persil et coriandre",
			"3 cuillères à soupe d'huile d'olive",
			"Sel et poivre",
		},
		Steps: []string{
			"Dans un tajine ou une cocotte, faire chauffer l'huile d'olive.",
			"Faire dorer les morceaux de poulet de tous les côtés.",
			"Ajouter les oignons émincés et l'ail, faire revenir jusqu'à ce qu'ils soient translucides.",
			"Ajouter toutes les épices, sel et poivre, bien mélanger.",
			"Verser de l'eau à hauteur, couvrir et laisser mijoter à feu doux pendant 45 minutes.",
			"Ajouter les citrons confits et les olives, poursuivre la cuisson 15 minutes.",
			"Parsemer de persil et coriandre ciselés avant de servir.",
		},
		ImageURL:        "/tajine-poulet.jpg",
		Category:        models.CategoryMain,
		PreparationTime: 20,
		CookingTime:     60,
		Servings:        4,
		Difficulty:      models.DifficultyMedium,
		CreatedAt:       seedCreatedAt,
		CreatedBy:       "1",
	},
	{
		ID:          "2",
		Name:        "Couscous aux sept légumes",
		NameAr:      "كسكس بسبع خضروات",
		RegionID:    "6",
		Description: "Le couscous, plat emblématique du vendredi, est préparé avec une variété de légumes de saison et servi avec de la viande ou du poulet.",
		Ingredients: []string{
			"500g de semoule de couscous moyenne",
			"500g d'épaule d'agneau coupée en morceaux",
			"2 oignons",
			"3 tomates",
			"3 carottes",
			"2 navets",
			"2 courgettes",
			"1 branche de céleri",
			"200g de potiron",
			"250g de pois chiches trempés la veille",
			"1 cuillère à café de ras el hanout",
			"1 cuillère à café de curcuma",
			"1 pincée de safran",
			"Huile d'olive",
			"Sel et poivre",
			"Bouquet garni (persil et coriandre)",
		},
		Steps: []string{
			"Préparer la semoule selon les instructions du paquet, en l'humidifiant et en la travaillant plusieurs fois.",
			"Dans une couscoussière, faire revenir la viande avec les oignons hachés et les épices.",
			"Ajouter les pois chiches et couvrir d'eau, laisser cuire 1 heure.",
			"Ajouter les légumes coupés en gros morceaux et cuire encore 30 minutes.",
			"Pendant ce temps, cuire la semoule à la vapeur 3 fois en la travaillant entre chaque cuisson.",
			"Servir la semoule arrosée d'un peu de bouillon, avec les légumes et la viande disposés par-dessus.",
		},
		ImageURL:        "/couscous.jpg",
		Category:        models.CategoryMain,
		PreparationTime: 30,
		CookingTime:     120,
		Servings:        6,
		Difficulty:      models.DifficultyHard,
		CreatedAt:       seedCreatedAt,
		CreatedBy:       "1",
	},
	{
		ID:          "3",
		Name:        "Pastilla au Poulet et Amandes",
		NameAr:      "بسطيلة بالدجاج واللوز",
		RegionID:    "3",
		Description: "La pastilla est un plat festif d'origine andalouse, mêlant sucré et salé. Cette version au poulet et amandes est typique de Fès.",
		Ingredients: []string{
			"500g de blanc de poulet",
			"1 oignon haché",
			"3 œufs",
			"100g d'amandes effilées",
			"1 bouquet de persil et coriandre",
			"1 cuillère à café de gingembre moulu",
			"1 cuillère à café de cannelle",
			"1 pincée de safran",
			"8 feuilles de brick ou pâte filo",
			"50g de beurre fondu",
			"2 cuillères à soupe de sucre glace",
			"1 cuillère à café de cannelle pour saupoudrer",
			"Sel et poivre",
		},
		Steps: []string{
			"Faire cuire le poulet avec l'oignon et les épices dans un peu d'eau pendant 30 minutes.",
			"Effilocher le poulet et réserver le bouillon.",
			"Faire torréfier les amandes à sec dans une poêle puis réserver.",
			"Dans le bouillon, faire cuire les œufs en remuant pour obtenir une texture brouillée.",
			"Mélanger le poulet effiloché, les œufs et les herbes hachées.",
			"Beurrer un moule rond et disposer les feuilles de brick en alternant.",
			"Déposer la farce au poulet, replier les bords des feuilles.",
			"Badigeonner de beurre fondu et enfourner à 180°C pendant 20 minutes.",
			"Saupoudrer de sucre glace et cannelle avant de servir.",
		},
		ImageURL:        "/pastilla.jpg",
		Category:        models.CategoryStarter,
		PreparationTime: 40,
		CookingTime:     50,
		Servings:        6,
		Difficulty:      models.DifficultyHard,
		CreatedAt:       seedCreatedAt,
		CreatedBy:       "1",
	},
}

// The seeded variant carries one vote per voter.
var seedVariants = []models.RecipeVariant{
	{
		ID:          "1",
		RecipeID:    "1",
		Name:        "Tajine de poulet aux abricots",
		Description: "Une version sucrée-salée du tajine de poulet, avec des abricots secs à la place des citrons confits.",
		Ingredients: []string{
			"1 poulet coupé en morceaux",
			"2 oignons émincés",
			"3 gousses d'ail écrasées",
			"200g d'abricots secs",
			"100g de pruneaux",
			"50g d'amandes effilées",
			"1 cuillère à café de cannelle",
			"1 cuillère à café de gingembre moulu",
			"1 cuillère à café de miel",
			"3 cuillères à soupe d'huile d'olive",
			"Sel et poivre",
		},
		Steps: []string{
			"Dans un tajine, faire dorer le poulet dans l'huile d'olive.",
			"Ajouter les oignons et l'ail, faire revenir.",
			"Incorporer les épices, sel et poivre.",
			"Mouiller avec de l'eau et laisser mijoter 30 minutes.",
			"Ajouter les fruits secs et le miel, poursuivre la cuisson 15 minutes.",
			"Parsemer d'amandes grillées avant de servir.",
		},
		ImageURL:  "/tajine-abricots.jpg",
		CreatedAt: seedCreatedAt,
		CreatedBy: "2",
		Votes:     2,
		VoterIDs:  []string{"1", "2"},
	},
}
